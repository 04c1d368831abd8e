package ast

// Visitor is implemented by consumers that want a typed callback per node
// kind rather than a type switch at every call site. Each Visit* method
// corresponds 1:1 to a concrete node type; Walk drives a Visitor in
// preorder over every node reachable through Children(). ClassDeclStmt
// reports no children and function parameters are not Nodes, so class
// members and parameter defaults are not visited.
type Visitor interface {
	VisitBlock(*Block)
	VisitIdent(*Ident)
	VisitPathExpr(*PathExpr)
	VisitIntLiteral(*IntLiteral)
	VisitDoubleLiteral(*DoubleLiteral)
	VisitStringLiteral(*StringLiteral)
	VisitInterpString(*InterpString)
	VisitBuiltinConst(*BuiltinConst)
	VisitArrayLiteral(*ArrayLiteral)
	VisitVariable(*Variable)
	VisitVarVar(*VarVar)
	VisitRefExpr(*RefExpr)
	VisitCloneExpr(*CloneExpr)
	VisitIssetExpr(*IssetExpr)
	VisitEmptyExpr(*EmptyExpr)
	VisitExitExpr(*ExitExpr)
	VisitIncludeExpr(*IncludeExpr)
	VisitArrayIdx(*ArrayIdx)
	VisitObjMember(*ObjMember)
	VisitStaticMember(*StaticMember)
	VisitCall(*Call)
	VisitNewExpr(*NewExpr)
	VisitUnaryExpr(*UnaryExpr)
	VisitPostIncDec(*PostIncDec)
	VisitBinaryExpr(*BinaryExpr)
	VisitInstanceOfExpr(*InstanceOfExpr)
	VisitCastExpr(*CastExpr)
	VisitYieldExpr(*YieldExpr)
	VisitAnonFunction(*AnonFunction)
	VisitAssignExpr(*AssignExpr)
	VisitAssignRefExpr(*AssignRefExpr)
	VisitCompoundAssignExpr(*CompoundAssignExpr)
	VisitListExpr(*ListExpr)
	VisitTernaryExpr(*TernaryExpr)

	VisitNamespaceDecl(*NamespaceDecl)
	VisitUseStmt(*UseStmt)
	VisitFunctionDeclStmt(*FunctionDeclStmt)
	VisitClassDeclStmt(*ClassDeclStmt)
	VisitStaticVarDecl(*StaticVarDecl)
	VisitGlobalVarDecl(*GlobalVarDecl)
	VisitLabelStmt(*LabelStmt)
	VisitGotoStmt(*GotoStmt)
	VisitExprStmt(*ExprStmt)
	VisitEchoStmt(*EchoStmt)
	VisitReturnStmt(*ReturnStmt)
	VisitBreakStmt(*BreakStmt)
	VisitContinueStmt(*ContinueStmt)
	VisitUnsetStmt(*UnsetStmt)
	VisitIfStmt(*IfStmt)
	VisitWhileStmt(*WhileStmt)
	VisitDoWhileStmt(*DoWhileStmt)
	VisitForStmt(*ForStmt)
	VisitForeachStmt(*ForeachStmt)
	VisitTryStmt(*TryStmt)
	VisitThrowStmt(*ThrowStmt)
	VisitSwitchStmt(*SwitchStmt)
}

// BaseVisitor implements Visitor with no-ops, so callers that only care
// about a handful of node kinds can embed it and override the rest.
type BaseVisitor struct{}

func (BaseVisitor) VisitBlock(*Block)                               {}
func (BaseVisitor) VisitIdent(*Ident)                                {}
func (BaseVisitor) VisitPathExpr(*PathExpr)                          {}
func (BaseVisitor) VisitIntLiteral(*IntLiteral)                      {}
func (BaseVisitor) VisitDoubleLiteral(*DoubleLiteral)                {}
func (BaseVisitor) VisitStringLiteral(*StringLiteral)                {}
func (BaseVisitor) VisitInterpString(*InterpString)                  {}
func (BaseVisitor) VisitBuiltinConst(*BuiltinConst)                  {}
func (BaseVisitor) VisitArrayLiteral(*ArrayLiteral)                  {}
func (BaseVisitor) VisitVariable(*Variable)                          {}
func (BaseVisitor) VisitVarVar(*VarVar)                              {}
func (BaseVisitor) VisitRefExpr(*RefExpr)                            {}
func (BaseVisitor) VisitCloneExpr(*CloneExpr)                        {}
func (BaseVisitor) VisitIssetExpr(*IssetExpr)                        {}
func (BaseVisitor) VisitEmptyExpr(*EmptyExpr)                        {}
func (BaseVisitor) VisitExitExpr(*ExitExpr)                          {}
func (BaseVisitor) VisitIncludeExpr(*IncludeExpr)                    {}
func (BaseVisitor) VisitArrayIdx(*ArrayIdx)                          {}
func (BaseVisitor) VisitObjMember(*ObjMember)                        {}
func (BaseVisitor) VisitStaticMember(*StaticMember)                  {}
func (BaseVisitor) VisitCall(*Call)                                  {}
func (BaseVisitor) VisitNewExpr(*NewExpr)                            {}
func (BaseVisitor) VisitUnaryExpr(*UnaryExpr)                        {}
func (BaseVisitor) VisitPostIncDec(*PostIncDec)                      {}
func (BaseVisitor) VisitBinaryExpr(*BinaryExpr)                      {}
func (BaseVisitor) VisitInstanceOfExpr(*InstanceOfExpr)              {}
func (BaseVisitor) VisitCastExpr(*CastExpr)                          {}
func (BaseVisitor) VisitYieldExpr(*YieldExpr)                        {}
func (BaseVisitor) VisitAnonFunction(*AnonFunction)                  {}
func (BaseVisitor) VisitAssignExpr(*AssignExpr)                      {}
func (BaseVisitor) VisitAssignRefExpr(*AssignRefExpr)                {}
func (BaseVisitor) VisitCompoundAssignExpr(*CompoundAssignExpr)      {}
func (BaseVisitor) VisitListExpr(*ListExpr)                          {}
func (BaseVisitor) VisitTernaryExpr(*TernaryExpr)                    {}
func (BaseVisitor) VisitNamespaceDecl(*NamespaceDecl)                {}
func (BaseVisitor) VisitUseStmt(*UseStmt)                            {}
func (BaseVisitor) VisitFunctionDeclStmt(*FunctionDeclStmt)          {}
func (BaseVisitor) VisitClassDeclStmt(*ClassDeclStmt)                {}
func (BaseVisitor) VisitStaticVarDecl(*StaticVarDecl)                {}
func (BaseVisitor) VisitGlobalVarDecl(*GlobalVarDecl)                {}
func (BaseVisitor) VisitLabelStmt(*LabelStmt)                        {}
func (BaseVisitor) VisitGotoStmt(*GotoStmt)                          {}
func (BaseVisitor) VisitExprStmt(*ExprStmt)                          {}
func (BaseVisitor) VisitEchoStmt(*EchoStmt)                          {}
func (BaseVisitor) VisitReturnStmt(*ReturnStmt)                      {}
func (BaseVisitor) VisitBreakStmt(*BreakStmt)                        {}
func (BaseVisitor) VisitContinueStmt(*ContinueStmt)                  {}
func (BaseVisitor) VisitUnsetStmt(*UnsetStmt)                        {}
func (BaseVisitor) VisitIfStmt(*IfStmt)                              {}
func (BaseVisitor) VisitWhileStmt(*WhileStmt)                        {}
func (BaseVisitor) VisitDoWhileStmt(*DoWhileStmt)                    {}
func (BaseVisitor) VisitForStmt(*ForStmt)                            {}
func (BaseVisitor) VisitForeachStmt(*ForeachStmt)                    {}
func (BaseVisitor) VisitTryStmt(*TryStmt)                            {}
func (BaseVisitor) VisitThrowStmt(*ThrowStmt)                        {}
func (BaseVisitor) VisitSwitchStmt(*SwitchStmt)                      {}

// Walk visits node, then recurses into its children in order.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	node.Accept(v)
	for _, c := range node.Children() {
		Walk(v, c)
	}
}
