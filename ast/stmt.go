package ast

import "github.com/wudi/phpcore/intern"

// NamespaceDecl is "namespace Name;" (Body nil) or "namespace Name { ... }"
// (Body non-nil, braced form).
type NamespaceDecl struct {
	base
	Name *Path
	Body *Block
}

func (n *NamespaceDecl) Children() []Node {
	if n.Body == nil {
		return nil
	}
	return []Node{n.Body}
}
func (n *NamespaceDecl) Accept(v Visitor) { v.VisitNamespaceDecl(n) }
func (n *NamespaceDecl) stmtNode()        {}

// UseStmt is a top-level "use Clause1, Clause2;" import statement.
type UseStmt struct {
	base
	Clauses []UseClause
}

func (n *UseStmt) Children() []Node { return nil }
func (n *UseStmt) Accept(v Visitor) { v.VisitUseStmt(n) }
func (n *UseStmt) stmtNode()        {}

// FunctionDeclStmt is a top-level named function declaration.
type FunctionDeclStmt struct {
	base
	Decl *FunctionDecl
}

func (n *FunctionDeclStmt) Children() []Node {
	if n.Decl.Body == nil {
		return nil
	}
	return []Node{n.Decl.Body}
}
func (n *FunctionDeclStmt) Accept(v Visitor) { v.VisitFunctionDeclStmt(n) }
func (n *FunctionDeclStmt) stmtNode()        {}

// ClassDeclStmt is a top-level class/interface/trait declaration.
type ClassDeclStmt struct {
	base
	Decl *ClassDecl
}

func (n *ClassDeclStmt) Children() []Node { return nil }
func (n *ClassDeclStmt) Accept(v Visitor) { v.VisitClassDeclStmt(n) }
func (n *ClassDeclStmt) stmtNode()        {}

// StaticVarItem is one "$name [= default]" entry of a "static" statement.
type StaticVarItem struct {
	Name    intern.Handle
	Default Expr
}

// StaticVarDecl is "static $a, $b = 1;".
type StaticVarDecl struct {
	base
	Vars []StaticVarItem
}

func (n *StaticVarDecl) Children() []Node {
	var out []Node
	for _, it := range n.Vars {
		if it.Default != nil {
			out = append(out, it.Default)
		}
	}
	return out
}
func (n *StaticVarDecl) Accept(v Visitor) { v.VisitStaticVarDecl(n) }
func (n *StaticVarDecl) stmtNode()        {}

// GlobalVarDecl is "global $a, $b;".
type GlobalVarDecl struct {
	base
	Names []intern.Handle
}

func (n *GlobalVarDecl) Children() []Node { return nil }
func (n *GlobalVarDecl) Accept(v Visitor) { v.VisitGlobalVarDecl(n) }
func (n *GlobalVarDecl) stmtNode()        {}

// LabelStmt is a "name:" goto target.
type LabelStmt struct {
	base
	Name intern.Handle
}

func (n *LabelStmt) Children() []Node { return nil }
func (n *LabelStmt) Accept(v Visitor) { v.VisitLabelStmt(n) }
func (n *LabelStmt) stmtNode()        {}

// GotoStmt is "goto name;".
type GotoStmt struct {
	base
	Label intern.Handle
}

func (n *GotoStmt) Children() []Node { return nil }
func (n *GotoStmt) Accept(v Visitor) { v.VisitGotoStmt(n) }
func (n *GotoStmt) stmtNode()        {}

// ExprStmt is any expression followed by ";".
type ExprStmt struct {
	base
	Expr Expr
}

func (n *ExprStmt) Children() []Node { return nodes(n.Expr) }
func (n *ExprStmt) Accept(v Visitor) { v.VisitExprStmt(n) }
func (n *ExprStmt) stmtNode()        {}

// EchoStmt is "echo e1, e2, ...;", and also the statement an inline-HTML
// token or an "<?=" open tag is rewritten to.
type EchoStmt struct {
	base
	Args []Expr
}

func (n *EchoStmt) Children() []Node { return exprNodes(n.Args) }
func (n *EchoStmt) Accept(v Visitor) { v.VisitEchoStmt(n) }
func (n *EchoStmt) stmtNode()        {}

// ReturnStmt is "return;" or "return expr;".
type ReturnStmt struct {
	base
	Value Expr
}

func (n *ReturnStmt) Children() []Node { return nodes(n.Value) }
func (n *ReturnStmt) Accept(v Visitor) { v.VisitReturnStmt(n) }
func (n *ReturnStmt) stmtNode()        {}

// BreakStmt is "break;" or "break n;".
type BreakStmt struct {
	base
	Level Expr
}

func (n *BreakStmt) Children() []Node { return nodes(n.Level) }
func (n *BreakStmt) Accept(v Visitor) { v.VisitBreakStmt(n) }
func (n *BreakStmt) stmtNode()        {}

// ContinueStmt is "continue;" or "continue n;".
type ContinueStmt struct {
	base
	Level Expr
}

func (n *ContinueStmt) Children() []Node { return nodes(n.Level) }
func (n *ContinueStmt) Accept(v Visitor) { v.VisitContinueStmt(n) }
func (n *ContinueStmt) stmtNode()        {}

// UnsetStmt is "unset(e1, e2, ...);".
type UnsetStmt struct {
	base
	Vars []Expr
}

func (n *UnsetStmt) Children() []Node { return exprNodes(n.Vars) }
func (n *UnsetStmt) Accept(v Visitor) { v.VisitUnsetStmt(n) }
func (n *UnsetStmt) stmtNode()        {}

// IfStmt is "if (cond) then [else else_]"; elseif chains desugar into
// Else holding another *IfStmt, per the driver's right-nesting.
type IfStmt struct {
	base
	Cond Expr
	Then Stmt
	Else Stmt
}

func (n *IfStmt) Children() []Node { return nodes(n.Cond, n.Then, n.Else) }
func (n *IfStmt) Accept(v Visitor) { v.VisitIfStmt(n) }
func (n *IfStmt) stmtNode()        {}

// WhileStmt is "while (cond) body".
type WhileStmt struct {
	base
	Cond Expr
	Body Stmt
}

func (n *WhileStmt) Children() []Node { return nodes(n.Cond, n.Body) }
func (n *WhileStmt) Accept(v Visitor) { v.VisitWhileStmt(n) }
func (n *WhileStmt) stmtNode()        {}

// DoWhileStmt is "do body while (cond);".
type DoWhileStmt struct {
	base
	Body Stmt
	Cond Expr
}

func (n *DoWhileStmt) Children() []Node { return nodes(n.Body, n.Cond) }
func (n *DoWhileStmt) Accept(v Visitor) { v.VisitDoWhileStmt(n) }
func (n *DoWhileStmt) stmtNode()        {}

// ForStmt is "for (init; cond; loop) body"; each clause is a comma list,
// any of which may be empty.
type ForStmt struct {
	base
	Init []Expr
	Cond []Expr
	Loop []Expr
	Body Stmt
}

func (n *ForStmt) Children() []Node {
	out := exprNodes(n.Init)
	out = append(out, exprNodes(n.Cond)...)
	out = append(out, exprNodes(n.Loop)...)
	return append(out, nodes(n.Body)...)
}
func (n *ForStmt) Accept(v Visitor) { v.VisitForStmt(n) }
func (n *ForStmt) stmtNode()        {}

// ForeachStmt is "foreach (subject as [key =>] value) body".
type ForeachStmt struct {
	base
	Subject Expr
	Key     Expr // nil when no "key =>" clause was given
	Value   Expr
	ByRef   bool
	Body    Stmt
}

func (n *ForeachStmt) Children() []Node { return nodes(n.Subject, n.Key, n.Value, n.Body) }
func (n *ForeachStmt) Accept(v Visitor) { v.VisitForeachStmt(n) }
func (n *ForeachStmt) stmtNode()        {}

// TryStmt is "try block catch-list [finally block]".
type TryStmt struct {
	base
	Body    *Block
	Catches []*CatchClause
	Finally *Block
}

func (n *TryStmt) Children() []Node {
	out := []Node{n.Body}
	for _, c := range n.Catches {
		out = append(out, c.Body)
	}
	if n.Finally != nil {
		out = append(out, n.Finally)
	}
	return out
}
func (n *TryStmt) Accept(v Visitor) { v.VisitTryStmt(n) }
func (n *TryStmt) stmtNode()        {}

// ThrowStmt is "throw expr;".
type ThrowStmt struct {
	base
	Expr Expr
}

func (n *ThrowStmt) Children() []Node { return nodes(n.Expr) }
func (n *ThrowStmt) Accept(v Visitor) { v.VisitThrowStmt(n) }
func (n *ThrowStmt) stmtNode()        {}

// SwitchStmt is "switch (subject) { case-list }".
type SwitchStmt struct {
	base
	Subject Expr
	Cases   []*SwitchCase
}

func (n *SwitchStmt) Children() []Node {
	out := nodes(n.Subject)
	for _, c := range n.Cases {
		out = append(out, exprNodes(c.Conds)...)
		out = append(out, stmtNodes(c.Body)...)
	}
	return out
}
func (n *SwitchStmt) Accept(v Visitor) { v.VisitSwitchStmt(n) }
func (n *SwitchStmt) stmtNode()        {}
