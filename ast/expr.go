package ast

import "github.com/wudi/phpcore/intern"

// IntLiteral is a decoded integer literal; values that overflowed the
// signed 64-bit range at lex time arrive as a DoubleLiteral instead.
type IntLiteral struct {
	base
	Value int64
}

func (n *IntLiteral) Children() []Node { return nil }
func (n *IntLiteral) Accept(v Visitor) { v.VisitIntLiteral(n) }
func (n *IntLiteral) exprNode()        {}

// DoubleLiteral is a decoded floating-point literal.
type DoubleLiteral struct {
	base
	Value float64
}

func (n *DoubleLiteral) Children() []Node { return nil }
func (n *DoubleLiteral) Accept(v Visitor) { v.VisitDoubleLiteral(n) }
func (n *DoubleLiteral) exprNode()        {}

// StringLiteral is a single constant-encapsed string fragment: a plain
// single-quoted string, a non-interpolated run of a double-quoted or
// heredoc string, or (Binary set) a byte-string literal.
type StringLiteral struct {
	base
	Value  intern.Handle
	Binary bool
}

func (n *StringLiteral) Children() []Node { return nil }
func (n *StringLiteral) Accept(v Visitor) { v.VisitStringLiteral(n) }
func (n *StringLiteral) exprNode()        {}

// InterpString is a double-quoted or heredoc string that contains
// interpolation: Parts alternates (not necessarily strictly) between
// StringLiteral fragments and arbitrary interpolated expressions.
type InterpString struct {
	base
	Parts []Expr
}

func (n *InterpString) Children() []Node { return exprNodes(n.Parts) }
func (n *InterpString) Accept(v Visitor) { v.VisitInterpString(n) }
func (n *InterpString) exprNode()        {}

// BuiltinConst is a reference to a magic constant (__LINE__, __FILE__,
// ...); Name holds the constant's spelling. The parser does not produce it
// for null, true or false: those names reach the tree as a PathExpr.
type BuiltinConst struct {
	base
	Name intern.Handle
}

func (n *BuiltinConst) Children() []Node { return nil }
func (n *BuiltinConst) Accept(v Visitor) { v.VisitBuiltinConst(n) }
func (n *BuiltinConst) exprNode()        {}

// ArrayItem is one element of an ArrayLiteral: an optional key, a value,
// and a by-reference flag ("'k' => &$v"). Spread marks a "...$x" unpack
// entry, in which case Key is always nil.
type ArrayItem struct {
	Key    Expr
	Value  Expr
	ByRef  bool
	Spread bool
}

// ArrayLiteral is an ordered array(...) or [...] literal.
type ArrayLiteral struct {
	base
	Items []ArrayItem
}

func (n *ArrayLiteral) Children() []Node {
	var out []Node
	for _, it := range n.Items {
		if it.Key != nil {
			out = append(out, it.Key)
		}
		if it.Value != nil {
			out = append(out, it.Value)
		}
	}
	return out
}
func (n *ArrayLiteral) Accept(v Visitor) { v.VisitArrayLiteral(n) }
func (n *ArrayLiteral) exprNode()        {}

// Variable is a simple "$name" reference.
type Variable struct {
	base
	Name intern.Handle
}

func (n *Variable) Children() []Node { return nil }
func (n *Variable) Accept(v Visitor) { v.VisitVariable(n) }
func (n *Variable) exprNode()        {}

// VarVar is an indirect variable fetch ("$$x" or "${expr}" used as a
// reference rather than an interpolation delimiter): Name evaluates at
// runtime to the name of the variable being fetched.
type VarVar struct {
	base
	Name Expr
}

func (n *VarVar) Children() []Node { return nodes(n.Name) }
func (n *VarVar) Accept(v Visitor) { v.VisitVarVar(n) }
func (n *VarVar) exprNode()        {}

// RefExpr marks an expression taken by reference ("&$x"), used inside
// array literals, foreach values, closure "use" is handled separately via
// ClosureUse.
type RefExpr struct {
	base
	Target Expr
}

func (n *RefExpr) Children() []Node { return nodes(n.Target) }
func (n *RefExpr) Accept(v Visitor) { v.VisitRefExpr(n) }
func (n *RefExpr) exprNode()        {}

// CloneExpr is "clone expr".
type CloneExpr struct {
	base
	Operand Expr
}

func (n *CloneExpr) Children() []Node { return nodes(n.Operand) }
func (n *CloneExpr) Accept(v Visitor) { v.VisitCloneExpr(n) }
func (n *CloneExpr) exprNode()        {}

// IssetExpr is "isset(e1, e2, ...)"; Args is never empty.
type IssetExpr struct {
	base
	Args []Expr
}

func (n *IssetExpr) Children() []Node { return exprNodes(n.Args) }
func (n *IssetExpr) Accept(v Visitor) { v.VisitIssetExpr(n) }
func (n *IssetExpr) exprNode()        {}

// EmptyExpr is "empty(expr)".
type EmptyExpr struct {
	base
	Arg Expr
}

func (n *EmptyExpr) Children() []Node { return nodes(n.Arg) }
func (n *EmptyExpr) Accept(v Visitor) { v.VisitEmptyExpr(n) }
func (n *EmptyExpr) exprNode()        {}

// ExitExpr is "exit" or "exit(expr)"; Arg is nil when no argument was
// given. "die" is not a keyword and parses as an ordinary call.
type ExitExpr struct {
	base
	Arg Expr
}

func (n *ExitExpr) Children() []Node { return nodes(n.Arg) }
func (n *ExitExpr) Accept(v Visitor) { v.VisitExitExpr(n) }
func (n *ExitExpr) exprNode()        {}

// IncludeKind distinguishes the four include/require forms, which only
// differ in their runtime failure behavior.
type IncludeKind int

const (
	IncludeInclude IncludeKind = iota
	IncludeIncludeOnce
	IncludeRequire
	IncludeRequireOnce
)

// IncludeExpr is "include expr", "include_once expr", "require expr", or
// "require_once expr".
type IncludeExpr struct {
	base
	Kind IncludeKind
	Arg  Expr
}

func (n *IncludeExpr) Children() []Node { return nodes(n.Arg) }
func (n *IncludeExpr) Accept(v Visitor) { v.VisitIncludeExpr(n) }
func (n *IncludeExpr) exprNode()        {}

// ArrayIdx is a chain of "[...]" subscripts applied to Base. Indices is
// never empty; a nil entry denotes the append form ("$a[] = ...").
type ArrayIdx struct {
	base
	Base    Expr
	Indices []Expr
}

func (n *ArrayIdx) Children() []Node {
	out := nodes(n.Base)
	return append(out, exprNodes(n.Indices)...)
}
func (n *ArrayIdx) Accept(v Visitor) { v.VisitArrayIdx(n) }
func (n *ArrayIdx) exprNode()        {}

// ObjMember is a chain of "->member" accesses applied to Base. Each entry
// of Members is a Variable (for "->$name"), an Ident (for "->name"), or
// any Expr (for "->{expr}").
type ObjMember struct {
	base
	Base    Expr
	Members []Expr
}

func (n *ObjMember) Children() []Node {
	out := nodes(n.Base)
	return append(out, exprNodes(n.Members)...)
}
func (n *ObjMember) Accept(v Visitor) { v.VisitObjMember(n) }
func (n *ObjMember) exprNode()        {}

// StaticMember is a chain of "::" accesses applied to a class reference
// Base. Each entry of Members is a Variable (for "::$prop") or an Ident
// (for "::NAME", "::method" and "::class").
type StaticMember struct {
	base
	Base    Expr
	Members []Expr
}

func (n *StaticMember) Children() []Node {
	out := nodes(n.Base)
	return append(out, exprNodes(n.Members)...)
}
func (n *StaticMember) Accept(v Visitor) { v.VisitStaticMember(n) }
func (n *StaticMember) exprNode()        {}

// Argument is one entry of a call or "new" argument list; Spread marks
// "...$args" unpacking.
type Argument struct {
	Value  Expr
	Spread bool
}

// Call is a function/method/closure invocation.
type Call struct {
	base
	Callee Expr
	Args   []Argument
}

func (n *Call) Children() []Node {
	out := nodes(n.Callee)
	for _, a := range n.Args {
		out = append(out, a.Value)
	}
	return out
}
func (n *Call) Accept(v Visitor) { v.VisitCall(n) }
func (n *Call) exprNode()        {}

// NewExpr is "new ClassRef(args)"; ClassRef is a PathExpr for a plain
// class name or an arbitrary expression for "new ($expr)(...)".
type NewExpr struct {
	base
	ClassRef Expr
	Args     []Argument
}

func (n *NewExpr) Children() []Node {
	out := nodes(n.ClassRef)
	for _, a := range n.Args {
		out = append(out, a.Value)
	}
	return out
}
func (n *NewExpr) Accept(v Visitor) { v.VisitNewExpr(n) }
func (n *NewExpr) exprNode()        {}

// UnaryExpr is a prefix "+ - ~ ! @ ++ --" operator applied to Operand.
type UnaryExpr struct {
	base
	Op      string
	Operand Expr
}

func (n *UnaryExpr) Children() []Node { return nodes(n.Operand) }
func (n *UnaryExpr) Accept(v Visitor) { v.VisitUnaryExpr(n) }
func (n *UnaryExpr) exprNode()        {}

// PostIncDec is a postfix "++" or "--".
type PostIncDec struct {
	base
	Op      string // "++" or "--"
	Operand Expr
}

func (n *PostIncDec) Children() []Node { return nodes(n.Operand) }
func (n *PostIncDec) Accept(v Visitor) { v.VisitPostIncDec(n) }
func (n *PostIncDec) exprNode()        {}

// BinaryExpr is an infix binary operator.
type BinaryExpr struct {
	base
	Op    string
	Left  Expr
	Right Expr
}

func (n *BinaryExpr) Children() []Node { return nodes(n.Left, n.Right) }
func (n *BinaryExpr) Accept(v Visitor) { v.VisitBinaryExpr(n) }
func (n *BinaryExpr) exprNode()        {}

// InstanceOfExpr is "expr instanceof ClassRef". Class is a PathExpr for a
// plain name or any Expr for a dynamic class reference.
type InstanceOfExpr struct {
	base
	Operand Expr
	Class   Expr
}

func (n *InstanceOfExpr) Children() []Node { return nodes(n.Operand, n.Class) }
func (n *InstanceOfExpr) Accept(v Visitor) { v.VisitInstanceOfExpr(n) }
func (n *InstanceOfExpr) exprNode()        {}

// CastExpr is "(int|double|string|array|object|bool|unset) expr".
type CastExpr struct {
	base
	Kind    string
	Operand Expr
}

func (n *CastExpr) Children() []Node { return nodes(n.Operand) }
func (n *CastExpr) Accept(v Visitor) { v.VisitCastExpr(n) }
func (n *CastExpr) exprNode()        {}

// YieldExpr is "yield", "yield expr", "yield key => expr", or (From set)
// "yield from expr".
type YieldExpr struct {
	base
	Key   Expr
	Value Expr
	From  bool
}

func (n *YieldExpr) Children() []Node { return nodes(n.Key, n.Value) }
func (n *YieldExpr) Accept(v Visitor) { v.VisitYieldExpr(n) }
func (n *YieldExpr) exprNode()        {}

// AnonFunction is an anonymous "function (...) use (...) { ... }"
// expression.
type AnonFunction struct {
	base
	Decl   *FunctionDecl
	Static bool
}

func (n *AnonFunction) Children() []Node {
	if n.Decl.Body == nil {
		return nil
	}
	return []Node{n.Decl.Body}
}
func (n *AnonFunction) Accept(v Visitor) { v.VisitAnonFunction(n) }
func (n *AnonFunction) exprNode()        {}

// AssignExpr is a plain "target = value" assignment.
type AssignExpr struct {
	base
	Target Expr
	Value  Expr
}

func (n *AssignExpr) Children() []Node { return nodes(n.Target, n.Value) }
func (n *AssignExpr) Accept(v Visitor) { v.VisitAssignExpr(n) }
func (n *AssignExpr) exprNode()        {}

// AssignRefExpr is "target =& value".
type AssignRefExpr struct {
	base
	Target Expr
	Value  Expr
}

func (n *AssignRefExpr) Children() []Node { return nodes(n.Target, n.Value) }
func (n *AssignRefExpr) Accept(v Visitor) { v.VisitAssignRefExpr(n) }
func (n *AssignRefExpr) exprNode()        {}

// CompoundAssignExpr is "target op= value" for any of the compound
// assignment operators.
type CompoundAssignExpr struct {
	base
	Op     string
	Target Expr
	Value  Expr
}

func (n *CompoundAssignExpr) Children() []Node { return nodes(n.Target, n.Value) }
func (n *CompoundAssignExpr) Accept(v Visitor) { v.VisitCompoundAssignExpr(n) }
func (n *CompoundAssignExpr) exprNode()        {}

// ListExpr is a "list(...)" or "[...]" destructuring target, valid only on
// the left side of an assignment. Items reuses ArrayItem so nested/keyed
// destructuring composes the same way array literals do.
type ListExpr struct {
	base
	Items []ArrayItem
}

func (n *ListExpr) Children() []Node {
	var out []Node
	for _, it := range n.Items {
		if it.Key != nil {
			out = append(out, it.Key)
		}
		if it.Value != nil {
			out = append(out, it.Value)
		}
	}
	return out
}
func (n *ListExpr) Accept(v Visitor) { v.VisitListExpr(n) }
func (n *ListExpr) exprNode()        {}

// TernaryExpr is "cond ? then : else"; Then is nil for the Elvis form
// ("cond ?: else").
type TernaryExpr struct {
	base
	Cond Expr
	Then Expr
	Else Expr
}

func (n *TernaryExpr) Children() []Node { return nodes(n.Cond, n.Then, n.Else) }
func (n *TernaryExpr) Accept(v Visitor) { v.VisitTernaryExpr(n) }
func (n *TernaryExpr) exprNode()        {}
