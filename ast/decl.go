package ast

import "github.com/wudi/phpcore/intern"

// Path is a qualified name: an optional leading "\" (Absolute), zero or
// more namespace segments, and a final identifier. A Path with no
// namespace segments has Name as its sole segment, per the data model's
// invariant that unqualified names are one-segment paths.
type Path struct {
	Sp        Span
	Absolute  bool
	Namespace []intern.Handle
	Name      intern.Handle
}

func (p *Path) Span() Span { return p.Sp }

// PathExpr is a name used in expression position: a bare reference to a
// constant, function, or class, resolved by a later pass.
type PathExpr struct {
	base
	Path *Path
}

func (n *PathExpr) Children() []Node { return nil }
func (n *PathExpr) Accept(v Visitor) { v.VisitPathExpr(n) }
func (n *PathExpr) exprNode()        {}

// TypeHint is a parameter or return type declaration: either a builtin
// scalar/compound name or a class Path, optionally nullable ("?Foo").
type TypeHint struct {
	Sp       Span
	Nullable bool
	Builtin  intern.Handle // set when the hint is a scalar keyword (int, string, ...)
	Class    *Path         // set when the hint is a class/interface name
}

// ParamDefinition describes one formal parameter of a function or method.
type ParamDefinition struct {
	Sp       Span
	Name     intern.Handle
	ByRef    bool
	Variadic bool
	Type     *TypeHint
	Default  Expr
}

// ClosureUse is one entry of a closure's "use (...)" capture list.
type ClosureUse struct {
	Name  intern.Handle
	ByRef bool
}

// FunctionDecl is the shape shared by named functions, methods, and
// anonymous function expressions. Body is nil for an abstract or interface
// method declaration.
type FunctionDecl struct {
	Name       intern.Handle // empty Handle for anonymous functions
	Params     []*ParamDefinition
	Body       *Block
	Uses       []ClosureUse
	ByRef      bool
	ReturnType *TypeHint
}

// ClassModifier is a bitset of the modifiers that precede "class".
type ClassModifier uint8

const (
	ClassAbstract ClassModifier = 1 << iota
	ClassFinal
)

// ClassKind distinguishes the three declaration forms the OO grammar
// produces; they share one member-list shape.
type ClassKind int

const (
	ClassKindClass ClassKind = iota
	ClassKindInterface
	ClassKindTrait
)

// ClassDecl is a class, interface, or trait declaration.
type ClassDecl struct {
	Kind       ClassKind
	Modifiers  ClassModifier
	Name       intern.Handle
	Extends    *Path   // class: single base; interface: first of possibly several
	Extra      []*Path // interface's additional "extends" entries
	Implements []*Path
	Members    []Member
	Sp         Span
}

func (n *ClassDecl) Span() Span { return n.Sp }

// MemberModifier is a bitset of visibility/static/abstract/final modifiers
// on a class member.
type MemberModifier uint8

const (
	ModPublic MemberModifier = 1 << iota
	ModProtected
	ModPrivate
	ModStatic
	ModAbstract
	ModFinal
)

// Member is implemented by every class-body entry: constants, properties,
// methods, and trait-use blocks.
type Member interface {
	memberNode()
}

// ConstMember is a class or interface constant declaration.
type ConstMember struct {
	Modifiers MemberModifier
	Name      intern.Handle
	Value     Expr
}

func (*ConstMember) memberNode() {}

// PropertyMember is one "$name [= default]" entry of a property
// declaration group.
type PropertyMember struct {
	Modifiers MemberModifier
	Name      intern.Handle
	Default   Expr
	Type      *TypeHint
}

func (*PropertyMember) memberNode() {}

// MethodMember is a class method; Decl.Body is nil for an abstract method.
type MethodMember struct {
	Modifiers MemberModifier
	Decl      *FunctionDecl
}

func (*MethodMember) memberNode() {}

// TraitAdaptation is one entry of a "use Trait { ... }" adaptation block:
// either a precedence resolution ("Trait::method insteadof Other, ...") or
// a visibility/alias change ("method as [modifiers] [alias]").
type TraitAdaptation struct {
	Trait      *Path // nil when the adapted method is unqualified
	Method     intern.Handle
	InsteadOf  []*Path
	AsAlias    intern.Handle // zero Handle when no alias is given
	AsModifier MemberModifier
}

// TraitUseMember is a "use Trait1, Trait2 { adaptations }" member.
type TraitUseMember struct {
	Traits      []*Path
	Adaptations []TraitAdaptation
}

func (*TraitUseMember) memberNode() {}

// UseClause is one entry of a top-level "use" import statement.
type UseClause struct {
	Path  *Path
	Alias intern.Handle // zero Handle when no "as" alias is given
}

// CatchClause is one "catch (Type ... $var) { ... }" arm of a try
// statement; Types holds every alternative in a "Type1 | Type2" catch.
type CatchClause struct {
	Types []*Path
	Var   intern.Handle // zero Handle when the exception is not bound
	Body  *Block
}

// SwitchCase is one "case expr:" or "default:" arm; Default implies Conds
// is empty and vice versa.
type SwitchCase struct {
	Conds   []Expr
	Default bool
	Body    []Stmt
}
