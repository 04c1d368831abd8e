// Package ast defines the tree produced by package parser: statements and
// expressions as distinct tagged variants, each carrying a byte-accurate
// Span into the source it was parsed from.
package ast

import (
	"github.com/wudi/phpcore/intern"
	"github.com/wudi/phpcore/lexer"
)

// Span is a half-open byte range into the source, reused verbatim from the
// tokenizer so callers never have to convert between the two.
type Span = lexer.Span

// Node is implemented by every statement and expression variant.
type Node interface {
	Span() Span
	Children() []Node
	Accept(v Visitor)
}

// Expr is implemented by every expression variant.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement variant.
type Stmt interface {
	Node
	stmtNode()
}

// base carries the fields common to every node and is embedded by each
// concrete variant. It is not itself a Node: each variant supplies its own
// Children/Accept so the zero value can't be mistaken for a real node.
type base struct {
	Sp  Span
	Doc string // doc comment slot; package parser does not populate it
}

func (b base) Span() Span { return b.Sp }

// SetSpan sets a node's source span. Constructors outside this package
// build a node's fields first and its span last, once the full extent of
// its children is known, so this is exported for package parser's use.
func (b *base) SetSpan(sp Span) { b.Sp = sp }

// Block is an ordered sequence of statements sharing one enclosing span —
// the body of a function, loop, if-branch, try block, and so on.
type Block struct {
	base
	Stmts []Stmt
}

func (n *Block) Children() []Node {
	out := make([]Node, len(n.Stmts))
	for i, s := range n.Stmts {
		out[i] = s
	}
	return out
}
func (n *Block) Accept(v Visitor) { v.VisitBlock(n) }
func (n *Block) stmtNode()        {}

// Ident is a bare, non-qualified name (no namespace separator), used for
// member names after "->" and "::" and similar leaves that do not need the
// full Path machinery.
type Ident struct {
	base
	Name intern.Handle
}

func (n *Ident) Children() []Node { return nil }
func (n *Ident) Accept(v Visitor) { v.VisitIdent(n) }
func (n *Ident) exprNode()        {}

func nodes(ns ...Node) []Node {
	out := make([]Node, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func exprNodes(es []Expr) []Node {
	out := make([]Node, 0, len(es))
	for _, e := range es {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

func stmtNodes(ss []Stmt) []Node {
	out := make([]Node, 0, len(ss))
	for _, s := range ss {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
