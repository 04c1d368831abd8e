package parser

import "github.com/wudi/phpcore/ast"

// spannable is implemented by every *ast.X node via the SetSpan method
// promoted from ast's unexported base struct.
type spannable interface {
	SetSpan(ast.Span)
}

// spanned sets n's span after construction and returns n, letting call
// sites build a node literal and its enclosing span in one expression even
// though ast's base type isn't itself exported.
func spanned[T spannable](n T, sp ast.Span) T {
	n.SetSpan(sp)
	return n
}
