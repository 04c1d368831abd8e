package parser

import (
	"github.com/wudi/phpcore/ast"
	"github.com/wudi/phpcore/lexer"
)

// isReservedNonModifier reports whether tt is one of the Language's
// keywords that spec.md §4.3.7 allows as a member name or "::"
// right-hand side (parse_identifier) even though parse_name rejects it.
// Every keyword qualifies except the ones that would be genuinely
// ambiguous as a bare identifier in expression position; since the core
// only ever calls parse_identifier at syntactically unambiguous positions
// (after "->" or "::" or as a member name), the whole keyword set is safe
// to accept here.
func isReservedNonModifier(tt lexer.TokenType) bool {
	name, ok := lexer.TokenNames[tt]
	return ok && tt >= lexer.T_ABSTRACT && tt <= lexer.T_XOR && name != ""
}

// parseIdentifierName accepts an IDENT or any keyword token and returns
// its interned text — the parse_identifier production used for member
// names and the right-hand side of "::" (spec.md §4.3.7).
func (p *Parser) parseIdentifierName() (ast.Span, string, error) {
	tok := p.cur()
	if tok.Type == lexer.IDENT {
		p.advance()
		return tok.Span, tok.Literal, nil
	}
	if isReservedNonModifier(tok.Type) {
		p.advance()
		return tok.Span, lexer.TokenNames[tok.Type], nil
	}
	return ast.Span{}, "", p.fail([]string{"identifier"})
}

// parseName parses a (possibly qualified) path: an optional leading "\"
// marking it absolute, then one or more IDENT segments joined by "\"
// (spec.md §4.3.7). Reserved keywords are never accepted here.
func (p *Parser) parseName() (*ast.Path, error) {
	start := p.cur().Span
	absolute := false
	if p.at(lexer.NS_SEPARATOR) {
		absolute = true
		p.advance()
	}

	first, err := p.expect(lexer.IDENT, "name")
	if err != nil {
		return nil, err
	}

	segments := []lexer.Token{first}
	for p.at(lexer.NS_SEPARATOR) {
		p.advance()
		seg, err := p.expect(lexer.IDENT, "name segment")
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}

	path := &ast.Path{
		Sp:       span(start, segments[len(segments)-1].Span),
		Absolute: absolute,
		Name:     segments[len(segments)-1].Handle,
	}
	for _, seg := range segments[:len(segments)-1] {
		path.Namespace = append(path.Namespace, seg.Handle)
	}
	return path, nil
}

// parsePathExpr wraps parseName as an expression.
func (p *Parser) parsePathExpr() (ast.Expr, error) {
	path, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return spanned(&ast.PathExpr{Path: path}, path.Sp), nil
}
