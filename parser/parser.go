// Package parser implements the recursive-descent, Pratt-style expression
// parser described in spec.md §4.3: it consumes a token vector produced by
// package lexer and produces a tree of package ast statements.
package parser

import (
	"github.com/google/uuid"

	"github.com/wudi/phpcore/ast"
	"github.com/wudi/phpcore/diag"
	"github.com/wudi/phpcore/intern"
	"github.com/wudi/phpcore/lexer"
)

// ParseOptions configures a single parse.
type ParseOptions struct {
	// Filename is copied onto the ParseResult; SpannedParserError does not
	// carry it. The core itself does no I/O.
	Filename string
	// MaxTokens, if non-zero, is forwarded to the lexer as a cooperative
	// guard against pathological inputs.
	MaxTokens int
	// ParseID, if non-nil, overrides the generated parse id — tests pin it
	// for reproducible SpannedParserError comparisons.
	ParseID *uuid.UUID
}

// ParseResult is the terminal output of a successful parse.
type ParseResult struct {
	ParseID    uuid.UUID
	Filename   string
	Interner   *intern.Interner
	Statements []ast.Stmt
}

// ParseString tokenizes and parses src in one call, owning a fresh Interner
// for the duration. It is the core's single public entry point.
func ParseString(src []byte, opts ParseOptions) (*ParseResult, error) {
	in := intern.New()
	parseID := uuid.New()
	if opts.ParseID != nil {
		parseID = *opts.ParseID
	}

	toks, err := tokenizeFiltered(src, in, opts.MaxTokens)
	if err != nil {
		lm := lexer.NewLineMap(src)
		if se, ok := err.(*lexer.SyntaxError); ok {
			return nil, diag.FromSyntaxError(lm, se, parseID)
		}
		return nil, err
	}

	p := &Parser{
		toks:    toks,
		in:      in,
		lm:      lexer.NewLineMap(src),
		src:     src,
		parseID: parseID,
	}

	stmts, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		ParseID:    parseID,
		Filename:   opts.Filename,
		Interner:   in,
		Statements: stmts,
	}, nil
}

// tokenizeFiltered runs the lexer to completion and rewrites the
// mode-switching tokens spec.md §4.3 says the parser never sees directly:
// OPEN_TAG is dropped, OPEN_TAG_ECHO becomes a T_ECHO, CLOSE_TAG becomes an
// (implicit-terminator) SEMICOLON, and INLINE_HTML becomes a full
// "echo '<the html>';" token sequence so the ordinary echo-statement
// grammar handles it without special-casing.
func tokenizeFiltered(src []byte, in *intern.Interner, maxTokens int) ([]lexer.Token, error) {
	l := lexer.New(src, in)
	if maxTokens > 0 {
		l.SetMaxTokens(maxTokens)
	}

	var out []lexer.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case lexer.OPEN_TAG:
			continue
		case lexer.OPEN_TAG_ECHO:
			out = append(out, lexer.Token{Type: lexer.T_ECHO, Span: tok.Span})
		case lexer.CLOSE_TAG:
			out = append(out, lexer.Token{Type: lexer.SEMICOLON, Span: tok.Span})
		case lexer.INLINE_HTML:
			out = append(out,
				lexer.Token{Type: lexer.T_ECHO, Span: lexer.Span{Start: tok.Span.Start, End: tok.Span.Start}},
				tok,
				lexer.Token{Type: lexer.SEMICOLON, Span: lexer.Span{Start: tok.Span.End, End: tok.Span.End}},
			)
		default:
			out = append(out, tok)
		}
		if tok.Type == lexer.END {
			return out, nil
		}
	}
}

// Parser walks a pre-tokenized, pre-filtered vector with a cheap integer
// cursor; backtracking is just saving and restoring pos (spec.md §9).
type Parser struct {
	toks []lexer.Token
	pos  int

	in  *intern.Interner
	lm  *lexer.LineMap
	src []byte

	parseID uuid.UUID

	// deepest-error tracking (spec.md §4.3.10): noteFailure keeps the
	// failure whose cursor position is furthest. Dispatch is LL(1), so no
	// alternative is retried; each parse function returns its own error
	// and these fields are not read back.
	deepestPos int
	deepestErr error
}

// mark returns a cursor snapshot; reset rewinds to it. Both are O(1).
func (p *Parser) mark() int       { return p.pos }
func (p *Parser) reset(mark int)  { p.pos = mark }

func (p *Parser) cur() lexer.Token {
	return p.toks[p.pos]
}

func (p *Parser) at(tt lexer.TokenType) bool { return p.cur().Type == tt }

func (p *Parser) advance() lexer.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// expect consumes the current token if it matches tt, else records (and
// returns) a syntax error at the current position.
func (p *Parser) expect(tt lexer.TokenType, expected ...string) (lexer.Token, error) {
	if p.at(tt) {
		return p.advance(), nil
	}
	if len(expected) == 0 {
		expected = []string{lexer.TokenNames[tt]}
	}
	return lexer.Token{}, p.fail(expected)
}

// fail builds a syntax diag.SpannedParserError at the current position and
// records it against the deepest-error tracker.
func (p *Parser) fail(expected []string) error {
	err := diag.NewSyntax(p.lm, p.cur().Span, expected, p.parseID)
	p.noteFailure(err)
	return err
}

func (p *Parser) failMsg(msg string) error {
	err := diag.NewSyntax(p.lm, p.cur().Span, nil, p.parseID)
	err.Message = msg
	p.noteFailure(err)
	return err
}

func (p *Parser) noteFailure(err error) {
	if p.pos >= p.deepestPos {
		p.deepestPos = p.pos
		p.deepestErr = err
	}
}

// internOf returns a token's interned Handle; it must only be called on
// tokens that carry text (HasText).
func (p *Parser) internOf(tok lexer.Token) intern.Handle { return tok.Handle }

func span(a, b ast.Span) ast.Span { return lexer.Join(a, b) }
