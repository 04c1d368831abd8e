// Package lexer implements the tokenizer described in spec.md §4.2: a mode-
// stack scanner that turns raw source bytes into a stream of (Token, Span)
// pairs, switching sub-modes for double-quoted interpolation, heredoc/nowdoc
// bodies, and shell-exec strings.
package lexer

import (
	"github.com/wudi/phpcore/intern"
)

// Mode is one entry in the Lexer's mode stack (spec.md §4.2.1).
type Mode int

const (
	ModeText Mode = iota
	ModeCode
	ModeDoubleQuoted
	ModeHeredoc
	ModeShell
)

type modeFrame struct {
	mode Mode

	// Heredoc/Nowdoc only.
	label  string
	nowdoc bool

	// Set when this Code frame was pushed to parse an interpolated
	// sub-expression ("{$expr}" or "${name}") inside an enclosing
	// DoubleQuoted/Heredoc/Shell frame; braceDepth tracks unmatched '{' so
	// the Lexer knows which '}' closes the interpolation and pops back to
	// the enclosing string mode, as opposed to an ordinary '}' of a block
	// or array literal nested inside the interpolated expression.
	viaInterpolation bool
	braceDepth       int
}

// Lexer is a single-owner, single-pass tokenizer. It is not safe for
// concurrent use; callers wanting parallelism construct one Lexer per
// goroutine (see parser.ParseAll).
type Lexer struct {
	src  []byte
	in   *intern.Interner
	pos  int
	maxTokens int // 0 = unbounded
	emitted   int

	stack []modeFrame
}

// New returns a Lexer positioned at the start of src, beginning in Text mode
// per spec.md §6 ("the parser assumes the document begins in Text mode").
// in is the Interner that will own every Handle this Lexer's tokens carry;
// it must outlive the Lexer and every token it produces.
func New(src []byte, in *intern.Interner) *Lexer {
	return &Lexer{
		src:   src,
		in:    in,
		stack: []modeFrame{{mode: ModeText}},
	}
}

// SetMaxTokens installs a cooperative guard (spec.md §5): once NextToken has
// produced n tokens, every subsequent call returns an Unterminated-style
// SyntaxError instead of continuing to scan. 0 (the default) means
// unbounded.
func (l *Lexer) SetMaxTokens(n int) { l.maxTokens = n }

// textToken builds a Token of type tt spanning span whose text is s,
// interning s into l.in so the token carries a Handle per spec.md §3.2.
func (l *Lexer) textToken(tt TokenType, span Span, s string) Token {
	return Token{Type: tt, Span: span, Handle: l.in.InternString(s), Literal: s, HasText: true}
}

func (l *Lexer) top() *modeFrame { return &l.stack[len(l.stack)-1] }

func (l *Lexer) push(f modeFrame) { l.stack = append(l.stack, f) }

func (l *Lexer) pop() {
	if len(l.stack) > 1 {
		l.stack = l.stack[:len(l.stack)-1]
	}
}

func (l *Lexer) eof() bool { return l.pos >= len(l.src) }

func (l *Lexer) byteAt(off int) byte {
	if l.pos+off >= len(l.src) || l.pos+off < 0 {
		return 0
	}
	return l.src[l.pos+off]
}

func (l *Lexer) cur() byte { return l.byteAt(0) }

func (l *Lexer) advance() byte {
	b := l.cur()
	l.pos++
	return b
}

func (l *Lexer) hasPrefix(s string) bool {
	if l.pos+len(s) > len(l.src) {
		return false
	}
	return string(l.src[l.pos:l.pos+len(s)]) == s
}

func (l *Lexer) hasPrefixFold(s string) bool {
	if l.pos+len(s) > len(l.src) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := l.src[l.pos+i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		w := s[i]
		if 'A' <= w && w <= 'Z' {
			w += 'a' - 'A'
		}
		if c != w {
			return false
		}
	}
	return true
}

// NextToken produces the next Token, or a *SyntaxError. At end of input it
// returns an END token forever.
func (l *Lexer) NextToken() (Token, error) {
	if l.maxTokens > 0 && l.emitted >= l.maxTokens {
		return Token{}, &SyntaxError{Kind: ErrUnterminated, What: "token budget exceeded", Span: Span{l.pos, l.pos}}
	}

	var (
		tok Token
		err error
	)
	switch l.top().mode {
	case ModeText:
		tok, err = l.scanText()
	case ModeCode:
		tok, err = l.scanCode()
	case ModeDoubleQuoted:
		tok, err = l.scanEncaps('"', ModeDoubleQuoted)
	case ModeHeredoc:
		tok, err = l.scanHeredocBody()
	case ModeShell:
		tok, err = l.scanEncaps('`', ModeShell)
	default:
		tok, err = l.scanCode()
	}
	if err == nil {
		l.emitted++
	}
	return tok, err
}

func (l *Lexer) scanText() (Token, error) {
	start := l.pos
	if l.eof() {
		return Token{Type: END, Span: Span{start, start}}, nil
	}

	if l.hasPrefix("<?php") {
		l.pos += len("<?php")
		tok := Token{Type: OPEN_TAG, Span: Span{start, l.pos}}
		l.top().mode = ModeCode
		return tok, nil
	}
	if l.hasPrefix("<?=") {
		l.pos += len("<?=")
		tok := Token{Type: OPEN_TAG_ECHO, Span: Span{start, l.pos}}
		l.top().mode = ModeCode
		return tok, nil
	}

	for !l.eof() && !l.hasPrefix("<?php") && !l.hasPrefix("<?=") {
		l.pos++
	}
	text := string(l.src[start:l.pos])
	return l.textToken(INLINE_HTML, Span{start, l.pos}, text), nil
}
