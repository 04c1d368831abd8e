// Package diag turns the lexer's and parser's raw errors into positioned,
// renderable diagnostics, generalizing the teacher's line/column errors
// package to the byte-span position model used throughout this module.
package diag

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wudi/phpcore/lexer"
)

// Kind distinguishes the two error families of spec.md §7.
type Kind int

const (
	KindLexical Kind = iota
	KindSyntax
)

func (k Kind) String() string {
	if k == KindLexical {
		return "lexical error"
	}
	return "syntax error"
}

// SpannedParserError is the fatal diagnostic surfaced by a failed parse: a
// byte range, the 1-based source line it starts on, that line's own
// [start,end) offsets (for caret rendering), and — for syntax errors — the
// set of token descriptions that would have satisfied the lookahead.
type SpannedParserError struct {
	ParseID    uuid.UUID
	Kind       Kind
	Span       lexer.Span
	Line       int
	LineStart  int
	LineEnd    int
	Expected   []string
	Message    string
	Underlying error
}

func (e *SpannedParserError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s at byte %d (line %d): %s", e.Kind, e.Span.Start, e.Line, e.Message)
	}
	if len(e.Expected) > 0 {
		return fmt.Sprintf("%s at byte %d (line %d): expected one of %s",
			e.Kind, e.Span.Start, e.Line, strings.Join(e.Expected, ", "))
	}
	if e.Underlying != nil {
		return fmt.Sprintf("%s at byte %d (line %d): %v", e.Kind, e.Span.Start, e.Line, e.Underlying)
	}
	return fmt.Sprintf("%s at byte %d (line %d)", e.Kind, e.Span.Start, e.Line)
}

func (e *SpannedParserError) Unwrap() error { return e.Underlying }

// FromSyntaxError wraps a lexer.SyntaxError into a SpannedParserError,
// resolving the line/offset fields from lm.
func FromSyntaxError(lm *lexer.LineMap, se *lexer.SyntaxError, parseID uuid.UUID) *SpannedParserError {
	line := lm.Line(se.Span.Start)
	start, end := lm.LineRange(line)
	return &SpannedParserError{
		ParseID:   parseID,
		Kind:      KindLexical,
		Span:      se.Span,
		Line:      line,
		LineStart: start,
		LineEnd:   end,
		Message:   se.Error(),
	}
}

// NewSyntax builds a syntax-family SpannedParserError for a failed
// lookahead at span, annotated with the set of token descriptions that
// would have let the parse continue.
func NewSyntax(lm *lexer.LineMap, span lexer.Span, expected []string, parseID uuid.UUID) *SpannedParserError {
	line := lm.Line(span.Start)
	start, end := lm.LineRange(line)
	return &SpannedParserError{
		ParseID:   parseID,
		Kind:      KindSyntax,
		Span:      span,
		Line:      line,
		LineStart: start,
		LineEnd:   end,
		Expected:  expected,
	}
}

// Render produces a two-line caret-underline excerpt of source around the
// error's span: the offending source line, followed by a line of spaces
// and "^" markers spanning the error's byte range clamped to that line.
func (e *SpannedParserError) Render(source []byte) string {
	end := e.LineEnd
	if end > len(source) {
		end = len(source)
	}
	start := e.LineStart
	if start > end {
		start = end
	}
	lineText := strings.TrimRight(string(source[start:end]), "\n")

	caretStart := e.Span.Start - start
	if caretStart < 0 {
		caretStart = 0
	}
	caretEnd := e.Span.End - start
	if caretEnd > len(lineText) {
		caretEnd = len(lineText)
	}
	if caretEnd <= caretStart {
		caretEnd = caretStart + 1
	}

	prefix := fmt.Sprintf("line %d: ", e.Line)

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(lineText)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", len(prefix)+caretStart))
	b.WriteString(strings.Repeat("^", caretEnd-caretStart))
	return b.String()
}
