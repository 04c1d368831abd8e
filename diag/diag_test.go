package diag

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wudi/phpcore/lexer"
)

func TestFromSyntaxError_ResolvesLineAndOffsets(t *testing.T) {
	src := []byte("line one\nline two\nbad $ here\n")
	lm := lexer.NewLineMap(src)

	badByte := 18 + len("bad ") // offset of "$" on line 3
	se := &lexer.SyntaxError{Span: lexer.Span{Start: badByte, End: badByte + 1}}

	id := uuid.New()
	derr := FromSyntaxError(lm, se, id)

	assert.Equal(t, 3, derr.Line)
	assert.Equal(t, id, derr.ParseID)
	assert.Equal(t, KindLexical, derr.Kind)
	assert.True(t, derr.LineStart <= badByte && badByte < derr.LineEnd)
}

func TestNewSyntax_ExpectedTokensInMessage(t *testing.T) {
	src := []byte("<?php $a = ;")
	lm := lexer.NewLineMap(src)
	span := lexer.Span{Start: 11, End: 12}

	derr := NewSyntax(lm, span, []string{"expression"}, uuid.New())
	assert.Contains(t, derr.Error(), "expression")
	assert.Equal(t, KindSyntax, derr.Kind)
}

func TestRender_ProducesCaretUnderneathSpan(t *testing.T) {
	src := []byte("<?php $a = ;\n")
	lm := lexer.NewLineMap(src)
	span := lexer.Span{Start: 12, End: 13}

	derr := NewSyntax(lm, span, []string{"expression"}, uuid.New())
	out := derr.Render(src)

	lines := splitLines(out)
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "<?php $a = ;")
	assert.Contains(t, lines[1], "^")
}

func TestSpannedParserError_ImplementsError(t *testing.T) {
	var err error = &SpannedParserError{Message: "boom"}
	assert.EqualError(t, err, "lexical error at byte 0 (line 0): boom")
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
