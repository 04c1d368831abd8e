package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wudi/phpcore/intern"
)

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	in := intern.New()
	l := New([]byte(src), in)
	var toks []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("lex error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Type == END {
			return toks
		}
	}
}

func TestLexer_BasicTags(t *testing.T) {
	toks := lexAll(t, `<?php echo "hi"; ?>after`)
	types := []TokenType{OPEN_TAG, T_ECHO, DOUBLE_QUOTE, CONSTANT_ENCAPSED_STRING, DOUBLE_QUOTE, SEMICOLON, CLOSE_TAG, INLINE_HTML, END}
	assert.Len(t, toks, len(types))
	for i, tt := range types {
		assert.Equalf(t, tt, toks[i].Type, "token %d", i)
	}
	assert.Equal(t, "hi", toks[3].Literal)
	assert.Equal(t, "after", toks[7].Literal)
}

func TestLexer_Variable(t *testing.T) {
	toks := lexAll(t, `<?php $name;`)
	assert.Equal(t, VARIABLE, toks[1].Type)
	assert.Equal(t, "name", toks[1].Literal)
}

func TestLexer_IntegerBases(t *testing.T) {
	cases := map[string]string{
		"42":    "42",
		"0x2A":  "2A",
		"052":   "52",
		"0b101": "101",
	}
	for src, digits := range cases {
		toks := lexAll(t, "<?php "+src+";")
		assert.Equalf(t, INT_LITERAL, toks[1].Type, "src=%s", src)
		_ = digits
	}
}

func TestLexer_IntegerOverflowPromotesToDouble(t *testing.T) {
	toks := lexAll(t, `<?php 99999999999999999999;`)
	assert.Equal(t, DOUBLE_LITERAL, toks[1].Type)
}

func TestLexer_CastTokens(t *testing.T) {
	cases := []string{"(int)", "(integer)", "(bool)", "(boolean)", "(double)", "(float)", "(real)", "(string)", "(array)", "(object)", "(unset)"}
	for _, c := range cases {
		toks := lexAll(t, "<?php "+c+"$x;")
		assert.NotEqualf(t, LPAREN, toks[1].Type, "cast %s must lex atomically", c)
	}
}

func TestLexer_GroupedExpressionNotCast(t *testing.T) {
	toks := lexAll(t, `<?php ($x + 1);`)
	assert.Equal(t, LPAREN, toks[1].Type)
}

func TestLexer_DoubleQuotedInterpolation(t *testing.T) {
	toks := lexAll(t, `<?php "hi $name!";`)
	var types []TokenType
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	assert.Contains(t, types, VARIABLE)
	assert.Equal(t, DOUBLE_QUOTE, toks[1].Type)
	assert.Equal(t, CONSTANT_ENCAPSED_STRING, toks[2].Type)
	assert.Equal(t, "hi ", toks[2].Literal)
	assert.Equal(t, VARIABLE, toks[3].Type)
	assert.Equal(t, "name", toks[3].Literal)
	assert.Equal(t, CONSTANT_ENCAPSED_STRING, toks[4].Type)
	assert.Equal(t, "!", toks[4].Literal)
	assert.Equal(t, DOUBLE_QUOTE, toks[5].Type)
}

func TestLexer_CurlyInterpolation(t *testing.T) {
	toks := lexAll(t, `<?php "val: {$obj->prop}";`)
	var types []TokenType
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	assert.Contains(t, types, CURLY_OPEN)
	assert.Contains(t, types, ARROW)
	assert.Contains(t, types, RBRACE)
}

func TestLexer_Heredoc(t *testing.T) {
	src := "<?php $x = <<<EOT\nhello $name\nEOT;\n"
	toks := lexAll(t, src)
	var types []TokenType
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	assert.Contains(t, types, HEREDOC_START)
	assert.Contains(t, types, HEREDOC_END)
	assert.Contains(t, types, VARIABLE)
}

func TestLexer_Nowdoc(t *testing.T) {
	src := "<?php $x = <<<'EOT'\nraw $name text\nEOT;\n"
	toks := lexAll(t, src)
	var found string
	for _, tok := range toks {
		if tok.Type == CONSTANT_ENCAPSED_STRING {
			found = tok.Literal
		}
	}
	assert.Equal(t, "raw $name text\n", found)
}

func TestLexer_SingleQuotedEscapes(t *testing.T) {
	toks := lexAll(t, `<?php 'it\'s a \\test';`)
	assert.Equal(t, CONSTANT_ENCAPSED_STRING, toks[1].Type)
	assert.Equal(t, `it's a \test`, toks[1].Literal)
}

func TestLexer_UnterminatedString(t *testing.T) {
	in := intern.New()
	l := New([]byte(`<?php 'unterminated`), in)
	l.NextToken() // OPEN_TAG
	_, err := l.NextToken()
	assert.Error(t, err)
}

func TestLexer_UnknownCharacter(t *testing.T) {
	in := intern.New()
	l := New([]byte("<?php \x01"), in)
	l.NextToken() // OPEN_TAG
	_, err := l.NextToken()
	assert.Error(t, err)
}

func TestLexer_SpansAreByteAccurate(t *testing.T) {
	src := `<?php $abc;`
	toks := lexAll(t, src)
	for _, tok := range toks {
		assert.GreaterOrEqual(t, tok.Span.Start, 0)
		assert.LessOrEqual(t, tok.Span.End, len(src))
		assert.LessOrEqual(t, tok.Span.Start, tok.Span.End)
	}
	assert.Equal(t, "$abc", src[toks[1].Span.Start:toks[1].Span.End])
}

func TestLexer_DeterminismOnResume(t *testing.T) {
	src := `<?php $a = 1 + 2;`
	whole := lexAll(t, src)

	in := intern.New()
	l := New([]byte(src), in)
	var resumed []Token
	for i := 0; i < 3; i++ {
		tok, err := l.NextToken()
		assert.NoError(t, err)
		resumed = append(resumed, tok)
	}
	for {
		tok, err := l.NextToken()
		assert.NoError(t, err)
		resumed = append(resumed, tok)
		if tok.Type == END {
			break
		}
	}
	assert.Equal(t, whole, resumed)
}
