package parser

import (
	"github.com/wudi/phpcore/intern"
	"github.com/wudi/phpcore/lexer"
)

// TokenizeForCLI runs the same filtered tokenization ParseString uses
// internally, exposed for callers (cmd/phpcore's tokenize subcommand) that
// want the token stream without paying for a full parse. The Interner it
// builds is discarded: token text is available directly off each Token's
// Literal field for display purposes.
func TokenizeForCLI(src []byte, maxTokens int) ([]lexer.Token, error) {
	in := intern.New()
	return tokenizeFiltered(src, in, maxTokens)
}
