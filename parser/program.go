package parser

import (
	"github.com/wudi/phpcore/ast"
	"github.com/wudi/phpcore/lexer"
)

// parseProgram parses the top-level statement list until the lexer's
// end-of-input sentinel, the entry point ParseString drives.
func (p *Parser) parseProgram() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.at(lexer.END) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}
