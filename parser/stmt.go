package parser

import (
	"github.com/wudi/phpcore/ast"
	"github.com/wudi/phpcore/intern"
	"github.com/wudi/phpcore/lexer"
)

// parseStatement dispatches on the current token to the grammar production
// spec.md §4.3.8 lists for it, falling back to an expression-statement when
// nothing more specific matches.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.SEMICOLON:
		p.advance()
		return spanned(&ast.ExprStmt{}, tok.Span), nil
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.T_TRY:
		return p.parseTryStmt()
	case lexer.T_UNSET:
		return p.parseUnsetStmt()
	case lexer.T_FOREACH:
		return p.parseForeachStmt()
	case lexer.T_FOR:
		return p.parseForStmt()
	case lexer.T_SWITCH:
		return p.parseSwitchStmt()
	case lexer.T_IF:
		return p.parseIfStmt()
	case lexer.T_WHILE:
		return p.parseWhileStmt()
	case lexer.T_DO:
		return p.parseDoWhileStmt()
	case lexer.T_GLOBAL:
		return p.parseGlobalVarDecl()
	case lexer.T_FUNCTION:
		return p.parseFunctionDeclStmt()
	case lexer.T_ABSTRACT, lexer.T_FINAL, lexer.T_CLASS, lexer.T_INTERFACE, lexer.T_TRAIT:
		return p.parseClassDeclStmt()
	case lexer.T_ECHO:
		return p.parseEchoStmt()
	case lexer.T_RETURN:
		return p.parseReturnStmt()
	case lexer.T_CONTINUE:
		return p.parseBreakContinue(false)
	case lexer.T_BREAK:
		return p.parseBreakContinue(true)
	case lexer.T_THROW:
		return p.parseThrowStmt()
	case lexer.T_GOTO:
		return p.parseGotoStmt()
	case lexer.T_DECLARE:
		return p.parseDeclareStmt()
	case lexer.T_NAMESPACE:
		return p.parseNamespaceDecl()
	case lexer.T_USE:
		return p.parseUseStmt()
	case lexer.T_STATIC:
		if p.pos+1 < len(p.toks) && p.toks[p.pos+1].Type == lexer.VARIABLE {
			return p.parseStaticVarDecl()
		}
	case lexer.IDENT:
		if p.peekIsLabelColon() {
			return p.parseLabelStmt()
		}
	}
	return p.parseExprStmt()
}

// parseBlock parses a brace-delimited statement list.
func (p *Parser) parseBlock() (*ast.Block, error) {
	start, err := p.expect(lexer.LBRACE)
	if err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.at(lexer.RBRACE) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	end, err := p.expect(lexer.RBRACE)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.Block{Stmts: stmts}, span(start.Span, end.Span)), nil
}

// parseAltBody parses the ": stmt* endKeyword ;" tail of an alternate-syntax
// compound statement, returning its body collapsed into a *ast.Block.
func (p *Parser) parseAltBody(start ast.Span, endKeyword lexer.TokenType) (ast.Stmt, error) {
	p.advance() // ':'
	var stmts []ast.Stmt
	for !p.at(endKeyword) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if _, err := p.expect(endKeyword); err != nil {
		return nil, err
	}
	semi, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.Block{Stmts: stmts}, span(start, semi.Span)), nil
}

func (p *Parser) peekIsLabelColon() bool {
	return p.pos+1 < len(p.toks) && p.toks[p.pos+1].Type == lexer.COLON
}

func (p *Parser) parseLabelStmt() (ast.Stmt, error) {
	tok := p.advance()
	colon := p.advance() // ':'
	return spanned(&ast.LabelStmt{Name: tok.Handle}, span(tok.Span, colon.Span)), nil
}

func (p *Parser) parseGotoStmt() (ast.Stmt, error) {
	start := p.advance().Span
	_, name, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.GotoStmt{Label: p.in.InternString(name)}, span(start, end.Span)), nil
}

func (p *Parser) parseUnsetStmt() (ast.Stmt, error) {
	start := p.advance().Span
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var vars []ast.Expr
	for !p.at(lexer.RPAREN) {
		v, err := p.parseExpr(precNone)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	end, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.UnsetStmt{Vars: vars}, span(start, end.Span)), nil
}

func (p *Parser) parseEchoStmt() (ast.Stmt, error) {
	start := p.advance().Span
	var args []ast.Expr
	for {
		e, err := p.parseExpr(precNone)
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.EchoStmt{Args: args}, span(start, end.Span)), nil
}

func (p *Parser) parseReturnStmt() (ast.Stmt, error) {
	start := p.advance().Span
	var val ast.Expr
	if !p.at(lexer.SEMICOLON) {
		var err error
		val, err = p.parseExpr(precNone)
		if err != nil {
			return nil, err
		}
	}
	end, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.ReturnStmt{Value: val}, span(start, end.Span)), nil
}

func (p *Parser) parseBreakContinue(isBreak bool) (ast.Stmt, error) {
	start := p.advance().Span
	var level ast.Expr
	if !p.at(lexer.SEMICOLON) {
		var err error
		level, err = p.parseExpr(precNone)
		if err != nil {
			return nil, err
		}
	}
	end, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	if isBreak {
		return spanned(&ast.BreakStmt{Level: level}, span(start, end.Span)), nil
	}
	return spanned(&ast.ContinueStmt{Level: level}, span(start, end.Span)), nil
}

func (p *Parser) parseThrowStmt() (ast.Stmt, error) {
	start := p.advance().Span
	e, err := p.parseExpr(precNone)
	if err != nil {
		return nil, err
	}
	end, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.ThrowStmt{Expr: e}, span(start, end.Span)), nil
}

func (p *Parser) parseStaticVarDecl() (ast.Stmt, error) {
	start := p.advance().Span // 'static'
	var vars []ast.StaticVarItem
	for {
		tok, err := p.expect(lexer.VARIABLE, "variable")
		if err != nil {
			return nil, err
		}
		var def ast.Expr
		if p.at(lexer.ASSIGN) {
			p.advance()
			def, err = p.parseExpr(precNone)
			if err != nil {
				return nil, err
			}
		}
		vars = append(vars, ast.StaticVarItem{Name: tok.Handle, Default: def})
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.StaticVarDecl{Vars: vars}, span(start, end.Span)), nil
}

func (p *Parser) parseGlobalVarDecl() (ast.Stmt, error) {
	start := p.advance().Span
	var names []intern.Handle
	for {
		tok, err := p.expect(lexer.VARIABLE, "variable")
		if err != nil {
			return nil, err
		}
		names = append(names, tok.Handle)
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.GlobalVarDecl{Names: names}, span(start, end.Span)), nil
}

func (p *Parser) parseTryStmt() (ast.Stmt, error) {
	start := p.advance().Span // 'try'
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var catches []*ast.CatchClause
	for p.at(lexer.T_CATCH) {
		p.advance()
		if _, err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		var types []*ast.Path
		for {
			t, err := p.parseName()
			if err != nil {
				return nil, err
			}
			types = append(types, t)
			if p.at(lexer.PIPE) {
				p.advance()
				continue
			}
			break
		}
		var varName intern.Handle
		if p.at(lexer.VARIABLE) {
			varName = p.advance().Handle
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		cbody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		catches = append(catches, &ast.CatchClause{Types: types, Var: varName, Body: cbody})
	}
	var finally *ast.Block
	end := body.Span()
	if len(catches) > 0 {
		end = catches[len(catches)-1].Body.Span()
	}
	if p.at(lexer.T_FINALLY) {
		p.advance()
		finally, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
		end = finally.Span()
	}
	return spanned(&ast.TryStmt{Body: body, Catches: catches, Finally: finally}, span(start, end)), nil
}

func (p *Parser) parseExprListUntil(stop lexer.TokenType) ([]ast.Expr, error) {
	var out []ast.Expr
	for !p.at(stop) {
		e, err := p.parseExpr(precNone)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return out, nil
}

func (p *Parser) parseForStmt() (ast.Stmt, error) {
	start := p.advance().Span
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	init, err := p.parseExprListUntil(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	cond, err := p.parseExprListUntil(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	loop, err := p.parseExprListUntil(lexer.RPAREN)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	var body ast.Stmt
	if p.at(lexer.COLON) {
		body, err = p.parseAltBody(start, lexer.T_ENDFOR)
	} else {
		body, err = p.parseStatement()
	}
	if err != nil {
		return nil, err
	}
	return spanned(&ast.ForStmt{Init: init, Cond: cond, Loop: loop, Body: body}, span(start, body.Span())), nil
}

func (p *Parser) parseForeachStmt() (ast.Stmt, error) {
	start := p.advance().Span
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	subject, err := p.parseExpr(precNone)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.T_AS); err != nil {
		return nil, err
	}
	byRef := false
	if p.at(lexer.AMP) {
		byRef = true
		p.advance()
	}
	first, err := p.parseExpr(precNone)
	if err != nil {
		return nil, err
	}
	var key, value ast.Expr
	if p.at(lexer.DOUBLE_ARROW) {
		p.advance()
		key = first
		if p.at(lexer.AMP) {
			byRef = true
			p.advance()
		}
		value, err = p.parseExpr(precNone)
		if err != nil {
			return nil, err
		}
	} else {
		value = first
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	var body ast.Stmt
	if p.at(lexer.COLON) {
		body, err = p.parseAltBody(start, lexer.T_ENDFOREACH)
	} else {
		body, err = p.parseStatement()
	}
	if err != nil {
		return nil, err
	}
	return spanned(&ast.ForeachStmt{Subject: subject, Key: key, Value: value, ByRef: byRef, Body: body}, span(start, body.Span())), nil
}

func (p *Parser) parseWhileStmt() (ast.Stmt, error) {
	start := p.advance().Span
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(precNone)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	var body ast.Stmt
	if p.at(lexer.COLON) {
		body, err = p.parseAltBody(start, lexer.T_ENDWHILE)
	} else {
		body, err = p.parseStatement()
	}
	if err != nil {
		return nil, err
	}
	return spanned(&ast.WhileStmt{Cond: cond, Body: body}, span(start, body.Span())), nil
}

func (p *Parser) parseDoWhileStmt() (ast.Stmt, error) {
	start := p.advance().Span // 'do'
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.T_WHILE); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(precNone)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	end, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.DoWhileStmt{Body: body, Cond: cond}, span(start, end.Span)), nil
}

func (p *Parser) parseSwitchStmt() (ast.Stmt, error) {
	start := p.advance().Span
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	subject, err := p.parseExpr(precNone)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	var cases []*ast.SwitchCase
	for !p.at(lexer.RBRACE) {
		c, err := p.parseSwitchCase()
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	end, err := p.expect(lexer.RBRACE)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.SwitchStmt{Subject: subject, Cases: cases}, span(start, end.Span)), nil
}

func (p *Parser) parseSwitchCase() (*ast.SwitchCase, error) {
	var conds []ast.Expr
	isDefault := false
	if p.at(lexer.T_DEFAULT) {
		p.advance()
		isDefault = true
	} else {
		if _, err := p.expect(lexer.T_CASE); err != nil {
			return nil, err
		}
		c, err := p.parseExpr(precNone)
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	if p.at(lexer.COLON) {
		p.advance()
	} else if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	var body []ast.Stmt
	for !(p.at(lexer.T_CASE) || p.at(lexer.T_DEFAULT) || p.at(lexer.RBRACE)) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, s)
	}
	return &ast.SwitchCase{Conds: conds, Default: isDefault, Body: body}, nil
}

// parseIfStmt parses the brace-style "if (cond) then [elseif ...] [else
// else_]" form, desugaring the elseif chain into nested *ast.IfStmt values
// held by Else, and the alternate "if (cond): ... endif;" colon form.
func (p *Parser) parseIfStmt() (ast.Stmt, error) {
	start := p.advance().Span
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(precNone)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	if p.at(lexer.COLON) {
		return p.parseIfAltTail(start, cond)
	}

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	end := then.Span()
	elseStmt, elseEnd, err := p.parseElseClause()
	if err != nil {
		return nil, err
	}
	if elseStmt != nil {
		end = elseEnd
	}
	return spanned(&ast.IfStmt{Cond: cond, Then: then, Else: elseStmt}, span(start, end)), nil
}

// parseElseClause parses an optional "elseif (...) stmt ..." / "else stmt"
// tail, recursing so each elseif becomes a nested IfStmt in Else.
func (p *Parser) parseElseClause() (ast.Stmt, ast.Span, error) {
	switch p.cur().Type {
	case lexer.T_ELSEIF:
		start := p.advance().Span
		if _, err := p.expect(lexer.LPAREN); err != nil {
			return nil, ast.Span{}, err
		}
		cond, err := p.parseExpr(precNone)
		if err != nil {
			return nil, ast.Span{}, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, ast.Span{}, err
		}
		then, err := p.parseStatement()
		if err != nil {
			return nil, ast.Span{}, err
		}
		end := then.Span()
		elseStmt, elseEnd, err := p.parseElseClause()
		if err != nil {
			return nil, ast.Span{}, err
		}
		if elseStmt != nil {
			end = elseEnd
		}
		node := spanned(&ast.IfStmt{Cond: cond, Then: then, Else: elseStmt}, span(start, end))
		return node, end, nil
	case lexer.T_ELSE:
		p.advance()
		body, err := p.parseStatement()
		if err != nil {
			return nil, ast.Span{}, err
		}
		return body, body.Span(), nil
	default:
		return nil, ast.Span{}, nil
	}
}

// parseIfAltTail parses the "(... ):" colon form, where exactly one
// terminating "endif;" closes the whole if/elseif/else chain.
func (p *Parser) parseIfAltTail(firstStart ast.Span, firstCond ast.Expr) (ast.Stmt, error) {
	type branch struct {
		start ast.Span
		cond  ast.Expr // nil marks the trailing "else" branch
		body  *ast.Block
	}
	var branches []branch

	cond := firstCond
	start := firstStart
	for {
		p.advance() // ':'
		var stmts []ast.Stmt
		for !(p.at(lexer.T_ELSEIF) || p.at(lexer.T_ELSE) || p.at(lexer.T_ENDIF)) {
			s, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, s)
		}
		branches = append(branches, branch{start: start, cond: cond, body: &ast.Block{Stmts: stmts}})
		if p.at(lexer.T_ELSEIF) {
			start = p.advance().Span
			if _, err := p.expect(lexer.LPAREN); err != nil {
				return nil, err
			}
			c, err := p.parseExpr(precNone)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RPAREN); err != nil {
				return nil, err
			}
			cond = c
			continue
		}
		if p.at(lexer.T_ELSE) {
			elseStart := p.advance().Span
			if _, err := p.expect(lexer.COLON); err != nil {
				return nil, err
			}
			var estmts []ast.Stmt
			for !p.at(lexer.T_ENDIF) {
				s, err := p.parseStatement()
				if err != nil {
					return nil, err
				}
				estmts = append(estmts, s)
			}
			branches = append(branches, branch{start: elseStart, cond: nil, body: &ast.Block{Stmts: estmts}})
		}
		break
	}
	if _, err := p.expect(lexer.T_ENDIF); err != nil {
		return nil, err
	}
	semi, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	end := semi.Span

	var result ast.Stmt
	for i := len(branches) - 1; i >= 0; i-- {
		b := branches[i]
		if b.cond == nil {
			result = b.body
			continue
		}
		result = spanned(&ast.IfStmt{Cond: b.cond, Then: b.body, Else: result}, span(b.start, end))
	}
	return result, nil
}

// parseDeclareStmt consumes a "declare(directive = value, ...)" clause and
// its trailing body or ";"; the directives themselves carry no semantics
// the core's AST represents, so they are parsed for syntax only.
func (p *Parser) parseDeclareStmt() (ast.Stmt, error) {
	start := p.advance().Span
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	for !p.at(lexer.RPAREN) {
		if _, _, err := p.parseIdentifierName(); err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.ASSIGN); err != nil {
			return nil, err
		}
		if _, err := p.parseExpr(precNone); err != nil {
			return nil, err
		}
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	if p.at(lexer.SEMICOLON) {
		semi := p.advance()
		return spanned(&ast.ExprStmt{}, span(start, semi.Span)), nil
	}
	return p.parseStatement()
}

func (p *Parser) parseNamespaceDecl() (ast.Stmt, error) {
	start := p.advance().Span
	var name *ast.Path
	if p.at(lexer.IDENT) {
		var err error
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	}
	if p.at(lexer.LBRACE) {
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return spanned(&ast.NamespaceDecl{Name: name, Body: body}, span(start, body.Span())), nil
	}
	end, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.NamespaceDecl{Name: name}, span(start, end.Span)), nil
}

func (p *Parser) parseUseStmt() (ast.Stmt, error) {
	start := p.advance().Span // 'use'
	if p.at(lexer.T_FUNCTION) || p.at(lexer.T_CONST) {
		p.advance()
	}
	var clauses []ast.UseClause
	for {
		path, err := p.parseName()
		if err != nil {
			return nil, err
		}
		var alias intern.Handle
		if p.at(lexer.T_AS) {
			p.advance()
			_, aliasName, err := p.parseIdentifierName()
			if err != nil {
				return nil, err
			}
			alias = p.in.InternString(aliasName)
		}
		clauses = append(clauses, ast.UseClause{Path: path, Alias: alias})
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.UseStmt{Clauses: clauses}, span(start, end.Span)), nil
}

func (p *Parser) parseExprStmt() (ast.Stmt, error) {
	start := p.cur().Span
	e, err := p.parseExpr(precNone)
	if err != nil {
		return nil, err
	}
	end, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.ExprStmt{Expr: e}, span(start, end.Span)), nil
}
