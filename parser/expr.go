package parser

import (
	"github.com/wudi/phpcore/ast"
	"github.com/wudi/phpcore/lexer"
)

var prefixUnaryOps = map[lexer.TokenType]bool{
	lexer.PLUS: true, lexer.MINUS: true, lexer.TILDE: true, lexer.BANG: true,
	lexer.AT: true, lexer.INC: true, lexer.DEC: true,
}

// parseExpr is the Pratt driver of spec.md §4.3.1: it parses a unary
// expression, then repeatedly consumes binary operators whose precedence
// is strictly greater than minPrec, recursing at the operator's own
// precedence for left-associativity or one below it for right-
// associativity. Ternary and instanceof are special-cased inline since
// neither fits the uniform "two operands of the same kind" shape.
func (p *Parser) parseExpr(minPrec precedence) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tt := p.cur().Type

		if tt == lexer.QUESTION && precConditional > minPrec {
			left, err = p.parseTernaryTail(left)
			if err != nil {
				return nil, err
			}
			continue
		}

		if tt == lexer.T_INSTANCEOF && precInstanceOf > minPrec {
			p.advance()
			classRef, err := p.parseClassNameRef()
			if err != nil {
				return nil, err
			}
			left = spanned(&ast.InstanceOfExpr{Operand: left, Class: classRef}, span(left.Span(), classRef.Span()))
			if p.at(lexer.T_INSTANCEOF) {
				return nil, p.failMsg("instanceof chaining is not allowed")
			}
			continue
		}

		prec, ok := binaryPrecedence[tt]
		if !ok || prec <= minPrec {
			break
		}
		op := p.advance()

		nextMin := prec
		if rightAssoc[tt] {
			nextMin = prec - 1
		}
		right, err := p.parseExpr(nextMin)
		if err != nil {
			return nil, err
		}
		left = spanned(&ast.BinaryExpr{Op: opText(op.Type), Left: left, Right: right}, span(left.Span(), right.Span()))
	}
	return left, nil
}

func (p *Parser) parseTernaryTail(cond ast.Expr) (ast.Expr, error) {
	p.advance() // '?'
	if p.at(lexer.COLON) {
		p.advance()
		elseExpr, err := p.parseExpr(precConditional - 1)
		if err != nil {
			return nil, err
		}
		return spanned(&ast.TernaryExpr{Cond: cond, Then: nil, Else: elseExpr}, span(cond.Span(), elseExpr.Span())), nil
	}
	thenExpr, err := p.parseExpr(precNone)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	elseExpr, err := p.parseExpr(precConditional - 1)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.TernaryExpr{Cond: cond, Then: thenExpr, Else: elseExpr}, span(cond.Span(), elseExpr.Span())), nil
}

// parseUnary implements spec.md §4.3.2: a prefix operator wrapping a
// recursive Unary-precedence parse, else fall through to postfix.
func (p *Parser) parseUnary() (ast.Expr, error) {
	tok := p.cur()
	if prefixUnaryOps[tok.Type] {
		p.advance()
		operand, err := p.parseExpr(precUnary)
		if err != nil {
			return nil, err
		}
		return spanned(&ast.UnaryExpr{Op: opText(tok.Type), Operand: operand}, span(tok.Span, operand.Span())), nil
	}
	return p.parsePostfix()
}

// parsePostfix implements spec.md §4.3.3.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	operand, err := p.parseOther()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.INC) || p.at(lexer.DEC) {
		op := p.advance()
		operand = spanned(&ast.PostIncDec{Op: opText(op.Type), Operand: operand}, span(operand.Span(), op.Span))
	}
	return operand, nil
}

// parseOther implements spec.md §4.3.4's ordered alternatives. Dispatch is
// on the current token, which is LL(1) for every alternative in this
// grammar (the "ambiguous lookahead" spec.md §1 warns about is resolved
// structurally: a bare name is always wrapped in a PathExpr and the
// variable-chain loop turns a following "(" into a Call uniformly).
func (p *Parser) parseOther() (ast.Expr, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.T_NEW:
		return p.parseNewExpr()
	case lexer.T_CLONE:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return spanned(&ast.CloneExpr{Operand: operand}, span(tok.Span, operand.Span())), nil
	case lexer.T_EXIT:
		return p.parseExitExpr()
	case lexer.T_YIELD:
		return p.parseYieldExpr()
	case lexer.T_YIELD_FROM:
		p.advance()
		operand, err := p.parseExpr(precConditional)
		if err != nil {
			return nil, err
		}
		return spanned(&ast.YieldExpr{Value: operand, From: true}, span(tok.Span, operand.Span())), nil
	case lexer.T_FUNCTION:
		return p.parseAnonFunction(false)
	case lexer.T_STATIC:
		if p.peekIsAnonFunction() {
			p.advance() // 'static'
			return p.parseAnonFunction(true)
		}
	case lexer.T_ISSET:
		return p.parseIssetExpr()
	case lexer.T_EMPTY:
		return p.parseEmptyExpr()
	case lexer.T_INCLUDE:
		return p.parseIncludeExpr(ast.IncludeInclude)
	case lexer.T_INCLUDE_ONCE:
		return p.parseIncludeExpr(ast.IncludeIncludeOnce)
	case lexer.T_REQUIRE:
		return p.parseIncludeExpr(ast.IncludeRequire)
	case lexer.T_REQUIRE_ONCE:
		return p.parseIncludeExpr(ast.IncludeRequireOnce)
	case lexer.CAST_INT, lexer.CAST_BOOL, lexer.CAST_DOUBLE, lexer.CAST_STRING,
		lexer.CAST_ARRAY, lexer.CAST_OBJECT, lexer.CAST_UNSET:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return spanned(&ast.CastExpr{Kind: opText(tok.Type), Operand: operand}, span(tok.Span, operand.Span())), nil
	}

	return p.parseVariableChainOrAssign()
}

func (p *Parser) peekIsAnonFunction() bool {
	if p.pos+1 >= len(p.toks) {
		return false
	}
	return p.toks[p.pos+1].Type == lexer.T_FUNCTION
}

func (p *Parser) parseExitExpr() (ast.Expr, error) {
	start := p.advance().Span // 'exit'
	if !p.at(lexer.LPAREN) {
		return spanned(&ast.ExitExpr{}, start), nil
	}
	p.advance()
	if p.at(lexer.RPAREN) {
		end := p.advance().Span
		return spanned(&ast.ExitExpr{}, span(start, end)), nil
	}
	arg, err := p.parseExpr(precNone)
	if err != nil {
		return nil, err
	}
	end, err := p.expect(lexer.RPAREN)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.ExitExpr{Arg: arg}, span(start, end.Span)), nil
}

func (p *Parser) parseYieldExpr() (ast.Expr, error) {
	start := p.advance().Span // 'yield'
	if endsExpr(p.cur().Type) {
		return spanned(&ast.YieldExpr{}, start), nil
	}
	first, err := p.parseExpr(precConditional)
	if err != nil {
		return nil, err
	}
	if p.at(lexer.DOUBLE_ARROW) {
		p.advance()
		value, err := p.parseExpr(precConditional)
		if err != nil {
			return nil, err
		}
		return spanned(&ast.YieldExpr{Key: first, Value: value}, span(start, value.Span())), nil
	}
	return spanned(&ast.YieldExpr{Value: first}, span(start, first.Span())), nil
}

// endsExpr reports whether tt cannot begin an expression, used to detect
// a bare "yield;" / "yield)" / "yield," with no value.
func endsExpr(tt lexer.TokenType) bool {
	switch tt {
	case lexer.SEMICOLON, lexer.RPAREN, lexer.RBRACKET, lexer.COMMA, lexer.END:
		return true
	}
	return false
}

func (p *Parser) parseIssetExpr() (ast.Expr, error) {
	start := p.advance().Span
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for {
		arg, err := p.parseExpr(precNone)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end, err := p.expect(lexer.RPAREN)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.IssetExpr{Args: args}, span(start, end.Span)), nil
}

func (p *Parser) parseEmptyExpr() (ast.Expr, error) {
	start := p.advance().Span
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	arg, err := p.parseExpr(precNone)
	if err != nil {
		return nil, err
	}
	end, err := p.expect(lexer.RPAREN)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.EmptyExpr{Arg: arg}, span(start, end.Span)), nil
}

func (p *Parser) parseIncludeExpr(kind ast.IncludeKind) (ast.Expr, error) {
	start := p.advance().Span
	arg, err := p.parseExpr(precNone)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.IncludeExpr{Kind: kind, Arg: arg}, span(start, arg.Span())), nil
}

func (p *Parser) parseNewExpr() (ast.Expr, error) {
	start := p.advance().Span // 'new'
	classRef, err := p.parseClassNameRef()
	if err != nil {
		return nil, err
	}
	end := classRef.Span()
	var args []ast.Argument
	if p.at(lexer.LPAREN) {
		args, err = p.parseArgumentList()
		if err != nil {
			return nil, err
		}
		end = p.toks[p.pos-1].Span
	}
	return spanned(&ast.NewExpr{ClassRef: classRef, Args: args}, span(start, end)), nil
}

// parseClassNameRef parses the class-name-reference production shared by
// "new" and "instanceof": a plain path, the "static" pseudo-class, or a
// dynamic expression (variable or parenthesized expression).
func (p *Parser) parseClassNameRef() (ast.Expr, error) {
	tok := p.cur()
	switch {
	case tok.Type == lexer.T_STATIC:
		p.advance()
		return p.staticPseudoClassRef(tok.Span), nil
	case tok.Type == lexer.IDENT || tok.Type == lexer.NS_SEPARATOR:
		return p.parsePathExpr()
	default:
		// Like parseVariableChain but without call folding, so a following
		// "(...)" is left for parseNewExpr as the constructor arguments.
		expr, err := p.parseVariableChainBase()
		for err == nil {
			switch p.cur().Type {
			case lexer.LBRACKET:
				expr, err = p.foldArrayIdx(expr)
			case lexer.ARROW:
				expr, err = p.foldObjMember(expr)
			case lexer.DOUBLE_COLON:
				expr, err = p.foldStaticMember(expr)
			default:
				return expr, nil
			}
		}
		return nil, err
	}
}

func (p *Parser) staticPseudoClassRef(sp ast.Span) ast.Expr {
	path := &ast.Path{Sp: sp, Name: p.in.InternString("static")}
	return spanned(&ast.PathExpr{Path: path}, sp)
}

// parseVariableChainOrAssign implements spec.md §4.3.4 step 7: parse a
// variable-chain, then, if immediately followed by an assignment token,
// build the corresponding Assign/AssignRef/CompoundAssign. list(...) is
// handled as a special base only reachable as an assignment target.
func (p *Parser) parseVariableChainOrAssign() (ast.Expr, error) {
	if p.at(lexer.T_LIST) || (p.at(lexer.LBRACKET) && p.looksLikeDestructure()) {
		target, err := p.parseListOrArrayDestructure()
		if err != nil {
			return nil, err
		}
		return p.finishAssign(target)
	}

	target, err := p.parseVariableChain()
	if err != nil {
		return nil, err
	}
	return p.finishAssign(target)
}

func (p *Parser) finishAssign(target ast.Expr) (ast.Expr, error) {
	switch {
	case p.at(lexer.ASSIGN):
		p.advance()
		if p.at(lexer.AMP) {
			p.advance()
			value, err := p.parseExpr(precNone)
			if err != nil {
				return nil, err
			}
			return spanned(&ast.AssignRefExpr{Target: target, Value: value}, span(target.Span(), value.Span())), nil
		}
		value, err := p.parseExpr(precNone)
		if err != nil {
			return nil, err
		}
		return spanned(&ast.AssignExpr{Target: target, Value: value}, span(target.Span(), value.Span())), nil
	case assignOps[p.cur().Type]:
		op := p.advance()
		value, err := p.parseExpr(precNone)
		if err != nil {
			return nil, err
		}
		return spanned(&ast.CompoundAssignExpr{Op: opText(op.Type), Target: target, Value: value},
			span(target.Span(), value.Span())), nil
	default:
		return target, nil
	}
}

// looksLikeDestructure disambiguates a "[" array literal from a "["
// destructuring target by probing for a following "=" after the matching
// "]"; it restores the cursor unconditionally.
func (p *Parser) looksLikeDestructure() bool {
	mark := p.mark()
	defer p.reset(mark)
	depth := 0
	for {
		tt := p.cur().Type
		if tt == lexer.END {
			return false
		}
		if tt == lexer.LBRACKET {
			depth++
		}
		if tt == lexer.RBRACKET {
			depth--
			if depth == 0 {
				p.advance()
				return p.at(lexer.ASSIGN)
			}
		}
		p.advance()
	}
}

func (p *Parser) parseListOrArrayDestructure() (ast.Expr, error) {
	start := p.cur().Span
	var closeType lexer.TokenType
	if p.at(lexer.T_LIST) {
		p.advance()
		if _, err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		closeType = lexer.RPAREN
	} else {
		p.advance() // '['
		closeType = lexer.RBRACKET
	}

	var items []ast.ArrayItem
	for !p.at(closeType) {
		if p.at(lexer.COMMA) {
			items = append(items, ast.ArrayItem{})
			p.advance()
			continue
		}
		item, err := p.parseArrayItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end, err := p.expect(closeType)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.ListExpr{Items: items}, span(start, end.Span)), nil
}

// parseVariableChain implements spec.md §4.3.5: parse a base, then fold in
// any run of "[...]", "->member", "::member", "(args)".
func (p *Parser) parseVariableChain() (ast.Expr, error) {
	expr, err := p.parseVariableChainBase()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur().Type {
		case lexer.LBRACKET:
			expr, err = p.foldArrayIdx(expr)
		case lexer.ARROW:
			expr, err = p.foldObjMember(expr)
		case lexer.DOUBLE_COLON:
			expr, err = p.foldStaticMember(expr)
		case lexer.LPAREN:
			expr, err = p.foldCall(expr)
		default:
			return expr, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) foldArrayIdx(base_ ast.Expr) (ast.Expr, error) {
	p.advance() // '['
	var index ast.Expr
	if !p.at(lexer.RBRACKET) {
		var err error
		index, err = p.parseExpr(precNone)
		if err != nil {
			return nil, err
		}
	}
	end, err := p.expect(lexer.RBRACKET)
	if err != nil {
		return nil, err
	}
	if idx, ok := base_.(*ast.ArrayIdx); ok {
		idx.Indices = append(idx.Indices, index)
		idx.SetSpan(span(idx.Span(), end.Span))
		return idx, nil
	}
	return spanned(&ast.ArrayIdx{Base: base_, Indices: []ast.Expr{index}}, span(base_.Span(), end.Span)), nil
}

func (p *Parser) foldObjMember(base_ ast.Expr) (ast.Expr, error) {
	p.advance() // '->'
	member, err := p.parseMemberName()
	if err != nil {
		return nil, err
	}
	if om, ok := base_.(*ast.ObjMember); ok {
		om.Members = append(om.Members, member)
		om.SetSpan(span(om.Span(), member.Span()))
		return om, nil
	}
	return spanned(&ast.ObjMember{Base: base_, Members: []ast.Expr{member}}, span(base_.Span(), member.Span())), nil
}

func (p *Parser) foldStaticMember(base_ ast.Expr) (ast.Expr, error) {
	p.advance() // '::'
	member, err := p.parseStaticMemberName()
	if err != nil {
		return nil, err
	}
	if sm, ok := base_.(*ast.StaticMember); ok {
		sm.Members = append(sm.Members, member)
		sm.SetSpan(span(sm.Span(), member.Span()))
		return sm, nil
	}
	return spanned(&ast.StaticMember{Base: base_, Members: []ast.Expr{member}}, span(base_.Span(), member.Span())), nil
}

func (p *Parser) foldCall(callee ast.Expr) (ast.Expr, error) {
	args, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}
	end := p.toks[p.pos-1].Span
	return spanned(&ast.Call{Callee: callee, Args: args}, span(callee.Span(), end)), nil
}

// parseMemberName implements the "->" right-hand side: a simple variable
// ("->$name"), an identifier ("->name", including reserved keywords), or a
// brace-enclosed expression ("->{expr}").
func (p *Parser) parseMemberName() (ast.Expr, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.VARIABLE:
		p.advance()
		return spanned(&ast.Variable{Name: tok.Handle}, tok.Span), nil
	case lexer.LBRACE:
		p.advance()
		inner, err := p.parseExpr(precNone)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RBRACE); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		sp, name, err := p.parseIdentifierName()
		if err != nil {
			return nil, err
		}
		return spanned(&ast.Ident{Name: p.in.InternString(name)}, sp), nil
	}
}

// parseStaticMemberName implements the "::" right-hand side: a simple
// variable ("::$prop") or an identifier usable as a scoped constant or
// call target ("::CONST", "::method(").
func (p *Parser) parseStaticMemberName() (ast.Expr, error) {
	if p.at(lexer.VARIABLE) {
		tok := p.advance()
		return spanned(&ast.Variable{Name: tok.Handle}, tok.Span), nil
	}
	if p.at(lexer.T_CLASS) {
		tok := p.advance()
		return spanned(&ast.Ident{Name: p.in.InternString("class")}, tok.Span), nil
	}
	sp, name, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	return spanned(&ast.Ident{Name: p.in.InternString(name)}, sp), nil
}

// parseVariableChainBase implements the base alternatives of spec.md
// §4.3.5.
func (p *Parser) parseVariableChainBase() (ast.Expr, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.VARIABLE:
		p.advance()
		return spanned(&ast.Variable{Name: tok.Handle}, tok.Span), nil
	case lexer.DOLLAR:
		p.advance()
		if p.at(lexer.LBRACE) {
			p.advance()
			inner, err := p.parseExpr(precNone)
			if err != nil {
				return nil, err
			}
			end, err := p.expect(lexer.RBRACE)
			if err != nil {
				return nil, err
			}
			return spanned(&ast.VarVar{Name: inner}, span(tok.Span, end.Span)), nil
		}
		inner, err := p.parseVariableChainBase()
		if err != nil {
			return nil, err
		}
		return spanned(&ast.VarVar{Name: inner}, span(tok.Span, inner.Span())), nil
	case lexer.LPAREN:
		p.advance()
		inner, err := p.parseExpr(precNone)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	case lexer.T_STATIC:
		p.advance()
		return p.staticPseudoClassRef(tok.Span), nil
	case lexer.IDENT, lexer.NS_SEPARATOR:
		return p.parsePathExpr()
	default:
		return p.parseScalar()
	}
}

// parseArgumentList parses "(" arg ("," arg)* ","? ")"; "(" must be the
// current token.
func (p *Parser) parseArgumentList() ([]ast.Argument, error) {
	p.advance() // '('
	var args []ast.Argument
	for !p.at(lexer.RPAREN) {
		spread := false
		if p.at(lexer.ELLIPSIS) {
			spread = true
			p.advance()
		}
		val, err := p.parseExpr(precNone)
		if err != nil {
			return nil, err
		}
		args = append(args, ast.Argument{Value: val, Spread: spread})
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// parseArrayItem parses one "[key =>] [&]value" entry shared by array
// literals and list-destructuring targets.
func (p *Parser) parseArrayItem() (ast.ArrayItem, error) {
	if p.at(lexer.ELLIPSIS) {
		p.advance()
		val, err := p.parseExpr(precNone)
		if err != nil {
			return ast.ArrayItem{}, err
		}
		return ast.ArrayItem{Value: val, Spread: true}, nil
	}

	byRef := false
	if p.at(lexer.AMP) {
		byRef = true
		p.advance()
	}
	first, err := p.parseExpr(precNone)
	if err != nil {
		return ast.ArrayItem{}, err
	}
	if p.at(lexer.DOUBLE_ARROW) {
		p.advance()
		if p.at(lexer.AMP) {
			byRef = true
			p.advance()
		}
		value, err := p.parseExpr(precNone)
		if err != nil {
			return ast.ArrayItem{}, err
		}
		return ast.ArrayItem{Key: first, Value: value, ByRef: byRef}, nil
	}
	return ast.ArrayItem{Value: first, ByRef: byRef}, nil
}

// parseScalar implements spec.md §4.3.6.
func (p *Parser) parseScalar() (ast.Expr, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.INT_LITERAL:
		p.advance()
		return spanned(&ast.IntLiteral{Value: tok.IntValue}, tok.Span), nil
	case lexer.DOUBLE_LITERAL:
		p.advance()
		return spanned(&ast.DoubleLiteral{Value: tok.DoubleValue}, tok.Span), nil
	case lexer.CONSTANT_ENCAPSED_STRING:
		p.advance()
		return spanned(&ast.StringLiteral{Value: tok.Handle}, tok.Span), nil
	case lexer.MAGIC_CLASS, lexer.MAGIC_TRAIT, lexer.MAGIC_FUNCTION, lexer.MAGIC_METHOD,
		lexer.MAGIC_LINE, lexer.MAGIC_FILE, lexer.MAGIC_DIR, lexer.MAGIC_NAMESPACE:
		p.advance()
		return spanned(&ast.BuiltinConst{Name: p.in.InternString(tok.Literal)}, tok.Span), nil
	case lexer.DOUBLE_QUOTE:
		return p.parseDoubleQuoted()
	case lexer.HEREDOC_START:
		return p.parseHeredoc()
	case lexer.BACKTICK:
		return p.parseShellExec()
	case lexer.T_ARRAY:
		return p.parseArrayConstructor()
	case lexer.LBRACKET:
		return p.parseArrayLiteralShort()
	case lexer.T_PRINT:
		p.advance()
		val, err := p.parseExpr(precConditional)
		if err != nil {
			return nil, err
		}
		return spanned(&ast.UnaryExpr{Op: "print", Operand: val}, span(tok.Span, val.Span())), nil
	default:
		return nil, p.fail([]string{"expression"})
	}
}

func (p *Parser) parseArrayConstructor() (ast.Expr, error) {
	start := p.advance().Span // 'array'
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	items, err := p.parseArrayItemsUntil(lexer.RPAREN)
	if err != nil {
		return nil, err
	}
	end, err := p.expect(lexer.RPAREN)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.ArrayLiteral{Items: items}, span(start, end.Span)), nil
}

func (p *Parser) parseArrayLiteralShort() (ast.Expr, error) {
	start := p.advance().Span // '['
	items, err := p.parseArrayItemsUntil(lexer.RBRACKET)
	if err != nil {
		return nil, err
	}
	end, err := p.expect(lexer.RBRACKET)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.ArrayLiteral{Items: items}, span(start, end.Span)), nil
}

func (p *Parser) parseArrayItemsUntil(closeType lexer.TokenType) ([]ast.ArrayItem, error) {
	var items []ast.ArrayItem
	for !p.at(closeType) {
		item, err := p.parseArrayItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return items, nil
}

func (p *Parser) parseDoubleQuoted() (ast.Expr, error) {
	start := p.advance().Span // opening '"'
	parts, err := p.parseEncapsParts(lexer.DOUBLE_QUOTE)
	if err != nil {
		return nil, err
	}
	end, err := p.expect(lexer.DOUBLE_QUOTE)
	if err != nil {
		return nil, err
	}
	if len(parts) == 1 {
		if s, ok := parts[0].(*ast.StringLiteral); ok {
			s.SetSpan(span(start, end.Span))
			return s, nil
		}
	}
	if len(parts) == 0 {
		return spanned(&ast.StringLiteral{Value: p.in.InternString("")}, span(start, end.Span)), nil
	}
	return spanned(&ast.InterpString{Parts: parts}, span(start, end.Span)), nil
}

func (p *Parser) parseShellExec() (ast.Expr, error) {
	start := p.advance().Span
	parts, err := p.parseEncapsParts(lexer.BACKTICK)
	if err != nil {
		return nil, err
	}
	end, err := p.expect(lexer.BACKTICK)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.InterpString{Parts: parts}, span(start, end.Span)), nil
}

func (p *Parser) parseHeredoc() (ast.Expr, error) {
	start := p.advance().Span // HEREDOC_START
	parts, err := p.parseEncapsParts(lexer.HEREDOC_END)
	if err != nil {
		return nil, err
	}
	end, err := p.expect(lexer.HEREDOC_END)
	if err != nil {
		return nil, err
	}
	if len(parts) == 1 {
		if s, ok := parts[0].(*ast.StringLiteral); ok {
			s.SetSpan(span(start, end.Span))
			return s, nil
		}
	}
	if len(parts) == 0 {
		return spanned(&ast.StringLiteral{Value: p.in.InternString("")}, span(start, end.Span)), nil
	}
	return spanned(&ast.InterpString{Parts: parts}, span(start, end.Span)), nil
}

// parseEncapsParts consumes the alternating literal/interpolation body
// shared by double-quoted strings, heredocs, and shell-exec strings, up to
// (but not including) the closing token.
func (p *Parser) parseEncapsParts(closeType lexer.TokenType) ([]ast.Expr, error) {
	var parts []ast.Expr
	for !p.at(closeType) {
		tok := p.cur()
		switch tok.Type {
		case lexer.CONSTANT_ENCAPSED_STRING:
			p.advance()
			parts = append(parts, spanned(&ast.StringLiteral{Value: tok.Handle}, tok.Span))
		case lexer.VARIABLE:
			p.advance()
			v := ast.Expr(spanned(&ast.Variable{Name: tok.Handle}, tok.Span))
			v, err := p.maybeSimpleInterpAccessor(v)
			if err != nil {
				return nil, err
			}
			parts = append(parts, v)
		case lexer.DOLLAR_CURLY_OPEN:
			p.advance()
			name, err := p.parseExpr(precNone)
			if err != nil {
				return nil, err
			}
			end, err := p.expect(lexer.RBRACE)
			if err != nil {
				return nil, err
			}
			parts = append(parts, spanned(&ast.VarVar{Name: name}, span(tok.Span, end.Span)))
		case lexer.CURLY_OPEN:
			p.advance()
			inner, err := p.parseExpr(precNone)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBRACE); err != nil {
				return nil, err
			}
			parts = append(parts, inner)
		default:
			return nil, p.fail([]string{"string content"})
		}
	}
	return parts, nil
}

// maybeSimpleInterpAccessor extends a bare "$name" interpolation with one
// unbraced "[idx]" or "->prop" access, matching the Language's "simple
// syntax" interpolation rule (only one level deep, no further chaining).
func (p *Parser) maybeSimpleInterpAccessor(v ast.Expr) (ast.Expr, error) {
	switch {
	case p.at(lexer.LBRACKET):
		p.advance()
		idx, err := p.parseSimpleInterpIndex()
		if err != nil {
			return nil, err
		}
		end, err := p.expect(lexer.RBRACKET)
		if err != nil {
			return nil, err
		}
		return spanned(&ast.ArrayIdx{Base: v, Indices: []ast.Expr{idx}}, span(v.Span(), end.Span)), nil
	case p.at(lexer.ARROW):
		p.advance()
		name, err := p.expect(lexer.IDENT, "property name")
		if err != nil {
			return nil, err
		}
		member := spanned(&ast.Ident{Name: name.Handle}, name.Span)
		return spanned(&ast.ObjMember{Base: v, Members: []ast.Expr{member}}, span(v.Span(), member.Span())), nil
	default:
		return v, nil
	}
}

// parseSimpleInterpIndex parses the restricted index grammar valid inside
// unbraced "$arr[idx]" interpolation: a bare integer, a bare word (treated
// as a string key), or a variable.
func (p *Parser) parseSimpleInterpIndex() (ast.Expr, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.INT_LITERAL:
		p.advance()
		return spanned(&ast.IntLiteral{Value: tok.IntValue}, tok.Span), nil
	case lexer.VARIABLE:
		p.advance()
		return spanned(&ast.Variable{Name: tok.Handle}, tok.Span), nil
	case lexer.IDENT:
		p.advance()
		return spanned(&ast.StringLiteral{Value: tok.Handle}, tok.Span), nil
	default:
		return nil, p.fail([]string{"array index"})
	}
}
