package parser

import (
	"github.com/wudi/phpcore/ast"
	"github.com/wudi/phpcore/lexer"
)

// builtinTypeNames is the closed set of scalar/compound names spec.md §4.3.9
// recognizes as a TypeHint.Builtin rather than a class Path; anything else
// spelled as a bare name is assumed to reference a class or interface.
var builtinTypeNames = map[string]bool{
	"int": true, "float": true, "string": true, "bool": true,
	"void": true, "iterable": true, "object": true, "mixed": true,
	"self": true, "parent": true, "null": true, "false": true, "true": true,
}

// parseTypeHint implements the optional type-hint production shared by
// parameters, return types, and typed properties: an optional leading "?"
// marking nullable, then either a builtin keyword/name or a class Path.
func (p *Parser) parseTypeHint() (*ast.TypeHint, error) {
	nullable := false
	if p.at(lexer.QUESTION) {
		nullable = true
		p.advance()
	}

	tok := p.cur()
	switch tok.Type {
	case lexer.T_ARRAY, lexer.T_CALLABLE, lexer.T_STATIC:
		p.advance()
		return &ast.TypeHint{Sp: tok.Span, Nullable: nullable, Builtin: p.in.InternString(opText(tok.Type))}, nil
	case lexer.IDENT, lexer.NS_SEPARATOR:
		start := tok.Span
		path, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if len(path.Namespace) == 0 && !path.Absolute && builtinTypeNames[p.in.Lookup(path.Name)] {
			return &ast.TypeHint{Sp: span(start, path.Sp), Nullable: nullable, Builtin: path.Name}, nil
		}
		return &ast.TypeHint{Sp: span(start, path.Sp), Nullable: nullable, Class: path}, nil
	default:
		return nil, p.fail([]string{"type"})
	}
}

// typeHintStartsHere reports whether the current token can begin a type
// hint, used to decide whether a parameter/property declaration has one.
func (p *Parser) typeHintStartsHere() bool {
	switch p.cur().Type {
	case lexer.QUESTION, lexer.T_ARRAY, lexer.T_CALLABLE, lexer.T_STATIC, lexer.IDENT, lexer.NS_SEPARATOR:
		return true
	}
	return false
}

// parseParams parses "(" param ("," param)* ","? ")"; "(" must be current.
func (p *Parser) parseParams() ([]*ast.ParamDefinition, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []*ast.ParamDefinition
	for !p.at(lexer.RPAREN) {
		param, err := p.parseOneParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseOneParam() (*ast.ParamDefinition, error) {
	start := p.cur().Span
	var typeHint *ast.TypeHint
	if p.typeHintStartsHere() {
		var err error
		typeHint, err = p.parseTypeHint()
		if err != nil {
			return nil, err
		}
	}

	byRef := false
	if p.at(lexer.AMP) {
		byRef = true
		p.advance()
	}
	variadic := false
	if p.at(lexer.ELLIPSIS) {
		variadic = true
		p.advance()
	}
	nameTok, err := p.expect(lexer.VARIABLE, "parameter")
	if err != nil {
		return nil, err
	}
	end := nameTok.Span

	var def ast.Expr
	if p.at(lexer.ASSIGN) {
		p.advance()
		def, err = p.parseExpr(precNone)
		if err != nil {
			return nil, err
		}
		end = def.Span()
	}
	return &ast.ParamDefinition{
		Sp: span(start, end), Name: nameTok.Handle, ByRef: byRef,
		Variadic: variadic, Type: typeHint, Default: def,
	}, nil
}

// parseClosureUses parses the optional "use (&$a, $b, ...)" capture list of
// an anonymous function.
func (p *Parser) parseClosureUses() ([]ast.ClosureUse, error) {
	p.advance() // 'use'
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var uses []ast.ClosureUse
	for !p.at(lexer.RPAREN) {
		byRef := false
		if p.at(lexer.AMP) {
			byRef = true
			p.advance()
		}
		tok, err := p.expect(lexer.VARIABLE, "captured variable")
		if err != nil {
			return nil, err
		}
		uses = append(uses, ast.ClosureUse{Name: tok.Handle, ByRef: byRef})
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return uses, nil
}

// parseFunctionTail parses the shared remainder of a function/method/
// closure header once "function" [and its name, for named forms] has
// already been consumed by the caller: optional "&", "(params)", optional
// "use(...)", optional ": ReturnType", and a body (Block) or, when
// bodyOptional is set (abstract/interface methods), a bare ";".
func (p *Parser) parseFunctionTail(name string, bodyOptional bool) (*ast.FunctionDecl, ast.Span, error) {
	byRef := false
	if p.at(lexer.AMP) {
		byRef = true
		p.advance()
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, ast.Span{}, err
	}

	var uses []ast.ClosureUse
	if p.at(lexer.T_USE) {
		uses, err = p.parseClosureUses()
		if err != nil {
			return nil, ast.Span{}, err
		}
	}

	var retType *ast.TypeHint
	if p.at(lexer.COLON) {
		p.advance()
		retType, err = p.parseTypeHint()
		if err != nil {
			return nil, ast.Span{}, err
		}
	}

	var body *ast.Block
	var end ast.Span
	if bodyOptional && p.at(lexer.SEMICOLON) {
		end = p.advance().Span
	} else {
		body, err = p.parseBlock()
		if err != nil {
			return nil, ast.Span{}, err
		}
		end = body.Span()
	}

	decl := &ast.FunctionDecl{
		Name: p.in.InternString(name), Params: params, Body: body,
		Uses: uses, ByRef: byRef, ReturnType: retType,
	}
	return decl, end, nil
}

// parseAnonFunction parses an anonymous "function (...) use (...) {...}"
// expression; "function" has already been matched by the caller but not
// consumed, and "static" (if present) was already consumed.
func (p *Parser) parseAnonFunction(isStatic bool) (ast.Expr, error) {
	start := p.advance().Span // 'function'
	decl, end, err := p.parseFunctionTail("", false)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.AnonFunction{Decl: decl, Static: isStatic}, span(start, end)), nil
}

// parseFunctionDeclStmt parses a top-level named function declaration.
func (p *Parser) parseFunctionDeclStmt() (ast.Stmt, error) {
	start := p.advance().Span // 'function'
	_, name, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	decl, end, err := p.parseFunctionTail(name, false)
	if err != nil {
		return nil, err
	}
	return spanned(&ast.FunctionDeclStmt{Decl: decl}, span(start, end)), nil
}

// parseClassDeclStmt implements spec.md §4.3.9: an optional abstract/final
// modifier run, then class|interface|trait, a name, optional
// extends/implements, and a member list.
func (p *Parser) parseClassDeclStmt() (ast.Stmt, error) {
	start := p.cur().Span
	var mods ast.ClassModifier
	for {
		switch p.cur().Type {
		case lexer.T_ABSTRACT:
			p.advance()
			mods |= ast.ClassAbstract
		case lexer.T_FINAL:
			p.advance()
			mods |= ast.ClassFinal
		default:
			goto modsDone
		}
	}
modsDone:

	var kind ast.ClassKind
	switch p.cur().Type {
	case lexer.T_CLASS:
		kind = ast.ClassKindClass
	case lexer.T_INTERFACE:
		kind = ast.ClassKindInterface
	case lexer.T_TRAIT:
		kind = ast.ClassKindTrait
	default:
		return nil, p.fail([]string{"class", "interface", "trait"})
	}
	p.advance()

	_, name, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}

	var extendsPath *ast.Path
	var extra []*ast.Path
	var implements []*ast.Path

	if p.at(lexer.T_EXTENDS) {
		p.advance()
		first, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if kind == ast.ClassKindInterface {
			extra = append(extra, first)
			for p.at(lexer.COMMA) {
				p.advance()
				next, err := p.parseName()
				if err != nil {
					return nil, err
				}
				extra = append(extra, next)
			}
			extendsPath = extra[0]
			extra = extra[1:]
		} else {
			extendsPath = first
		}
	}

	if p.at(lexer.T_IMPLEMENTS) {
		p.advance()
		for {
			ifacePath, err := p.parseName()
			if err != nil {
				return nil, err
			}
			implements = append(implements, ifacePath)
			if p.at(lexer.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}

	members, end, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}

	decl := &ast.ClassDecl{
		Kind: kind, Modifiers: mods, Name: p.in.InternString(name),
		Extends: extendsPath, Extra: extra, Implements: implements,
		Members: members, Sp: span(start, end),
	}
	return spanned(&ast.ClassDeclStmt{Decl: decl}, span(start, end)), nil
}

func (p *Parser) parseClassBody() ([]ast.Member, ast.Span, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, ast.Span{}, err
	}
	var members []ast.Member
	for !p.at(lexer.RBRACE) {
		ms, err := p.parseMember()
		if err != nil {
			return nil, ast.Span{}, err
		}
		members = append(members, ms...)
	}
	end, err := p.expect(lexer.RBRACE)
	if err != nil {
		return nil, ast.Span{}, err
	}
	return members, end.Span, nil
}

var memberModifierTokens = map[lexer.TokenType]ast.MemberModifier{
	lexer.T_PUBLIC:    ast.ModPublic,
	lexer.T_PROTECTED: ast.ModProtected,
	lexer.T_PRIVATE:   ast.ModPrivate,
	lexer.T_STATIC:    ast.ModStatic,
	lexer.T_ABSTRACT:  ast.ModAbstract,
	lexer.T_FINAL:     ast.ModFinal,
}

// parseMember implements spec.md §4.3.9's class-body production: a run of
// modifiers (with legacy "var" as an alias for "public"), then one of
// "const", "function", a property group, or a "use" trait-import block. A
// property declaration can introduce several comma-separated declarators,
// so this returns a slice even though every other alternative yields one.
func (p *Parser) parseMember() ([]ast.Member, error) {
	var mods ast.MemberModifier
	for {
		if m, ok := memberModifierTokens[p.cur().Type]; ok {
			p.advance()
			mods |= m
			continue
		}
		if p.at(lexer.T_VAR) {
			p.advance()
			mods |= ast.ModPublic
			continue
		}
		break
	}

	switch p.cur().Type {
	case lexer.T_CONST:
		m, err := p.parseConstMember(mods)
		return []ast.Member{m}, err
	case lexer.T_FUNCTION:
		m, err := p.parseMethodMember(mods)
		return []ast.Member{m}, err
	case lexer.T_USE:
		m, err := p.parseTraitUseMember()
		return []ast.Member{m}, err
	default:
		return p.parsePropertyMember(mods)
	}
}

func (p *Parser) parseConstMember(mods ast.MemberModifier) (ast.Member, error) {
	p.advance() // 'const'
	_, name, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpr(precNone)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ConstMember{Modifiers: mods, Name: p.in.InternString(name), Value: value}, nil
}

func (p *Parser) parseMethodMember(mods ast.MemberModifier) (ast.Member, error) {
	p.advance() // 'function'
	_, name, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	// Any method may end in ";" instead of a body; that covers abstract
	// methods and interface methods, which carry no "abstract" modifier.
	decl, _, err := p.parseFunctionTail(name, true)
	if err != nil {
		return nil, err
	}
	return &ast.MethodMember{Modifiers: mods, Decl: decl}, nil
}

func (p *Parser) parsePropertyMember(mods ast.MemberModifier) ([]ast.Member, error) {
	var typeHint *ast.TypeHint
	if p.typeHintStartsHere() {
		var err error
		typeHint, err = p.parseTypeHint()
		if err != nil {
			return nil, err
		}
	}
	tok, err := p.expect(lexer.VARIABLE, "property")
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
	members := []ast.Member{&ast.PropertyMember{Modifiers: mods, Name: tok.Handle, Default: def, Type: typeHint}}
	for p.at(lexer.COMMA) {
		p.advance()
		tok, err := p.expect(lexer.VARIABLE, "property")
		if err != nil {
			return nil, err
		}
		var d ast.Expr
		if p.at(lexer.ASSIGN) {
			p.advance()
			d, err = p.parseExpr(precNone)
			if err != nil {
				return nil, err
			}
		}
		members = append(members, &ast.PropertyMember{Modifiers: mods, Name: tok.Handle, Default: d, Type: typeHint})
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return members, nil
}

func (p *Parser) parseTraitUseMember() (ast.Member, error) {
	p.advance() // 'use'
	var traits []*ast.Path
	for {
		t, err := p.parseName()
		if err != nil {
			return nil, err
		}
		traits = append(traits, t)
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}

	var adaptations []ast.TraitAdaptation
	if p.at(lexer.LBRACE) {
		p.advance()
		for !p.at(lexer.RBRACE) {
			adapt, err := p.parseTraitAdaptation()
			if err != nil {
				return nil, err
			}
			adaptations = append(adaptations, adapt)
		}
		if _, err := p.expect(lexer.RBRACE); err != nil {
			return nil, err
		}
	} else if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.TraitUseMember{Traits: traits, Adaptations: adaptations}, nil
}

// parseTraitAdaptation parses one "Trait::method insteadof A, B;" or
// "[Trait::]method as [modifier] [alias];" entry.
func (p *Parser) parseTraitAdaptation() (ast.TraitAdaptation, error) {
	var trait *ast.Path
	_, methodName, err := p.parseIdentifierName()
	if err != nil {
		return ast.TraitAdaptation{}, err
	}
	if p.at(lexer.DOUBLE_COLON) {
		// methodName so far is actually the trait name's sole segment.
		trait = &ast.Path{Sp: ast.Span{}, Name: p.in.InternString(methodName)}
		p.advance()
		_, methodName, err = p.parseIdentifierName()
		if err != nil {
			return ast.TraitAdaptation{}, err
		}
	}

	adapt := ast.TraitAdaptation{Trait: trait, Method: p.in.InternString(methodName)}

	switch p.cur().Type {
	case lexer.T_INSTEADOF:
		p.advance()
		for {
			other, err := p.parseName()
			if err != nil {
				return ast.TraitAdaptation{}, err
			}
			adapt.InsteadOf = append(adapt.InsteadOf, other)
			if p.at(lexer.COMMA) {
				p.advance()
				continue
			}
			break
		}
	case lexer.T_AS:
		p.advance()
		if m, ok := memberModifierTokens[p.cur().Type]; ok {
			p.advance()
			adapt.AsModifier = m
		}
		if p.cur().Type == lexer.IDENT || isReservedNonModifier(p.cur().Type) {
			_, alias, err := p.parseIdentifierName()
			if err != nil {
				return ast.TraitAdaptation{}, err
			}
			adapt.AsAlias = p.in.InternString(alias)
		}
	default:
		return ast.TraitAdaptation{}, p.fail([]string{"insteadof", "as"})
	}

	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return ast.TraitAdaptation{}, err
	}
	return adapt, nil
}
