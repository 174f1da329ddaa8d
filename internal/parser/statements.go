package parser

import (
	"github.com/NotDragon/ArgonLang-sub000/internal/ast"
	"github.com/NotDragon/ArgonLang-sub000/internal/result"
	"github.com/NotDragon/ArgonLang-sub000/internal/token"
)

func (p *Parser) parseModuleDeclaration() result.Result[ast.Statement] {
	start := p.advance().Position // 'module'
	path, err := p.parseDottedPath()
	if err != nil {
		return fail[ast.Statement](err)
	}
	if _, err := p.expect(token.Semicolon, "module declaration"); err != nil {
		return fail[ast.Statement](err)
	}
	return result.Ok[ast.Statement](ast.NewModuleDeclaration(start, path))
}

func (p *Parser) parseImportStatement() result.Result[ast.Statement] {
	start := p.advance().Position // 'import'
	path, err := p.parseDottedPath()
	if err != nil {
		return fail[ast.Statement](err)
	}
	if _, err := p.expect(token.Semicolon, "import statement"); err != nil {
		return fail[ast.Statement](err)
	}
	return result.Ok[ast.Statement](ast.NewImportStatement(start, path, ""))
}

func (p *Parser) parseDottedPath() ([]string, *result.Error) {
	var parts []string
	first, err := p.expect(token.Identifier, "module path")
	if err != nil {
		return nil, err
	}
	parts = append(parts, first.Lexeme)
	for p.match(token.ScopeRes) {
		next, err := p.expect(token.Identifier, "module path")
		if err != nil {
			return nil, err
		}
		parts = append(parts, next.Lexeme)
	}
	return parts, nil
}

// parseVariableDeclaration parses `def name [: Type] = value;` / the
// `const` spelling (same token kind, Mutable decided from the lexeme).
func (p *Parser) parseVariableDeclaration() result.Result[ast.Statement] {
	start := p.current().Position
	defTok := p.advance()
	mutable := defTok.Lexeme != "const"

	name, err := p.expect(token.Identifier, "variable declaration")
	if err != nil {
		return fail[ast.Statement](err)
	}

	var declType ast.Type
	if p.match(token.Colon) {
		t := p.parseType()
		if t.HasError() {
			return result.Chain[ast.Statement](result.Fail1[ast.Statement](t), result.Trace{Kind: ast.VariableDeclarationKind, Position: start})
		}
		declType = t.Value()
	}

	var value ast.Expression
	if p.match(token.Assign) {
		v := p.ParseExpression()
		if v.HasError() {
			return result.Chain[ast.Statement](result.Fail1[ast.Statement](v), result.Trace{Kind: ast.VariableDeclarationKind, Position: start})
		}
		value = v.Value()
	}

	if _, err := p.expect(token.Semicolon, "variable declaration"); err != nil {
		return fail[ast.Statement](err)
	}
	return result.Ok[ast.Statement](ast.NewVariableDeclaration(start, name.Lexeme, declType, value, mutable))
}

// parseFunctionDeclOrDef parses `func name<Generics>(params) Ret [throws]
// { body }` (a block-bodied definition), `func name(params) Ret [throws]
// -> expr;` (an expression-bodied definition, spec §8 concrete scenario 2),
// or the bare signature terminated by ";" (a declaration with no body, used
// inside trait bodies).
func (p *Parser) parseFunctionDeclOrDef() result.Result[ast.Statement] {
	start := p.advance().Position // 'func'
	name, err := p.expect(token.Identifier, "function declaration")
	if err != nil {
		return fail[ast.Statement](err)
	}
	generics, err := p.parseGenericParams()
	if err != nil {
		return fail[ast.Statement](err)
	}
	params, err := p.parseParameterList()
	if err != nil {
		return fail[ast.Statement](err)
	}
	var retType ast.Type
	if p.startsType() {
		t := p.parseType()
		if t.HasError() {
			return result.Chain[ast.Statement](result.Fail1[ast.Statement](t), result.Trace{Kind: ast.FunctionDefinitionKind, Position: start})
		}
		retType = t.Value()
	}
	throws := p.match(token.KeywordThrows)

	if p.match(token.Semicolon) {
		return result.Ok[ast.Statement](ast.NewFunctionDeclaration(start, name.Lexeme, generics, params, retType, throws))
	}
	if p.match(token.Arrow) {
		expr := p.ParseExpression()
		if expr.HasError() {
			return result.Chain[ast.Statement](result.Fail1[ast.Statement](expr), result.Trace{Kind: ast.FunctionDefinitionKind, Position: start})
		}
		if _, err := p.expect(token.Semicolon, "expression-bodied function"); err != nil {
			return fail[ast.Statement](err)
		}
		body := ast.NewExpressionStatement(expr.Value().Pos(), expr.Value())
		return result.Ok[ast.Statement](ast.NewFunctionDefinition(start, name.Lexeme, generics, params, retType, throws, body))
	}
	body := p.parseBlockStatement()
	if body.HasError() {
		return result.Chain[ast.Statement](body, result.Trace{Kind: ast.FunctionDefinitionKind, Position: start})
	}
	return result.Ok[ast.Statement](ast.NewFunctionDefinition(start, name.Lexeme, generics, params, retType, throws, body.Value()))
}

func (p *Parser) parseParameterList() ([]ast.FunctionArgument, *result.Error) {
	if _, err := p.expect(token.LeftParen, "parameter list"); err != nil {
		return nil, err
	}
	var params []ast.FunctionArgument
	for !p.check(token.RightParen) {
		name, err := p.expect(token.Identifier, "parameter")
		if err != nil {
			return nil, err
		}
		var paramType ast.Type
		if p.match(token.Colon) {
			t := p.parseType()
			if t.HasError() {
				return nil, t.Err()
			}
			paramType = t.Value()
		}
		var def ast.Expression
		if p.match(token.Assign) {
			d := p.ParseExpression()
			if d.HasError() {
				return nil, d.Err()
			}
			def = d.Value()
		}
		params = append(params, ast.FunctionArgument{Name: name.Lexeme, Type: paramType, DefaultValue: def})
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RightParen, "parameter list"); err != nil {
		return nil, err
	}
	return params, nil
}

// parseClassDeclaration parses `class Name<Generics> [: Base, ...] { members }`,
// with pub/pri/pro visibility qualifiers on each member (spec + SPEC_FULL's
// recovered class-member visibility).
func (p *Parser) parseClassDeclaration() result.Result[ast.Statement] {
	start := p.advance().Position // 'class'
	name, err := p.expect(token.Identifier, "class declaration")
	if err != nil {
		return fail[ast.Statement](err)
	}
	generics, err := p.parseGenericParams()
	if err != nil {
		return fail[ast.Statement](err)
	}
	var bases []ast.Type
	if p.match(token.Colon) {
		for {
			t := p.parseType()
			if t.HasError() {
				return result.Chain[ast.Statement](result.Fail1[ast.Statement](t), result.Trace{Kind: ast.ClassDeclarationKind, Position: start})
			}
			bases = append(bases, t.Value())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.expect(token.LeftBrace, "class body"); err != nil {
		return fail[ast.Statement](err)
	}
	var members []ast.ClassMember
	for !p.check(token.RightBrace) {
		member, err := p.parseClassMember()
		if err != nil {
			return fail[ast.Statement](err)
		}
		members = append(members, member)
	}
	if _, err := p.expect(token.RightBrace, "class body"); err != nil {
		return fail[ast.Statement](err)
	}
	return result.Ok[ast.Statement](ast.NewClassDeclaration(start, name.Lexeme, generics, bases, members))
}

func (p *Parser) parseClassMember() (ast.ClassMember, *result.Error) {
	visibility := ast.Public
	switch p.current().Kind {
	case token.KeywordPub:
		p.advance()
	case token.KeywordPri:
		visibility = ast.Private
		p.advance()
	case token.KeywordPro:
		visibility = ast.Protected
		p.advance()
	}

	switch p.current().Kind {
	case token.KeywordConstructor:
		start := p.advance().Position
		params, err := p.parseParameterList()
		if err != nil {
			return ast.ClassMember{}, err
		}
		body := p.parseBlockStatement()
		if body.HasError() {
			return ast.ClassMember{}, body.Err()
		}
		ctor := ast.NewConstructorStatement(start, params, body.Value())
		return ast.ClassMember{Visibility: visibility, Constructor: ctor}, nil

	case token.KeywordFunc:
		def := p.parseFunctionDeclOrDef()
		if def.HasError() {
			return ast.ClassMember{}, def.Err()
		}
		fn, ok := def.Value().(*ast.FunctionDefinitionNode)
		if !ok {
			return ast.ClassMember{}, result.New(result.InvalidStatement, "class methods must have a body", def.Value().Pos())
		}
		return ast.ClassMember{Visibility: visibility, Method: fn}, nil

	case token.KeywordDef:
		decl := p.parseVariableDeclaration()
		if decl.HasError() {
			return ast.ClassMember{}, decl.Err()
		}
		field := decl.Value().(*ast.VariableDeclarationNode)
		return ast.ClassMember{Visibility: visibility, Field: field}, nil

	default:
		return ast.ClassMember{}, result.New(result.InvalidStatement, "expected a class member", p.current().Position).
			WithActual(p.current().Lexeme)
	}
}

func (p *Parser) parseImplStatement() result.Result[ast.Statement] {
	start := p.advance().Position // 'impl'
	trait := p.parseType()
	if trait.HasError() {
		return result.Chain[ast.Statement](result.Fail1[ast.Statement](trait), result.Trace{Kind: ast.ImplStatementKind, Position: start})
	}
	if _, err := p.expect(token.KeywordFor, "impl statement"); err != nil {
		return fail[ast.Statement](err)
	}
	target := p.parseType()
	if target.HasError() {
		return result.Chain[ast.Statement](result.Fail1[ast.Statement](target), result.Trace{Kind: ast.ImplStatementKind, Position: start})
	}
	if _, err := p.expect(token.LeftBrace, "impl body"); err != nil {
		return fail[ast.Statement](err)
	}
	var methods []*ast.FunctionDefinitionNode
	for !p.check(token.RightBrace) {
		def := p.parseFunctionDeclOrDef()
		if def.HasError() {
			return result.Chain[ast.Statement](def, result.Trace{Kind: ast.ImplStatementKind, Position: start})
		}
		fn, ok := def.Value().(*ast.FunctionDefinitionNode)
		if !ok {
			return fail[ast.Statement](result.New(result.InvalidStatement, "impl methods must have a body", def.Value().Pos()))
		}
		methods = append(methods, fn)
	}
	if _, err := p.expect(token.RightBrace, "impl body"); err != nil {
		return fail[ast.Statement](err)
	}
	return result.Ok[ast.Statement](ast.NewImplStatement(start, trait.Value(), target.Value(), methods))
}

// parseTypeAliasOrStruct parses `struct Name<Generics> = Type;` — this
// language models structs as a named type alias over a struct-shaped type,
// not a separate declaration kind (mirrors TypeAliasStatementNode).
func (p *Parser) parseTypeAliasOrStruct() result.Result[ast.Statement] {
	start := p.advance().Position // 'struct'
	name, err := p.expect(token.Identifier, "struct declaration")
	if err != nil {
		return fail[ast.Statement](err)
	}
	generics, err := p.parseGenericParams()
	if err != nil {
		return fail[ast.Statement](err)
	}
	if _, err := p.expect(token.Assign, "struct declaration"); err != nil {
		return fail[ast.Statement](err)
	}
	t := p.parseType()
	if t.HasError() {
		return result.Chain[ast.Statement](result.Fail1[ast.Statement](t), result.Trace{Kind: ast.TypeAliasStatementKind, Position: start})
	}
	if _, err := p.expect(token.Semicolon, "struct declaration"); err != nil {
		return fail[ast.Statement](err)
	}
	return result.Ok[ast.Statement](ast.NewTypeAliasStatement(start, name.Lexeme, generics, t.Value()))
}

func (p *Parser) parseTypeAliasStatement() result.Result[ast.Statement] {
	start := p.advance().Position // 'using'
	name, err := p.expect(token.Identifier, "type alias")
	if err != nil {
		return fail[ast.Statement](err)
	}
	generics, err := p.parseGenericParams()
	if err != nil {
		return fail[ast.Statement](err)
	}
	if _, err := p.expect(token.Assign, "type alias"); err != nil {
		return fail[ast.Statement](err)
	}
	t := p.parseType()
	if t.HasError() {
		return result.Chain[ast.Statement](result.Fail1[ast.Statement](t), result.Trace{Kind: ast.TypeAliasStatementKind, Position: start})
	}
	if _, err := p.expect(token.Semicolon, "type alias"); err != nil {
		return fail[ast.Statement](err)
	}
	return result.Ok[ast.Statement](ast.NewTypeAliasStatement(start, name.Lexeme, generics, t.Value()))
}

func (p *Parser) parseUnionDeclaration() result.Result[ast.Statement] {
	start := p.advance().Position // 'union'
	name, err := p.expect(token.Identifier, "union declaration")
	if err != nil {
		return fail[ast.Statement](err)
	}
	generics, err := p.parseGenericParams()
	if err != nil {
		return fail[ast.Statement](err)
	}
	if _, err := p.expect(token.LeftBrace, "union body"); err != nil {
		return fail[ast.Statement](err)
	}
	var variants []ast.UnionVariant
	for !p.check(token.RightBrace) {
		variantName, err := p.expect(token.Identifier, "union variant")
		if err != nil {
			return fail[ast.Statement](err)
		}
		var fields []ast.Type
		if p.match(token.LeftParen) {
			for !p.check(token.RightParen) {
				t := p.parseType()
				if t.HasError() {
					return result.Chain[ast.Statement](result.Fail1[ast.Statement](t), result.Trace{Kind: ast.UnionDeclarationKind, Position: start})
				}
				fields = append(fields, t.Value())
				if !p.match(token.Comma) {
					break
				}
			}
			if _, err := p.expect(token.RightParen, "union variant fields"); err != nil {
				return fail[ast.Statement](err)
			}
		}
		variants = append(variants, ast.UnionVariant{Name: variantName.Lexeme, Fields: fields})
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RightBrace, "union body"); err != nil {
		return fail[ast.Statement](err)
	}
	return result.Ok[ast.Statement](ast.NewUnionDeclaration(start, name.Lexeme, generics, variants))
}

func (p *Parser) parseEnumDeclaration() result.Result[ast.Statement] {
	start := p.advance().Position // 'enum'
	name, err := p.expect(token.Identifier, "enum declaration")
	if err != nil {
		return fail[ast.Statement](err)
	}
	if _, err := p.expect(token.LeftBrace, "enum body"); err != nil {
		return fail[ast.Statement](err)
	}
	var members []ast.EnumMember
	for !p.check(token.RightBrace) {
		memberName, err := p.expect(token.Identifier, "enum member")
		if err != nil {
			return fail[ast.Statement](err)
		}
		var value ast.Expression
		if p.match(token.Assign) {
			v := p.ParseExpression()
			if v.HasError() {
				return result.Chain[ast.Statement](result.Fail1[ast.Statement](v), result.Trace{Kind: ast.EnumDeclarationKind, Position: start})
			}
			value = v.Value()
		}
		members = append(members, ast.EnumMember{Name: memberName.Lexeme, Value: value})
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RightBrace, "enum body"); err != nil {
		return fail[ast.Statement](err)
	}
	return result.Ok[ast.Statement](ast.NewEnumDeclaration(start, name.Lexeme, members))
}

// parseTraitDeclaration parses both `trait` and the SPEC_FULL-recovered
// `inter` spelling, an optional `where` clause, method signatures, and
// `typeconst` associated-type members.
func (p *Parser) parseTraitDeclaration() result.Result[ast.Statement] {
	start := p.advance().Position // 'trait' or 'inter'
	name, err := p.expect(token.Identifier, "trait declaration")
	if err != nil {
		return fail[ast.Statement](err)
	}
	generics, err := p.parseGenericParams()
	if err != nil {
		return fail[ast.Statement](err)
	}
	where, err := p.parseWhereClause()
	if err != nil {
		return fail[ast.Statement](err)
	}
	if _, err := p.expect(token.LeftBrace, "trait body"); err != nil {
		return fail[ast.Statement](err)
	}
	var methods []*ast.FunctionDeclarationNode
	var typeConsts []ast.TypeAliasStatementNode
	for !p.check(token.RightBrace) {
		if p.check(token.KeywordTypeconst) {
			tcStart := p.advance().Position
			tcName, err := p.expect(token.Identifier, "typeconst member")
			if err != nil {
				return fail[ast.Statement](err)
			}
			var bound ast.Type
			if p.match(token.Colon) {
				t := p.parseType()
				if t.HasError() {
					return result.Fail1[ast.Statement](t)
				}
				bound = t.Value()
			}
			if _, err := p.expect(token.Semicolon, "typeconst member"); err != nil {
				return fail[ast.Statement](err)
			}
			typeConsts = append(typeConsts, *ast.NewTypeAliasStatement(tcStart, tcName.Lexeme, nil, bound))
			continue
		}
		decl := p.parseFunctionDeclOrDef()
		if decl.HasError() {
			return result.Chain[ast.Statement](decl, result.Trace{Kind: ast.TraitDeclarationKind, Position: start})
		}
		fn, ok := decl.Value().(*ast.FunctionDeclarationNode)
		if !ok {
			return fail[ast.Statement](result.New(result.InvalidStatement, "trait methods must be signatures, not definitions", decl.Value().Pos()))
		}
		methods = append(methods, fn)
	}
	if _, err := p.expect(token.RightBrace, "trait body"); err != nil {
		return fail[ast.Statement](err)
	}
	return result.Ok[ast.Statement](ast.NewTraitDeclaration(start, name.Lexeme, generics, where, methods, typeConsts))
}

func (p *Parser) parseConstraintDeclaration() result.Result[ast.Statement] {
	start := p.advance().Position // 'constraint'
	name, err := p.expect(token.Identifier, "constraint declaration")
	if err != nil {
		return fail[ast.Statement](err)
	}
	generics, err := p.parseGenericParams()
	if err != nil {
		return fail[ast.Statement](err)
	}
	if _, err := p.expect(token.Assign, "constraint declaration"); err != nil {
		return fail[ast.Statement](err)
	}
	var requires []ast.Type
	for {
		t := p.parseType()
		if t.HasError() {
			return result.Chain[ast.Statement](result.Fail1[ast.Statement](t), result.Trace{Kind: ast.ConstraintDeclarationKind, Position: start})
		}
		if inter, ok := t.Value().(*ast.IntersectionTypeNode); ok {
			requires = append(requires, inter.Members...)
		} else {
			requires = append(requires, t.Value())
		}
		if !p.match(token.RangeFilter) {
			break
		}
	}
	if _, err := p.expect(token.Semicolon, "constraint declaration"); err != nil {
		return fail[ast.Statement](err)
	}
	return result.Ok[ast.Statement](ast.NewConstraintDeclaration(start, name.Lexeme, generics, requires))
}

// --- Block-level statements ---

func (p *Parser) parseBlockStatement() result.Result[ast.Statement] {
	start := p.current().Position
	if _, err := p.expect(token.LeftBrace, "block"); err != nil {
		return fail[ast.Statement](err)
	}
	var stmts []ast.Statement
	for !p.check(token.RightBrace) && !p.atEnd() {
		s := p.parseBlockLevelStatement()
		if s.HasError() {
			p.synchronize()
			return result.Chain[ast.Statement](s, result.Trace{Kind: ast.BlockStatementKind, Position: start})
		}
		stmts = append(stmts, s.Value())
	}
	if _, err := p.expect(token.RightBrace, "block"); err != nil {
		return fail[ast.Statement](err)
	}
	return result.Ok[ast.Statement](ast.NewBlockStatement(start, stmts))
}

// parseBlockOrExpressionAsStatement backs `par { ... }` / `par expr`: par's
// body is a block when one follows immediately, otherwise a single
// expression statement; a trailing ";" is left to the enclosing statement.
func (p *Parser) parseBlockOrExpressionAsStatement() result.Result[ast.Statement] {
	if p.check(token.LeftBrace) {
		return p.parseBlockStatement()
	}
	expr := p.ParseExpression()
	if expr.HasError() {
		return result.Fail1[ast.Statement](expr)
	}
	pos := expr.Value().Pos()
	return result.Ok[ast.Statement](ast.NewExpressionStatement(pos, expr.Value()))
}

func (p *Parser) parseBlockLevelStatement() result.Result[ast.Statement] {
	switch p.current().Kind {
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.KeywordDef:
		return p.parseVariableDeclaration()
	case token.KeywordIf:
		return p.parseIfStatement()
	case token.KeywordWhile:
		return p.parseWhileStatement(false)
	case token.KeywordDoWhile:
		return p.parseWhileStatement(true)
	case token.KeywordFor:
		return p.parseForStatement()
	case token.KeywordBreak:
		pos := p.advance().Position
		if _, err := p.expect(token.Semicolon, "break statement"); err != nil {
			return fail[ast.Statement](err)
		}
		return result.Ok[ast.Statement](ast.NewBreakStatement(pos))
	case token.KeywordContinue:
		pos := p.advance().Position
		if _, err := p.expect(token.Semicolon, "continue statement"); err != nil {
			return fail[ast.Statement](err)
		}
		return result.Ok[ast.Statement](ast.NewContinueStatement(pos))
	case token.KeywordReturn:
		return p.parseReturnStatement()
	case token.KeywordYield:
		pos := p.advance().Position
		v := p.ParseExpression()
		if v.HasError() {
			return result.Chain[ast.Statement](result.Fail1[ast.Statement](v), result.Trace{Kind: ast.YieldStatementKind, Position: pos})
		}
		if _, err := p.expect(token.Semicolon, "yield statement"); err != nil {
			return fail[ast.Statement](err)
		}
		return result.Ok[ast.Statement](ast.NewYieldStatement(pos, v.Value()))
	case token.KeywordFunc:
		return p.parseFunctionDeclOrDef()
	case token.KeywordClass:
		return p.parseClassDeclaration()
	default:
		expr := p.ParseExpression()
		if expr.HasError() {
			return result.Fail1[ast.Statement](expr)
		}
		pos := expr.Value().Pos()
		if _, err := p.expect(token.Semicolon, "expression statement"); err != nil {
			return fail[ast.Statement](err)
		}
		return result.Ok[ast.Statement](ast.NewExpressionStatement(pos, expr.Value()))
	}
}

func (p *Parser) parseIfStatement() result.Result[ast.Statement] {
	start := p.advance().Position // 'if'
	if _, err := p.expect(token.LeftParen, "if condition"); err != nil {
		return fail[ast.Statement](err)
	}
	cond := p.ParseExpression()
	if cond.HasError() {
		return result.Chain[ast.Statement](result.Fail1[ast.Statement](cond), result.Trace{Kind: ast.IfStatementKind, Position: start})
	}
	if _, err := p.expect(token.RightParen, "if condition"); err != nil {
		return fail[ast.Statement](err)
	}
	then := p.parseBlockLevelStatement()
	if then.HasError() {
		return result.Chain[ast.Statement](then, result.Trace{Kind: ast.IfStatementKind, Position: start})
	}
	var elseBranch ast.Statement
	if p.match(token.KeywordElse) {
		if p.check(token.KeywordIf) {
			elseIf := p.parseIfStatement()
			if elseIf.HasError() {
				return result.Chain[ast.Statement](elseIf, result.Trace{Kind: ast.IfStatementKind, Position: start})
			}
			elseBranch = elseIf.Value()
		} else {
			elseBlock := p.parseBlockLevelStatement()
			if elseBlock.HasError() {
				return result.Chain[ast.Statement](elseBlock, result.Trace{Kind: ast.IfStatementKind, Position: start})
			}
			elseBranch = elseBlock.Value()
		}
	}
	return result.Ok[ast.Statement](ast.NewIfStatement(start, cond.Value(), then.Value(), elseBranch))
}

// parseWhileStatement handles both `while (cond) body` and the
// SPEC_FULL-recovered trailing-condition `dowhile body while (cond);` form.
func (p *Parser) parseWhileStatement(doWhile bool) result.Result[ast.Statement] {
	start := p.advance().Position // 'while' or 'dowhile'

	if doWhile {
		body := p.parseBlockLevelStatement()
		if body.HasError() {
			return result.Chain[ast.Statement](body, result.Trace{Kind: ast.WhileStatementKind, Position: start})
		}
		if _, err := p.expect(token.KeywordWhile, "dowhile condition"); err != nil {
			return fail[ast.Statement](err)
		}
		if _, err := p.expect(token.LeftParen, "dowhile condition"); err != nil {
			return fail[ast.Statement](err)
		}
		cond := p.ParseExpression()
		if cond.HasError() {
			return result.Chain[ast.Statement](result.Fail1[ast.Statement](cond), result.Trace{Kind: ast.WhileStatementKind, Position: start})
		}
		if _, err := p.expect(token.RightParen, "dowhile condition"); err != nil {
			return fail[ast.Statement](err)
		}
		if _, err := p.expect(token.Semicolon, "dowhile statement"); err != nil {
			return fail[ast.Statement](err)
		}
		return result.Ok[ast.Statement](ast.NewWhileStatement(start, cond.Value(), body.Value(), true))
	}

	if _, err := p.expect(token.LeftParen, "while condition"); err != nil {
		return fail[ast.Statement](err)
	}
	cond := p.ParseExpression()
	if cond.HasError() {
		return result.Chain[ast.Statement](result.Fail1[ast.Statement](cond), result.Trace{Kind: ast.WhileStatementKind, Position: start})
	}
	if _, err := p.expect(token.RightParen, "while condition"); err != nil {
		return fail[ast.Statement](err)
	}
	body := p.parseBlockLevelStatement()
	if body.HasError() {
		return result.Chain[ast.Statement](body, result.Trace{Kind: ast.WhileStatementKind, Position: start})
	}
	return result.Ok[ast.Statement](ast.NewWhileStatement(start, cond.Value(), body.Value(), false))
}

// parseForStatement parses `for (name [: Type] -> iterator) body` (spec
// §3.3's `for (name: Type -> iterator)` form; the type annotation is
// optional, matching every other optionally-typed binding in this grammar).
func (p *Parser) parseForStatement() result.Result[ast.Statement] {
	start := p.advance().Position // 'for'
	if _, err := p.expect(token.LeftParen, "for loop"); err != nil {
		return fail[ast.Statement](err)
	}
	variable, err := p.expect(token.Identifier, "for loop variable")
	if err != nil {
		return fail[ast.Statement](err)
	}
	var variableType ast.Type
	if p.match(token.Colon) {
		t := p.parseType()
		if t.HasError() {
			return result.Chain[ast.Statement](result.Fail1[ast.Statement](t), result.Trace{Kind: ast.ForStatementKind, Position: start})
		}
		variableType = t.Value()
	}
	if _, err := p.expect(token.Arrow, "for loop (expected '->')"); err != nil {
		return fail[ast.Statement](err)
	}
	iterable := p.ParseExpression()
	if iterable.HasError() {
		return result.Chain[ast.Statement](result.Fail1[ast.Statement](iterable), result.Trace{Kind: ast.ForStatementKind, Position: start})
	}
	if _, err := p.expect(token.RightParen, "for loop"); err != nil {
		return fail[ast.Statement](err)
	}
	body := p.parseBlockLevelStatement()
	if body.HasError() {
		return result.Chain[ast.Statement](body, result.Trace{Kind: ast.ForStatementKind, Position: start})
	}
	return result.Ok[ast.Statement](ast.NewForStatement(start, variable.Lexeme, variableType, iterable.Value(), body.Value()))
}

func (p *Parser) parseReturnStatement() result.Result[ast.Statement] {
	start := p.advance().Position // 'return'
	if p.match(token.Semicolon) {
		return result.Ok[ast.Statement](ast.NewReturnStatement(start, nil, false))
	}
	if p.check(token.KeywordSuper) {
		p.advance()
		var args []ast.Expression
		if p.match(token.LeftParen) {
			argsResult := p.parseArgumentList()
			if argsResult.HasError() {
				return result.Chain[ast.Statement](result.Fail1[ast.Statement](argsResult), result.Trace{Kind: ast.ReturnStatementKind, Position: start})
			}
			args = argsResult.Value()
		}
		if _, err := p.expect(token.Semicolon, "return super"); err != nil {
			return fail[ast.Statement](err)
		}
		call := ast.NewFunctionCallExpression(start, ast.NewIdentifier(start, "super"), nil, args)
		return result.Ok[ast.Statement](ast.NewReturnStatement(start, call, true))
	}
	value := p.ParseExpression()
	if value.HasError() {
		return result.Chain[ast.Statement](result.Fail1[ast.Statement](value), result.Trace{Kind: ast.ReturnStatementKind, Position: start})
	}
	if _, err := p.expect(token.Semicolon, "return statement"); err != nil {
		return fail[ast.Statement](err)
	}
	return result.Ok[ast.Statement](ast.NewReturnStatement(start, value.Value(), false))
}
