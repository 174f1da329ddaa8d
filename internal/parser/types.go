package parser

import (
	"github.com/NotDragon/ArgonLang-sub000/internal/ast"
	"github.com/NotDragon/ArgonLang-sub000/internal/result"
	"github.com/NotDragon/ArgonLang-sub000/internal/token"
)

// startsType reports whether the current token can begin a type
// expression — used where a return type is optional and not introduced by
// its own keyword (spec §4.3 "func name(params) ReturnType [-> expr |
// { block }]": the return type, when present, sits directly after the
// parameter list with no separator).
func (p *Parser) startsType() bool {
	switch p.current().Kind {
	case token.PrimitiveType, token.Identifier, token.KeywordFunc,
		token.Multiply, token.Tilde, token.RangeFilter, token.LogicalAnd, token.Ellipsis:
		return true
	default:
		return false
	}
}

// parseType parses a full type expression: sum types (A | B), intersection
// types (A & B), ownership prefixes (*T, ~T, &T, &&T), array suffixes
// (T[], T[N]), and generic instantiations (Name<Args>), in that
// loosest-to-tightest order (spec §4.3/§4.4).
func (p *Parser) parseType() result.Result[ast.Type] {
	return p.parseSumType()
}

func (p *Parser) parseSumType() result.Result[ast.Type] {
	start := p.current().Position
	first := p.parseIntersectionType()
	if first.HasError() {
		return first
	}
	if !p.check(token.RangeMap) { // sum-type alternatives are separated by '|' (token.RangeMap)
		return first
	}
	alts := []ast.Type{first.Value()}
	for p.check(token.RangeMap) {
		p.advance()
		next := p.parseIntersectionType()
		if next.HasError() {
			return result.Chain[ast.Type](next, result.Trace{Kind: ast.SumTypeKind, Position: start})
		}
		alts = append(alts, next.Value())
	}
	if len(alts) == 1 {
		return first
	}
	return result.Ok[ast.Type](ast.NewSumType(start, alts))
}

func (p *Parser) parseIntersectionType() result.Result[ast.Type] {
	start := p.current().Position
	first := p.parsePrefixedType()
	if first.HasError() {
		return first
	}
	if !p.check(token.RangeFilter) {
		return first
	}
	members := []ast.Type{first.Value()}
	for p.check(token.RangeFilter) {
		p.advance()
		next := p.parsePrefixedType()
		if next.HasError() {
			return result.Chain[ast.Type](next, result.Trace{Kind: ast.IntersectionTypeKind, Position: start})
		}
		members = append(members, next.Value())
	}
	return result.Ok[ast.Type](ast.NewIntersectionType(start, members))
}

func (p *Parser) parsePrefixedType() result.Result[ast.Type] {
	start := p.current().Position
	var qualifier ast.Ownership
	switch p.current().Kind {
	case token.Multiply:
		qualifier = ast.OwnershipPointer
	case token.Tilde:
		qualifier = ast.OwnershipOwned
	case token.LogicalAnd:
		qualifier = ast.OwnershipMutableReference
	case token.RangeFilter:
		qualifier = ast.OwnershipReference
	default:
		return p.parseArraySuffixType()
	}
	p.advance()
	inner := p.parsePrefixedType()
	if inner.HasError() {
		return result.Chain[ast.Type](inner, result.Trace{Kind: ast.PrefixedTypeKind, Position: start})
	}
	return result.Ok[ast.Type](ast.NewPrefixedType(start, qualifier, inner.Value()))
}

func (p *Parser) parseArraySuffixType() result.Result[ast.Type] {
	start := p.current().Position
	base := p.parseVariadicOrAtomType()
	if base.HasError() {
		return base
	}
	accum := base
	for p.check(token.LeftBracket) {
		p.advance()
		var size ast.Expression
		if !p.check(token.RightBracket) {
			sizeExpr := p.ParseExpression()
			if sizeExpr.HasError() {
				return result.Chain[ast.Type](result.Fail1[ast.Type](sizeExpr), result.Trace{Kind: ast.ArrayTypeKind, Position: start})
			}
			size = sizeExpr.Value()
		}
		if _, err := p.expect(token.RightBracket, "array type"); err != nil {
			return fail[ast.Type](err)
		}
		accum = result.Ok[ast.Type](ast.NewArrayType(start, accum.Value(), size))
	}
	return accum
}

func (p *Parser) parseVariadicOrAtomType() result.Result[ast.Type] {
	if p.check(token.Ellipsis) {
		start := p.advance().Position
		inner := p.parseAtomType()
		if inner.HasError() {
			return result.Chain[ast.Type](inner, result.Trace{Kind: ast.VariadicTypeKind, Position: start})
		}
		return result.Ok[ast.Type](ast.NewVariadicType(start, inner.Value()))
	}
	return p.parseAtomType()
}

func (p *Parser) parseAtomType() result.Result[ast.Type] {
	tok := p.current()
	switch tok.Kind {
	case token.KeywordFunc:
		return p.parseFunctionType()
	case token.PrimitiveType, token.Identifier:
		p.advance()
		name := tok.Lexeme
		if p.check(token.Less) {
			args := p.tryParseGenericTypeArgs()
			if args != nil {
				return result.Ok[ast.Type](ast.NewGenericType(tok.Position, name, args))
			}
		}
		return result.Ok[ast.Type](ast.NewIdentifierType(tok.Position, name))
	default:
		return fail[ast.Type](result.New(result.InvalidType, "expected a type", tok.Position).
			WithActual(tok.Lexeme))
	}
}

// tryParseGenericTypeArgs attempts Name<T, U, ...>, backtracking (returning
// nil) if what follows "<" doesn't parse as a type-argument list followed
// by ">" — the same bounded-backtrack approach used to disambiguate "<" as
// a generic-argument opener from "<" as the less-than operator (spec
// §4.3).
func (p *Parser) tryParseGenericTypeArgs() []ast.Type {
	save := p.pos
	p.advance() // '<'
	var args []ast.Type
	for !p.check(token.Greater) {
		t := p.parseType()
		if t.HasError() {
			p.pos = save
			return nil
		}
		args = append(args, t.Value())
		if !p.match(token.Comma) {
			break
		}
	}
	if !p.check(token.Greater) {
		p.pos = save
		return nil
	}
	p.advance()
	return args
}

// parseGenericArgumentList parses the explicit `::<T, U>` call-site
// argument list (distinct from tryParseGenericTypeArgs, which parses a
// type's own generic parameters); the leading "::" is consumed by the
// caller, so this starts at "<".
func (p *Parser) parseGenericArgumentList() result.Result[[]ast.Type] {
	if _, err := p.expect(token.Less, "generic arguments"); err != nil {
		return fail[[]ast.Type](err)
	}
	var args []ast.Type
	for !p.check(token.Greater) {
		t := p.parseType()
		if t.HasError() {
			return result.Fail1[[]ast.Type](t)
		}
		args = append(args, t.Value())
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.Greater, "generic arguments"); err != nil {
		return fail[[]ast.Type](err)
	}
	return result.Ok(args)
}

// parseFunctionType parses the function-type surface described in spec
// §3.3: `func(A,B) R` is the regular (parameter-typed) form; a bare
// `func R` with no parameter list at all is the closure-type shorthand
// (FunctionTypeNode.Closure=true, Params=nil) used after a `:` for a
// closure-typed binding.
func (p *Parser) parseFunctionType() result.Result[ast.Type] {
	start := p.advance().Position // 'func'
	if !p.check(token.LeftParen) {
		ret := p.parseType()
		if ret.HasError() {
			return result.Chain[ast.Type](ret, result.Trace{Kind: ast.FunctionTypeKind, Position: start})
		}
		return result.Ok[ast.Type](ast.NewFunctionType(start, nil, ret.Value(), true))
	}
	p.advance() // '('
	var params []ast.Type
	for !p.check(token.RightParen) {
		t := p.parseType()
		if t.HasError() {
			return result.Chain[ast.Type](t, result.Trace{Kind: ast.FunctionTypeKind, Position: start})
		}
		params = append(params, t.Value())
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RightParen, "function type"); err != nil {
		return fail[ast.Type](err)
	}
	ret := p.parseType()
	if ret.HasError() {
		return result.Chain[ast.Type](ret, result.Trace{Kind: ast.FunctionTypeKind, Position: start})
	}
	return result.Ok[ast.Type](ast.NewFunctionType(start, params, ret.Value(), false))
}

// parseGenericParams parses a declaration's `<T: Bound, U>` parameter list.
// Returns (nil, nil) when no "<" is present.
func (p *Parser) parseGenericParams() ([]ast.GenericParam, *result.Error) {
	if !p.check(token.Less) {
		return nil, nil
	}
	p.advance()
	var params []ast.GenericParam
	for !p.check(token.Greater) {
		name, err := p.expect(token.Identifier, "generic parameter")
		if err != nil {
			return nil, err
		}
		var bounds []ast.Type
		if p.match(token.Colon) {
			b := p.parseType()
			if b.HasError() {
				return nil, b.Err()
			}
			if inter, ok := b.Value().(*ast.IntersectionTypeNode); ok {
				bounds = append(bounds, inter.Members...)
			} else {
				bounds = append(bounds, b.Value())
			}
			for p.match(token.RangeFilter) {
				b2 := p.parseType()
				if b2.HasError() {
					return nil, b2.Err()
				}
				bounds = append(bounds, b2.Value())
			}
		}
		params = append(params, ast.GenericParam{Name: name.Lexeme, Bounds: bounds})
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.Greater, "generic parameters"); err != nil {
		return nil, err
	}
	return params, nil
}

// parseWhereClause parses an optional trailing `where T: Bound & Bound2,
// U: Bound3` constraint clause. The generic parameter names themselves are
// discarded: TraitDeclarationNode.Where only needs the referenced
// constraint types, not which parameter each bound applies to.
func (p *Parser) parseWhereClause() ([]ast.Type, *result.Error) {
	if !p.match(token.KeywordWhere) {
		return nil, nil
	}
	var constraints []ast.Type
	for {
		if _, err := p.expect(token.Identifier, "where clause"); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon, "where clause"); err != nil {
			return nil, err
		}
		for {
			t := p.parseType()
			if t.HasError() {
				return nil, t.Err()
			}
			if inter, ok := t.Value().(*ast.IntersectionTypeNode); ok {
				constraints = append(constraints, inter.Members...)
			} else {
				constraints = append(constraints, t.Value())
			}
			if !p.match(token.RangeFilter) {
				break
			}
		}
		if !p.match(token.Comma) {
			break
		}
	}
	return constraints, nil
}
