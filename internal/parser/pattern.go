package parser

import (
	"github.com/NotDragon/ArgonLang-sub000/internal/ast"
	"github.com/NotDragon/ArgonLang-sub000/internal/result"
	"github.com/NotDragon/ArgonLang-sub000/internal/token"
)

// parsePattern parses one match-arm pattern: wildcard, literal, identifier
// (with an optional inline guard), array destructure (with an optional
// `...rest`), struct destructure, constructor destructure, type pattern, or
// range pattern (spec §4.3).
func (p *Parser) parsePattern() result.Result[ast.Pattern] {
	tok := p.current()
	switch tok.Kind {
	case token.Identifier:
		if tok.Lexeme == "_" {
			p.advance()
			return result.Ok[ast.Pattern](ast.NewWildcardPattern(tok.Position))
		}
		return p.parseIdentifierOrConstructorOrStructPattern()
	case token.LeftBracket:
		return p.parseArrayPattern()
	case token.PrimitiveType:
		// `i32(x)` — spec §3.3/§8's type pattern: a primitive type keyword
		// immediately followed by a parenthesized binding name.
		return p.parseTypePattern()
	case token.KeywordIs:
		// `is Type [name]` — an alternate spelling for non-primitive type
		// patterns, where the primitive-keyword form doesn't apply.
		p.advance()
		t := p.parseType()
		if t.HasError() {
			return result.Chain[ast.Pattern](result.Fail1[ast.Pattern](t), result.Trace{Kind: ast.TypePatternKind, Position: tok.Position})
		}
		name := ""
		if p.check(token.Identifier) {
			name = p.advance().Lexeme
		}
		return result.Ok[ast.Pattern](ast.NewTypePattern(tok.Position, t.Value(), name))
	case token.IntegralLiteral, token.FloatLiteral, token.StringLiteral, token.CharLiteral, token.BooleanLiteral, token.KeywordNull, token.Minus:
		return p.parseLiteralOrRangePattern()
	default:
		return result.Fail[ast.Pattern](result.New(result.InvalidExpression, "expected a pattern", tok.Position).
			WithActual(tok.Lexeme))
	}
}

// parseTypePattern parses `i32(x)` / `i32()`: a primitive type name used as
// a pattern, binding the matched value (narrowed to that primitive type) to
// an optional name.
func (p *Parser) parseTypePattern() result.Result[ast.Pattern] {
	tok := p.advance()
	t := ast.NewIdentifierType(tok.Position, tok.Lexeme)
	if _, err := p.expect(token.LeftParen, "type pattern"); err != nil {
		return fail[ast.Pattern](err)
	}
	name := ""
	if p.check(token.Identifier) {
		name = p.advance().Lexeme
	}
	if _, err := p.expect(token.RightParen, "type pattern"); err != nil {
		return fail[ast.Pattern](err)
	}
	return result.Ok[ast.Pattern](ast.NewTypePattern(tok.Position, t, name))
}

func (p *Parser) parseLiteralOrRangePattern() result.Result[ast.Pattern] {
	start := p.current().Position
	lit := p.parseUnary()
	if lit.HasError() {
		return result.Fail1[ast.Pattern](lit)
	}
	if p.checkAny(token.KeywordTo, token.ToInclusive) {
		inclusive := p.current().Kind == token.ToInclusive
		p.advance()
		high := p.parseUnary()
		if high.HasError() {
			return result.Chain[ast.Pattern](high, result.Trace{Kind: ast.RangePatternKind, Position: start})
		}
		return result.Ok[ast.Pattern](ast.NewRangePattern(start, lit.Value(), high.Value(), inclusive))
	}
	return result.Ok[ast.Pattern](ast.NewLiteralPattern(start, lit.Value()))
}

// parseIdentifierOrConstructorOrStructPattern disambiguates `name`,
// `name if guard`, `Name(patterns...)` (constructor), and
// `Name { field: pattern, ... }` (struct) — all of which start with a bare
// identifier.
func (p *Parser) parseIdentifierOrConstructorOrStructPattern() result.Result[ast.Pattern] {
	tok := p.advance()

	if p.check(token.LeftParen) {
		p.advance()
		var args []ast.Pattern
		for !p.check(token.RightParen) {
			arg := p.parsePattern()
			if arg.HasError() {
				return result.Chain[ast.Pattern](arg, result.Trace{Kind: ast.ConstructorPatternKind, Position: tok.Position})
			}
			args = append(args, arg.Value())
			if !p.match(token.Comma) {
				break
			}
		}
		if _, err := p.expect(token.RightParen, "constructor pattern"); err != nil {
			return fail[ast.Pattern](err)
		}
		return result.Ok[ast.Pattern](ast.NewConstructorPattern(tok.Position, tok.Lexeme, args))
	}

	if p.check(token.LeftBrace) {
		p.advance()
		var fields []ast.StructPatternField
		for !p.check(token.RightBrace) {
			name, err := p.expect(token.Identifier, "struct pattern field")
			if err != nil {
				return fail[ast.Pattern](err)
			}
			if _, err := p.expect(token.Colon, "struct pattern field"); err != nil {
				return fail[ast.Pattern](err)
			}
			fieldPattern := p.parsePattern()
			if fieldPattern.HasError() {
				return result.Chain[ast.Pattern](fieldPattern, result.Trace{Kind: ast.StructPatternKind, Position: tok.Position})
			}
			fields = append(fields, ast.StructPatternField{Name: name.Lexeme, Pattern: fieldPattern.Value()})
			if !p.match(token.Comma) {
				break
			}
		}
		if _, err := p.expect(token.RightBrace, "struct pattern"); err != nil {
			return fail[ast.Pattern](err)
		}
		return result.Ok[ast.Pattern](ast.NewStructPattern(tok.Position, tok.Lexeme, fields))
	}

	var guard ast.Expression
	if p.match(token.KeywordIf) {
		g := p.ParseExpression()
		if g.HasError() {
			return result.Chain[ast.Pattern](g, result.Trace{Kind: ast.IdentifierPatternKind, Position: tok.Position})
		}
		guard = g.Value()
	}
	return result.Ok[ast.Pattern](ast.NewIdentifierPattern(tok.Position, tok.Lexeme, guard))
}

func (p *Parser) parseArrayPattern() result.Result[ast.Pattern] {
	start := p.advance().Position // '['
	var elements []ast.Pattern
	rest := ""
	for !p.check(token.RightBracket) {
		if p.check(token.Ellipsis) {
			p.advance()
			name, err := p.expect(token.Identifier, "array pattern rest binding")
			if err != nil {
				return fail[ast.Pattern](err)
			}
			rest = name.Lexeme
			break
		}
		el := p.parsePattern()
		if el.HasError() {
			return result.Chain[ast.Pattern](el, result.Trace{Kind: ast.ArrayPatternKind, Position: start})
		}
		elements = append(elements, el.Value())
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RightBracket, "array pattern"); err != nil {
		return fail[ast.Pattern](err)
	}
	return result.Ok[ast.Pattern](ast.NewArrayPattern(start, elements, rest))
}
