// Package parser is a hand-written recursive-descent parser producing
// internal/ast nodes from a internal/token stream (spec §4.3): one
// left-to-right function per precedence level, each calling down into the
// next-tighter level, bottoming out at postfix (call/index/member) and
// primary expressions.
package parser

import (
	"github.com/NotDragon/ArgonLang-sub000/internal/ast"
	"github.com/NotDragon/ArgonLang-sub000/internal/result"
	"github.com/NotDragon/ArgonLang-sub000/internal/token"
)

// Parser holds the token stream and cursor. Constructed fresh per file via
// New; not safe for concurrent use.
type Parser struct {
	filename string
	tokens   []token.Token
	pos      int
}

func New(filename string, tokens []token.Token) *Parser {
	return &Parser{filename: filename, tokens: tokens}
}

// Parse runs ParseProgram over the full token stream, the entry point used
// by cmd/argonc.
func Parse(filename string, tokens []token.Token) result.Result[*ast.ProgramNode] {
	return New(filename, tokens).ParseProgram()
}

func (p *Parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // the End token
	}
	return p.tokens[p.pos]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.pos-1]
}

func (p *Parser) atEnd() bool {
	return p.current().Kind == token.End
}

func (p *Parser) check(kind token.Kind) bool {
	return p.current().Kind == kind
}

func (p *Parser) checkAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			return true
		}
	}
	return false
}

func (p *Parser) advance() token.Token {
	tok := p.current()
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) match(kinds ...token.Kind) bool {
	if p.checkAny(kinds...) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has kind, otherwise produces a
// MissingToken error pinned to the current position.
func (p *Parser) expect(kind token.Kind, context string) (token.Token, *result.Error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, result.New(result.MissingToken, "unexpected token while parsing "+context, p.current().Position).
		WithExpected(kind.String()).
		WithActual(p.current().Lexeme)
}

// synchronize discards tokens up to the next statement boundary after a
// parse error (spec §4.3 error recovery). Parsing does not resume after
// it: the caller returns the first error, and only that one is reported.
func (p *Parser) synchronize() {
	for !p.atEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.current().Kind {
		case token.KeywordDef, token.KeywordFunc, token.KeywordClass, token.KeywordIf,
			token.KeywordWhile, token.KeywordFor, token.KeywordReturn, token.KeywordMatch:
			return
		}
		p.advance()
	}
}

// ParseProgram parses every top-level declaration until End, restricting
// top-level statements to declaration-shaped ones (spec §4.3's top-level
// restriction).
func (p *Parser) ParseProgram() result.Result[*ast.ProgramNode] {
	start := p.current().Position
	var decls []ast.Statement
	for !p.atEnd() {
		decl := p.parseTopLevelDeclaration()
		if decl.HasError() {
			return result.Fail1[*ast.ProgramNode](decl)
		}
		decls = append(decls, decl.Value())
	}
	return result.Ok(ast.NewProgram(start, decls))
}

func (p *Parser) parseTopLevelDeclaration() result.Result[ast.Statement] {
	switch p.current().Kind {
	case token.KeywordModule:
		return p.parseModuleDeclaration()
	case token.KeywordImport:
		return p.parseImportStatement()
	case token.KeywordDef:
		return p.parseVariableDeclaration()
	case token.KeywordFunc:
		return p.parseFunctionDeclOrDef()
	case token.KeywordClass:
		return p.parseClassDeclaration()
	case token.KeywordImpl:
		return p.parseImplStatement()
	case token.KeywordStruct:
		return p.parseTypeAliasOrStruct()
	case token.KeywordUnion:
		return p.parseUnionDeclaration()
	case token.KeywordEnum:
		return p.parseEnumDeclaration()
	case token.KeywordTrait, token.KeywordInter:
		return p.parseTraitDeclaration()
	case token.KeywordConstraint:
		return p.parseConstraintDeclaration()
	case token.KeywordUsing:
		return p.parseTypeAliasStatement()
	default:
		pos := p.current().Position
		err := result.New(result.InvalidStatement, "expected a top-level declaration", pos).
			WithActual(p.current().Lexeme).
			WithSuggestion("top-level code must be a module/import/def/func/class/struct/union/enum/trait/constraint declaration")
		p.synchronize()
		return result.Fail[ast.Statement](err)
	}
}
