// Package lexer turns source text into a token stream (spec §4.2): a
// single-pass scanner that tracks line/column as it goes, understands
// line/block comments, backtick-grouped numeric literals, and the
// language's longest-match-first punctuator table.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/NotDragon/ArgonLang-sub000/internal/position"
	"github.com/NotDragon/ArgonLang-sub000/internal/result"
	"github.com/NotDragon/ArgonLang-sub000/internal/token"
)

// Lexer scans one source file's contents into tokens. Constructed fresh
// per file; holds no state beyond the cursor into Source.
type Lexer struct {
	filename string
	source   string
	lines    []string
	pos      int // byte offset into source
	line     int // 1-based
	column   int // 1-based
}

func New(filename, source string) *Lexer {
	return &Lexer{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
		line:     1,
		column:   1,
	}
}

// Tokenize scans the entire source and returns the resulting token stream,
// always terminated by a token.End token, or the first lexical error
// encountered.
func Tokenize(filename, source string) result.Result[[]token.Token] {
	l := New(filename, source)
	var tokens []token.Token
	for {
		tok, err := l.next()
		if err != nil {
			return result.Fail[[]token.Token](err)
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.End {
			return result.Ok(tokens)
		}
	}
}

func (l *Lexer) currentLine() string {
	if l.line-1 < len(l.lines) {
		return l.lines[l.line-1]
	}
	return ""
}

func (l *Lexer) makePosition() position.Position {
	return position.NewWithContext(l.filename, l.line, l.column, l.currentLine(), l.pos, l.pos)
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.source)
}

func (l *Lexer) peekAt(offset int) byte {
	i := l.pos + offset
	if i < 0 || i >= len(l.source) {
		return 0
	}
	return l.source[i]
}

func (l *Lexer) peek() byte { return l.peekAt(0) }

func (l *Lexer) advance() byte {
	c := l.source[l.pos]
	l.pos++
	switch c {
	case '\n':
		l.line++
		l.column = 1
	case '\t':
		l.column += 4
	default:
		l.column++
	}
	return c
}

func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.peek() != expected {
		return false
	}
	l.advance()
	return true
}

func isIdentStart(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}

func isIdentCont(c byte) bool {
	return c == '_' || c == '-' || unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c))
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// next scans and returns a single token, skipping leading whitespace and
// comments first.
func (l *Lexer) next() (token.Token, *result.Error) {
	if err := l.skipTrivia(); err != nil {
		return token.Token{}, err
	}
	if l.atEnd() {
		return token.New(token.End, "", l.makePosition()), nil
	}

	start := l.makePosition()
	c := l.peek()

	switch {
	case isIdentStart(c):
		return l.scanIdentifier(start), nil
	case isDigit(c):
		return l.scanNumber(start)
	case c == '"':
		return l.scanString(start)
	case c == '\'':
		return l.scanChar(start)
	default:
		return l.scanPunctuation(start)
	}
}

func (l *Lexer) skipTrivia() *result.Error {
	for !l.atEnd() {
		c := l.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance()
		case c == '/' && l.peekAt(1) == '/':
			for !l.atEnd() && l.peek() != '\n' {
				l.advance()
			}
		case c == '/' && l.peekAt(1) == '*':
			start := l.makePosition()
			l.advance()
			l.advance()
			closed := false
			for !l.atEnd() {
				if l.peek() == '*' && l.peekAt(1) == '/' {
					l.advance()
					l.advance()
					closed = true
					break
				}
				l.advance()
			}
			if !closed {
				return result.New(result.UnterminatedComment, "unterminated block comment", start).
					WithExpected("*/")
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) scanIdentifier(start position.Position) token.Token {
	begin := l.pos
	for !l.atEnd() && isIdentCont(l.peek()) {
		l.advance()
	}
	lexeme := l.source[begin:l.pos]

	// "to=" is a single ToInclusive token, not KeywordTo followed by
	// Assign: the only identifier-shaped keyword with a punctuator
	// suffix, so it's special-cased here rather than in the punctuator
	// table.
	if lexeme == "to" && l.peek() == '=' {
		l.advance()
		return token.New(token.ToInclusive, "to=", start)
	}

	if kind, ok := token.Keywords[lexeme]; ok {
		return token.New(kind, lexeme, start)
	}
	return token.New(token.Identifier, lexeme, start)
}

// scanNumber handles integer and float literals, including backtick digit
// grouping (1`000`000) and the i8/i16/.../f128 width suffixes (spec §4.2).
func (l *Lexer) scanNumber(start position.Position) (token.Token, *result.Error) {
	begin := l.pos
	isFloat := false

	consumeDigits := func() {
		for !l.atEnd() && (isDigit(l.peek()) || l.peek() == '`') {
			l.advance()
		}
	}
	consumeDigits()

	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		isFloat = true
		l.advance()
		consumeDigits()
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		save := l.pos
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		if isDigit(l.peek()) {
			isFloat = true
			consumeDigits()
		} else {
			l.pos = save
		}
	}

	// Optional width suffix: i8,i16,i32,i64,i128,u8,...,f32,f64,f128.
	suffixBegin := l.pos
	if l.peek() == 'i' || l.peek() == 'u' || l.peek() == 'f' {
		save := l.pos
		for !l.atEnd() && isIdentCont(l.peek()) {
			l.advance()
		}
		suffix := l.source[suffixBegin:l.pos]
		if !isKnownWidthSuffix(suffix) {
			l.pos = save
		}
	}

	lexeme := strings.ReplaceAll(l.source[begin:l.pos], "`", "")
	if strings.Count(lexeme, ".") > 1 {
		return token.Token{}, result.New(result.InvalidNumberLiteral, "multiple decimal points in number literal", start).
			WithActual(lexeme)
	}
	if isFloat {
		return token.New(token.FloatLiteral, lexeme, start), nil
	}
	return token.New(token.IntegralLiteral, lexeme, start), nil
}

func isKnownWidthSuffix(s string) bool {
	switch s {
	case "i8", "i16", "i32", "i64", "i128", "u8", "u16", "u32", "u64", "u128", "f32", "f64", "f128":
		return true
	default:
		return false
	}
}

func (l *Lexer) scanString(start position.Position) (token.Token, *result.Error) {
	l.advance() // opening quote
	var b strings.Builder
	for {
		if l.atEnd() {
			return token.Token{}, result.New(result.UnterminatedString, "unterminated string literal", start).
				WithExpected(`"`)
		}
		c := l.peek()
		if c == '"' {
			l.advance()
			break
		}
		if c == '\n' {
			return token.Token{}, result.New(result.UnterminatedString, "unterminated string literal", start).
				WithExpected(`"`)
		}
		if c == '\\' {
			l.advance()
			escaped, err := l.scanEscape(start)
			if err != nil {
				return token.Token{}, err
			}
			b.WriteRune(escaped)
			continue
		}
		r, size := utf8.DecodeRuneInString(l.source[l.pos:])
		for i := 0; i < size; i++ {
			l.advance()
		}
		b.WriteRune(r)
	}
	return token.New(token.StringLiteral, b.String(), start), nil
}

func (l *Lexer) scanChar(start position.Position) (token.Token, *result.Error) {
	l.advance() // opening quote
	if l.atEnd() {
		return token.Token{}, result.New(result.UnterminatedString, "unterminated char literal", start)
	}
	var value rune
	if l.peek() == '\\' {
		l.advance()
		escaped, err := l.scanEscape(start)
		if err != nil {
			return token.Token{}, err
		}
		value = escaped
	} else {
		r, size := utf8.DecodeRuneInString(l.source[l.pos:])
		for i := 0; i < size; i++ {
			l.advance()
		}
		value = r
	}
	if l.atEnd() || l.peek() != '\'' {
		return token.Token{}, result.New(result.UnterminatedString, "unterminated char literal", start).
			WithExpected("'")
	}
	l.advance()
	return token.New(token.CharLiteral, string(value), start), nil
}

func (l *Lexer) scanEscape(start position.Position) (rune, *result.Error) {
	if l.atEnd() {
		return 0, result.New(result.UnterminatedString, "unterminated escape sequence", start)
	}
	c := l.advance()
	switch c {
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case '0':
		return 0, nil
	case '\\':
		return '\\', nil
	case '\'':
		return '\'', nil
	case '"':
		return '"', nil
	default:
		return rune(c), nil
	}
}

// punctuators is checked longest-lexeme-first so e.g. "||>=" is matched
// before "||>" before "|>" before "|" (spec §4.2's longest-match rule).
var punctuators = []struct {
	lexeme string
	kind   token.Kind
}{
	{"||>=", token.PipeOrEq}, {"||>", token.PipeOr},
	{"|>=", token.PipeEq}, {"|>", token.Pipe},
	{"^^=", token.XorXorEq}, {"^^", token.XorXor},
	{"to=", token.ToInclusive},
	{"...", token.Ellipsis},
	{"*&=", token.BitAndEq}, {"*|=", token.BitOrEq}, {"*^=", token.BitXorEq},
	{"*<=", token.BitShlEq}, {"*>=", token.BitShrEq},
	{"*&", token.BitAnd}, {"*|", token.BitOr}, {"*^", token.BitXor},
	{"*~", token.BitNot}, {"*<", token.BitShl}, {"*>", token.BitShr},
	{"&&", token.LogicalAnd}, {"&=", token.RangeFilterEq}, {"&", token.RangeFilter},
	{"||", token.LogicalOr}, {"|=", token.RangeMapEq}, {"|", token.RangeMap},
	{"^=", token.RangeReduceEq}, {"^", token.RangeReduce},
	{"==", token.Equal}, {"!=", token.NotEqual},
	{"<=", token.LessEqual}, {">=", token.GreaterEqual},
	{"++", token.Increment}, {"--", token.Decrement},
	{"+=", token.PlusAssign}, {"-=", token.MinusAssign},
	{"*=", token.MultiplyAssign}, {"/=", token.DivideAssign}, {"%=", token.ModuloAssign},
	{"->", token.Arrow}, {"=>", token.FatArrow}, {"::", token.ScopeRes}, {"##", token.HashHash},
	{"(", token.LeftParen}, {")", token.RightParen},
	{"{", token.LeftBrace}, {"}", token.RightBrace},
	{"[", token.LeftBracket}, {"]", token.RightBracket},
	{",", token.Comma}, {":", token.Colon}, {";", token.Semicolon}, {".", token.Dot},
	{"+", token.Plus}, {"-", token.Minus}, {"*", token.Multiply}, {"/", token.Divide}, {"%", token.Modulo},
	{"=", token.Assign}, {"<", token.Less}, {">", token.Greater},
	{"!", token.LogicalNot}, {"~", token.Tilde}, {"$", token.Dollar},
	{"?", token.Question},
}

func (l *Lexer) scanPunctuation(start position.Position) (token.Token, *result.Error) {
	remaining := l.source[l.pos:]
	for _, p := range punctuators {
		if strings.HasPrefix(remaining, p.lexeme) {
			for range p.lexeme {
				l.advance()
			}
			return token.New(p.kind, p.lexeme, start), nil
		}
	}
	bad := l.advance()
	return token.Token{}, result.New(result.UnexpectedCharacter, "unexpected character", start).
		WithActual(string(rune(bad)))
}
