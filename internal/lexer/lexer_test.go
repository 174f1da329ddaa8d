package lexer

import (
	"testing"

	"github.com/NotDragon/ArgonLang-sub000/internal/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := Tokenize("test.argon", src).Unwrap()
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %s", src, err.FormattedMessage())
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}

func TestTokenizeKeywordsAndIdentifiers(t *testing.T) {
	toks := tokenize(t, "def x mut y func foo")
	got := kinds(toks)
	want := []token.Kind{
		token.KeywordDef, token.Identifier, token.KeywordMut, token.Identifier,
		token.KeywordFunc, token.Identifier, token.End,
	}
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestConstAndDefShareKindButDifferInLexeme(t *testing.T) {
	toks := tokenize(t, "def x const y")
	if toks[0].Kind != token.KeywordDef || toks[0].Lexeme != "def" {
		t.Fatalf("unexpected def token: %+v", toks[0])
	}
	if toks[2].Kind != token.KeywordDef || toks[2].Lexeme != "const" {
		t.Fatalf("unexpected const token: %+v", toks[2])
	}
}

func TestNumberLiteralsWithGroupingAndSuffix(t *testing.T) {
	toks := tokenize(t, "1`000`000i64 3.14f64 42")
	if toks[0].Kind != token.IntegralLiteral || toks[0].Lexeme != "1000000i64" {
		t.Fatalf("grouped int literal = %+v", toks[0])
	}
	if toks[1].Kind != token.FloatLiteral || toks[1].Lexeme != "3.14f64" {
		t.Fatalf("float literal = %+v", toks[1])
	}
	if toks[2].Kind != token.IntegralLiteral || toks[2].Lexeme != "42" {
		t.Fatalf("plain int literal = %+v", toks[2])
	}
}

func TestStringAndCharEscapes(t *testing.T) {
	toks := tokenize(t, `"hello\nworld" 'a' '\''`)
	if toks[0].Kind != token.StringLiteral || toks[0].Lexeme != "hello\nworld" {
		t.Fatalf("string literal = %+v", toks[0])
	}
	if toks[1].Kind != token.CharLiteral || toks[1].Lexeme != "a" {
		t.Fatalf("char literal = %+v", toks[1])
	}
	if toks[2].Kind != token.CharLiteral || toks[2].Lexeme != "'" {
		t.Fatalf("escaped char literal = %+v", toks[2])
	}
}

func TestUnterminatedStringIsAnError(t *testing.T) {
	_, err := Tokenize("test.argon", `"unterminated`).Unwrap()
	if err == nil {
		t.Fatalf("expected an unterminated-string error")
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	toks := tokenize(t, "def x // a comment\n/* block\ncomment */ mut y")
	got := kinds(toks)
	want := []token.Kind{token.KeywordDef, token.Identifier, token.KeywordMut, token.Identifier, token.End}
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestUnterminatedBlockCommentIsAnError(t *testing.T) {
	_, err := Tokenize("test.argon", "/* never closed").Unwrap()
	if err == nil {
		t.Fatalf("expected an unterminated-comment error")
	}
}

func TestLongestMatchFirstPunctuators(t *testing.T) {
	toks := tokenize(t, "||>= ||> |>= |> *&= *& & && to=")
	got := kinds(toks)
	want := []token.Kind{
		token.PipeOrEq, token.PipeOr, token.PipeEq, token.Pipe,
		token.BitAndEq, token.BitAnd, token.RangeFilter, token.LogicalAnd, token.ToInclusive, token.End,
	}
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSupplementalKeywords(t *testing.T) {
	toks := tokenize(t, "dowhile pub pri pro constructor typeconst inter throws")
	got := kinds(toks)
	want := []token.Kind{
		token.KeywordDoWhile, token.KeywordPub, token.KeywordPri, token.KeywordPro,
		token.KeywordConstructor, token.KeywordTypeconst, token.KeywordInter, token.KeywordThrows, token.End,
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUnexpectedCharacterIsAnError(t *testing.T) {
	_, err := Tokenize("test.argon", "def x = `@`").Unwrap()
	if err == nil {
		t.Fatalf("expected an unexpected-character error for '@'")
	}
}
