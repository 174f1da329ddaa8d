package result

import (
	"strings"
	"testing"

	"github.com/NotDragon/ArgonLang-sub000/internal/position"
	"github.com/NotDragon/ArgonLang-sub000/internal/source"
)

func TestFormattedMessageIncludesContext(t *testing.T) {
	e := New(UnexpectedToken, "unexpected token ';'", position.New("f.argon", 4, 9)).
		WithExpected("an expression").
		WithActual(";").
		WithSuggestion("did you mean to remove the trailing semicolon?").
		WithNote("this occurred while parsing a struct literal")

	msg := e.FormattedMessage()
	for _, want := range []string{"f.argon:4:9", "error:", "Expected: an expression", "Actual:   ;", "Suggestion:", "Note:"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("formatted message missing %q:\n%s", want, msg)
		}
	}
}

func TestCausedByChain(t *testing.T) {
	inner := New(InvalidNumberLiteral, "multiple decimal points", position.New("f.argon", 1, 1))
	outer := New(InvalidExpression, "could not parse primary expression", position.New("f.argon", 1, 1)).
		CausedBy(inner)

	msg := outer.FormattedMessage()
	if !strings.Contains(msg, "Caused by:") || !strings.Contains(msg, "multiple decimal points") {
		t.Fatalf("expected cause chain in formatted message:\n%s", msg)
	}
	if outer.Unwrap() != inner {
		t.Fatalf("Unwrap() must expose the first cause for errors.Is/As")
	}
}

func TestWithSeverityWarningRendersWarning(t *testing.T) {
	e := New(UnexpectedToken, "deprecated syntax", position.Position{}).WithSeverity(Warning)
	if e.Severity != Warning {
		t.Fatalf("WithSeverity must set the severity")
	}
	if !strings.Contains(e.FormattedMessage(), "warning:") {
		t.Fatalf("expected 'warning:' in message, got %q", e.FormattedMessage())
	}
}

func TestSnippetRendering(t *testing.T) {
	snippet := source.Snippet{
		Filename:         "f.argon",
		LineNumber:       5,
		SourceLine:       "def x: i32 = ;",
		ColumnStart:      14,
		ColumnEnd:        15,
		Indicator:        source.IndicatorCaret,
		Underline:        "^",
		HighlightMessage: "expected an expression here",
		ContextBefore:    []string{"func main() i32 {"},
		ContextAfter:     []string{"}"},
	}
	e := New(InvalidExpression, "missing initializer", position.New("f.argon", 5, 14)).WithSnippet(snippet)
	msg := e.FormattedMessage()
	if !strings.Contains(msg, "def x: i32 = ;") || !strings.Contains(msg, "expected an expression here") {
		t.Fatalf("expected snippet content in formatted message:\n%s", msg)
	}
}

func TestHasTraceAndInnermostFrame(t *testing.T) {
	e := New(UnexpectedToken, "boom", position.Position{})
	if e.HasTrace() {
		t.Fatalf("a fresh error must start with an empty trace")
	}
	if _, ok := e.InnermostFrame(); ok {
		t.Fatalf("InnermostFrame on an empty trace must report ok=false")
	}
}
