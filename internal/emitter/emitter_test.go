package emitter

import (
	"strings"
	"testing"

	"github.com/NotDragon/ArgonLang-sub000/internal/lexer"
	"github.com/NotDragon/ArgonLang-sub000/internal/parser"
)

func emitSource(t *testing.T, src string) Unit {
	t.Helper()
	toks, err := lexer.Tokenize("test.argon", src).Unwrap()
	if err != nil {
		t.Fatalf("lex error: %s", err.FormattedMessage())
	}
	prog, err := parser.Parse("test.argon", toks).Unwrap()
	if err != nil {
		t.Fatalf("parse error: %s", err.FormattedMessage())
	}
	unit, err := Emit(prog).Unwrap()
	if err != nil {
		t.Fatalf("emit error: %s", err.FormattedMessage())
	}
	return unit
}

func TestEmitSliceIsInclusiveUpperBound(t *testing.T) {
	unit := emitSource(t, `
		func main() {
			def a: i32[] = arr[2:4];
		}
	`)
	if !strings.Contains(unit.Source, "argon::subrange(arr.begin()+2, arr.begin()+(4+1))") {
		t.Fatalf("expected inclusive-upper-bound subrange, got:\n%s", unit.Source)
	}
}

func TestEmitMatchExpressionLowersToIfElseChain(t *testing.T) {
	unit := emitSource(t, `
		func main() {
			def label: str = match(x) { 1 -> "one", 2 -> "two", _ -> "other" };
		}
	`)
	src := unit.Source
	for _, want := range []string{"if (", "else if (", "else if (true) {"} {
		if !strings.Contains(src, want) {
			t.Fatalf("expected match lowering to contain %q, got:\n%s", want, src)
		}
	}
	if !strings.Contains(src, "argon::match_value") {
		t.Fatalf("expected literal match arms to test via argon::match_value, got:\n%s", src)
	}
}

func TestEmitForStatementUsesDeclaredLoopVariableType(t *testing.T) {
	unit := emitSource(t, `
		func main() {
			for (item: i32 -> xs) { yield item; }
		}
	`)
	if !strings.Contains(unit.Source, "for (int32_t item : xs) {") {
		t.Fatalf("expected an explicitly-typed range-for loop, got:\n%s", unit.Source)
	}
}

func TestEmitForStatementInfersAutoWithoutDeclaredType(t *testing.T) {
	unit := emitSource(t, `
		func main() {
			for (item -> xs) { yield item; }
		}
	`)
	if !strings.Contains(unit.Source, "for (auto item : xs) {") {
		t.Fatalf("expected an auto-typed range-for loop, got:\n%s", unit.Source)
	}
}

func TestEmitTernaryExpression(t *testing.T) {
	unit := emitSource(t, `
		func main() {
			def x: i32 = 5 > 3 ? 1 : 0;
		}
	`)
	if !strings.Contains(unit.Source, "((5 > 3) ? 1 : 0)") {
		t.Fatalf("expected a literal ternary lowering, got:\n%s", unit.Source)
	}
}

func TestEmitParallelExpressionWrapsScopeGuard(t *testing.T) {
	unit := emitSource(t, `
		func main() {
			par compute(21);
		}
	`)
	if !strings.Contains(unit.Source, "argon::par([&]()") {
		t.Fatalf("expected a par(...) lowering, got:\n%s", unit.Source)
	}
	if !strings.Contains(unit.Source, "argon::ScopeGuard") {
		t.Fatalf("expected the enclosing block to open a ScopeGuard, got:\n%s", unit.Source)
	}
	if !unit.Dependencies[DepScopeFutures] {
		t.Errorf("expected par to flag the scope_futures dependency")
	}
}

func TestEmitExpressionBodiedFunctionReturnsBody(t *testing.T) {
	unit := emitSource(t, "func add(a: i32, b: i32) i32 -> a + b; func main() { return; }")
	if !strings.Contains(unit.Source, "return (a + b);") {
		t.Fatalf("expected the bare expression body to be wrapped in a return, got:\n%s", unit.Source)
	}
}

func TestEmitGenericFunctionHeaderMatchesParamCount(t *testing.T) {
	unit := emitSource(t, `
		func max<T: Comparable>(a: T, b: T) T {
			return a;
		}
		func main() { return; }
	`)
	if !strings.Contains(unit.Source, "template<typename T>") {
		t.Fatalf("expected a one-parameter template header, got:\n%s", unit.Source)
	}
	if !strings.Contains(unit.Source, "requires") {
		t.Fatalf("expected the Comparable bound to lower to a requires clause, got:\n%s", unit.Source)
	}
}

func TestEmitFailsWithoutExactlyOneMain(t *testing.T) {
	toks, lexErr := lexer.Tokenize("test.argon", "func notMain() { return; }").Unwrap()
	if lexErr != nil {
		t.Fatalf("lex error: %s", lexErr.FormattedMessage())
	}
	prog, parseErr := parser.Parse("test.argon", toks).Unwrap()
	if parseErr != nil {
		t.Fatalf("parse error: %s", parseErr.FormattedMessage())
	}
	if _, err := Emit(prog).Unwrap(); err == nil {
		t.Fatalf("expected Emit to fail when no 'main' function is present")
	}
}

func TestEmitRejectsMultipleMains(t *testing.T) {
	toks, lexErr := lexer.Tokenize("test.argon", "func main() { return; } func main() { return; }").Unwrap()
	if lexErr != nil {
		t.Fatalf("lex error: %s", lexErr.FormattedMessage())
	}
	prog, parseErr := parser.Parse("test.argon", toks).Unwrap()
	if parseErr != nil {
		t.Fatalf("parse error: %s", parseErr.FormattedMessage())
	}
	if _, err := Emit(prog).Unwrap(); err == nil {
		t.Fatalf("expected Emit to fail when more than one 'main' function is present")
	}
}
