package ast

import (
	"math/big"
	"testing"

	"github.com/NotDragon/ArgonLang-sub000/internal/position"
)

func TestEveryNodeCarriesItsConstructionPosition(t *testing.T) {
	pos := position.New("f.argon", 3, 7)
	nodes := []Node{
		NewIdentifier(pos, "x"),
		NewIntegralLiteral(pos, big.NewInt(42), I32),
		NewBinaryExpression(pos, NewIdentifier(pos, "a"), "+", NewIdentifier(pos, "b")),
		NewIfStatement(pos, NewBooleanLiteral(pos, true), NewBlockStatement(pos, nil), nil),
		NewIdentifierType(pos, "i32"),
		NewWildcardPattern(pos),
	}
	for _, n := range nodes {
		if n.Pos() != pos {
			t.Fatalf("%T.Pos() = %v, want %v", n, n.Pos(), pos)
		}
	}
}

func TestGroupsMatchNodeCategory(t *testing.T) {
	pos := position.Position{}
	if g := NewIdentifier(pos, "x").Group(); g != GroupExpression {
		t.Fatalf("identifier group = %v, want Expression", g)
	}
	if g := NewIfStatement(pos, nil, nil, nil).Group(); g != GroupStatement {
		t.Fatalf("if-statement group = %v, want Statement", g)
	}
	if g := NewIdentifierType(pos, "i32").Group(); g != GroupType {
		t.Fatalf("identifier-type group = %v, want Type", g)
	}
	if g := NewWildcardPattern(pos).Group(); g != GroupPattern {
		t.Fatalf("wildcard-pattern group = %v, want Pattern", g)
	}
}

func TestIndexVariantsAreDistinctKinds(t *testing.T) {
	pos := position.Position{}
	obj := NewIdentifier(pos, "arr")
	single := NewIndexExpression(pos, obj, NewIntegralLiteral(pos, big.NewInt(0), I32))
	multi := NewMultiIndexExpression(pos, obj, []Expression{
		NewIntegralLiteral(pos, big.NewInt(0), I32),
		NewIntegralLiteral(pos, big.NewInt(1), I32),
		NewIntegralLiteral(pos, big.NewInt(2), I32),
	})
	if single.Kind() == multi.Kind() {
		t.Fatalf("single-index and multi-index must be distinct kinds")
	}
	if len(multi.Indices) != 3 {
		t.Fatalf("arr[0,1,2] must carry 3 index operands, got %d", len(multi.Indices))
	}
}

func TestToExpressionIsNotABinaryExpression(t *testing.T) {
	pos := position.Position{}
	toExpr := NewToExpression(pos, NewIntegralLiteral(pos, big.NewInt(0), I32), NewIntegralLiteral(pos, big.NewInt(10), I32), false)
	if toExpr.Kind() == BinaryExpressionKind {
		t.Fatalf("`0 to 10` must not be tagged as a BinaryExpression")
	}
	if toExpr.Inclusive {
		t.Fatalf("`to` without `=` must not be inclusive")
	}
}

func TestProgramMainInvariant(t *testing.T) {
	pos := position.Position{}
	body := NewBlockStatement(pos, nil)

	none := NewProgram(pos, []Statement{
		NewFunctionDefinition(pos, "helper", nil, nil, nil, false, body),
	})
	if none.HasExactlyOneMain() {
		t.Fatalf("program with no main must fail the invariant")
	}

	one := NewProgram(pos, []Statement{
		NewFunctionDefinition(pos, "helper", nil, nil, nil, false, body),
		NewFunctionDefinition(pos, "main", nil, nil, nil, false, body),
	})
	if !one.HasExactlyOneMain() {
		t.Fatalf("program with exactly one main must satisfy the invariant")
	}

	two := NewProgram(pos, []Statement{
		NewFunctionDefinition(pos, "main", nil, nil, nil, false, body),
		NewFunctionDefinition(pos, "main", nil, nil, nil, false, body),
	})
	if two.HasExactlyOneMain() {
		t.Fatalf("program with two mains must fail the invariant")
	}
}

func TestWalkVisitsChildrenInOrder(t *testing.T) {
	pos := position.Position{}
	expr := NewBinaryExpression(pos, NewIdentifier(pos, "a"), "+", NewIdentifier(pos, "b"))

	var visited []Kind
	Walk(expr, func(n Node) bool {
		visited = append(visited, n.Kind())
		return true
	})

	want := []Kind{BinaryExpressionKind, IdentifierKind, IdentifierKind}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited[%d] = %v, want %v", i, visited[i], want[i])
		}
	}
}

func TestWalkSkipsAbsentOptionalChildren(t *testing.T) {
	pos := position.Position{}
	ifStmt := NewIfStatement(pos, NewBooleanLiteral(pos, true), NewBlockStatement(pos, nil), nil)

	count := 0
	Walk(ifStmt, func(n Node) bool {
		count++
		return true
	})
	// if-statement + condition + then-block = 3; nil else must not add a 4th visit.
	if count != 3 {
		t.Fatalf("expected 3 visited nodes, got %d", count)
	}
}

func TestDetermineIntegerAndFloatTypeDefaults(t *testing.T) {
	if DetermineIntegerType("") != I32 {
		t.Fatalf("unsuffixed integer literal must default to i32")
	}
	if DetermineIntegerType("i128") != I128 {
		t.Fatalf("i128 suffix must select I128")
	}
	if DetermineFloatType("") != F32 {
		t.Fatalf("unsuffixed float literal must default to f32")
	}
	if DetermineFloatType("f64") != F64 {
		t.Fatalf("f64 suffix must select F64")
	}
}
