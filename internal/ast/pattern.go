package ast

import "github.com/NotDragon/ArgonLang-sub000/internal/position"

// WildcardPatternNode is the `_` pattern: matches anything, binds nothing.
type WildcardPatternNode struct{ PatternBase }

func NewWildcardPattern(pos position.Position) *WildcardPatternNode {
	return &WildcardPatternNode{PatternBase{NewBase(pos)}}
}
func (*WildcardPatternNode) Kind() Kind { return WildcardPatternKind }

// LiteralPatternNode matches a literal value exactly.
type LiteralPatternNode struct {
	PatternBase
	Literal Expression
}

func NewLiteralPattern(pos position.Position, literal Expression) *LiteralPatternNode {
	return &LiteralPatternNode{PatternBase{NewBase(pos)}, literal}
}
func (*LiteralPatternNode) Kind() Kind { return LiteralPatternKind }

// IdentifierPatternNode binds the matched value to Name; Guard is the
// optional `if` condition attached directly to the binding (distinct from a
// MatchBranch-level guard, which wraps any pattern kind).
type IdentifierPatternNode struct {
	PatternBase
	Name  string
	Guard Expression // nil when absent
}

func NewIdentifierPattern(pos position.Position, name string, guard Expression) *IdentifierPatternNode {
	return &IdentifierPatternNode{PatternBase{NewBase(pos)}, name, guard}
}
func (*IdentifierPatternNode) Kind() Kind { return IdentifierPatternKind }

// ArrayPatternNode matches a fixed prefix of elements, with an optional
// `...rest` tail binding (Rest != "").
type ArrayPatternNode struct {
	PatternBase
	Elements []Pattern
	Rest     string
}

func NewArrayPattern(pos position.Position, elements []Pattern, rest string) *ArrayPatternNode {
	return &ArrayPatternNode{PatternBase{NewBase(pos)}, elements, rest}
}
func (*ArrayPatternNode) Kind() Kind { return ArrayPatternKind }

// StructPatternField is one `name: pattern` field of a struct pattern.
type StructPatternField struct {
	Name    string
	Pattern Pattern
}

type StructPatternNode struct {
	PatternBase
	TypeName string
	Fields   []StructPatternField
}

func NewStructPattern(pos position.Position, typeName string, fields []StructPatternField) *StructPatternNode {
	return &StructPatternNode{PatternBase{NewBase(pos)}, typeName, fields}
}
func (*StructPatternNode) Kind() Kind { return StructPatternKind }

// ConstructorPatternNode matches a union/enum variant by constructor name
// and destructures its positional arguments.
type ConstructorPatternNode struct {
	PatternBase
	Name      string
	Arguments []Pattern
}

func NewConstructorPattern(pos position.Position, name string, args []Pattern) *ConstructorPatternNode {
	return &ConstructorPatternNode{PatternBase{NewBase(pos)}, name, args}
}
func (*ConstructorPatternNode) Kind() Kind { return ConstructorPatternKind }

// TypePatternNode matches by runtime/variant type, binding the narrowed
// value to Name if non-empty.
type TypePatternNode struct {
	PatternBase
	Type Type
	Name string
}

func NewTypePattern(pos position.Position, t Type, name string) *TypePatternNode {
	return &TypePatternNode{PatternBase{NewBase(pos)}, t, name}
}
func (*TypePatternNode) Kind() Kind { return TypePatternKind }

// RangePatternNode matches a value falling within [Low, High) or, when
// Inclusive, [Low, High].
type RangePatternNode struct {
	PatternBase
	Low       Expression
	High      Expression
	Inclusive bool
}

func NewRangePattern(pos position.Position, low, high Expression, inclusive bool) *RangePatternNode {
	return &RangePatternNode{PatternBase{NewBase(pos)}, low, high, inclusive}
}
func (*RangePatternNode) Kind() Kind { return RangePatternKind }
