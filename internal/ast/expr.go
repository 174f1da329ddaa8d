package ast

import (
	"math/big"

	"github.com/NotDragon/ArgonLang-sub000/internal/position"
)

// StringLiteralNode is a "..." literal with escapes already resolved by the
// lexer.
type StringLiteralNode struct {
	ExpressionBase
	Value string
}

func NewStringLiteral(pos position.Position, value string) *StringLiteralNode {
	return &StringLiteralNode{ExpressionBase{NewBase(pos)}, value}
}
func (*StringLiteralNode) Kind() Kind { return StringLiteralKind }

type CharLiteralNode struct {
	ExpressionBase
	Value rune
}

func NewCharLiteral(pos position.Position, value rune) *CharLiteralNode {
	return &CharLiteralNode{ExpressionBase{NewBase(pos)}, value}
}
func (*CharLiteralNode) Kind() Kind { return CharLiteralKind }

// IntegralLiteralNode stores its value as *big.Int rather than a fixed Go
// integer so literals up to i128/u128 width (spec §3.3) round-trip exactly;
// Type records the deduced or explicit primitive width.
type IntegralLiteralNode struct {
	ExpressionBase
	Value *big.Int
	Type  PrimitiveType
}

func NewIntegralLiteral(pos position.Position, value *big.Int, t PrimitiveType) *IntegralLiteralNode {
	return &IntegralLiteralNode{ExpressionBase{NewBase(pos)}, value, t}
}
func (*IntegralLiteralNode) Kind() Kind { return IntegralLiteralKind }

type FloatLiteralNode struct {
	ExpressionBase
	Value float64
	Type  PrimitiveType
}

func NewFloatLiteral(pos position.Position, value float64, t PrimitiveType) *FloatLiteralNode {
	return &FloatLiteralNode{ExpressionBase{NewBase(pos)}, value, t}
}
func (*FloatLiteralNode) Kind() Kind { return FloatLiteralKind }

type BooleanLiteralNode struct {
	ExpressionBase
	Value bool
}

func NewBooleanLiteral(pos position.Position, value bool) *BooleanLiteralNode {
	return &BooleanLiteralNode{ExpressionBase{NewBase(pos)}, value}
}
func (*BooleanLiteralNode) Kind() Kind { return BooleanLiteralKind }

type NullNode struct{ ExpressionBase }

func NewNull(pos position.Position) *NullNode {
	return &NullNode{ExpressionBase{NewBase(pos)}}
}
func (*NullNode) Kind() Kind { return NullKind }

type IdentifierNode struct {
	ExpressionBase
	Name string
}

func NewIdentifier(pos position.Position, name string) *IdentifierNode {
	return &IdentifierNode{ExpressionBase{NewBase(pos)}, name}
}
func (*IdentifierNode) Kind() Kind { return IdentifierKind }

// BinaryExpressionNode covers every infix arithmetic/logical/bitwise and the
// filter/map/reduce pipeline operators; Operator is the lexeme, e.g. "+",
// "||", "|", "&", "^", "|>".
type BinaryExpressionNode struct {
	ExpressionBase
	Left     Expression
	Operator string
	Right    Expression
}

func NewBinaryExpression(pos position.Position, left Expression, op string, right Expression) *BinaryExpressionNode {
	return &BinaryExpressionNode{ExpressionBase{NewBase(pos)}, left, op, right}
}
func (*BinaryExpressionNode) Kind() Kind { return BinaryExpressionKind }

// UnaryExpressionNode covers prefix operators (-, !, ~, ++, --, *, &, &&)
// and postfix increment/decrement (Postfix=true).
type UnaryExpressionNode struct {
	ExpressionBase
	Operator string
	Operand  Expression
	Postfix  bool
}

func NewUnaryExpression(pos position.Position, op string, operand Expression, postfix bool) *UnaryExpressionNode {
	return &UnaryExpressionNode{ExpressionBase{NewBase(pos)}, op, operand, postfix}
}
func (*UnaryExpressionNode) Kind() Kind { return UnaryExpressionKind }

// ComparisonExpressionNode is kept distinct from BinaryExpressionNode so the
// emitter and any future semantic pass can distinguish ordering/equality
// operators from arithmetic without string-comparing Operator.
type ComparisonExpressionNode struct {
	ExpressionBase
	Left     Expression
	Operator string
	Right    Expression
}

func NewComparisonExpression(pos position.Position, left Expression, op string, right Expression) *ComparisonExpressionNode {
	return &ComparisonExpressionNode{ExpressionBase{NewBase(pos)}, left, op, right}
}
func (*ComparisonExpressionNode) Kind() Kind { return ComparisonExpressionKind }

type AssignmentExpressionNode struct {
	ExpressionBase
	Target   Expression
	Operator string // "=", "+=", "|=", etc.
	Value    Expression
}

func NewAssignmentExpression(pos position.Position, target Expression, op string, value Expression) *AssignmentExpressionNode {
	return &AssignmentExpressionNode{ExpressionBase{NewBase(pos)}, target, op, value}
}
func (*AssignmentExpressionNode) Kind() Kind { return AssignmentExpressionKind }

// FunctionCallExpressionNode supports an optional explicit generic argument
// list: foo::<i32>(x).
type FunctionCallExpressionNode struct {
	ExpressionBase
	Callee       Expression
	GenericArgs  []Type
	Arguments    []Expression
}

func NewFunctionCallExpression(pos position.Position, callee Expression, genericArgs []Type, args []Expression) *FunctionCallExpressionNode {
	return &FunctionCallExpressionNode{ExpressionBase{NewBase(pos)}, callee, genericArgs, args}
}
func (*FunctionCallExpressionNode) Kind() Kind { return FunctionCallExpressionKind }

type MemberAccessExpressionNode struct {
	ExpressionBase
	Object   Expression
	Member   string
	Optional bool // true for ?. style safe-navigation, if present
}

func NewMemberAccessExpression(pos position.Position, object Expression, member string, optional bool) *MemberAccessExpressionNode {
	return &MemberAccessExpressionNode{ExpressionBase{NewBase(pos)}, object, member, optional}
}
func (*MemberAccessExpressionNode) Kind() Kind { return MemberAccessExpressionKind }

// IndexExpressionNode is arr[i] — a single index operand. Distinct from
// SliceExpressionNode and MultiIndexExpressionNode per the spec's
// "arr[0,1,2] is three operands, not nested" testable property.
type IndexExpressionNode struct {
	ExpressionBase
	Object Expression
	Index  Expression
}

func NewIndexExpression(pos position.Position, object, index Expression) *IndexExpressionNode {
	return &IndexExpressionNode{ExpressionBase{NewBase(pos)}, object, index}
}
func (*IndexExpressionNode) Kind() Kind { return IndexExpressionKind }

// SliceExpressionNode is arr[lo:hi]; either bound may be nil for an open
// end.
type SliceExpressionNode struct {
	ExpressionBase
	Object Expression
	Low    Expression
	High   Expression
}

func NewSliceExpression(pos position.Position, object, low, high Expression) *SliceExpressionNode {
	return &SliceExpressionNode{ExpressionBase{NewBase(pos)}, object, low, high}
}
func (*SliceExpressionNode) Kind() Kind { return SliceExpressionKind }

// MultiIndexExpressionNode is arr[a, b, c] — multiple comma-separated index
// operands against a single object, kept distinct from a single IndexExpression.
type MultiIndexExpressionNode struct {
	ExpressionBase
	Object  Expression
	Indices []Expression
}

func NewMultiIndexExpression(pos position.Position, object Expression, indices []Expression) *MultiIndexExpressionNode {
	return &MultiIndexExpressionNode{ExpressionBase{NewBase(pos)}, object, indices}
}
func (*MultiIndexExpressionNode) Kind() Kind { return MultiIndexExpressionKind }

// ToExpressionNode is the `lo to hi` / `lo to= hi` range-construction form —
// kept distinct from a binary comparison per the spec's testable property.
type ToExpressionNode struct {
	ExpressionBase
	Low       Expression
	High      Expression
	Inclusive bool // true for "to="
}

func NewToExpression(pos position.Position, low, high Expression, inclusive bool) *ToExpressionNode {
	return &ToExpressionNode{ExpressionBase{NewBase(pos)}, low, high, inclusive}
}
func (*ToExpressionNode) Kind() Kind { return ToExpressionKind }

type ArrayLiteralExpressionNode struct {
	ExpressionBase
	Elements []Expression
}

func NewArrayLiteralExpression(pos position.Position, elements []Expression) *ArrayLiteralExpressionNode {
	return &ArrayLiteralExpressionNode{ExpressionBase{NewBase(pos)}, elements}
}
func (*ArrayLiteralExpressionNode) Kind() Kind { return ArrayLiteralExpressionKind }

type LambdaExpressionNode struct {
	ExpressionBase
	Parameters []FunctionArgument
	ReturnType Type // may be nil when inferred
	Body       Statement
	Captures   []string
}

func NewLambdaExpression(pos position.Position, params []FunctionArgument, ret Type, body Statement, captures []string) *LambdaExpressionNode {
	return &LambdaExpressionNode{ExpressionBase{NewBase(pos)}, params, ret, body, captures}
}
func (*LambdaExpressionNode) Kind() Kind { return LambdaExpressionKind }

// MatchBranch is one `pattern [if guard] -> body` arm of a match expression.
type MatchBranch struct {
	Pattern Pattern
	Guard   Expression // nil when no guard
	Body    Expression
}

type MatchExpressionNode struct {
	ExpressionBase
	Subject  Expression
	Branches []MatchBranch
}

func NewMatchExpression(pos position.Position, subject Expression, branches []MatchBranch) *MatchExpressionNode {
	return &MatchExpressionNode{ExpressionBase{NewBase(pos)}, subject, branches}
}
func (*MatchExpressionNode) Kind() Kind { return MatchExpressionKind }

type TernaryExpressionNode struct {
	ExpressionBase
	Condition Expression
	Then      Expression
	Else      Expression
}

func NewTernaryExpression(pos position.Position, cond, then, els Expression) *TernaryExpressionNode {
	return &TernaryExpressionNode{ExpressionBase{NewBase(pos)}, cond, then, els}
}
func (*TernaryExpressionNode) Kind() Kind { return TernaryExpressionKind }

// StructField is one `name: value` pair of a struct literal.
type StructField struct {
	Name  string
	Value Expression
}

// StructExpressionNode covers both the named (TypeName{...}) and anonymous
// ({...}) struct-literal forms; TypeName is empty for the anonymous form,
// and the emitter synthesizes a UUID-namespaced struct name for it.
type StructExpressionNode struct {
	ExpressionBase
	TypeName string
	Fields   []StructField
}

func NewStructExpression(pos position.Position, typeName string, fields []StructField) *StructExpressionNode {
	return &StructExpressionNode{ExpressionBase{NewBase(pos)}, typeName, fields}
}
func (*StructExpressionNode) Kind() Kind { return StructExpressionKind }

// ParallelExpressionNode is `par { ... }` / `par expr` — spawns concurrent
// work managed by the emitted ScopeGuard/ArgonFuture runtime.
type ParallelExpressionNode struct {
	ExpressionBase
	Body Statement
}

func NewParallelExpression(pos position.Position, body Statement) *ParallelExpressionNode {
	return &ParallelExpressionNode{ExpressionBase{NewBase(pos)}, body}
}
func (*ParallelExpressionNode) Kind() Kind { return ParallelExpressionKind }

type AwaitExpressionNode struct {
	ExpressionBase
	Operand Expression
}

func NewAwaitExpression(pos position.Position, operand Expression) *AwaitExpressionNode {
	return &AwaitExpressionNode{ExpressionBase{NewBase(pos)}, operand}
}
func (*AwaitExpressionNode) Kind() Kind { return AwaitExpressionKind }

type LazyExpressionNode struct {
	ExpressionBase
	Operand Expression
}

func NewLazyExpression(pos position.Position, operand Expression) *LazyExpressionNode {
	return &LazyExpressionNode{ExpressionBase{NewBase(pos)}, operand}
}
func (*LazyExpressionNode) Kind() Kind { return LazyExpressionKind }

// TryExpressionNode is `try expr` — unwraps a Try[T,E] value or propagates
// its error per the runtime Try helper.
type TryExpressionNode struct {
	ExpressionBase
	Operand Expression
}

func NewTryExpression(pos position.Position, operand Expression) *TryExpressionNode {
	return &TryExpressionNode{ExpressionBase{NewBase(pos)}, operand}
}
func (*TryExpressionNode) Kind() Kind { return TryExpressionKind }
