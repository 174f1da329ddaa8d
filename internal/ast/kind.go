// Package ast is the tagged-variant AST described in spec §3.3: every node
// exposes a Group (Expression | Statement | Type | Pattern) and a Kind (one
// tag per concrete node shape), plus the Position it originated at.
// Visitors (internal/emitter) type-switch on the concrete Go type; Kind and
// Group exist for quick dispatch tables and diagnostics, mirroring the
// original getNodeType()/getNodeGroup() pair on every C++ node.
package ast

type Group int

const (
	GroupExpression Group = iota
	GroupStatement
	GroupType
	GroupPattern
)

func (g Group) String() string {
	switch g {
	case GroupExpression:
		return "Expression"
	case GroupStatement:
		return "Statement"
	case GroupType:
		return "Type"
	case GroupPattern:
		return "Pattern"
	default:
		return "UnknownGroup"
	}
}

type Kind int

const (
	// Expressions
	StringLiteralKind Kind = iota
	CharLiteralKind
	IntegralLiteralKind
	FloatLiteralKind
	BooleanLiteralKind
	NullKind
	IdentifierKind
	BinaryExpressionKind
	UnaryExpressionKind
	ComparisonExpressionKind
	AssignmentExpressionKind
	FunctionCallExpressionKind
	MemberAccessExpressionKind
	IndexExpressionKind
	SliceExpressionKind
	MultiIndexExpressionKind
	ToExpressionKind
	ArrayLiteralExpressionKind
	LambdaExpressionKind
	MatchExpressionKind
	TernaryExpressionKind
	StructExpressionKind
	ParallelExpressionKind
	AwaitExpressionKind
	LazyExpressionKind
	TryExpressionKind

	// Statements
	ProgramKind
	VariableDeclarationKind
	FunctionDeclarationKind
	FunctionDefinitionKind
	ClassDeclarationKind
	ImplStatementKind
	ConstructorStatementKind
	IfStatementKind
	WhileStatementKind
	ForStatementKind
	BreakStatementKind
	ContinueStatementKind
	ReturnStatementKind
	YieldStatementKind
	BlockStatementKind
	TypeAliasStatementKind
	UnionDeclarationKind
	EnumDeclarationKind
	TraitDeclarationKind
	ModuleDeclarationKind
	ImportStatementKind
	ConstraintDeclarationKind
	ExpressionStatementKind

	// Types
	IdentifierTypeKind
	GenericTypeKind
	SumTypeKind
	IntersectionTypeKind
	PrefixedTypeKind
	ArrayTypeKind
	FunctionTypeKind
	VariadicTypeKind

	// Patterns
	WildcardPatternKind
	LiteralPatternKind
	IdentifierPatternKind
	ArrayPatternKind
	StructPatternKind
	ConstructorPatternKind
	TypePatternKind
	RangePatternKind
)

var kindNames = map[Kind]string{
	StringLiteralKind: "StringLiteral", CharLiteralKind: "CharLiteral",
	IntegralLiteralKind: "IntegralLiteral", FloatLiteralKind: "FloatLiteral",
	BooleanLiteralKind: "BooleanLiteral", NullKind: "Null", IdentifierKind: "Identifier",
	BinaryExpressionKind: "BinaryExpression", UnaryExpressionKind: "UnaryExpression",
	ComparisonExpressionKind: "ComparisonExpression", AssignmentExpressionKind: "AssignmentExpression",
	FunctionCallExpressionKind: "FunctionCallExpression", MemberAccessExpressionKind: "MemberAccessExpression",
	IndexExpressionKind: "IndexExpression", SliceExpressionKind: "SliceExpression",
	MultiIndexExpressionKind: "MultiIndexExpression", ToExpressionKind: "ToExpression",
	ArrayLiteralExpressionKind: "ArrayLiteralExpression", LambdaExpressionKind: "LambdaExpression",
	MatchExpressionKind: "MatchExpression", TernaryExpressionKind: "TernaryExpression",
	StructExpressionKind: "StructExpression", ParallelExpressionKind: "ParallelExpression",
	AwaitExpressionKind: "AwaitExpression", LazyExpressionKind: "LazyExpression",
	TryExpressionKind: "TryExpression",
	ProgramKind: "Program", VariableDeclarationKind: "VariableDeclaration",
	FunctionDeclarationKind: "FunctionDeclaration", FunctionDefinitionKind: "FunctionDefinition",
	ClassDeclarationKind: "ClassDeclaration", ImplStatementKind: "ImplStatement",
	ConstructorStatementKind: "ConstructorStatement", IfStatementKind: "IfStatement",
	WhileStatementKind: "WhileStatement", ForStatementKind: "ForStatement",
	BreakStatementKind: "BreakStatement", ContinueStatementKind: "ContinueStatement",
	ReturnStatementKind: "ReturnStatement", YieldStatementKind: "YieldStatement",
	BlockStatementKind: "Block", TypeAliasStatementKind: "TypeAlias",
	UnionDeclarationKind: "UnionDeclaration", EnumDeclarationKind: "EnumDeclaration",
	TraitDeclarationKind: "TraitDeclaration", ModuleDeclarationKind: "ModuleDeclaration",
	ImportStatementKind: "ImportStatement", ConstraintDeclarationKind: "ConstraintDeclaration",
	ExpressionStatementKind: "ExpressionStatement",
	IdentifierTypeKind:      "IdentifierType", GenericTypeKind: "GenericType",
	SumTypeKind: "SumType", IntersectionTypeKind: "IntersectionType",
	PrefixedTypeKind: "PrefixedType", ArrayTypeKind: "ArrayType",
	FunctionTypeKind: "FunctionType", VariadicTypeKind: "VariadicType",
	WildcardPatternKind: "WildcardPattern", LiteralPatternKind: "LiteralPattern",
	IdentifierPatternKind: "IdentifierPattern", ArrayPatternKind: "ArrayPattern",
	StructPatternKind: "StructPattern", ConstructorPatternKind: "ConstructorPattern",
	TypePatternKind: "TypePattern", RangePatternKind: "RangePattern",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UnknownKind"
}

// PrimitiveType is the set of built-in scalar types the lexer/parser can
// deduce from a literal's suffix (spec §3.3 invariants).
type PrimitiveType int

const (
	I8 PrimitiveType = iota
	I16
	I32
	I64
	I128
	U8
	U16
	U32
	U64
	U128
	F32
	F64
	F128
	Bool
	Str
	Chr
)

var primitiveNames = map[PrimitiveType]string{
	I8: "i8", I16: "i16", I32: "i32", I64: "i64", I128: "i128",
	U8: "u8", U16: "u16", U32: "u32", U64: "u64", U128: "u128",
	F32: "f32", F64: "f64", F128: "f128", Bool: "bool", Str: "str", Chr: "chr",
}

func (p PrimitiveType) String() string {
	if s, ok := primitiveNames[p]; ok {
		return s
	}
	return "unknown"
}

// Visibility is a class member's access qualifier.
type Visibility int

const (
	Public Visibility = iota
	Private
	Protected
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "pub"
	case Private:
		return "pri"
	case Protected:
		return "pro"
	default:
		return "pub"
	}
}

// DetermineIntegerType maps an explicit integer-literal suffix to its
// primitive type, defaulting to I32 when no suffix is present (spec §3.3,
// §4.2).
func DetermineIntegerType(suffix string) PrimitiveType {
	switch suffix {
	case "i8":
		return I8
	case "i16":
		return I16
	case "i64":
		return I64
	case "i128":
		return I128
	case "u8":
		return U8
	case "u16":
		return U16
	case "u32":
		return U32
	case "u64":
		return U64
	case "u128":
		return U128
	default:
		return I32
	}
}

// DetermineFloatType maps an explicit float-literal suffix to its
// primitive type, defaulting to F32 (spec §3.3, §4.2).
func DetermineFloatType(suffix string) PrimitiveType {
	switch suffix {
	case "f64":
		return F64
	case "f128":
		return F128
	default:
		return F32
	}
}
