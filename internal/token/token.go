// Package token defines the lexeme-level vocabulary of the source
// language: token kinds, the keyword table, and the Token value itself.
package token

import "github.com/NotDragon/ArgonLang-sub000/internal/position"

type Kind int

const (
	Illegal Kind = iota
	End

	// Literals
	Identifier
	IntegralLiteral
	FloatLiteral
	StringLiteral
	CharLiteral
	BooleanLiteral

	// Keywords
	KeywordDef // def / const share this kind; Mutable is tracked by the parser
	KeywordMut
	KeywordFunc
	KeywordClass
	KeywordStruct
	KeywordImpl
	KeywordUsing
	KeywordEnum
	KeywordUnion
	KeywordTrait
	KeywordModule
	KeywordImport
	KeywordWhere
	KeywordConstraint
	KeywordIf
	KeywordElse
	KeywordWhile
	KeywordDoWhile
	KeywordFor
	KeywordReturn
	KeywordBreak
	KeywordContinue
	KeywordYield
	KeywordMatch
	KeywordPar
	KeywordAwait
	KeywordLazy
	KeywordThrow
	KeywordThrows
	KeywordTry
	KeywordCatch
	KeywordIs
	KeywordSuper
	KeywordTo
	KeywordPub
	KeywordPri
	KeywordPro
	KeywordConstructor
	KeywordTypeconst
	KeywordInter
	PrimitiveType

	// Punctuation / operators
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Comma
	Colon
	Semicolon
	Dot

	Plus
	Minus
	Multiply
	Divide
	Modulo
	Assign
	PlusAssign
	MinusAssign
	MultiplyAssign
	DivideAssign
	ModuloAssign

	BitAnd    // *&
	BitOr     // *|
	BitXor    // *^
	BitNot    // *~
	BitShl    // *<
	BitShr    // *>
	BitAndEq  // *&=
	BitOrEq   // *|=
	BitXorEq  // *^=
	BitShlEq  // *<=
	BitShrEq  // *>=

	RangeFilter // & (also the reference-type prefix/intersection-type separator)
	RangeMap    // | (also the sum-type separator)
	RangeReduce // ^
	RangeFilterEq
	RangeMapEq
	RangeReduceEq

	LogicalAnd
	LogicalOr
	LogicalNot
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual

	Increment
	Decrement

	Arrow       // ->
	FatArrow    // =>
	ScopeRes    // ::
	HashHash    // ##
	Pipe        // |>
	PipeOr      // ||>
	PipeEq      // |>=
	PipeOrEq    // ||>=
	XorXor      // ^^
	XorXorEq    // ^^=
	Tilde       // ~ (also the owned-type prefix)
	Dollar      // $
	Ellipsis    // ...
	ToInclusive // to=
	KeywordNull
	Question // ?
)

// RangeFilter ("&") and LogicalAnd ("&&") double as the reference and
// mutable-reference type prefixes; RangeMap ("|") has no type-position
// meaning. The parser, not the lexer, decides which role a given
// occurrence plays, based on expression vs. type context.
//
// Note these Kind names track lexeme ("&" vs "|"), not the spec §4.3
// filter/map operator they spell at expression level: spec's filter
// operator is "|" (RangeMap's lexeme) and its map operator is "&"
// (RangeFilter's lexeme) — see parseFilter/parseMap in
// internal/parser/expr.go, which loop on the Kind matching the right
// lexeme rather than the Kind whose name matches the operation.

// Position is re-exported for callers that only import token.
type Position = position.Position

// Token is a tagged (kind, lexeme, position) triple.
type Token struct {
	Kind     Kind
	Lexeme   string
	Position Position
}

func New(kind Kind, lexeme string, pos Position) Token {
	return Token{Kind: kind, Lexeme: lexeme, Position: pos}
}

// Keywords maps reserved-word spellings to their token kind. "const" and
// "def" share KeywordDef; the parser distinguishes them by lexeme when it
// needs to (VariableDeclaration.Mutable).
var Keywords = map[string]Kind{
	"def":         KeywordDef,
	"const":       KeywordDef,
	"mut":         KeywordMut,
	"func":        KeywordFunc,
	"class":       KeywordClass,
	"struct":      KeywordStruct,
	"impl":        KeywordImpl,
	"using":       KeywordUsing,
	"enum":        KeywordEnum,
	"union":       KeywordUnion,
	"trait":       KeywordTrait,
	"module":      KeywordModule,
	"import":      KeywordImport,
	"where":       KeywordWhere,
	"constraint":  KeywordConstraint,
	"if":          KeywordIf,
	"else":        KeywordElse,
	"while":       KeywordWhile,
	"dowhile":     KeywordDoWhile,
	"for":         KeywordFor,
	"return":      KeywordReturn,
	"break":       KeywordBreak,
	"continue":    KeywordContinue,
	"yield":       KeywordYield,
	"match":       KeywordMatch,
	"par":         KeywordPar,
	"await":       KeywordAwait,
	"lazy":        KeywordLazy,
	"throw":       KeywordThrow,
	"throws":      KeywordThrows,
	"try":         KeywordTry,
	"catch":       KeywordCatch,
	"is":          KeywordIs,
	"super":       KeywordSuper,
	"to":          KeywordTo,
	"pub":         KeywordPub,
	"pri":         KeywordPri,
	"pro":         KeywordPro,
	"constructor": KeywordConstructor,
	"typeconst":   KeywordTypeconst,
	"inter":       KeywordInter,
	"null":        KeywordNull,
	"true":        BooleanLiteral,
	"false":       BooleanLiteral,

	"i8": PrimitiveType, "i16": PrimitiveType, "i32": PrimitiveType,
	"i64": PrimitiveType, "i128": PrimitiveType,
	"u8": PrimitiveType, "u16": PrimitiveType, "u32": PrimitiveType,
	"u64": PrimitiveType, "u128": PrimitiveType,
	"f32": PrimitiveType, "f64": PrimitiveType, "f128": PrimitiveType,
	"bool": PrimitiveType, "str": PrimitiveType, "chr": PrimitiveType,
}

var names = map[Kind]string{
	Illegal: "Illegal", End: "End",
	Identifier: "Identifier", IntegralLiteral: "IntegralLiteral", FloatLiteral: "FloatLiteral",
	StringLiteral: "StringLiteral", CharLiteral: "CharLiteral", BooleanLiteral: "BooleanLiteral",
	KeywordDef: "def", KeywordMut: "mut", KeywordFunc: "func", KeywordClass: "class",
	KeywordStruct: "struct", KeywordImpl: "impl", KeywordUsing: "using", KeywordEnum: "enum",
	KeywordUnion: "union", KeywordTrait: "trait", KeywordModule: "module", KeywordImport: "import",
	KeywordWhere: "where", KeywordConstraint: "constraint", KeywordIf: "if", KeywordElse: "else",
	KeywordWhile: "while", KeywordDoWhile: "dowhile", KeywordFor: "for", KeywordReturn: "return",
	KeywordBreak: "break", KeywordContinue: "continue", KeywordYield: "yield", KeywordMatch: "match",
	KeywordPar: "par", KeywordAwait: "await", KeywordLazy: "lazy", KeywordThrow: "throw",
	KeywordThrows: "throws", KeywordTry: "try", KeywordCatch: "catch", KeywordIs: "is",
	KeywordSuper: "super", KeywordTo: "to", KeywordPub: "pub", KeywordPri: "pri", KeywordPro: "pro",
	KeywordConstructor: "constructor", KeywordTypeconst: "typeconst", KeywordInter: "inter",
	PrimitiveType: "PrimitiveType", KeywordNull: "null",
	LeftParen: "(", RightParen: ")", LeftBrace: "{", RightBrace: "}",
	LeftBracket: "[", RightBracket: "]", Comma: ",", Colon: ":", Semicolon: ";", Dot: ".",
	Plus: "+", Minus: "-", Multiply: "*", Divide: "/", Modulo: "%",
	Assign: "=", PlusAssign: "+=", MinusAssign: "-=", MultiplyAssign: "*=",
	DivideAssign: "/=", ModuloAssign: "%=",
	BitAnd: "*&", BitOr: "*|", BitXor: "*^", BitNot: "*~", BitShl: "*<", BitShr: "*>",
	BitAndEq: "*&=", BitOrEq: "*|=", BitXorEq: "*^=", BitShlEq: "*<=", BitShrEq: "*>=",
	RangeFilter: "&", RangeMap: "|", RangeReduce: "^",
	RangeFilterEq: "&=", RangeMapEq: "|=", RangeReduceEq: "^=",
	LogicalAnd: "&&", LogicalOr: "||", LogicalNot: "!",
	Equal: "==", NotEqual: "!=", Less: "<", LessEqual: "<=", Greater: ">", GreaterEqual: ">=",
	Increment: "++", Decrement: "--",
	Arrow: "->", FatArrow: "=>", ScopeRes: "::", HashHash: "##",
	Pipe: "|>", PipeOr: "||>", PipeEq: "|>=", PipeOrEq: "||>=",
	XorXor: "^^", XorXorEq: "^^=", Tilde: "~", Dollar: "$",
	Ellipsis: "...", ToInclusive: "to=",
	Question: "?",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "Unknown"
}
