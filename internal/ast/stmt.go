package ast

import "github.com/NotDragon/ArgonLang-sub000/internal/position"

type ExpressionStatementNode struct {
	StatementBase
	Expression Expression
}

func NewExpressionStatement(pos position.Position, expr Expression) *ExpressionStatementNode {
	return &ExpressionStatementNode{StatementBase{NewBase(pos)}, expr}
}
func (*ExpressionStatementNode) Kind() Kind { return ExpressionStatementKind }

// VariableDeclarationNode covers both `def` (mutable) and `const` (immutable)
// forms; Mutable is decided from the lexeme, since both share the same
// token.Kind (token.KeywordDef).
type VariableDeclarationNode struct {
	StatementBase
	Name        string
	Type        Type // nil when inferred from Value
	Value       Expression
	Mutable     bool
	Destructure []string // non-empty for `def [a, b] = ...` destructuring decls
}

func NewVariableDeclaration(pos position.Position, name string, t Type, value Expression, mutable bool) *VariableDeclarationNode {
	return &VariableDeclarationNode{StatementBase{NewBase(pos)}, name, t, value, mutable, nil}
}
func (*VariableDeclarationNode) Kind() Kind { return VariableDeclarationKind }

// FunctionDeclarationNode is a signature with no body (a trait/interface
// member, or a forward declaration); FunctionDefinitionNode is the version
// with a body.
type FunctionDeclarationNode struct {
	StatementBase
	Name       string
	Generics   []GenericParam
	Parameters []FunctionArgument
	ReturnType Type
	Throws     bool
}

func NewFunctionDeclaration(pos position.Position, name string, generics []GenericParam, params []FunctionArgument, ret Type, throws bool) *FunctionDeclarationNode {
	return &FunctionDeclarationNode{StatementBase{NewBase(pos)}, name, generics, params, ret, throws}
}
func (*FunctionDeclarationNode) Kind() Kind { return FunctionDeclarationKind }

type FunctionDefinitionNode struct {
	StatementBase
	Name       string
	Generics   []GenericParam
	Parameters []FunctionArgument
	ReturnType Type
	Throws     bool
	Body       Statement
}

func NewFunctionDefinition(pos position.Position, name string, generics []GenericParam, params []FunctionArgument, ret Type, throws bool, body Statement) *FunctionDefinitionNode {
	return &FunctionDefinitionNode{StatementBase{NewBase(pos)}, name, generics, params, ret, throws, body}
}
func (*FunctionDefinitionNode) Kind() Kind { return FunctionDefinitionKind }

// IsMain reports whether this definition is the program's entry point, used
// to enforce the "exactly one main" invariant over a Program's Declarations.
func (f *FunctionDefinitionNode) IsMain() bool { return f.Name == "main" }

// ClassMember is one member of a class body: a field (Field != nil), a
// method (Method != nil), or a nested constructor (Constructor != nil) —
// exactly one is set.
type ClassMember struct {
	Visibility  Visibility
	Field       *VariableDeclarationNode
	Method      *FunctionDefinitionNode
	Constructor *ConstructorStatementNode
}

type ClassDeclarationNode struct {
	StatementBase
	Name      string
	Generics  []GenericParam
	BaseTypes []Type // implemented traits / base classes
	Members   []ClassMember
}

func NewClassDeclaration(pos position.Position, name string, generics []GenericParam, bases []Type, members []ClassMember) *ClassDeclarationNode {
	return &ClassDeclarationNode{StatementBase{NewBase(pos)}, name, generics, bases, members}
}
func (*ClassDeclarationNode) Kind() Kind { return ClassDeclarationKind }

// ImplStatementNode is `impl TraitName for TypeName { ... }`.
type ImplStatementNode struct {
	StatementBase
	Trait   Type
	Target  Type
	Methods []*FunctionDefinitionNode
}

func NewImplStatement(pos position.Position, trait, target Type, methods []*FunctionDefinitionNode) *ImplStatementNode {
	return &ImplStatementNode{StatementBase{NewBase(pos)}, trait, target, methods}
}
func (*ImplStatementNode) Kind() Kind { return ImplStatementKind }

// ConstructorStatementNode is a class's `constructor(...) { ... }` member.
type ConstructorStatementNode struct {
	StatementBase
	Parameters []FunctionArgument
	Body       Statement
}

func NewConstructorStatement(pos position.Position, params []FunctionArgument, body Statement) *ConstructorStatementNode {
	return &ConstructorStatementNode{StatementBase{NewBase(pos)}, params, body}
}
func (*ConstructorStatementNode) Kind() Kind { return ConstructorStatementKind }

type IfStatementNode struct {
	StatementBase
	Condition Expression
	Then      Statement
	Else      Statement // nil when absent; another *IfStatementNode for else-if
}

func NewIfStatement(pos position.Position, cond Expression, then, els Statement) *IfStatementNode {
	return &IfStatementNode{StatementBase{NewBase(pos)}, cond, then, els}
}
func (*IfStatementNode) Kind() Kind { return IfStatementKind }

// WhileStatementNode covers both leading-condition `while` and the
// SPEC_FULL-recovered trailing-condition `dowhile` form (DoWhile=true).
type WhileStatementNode struct {
	StatementBase
	Condition Expression
	Body      Statement
	DoWhile   bool
}

func NewWhileStatement(pos position.Position, cond Expression, body Statement, doWhile bool) *WhileStatementNode {
	return &WhileStatementNode{StatementBase{NewBase(pos)}, cond, body, doWhile}
}
func (*WhileStatementNode) Kind() Kind { return WhileStatementKind }

type ForStatementNode struct {
	StatementBase
	Variable     string
	VariableType Type // nil when the loop variable has no declared type
	Iterable     Expression
	Body         Statement
}

func NewForStatement(pos position.Position, variable string, variableType Type, iterable Expression, body Statement) *ForStatementNode {
	return &ForStatementNode{StatementBase{NewBase(pos)}, variable, variableType, iterable, body}
}
func (*ForStatementNode) Kind() Kind { return ForStatementKind }

type BreakStatementNode struct{ StatementBase }

func NewBreakStatement(pos position.Position) *BreakStatementNode {
	return &BreakStatementNode{StatementBase{NewBase(pos)}}
}
func (*BreakStatementNode) Kind() Kind { return BreakStatementKind }

type ContinueStatementNode struct{ StatementBase }

func NewContinueStatement(pos position.Position) *ContinueStatementNode {
	return &ContinueStatementNode{StatementBase{NewBase(pos)}}
}
func (*ContinueStatementNode) Kind() Kind { return ContinueStatementKind }

// ReturnStatementNode covers both plain `return expr` and the `return super`
// form used from a subclass constructor to forward to the base initializer
// (Super=true, Value holds the forwarded arguments as a call expression).
type ReturnStatementNode struct {
	StatementBase
	Value Expression // nil for bare `return`
	Super bool
}

func NewReturnStatement(pos position.Position, value Expression, super bool) *ReturnStatementNode {
	return &ReturnStatementNode{StatementBase{NewBase(pos)}, value, super}
}
func (*ReturnStatementNode) Kind() Kind { return ReturnStatementKind }

type YieldStatementNode struct {
	StatementBase
	Value Expression
}

func NewYieldStatement(pos position.Position, value Expression) *YieldStatementNode {
	return &YieldStatementNode{StatementBase{NewBase(pos)}, value}
}
func (*YieldStatementNode) Kind() Kind { return YieldStatementKind }

type BlockStatementNode struct {
	StatementBase
	Statements []Statement
}

func NewBlockStatement(pos position.Position, statements []Statement) *BlockStatementNode {
	return &BlockStatementNode{StatementBase{NewBase(pos)}, statements}
}
func (*BlockStatementNode) Kind() Kind { return BlockStatementKind }

type TypeAliasStatementNode struct {
	StatementBase
	Name     string
	Generics []GenericParam
	Target   Type
}

func NewTypeAliasStatement(pos position.Position, name string, generics []GenericParam, target Type) *TypeAliasStatementNode {
	return &TypeAliasStatementNode{StatementBase{NewBase(pos)}, name, generics, target}
}
func (*TypeAliasStatementNode) Kind() Kind { return TypeAliasStatementKind }

// UnionVariant is one `Name(Types...)` alternative of a union declaration.
type UnionVariant struct {
	Name   string
	Fields []Type
}

type UnionDeclarationNode struct {
	StatementBase
	Name     string
	Generics []GenericParam
	Variants []UnionVariant
}

func NewUnionDeclaration(pos position.Position, name string, generics []GenericParam, variants []UnionVariant) *UnionDeclarationNode {
	return &UnionDeclarationNode{StatementBase{NewBase(pos)}, name, generics, variants}
}
func (*UnionDeclarationNode) Kind() Kind { return UnionDeclarationKind }

type EnumMember struct {
	Name  string
	Value Expression // nil when the discriminant is implicit
}

type EnumDeclarationNode struct {
	StatementBase
	Name    string
	Members []EnumMember
}

func NewEnumDeclaration(pos position.Position, name string, members []EnumMember) *EnumDeclarationNode {
	return &EnumDeclarationNode{StatementBase{NewBase(pos)}, name, members}
}
func (*EnumDeclarationNode) Kind() Kind { return EnumDeclarationKind }

// TraitDeclarationNode covers both `trait`/interface-like declarations and
// the SPEC_FULL-recovered `inter` alias, plus an optional `where` constraint
// clause over its generic parameters (ConstraintDeclarationNode).
type TraitDeclarationNode struct {
	StatementBase
	Name       string
	Generics   []GenericParam
	Where      []Type // constraint references from a trailing `where` clause
	Methods    []*FunctionDeclarationNode
	TypeConsts []TypeAliasStatementNode // `typeconst` associated-type members
}

func NewTraitDeclaration(pos position.Position, name string, generics []GenericParam, where []Type, methods []*FunctionDeclarationNode, typeConsts []TypeAliasStatementNode) *TraitDeclarationNode {
	return &TraitDeclarationNode{StatementBase{NewBase(pos)}, name, generics, where, methods, typeConsts}
}
func (*TraitDeclarationNode) Kind() Kind { return TraitDeclarationKind }

type ModuleDeclarationNode struct {
	StatementBase
	Path []string
}

func NewModuleDeclaration(pos position.Position, path []string) *ModuleDeclarationNode {
	return &ModuleDeclarationNode{StatementBase{NewBase(pos)}, path}
}
func (*ModuleDeclarationNode) Kind() Kind { return ModuleDeclarationKind }

type ImportStatementNode struct {
	StatementBase
	Path  []string
	Alias string // empty when not aliased
}

func NewImportStatement(pos position.Position, path []string, alias string) *ImportStatementNode {
	return &ImportStatementNode{StatementBase{NewBase(pos)}, path, alias}
}
func (*ImportStatementNode) Kind() Kind { return ImportStatementKind }

// ConstraintDeclarationNode is a standalone named generic constraint,
// referenced from `where` clauses and generic-parameter bounds.
type ConstraintDeclarationNode struct {
	StatementBase
	Name     string
	Generics []GenericParam
	Requires []Type
}

func NewConstraintDeclaration(pos position.Position, name string, generics []GenericParam, requires []Type) *ConstraintDeclarationNode {
	return &ConstraintDeclarationNode{StatementBase{NewBase(pos)}, name, generics, requires}
}
func (*ConstraintDeclarationNode) Kind() Kind { return ConstraintDeclarationKind }
