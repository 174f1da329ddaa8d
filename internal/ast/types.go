package ast

import "github.com/NotDragon/ArgonLang-sub000/internal/position"

// FunctionArgument is one parameter of a function/lambda/constructor
// declaration: a name, an optional declared type, and an optional default
// value expression.
type FunctionArgument struct {
	Name         string
	Type         Type // nil when untyped/inferred
	DefaultValue Expression
}

// GenericParam is one `<T: Bound>` / `<T>` generic parameter.
type GenericParam struct {
	Name   string
	Bounds []Type // constraint/trait bounds, empty when unconstrained
}

// Ownership is the qualifier a PrefixedTypeNode carries (spec §3.2/§4.4):
// *T pointer, ~T owned, &T reference, &&T mutable reference.
type Ownership int

const (
	OwnershipPointer Ownership = iota
	OwnershipOwned
	OwnershipReference
	OwnershipMutableReference
)

func (o Ownership) String() string {
	switch o {
	case OwnershipPointer:
		return "*"
	case OwnershipOwned:
		return "~"
	case OwnershipReference:
		return "&"
	case OwnershipMutableReference:
		return "&&"
	default:
		return ""
	}
}

type IdentifierTypeNode struct {
	TypeBase
	Name string
}

func NewIdentifierType(pos position.Position, name string) *IdentifierTypeNode {
	return &IdentifierTypeNode{TypeBase{NewBase(pos)}, name}
}
func (*IdentifierTypeNode) Kind() Kind { return IdentifierTypeKind }

// GenericTypeNode is Name<Args...>, e.g. Vector<i32>.
type GenericTypeNode struct {
	TypeBase
	Name string
	Args []Type
}

func NewGenericType(pos position.Position, name string, args []Type) *GenericTypeNode {
	return &GenericTypeNode{TypeBase{NewBase(pos)}, name, args}
}
func (*GenericTypeNode) Kind() Kind { return GenericTypeKind }

// SumTypeNode is A | B | C (a tagged union of alternatives).
type SumTypeNode struct {
	TypeBase
	Alternatives []Type
}

func NewSumType(pos position.Position, alts []Type) *SumTypeNode {
	return &SumTypeNode{TypeBase{NewBase(pos)}, alts}
}
func (*SumTypeNode) Kind() Kind { return SumTypeKind }

// IntersectionTypeNode is A & B (structural intersection, erased by the
// emitter per SPEC_FULL §4.4+).
type IntersectionTypeNode struct {
	TypeBase
	Members []Type
}

func NewIntersectionType(pos position.Position, members []Type) *IntersectionTypeNode {
	return &IntersectionTypeNode{TypeBase{NewBase(pos)}, members}
}
func (*IntersectionTypeNode) Kind() Kind { return IntersectionTypeKind }

// PrefixedTypeNode is an ownership-qualified type: *T, ~T, &T, &&T.
type PrefixedTypeNode struct {
	TypeBase
	Qualifier Ownership
	Inner     Type
}

func NewPrefixedType(pos position.Position, qualifier Ownership, inner Type) *PrefixedTypeNode {
	return &PrefixedTypeNode{TypeBase{NewBase(pos)}, qualifier, inner}
}
func (*PrefixedTypeNode) Kind() Kind { return PrefixedTypeKind }

// ArrayTypeNode is T[] (unsized) or T[N] (sized, Size != nil).
type ArrayTypeNode struct {
	TypeBase
	Element Type
	Size    Expression // nil for an unsized array type
}

func NewArrayType(pos position.Position, element Type, size Expression) *ArrayTypeNode {
	return &ArrayTypeNode{TypeBase{NewBase(pos)}, element, size}
}
func (*ArrayTypeNode) Kind() Kind { return ArrayTypeKind }

// FunctionTypeNode is `func(Params...) Return`; Closure marks the bare
// `func Return` closure-type form (no parameter list, Params nil) as
// opposed to a parameter-typed function type.
type FunctionTypeNode struct {
	TypeBase
	Params  []Type
	Return  Type
	Closure bool
}

func NewFunctionType(pos position.Position, params []Type, ret Type, closure bool) *FunctionTypeNode {
	return &FunctionTypeNode{TypeBase{NewBase(pos)}, params, ret, closure}
}
func (*FunctionTypeNode) Kind() Kind { return FunctionTypeKind }

// VariadicTypeNode is ...T, a variadic parameter's declared element type.
type VariadicTypeNode struct {
	TypeBase
	Element Type
}

func NewVariadicType(pos position.Position, element Type) *VariadicTypeNode {
	return &VariadicTypeNode{TypeBase{NewBase(pos)}, element}
}
func (*VariadicTypeNode) Kind() Kind { return VariadicTypeKind }
