package emitter

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/NotDragon/ArgonLang-sub000/internal/ast"
	"github.com/NotDragon/ArgonLang-sub000/internal/result"
)

// primitiveNames maps a source primitive to its target-language spelling
// (spec §4.4 "Primitive types map to fixed-width target types"). The
// 128-bit widths route through the runtime's Int128/UInt128 helper class
// rather than a native type, so DepBigInt is required whenever one of
// these two is emitted.
var primitiveNames = map[ast.PrimitiveType]string{
	ast.I8: "int8_t", ast.I16: "int16_t", ast.I32: "int32_t", ast.I64: "int64_t",
	ast.I128: "argon::Int128",
	ast.U8:   "uint8_t", ast.U16: "uint16_t", ast.U32: "uint32_t", ast.U64: "uint64_t",
	ast.U128: "argon::UInt128",
	ast.F32:  "float", ast.F64: "double", ast.F128: "long double",
	ast.Bool: "bool", ast.Str: "std::string", ast.Chr: "char",
}

func (e *Emitter) emitPrimitive(t ast.PrimitiveType) string {
	if t == ast.I128 || t == ast.U128 {
		e.require(DepBigInt)
	}
	if s, ok := primitiveNames[t]; ok {
		return s
	}
	return "auto"
}

// emitType renders t as a target type expression. Intersection types are
// erased to their first member at signature position per SPEC_FULL §4.4+
// (the remaining conjuncts are already enforced by the enclosing generic's
// `requires` clause, so nothing is lost).
func (e *Emitter) emitType(t ast.Type) (string, *result.Error) {
	if t == nil {
		return "auto", nil
	}
	switch tt := t.(type) {
	case *ast.IdentifierTypeNode:
		if prim, ok := primitiveFromName(tt.Name); ok {
			return e.emitPrimitive(prim), nil
		}
		return tt.Name, nil
	case *ast.GenericTypeNode:
		args, err := e.emitTypeList(tt.Args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s<%s>", tt.Name, strings.Join(args, ", ")), nil
	case *ast.SumTypeNode:
		alts, err := e.emitTypeList(tt.Alternatives)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("std::variant<%s>", strings.Join(alts, ", ")), nil
	case *ast.IntersectionTypeNode:
		if len(tt.Members) == 0 {
			return "auto", nil
		}
		return e.emitType(tt.Members[0])
	case *ast.PrefixedTypeNode:
		inner, err := e.emitType(tt.Inner)
		if err != nil {
			return "", err
		}
		switch tt.Qualifier {
		case ast.OwnershipPointer:
			return inner + "*", nil
		case ast.OwnershipOwned:
			return fmt.Sprintf("std::unique_ptr<%s>", inner), nil
		case ast.OwnershipReference:
			return inner + " const&", nil
		case ast.OwnershipMutableReference:
			return inner + "&", nil
		default:
			return inner, nil
		}
	case *ast.ArrayTypeNode:
		elem, err := e.emitType(tt.Element)
		if err != nil {
			return "", err
		}
		if tt.Size != nil {
			size, err := e.emitExpr(tt.Size)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("std::array<%s, %s>", elem, size), nil
		}
		return fmt.Sprintf("std::vector<%s>", elem), nil
	case *ast.FunctionTypeNode:
		ret, err := e.emitType(tt.Return)
		if err != nil {
			return "", err
		}
		if tt.Closure {
			return fmt.Sprintf("std::function<%s()>", ret), nil
		}
		params, err := e.emitTypeList(tt.Params)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("std::function<%s(%s)>", ret, strings.Join(params, ", ")), nil
	case *ast.VariadicTypeNode:
		elem, err := e.emitType(tt.Element)
		if err != nil {
			return "", err
		}
		return elem + "...", nil
	default:
		return "", result.New(result.InvalidCodeGeneration, "unsupported type node", t.Pos())
	}
}

func (e *Emitter) emitTypeList(types []ast.Type) ([]string, *result.Error) {
	out := make([]string, 0, len(types))
	for _, t := range types {
		s, err := e.emitType(t)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

var primitiveByName = map[string]ast.PrimitiveType{
	"i8": ast.I8, "i16": ast.I16, "i32": ast.I32, "i64": ast.I64, "i128": ast.I128,
	"u8": ast.U8, "u16": ast.U16, "u32": ast.U32, "u64": ast.U64, "u128": ast.U128,
	"f32": ast.F32, "f64": ast.F64, "f128": ast.F128,
	"bool": ast.Bool, "str": ast.Str, "chr": ast.Chr,
}

func primitiveFromName(name string) (ast.PrimitiveType, bool) {
	p, ok := primitiveByName[name]
	return p, ok
}

// builtinConstraintNames are the two constraints the emitter knows how to
// lower directly (spec §4.3 "Built-in constraints known by the emitter");
// anything else is a user-defined constraint/concept name, applied
// directly.
var builtinConstraintNames = map[string]bool{"Number": true, "Type": true}

// emitConstraintConjunct lowers one generic parameter's bound into one
// `requires` conjunct (spec §4.4 "Generic functions and classes"): a
// built-in trait name becomes `Trait<T>`, a concrete primitive type becomes
// a same-type-as check, and anything else is applied as a user concept.
func (e *Emitter) emitConstraintConjunct(paramName string, bound ast.Type) (string, *result.Error) {
	id, ok := bound.(*ast.IdentifierTypeNode)
	if !ok {
		rendered, err := e.emitType(bound)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s<%s>", rendered, paramName), nil
	}
	if id.Name == "Type" {
		return "Type<" + paramName + ">", nil
	}
	if builtinConstraintNames[id.Name] {
		return fmt.Sprintf("%s<%s>", id.Name, paramName), nil
	}
	if prim, ok := primitiveFromName(id.Name); ok {
		return fmt.Sprintf("same_type_as<%s, %s>", paramName, e.emitPrimitive(prim)), nil
	}
	return fmt.Sprintf("%s<%s>", id.Name, paramName), nil
}

// emitGenericHeader emits the `template<typename T, ...> requires ...`
// pair preceding a generic function or class (spec §4.4) as one string.
// Returns "" when generics is empty, so callers can unconditionally
// prepend the result.
func (e *Emitter) emitGenericHeader(generics []ast.GenericParam) (string, *result.Error) {
	if len(generics) == 0 {
		return "", nil
	}
	names := lo.Map(generics, func(g ast.GenericParam, _ int) string { return "typename " + g.Name })
	var conjuncts []string
	for _, g := range generics {
		for _, bound := range g.Bounds {
			c, err := e.emitConstraintConjunct(g.Name, bound)
			if err != nil {
				return "", err
			}
			conjuncts = append(conjuncts, c)
		}
	}
	header := fmt.Sprintf("template<%s>", strings.Join(names, ", "))
	if len(conjuncts) > 0 {
		header += "\nrequires " + strings.Join(conjuncts, " && ")
	}
	return header, nil
}
