package emitter

import (
	"fmt"
	"strings"

	"github.com/NotDragon/ArgonLang-sub000/internal/ast"
	"github.com/NotDragon/ArgonLang-sub000/internal/result"
)

// patternLowering is the pair a pattern lowers to (spec §4.4 "Pattern
// match lowers to an if/else-if chain"): a boolean test expression plus
// zero or more binding statements to run before the arm's body once the
// test has succeeded.
type patternLowering struct {
	Test     string
	Bindings []string
}

// lowerPattern compiles pat against subject (already-emitted C++ text
// naming the value being matched) into a test expression and binding
// statements, per the per-kind rules in spec §4.4.
func (e *Emitter) lowerPattern(pat ast.Pattern, subject string) (patternLowering, *result.Error) {
	switch p := pat.(type) {
	case *ast.WildcardPatternNode:
		return patternLowering{Test: "true"}, nil

	case *ast.LiteralPatternNode:
		e.require(DepPattern)
		lit, err := e.emitExpr(p.Literal)
		if err != nil {
			return patternLowering{}, err
		}
		return patternLowering{Test: fmt.Sprintf("argon::match_value(%s, %s)", subject, lit)}, nil

	case *ast.IdentifierPatternNode:
		binding := fmt.Sprintf("auto %s = %s;", p.Name, subject)
		test := "true"
		if p.Guard != nil {
			guard, err := e.emitExpr(p.Guard)
			if err != nil {
				return patternLowering{}, err
			}
			test = guard
		}
		return patternLowering{Test: test, Bindings: []string{binding}}, nil

	case *ast.RangePatternNode:
		e.require(DepPattern)
		lo, err := e.emitExpr(p.Low)
		if err != nil {
			return patternLowering{}, err
		}
		hi, err := e.emitExpr(p.High)
		if err != nil {
			return patternLowering{}, err
		}
		return patternLowering{
			Test: fmt.Sprintf("argon::match_range(%s, %s, %s, %t)", subject, lo, hi, p.Inclusive),
		}, nil

	case *ast.ArrayPatternNode:
		e.require(DepPattern)
		e.require(DepDestructure)
		var tests []string
		var bindings []string
		if p.Rest == "" {
			tests = append(tests, fmt.Sprintf("%s.size() == %d", subject, len(p.Elements)))
		} else {
			tests = append(tests, fmt.Sprintf("%s.size() >= %d", subject, len(p.Elements)))
		}
		for i, el := range p.Elements {
			elemExpr := fmt.Sprintf("argon::destructure_element(%s, %d)", subject, i)
			sub, err := e.lowerPattern(el, elemExpr)
			if err != nil {
				return patternLowering{}, err
			}
			tests = append(tests, sub.Test)
			bindings = append(bindings, sub.Bindings...)
		}
		if p.Rest != "" {
			bindings = append(bindings, fmt.Sprintf(
				"auto %s = argon::destructure_rest(%s, %d);", p.Rest, subject, len(p.Elements)))
		}
		return patternLowering{Test: strings.Join(tests, " && "), Bindings: bindings}, nil

	case *ast.StructPatternNode:
		var tests []string
		var bindings []string
		for _, field := range p.Fields {
			access := fmt.Sprintf("%s.%s", subject, field.Name)
			sub, err := e.lowerPattern(field.Pattern, access)
			if err != nil {
				return patternLowering{}, err
			}
			tests = append(tests, sub.Test)
			bindings = append(bindings, sub.Bindings...)
		}
		if len(tests) == 0 {
			tests = append(tests, "true")
		}
		return patternLowering{Test: strings.Join(tests, " && "), Bindings: bindings}, nil

	case *ast.ConstructorPatternNode:
		e.require(DepPattern)
		tests := []string{fmt.Sprintf("%s.holds<%s>()", subject, p.Name)}
		var bindings []string
		inner := fmt.Sprintf("%s.get<%s>()", subject, p.Name)
		for i, arg := range p.Arguments {
			argExpr := fmt.Sprintf("argon::destructure_element(%s, %d)", inner, i)
			sub, err := e.lowerPattern(arg, argExpr)
			if err != nil {
				return patternLowering{}, err
			}
			tests = append(tests, sub.Test)
			bindings = append(bindings, sub.Bindings...)
		}
		return patternLowering{Test: strings.Join(tests, " && "), Bindings: bindings}, nil

	case *ast.TypePatternNode:
		e.require(DepPattern)
		typeStr, err := e.emitType(p.Type)
		if err != nil {
			return patternLowering{}, err
		}
		test := fmt.Sprintf("argon::holds<%s>(%s)", typeStr, subject)
		var bindings []string
		if p.Name != "" {
			bindings = append(bindings, fmt.Sprintf("auto %s = argon::as<%s>(%s);", p.Name, typeStr, subject))
		}
		return patternLowering{Test: test, Bindings: bindings}, nil

	default:
		return patternLowering{}, result.New(result.InvalidCodeGeneration, "unsupported pattern node", pat.Pos())
	}
}
