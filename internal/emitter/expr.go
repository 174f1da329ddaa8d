package emitter

import (
	"fmt"
	"strings"

	"github.com/NotDragon/ArgonLang-sub000/internal/ast"
	"github.com/NotDragon/ArgonLang-sub000/internal/result"
)

// emitExpr renders e as a single C++ expression (never ending in `;`).
// A match in statement position is handled separately by emitStatement
// (spec §4.4); here match and par always produce a value, wrapping in an
// immediately-invoked lambda where needed.
func (e *Emitter) emitExpr(expr ast.Expression) (string, *result.Error) {
	switch ex := expr.(type) {
	case *ast.StringLiteralNode:
		return fmt.Sprintf("%q", ex.Value), nil
	case *ast.CharLiteralNode:
		return fmt.Sprintf("'%s'", escapeRune(ex.Value)), nil
	case *ast.IntegralLiteralNode:
		if ex.Type == ast.I128 || ex.Type == ast.U128 {
			e.require(DepBigInt)
			ctor := "Int128"
			if ex.Type == ast.U128 {
				ctor = "UInt128"
			}
			return fmt.Sprintf("argon::%s(\"%s\")", ctor, ex.Value.String()), nil
		}
		return ex.Value.String(), nil
	case *ast.FloatLiteralNode:
		suffix := "f"
		if ex.Type == ast.F64 || ex.Type == ast.F128 {
			suffix = ""
		}
		return fmt.Sprintf("%v%s", ex.Value, suffix), nil
	case *ast.BooleanLiteralNode:
		if ex.Value {
			return "true", nil
		}
		return "false", nil
	case *ast.NullNode:
		return "nullptr", nil
	case *ast.IdentifierNode:
		return ex.Name, nil

	case *ast.BinaryExpressionNode:
		return e.emitBinary(ex)
	case *ast.UnaryExpressionNode:
		return e.emitUnary(ex)
	case *ast.ComparisonExpressionNode:
		left, err := e.emitExpr(ex.Left)
		if err != nil {
			return "", err
		}
		right, err := e.emitExpr(ex.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s %s %s)", left, ex.Operator, right), nil
	case *ast.AssignmentExpressionNode:
		target, err := e.emitExpr(ex.Target)
		if err != nil {
			return "", err
		}
		value, err := e.emitExpr(ex.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s %s", target, ex.Operator, value), nil

	case *ast.FunctionCallExpressionNode:
		return e.emitCall(ex)
	case *ast.MemberAccessExpressionNode:
		obj, err := e.emitExpr(ex.Object)
		if err != nil {
			return "", err
		}
		op := "."
		if ex.Optional {
			op = "->" // optional-chained member access assumes a pointer-like handle
		}
		return fmt.Sprintf("%s%s%s", obj, op, ex.Member), nil

	case *ast.IndexExpressionNode:
		obj, err := e.emitExpr(ex.Object)
		if err != nil {
			return "", err
		}
		idx, err := e.emitExpr(ex.Index)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s[%s]", obj, idx), nil

	case *ast.SliceExpressionNode:
		return e.emitSlice(ex)

	case *ast.MultiIndexExpressionNode:
		obj, err := e.emitExpr(ex.Object)
		if err != nil {
			return "", err
		}
		var parts []string
		for _, idx := range ex.Indices {
			s, err := e.emitExpr(idx)
			if err != nil {
				return "", err
			}
			parts = append(parts, fmt.Sprintf("%s[%s]", obj, s))
		}
		return fmt.Sprintf("{ %s }", strings.Join(parts, ", ")), nil

	case *ast.ToExpressionNode:
		lo, err := e.emitExpr(ex.Low)
		if err != nil {
			return "", err
		}
		hi, err := e.emitExpr(ex.High)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("argon::range(%s, %s, %t)", lo, hi, ex.Inclusive), nil

	case *ast.ArrayLiteralExpressionNode:
		var parts []string
		for _, el := range ex.Elements {
			s, err := e.emitExpr(el)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return fmt.Sprintf("{ %s }", strings.Join(parts, ", ")), nil

	case *ast.LambdaExpressionNode:
		return e.emitLambda(ex)

	case *ast.MatchExpressionNode:
		return e.emitMatchExpr(ex)

	case *ast.TernaryExpressionNode:
		cond, err := e.emitExpr(ex.Condition)
		if err != nil {
			return "", err
		}
		then, err := e.emitExpr(ex.Then)
		if err != nil {
			return "", err
		}
		els, err := e.emitExpr(ex.Else)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s ? %s : %s)", cond, then, els), nil

	case *ast.StructExpressionNode:
		return e.emitStructLiteral(ex)

	case *ast.ParallelExpressionNode:
		return e.emitParallelExpr(ex)

	case *ast.AwaitExpressionNode:
		operand, err := e.emitExpr(ex.Operand)
		if err != nil {
			return "", err
		}
		e.require(DepScopeFutures)
		return fmt.Sprintf("%s.get()", operand), nil

	case *ast.LazyExpressionNode:
		operand, err := e.emitExpr(ex.Operand)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[=]() { return %s; }", operand), nil

	case *ast.TryExpressionNode:
		operand, err := e.emitExpr(ex.Operand)
		if err != nil {
			return "", err
		}
		e.require(DepTry)
		return fmt.Sprintf("ARGON_TRY(%s)", operand), nil

	default:
		return "", result.New(result.InvalidCodeGeneration, "unsupported expression node", expr.Pos())
	}
}

// rangedOperators are the spelling of the three ranged functional
// operators (spec §3.2: single &/|/^ are map/filter/reduce, not bitwise —
// the bitwise forms are spelled *&/*|/*^).
var rangedOperators = map[string]string{
	"|": "filter", "&": "map", "^": "reduce",
}

func (e *Emitter) emitBinary(ex *ast.BinaryExpressionNode) (string, *result.Error) {
	left, err := e.emitExpr(ex.Left)
	if err != nil {
		return "", err
	}
	right, err := e.emitExpr(ex.Right)
	if err != nil {
		return "", err
	}
	if fn, ok := rangedOperators[ex.Operator]; ok {
		e.require(DepFunctional)
		return fmt.Sprintf("argon::%s(%s, %s)", fn, left, right), nil
	}
	if ex.Operator == "|>" {
		return fmt.Sprintf("(%s)(%s)", right, left), nil // pipe: a |> f == f(a)
	}
	return fmt.Sprintf("(%s %s %s)", left, cppOperator(ex.Operator), right), nil
}

// cppOperator rewrites the handful of source operator spellings that
// differ from their C++ equivalent; everything else passes through
// unchanged (spec §9 "bitwise operators use *&, *|, *^, *~, *<, *>").
func cppOperator(op string) string {
	switch op {
	case "*&":
		return "&"
	case "*|":
		return "|"
	case "*^":
		return "^"
	case "*<":
		return "<<"
	case "*>":
		return ">>"
	case "^^":
		return "!="
	default:
		return op
	}
}

func (e *Emitter) emitUnary(ex *ast.UnaryExpressionNode) (string, *result.Error) {
	operand, err := e.emitExpr(ex.Operand)
	if err != nil {
		return "", err
	}
	op := ex.Operator
	if op == "*~" {
		op = "~"
	}
	if ex.Postfix {
		return fmt.Sprintf("(%s%s)", operand, op), nil
	}
	return fmt.Sprintf("(%s%s)", op, operand), nil
}

func (e *Emitter) emitCall(ex *ast.FunctionCallExpressionNode) (string, *result.Error) {
	callee, err := e.emitExpr(ex.Callee)
	if err != nil {
		return "", err
	}
	if len(ex.GenericArgs) > 0 {
		args, err := e.emitTypeList(ex.GenericArgs)
		if err != nil {
			return "", err
		}
		callee = fmt.Sprintf("%s<%s>", callee, strings.Join(args, ", "))
	}
	var argStrs []string
	for _, a := range ex.Arguments {
		s, err := e.emitExpr(a)
		if err != nil {
			return "", err
		}
		argStrs = append(argStrs, s)
	}
	return fmt.Sprintf("%s(%s)", callee, strings.Join(argStrs, ", ")), nil
}

// emitSlice lowers arr[lo:hi] to a subrange over iterators, treating the
// upper bound as inclusive regardless of whether the source range was
// exclusive — spec §9 flags this as a confirmed-as-is quirk of the
// original implementation ("source tests assert this form").
func (e *Emitter) emitSlice(ex *ast.SliceExpressionNode) (string, *result.Error) {
	obj, err := e.emitExpr(ex.Object)
	if err != nil {
		return "", err
	}
	lo := "0"
	if ex.Low != nil {
		lo, err = e.emitExpr(ex.Low)
		if err != nil {
			return "", err
		}
	}
	hi := fmt.Sprintf("%s.size() - 1", obj)
	if ex.High != nil {
		hi, err = e.emitExpr(ex.High)
		if err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("argon::subrange(%s.begin()+%s, %s.begin()+(%s+1))", obj, lo, obj, hi), nil
}

func (e *Emitter) emitLambda(ex *ast.LambdaExpressionNode) (string, *result.Error) {
	params, err := e.emitParamList(ex.Parameters)
	if err != nil {
		return "", err
	}
	capture := "&"
	if len(ex.Captures) > 0 {
		capture = strings.Join(ex.Captures, ", ")
	}
	retClause := ""
	if ex.ReturnType != nil {
		ret, err := e.emitType(ex.ReturnType)
		if err != nil {
			return "", err
		}
		retClause = fmt.Sprintf(" -> %s", ret)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[%s](%s)%s ", capture, params, retClause)
	bodyStr, err := e.emitLambdaBody(ex.Body)
	if err != nil {
		return "", err
	}
	b.WriteString(bodyStr)
	return b.String(), nil
}

// emitLambdaBody renders a lambda's body as a brace block; a bare
// expression body is wrapped in `{ return expr; }` matching the
// "function body is always a block" rule applied recursively to closures.
func (e *Emitter) emitLambdaBody(body ast.Statement) (string, *result.Error) {
	if block, ok := body.(*ast.BlockStatementNode); ok {
		saved := e.out
		e.out = strings.Builder{}
		e.indent++
		for _, stmt := range block.Statements {
			if err := e.emitStatement(stmt); err != nil {
				e.out = saved
				return "", err
			}
		}
		e.indent--
		inner := e.out.String()
		e.out = saved
		return "{\n" + inner + strings.Repeat("    ", e.indent) + "}", nil
	}
	if exprStmt, ok := body.(*ast.ExpressionStatementNode); ok {
		s, err := e.emitExpr(exprStmt.Expression)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("{ return %s; }", s), nil
	}
	return "", result.New(result.InvalidLambdaExpression, "unsupported lambda body shape", body.Pos())
}

// emitMatchExpr lowers a match used as a value via an immediately-invoked
// lambda (spec §4.4 "Match lowering inside expression context must
// produce a value (IIFE pattern)").
func (e *Emitter) emitMatchExpr(ex *ast.MatchExpressionNode) (string, *result.Error) {
	body, err := e.emitMatchChain(ex, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("[&]() %s()", body), nil
}

// emitMatchChain builds the if/else-if chain shared by statement and
// expression-context match lowering. asValue controls whether each arm's
// body is followed by `return` (expression context) or left bare
// (statement context).
func (e *Emitter) emitMatchChain(ex *ast.MatchExpressionNode, asValue bool) (string, *result.Error) {
	subject, err := e.emitExpr(ex.Subject)
	if err != nil {
		return "", err
	}
	subjectVar := e.freshName("match_subject")

	var b strings.Builder
	fmt.Fprintf(&b, "{\n")
	indent := strings.Repeat("    ", e.indent+1)
	fmt.Fprintf(&b, "%sauto %s = %s;\n", indent, subjectVar, subject)

	for i, branch := range ex.Branches {
		lowering, err := e.lowerPattern(branch.Pattern, subjectVar)
		if err != nil {
			return "", err
		}
		test := lowering.Test
		if branch.Guard != nil {
			guard, err := e.emitExpr(branch.Guard)
			if err != nil {
				return "", err
			}
			test = fmt.Sprintf("(%s) && (%s)", test, guard)
		}
		keyword := "if"
		if i > 0 {
			keyword = "else if"
		}
		fmt.Fprintf(&b, "%s%s (%s) {\n", indent, keyword, test)
		for _, bind := range lowering.Bindings {
			fmt.Fprintf(&b, "%s    %s\n", indent, bind)
		}
		bodyStr, err := e.emitExpr(branch.Body)
		if err != nil {
			return "", err
		}
		if asValue {
			fmt.Fprintf(&b, "%s    return %s;\n", indent, bodyStr)
		} else {
			fmt.Fprintf(&b, "%s    %s;\n", indent, bodyStr)
		}
		fmt.Fprintf(&b, "%s}\n", indent)
	}
	fmt.Fprintf(&b, "%sthrow std::runtime_error(\"non-exhaustive match\");\n", indent)
	fmt.Fprintf(&b, "%s}", strings.Repeat("    ", e.indent))
	return b.String(), nil
}

func (e *Emitter) emitStructLiteral(ex *ast.StructExpressionNode) (string, *result.Error) {
	typeName := ex.TypeName
	if typeName == "" {
		typeName = e.freshName("AnonStruct")
	}
	var parts []string
	for _, f := range ex.Fields {
		s, err := e.emitExpr(f.Value)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf(".%s = %s", f.Name, s))
	}
	return fmt.Sprintf("%s{ %s }", typeName, strings.Join(parts, ", ")), nil
}

// emitParallelExpr lowers `par expr` to a nullary lambda passed to the
// runtime's par(), yielding an ArgonFuture that the enclosing block's
// scope guard awaits at block exit (spec §4.4 "par expr").
func (e *Emitter) emitParallelExpr(ex *ast.ParallelExpressionNode) (string, *result.Error) {
	e.require(DepScopeFutures)
	bodyStr, err := e.emitLambdaBody(wrapAsBlock(ex.Body))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("argon::par([&]() %s)", bodyStr), nil
}

// wrapAsBlock normalizes a par body that is a bare expression-statement
// into the block shape emitLambdaBody expects.
func wrapAsBlock(body ast.Statement) ast.Statement {
	if _, ok := body.(*ast.BlockStatementNode); ok {
		return body
	}
	return ast.NewBlockStatement(body.Pos(), []ast.Statement{body})
}

func escapeRune(r rune) string {
	switch r {
	case '\n':
		return "\\n"
	case '\t':
		return "\\t"
	case '\r':
		return "\\r"
	case 0:
		return "\\0"
	case '\\':
		return "\\\\"
	case '\'':
		return "\\'"
	default:
		return string(r)
	}
}
