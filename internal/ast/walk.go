package ast

import "github.com/samber/lo"

// Visitor is called once per node during Walk; returning false skips that
// node's children.
type Visitor func(n Node) bool

// Walk performs a pre-order traversal of n and its children. Nil nodes
// (absent optional children) are skipped silently.
func Walk(n Node, visit Visitor) {
	if n == nil || isNilNode(n) {
		return
	}
	if !visit(n) {
		return
	}
	for _, child := range Children(n) {
		Walk(child, visit)
	}
}

// Children returns n's immediate child nodes, in source order, omitting any
// that are absent (nil). Used by Walk and by the emitter's generic
// pre-passes (e.g. collecting every identifier reference under a subtree).
func Children(n Node) []Node {
	switch v := n.(type) {
	case *BinaryExpressionNode:
		return nonNil(v.Left, v.Right)
	case *UnaryExpressionNode:
		return nonNil(v.Operand)
	case *ComparisonExpressionNode:
		return nonNil(v.Left, v.Right)
	case *AssignmentExpressionNode:
		return nonNil(v.Target, v.Value)
	case *FunctionCallExpressionNode:
		out := nonNil(v.Callee)
		out = append(out, lo.Map(v.Arguments, func(e Expression, _ int) Node { return Node(e) })...)
		return out
	case *MemberAccessExpressionNode:
		return nonNil(v.Object)
	case *IndexExpressionNode:
		return nonNil(v.Object, v.Index)
	case *SliceExpressionNode:
		return nonNil(v.Object, v.Low, v.High)
	case *MultiIndexExpressionNode:
		out := nonNil(v.Object)
		out = append(out, lo.Map(v.Indices, func(e Expression, _ int) Node { return Node(e) })...)
		return out
	case *ToExpressionNode:
		return nonNil(v.Low, v.High)
	case *ArrayLiteralExpressionNode:
		return lo.Map(v.Elements, func(e Expression, _ int) Node { return Node(e) })
	case *LambdaExpressionNode:
		return nonNil(v.ReturnType, v.Body)
	case *MatchExpressionNode:
		out := nonNil(v.Subject)
		for _, b := range v.Branches {
			out = append(out, nonNil(b.Pattern, b.Guard, b.Body)...)
		}
		return out
	case *TernaryExpressionNode:
		return nonNil(v.Condition, v.Then, v.Else)
	case *StructExpressionNode:
		return lo.Map(v.Fields, func(f StructField, _ int) Node { return Node(f.Value) })
	case *ParallelExpressionNode:
		return nonNil(v.Body)
	case *AwaitExpressionNode:
		return nonNil(v.Operand)
	case *LazyExpressionNode:
		return nonNil(v.Operand)
	case *TryExpressionNode:
		return nonNil(v.Operand)

	case *ProgramNode:
		return lo.Map(v.Declarations, func(s Statement, _ int) Node { return Node(s) })
	case *ExpressionStatementNode:
		return nonNil(v.Expression)
	case *VariableDeclarationNode:
		return nonNil(v.Type, v.Value)
	case *FunctionDefinitionNode:
		return nonNil(v.ReturnType, v.Body)
	case *ClassDeclarationNode:
		var out []Node
		for _, m := range v.Members {
			if m.Field != nil {
				out = append(out, m.Field)
			}
			if m.Method != nil {
				out = append(out, m.Method)
			}
			if m.Constructor != nil {
				out = append(out, m.Constructor)
			}
		}
		return out
	case *ImplStatementNode:
		out := nonNil(v.Trait, v.Target)
		for _, m := range v.Methods {
			out = append(out, m)
		}
		return out
	case *ConstructorStatementNode:
		return nonNil(v.Body)
	case *IfStatementNode:
		return nonNil(v.Condition, v.Then, v.Else)
	case *WhileStatementNode:
		return nonNil(v.Condition, v.Body)
	case *ForStatementNode:
		return nonNil(v.VariableType, v.Iterable, v.Body)
	case *ReturnStatementNode:
		return nonNil(v.Value)
	case *YieldStatementNode:
		return nonNil(v.Value)
	case *BlockStatementNode:
		return lo.Map(v.Statements, func(s Statement, _ int) Node { return Node(s) })
	case *TypeAliasStatementNode:
		return nonNil(v.Target)

	case *GenericTypeNode:
		return lo.Map(v.Args, func(t Type, _ int) Node { return Node(t) })
	case *SumTypeNode:
		return lo.Map(v.Alternatives, func(t Type, _ int) Node { return Node(t) })
	case *IntersectionTypeNode:
		return lo.Map(v.Members, func(t Type, _ int) Node { return Node(t) })
	case *PrefixedTypeNode:
		return nonNil(v.Inner)
	case *ArrayTypeNode:
		return nonNil(v.Element, v.Size)
	case *FunctionTypeNode:
		out := lo.Map(v.Params, func(t Type, _ int) Node { return Node(t) })
		return append(out, nonNil(v.Return)...)
	case *VariadicTypeNode:
		return nonNil(v.Element)

	case *LiteralPatternNode:
		return nonNil(v.Literal)
	case *IdentifierPatternNode:
		return nonNil(v.Guard)
	case *ArrayPatternNode:
		return lo.Map(v.Elements, func(p Pattern, _ int) Node { return Node(p) })
	case *StructPatternNode:
		return lo.Map(v.Fields, func(f StructPatternField, _ int) Node { return Node(f.Pattern) })
	case *ConstructorPatternNode:
		return lo.Map(v.Arguments, func(p Pattern, _ int) Node { return Node(p) })
	case *TypePatternNode:
		return nonNil(v.Type)
	case *RangePatternNode:
		return nonNil(v.Low, v.High)

	default:
		return nil
	}
}

// nonNil filters out nil interface-holding Node arguments, which arise
// constantly here since optional children (else-branches, guards, slice
// bounds, inferred types) are represented as plain nil.
func nonNil(nodes ...Node) []Node {
	return lo.Filter(nodes, func(n Node, _ int) bool {
		return n != nil && !isNilNode(n)
	})
}

// isNilNode reports whether n is a non-nil interface wrapping a nil
// pointer — the shape a *ConcreteNode(nil) takes when a typed-nil field is
// passed as a Node/Expression/Type/Pattern argument.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *BinaryExpressionNode:
		return v == nil
	case *UnaryExpressionNode:
		return v == nil
	case *ComparisonExpressionNode:
		return v == nil
	case *AssignmentExpressionNode:
		return v == nil
	case *FunctionCallExpressionNode:
		return v == nil
	case *MemberAccessExpressionNode:
		return v == nil
	case *IndexExpressionNode:
		return v == nil
	case *SliceExpressionNode:
		return v == nil
	case *MultiIndexExpressionNode:
		return v == nil
	case *ToExpressionNode:
		return v == nil
	case *ArrayLiteralExpressionNode:
		return v == nil
	case *LambdaExpressionNode:
		return v == nil
	case *MatchExpressionNode:
		return v == nil
	case *TernaryExpressionNode:
		return v == nil
	case *StructExpressionNode:
		return v == nil
	case *ParallelExpressionNode:
		return v == nil
	case *AwaitExpressionNode:
		return v == nil
	case *LazyExpressionNode:
		return v == nil
	case *TryExpressionNode:
		return v == nil
	case *IdentifierNode:
		return v == nil
	case *StringLiteralNode:
		return v == nil
	case *CharLiteralNode:
		return v == nil
	case *IntegralLiteralNode:
		return v == nil
	case *FloatLiteralNode:
		return v == nil
	case *BooleanLiteralNode:
		return v == nil
	case *NullNode:
		return v == nil
	case *IdentifierTypeNode:
		return v == nil
	case *GenericTypeNode:
		return v == nil
	case *SumTypeNode:
		return v == nil
	case *IntersectionTypeNode:
		return v == nil
	case *PrefixedTypeNode:
		return v == nil
	case *ArrayTypeNode:
		return v == nil
	case *FunctionTypeNode:
		return v == nil
	case *VariadicTypeNode:
		return v == nil
	case *IfStatementNode:
		return v == nil
	case *BlockStatementNode:
		return v == nil
	default:
		return false
	}
}
