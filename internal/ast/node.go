package ast

import "github.com/NotDragon/ArgonLang-sub000/internal/position"

// Node is satisfied by every AST node. This package never imports
// internal/result: nodes are pure data, built by the parser and read by the
// emitter, with no Result-returning methods of their own.
type Node interface {
	Group() Group
	Kind() Kind
	Pos() position.Position
}

// Expression is any node that can appear where a value is expected.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that can appear in a block or at top level.
type Statement interface {
	Node
	statementNode()
}

// Type is any node occurring in type-annotation position.
type Type interface {
	Node
	typeNode()
}

// Pattern is any node occurring in a match arm's pattern position.
type Pattern interface {
	Node
	patternNode()
}

// Base is embedded by every concrete node to carry the Position every node
// must be constructed with (spec §3.3: "every node's Position is set at
// construction, never defaulted after the fact").
type Base struct {
	position position.Position
}

func NewBase(pos position.Position) Base {
	return Base{position: pos}
}

func (b Base) Pos() position.Position {
	return b.position
}

// ExpressionBase embeds Base and implements expressionNode, so concrete
// expression types only need to add Group()/Kind().
type ExpressionBase struct{ Base }

func (ExpressionBase) expressionNode() {}
func (ExpressionBase) Group() Group    { return GroupExpression }

type StatementBase struct{ Base }

func (StatementBase) statementNode() {}
func (StatementBase) Group() Group   { return GroupStatement }

type TypeBase struct{ Base }

func (TypeBase) typeNode() {}
func (TypeBase) Group() Group { return GroupType }

type PatternBase struct{ Base }

func (PatternBase) patternNode() {}
func (PatternBase) Group() Group { return GroupPattern }
