package ast

import (
	"github.com/samber/lo"

	"github.com/NotDragon/ArgonLang-sub000/internal/position"
)

// ProgramNode is the translation unit's root: an ordered list of top-level
// declarations. Parsed from a single source file; the parser's top-level
// restriction only allows declaration-shaped statements here (spec §4.3).
type ProgramNode struct {
	StatementBase
	Declarations []Statement
}

func NewProgram(pos position.Position, declarations []Statement) *ProgramNode {
	return &ProgramNode{StatementBase{NewBase(pos)}, declarations}
}
func (*ProgramNode) Kind() Kind { return ProgramKind }

// MainFunctions returns every top-level FunctionDefinitionNode named "main".
func (p *ProgramNode) MainFunctions() []*FunctionDefinitionNode {
	return lo.FilterMap(p.Declarations, func(decl Statement, _ int) (*FunctionDefinitionNode, bool) {
		fn, ok := decl.(*FunctionDefinitionNode)
		return fn, ok && fn.IsMain()
	})
}

// HasExactlyOneMain checks the "exactly one main" invariant (spec §3.3)
// over this program's top-level declarations.
func (p *ProgramNode) HasExactlyOneMain() bool {
	return len(p.MainFunctions()) == 1
}
