package driver

import (
	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

// RawLayer is an opaque program, used for inner puzzles the wallet does not model.
type RawLayer struct {
	Program clvm.Value
}

// RawSolution is an opaque solution.
type RawSolution struct {
	Value clvm.Value
}

func (RawLayer) layer()       {}
func (RawSolution) solution() {}

func (l RawLayer) TreeHash() model.Bytes32 { return l.Program.TreeHash() }

func (l RawLayer) ConstructPuzzle(ctx *SpendContext) (clvm.NodePtr, error) {
	return ctx.Alloc(l.Program)
}

func (l RawLayer) ConstructSolution(ctx *SpendContext, solution Solution) (clvm.NodePtr, error) {
	s, ok := solution.(RawSolution)
	if !ok {
		return 0, solutionTypeError(l, solution)
	}
	return ctx.Alloc(s.Value)
}

func (l RawLayer) ParseSolution(ctx *SpendContext, n clvm.NodePtr) (Solution, error) {
	return RawSolution{Value: ctx.Allocator().Value(n)}, nil
}

// ParseRaw accepts any puzzle.
func ParseRaw(ctx *SpendContext, p Puzzle) (Layer, bool, error) {
	return RawLayer{Program: ctx.Allocator().Value(p.Node)}, true, nil
}
