package driver

import (
	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
)

// LauncherLayer is the singleton launcher. Its coin id becomes the launcher id.
type LauncherLayer struct {
	ModHash model.Bytes32
}

type LauncherSolution struct {
	puzzles.LauncherSolution
}

func (LauncherLayer) layer()       {}
func (LauncherSolution) solution() {}

func NewLauncherLayer(lib *puzzles.Library) LauncherLayer {
	return LauncherLayer{ModHash: lib.Hash(puzzles.SingletonLauncher)}
}

func (l LauncherLayer) TreeHash() model.Bytes32 { return l.ModHash }

func (l LauncherLayer) ConstructPuzzle(ctx *SpendContext) (clvm.NodePtr, error) {
	return ctx.checkedMod(puzzles.SingletonLauncher, l.ModHash)
}

func (l LauncherLayer) ConstructSolution(ctx *SpendContext, solution Solution) (clvm.NodePtr, error) {
	s, ok := solution.(LauncherSolution)
	if !ok {
		return 0, solutionTypeError(l, solution)
	}
	return ctx.Alloc(s.Value())
}

func (l LauncherLayer) ParseSolution(ctx *SpendContext, n clvm.NodePtr) (Solution, error) {
	s, err := puzzles.ParseLauncherSolution(ctx.Allocator(), n)
	if err != nil {
		return nil, err
	}
	return LauncherSolution{LauncherSolution: s}, nil
}

func ParseLauncher(ctx *SpendContext, p Puzzle) (Layer, bool, error) {
	modHash := ctx.Library().Hash(puzzles.SingletonLauncher)
	if p.IsCurried() || p.Hash != modHash {
		return nil, false, nil
	}
	return LauncherLayer{ModHash: modHash}, true, nil
}
