package driver

import (
	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

// Puzzle is a puzzle node split into its mod and curried arguments. For an uncurried
// node the mod is the node itself.
type Puzzle struct {
	Node    clvm.NodePtr
	Hash    model.Bytes32
	Mod     clvm.NodePtr
	ModHash model.Bytes32
	Args    []clvm.NodePtr
	curried bool
}

func InspectPuzzle(a *clvm.Allocator, n clvm.NodePtr) Puzzle {
	p := Puzzle{Node: n, Hash: a.TreeHash(n), Mod: n}
	if mod, args, ok := clvm.Uncurry(a, n); ok {
		p.Mod, p.Args, p.curried = mod, args, true
		p.ModHash = a.TreeHash(mod)
		return p
	}
	p.ModHash = p.Hash
	return p
}

func (p Puzzle) IsCurried() bool { return p.curried }
