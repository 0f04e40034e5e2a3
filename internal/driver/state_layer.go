package driver

import (
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
)

// StateLayer holds NFT metadata and the hash of the program allowed to update it.
// The mod curries its own hash as the first argument.
type StateLayer struct {
	ModHash             model.Bytes32
	Metadata            clvm.Value
	MetadataUpdaterHash model.Bytes32
	Inner               Layer
}

// StateSolution is (inner_solution).
type StateSolution struct {
	Inner Solution
}

func (StateLayer) layer()       {}
func (StateSolution) solution() {}

// NewStateLayer uses the library's default metadata updater.
func NewStateLayer(lib *puzzles.Library, metadata clvm.Value, inner Layer) StateLayer {
	return StateLayer{
		ModHash:             lib.Hash(puzzles.NftStateLayer),
		Metadata:            metadata,
		MetadataUpdaterHash: lib.Hash(puzzles.NftMetadataUpdater),
		Inner:               inner,
	}
}

func StateLayerHash(modHash, metadataHash, metadataUpdaterHash, innerPuzzleHash model.Bytes32) model.Bytes32 {
	return clvm.CurryTreeHash(modHash,
		clvm.TreeHashAtom(modHash[:]),
		metadataHash,
		clvm.TreeHashAtom(metadataUpdaterHash[:]),
		innerPuzzleHash,
	)
}

func (l StateLayer) TreeHash() model.Bytes32 {
	return StateLayerHash(l.ModHash, l.Metadata.TreeHash(), l.MetadataUpdaterHash, l.Inner.TreeHash())
}

func (l StateLayer) ConstructPuzzle(ctx *SpendContext) (clvm.NodePtr, error) {
	a := ctx.Allocator()
	modHash, err := a.NewBytes32(l.ModHash)
	if err != nil {
		return 0, err
	}
	metadata, err := ctx.Alloc(l.Metadata)
	if err != nil {
		return 0, err
	}
	updater, err := a.NewBytes32(l.MetadataUpdaterHash)
	if err != nil {
		return 0, err
	}
	inner, err := l.Inner.ConstructPuzzle(ctx)
	if err != nil {
		return 0, err
	}
	return ctx.curry(puzzles.NftStateLayer, l.ModHash, modHash, metadata, updater, inner)
}

func (l StateLayer) ConstructSolution(ctx *SpendContext, solution Solution) (clvm.NodePtr, error) {
	s, ok := solution.(StateSolution)
	if !ok {
		return 0, solutionTypeError(l, solution)
	}
	inner, err := l.Inner.ConstructSolution(ctx, s.Inner)
	if err != nil {
		return 0, err
	}
	return ctx.Allocator().NewList(inner)
}

func (l StateLayer) ParseSolution(ctx *SpendContext, n clvm.NodePtr) (Solution, error) {
	items, ok := ctx.Allocator().ListN(n, 1)
	if !ok {
		return nil, fmt.Errorf("%w: state layer solution is not a 1 item list", clvm.ErrDecode)
	}
	inner, err := l.Inner.ParseSolution(ctx, items[0])
	if err != nil {
		return nil, err
	}
	return StateSolution{Inner: inner}, nil
}

func StateParser(inner Parser) Parser {
	return func(ctx *SpendContext, p Puzzle) (Layer, bool, error) {
		modHash := ctx.Library().Hash(puzzles.NftStateLayer)
		if !p.IsCurried() || p.ModHash != modHash {
			return nil, false, nil
		}
		if len(p.Args) != 4 {
			return nil, false, structural("state layer takes 4 curried arguments, got %d", len(p.Args))
		}

		a := ctx.Allocator()
		if self, ok := a.Bytes32(p.Args[0]); !ok || self != modHash {
			return nil, false, structural("state layer curried mod hash does not match")
		}
		updater, ok := a.Bytes32(p.Args[2])
		if !ok {
			return nil, false, structural("state layer metadata updater hash is not 32 bytes")
		}

		innerLayer, ok, err := inner(ctx, InspectPuzzle(a, p.Args[3]))
		if err != nil || !ok {
			return nil, false, err
		}
		return StateLayer{
			ModHash:             modHash,
			Metadata:            a.Value(p.Args[1]),
			MetadataUpdaterHash: updater,
			Inner:               innerLayer,
		}, true, nil
	}
}
