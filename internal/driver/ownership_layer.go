package driver

import (
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
)

// OwnershipLayer tracks the current DID owner of an NFT and runs the transfer
// program when the owner changes. A nil CurrentOwner means the NFT has no owner.
type OwnershipLayer struct {
	ModHash      model.Bytes32
	CurrentOwner *model.Bytes32
	Transfer     Layer
	Inner        Layer
}

// OwnershipSolution is (inner_solution).
type OwnershipSolution struct {
	Inner Solution
}

func (OwnershipLayer) layer()       {}
func (OwnershipSolution) solution() {}

func NewOwnershipLayer(lib *puzzles.Library, currentOwner *model.Bytes32, transfer, inner Layer) OwnershipLayer {
	return OwnershipLayer{
		ModHash:      lib.Hash(puzzles.NftOwnershipLayer),
		CurrentOwner: currentOwner,
		Transfer:     transfer,
		Inner:        inner,
	}
}

func ownerAtom(owner *model.Bytes32) []byte {
	if owner == nil {
		return nil
	}
	return owner[:]
}

func OwnershipLayerHash(modHash model.Bytes32, currentOwner *model.Bytes32, transferHash, innerPuzzleHash model.Bytes32) model.Bytes32 {
	return clvm.CurryTreeHash(modHash,
		clvm.TreeHashAtom(modHash[:]),
		clvm.TreeHashAtom(ownerAtom(currentOwner)),
		transferHash,
		innerPuzzleHash,
	)
}

func (l OwnershipLayer) TreeHash() model.Bytes32 {
	return OwnershipLayerHash(l.ModHash, l.CurrentOwner, l.Transfer.TreeHash(), l.Inner.TreeHash())
}

func (l OwnershipLayer) ConstructPuzzle(ctx *SpendContext) (clvm.NodePtr, error) {
	a := ctx.Allocator()
	modHash, err := a.NewBytes32(l.ModHash)
	if err != nil {
		return 0, err
	}
	owner, err := a.NewAtom(ownerAtom(l.CurrentOwner))
	if err != nil {
		return 0, err
	}
	transfer, err := l.Transfer.ConstructPuzzle(ctx)
	if err != nil {
		return 0, err
	}
	inner, err := l.Inner.ConstructPuzzle(ctx)
	if err != nil {
		return 0, err
	}
	return ctx.curry(puzzles.NftOwnershipLayer, l.ModHash, modHash, owner, transfer, inner)
}

func (l OwnershipLayer) ConstructSolution(ctx *SpendContext, solution Solution) (clvm.NodePtr, error) {
	s, ok := solution.(OwnershipSolution)
	if !ok {
		return 0, solutionTypeError(l, solution)
	}
	inner, err := l.Inner.ConstructSolution(ctx, s.Inner)
	if err != nil {
		return 0, err
	}
	return ctx.Allocator().NewList(inner)
}

func (l OwnershipLayer) ParseSolution(ctx *SpendContext, n clvm.NodePtr) (Solution, error) {
	items, ok := ctx.Allocator().ListN(n, 1)
	if !ok {
		return nil, fmt.Errorf("%w: ownership layer solution is not a 1 item list", clvm.ErrDecode)
	}
	inner, err := l.Inner.ParseSolution(ctx, items[0])
	if err != nil {
		return nil, err
	}
	return OwnershipSolution{Inner: inner}, nil
}

func OwnershipParser(transfer, inner Parser) Parser {
	return func(ctx *SpendContext, p Puzzle) (Layer, bool, error) {
		modHash := ctx.Library().Hash(puzzles.NftOwnershipLayer)
		if !p.IsCurried() || p.ModHash != modHash {
			return nil, false, nil
		}
		if len(p.Args) != 4 {
			return nil, false, structural("ownership layer takes 4 curried arguments, got %d", len(p.Args))
		}

		a := ctx.Allocator()
		if self, ok := a.Bytes32(p.Args[0]); !ok || self != modHash {
			return nil, false, structural("ownership layer curried mod hash does not match")
		}

		var owner *model.Bytes32
		atom, ok := a.Atom(p.Args[1])
		switch {
		case !ok:
			return nil, false, structural("ownership layer owner is a pair")
		case len(atom) == 0:
		case len(atom) == 32:
			id, _ := a.Bytes32(p.Args[1])
			owner = &id
		default:
			return nil, false, structural("ownership layer owner has %d bytes", len(atom))
		}

		transferLayer, ok, err := transfer(ctx, InspectPuzzle(a, p.Args[2]))
		if err != nil || !ok {
			return nil, false, err
		}
		innerLayer, ok, err := inner(ctx, InspectPuzzle(a, p.Args[3]))
		if err != nil || !ok {
			return nil, false, err
		}
		return OwnershipLayer{ModHash: modHash, CurrentOwner: owner, Transfer: transferLayer, Inner: innerLayer}, true, nil
	}
}
