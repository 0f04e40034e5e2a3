package driver

import (
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
)

// SingletonLayer is the singleton top layer: it guarantees exactly one odd-amount
// child and checks the lineage proof of every spend.
type SingletonLayer struct {
	Struct puzzles.SingletonStruct
	Inner  Layer
}

// SingletonSolution is (proof amount inner_solution). Amount is the spent coin's
// amount and is always supplied by the caller.
type SingletonSolution struct {
	Proof  puzzles.Proof
	Amount uint64
	Inner  Solution
}

func (SingletonLayer) layer()       {}
func (SingletonSolution) solution() {}

func NewSingletonLayer(lib *puzzles.Library, launcherID model.Bytes32, inner Layer) SingletonLayer {
	return SingletonLayer{Struct: lib.SingletonStruct(launcherID), Inner: inner}
}

// SingletonPuzzleHash returns the full puzzle hash of a singleton with the given inner
// puzzle hash.
func SingletonPuzzleHash(st puzzles.SingletonStruct, innerPuzzleHash model.Bytes32) model.Bytes32 {
	return clvm.CurryTreeHash(st.ModHash, st.TreeHash(), innerPuzzleHash)
}

func (l SingletonLayer) TreeHash() model.Bytes32 {
	return SingletonPuzzleHash(l.Struct, l.Inner.TreeHash())
}

func (l SingletonLayer) ConstructPuzzle(ctx *SpendContext) (clvm.NodePtr, error) {
	st, err := ctx.Alloc(l.Struct.Value())
	if err != nil {
		return 0, err
	}
	inner, err := l.Inner.ConstructPuzzle(ctx)
	if err != nil {
		return 0, err
	}
	return ctx.curry(puzzles.SingletonTopLayer, l.Struct.ModHash, st, inner)
}

func (l SingletonLayer) ConstructSolution(ctx *SpendContext, solution Solution) (clvm.NodePtr, error) {
	s, ok := solution.(SingletonSolution)
	if !ok {
		return 0, solutionTypeError(l, solution)
	}
	if s.Proof == nil {
		return 0, fmt.Errorf("%w: singleton solution without proof", ErrSolutionType)
	}
	proof, err := ctx.Alloc(s.Proof.Value())
	if err != nil {
		return 0, err
	}
	amount, err := ctx.Allocator().NewNumber(s.Amount)
	if err != nil {
		return 0, err
	}
	inner, err := l.Inner.ConstructSolution(ctx, s.Inner)
	if err != nil {
		return 0, err
	}
	return ctx.Allocator().NewList(proof, amount, inner)
}

func (l SingletonLayer) ParseSolution(ctx *SpendContext, n clvm.NodePtr) (Solution, error) {
	a := ctx.Allocator()
	items, ok := a.ListN(n, 3)
	if !ok {
		return nil, fmt.Errorf("%w: singleton solution is not a 3 item list", clvm.ErrDecode)
	}
	proof, err := puzzles.ParseProof(a, items[0])
	if err != nil {
		return nil, err
	}
	amount, err := a.Uint(items[1])
	if err != nil {
		return nil, fmt.Errorf("singleton amount: %w", err)
	}
	inner, err := l.Inner.ParseSolution(ctx, items[2])
	if err != nil {
		return nil, err
	}
	return SingletonSolution{Proof: proof, Amount: amount, Inner: inner}, nil
}

// SingletonParser recognizes the singleton top layer wrapping a puzzle inner accepts.
// A singleton struct naming a foreign singleton or launcher mod is rejected with
// ErrStructuralMismatch.
func SingletonParser(inner Parser) Parser {
	return func(ctx *SpendContext, p Puzzle) (Layer, bool, error) {
		lib := ctx.Library()
		if !p.IsCurried() || p.ModHash != lib.Hash(puzzles.SingletonTopLayer) {
			return nil, false, nil
		}
		if len(p.Args) != 2 {
			return nil, false, structural("singleton takes 2 curried arguments, got %d", len(p.Args))
		}

		st, err := puzzles.ParseSingletonStruct(ctx.Allocator(), p.Args[0])
		if err != nil {
			return nil, false, structural("%w", err)
		}
		if st.ModHash != lib.Hash(puzzles.SingletonTopLayer) || st.LauncherPuzzleHash != lib.Hash(puzzles.SingletonLauncher) {
			return nil, false, structural("singleton struct names mod %s and launcher %s", st.ModHash, st.LauncherPuzzleHash)
		}

		innerLayer, ok, err := inner(ctx, InspectPuzzle(ctx.Allocator(), p.Args[1]))
		if err != nil || !ok {
			return nil, false, err
		}
		return SingletonLayer{Struct: st, Inner: innerLayer}, true, nil
	}
}
