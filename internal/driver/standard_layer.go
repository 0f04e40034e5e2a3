package driver

import (
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
)

// StandardLayer is the pay-to-key puzzle: a delegated puzzle signed by the synthetic
// key, or a hidden puzzle revealed with the original key.
type StandardLayer struct {
	ModHash      model.Bytes32
	SyntheticKey model.PublicKey
}

// StandardSolution is (original_public_key delegated_puzzle solution).
type StandardSolution struct {
	OriginalPublicKey *model.PublicKey
	DelegatedPuzzle   clvm.Value
	Solution          clvm.Value
}

func (StandardLayer) layer()       {}
func (StandardSolution) solution() {}

func NewStandardLayer(lib *puzzles.Library, syntheticKey model.PublicKey) StandardLayer {
	return StandardLayer{ModHash: lib.Hash(puzzles.StandardPuzzle), SyntheticKey: syntheticKey}
}

// StandardConditions returns the solution that outputs conditions through the
// delegated puzzle (q . conditions).
func StandardConditions(conditions clvm.Value) StandardSolution {
	return StandardSolution{DelegatedPuzzle: clvm.Quote(conditions), Solution: clvm.Nil}
}

// Conditions returns the quoted conditions of a delegated spend.
func (s StandardSolution) Conditions() (clvm.Value, bool) {
	q, conditions, ok := s.DelegatedPuzzle.Split()
	if !ok || !q.Equal(clvm.Atom([]byte{1})) {
		return clvm.Nil, false
	}
	return conditions, true
}

func StandardPuzzleHash(modHash model.Bytes32, syntheticKey model.PublicKey) model.Bytes32 {
	return clvm.CurryTreeHash(modHash, clvm.TreeHashAtom(syntheticKey[:]))
}

func (l StandardLayer) TreeHash() model.Bytes32 {
	return StandardPuzzleHash(l.ModHash, l.SyntheticKey)
}

func (l StandardLayer) ConstructPuzzle(ctx *SpendContext) (clvm.NodePtr, error) {
	key, err := ctx.Allocator().NewAtom(l.SyntheticKey[:])
	if err != nil {
		return 0, err
	}
	return ctx.curry(puzzles.StandardPuzzle, l.ModHash, key)
}

func (l StandardLayer) ConstructSolution(ctx *SpendContext, solution Solution) (clvm.NodePtr, error) {
	s, ok := solution.(StandardSolution)
	if !ok {
		return 0, solutionTypeError(l, solution)
	}
	original := clvm.Nil
	if s.OriginalPublicKey != nil {
		original = clvm.Atom(s.OriginalPublicKey[:])
	}
	return ctx.Alloc(clvm.List(original, s.DelegatedPuzzle, s.Solution))
}

func (l StandardLayer) ParseSolution(ctx *SpendContext, n clvm.NodePtr) (Solution, error) {
	a := ctx.Allocator()
	items, ok := a.ListN(n, 3)
	if !ok {
		return nil, fmt.Errorf("%w: standard solution is not a 3 item list", clvm.ErrDecode)
	}

	var s StandardSolution
	atom, ok := a.Atom(items[0])
	switch {
	case !ok:
		return nil, fmt.Errorf("%w: original public key is a pair", clvm.ErrDecode)
	case len(atom) == 0:
	case len(atom) == len(model.PublicKey{}):
		var key model.PublicKey
		copy(key[:], atom)
		s.OriginalPublicKey = &key
	default:
		return nil, fmt.Errorf("%w: original public key has %d bytes", clvm.ErrDecode, len(atom))
	}
	s.DelegatedPuzzle = a.Value(items[1])
	s.Solution = a.Value(items[2])
	return s, nil
}

func ParseStandard(ctx *SpendContext, p Puzzle) (Layer, bool, error) {
	modHash := ctx.Library().Hash(puzzles.StandardPuzzle)
	if !p.IsCurried() || p.ModHash != modHash {
		return nil, false, nil
	}
	if len(p.Args) != 1 {
		return nil, false, structural("standard puzzle takes 1 curried argument, got %d", len(p.Args))
	}
	atom, ok := ctx.Allocator().Atom(p.Args[0])
	if !ok || len(atom) != len(model.PublicKey{}) {
		return nil, false, structural("synthetic key is not a 48 byte atom")
	}
	var key model.PublicKey
	copy(key[:], atom)
	return StandardLayer{ModHash: modHash, SyntheticKey: key}, true, nil
}
