package driver

import (
	"math"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
)

// RoyaltyTransferLayer is the transfer program run by the ownership layer. It pays
// RoyaltyBasisPoints of each trade price to RoyaltyPuzzleHash.
type RoyaltyTransferLayer struct {
	ModHash            model.Bytes32
	Struct             puzzles.SingletonStruct
	RoyaltyPuzzleHash  model.Bytes32
	RoyaltyBasisPoints uint16
}

func (RoyaltyTransferLayer) layer() {}

func NewRoyaltyTransferLayer(lib *puzzles.Library, launcherID, royaltyPuzzleHash model.Bytes32, basisPoints uint16) RoyaltyTransferLayer {
	return RoyaltyTransferLayer{
		ModHash:            lib.Hash(puzzles.NftRoyaltyTransfer),
		Struct:             lib.SingletonStruct(launcherID),
		RoyaltyPuzzleHash:  royaltyPuzzleHash,
		RoyaltyBasisPoints: basisPoints,
	}
}

func RoyaltyTransferHash(modHash model.Bytes32, st puzzles.SingletonStruct, royaltyPuzzleHash model.Bytes32, basisPoints uint16) model.Bytes32 {
	return clvm.CurryTreeHash(modHash,
		st.TreeHash(),
		clvm.TreeHashAtom(royaltyPuzzleHash[:]),
		clvm.TreeHashAtom(clvm.EncodeUint(uint64(basisPoints))),
	)
}

func (l RoyaltyTransferLayer) TreeHash() model.Bytes32 {
	return RoyaltyTransferHash(l.ModHash, l.Struct, l.RoyaltyPuzzleHash, l.RoyaltyBasisPoints)
}

func (l RoyaltyTransferLayer) ConstructPuzzle(ctx *SpendContext) (clvm.NodePtr, error) {
	a := ctx.Allocator()
	st, err := ctx.Alloc(l.Struct.Value())
	if err != nil {
		return 0, err
	}
	royalty, err := a.NewBytes32(l.RoyaltyPuzzleHash)
	if err != nil {
		return 0, err
	}
	bps, err := a.NewNumber(uint64(l.RoyaltyBasisPoints))
	if err != nil {
		return 0, err
	}
	return ctx.curry(puzzles.NftRoyaltyTransfer, l.ModHash, st, royalty, bps)
}

// ConstructSolution passes a raw solution through; the ownership layer builds the
// transfer program's solution on chain.
func (l RoyaltyTransferLayer) ConstructSolution(ctx *SpendContext, solution Solution) (clvm.NodePtr, error) {
	s, ok := solution.(RawSolution)
	if !ok {
		return 0, solutionTypeError(l, solution)
	}
	return ctx.Alloc(s.Value)
}

func (l RoyaltyTransferLayer) ParseSolution(ctx *SpendContext, n clvm.NodePtr) (Solution, error) {
	return RawSolution{Value: ctx.Allocator().Value(n)}, nil
}

func ParseRoyaltyTransfer(ctx *SpendContext, p Puzzle) (Layer, bool, error) {
	lib := ctx.Library()
	modHash := lib.Hash(puzzles.NftRoyaltyTransfer)
	if !p.IsCurried() || p.ModHash != modHash {
		return nil, false, nil
	}
	if len(p.Args) != 3 {
		return nil, false, structural("royalty transfer takes 3 curried arguments, got %d", len(p.Args))
	}

	a := ctx.Allocator()
	st, err := puzzles.ParseSingletonStruct(a, p.Args[0])
	if err != nil {
		return nil, false, structural("%w", err)
	}
	if st.ModHash != lib.Hash(puzzles.SingletonTopLayer) || st.LauncherPuzzleHash != lib.Hash(puzzles.SingletonLauncher) {
		return nil, false, structural("royalty transfer singleton struct names mod %s and launcher %s", st.ModHash, st.LauncherPuzzleHash)
	}
	royalty, ok := a.Bytes32(p.Args[1])
	if !ok {
		return nil, false, structural("royalty puzzle hash is not 32 bytes")
	}
	bps, err := a.Uint(p.Args[2])
	if err != nil {
		return nil, false, structural("royalty basis points: %w", err)
	}
	if bps > math.MaxUint16 {
		return nil, false, structural("royalty basis points %d out of range", bps)
	}

	return RoyaltyTransferLayer{
		ModHash:            modHash,
		Struct:             st,
		RoyaltyPuzzleHash:  royalty,
		RoyaltyBasisPoints: uint16(bps),
	}, true, nil
}
