package driver

import (
	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
)

// IntermediateLauncherLayer creates one launcher of a bulk mint and announces
// sha256(mint_number ++ mint_total) so the parent can bind to its position.
type IntermediateLauncherLayer struct {
	ModHash            model.Bytes32
	LauncherPuzzleHash model.Bytes32
	MintNumber         uint64
	MintTotal          uint64
}

func (IntermediateLauncherLayer) layer() {}

func NewIntermediateLauncherLayer(lib *puzzles.Library, mintNumber, mintTotal uint64) IntermediateLauncherLayer {
	return IntermediateLauncherLayer{
		ModHash:            lib.Hash(puzzles.NftIntermediateLauncher),
		LauncherPuzzleHash: lib.Hash(puzzles.SingletonLauncher),
		MintNumber:         mintNumber,
		MintTotal:          mintTotal,
	}
}

func IntermediateLauncherHash(modHash, launcherPuzzleHash model.Bytes32, mintNumber, mintTotal uint64) model.Bytes32 {
	return clvm.CurryTreeHash(modHash,
		clvm.TreeHashAtom(launcherPuzzleHash[:]),
		clvm.TreeHashAtom(clvm.EncodeUint(mintNumber)),
		clvm.TreeHashAtom(clvm.EncodeUint(mintTotal)),
	)
}

func (l IntermediateLauncherLayer) TreeHash() model.Bytes32 {
	return IntermediateLauncherHash(l.ModHash, l.LauncherPuzzleHash, l.MintNumber, l.MintTotal)
}

func (l IntermediateLauncherLayer) ConstructPuzzle(ctx *SpendContext) (clvm.NodePtr, error) {
	a := ctx.Allocator()
	launcher, err := a.NewBytes32(l.LauncherPuzzleHash)
	if err != nil {
		return 0, err
	}
	number, err := a.NewNumber(l.MintNumber)
	if err != nil {
		return 0, err
	}
	total, err := a.NewNumber(l.MintTotal)
	if err != nil {
		return 0, err
	}
	return ctx.curry(puzzles.NftIntermediateLauncher, l.ModHash, launcher, number, total)
}

func (l IntermediateLauncherLayer) ConstructSolution(ctx *SpendContext, solution Solution) (clvm.NodePtr, error) {
	s, ok := solution.(RawSolution)
	if !ok {
		return 0, solutionTypeError(l, solution)
	}
	return ctx.Alloc(s.Value)
}

func (l IntermediateLauncherLayer) ParseSolution(ctx *SpendContext, n clvm.NodePtr) (Solution, error) {
	return RawSolution{Value: ctx.Allocator().Value(n)}, nil
}

func ParseIntermediateLauncher(ctx *SpendContext, p Puzzle) (Layer, bool, error) {
	lib := ctx.Library()
	modHash := lib.Hash(puzzles.NftIntermediateLauncher)
	if !p.IsCurried() || p.ModHash != modHash {
		return nil, false, nil
	}
	if len(p.Args) != 3 {
		return nil, false, structural("intermediate launcher takes 3 curried arguments, got %d", len(p.Args))
	}

	a := ctx.Allocator()
	launcher, ok := a.Bytes32(p.Args[0])
	if !ok || launcher != lib.Hash(puzzles.SingletonLauncher) {
		return nil, false, structural("intermediate launcher names a foreign launcher puzzle")
	}
	number, err := a.Uint(p.Args[1])
	if err != nil {
		return nil, false, structural("mint number: %w", err)
	}
	total, err := a.Uint(p.Args[2])
	if err != nil {
		return nil, false, structural("mint total: %w", err)
	}
	return IntermediateLauncherLayer{
		ModHash:            modHash,
		LauncherPuzzleHash: launcher,
		MintNumber:         number,
		MintTotal:          total,
	}, true, nil
}
