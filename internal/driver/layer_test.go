package driver_test

import (
	"math/rand/v2"
	"testing"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/driver"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
	"github.com/stretchr/testify/require"
)

func TestTreeHashMatchesConstructedPuzzle(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	ctx := newContext(t)
	lib := ctx.Library()

	for i := 0; i < 25; i++ {
		launcherID := randomBytes32(r)
		layers := map[string]driver.Layer{
			"standard":              driver.NewStandardLayer(lib, randomKey(r)),
			"royalty_transfer":      driver.NewRoyaltyTransferLayer(lib, launcherID, randomBytes32(r), uint16(r.UintN(1<<16))),
			"settlement":            driver.NewSettlementLayer(lib),
			"launcher":              driver.NewLauncherLayer(lib),
			"intermediate_launcher": driver.NewIntermediateLauncherLayer(lib, r.Uint64N(1000), r.Uint64N(1000)+1000),
			"raw":                   driver.RawLayer{Program: clvm.List(clvm.Uint(r.Uint64()), clvm.Bytes32(launcherID))},
			"state":                 driver.NewStateLayer(lib, randomMetadata(r), driver.RawLayer{Program: clvm.Uint(3)}),
			"singleton":             driver.NewSingletonLayer(lib, launcherID, driver.NewSettlementLayer(lib)),
			"nft":                   randomNFT(r, lib),
		}
		for name, l := range layers {
			n, err := l.ConstructPuzzle(ctx)
			require.NoError(t, err, name)
			require.Equal(t, ctx.TreeHash(n), l.TreeHash(), name)
		}
	}
}

func TestShortcutHashFormulas(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	lib := newContext(t).Library()

	nft := randomNFT(r, lib)
	state := nft.Inner.(driver.StateLayer)
	ownership := state.Inner.(driver.OwnershipLayer)
	transfer := ownership.Transfer.(driver.RoyaltyTransferLayer)
	p2 := ownership.Inner.(driver.StandardLayer)

	p2Hash := driver.StandardPuzzleHash(lib.Hash(puzzles.StandardPuzzle), p2.SyntheticKey)
	transferHash := driver.RoyaltyTransferHash(lib.Hash(puzzles.NftRoyaltyTransfer), lib.SingletonStruct(nft.Struct.LauncherID),
		transfer.RoyaltyPuzzleHash, transfer.RoyaltyBasisPoints)
	ownershipHash := driver.OwnershipLayerHash(lib.Hash(puzzles.NftOwnershipLayer), ownership.CurrentOwner, transferHash, p2Hash)
	stateHash := driver.StateLayerHash(lib.Hash(puzzles.NftStateLayer), state.Metadata.TreeHash(),
		lib.Hash(puzzles.NftMetadataUpdater), ownershipHash)

	require.Equal(t, nft.TreeHash(), driver.SingletonPuzzleHash(nft.Struct, stateHash))
}

func TestParseRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 17))
	ctx := newContext(t)
	lib := ctx.Library()

	layers := []driver.Layer{
		randomNFT(r, lib),
		randomNFT(r, lib),
		driver.NewSingletonLayer(lib, randomBytes32(r), driver.NewStandardLayer(lib, randomKey(r))),
		driver.NewIntermediateLauncherLayer(lib, 3, 10),
		driver.NewLauncherLayer(lib),
		driver.NewStandardLayer(lib, randomKey(r)),
		driver.NewSettlementLayer(lib),
	}
	for _, want := range layers {
		n, err := want.ConstructPuzzle(ctx)
		require.NoError(t, err)
		got, err := driver.Parse(ctx, driver.DefaultParser(), n)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestSolutionRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(19, 23))
	ctx := newContext(t)
	lib := ctx.Library()
	nft := randomNFT(r, lib)
	original := randomKey(r)

	tests := []struct {
		name     string
		layer    driver.Layer
		solution driver.Solution
	}{
		{
			name:  "nft with lineage proof",
			layer: nft,
			solution: driver.SingletonSolution{
				Proof:  puzzles.LineageProof{ParentCoinInfo: randomBytes32(r), InnerPuzzleHash: randomBytes32(r), Amount: 1},
				Amount: 1,
				Inner: driver.StateSolution{Inner: driver.OwnershipSolution{
					Inner: driver.StandardConditions(clvm.List(clvm.List(clvm.Uint(51), clvm.Bytes32(randomBytes32(r)), clvm.Uint(1)))),
				}},
			},
		},
		{
			name:  "singleton with eve proof",
			layer: driver.NewSingletonLayer(lib, randomBytes32(r), driver.NewStandardLayer(lib, randomKey(r))),
			solution: driver.SingletonSolution{
				Proof:  puzzles.EveProof{ParentCoinInfo: randomBytes32(r), Amount: 1},
				Amount: 1,
				Inner: driver.StandardSolution{
					OriginalPublicKey: &original,
					DelegatedPuzzle:   clvm.Uint(1),
					Solution:          clvm.List(clvm.Uint(2)),
				},
			},
		},
		{
			name:  "launcher",
			layer: driver.NewLauncherLayer(lib),
			solution: driver.LauncherSolution{LauncherSolution: puzzles.LauncherSolution{
				SingletonPuzzleHash: randomBytes32(r),
				Amount:              1,
			}},
		},
		{
			name:  "settlement",
			layer: driver.NewSettlementLayer(lib),
			solution: driver.SettlementSolution{NotarizedPayments: []puzzles.NotarizedPayment{{
				Nonce:    randomBytes32(r),
				Payments: []puzzles.Payment{{PuzzleHash: randomBytes32(r), Amount: 1000, Memos: [][]byte{{1}}}},
			}}},
		},
		{
			name:     "intermediate launcher",
			layer:    driver.NewIntermediateLauncherLayer(lib, 0, 1),
			solution: driver.RawSolution{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.layer.ConstructSolution(ctx, tt.solution)
			require.NoError(t, err)
			got, err := tt.layer.ParseSolution(ctx, n)
			require.NoError(t, err)
			require.Equal(t, tt.solution, got)
		})
	}
}

func TestSolutionTypeMismatch(t *testing.T) {
	ctx := newContext(t)
	lib := ctx.Library()

	_, err := driver.NewStandardLayer(lib, model.PublicKey{}).ConstructSolution(ctx, driver.RawSolution{})
	require.ErrorIs(t, err, driver.ErrSolutionType)

	_, err = driver.NewSingletonLayer(lib, model.Bytes32{}, driver.NewSettlementLayer(lib)).
		ConstructSolution(ctx, driver.SingletonSolution{Amount: 1, Inner: driver.SettlementSolution{}})
	require.ErrorIs(t, err, driver.ErrSolutionType)
}

func TestParseSolutionRejectsMalformed(t *testing.T) {
	ctx := newContext(t)
	lib := ctx.Library()
	nft := randomNFT(rand.New(rand.NewPCG(1, 1)), lib)

	n, err := ctx.Alloc(clvm.List(clvm.Uint(1), clvm.Uint(2)))
	require.NoError(t, err)
	_, err = nft.ParseSolution(ctx, n)
	require.ErrorIs(t, err, clvm.ErrDecode)

	_, err = driver.NewStandardLayer(lib, model.PublicKey{}).ParseSolution(ctx, n)
	require.ErrorIs(t, err, clvm.ErrDecode)
}
