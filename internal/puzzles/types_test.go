package puzzles_test

import (
	"errors"
	"testing"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
	"github.com/stretchr/testify/require"
)

func TestSingletonStruct(t *testing.T) {
	st := puzzles.SingletonStruct{ModHash: model.Bytes32{1}, LauncherID: model.Bytes32{2}, LauncherPuzzleHash: model.Bytes32{3}}
	require.Equal(t, st.Value().TreeHash(), st.TreeHash())

	a := clvm.NewAllocator()
	n, err := a.Alloc(st.Value())
	require.NoError(t, err)
	got, err := puzzles.ParseSingletonStruct(a, n)
	require.NoError(t, err)
	require.Equal(t, st, got)

	bad, err := a.Alloc(clvm.List(clvm.Bytes32(st.ModHash), clvm.Bytes32(st.LauncherID)))
	require.NoError(t, err)
	_, err = puzzles.ParseSingletonStruct(a, bad)
	require.ErrorIs(t, err, clvm.ErrDecode)
}

func TestParseProof(t *testing.T) {
	tests := []struct {
		name    string
		value   clvm.Value
		want    puzzles.Proof
		wantErr bool
	}{
		{
			name:  "eve",
			value: puzzles.EveProof{ParentCoinInfo: model.Bytes32{9}, Amount: 1}.Value(),
			want:  puzzles.EveProof{ParentCoinInfo: model.Bytes32{9}, Amount: 1},
		},
		{
			name:  "lineage",
			value: puzzles.LineageProof{ParentCoinInfo: model.Bytes32{9}, InnerPuzzleHash: model.Bytes32{8}, Amount: 300}.Value(),
			want:  puzzles.LineageProof{ParentCoinInfo: model.Bytes32{9}, InnerPuzzleHash: model.Bytes32{8}, Amount: 300},
		},
		{
			name:    "wrong length",
			value:   clvm.List(clvm.Uint(1)),
			wantErr: true,
		},
		{
			name:    "short parent",
			value:   clvm.List(clvm.Uint(1), clvm.Uint(1)),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := clvm.NewAllocator()
			n, err := a.Alloc(tt.value)
			require.NoError(t, err)

			got, err := puzzles.ParseProof(a, n)
			if tt.wantErr {
				require.True(t, errors.Is(err, clvm.ErrDecode), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLauncherSolutionRoundTrip(t *testing.T) {
	sol := puzzles.LauncherSolution{
		SingletonPuzzleHash: model.Bytes32{4},
		Amount:              1,
		KeyValueList:        clvm.List(clvm.Pair(clvm.Atom([]byte("k")), clvm.Uint(5))),
	}
	a := clvm.NewAllocator()
	n, err := a.Alloc(sol.Value())
	require.NoError(t, err)

	got, err := puzzles.ParseLauncherSolution(a, n)
	require.NoError(t, err)
	require.Equal(t, sol.SingletonPuzzleHash, got.SingletonPuzzleHash)
	require.Equal(t, sol.Amount, got.Amount)
	require.True(t, sol.KeyValueList.Equal(got.KeyValueList))
}

func TestNotarizedPaymentsRoundTrip(t *testing.T) {
	payments := []puzzles.NotarizedPayment{
		{
			Nonce: model.Bytes32{1},
			Payments: []puzzles.Payment{
				{PuzzleHash: model.Bytes32{2}, Amount: 1000},
				{PuzzleHash: model.Bytes32{3}, Amount: 1, Memos: [][]byte{{0xaa}, []byte("memo")}},
			},
		},
	}
	values := make([]clvm.Value, 0, len(payments))
	for _, p := range payments {
		values = append(values, p.Value())
	}

	a := clvm.NewAllocator()
	n, err := a.Alloc(clvm.List(values...))
	require.NoError(t, err)
	got, err := puzzles.ParseNotarizedPayments(a, n)
	require.NoError(t, err)
	require.Equal(t, payments, got)
	require.Equal(t, payments[0].Value().TreeHash(), got[0].TreeHash())
}

func TestNftMetadataRoundTrip(t *testing.T) {
	hash := model.Bytes32{0xde, 0xad}
	m := puzzles.NftMetadata{
		EditionNumber: 2,
		EditionTotal:  10,
		DataURIs:      []string{"https://example.com/a.png"},
		DataHash:      &hash,
		MetadataURIs:  []string{},
		LicenseURIs:   []string{"https://example.com/license"},
	}

	got, err := puzzles.ParseNftMetadata(m.Value())
	require.NoError(t, err)
	require.Equal(t, m, got)

	_, err = puzzles.ParseNftMetadata(clvm.Uint(1))
	require.ErrorIs(t, err, clvm.ErrDecode)
}
