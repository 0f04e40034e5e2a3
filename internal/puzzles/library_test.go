package puzzles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles/puzzletest"
	"github.com/stretchr/testify/require"
)

func TestNewLibrary(t *testing.T) {
	mods := puzzletest.Mods(t)
	lib, err := puzzles.NewLibrary(mods)
	require.NoError(t, err)

	for _, name := range puzzles.AllNames {
		got, ok := lib.NameOf(lib.Hash(name))
		require.True(t, ok)
		require.Equal(t, name, got)
		require.Equal(t, mods[name], lib.Program(name))
	}

	st := lib.SingletonStruct([32]byte{7})
	require.Equal(t, lib.Hash(puzzles.SingletonTopLayer), st.ModHash)
	require.Equal(t, lib.Hash(puzzles.SingletonLauncher), st.LauncherPuzzleHash)
}

func TestNewLibraryErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(mods map[puzzles.Name]model.Program)
		wantErr error
	}{
		{
			name:    "missing mod",
			mutate:  func(mods map[puzzles.Name]model.Program) { delete(mods, puzzles.NftStateLayer) },
			wantErr: puzzles.ErrMissingMod,
		},
		{
			name: "duplicate hash",
			mutate: func(mods map[puzzles.Name]model.Program) {
				mods[puzzles.SettlementPayments] = mods[puzzles.StandardPuzzle]
			},
		},
		{
			name:    "malformed program",
			mutate:  func(mods map[puzzles.Name]model.Program) { mods[puzzles.SettlementPayments] = model.Program{0xff} },
			wantErr: clvm.ErrDecode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods := puzzletest.Mods(t)
			tt.mutate(mods)

			_, err := puzzles.NewLibrary(mods)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadLibrary(t *testing.T) {
	dir := t.TempDir()
	for name, program := range puzzletest.Mods(t) {
		path := filepath.Join(dir, string(name)+".hex")
		require.NoError(t, os.WriteFile(path, []byte(program.String()+"\n"), 0o600))
	}

	lib, err := puzzles.LoadLibrary(dir)
	require.NoError(t, err)
	require.Equal(t, puzzletest.Library(t).Hash(puzzles.NftOwnershipLayer), lib.Hash(puzzles.NftOwnershipLayer))

	_, err = puzzles.LoadCanonicalLibrary(dir)
	require.ErrorIs(t, err, puzzles.ErrModHashMismatch)

	require.NoError(t, os.Remove(filepath.Join(dir, string(puzzles.SingletonLauncher)+".hex")))
	_, err = puzzles.LoadLibrary(dir)
	require.ErrorIs(t, err, puzzles.ErrMissingMod)
}
