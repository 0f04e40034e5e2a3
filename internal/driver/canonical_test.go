package driver_test

import (
	"testing"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/driver"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
	"github.com/stretchr/testify/require"
)

// Compiled p2_delegated_puzzle_or_hidden_puzzle, as revealed by every standard spend
// on chain.
const standardModHex = "ff02ffff01ff02ffff03ff0bffff01ff02ffff03ffff09ff05ffff1dff0bffff1effff0bff0bffff02ff06ffff04ff02ffff04ff17ff8080808080808080ffff01ff02ff17ff2f80ffff01ff088080ff0180ffff01ff04ffff04ff04ffff04ff05ffff04ffff02ff06ffff04ff02ffff04ff17ff80808080ff80808080ffff02ff17ff2f808080ff0180ffff04ffff01ff32ff02ffff03ffff07ff0580ffff01ff0bffff0102ffff02ff06ffff04ff02ffff04ff09ff80808080ffff02ff06ffff04ff02ffff04ff0dff8080808080ffff01ff0bffff0101ff058080ff0180ff018080"

func deserializeHex(t *testing.T, a *clvm.Allocator, s string) clvm.NodePtr {
	t.Helper()
	program, err := model.ProgramFromHex(s)
	require.NoError(t, err)
	n, err := a.Deserialize(program)
	require.NoError(t, err)
	return n
}

func TestCanonicalModHashes(t *testing.T) {
	a := clvm.NewAllocator()

	mod := deserializeHex(t, a, standardModHex)
	require.Equal(t, puzzles.CanonicalHashes[puzzles.StandardPuzzle], a.TreeHash(mod))

	hidden := deserializeHex(t, a, "ff0980")
	require.Equal(t, puzzles.DefaultHiddenPuzzleHash, a.TreeHash(hidden))
}

func TestStandardPuzzleHashKnownAnswer(t *testing.T) {
	key := model.PublicKey{0xa1}
	want, err := model.Bytes32FromHex("123027df9068aa4a3a00f8a16c230945d104a35447f86aa3a31644b24fbd04a7")
	require.NoError(t, err)

	// (a (q . mod) (c (q . key) 1)) in the on-chain byte layout.
	revealHex := "ff02ffff01" + standardModHex + "ffff04ffff01b0" + keyHex(key) + "ff018080"

	a := clvm.NewAllocator()
	reveal := deserializeHex(t, a, revealHex)
	require.Equal(t, want, a.TreeHash(reveal))
	require.Equal(t, want, driver.StandardPuzzleHash(puzzles.CanonicalHashes[puzzles.StandardPuzzle], key))

	mod := deserializeHex(t, a, standardModHex)
	keyAtom, err := a.NewAtom(key[:])
	require.NoError(t, err)
	curried, err := clvm.Curry(a, mod, keyAtom)
	require.NoError(t, err)
	serialized, err := a.Serialize(curried)
	require.NoError(t, err)
	require.Equal(t, revealHex, model.Program(serialized).String())
}

func keyHex(k model.PublicKey) string {
	return model.Program(k[:]).String()
}
