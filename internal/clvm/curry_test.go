package clvm

import (
	"math/rand/v2"
	"testing"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/stretchr/testify/require"
)

func randomBytes32(r *rand.Rand) model.Bytes32 {
	var out model.Bytes32
	for i := range out {
		out[i] = byte(r.UintN(256))
	}
	return out
}

func TestCurryTreeHashMatchesCurry(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for argc := 0; argc < 6; argc++ {
		a := NewAllocator()
		program, err := a.Alloc(List(Uint(2), Atom([]byte("mod")), Uint(uint64(argc))))
		require.NoError(t, err)

		args := make([]NodePtr, argc)
		argHashes := make([]model.Bytes32, argc)
		for i := range args {
			args[i], err = a.NewBytes32(randomBytes32(r))
			require.NoError(t, err)
			argHashes[i] = a.TreeHash(args[i])
		}

		curried, err := Curry(a, program, args...)
		require.NoError(t, err)
		require.Equal(t, a.TreeHash(curried), CurryTreeHash(a.TreeHash(program), argHashes...))
	}
}

func TestUncurry(t *testing.T) {
	a := NewAllocator()
	program, err := a.NewAtom([]byte("mod"))
	require.NoError(t, err)
	one, err := a.NewNumber(1)
	require.NoError(t, err)
	pair, err := a.NewPair(one, one)
	require.NoError(t, err)

	curried, err := Curry(a, program, one, pair)
	require.NoError(t, err)

	gotProgram, gotArgs, ok := Uncurry(a, curried)
	require.True(t, ok)
	require.Equal(t, a.TreeHash(program), a.TreeHash(gotProgram))
	require.Len(t, gotArgs, 2)
	require.Equal(t, a.TreeHash(pair), a.TreeHash(gotArgs[1]))

	_, _, ok = Uncurry(a, program)
	require.False(t, ok)
	_, _, ok = Uncurry(a, pair)
	require.False(t, ok)
}
