package clvm

import "github.com/goodnatureofminers/smartcoin-wallet/internal/model"

const (
	opQuote = 0x01
	opApply = 0x02
	opCons  = 0x04
)

var (
	quoteTreeHash = TreeHashAtom([]byte{opQuote})
	applyTreeHash = TreeHashAtom([]byte{opApply})
	consTreeHash  = TreeHashAtom([]byte{opCons})
)

// Curry allocates (a (q . program) (c (q . arg1) (c (q . arg2) ... 1))).
func Curry(a *Allocator, program NodePtr, args ...NodePtr) (NodePtr, error) {
	quote := a.One()
	apply, err := a.NewAtom([]byte{opApply})
	if err != nil {
		return 0, err
	}
	cons, err := a.NewAtom([]byte{opCons})
	if err != nil {
		return 0, err
	}

	env := a.One()
	for i := len(args) - 1; i >= 0; i-- {
		quoted, err := a.NewPair(quote, args[i])
		if err != nil {
			return 0, err
		}
		if env, err = a.NewList(cons, quoted, env); err != nil {
			return 0, err
		}
	}

	quotedProgram, err := a.NewPair(quote, program)
	if err != nil {
		return 0, err
	}
	return a.NewList(apply, quotedProgram, env)
}

// Uncurry recognizes the exact shape produced by Curry. It reports false for any
// other node, which is not an error: the node may simply not be curried.
func Uncurry(a *Allocator, n NodePtr) (NodePtr, []NodePtr, bool) {
	items, ok := a.ListN(n, 3)
	if !ok || !a.AtomEquals(items[0], []byte{opApply}) {
		return 0, nil, false
	}
	q, program, ok := a.Pair(items[1])
	if !ok || !a.AtomEquals(q, []byte{opQuote}) {
		return 0, nil, false
	}

	var args []NodePtr
	env := items[2]
	for {
		if a.AtomEquals(env, []byte{opQuote}) {
			return program, args, true
		}
		step, ok := a.ListN(env, 3)
		if !ok || !a.AtomEquals(step[0], []byte{opCons}) {
			return 0, nil, false
		}
		q, arg, ok := a.Pair(step[1])
		if !ok || !a.AtomEquals(q, []byte{opQuote}) {
			return 0, nil, false
		}
		args = append(args, arg)
		env = step[2]
	}
}

// CurryTreeHash returns the tree hash Curry would produce for a program with the
// given hash applied to arguments with the given hashes, without allocating.
func CurryTreeHash(programHash model.Bytes32, argHashes ...model.Bytes32) model.Bytes32 {
	env := oneTreeHash
	for i := len(argHashes) - 1; i >= 0; i-- {
		quoted := TreeHashPair(quoteTreeHash, argHashes[i])
		env = TreeHashPair(consTreeHash, TreeHashPair(quoted, TreeHashPair(env, nilTreeHash)))
	}
	quotedProgram := TreeHashPair(quoteTreeHash, programHash)
	return TreeHashPair(applyTreeHash, TreeHashPair(quotedProgram, TreeHashPair(env, nilTreeHash)))
}
