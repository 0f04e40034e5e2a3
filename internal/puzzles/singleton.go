package puzzles

import (
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

// SingletonStruct is curried into every singleton layer and every program that needs
// to recognize the singleton: (mod_hash . (launcher_id . launcher_puzzle_hash)).
type SingletonStruct struct {
	ModHash            model.Bytes32
	LauncherID         model.Bytes32
	LauncherPuzzleHash model.Bytes32
}

func (s SingletonStruct) Value() clvm.Value {
	return clvm.Pair(clvm.Bytes32(s.ModHash), clvm.Pair(clvm.Bytes32(s.LauncherID), clvm.Bytes32(s.LauncherPuzzleHash)))
}

// TreeHash hashes the struct without allocating.
func (s SingletonStruct) TreeHash() model.Bytes32 {
	return clvm.TreeHashPair(
		clvm.TreeHashAtom(s.ModHash[:]),
		clvm.TreeHashPair(clvm.TreeHashAtom(s.LauncherID[:]), clvm.TreeHashAtom(s.LauncherPuzzleHash[:])),
	)
}

// ParseSingletonStruct reads a struct node. Shape errors wrap clvm.ErrDecode.
func ParseSingletonStruct(a *clvm.Allocator, n clvm.NodePtr) (SingletonStruct, error) {
	var s SingletonStruct
	modHash, rest, ok := a.Pair(n)
	if !ok {
		return s, fmt.Errorf("%w: singleton struct is not a pair", clvm.ErrDecode)
	}
	launcherID, launcherPuzzleHash, ok := a.Pair(rest)
	if !ok {
		return s, fmt.Errorf("%w: singleton struct tail is not a pair", clvm.ErrDecode)
	}
	if s.ModHash, ok = a.Bytes32(modHash); !ok {
		return s, fmt.Errorf("%w: singleton mod hash", clvm.ErrDecode)
	}
	if s.LauncherID, ok = a.Bytes32(launcherID); !ok {
		return s, fmt.Errorf("%w: singleton launcher id", clvm.ErrDecode)
	}
	if s.LauncherPuzzleHash, ok = a.Bytes32(launcherPuzzleHash); !ok {
		return s, fmt.Errorf("%w: singleton launcher puzzle hash", clvm.ErrDecode)
	}
	return s, nil
}
