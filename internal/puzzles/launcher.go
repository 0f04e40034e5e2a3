package puzzles

import (
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

// LauncherSolution is the solution of the singleton launcher. The launcher creates the
// eve coin and announces the tree hash of this solution.
type LauncherSolution struct {
	SingletonPuzzleHash model.Bytes32
	Amount              uint64
	KeyValueList        clvm.Value
}

func (s LauncherSolution) Value() clvm.Value {
	return clvm.List(clvm.Bytes32(s.SingletonPuzzleHash), clvm.Uint(s.Amount), s.KeyValueList)
}

// ParseLauncherSolution reads (singleton_puzzle_hash amount key_value_list).
func ParseLauncherSolution(a *clvm.Allocator, n clvm.NodePtr) (LauncherSolution, error) {
	var s LauncherSolution
	items, ok := a.ListN(n, 3)
	if !ok {
		return s, fmt.Errorf("%w: launcher solution is not a 3 item list", clvm.ErrDecode)
	}
	if s.SingletonPuzzleHash, ok = a.Bytes32(items[0]); !ok {
		return s, fmt.Errorf("%w: launcher singleton puzzle hash", clvm.ErrDecode)
	}
	amount, err := a.Uint(items[1])
	if err != nil {
		return s, fmt.Errorf("launcher amount: %w", err)
	}
	s.Amount = amount
	s.KeyValueList = a.Value(items[2])
	return s, nil
}
