package puzzles

import (
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

// Proof authenticates a singleton coin's parent. The eve coin carries an EveProof,
// every later coin a LineageProof about its immediate parent.
type Proof interface {
	Value() clvm.Value
	isProof()
}

// EveProof is (parent_coin_info amount) of the launcher coin.
type EveProof struct {
	ParentCoinInfo model.Bytes32
	Amount         uint64
}

// LineageProof is (parent_coin_info inner_puzzle_hash amount) of the parent singleton.
type LineageProof struct {
	ParentCoinInfo  model.Bytes32
	InnerPuzzleHash model.Bytes32
	Amount          uint64
}

func (EveProof) isProof()     {}
func (LineageProof) isProof() {}

func (p EveProof) Value() clvm.Value {
	return clvm.List(clvm.Bytes32(p.ParentCoinInfo), clvm.Uint(p.Amount))
}

func (p LineageProof) Value() clvm.Value {
	return clvm.List(clvm.Bytes32(p.ParentCoinInfo), clvm.Bytes32(p.InnerPuzzleHash), clvm.Uint(p.Amount))
}

// ParseProof distinguishes the two proofs by list length.
func ParseProof(a *clvm.Allocator, n clvm.NodePtr) (Proof, error) {
	items, ok := a.ListItems(n)
	if !ok {
		return nil, fmt.Errorf("%w: proof is not a list", clvm.ErrDecode)
	}
	switch len(items) {
	case 2:
		parent, ok := a.Bytes32(items[0])
		if !ok {
			return nil, fmt.Errorf("%w: eve proof parent", clvm.ErrDecode)
		}
		amount, err := a.Uint(items[1])
		if err != nil {
			return nil, fmt.Errorf("eve proof amount: %w", err)
		}
		return EveProof{ParentCoinInfo: parent, Amount: amount}, nil
	case 3:
		parent, ok := a.Bytes32(items[0])
		if !ok {
			return nil, fmt.Errorf("%w: lineage proof parent", clvm.ErrDecode)
		}
		inner, ok := a.Bytes32(items[1])
		if !ok {
			return nil, fmt.Errorf("%w: lineage proof inner puzzle hash", clvm.ErrDecode)
		}
		amount, err := a.Uint(items[2])
		if err != nil {
			return nil, fmt.Errorf("lineage proof amount: %w", err)
		}
		return LineageProof{ParentCoinInfo: parent, InnerPuzzleHash: inner, Amount: amount}, nil
	default:
		return nil, fmt.Errorf("%w: proof with %d items", clvm.ErrDecode, len(items))
	}
}
