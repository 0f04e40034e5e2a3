package puzzles

import (
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

// Payment is one output requested from the settlement puzzle.
type Payment struct {
	PuzzleHash model.Bytes32
	Amount     uint64
	Memos      [][]byte
}

func (p Payment) Value() clvm.Value {
	if p.Memos == nil {
		return clvm.List(clvm.Bytes32(p.PuzzleHash), clvm.Uint(p.Amount))
	}
	memos := make([]clvm.Value, 0, len(p.Memos))
	for _, memo := range p.Memos {
		memos = append(memos, clvm.Atom(memo))
	}
	return clvm.List(clvm.Bytes32(p.PuzzleHash), clvm.Uint(p.Amount), clvm.List(memos...))
}

// NotarizedPayment groups payments under a nonce: (nonce . payments).
type NotarizedPayment struct {
	Nonce    model.Bytes32
	Payments []Payment
}

func (n NotarizedPayment) Value() clvm.Value {
	payments := make([]clvm.Value, 0, len(n.Payments))
	for _, p := range n.Payments {
		payments = append(payments, p.Value())
	}
	return clvm.Pair(clvm.Bytes32(n.Nonce), clvm.List(payments...))
}

// TreeHash is the message the settlement puzzle announces for this payment group.
func (n NotarizedPayment) TreeHash() model.Bytes32 {
	return n.Value().TreeHash()
}

func parsePayment(a *clvm.Allocator, n clvm.NodePtr) (Payment, error) {
	var p Payment
	items, ok := a.ListItems(n)
	if !ok || (len(items) != 2 && len(items) != 3) {
		return p, fmt.Errorf("%w: payment must be (puzzle_hash amount [memos])", clvm.ErrDecode)
	}
	if p.PuzzleHash, ok = a.Bytes32(items[0]); !ok {
		return p, fmt.Errorf("%w: payment puzzle hash", clvm.ErrDecode)
	}
	amount, err := a.Uint(items[1])
	if err != nil {
		return p, fmt.Errorf("payment amount: %w", err)
	}
	p.Amount = amount
	if len(items) == 3 {
		memos, ok := a.ListItems(items[2])
		if !ok {
			return p, fmt.Errorf("%w: payment memos", clvm.ErrDecode)
		}
		p.Memos = make([][]byte, 0, len(memos))
		for _, m := range memos {
			atom, ok := a.Atom(m)
			if !ok {
				return p, fmt.Errorf("%w: payment memo is a pair", clvm.ErrDecode)
			}
			p.Memos = append(p.Memos, append([]byte(nil), atom...))
		}
	}
	return p, nil
}

// ParseNotarizedPayments reads the settlement solution list.
func ParseNotarizedPayments(a *clvm.Allocator, n clvm.NodePtr) ([]NotarizedPayment, error) {
	items, ok := a.ListItems(n)
	if !ok {
		return nil, fmt.Errorf("%w: notarized payments is not a list", clvm.ErrDecode)
	}
	out := make([]NotarizedPayment, 0, len(items))
	for _, item := range items {
		nonce, rest, ok := a.Pair(item)
		if !ok {
			return nil, fmt.Errorf("%w: notarized payment is not a pair", clvm.ErrDecode)
		}
		var np NotarizedPayment
		if np.Nonce, ok = a.Bytes32(nonce); !ok {
			return nil, fmt.Errorf("%w: notarized payment nonce", clvm.ErrDecode)
		}
		payments, ok := a.ListItems(rest)
		if !ok {
			return nil, fmt.Errorf("%w: notarized payment list", clvm.ErrDecode)
		}
		for _, p := range payments {
			payment, err := parsePayment(a, p)
			if err != nil {
				return nil, err
			}
			np.Payments = append(np.Payments, payment)
		}
		out = append(out, np)
	}
	return out, nil
}
