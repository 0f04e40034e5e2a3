package conditions

import (
	"bytes"
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

// Other is a condition the wallet does not model. It is kept verbatim.
type Other struct {
	Raw clvm.Value
}

func (c Other) Value() clvm.Value { return c.Raw }

// Parse reads a single condition.
func Parse(v clvm.Value) (Condition, error) {
	items, ok := v.Items()
	if !ok || len(items) == 0 {
		return Other{Raw: v}, nil
	}
	op, ok := items[0].AtomBytes()
	if !ok {
		return Other{Raw: v}, nil
	}
	if bytes.Equal(op, OpNewNftOwner) {
		return parseNewNftOwner(items[1:])
	}
	if len(op) != 1 {
		return Other{Raw: v}, nil
	}

	args := items[1:]
	switch op[0] {
	case OpCreateCoin:
		return parseCreateCoin(args)
	case OpCreateCoinAnnouncement:
		msg, err := atomArg(args, "create coin announcement")
		return CreateCoinAnnouncement{Message: msg}, err
	case OpCreatePuzzleAnnouncement:
		msg, err := atomArg(args, "create puzzle announcement")
		return CreatePuzzleAnnouncement{Message: msg}, err
	case OpAssertCoinAnnouncement:
		id, err := hashArg(args, "assert coin announcement")
		return AssertCoinAnnouncement{AnnouncementID: id}, err
	case OpAssertPuzzleAnnouncement:
		id, err := hashArg(args, "assert puzzle announcement")
		return AssertPuzzleAnnouncement{AnnouncementID: id}, err
	default:
		return Other{Raw: v}, nil
	}
}

// ParseList reads a condition list.
func ParseList(v clvm.Value) ([]Condition, error) {
	items, ok := v.Items()
	if !ok {
		return nil, fmt.Errorf("%w: conditions are not a list", clvm.ErrDecode)
	}
	out := make([]Condition, 0, len(items))
	for i, item := range items {
		c, err := Parse(item)
		if err != nil {
			return nil, fmt.Errorf("condition %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func atomArg(args []clvm.Value, name string) ([]byte, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("%w: %s without message", clvm.ErrDecode, name)
	}
	b, ok := args[0].AtomBytes()
	if !ok {
		return nil, fmt.Errorf("%w: %s message is a pair", clvm.ErrDecode, name)
	}
	return append([]byte(nil), b...), nil
}

func hashArg(args []clvm.Value, name string) (model.Bytes32, error) {
	var out model.Bytes32
	b, err := atomArg(args, name)
	if err != nil {
		return out, err
	}
	if len(b) != len(out) {
		return out, fmt.Errorf("%w: %s id has %d bytes", clvm.ErrDecode, name, len(b))
	}
	copy(out[:], b)
	return out, nil
}

func parseCreateCoin(args []clvm.Value) (Condition, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: create coin needs puzzle hash and amount", clvm.ErrDecode)
	}
	ph, err := hashArg(args, "create coin")
	if err != nil {
		return nil, err
	}
	rawAmount, ok := args[1].AtomBytes()
	if !ok {
		return nil, fmt.Errorf("%w: create coin amount is a pair", clvm.ErrDecode)
	}
	amount, err := clvm.DecodeUint(rawAmount)
	if err != nil {
		return nil, fmt.Errorf("create coin amount: %w", err)
	}

	c := CreateCoin{PuzzleHash: ph, Amount: amount}
	if len(args) > 2 {
		memos, ok := args[2].Items()
		if !ok {
			return nil, fmt.Errorf("%w: create coin memos are not a list", clvm.ErrDecode)
		}
		c.Memos = make([][]byte, 0, len(memos))
		for _, m := range memos {
			b, ok := m.AtomBytes()
			if !ok {
				return nil, fmt.Errorf("%w: create coin memo is a pair", clvm.ErrDecode)
			}
			c.Memos = append(c.Memos, append([]byte(nil), b...))
		}
	}
	return c, nil
}

func optionalHashArg(v clvm.Value) (*model.Bytes32, error) {
	b, ok := v.AtomBytes()
	switch {
	case !ok:
		return nil, fmt.Errorf("%w: expected atom", clvm.ErrDecode)
	case len(b) == 0:
		return nil, nil
	case len(b) == 32:
		var h model.Bytes32
		copy(h[:], b)
		return &h, nil
	default:
		return nil, fmt.Errorf("%w: expected 32 byte atom, got %d bytes", clvm.ErrDecode, len(b))
	}
}

func parseNewNftOwner(args []clvm.Value) (Condition, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("%w: new nft owner takes 3 arguments, got %d", clvm.ErrDecode, len(args))
	}
	owner, err := optionalHashArg(args[0])
	if err != nil {
		return nil, fmt.Errorf("new nft owner: %w", err)
	}
	prices, ok := args[1].Items()
	if !ok {
		return nil, fmt.Errorf("%w: new nft owner trade prices are not a list", clvm.ErrDecode)
	}
	inner, err := optionalHashArg(args[2])
	if err != nil {
		return nil, fmt.Errorf("new nft owner did inner hash: %w", err)
	}
	return NewNftOwner{NewOwner: owner, TradePrices: prices, NewDIDInnerHash: inner}, nil
}
