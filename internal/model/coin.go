package model

import (
	"crypto/sha256"
	"encoding/binary"
)

// Coin is an unspent output. It is never mutated: a child coin is a new value.
type Coin struct {
	ParentCoinInfo Bytes32 `json:"parent_coin_info"`
	PuzzleHash     Bytes32 `json:"puzzle_hash"`
	Amount         uint64  `json:"amount"`
}

// NewCoin constructs a Coin.
func NewCoin(parentCoinInfo, puzzleHash Bytes32, amount uint64) Coin {
	return Coin{ParentCoinInfo: parentCoinInfo, PuzzleHash: puzzleHash, Amount: amount}
}

// ID returns sha256(parent_coin_info ++ puzzle_hash ++ amount), where amount is the
// canonical integer atom encoding.
func (c Coin) ID() Bytes32 {
	h := sha256.New()
	h.Write(c.ParentCoinInfo[:])
	h.Write(c.PuzzleHash[:])
	h.Write(amountBytes(c.Amount))
	var out Bytes32
	copy(out[:], h.Sum(nil))
	return out
}

// amountBytes mirrors clvm.EncodeUint; model sits below clvm so it cannot import it.
func amountBytes(amount uint64) []byte {
	if amount == 0 {
		return nil
	}
	var buf [9]byte
	binary.BigEndian.PutUint64(buf[1:], amount)
	i := 1
	for i < 8 && buf[i] == 0 {
		i++
	}
	if buf[i]&0x80 != 0 {
		i--
	}
	return buf[i:]
}
