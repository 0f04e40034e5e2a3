package model

import "crypto/sha256"

// CoinSpend claims that PuzzleReveal, run with Solution, spends Coin.
type CoinSpend struct {
	Coin         Coin    `json:"coin"`
	PuzzleReveal Program `json:"puzzle_reveal"`
	Solution     Program `json:"solution"`
}

// NewCoinSpend constructs a CoinSpend.
func NewCoinSpend(coin Coin, puzzleReveal, solution Program) CoinSpend {
	return CoinSpend{Coin: coin, PuzzleReveal: puzzleReveal, Solution: solution}
}

// SpendBundle is the unit handed to the transport. The aggregated signature is
// produced by the external signer and may be empty while the bundle is assembled.
type SpendBundle struct {
	CoinSpends          []CoinSpend `json:"coin_spends"`
	AggregatedSignature Program     `json:"aggregated_signature"`
}

// ID is sha256 over the ids of the spent coins, in bundle order.
func (b SpendBundle) ID() Bytes32 {
	h := sha256.New()
	for _, cs := range b.CoinSpends {
		id := cs.Coin.ID()
		h.Write(id[:])
	}
	var out Bytes32
	copy(out[:], h.Sum(nil))
	return out
}
