// Package conditions builds the condition lists puzzles output and derives the
// announcement ids that bind coins spent in the same bundle.
package conditions

import (
	"crypto/sha256"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

// Condition opcodes.
const (
	OpCreateCoin               = 51
	OpCreateCoinAnnouncement   = 60
	OpAssertCoinAnnouncement   = 61
	OpCreatePuzzleAnnouncement = 62
	OpAssertPuzzleAnnouncement = 63
)

// OpNewNftOwner is -10, understood only by the NFT ownership layer.
var OpNewNftOwner = []byte{0xf6}

// NewOwnerAnnouncementPrefix prefixes the puzzle announcement made by the ownership
// layer when the owner changes.
var NewOwnerAnnouncementPrefix = []byte{0xad, 0x4c}

type Condition interface {
	Value() clvm.Value
}

type CreateCoin struct {
	PuzzleHash model.Bytes32
	Amount     uint64
	Memos      [][]byte
}

func (c CreateCoin) Value() clvm.Value {
	items := []clvm.Value{clvm.Uint(OpCreateCoin), clvm.Bytes32(c.PuzzleHash), clvm.Uint(c.Amount)}
	if c.Memos != nil {
		memos := make([]clvm.Value, 0, len(c.Memos))
		for _, m := range c.Memos {
			memos = append(memos, clvm.Atom(m))
		}
		items = append(items, clvm.List(memos...))
	}
	return clvm.List(items...)
}

type CreateCoinAnnouncement struct {
	Message []byte
}

func (c CreateCoinAnnouncement) Value() clvm.Value {
	return clvm.List(clvm.Uint(OpCreateCoinAnnouncement), clvm.Atom(c.Message))
}

type AssertCoinAnnouncement struct {
	AnnouncementID model.Bytes32
}

func (c AssertCoinAnnouncement) Value() clvm.Value {
	return clvm.List(clvm.Uint(OpAssertCoinAnnouncement), clvm.Bytes32(c.AnnouncementID))
}

type CreatePuzzleAnnouncement struct {
	Message []byte
}

func (c CreatePuzzleAnnouncement) Value() clvm.Value {
	return clvm.List(clvm.Uint(OpCreatePuzzleAnnouncement), clvm.Atom(c.Message))
}

type AssertPuzzleAnnouncement struct {
	AnnouncementID model.Bytes32
}

func (c AssertPuzzleAnnouncement) Value() clvm.Value {
	return clvm.List(clvm.Uint(OpAssertPuzzleAnnouncement), clvm.Bytes32(c.AnnouncementID))
}

// NewNftOwner asks the ownership layer to transfer the NFT. A nil NewOwner clears the
// owner.
type NewNftOwner struct {
	NewOwner        *model.Bytes32
	TradePrices     []clvm.Value
	NewDIDInnerHash *model.Bytes32
}

func optionalHash(h *model.Bytes32) clvm.Value {
	if h == nil {
		return clvm.Nil
	}
	return clvm.Bytes32(*h)
}

// Args is (new_owner trade_prices new_did_inner_hash).
func (c NewNftOwner) Args() clvm.Value {
	return clvm.List(optionalHash(c.NewOwner), clvm.List(c.TradePrices...), optionalHash(c.NewDIDInnerHash))
}

func (c NewNftOwner) Value() clvm.Value {
	return clvm.Pair(clvm.Atom(OpNewNftOwner), c.Args())
}

// AnnouncementMessage is the puzzle announcement the ownership layer makes for this
// transfer: 0xad4c ++ treehash(args).
func (c NewNftOwner) AnnouncementMessage() []byte {
	h := c.Args().TreeHash()
	return append(append([]byte(nil), NewOwnerAnnouncementPrefix...), h[:]...)
}

// List builds the condition list.
func List(conds ...Condition) clvm.Value {
	values := make([]clvm.Value, 0, len(conds))
	for _, c := range conds {
		values = append(values, c.Value())
	}
	return clvm.List(values...)
}

// CoinAnnouncementID is sha256(coin_id ++ message).
func CoinAnnouncementID(coinID model.Bytes32, message []byte) model.Bytes32 {
	return announcementID(coinID, message)
}

// PuzzleAnnouncementID is sha256(puzzle_hash ++ message).
func PuzzleAnnouncementID(puzzleHash model.Bytes32, message []byte) model.Bytes32 {
	return announcementID(puzzleHash, message)
}

func announcementID(origin model.Bytes32, message []byte) model.Bytes32 {
	h := sha256.New()
	h.Write(origin[:])
	h.Write(message)
	var out model.Bytes32
	copy(out[:], h.Sum(nil))
	return out
}
