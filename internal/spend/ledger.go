// Package spend orchestrates multi-coin operations. Coins spent in one bundle are
// bound together by announcements: a build records every announcement it expects to
// be created and every one it asserts, and refuses to finish with a dangling assertion.
package spend

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/conditions"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

// ErrUnmatchedAnnouncement is returned when an asserted announcement is never created.
var ErrUnmatchedAnnouncement = errors.New("spend: unmatched announcement")

type AnnouncementKind uint8

const (
	CoinAnnouncement AnnouncementKind = iota + 1
	PuzzleAnnouncement
)

func (k AnnouncementKind) String() string {
	switch k {
	case CoinAnnouncement:
		return "coin"
	case PuzzleAnnouncement:
		return "puzzle"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

type Announcement struct {
	Kind AnnouncementKind
	ID   model.Bytes32
}

func (a Announcement) String() string {
	return fmt.Sprintf("%s announcement %s", a.Kind, a.ID)
}

// Ledger accumulates announcement creations and assertions across a build. Creations
// implied by puzzle semantics (a launcher announcing its solution, the ownership layer
// announcing a transfer) are recorded explicitly by the code that builds those spends.
type Ledger struct {
	created  map[Announcement]struct{}
	asserted []Announcement
}

func NewLedger() *Ledger {
	return &Ledger{created: make(map[Announcement]struct{})}
}

func (l *Ledger) CreateCoinAnnouncement(coinID model.Bytes32, message []byte) {
	l.created[Announcement{Kind: CoinAnnouncement, ID: conditions.CoinAnnouncementID(coinID, message)}] = struct{}{}
}

func (l *Ledger) CreatePuzzleAnnouncement(puzzleHash model.Bytes32, message []byte) {
	l.created[Announcement{Kind: PuzzleAnnouncement, ID: conditions.PuzzleAnnouncementID(puzzleHash, message)}] = struct{}{}
}

func (l *Ledger) AssertCoinAnnouncement(id model.Bytes32) {
	l.asserted = append(l.asserted, Announcement{Kind: CoinAnnouncement, ID: id})
}

func (l *Ledger) AssertPuzzleAnnouncement(id model.Bytes32) {
	l.asserted = append(l.asserted, Announcement{Kind: PuzzleAnnouncement, ID: id})
}

// Observe records the announcement conditions output by the spend of coinID, whose
// puzzle hash is puzzleHash.
func (l *Ledger) Observe(coinID, puzzleHash model.Bytes32, conds []conditions.Condition) {
	for _, c := range conds {
		switch c := c.(type) {
		case conditions.CreateCoinAnnouncement:
			l.CreateCoinAnnouncement(coinID, c.Message)
		case conditions.CreatePuzzleAnnouncement:
			l.CreatePuzzleAnnouncement(puzzleHash, c.Message)
		case conditions.AssertCoinAnnouncement:
			l.AssertCoinAnnouncement(c.AnnouncementID)
		case conditions.AssertPuzzleAnnouncement:
			l.AssertPuzzleAnnouncement(c.AnnouncementID)
		}
	}
}

// Merge adds everything recorded in other.
func (l *Ledger) Merge(other *Ledger) {
	if other == nil {
		return
	}
	for a := range other.created {
		l.created[a] = struct{}{}
	}
	l.asserted = append(l.asserted, other.asserted...)
}

func (l *Ledger) Clone() *Ledger {
	c := NewLedger()
	c.Merge(l)
	return c
}

// Created is the number of distinct announcements created.
func (l *Ledger) Created() int { return len(l.created) }

// Asserted is the number of assertions recorded.
func (l *Ledger) Asserted() int { return len(l.asserted) }

// Unmatched returns the assertions without a creation, in assertion order.
func (l *Ledger) Unmatched() []Announcement {
	var out []Announcement
	for _, a := range l.asserted {
		if _, ok := l.created[a]; !ok {
			out = append(out, a)
		}
	}
	return out
}

func (l *Ledger) Verify() error {
	unmatched := l.Unmatched()
	if len(unmatched) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d assertions without creation, first is %s", ErrUnmatchedAnnouncement, len(unmatched), unmatched[0])
}
