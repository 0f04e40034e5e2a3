package spend

import (
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/conditions"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/driver"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
)

// SettlementSpend spends a coin locked by the settlement puzzle into notarized
// payments.
type SettlementSpend struct {
	NotarizedPayments []puzzles.NotarizedPayment
}

func NewSettlementSpend(payments ...puzzles.NotarizedPayment) SettlementSpend {
	return SettlementSpend{NotarizedPayments: payments}
}

func (s SettlementSpend) InnerSpend(lib *puzzles.Library) (driver.SettlementLayer, driver.SettlementSolution) {
	return driver.NewSettlementLayer(lib), driver.SettlementSolution{NotarizedPayments: s.NotarizedPayments}
}

// Finish spends coin. The settlement puzzle announces the tree hash of every notarized
// payment; those announcements are recorded in the returned ledger.
func (s SettlementSpend) Finish(ctx *driver.SpendContext, coin model.Coin) (ChainedSpend, error) {
	layer, solution := s.InnerSpend(ctx.Library())
	cs, err := driver.Spend(ctx, coin, layer, solution)
	if err != nil {
		return ChainedSpend{}, fmt.Errorf("settlement spend of %s: %w", coin.ID(), err)
	}

	out := newChainedSpend()
	out.CoinSpends = append(out.CoinSpends, cs)
	for _, np := range s.NotarizedPayments {
		h := np.TreeHash()
		out.Ledger.CreatePuzzleAnnouncement(coin.PuzzleHash, h[:])
	}
	return out, nil
}

// AssertSettlement is the condition a counterparty outputs to require that np is paid
// by the settlement coin with the given puzzle hash.
func AssertSettlement(settlementPuzzleHash model.Bytes32, np puzzles.NotarizedPayment) conditions.AssertPuzzleAnnouncement {
	h := np.TreeHash()
	return conditions.AssertPuzzleAnnouncement{AnnouncementID: conditions.PuzzleAnnouncementID(settlementPuzzleHash, h[:])}
}
