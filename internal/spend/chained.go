package spend

import (
	"github.com/goodnatureofminers/smartcoin-wallet/internal/conditions"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

// ChainedSpend is a set of coin spends plus the conditions the parent coin's spend
// must still output for them to be valid.
type ChainedSpend struct {
	CoinSpends       []model.CoinSpend
	ParentConditions []conditions.Condition
	Ledger           *Ledger
}

func newChainedSpend() ChainedSpend {
	return ChainedSpend{Ledger: NewLedger()}
}

// Extend appends other's spends, parent conditions and ledger entries.
func (c *ChainedSpend) Extend(other ChainedSpend) {
	if c.Ledger == nil {
		c.Ledger = NewLedger()
	}
	c.CoinSpends = append(c.CoinSpends, other.CoinSpends...)
	c.ParentConditions = append(c.ParentConditions, other.ParentConditions...)
	c.Ledger.Merge(other.Ledger)
}
