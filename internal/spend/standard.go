package spend

import (
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/conditions"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/driver"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
)

// StandardSpend builds the spend of a pay-to-key coin. Chained spends contribute
// their parent conditions to this coin's output.
type StandardSpend struct {
	conditions []conditions.Condition
	chained    ChainedSpend
}

func NewStandardSpend() *StandardSpend {
	return &StandardSpend{chained: newChainedSpend()}
}

func (s *StandardSpend) Condition(c conditions.Condition) *StandardSpend {
	s.conditions = append(s.conditions, c)
	return s
}

// Chain adopts a chained spend: its parent conditions become this coin's conditions.
func (s *StandardSpend) Chain(cs ChainedSpend) *StandardSpend {
	s.conditions = append(s.conditions, cs.ParentConditions...)
	s.chained.CoinSpends = append(s.chained.CoinSpends, cs.CoinSpends...)
	s.chained.Ledger.Merge(cs.Ledger)
	return s
}

func (s *StandardSpend) Conditions() []conditions.Condition {
	return s.conditions
}

// InnerSpend returns the p2 layer and solution, for wrapping in an outer layer.
func (s *StandardSpend) InnerSpend(lib *puzzles.Library, syntheticKey model.PublicKey) (driver.StandardLayer, driver.StandardSolution) {
	return driver.NewStandardLayer(lib, syntheticKey), driver.StandardConditions(conditions.List(s.conditions...))
}

// Finish spends coin with the standard puzzle of syntheticKey. The returned spends
// are the chained spends followed by coin's own spend.
func (s *StandardSpend) Finish(ctx *driver.SpendContext, coin model.Coin, syntheticKey model.PublicKey) (ChainedSpend, error) {
	layer, solution := s.InnerSpend(ctx.Library(), syntheticKey)
	cs, err := driver.Spend(ctx, coin, layer, solution)
	if err != nil {
		return ChainedSpend{}, fmt.Errorf("standard spend of %s: %w", coin.ID(), err)
	}
	return s.finish(coin, cs), nil
}

// FinishSingleton spends a singleton whose inner puzzle is the standard puzzle of
// syntheticKey, such as an identity singleton controlling minted NFTs.
func (s *StandardSpend) FinishSingleton(ctx *driver.SpendContext, coin model.Coin, launcherID model.Bytes32, proof puzzles.Proof, syntheticKey model.PublicKey) (ChainedSpend, error) {
	lib := ctx.Library()
	inner, innerSolution := s.InnerSpend(lib, syntheticKey)
	layer := driver.NewSingletonLayer(lib, launcherID, inner)
	solution := driver.SingletonSolution{Proof: proof, Amount: coin.Amount, Inner: innerSolution}

	cs, err := driver.Spend(ctx, coin, layer, solution)
	if err != nil {
		return ChainedSpend{}, fmt.Errorf("singleton spend of %s: %w", coin.ID(), err)
	}
	return s.finish(coin, cs), nil
}

func (s *StandardSpend) finish(coin model.Coin, cs model.CoinSpend) ChainedSpend {
	out := newChainedSpend()
	out.CoinSpends = append(append(out.CoinSpends, s.chained.CoinSpends...), cs)
	out.Ledger.Merge(s.chained.Ledger)
	out.Ledger.Observe(coin.ID(), coin.PuzzleHash, s.conditions)
	return out
}
