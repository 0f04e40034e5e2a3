// Package coinselect picks the coins that fund a spend.
package coinselect

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/pkg/safe"
)

// MaxCoins is the most coins a selection may contain.
const MaxCoins = 500

const knapsackIterations = 1000

var (
	ErrNoSpendableCoins = errors.New("coinselect: no spendable coins")
	ErrExceededMaxCoins = errors.New("coinselect: exceeded max coins")
)

// InsufficientBalanceError reports the total of the spendable coins when it is below
// the requested amount.
type InsufficientBalanceError struct {
	Spendable uint64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("coinselect: insufficient balance %d", e.Spendable)
}

// Select returns coins whose amounts sum to at least amount, largest first. The
// choice is deterministic for a given set of coins.
func Select(spendable []model.Coin, amount uint64) ([]model.Coin, error) {
	coins := unique(spendable)
	if len(coins) == 0 {
		return nil, ErrNoSpendableCoins
	}

	var total uint64
	for _, c := range coins {
		total = safe.SaturatingAdd(total, c.Amount)
	}
	if total < amount {
		return nil, &InsufficientBalanceError{Spendable: total}
	}

	slices.SortStableFunc(coins, func(a, b model.Coin) int { return cmp.Compare(b.Amount, a.Amount) })

	for _, c := range coins {
		if c.Amount == amount {
			return []model.Coin{c}, nil
		}
	}

	var smaller []model.Coin
	var smallerSum uint64
	for _, c := range coins {
		if c.Amount < amount {
			smaller = append(smaller, c)
			smallerSum = safe.SaturatingAdd(smallerSum, c.Amount)
		}
	}

	if smallerSum == amount && len(smaller) < MaxCoins && amount != 0 {
		return smaller, nil
	}

	if smallerSum < amount {
		// Some coin must cover the amount alone.
		return []model.Coin{smallestAbove(coins, amount)}, nil
	}

	if smallerSum > amount {
		rng := rand.New(rand.NewChaCha8([32]byte{}))
		if selected, ok := knapsack(rng, coins, amount, math.MaxUint64, MaxCoins); ok {
			return selected, nil
		}

		selected := sumLargest(coins, amount)
		if len(selected) > MaxCoins {
			return nil, ErrExceededMaxCoins
		}
		return selected, nil
	}

	// The smaller coins match exactly but there are too many of them.
	if coins[0].Amount >= amount {
		return []model.Coin{smallestAbove(coins, amount)}, nil
	}
	return nil, ErrExceededMaxCoins
}

func unique(coins []model.Coin) []model.Coin {
	seen := make(map[model.Bytes32]struct{}, len(coins))
	out := make([]model.Coin, 0, len(coins))
	for _, c := range coins {
		id := c.ID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, c)
	}
	return out
}

// smallestAbove expects coins sorted by amount descending with coins[0] covering amount.
func smallestAbove(coins []model.Coin, amount uint64) model.Coin {
	for i := len(coins) - 1; i >= 0; i-- {
		if coins[i].Amount >= amount {
			return coins[i]
		}
	}
	return coins[0]
}

func sumLargest(coins []model.Coin, amount uint64) []model.Coin {
	var sum uint64
	for i, c := range coins {
		sum = safe.SaturatingAdd(sum, c.Amount)
		if sum >= amount {
			return slices.Clone(coins[:i+1])
		}
	}
	return slices.Clone(coins)
}

// knapsack runs randomized two pass subset search over coins, keeping the smallest
// sum above amount. An exact match ends the search. No candidate holds more than
// maxCoins coins.
func knapsack(rng *rand.Rand, coins []model.Coin, amount, maxAmount uint64, maxCoins int) ([]model.Coin, bool) {
	bestSum := maxAmount
	var best []bool

	selected := make([]bool, len(coins))
	for range knapsackIterations {
		clear(selected)
		var count int
		var sum uint64
		reached := false

		for pass := 0; pass < 2 && !reached; pass++ {
			for i, c := range coins {
				if pass == 0 {
					if rng.IntN(2) == 0 {
						continue
					}
				} else if selected[i] {
					continue
				}
				if count >= maxCoins {
					break
				}

				sum = safe.SaturatingAdd(sum, c.Amount)
				if !selected[i] {
					selected[i] = true
					count++
				}

				if sum == amount {
					return pick(coins, selected), true
				}
				if sum > amount {
					reached = true
					if sum < bestSum {
						bestSum = sum
						best = slices.Clone(selected)
						sum -= c.Amount
						selected[i] = false
						count--
					}
				}
			}
		}
	}

	if best == nil {
		return nil, false
	}
	return pick(coins, best), true
}

func pick(coins []model.Coin, selected []bool) []model.Coin {
	var out []model.Coin
	for i, ok := range selected {
		if ok {
			out = append(out, coins[i])
		}
	}
	return out
}
