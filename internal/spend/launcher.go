package spend

import (
	"crypto/sha256"
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/conditions"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/driver"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
)

// LaunchSingleton is a launcher coin waiting to be spent into an eve singleton.
type LaunchSingleton struct {
	coin    model.Coin
	chained ChainedSpend
}

// NewLaunchSingleton creates a launcher coin as a child of parentCoinID. The parent
// must output the returned CreateCoin condition.
func NewLaunchSingleton(lib *puzzles.Library, parentCoinID model.Bytes32, amount uint64) LaunchSingleton {
	launcherPuzzleHash := lib.Hash(puzzles.SingletonLauncher)
	chained := newChainedSpend()
	chained.ParentConditions = append(chained.ParentConditions, conditions.CreateCoin{PuzzleHash: launcherPuzzleHash, Amount: amount})
	return LaunchSingleton{
		coin:    model.NewCoin(parentCoinID, launcherPuzzleHash, amount),
		chained: chained,
	}
}

func (l LaunchSingleton) Coin() model.Coin { return l.coin }

func (l LaunchSingleton) LauncherID() model.Bytes32 { return l.coin.ID() }

// Finish spends the launcher into an eve singleton with the given inner puzzle hash.
// It returns the chained spend and the eve coin.
func (l LaunchSingleton) Finish(ctx *driver.SpendContext, innerPuzzleHash model.Bytes32, keyValueList clvm.Value) (ChainedSpend, model.Coin, error) {
	lib := ctx.Library()
	launcherID := l.LauncherID()
	evePuzzleHash := driver.SingletonPuzzleHash(lib.SingletonStruct(launcherID), innerPuzzleHash)

	solution := puzzles.LauncherSolution{
		SingletonPuzzleHash: evePuzzleHash,
		Amount:              l.coin.Amount,
		KeyValueList:        keyValueList,
	}
	cs, err := driver.Spend(ctx, l.coin, driver.NewLauncherLayer(lib), driver.LauncherSolution{LauncherSolution: solution})
	if err != nil {
		return ChainedSpend{}, model.Coin{}, fmt.Errorf("launcher spend: %w", err)
	}

	message := solution.Value().TreeHash()
	chained := newChainedSpend()
	chained.Extend(l.chained)
	chained.CoinSpends = append(chained.CoinSpends, cs)
	chained.ParentConditions = append(chained.ParentConditions,
		conditions.AssertCoinAnnouncement{AnnouncementID: conditions.CoinAnnouncementID(launcherID, message[:])})
	chained.Ledger.CreateCoinAnnouncement(launcherID, message[:])

	return chained, model.NewCoin(launcherID, evePuzzleHash, l.coin.Amount), nil
}

// IntermediateLauncher creates the intermediate launcher for item index of total in a
// bulk mint, spends it and returns the launcher coin it creates.
func IntermediateLauncher(ctx *driver.SpendContext, parentCoinID model.Bytes32, index, total, amount uint64) (ChainedSpend, LaunchSingleton, error) {
	lib := ctx.Library()
	layer := driver.NewIntermediateLauncherLayer(lib, index, total)
	coin := model.NewCoin(parentCoinID, layer.TreeHash(), 0)

	cs, err := driver.Spend(ctx, coin, layer, driver.RawSolution{Value: clvm.Nil})
	if err != nil {
		return ChainedSpend{}, LaunchSingleton{}, fmt.Errorf("intermediate launcher spend: %w", err)
	}

	coinID := coin.ID()
	message := intermediateMessage(index, total)
	chained := newChainedSpend()
	chained.CoinSpends = append(chained.CoinSpends, cs)
	chained.ParentConditions = append(chained.ParentConditions,
		conditions.CreateCoin{PuzzleHash: coin.PuzzleHash, Amount: coin.Amount},
		conditions.AssertCoinAnnouncement{AnnouncementID: conditions.CoinAnnouncementID(coinID, message)},
	)
	chained.Ledger.CreateCoinAnnouncement(coinID, message)

	launch := LaunchSingleton{
		coin:    model.NewCoin(coinID, lib.Hash(puzzles.SingletonLauncher), amount),
		chained: newChainedSpend(),
	}
	return chained, launch, nil
}

// intermediateMessage is sha256(index ++ total) over canonical integer atoms.
func intermediateMessage(index, total uint64) []byte {
	h := sha256.New()
	h.Write(clvm.EncodeUint(index))
	h.Write(clvm.EncodeUint(total))
	return h.Sum(nil)
}
