package service

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/coinselect"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/conditions"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/driver"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/spend"
	"github.com/goodnatureofminers/smartcoin-wallet/pkg/safe"
	"go.uber.org/zap"
)

// ErrInvalidMintRequest is returned for requests that cannot describe a mint.
var ErrInvalidMintRequest = errors.New("service: invalid mint request")

type MintItem struct {
	Metadata           puzzles.NftMetadata `json:"metadata"`
	RoyaltyPuzzleHash  *model.Bytes32      `json:"royalty_puzzle_hash,omitempty"`
	RoyaltyBasisPoints int                 `json:"royalty_basis_points"`
	OwnerPuzzleHash    *model.Bytes32      `json:"owner_puzzle_hash,omitempty"`
	Amount             uint64              `json:"amount"`
}

// MintRequest mints Items funded by Coins, all locked by the standard puzzle of
// SyntheticKey. Change goes to ChangePuzzleHash, or back to the first selected coin's
// puzzle hash.
type MintRequest struct {
	Coins            []model.Coin    `json:"coins"`
	SyntheticKey     model.PublicKey `json:"synthetic_key"`
	ChangePuzzleHash *model.Bytes32  `json:"change_puzzle_hash,omitempty"`
	Items            []MintItem      `json:"items"`
}

type MintedNFT struct {
	LauncherID model.Bytes32 `json:"launcher_id"`
	Coin       model.Coin    `json:"coin"`
}

type MintResult struct {
	SpendBundle model.SpendBundle `json:"spend_bundle"`
	NFTs        []MintedNFT       `json:"nfts"`
}

type MintService struct {
	lib     *puzzles.Library
	network model.Network
	journal Journal
	metrics MintMetrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewMintService builds a mint service. journal may be nil. On mainnet the library
// must hold the canonical mods.
func NewMintService(lib *puzzles.Library, network model.Network, journal Journal, metrics MintMetrics, logger *zap.Logger) (*MintService, error) {
	if err := checkLibrary(lib, network); err != nil {
		return nil, err
	}
	return &MintService{
		lib:     lib,
		network: network,
		journal: journal,
		metrics: metrics,
		logger:  logger.Named("mint"),
		now:     time.Now,
	}, nil
}

// Mint assembles the unsigned spend bundle for req. The first selected coin pays for
// the mint and outputs every launcher's parent conditions; the other selected coins
// are bound to it with a coin announcement.
func (s *MintService) Mint(ctx context.Context, req MintRequest) (res MintResult, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBuild(err, len(req.Items), started)
	}()

	if err = ctx.Err(); err != nil {
		return MintResult{}, err
	}

	items, required, err := s.mintItems(req.Items)
	if err != nil {
		return MintResult{}, err
	}

	coins, err := coinselect.Select(req.Coins, required)
	if err != nil {
		return MintResult{}, fmt.Errorf("select funding coins for %d: %w", required, err)
	}
	s.metrics.ObserveCoinSelection(len(coins))

	inputs, err := sumAmounts(coins)
	if err != nil {
		return MintResult{}, err
	}

	sctx := driver.NewSpendContext(s.lib)
	primary := coins[0]
	mint, err := spend.MintNFTs(sctx, spend.MintBatch{
		ParentCoinID:     primary.ID(),
		ParentPuzzleHash: primary.PuzzleHash,
		SyntheticKey:     req.SyntheticKey,
		Items:            items,
	})
	if err != nil {
		return MintResult{}, fmt.Errorf("build mint: %w", err)
	}

	primarySpend := spend.NewStandardSpend().Chain(mint.Chained())
	change := inputs - required
	if change > 0 {
		changePuzzleHash := primary.PuzzleHash
		if req.ChangePuzzleHash != nil {
			changePuzzleHash = *req.ChangePuzzleHash
		}
		primarySpend.Condition(conditions.CreateCoin{PuzzleHash: changePuzzleHash, Amount: change})
	}

	message := fundingMessage(coins)
	if len(coins) > 1 {
		primarySpend.Condition(conditions.CreateCoinAnnouncement{Message: message})
	}

	chained, err := primarySpend.Finish(sctx, primary, req.SyntheticKey)
	if err != nil {
		return MintResult{}, fmt.Errorf("spend funding coin: %w", err)
	}
	ledger := chained.Ledger
	sctx.Insert(chained.CoinSpends...)

	for _, coin := range coins[1:] {
		bound, err := spend.NewStandardSpend().
			Condition(conditions.AssertCoinAnnouncement{AnnouncementID: conditions.CoinAnnouncementID(primary.ID(), message)}).
			Finish(sctx, coin, req.SyntheticKey)
		if err != nil {
			return MintResult{}, fmt.Errorf("spend funding coin: %w", err)
		}
		ledger.Merge(bound.Ledger)
		sctx.Insert(bound.CoinSpends...)
	}

	if err = ledger.Verify(); err != nil {
		return MintResult{}, err
	}

	res.SpendBundle = model.SpendBundle{CoinSpends: sctx.Take()}
	for _, out := range mint.Outputs {
		res.NFTs = append(res.NFTs, MintedNFT{LauncherID: out.LauncherID, Coin: out.Info.Coin})
	}

	s.logger.Info("mint assembled",
		zap.Stringer("bundle", res.SpendBundle.ID()),
		zap.Int("nfts", len(res.NFTs)),
		zap.Int("coin_spends", len(res.SpendBundle.CoinSpends)),
		zap.Int("funding_coins", len(coins)),
		zap.Uint64("change", change),
	)

	s.record(ctx, res.SpendBundle, mint, inputs, change)
	return res, nil
}

func checkLibrary(lib *puzzles.Library, network model.Network) error {
	if lib == nil {
		return errors.New("puzzle library is required")
	}
	if network == model.Mainnet {
		if err := lib.VerifyCanonical(); err != nil {
			return fmt.Errorf("mainnet library: %w", err)
		}
	}
	return nil
}

func (s *MintService) mintItems(reqItems []MintItem) ([]spend.MintItem, uint64, error) {
	if len(reqItems) == 0 {
		return nil, 0, fmt.Errorf("%w: no items", ErrInvalidMintRequest)
	}

	items := make([]spend.MintItem, 0, len(reqItems))
	var required uint64
	for i, it := range reqItems {
		if it.Amount%2 == 0 {
			return nil, 0, fmt.Errorf("%w: item %d amount %d is not odd", ErrInvalidMintRequest, i, it.Amount)
		}
		bps, err := safe.Uint16(it.RoyaltyBasisPoints)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: item %d royalty: %v", ErrInvalidMintRequest, i, err)
		}
		if required, err = safe.Add(required, it.Amount); err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrInvalidMintRequest, err)
		}

		item := spend.MintItem{
			Metadata:           it.Metadata.Value(),
			RoyaltyBasisPoints: bps,
			Amount:             it.Amount,
		}
		if it.RoyaltyPuzzleHash != nil {
			item.RoyaltyPuzzleHash = *it.RoyaltyPuzzleHash
		}
		if it.OwnerPuzzleHash != nil {
			item.OwnerPuzzleHash = *it.OwnerPuzzleHash
		}
		items = append(items, item)
	}
	return items, required, nil
}

func (s *MintService) record(ctx context.Context, bundle model.SpendBundle, mint spend.BulkMint, inputs, change uint64) {
	if s.journal == nil {
		return
	}

	now := s.now().UTC()
	bundleID := bundle.ID()
	entry := model.JournalEntry{
		Bundle: model.BundleRecord{
			Network:    s.network,
			BundleID:   bundleID,
			Kind:       "mint",
			CoinSpends: uint32(len(bundle.CoinSpends)),
			Inputs:     inputs,
			Change:     change,
			CreatedAt:  now,
		},
		Mints: make([]model.MintRecord, 0, len(mint.Outputs)),
	}
	for _, out := range mint.Outputs {
		info := out.Info
		entry.Mints = append(entry.Mints, model.MintRecord{
			Network:            s.network,
			BundleID:           bundleID,
			LauncherID:         out.LauncherID,
			CoinID:             info.Coin.ID(),
			PuzzleHash:         info.Coin.PuzzleHash,
			P2PuzzleHash:       info.P2PuzzleHash,
			MetadataHash:       info.Metadata.TreeHash(),
			RoyaltyPuzzleHash:  info.RoyaltyPuzzleHash,
			RoyaltyBasisPoints: info.RoyaltyBasisPoints,
			Amount:             info.Coin.Amount,
			CreatedAt:          now,
		})
	}

	if err := s.journal.Write(ctx, entry); err != nil {
		s.logger.Error("journal write failed", zap.Stringer("bundle", bundleID), zap.Error(err))
	}
}

func sumAmounts(coins []model.Coin) (uint64, error) {
	amounts := make([]uint64, 0, len(coins))
	for _, c := range coins {
		amounts = append(amounts, c.Amount)
	}
	total, err := safe.Sum(amounts...)
	if err != nil {
		return 0, fmt.Errorf("sum funding coins: %w", err)
	}
	return total, nil
}

// fundingMessage is sha256 over the funding coin ids; the primary coin announces it
// and every other funding coin asserts it.
func fundingMessage(coins []model.Coin) []byte {
	h := sha256.New()
	for _, c := range coins {
		id := c.ID()
		h.Write(id[:])
	}
	return h.Sum(nil)
}
