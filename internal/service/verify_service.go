package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/driver"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
	"github.com/goodnatureofminers/smartcoin-wallet/pkg/workerpool"
	"go.uber.org/zap"
)

const defaultVerifyWorkers = 4

// SpendReport describes one coin spend of a verified bundle.
type SpendReport struct {
	CoinID     model.Bytes32 `json:"coin_id"`
	PuzzleHash model.Bytes32 `json:"puzzle_hash"`
	Amount     uint64        `json:"amount"`
	Layers     string        `json:"layers"`
}

type VerifyService struct {
	lib     *puzzles.Library
	parser  driver.Parser
	workers int
	metrics VerifyMetrics
	logger  *zap.Logger
}

// NewVerifyService builds a verify service. On mainnet the library must hold the
// canonical mods, so singleton structs are checked against mainnet hashes.
func NewVerifyService(lib *puzzles.Library, network model.Network, workers int, metrics VerifyMetrics, logger *zap.Logger) (*VerifyService, error) {
	if err := checkLibrary(lib, network); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = defaultVerifyWorkers
	}
	return &VerifyService{
		lib:     lib,
		parser:  driver.DefaultParser(),
		workers: workers,
		metrics: metrics,
		logger:  logger.Named("verify"),
	}, nil
}

// Verify parses every coin spend of bundle with the wallet's layer parsers. Each spend
// must reveal a puzzle hashing to its coin's puzzle hash, and be recognized down to a
// known or raw inner puzzle with a well formed solution.
func (s *VerifyService) Verify(ctx context.Context, bundle model.SpendBundle) (reports []SpendReport, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBundle(err, started)
	}()

	if len(bundle.CoinSpends) == 0 {
		return nil, errors.New("empty spend bundle")
	}

	reports, err = workerpool.Map(ctx, s.workers, bundle.CoinSpends, s.verifySpend)
	if err != nil {
		return nil, err
	}

	for _, r := range reports {
		s.metrics.ObserveLayers(r.Layers)
	}
	s.logger.Debug("bundle verified", zap.Stringer("bundle", bundle.ID()), zap.Int("coin_spends", len(reports)))
	return reports, nil
}

func (s *VerifyService) verifySpend(_ context.Context, cs model.CoinSpend) (SpendReport, error) {
	// One arena per spend; contexts are not shared between workers.
	sctx := driver.NewSpendContext(s.lib)
	layer, _, err := driver.ParseCoinSpend(sctx, s.parser, cs)
	if err != nil {
		return SpendReport{}, fmt.Errorf("coin %s: %w", cs.Coin.ID(), err)
	}
	return SpendReport{
		CoinID:     cs.Coin.ID(),
		PuzzleHash: cs.Coin.PuzzleHash,
		Amount:     cs.Coin.Amount,
		Layers:     driver.Describe(layer),
	}, nil
}
