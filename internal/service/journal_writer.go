package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clock"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/pkg/batcher"
	"go.uber.org/zap"
)

const (
	journalFlushSize        = 64
	journalFlushInterval    = 2 * time.Second
	journalFlushesPerSecond = 10
	journalFlushAttempts    = 3
	journalRetryDelay       = 200 * time.Millisecond
)

// JournalWriter batches journal entries and writes them to the repository, bundle
// rows before mint rows.
type JournalWriter struct {
	repo    JournalRepository
	logger  *zap.Logger
	batcher *batcher.Batcher[model.JournalEntry]
}

func NewJournalWriter(repo JournalRepository, logger *zap.Logger) *JournalWriter {
	w := &JournalWriter{
		repo:   repo,
		logger: logger,
	}
	w.batcher = batcher.New(logger.Named("journalBatcher"), w.flush, batcher.Options{
		FlushSize:        journalFlushSize,
		FlushInterval:    journalFlushInterval,
		FlushesPerSecond: journalFlushesPerSecond,
	})
	return w
}

func (w *JournalWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes pending entries.
func (w *JournalWriter) Stop() {
	w.batcher.Stop()
}

func (w *JournalWriter) Write(ctx context.Context, entry model.JournalEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return w.batcher.Add(ctx, entry)
}

func (w *JournalWriter) flush(ctx context.Context, entries []model.JournalEntry) error {
	bundles := make([]model.BundleRecord, 0, len(entries))
	var mints []model.MintRecord
	for _, e := range entries {
		bundles = append(bundles, e.Bundle)
		mints = append(mints, e.Mints...)
	}

	if err := clock.Retry(ctx, journalFlushAttempts, journalRetryDelay, func(ctx context.Context) error {
		return w.repo.InsertBundles(ctx, bundles)
	}); err != nil {
		return err
	}
	if err := clock.Retry(ctx, journalFlushAttempts, journalRetryDelay, func(ctx context.Context) error {
		return w.repo.InsertMints(ctx, mints)
	}); err != nil {
		return err
	}
	w.logger.Debug("journal flushed", zap.Int("bundles", len(bundles)), zap.Int("mints", len(mints)))
	return nil
}
