package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

const insertBundlesQuery = `
INSERT INTO spend_bundles (
	network,
	bundle_id,
	kind,
	coin_spends,
	inputs,
	change,
	created_at
) VALUES`

// InsertBundles stores spend bundle rows.
func (r *Repository) InsertBundles(ctx context.Context, bundles []model.BundleRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_bundles", firstNetwork(bundles), err, start)
	}()

	if len(bundles) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBundlesQuery)
	if err != nil {
		return fmt.Errorf("prepare bundles batch: %w", err)
	}

	for _, b := range bundles {
		if err = batch.Append(
			string(b.Network),
			b.BundleID.String(),
			b.Kind,
			b.CoinSpends,
			b.Inputs,
			b.Change,
			b.CreatedAt,
		); err != nil {
			return fmt.Errorf("append bundle: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert bundles: %w", err)
	}
	return nil
}

func firstNetwork[T model.BundleRecord | model.MintRecord](items []T) model.Network {
	if len(items) == 0 {
		return ""
	}

	switch v := any(items[0]).(type) {
	case model.BundleRecord:
		return v.Network
	case model.MintRecord:
		return v.Network
	default:
		return ""
	}
}
