package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

const insertMintsQuery = `
INSERT INTO nft_mints (
	network,
	bundle_id,
	launcher_id,
	coin_id,
	puzzle_hash,
	p2_puzzle_hash,
	metadata_hash,
	royalty_puzzle_hash,
	royalty_basis_points,
	amount,
	created_at
) VALUES`

// InsertMints stores one row per minted NFT.
func (r *Repository) InsertMints(ctx context.Context, mints []model.MintRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_mints", firstNetwork(mints), err, start)
	}()

	if len(mints) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertMintsQuery)
	if err != nil {
		return fmt.Errorf("prepare mints batch: %w", err)
	}

	for _, m := range mints {
		if err = batch.Append(mintRow(m)...); err != nil {
			return fmt.Errorf("append mint: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert mints: %w", err)
	}
	return nil
}

func mintRow(m model.MintRecord) []any {
	return []any{
		string(m.Network),
		m.BundleID.String(),
		m.LauncherID.String(),
		m.CoinID.String(),
		m.PuzzleHash.String(),
		m.P2PuzzleHash.String(),
		m.MetadataHash.String(),
		m.RoyaltyPuzzleHash.String(),
		m.RoyaltyBasisPoints,
		m.Amount,
		m.CreatedAt,
	}
}
