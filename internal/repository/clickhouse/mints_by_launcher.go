package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

const mintsByLauncherQuery = `
SELECT
	bundle_id,
	coin_id,
	puzzle_hash,
	p2_puzzle_hash,
	metadata_hash,
	royalty_puzzle_hash,
	royalty_basis_points,
	amount,
	created_at
FROM nft_mints
WHERE network = ? AND launcher_id = ?
ORDER BY created_at`

// MintsByLauncher returns the journal rows of the NFT with the given launcher id.
func (r *Repository) MintsByLauncher(ctx context.Context, network model.Network, launcherID model.Bytes32) (out []model.MintRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("mints_by_launcher", network, err, start)
	}()

	rows, err := r.conn.Query(ctx, mintsByLauncherQuery, string(network), launcherID.String())
	if err != nil {
		return nil, fmt.Errorf("query mints: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var bundleID, coinID, puzzleHash, p2PuzzleHash, metadataHash, royaltyPuzzleHash string
		rec := model.MintRecord{Network: network, LauncherID: launcherID}
		if err = rows.Scan(
			&bundleID,
			&coinID,
			&puzzleHash,
			&p2PuzzleHash,
			&metadataHash,
			&royaltyPuzzleHash,
			&rec.RoyaltyBasisPoints,
			&rec.Amount,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan mint: %w", err)
		}
		if err = decodeHashes(map[*model.Bytes32]string{
			&rec.BundleID:          bundleID,
			&rec.CoinID:            coinID,
			&rec.PuzzleHash:        puzzleHash,
			&rec.P2PuzzleHash:      p2PuzzleHash,
			&rec.MetadataHash:      metadataHash,
			&rec.RoyaltyPuzzleHash: royaltyPuzzleHash,
		}); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mints: %w", err)
	}
	return out, nil
}

func decodeHashes(fields map[*model.Bytes32]string) error {
	for dst, s := range fields {
		h, err := model.Bytes32FromHex(s)
		if err != nil {
			return fmt.Errorf("decode %q: %w", s, err)
		}
		*dst = h
	}
	return nil
}
