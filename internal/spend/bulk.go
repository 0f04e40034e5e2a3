package spend

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/conditions"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/driver"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

// ErrEmptyMint is returned for a batch without items.
var ErrEmptyMint = errors.New("spend: nothing to mint")

type MintItem struct {
	Metadata           clvm.Value
	RoyaltyPuzzleHash  model.Bytes32
	RoyaltyBasisPoints uint16
	OwnerPuzzleHash    model.Bytes32
	Amount             uint64
}

// MintBatch is a bulk mint from one parent coin. ParentPuzzleHash is the origin of
// the parent's puzzle announcements; with an Owner it must be the identity's full
// puzzle hash.
type MintBatch struct {
	ParentCoinID        model.Bytes32
	ParentPuzzleHash    model.Bytes32
	SyntheticKey        model.PublicKey
	MetadataUpdaterHash model.Bytes32
	Owner               *DIDOwner
	Items               []MintItem
}

type MintOutput struct {
	LauncherID       model.Bytes32
	ParentConditions []conditions.Condition
	Info             NftInfo
}

type BulkMint struct {
	CoinSpends []model.CoinSpend
	Outputs    []MintOutput
	Ledger     *Ledger
}

// ParentConditions returns every output's parent conditions in item order.
func (b BulkMint) ParentConditions() []conditions.Condition {
	var out []conditions.Condition
	for _, o := range b.Outputs {
		out = append(out, o.ParentConditions...)
	}
	return out
}

// Chained returns the mint as a chained spend for a StandardSpend to adopt.
func (b BulkMint) Chained() ChainedSpend {
	return ChainedSpend{CoinSpends: b.CoinSpends, ParentConditions: b.ParentConditions(), Ledger: b.Ledger}
}

// MintNFTs mints every item of the batch. Per item, in order, it spends an
// intermediate launcher, the launcher and the eve NFT. The parent's conditions are
// checked against every announcement the spends assert and create.
func MintNFTs(ctx *driver.SpendContext, batch MintBatch) (BulkMint, error) {
	if len(batch.Items) == 0 {
		return BulkMint{}, ErrEmptyMint
	}

	total := uint64(len(batch.Items))
	ledger := NewLedger()
	mint := BulkMint{Outputs: make([]MintOutput, 0, len(batch.Items))}

	for i, item := range batch.Items {
		intermediate, launch, err := IntermediateLauncher(ctx, batch.ParentCoinID, uint64(i), total, item.Amount)
		if err != nil {
			return BulkMint{}, fmt.Errorf("item %d: %w", i, err)
		}

		nft, info, err := MintStandardNFT(ctx, launch, StandardNFT{
			Metadata:            item.Metadata,
			MetadataUpdaterHash: batch.MetadataUpdaterHash,
			RoyaltyPuzzleHash:   item.RoyaltyPuzzleHash,
			RoyaltyBasisPoints:  item.RoyaltyBasisPoints,
			SyntheticKey:        batch.SyntheticKey,
			OwnerPuzzleHash:     item.OwnerPuzzleHash,
			Owner:               batch.Owner,
		})
		if err != nil {
			return BulkMint{}, fmt.Errorf("item %d: %w", i, err)
		}

		spends := newChainedSpend()
		spends.Extend(intermediate)
		spends.Extend(nft)

		mint.CoinSpends = append(mint.CoinSpends, spends.CoinSpends...)
		mint.Outputs = append(mint.Outputs, MintOutput{
			LauncherID:       launch.LauncherID(),
			ParentConditions: spends.ParentConditions,
			Info:             info,
		})
		ledger.Merge(spends.Ledger)
	}

	ledger.Observe(batch.ParentCoinID, batch.ParentPuzzleHash, mint.ParentConditions())
	if err := ledger.Verify(); err != nil {
		return BulkMint{}, err
	}
	mint.Ledger = ledger
	return mint, nil
}
