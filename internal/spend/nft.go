package spend

import (
	"fmt"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/conditions"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/driver"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
)

// NftInfo is everything needed to spend an NFT coin again.
type NftInfo struct {
	LauncherID          model.Bytes32
	Coin                model.Coin
	Proof               puzzles.Proof
	Metadata            clvm.Value
	MetadataUpdaterHash model.Bytes32
	CurrentOwner        *model.Bytes32
	RoyaltyPuzzleHash   model.Bytes32
	RoyaltyBasisPoints  uint16
	P2PuzzleHash        model.Bytes32
}

// InnerPuzzleHash is the hash of the state layer, the singleton's inner puzzle.
func (i NftInfo) InnerPuzzleHash(lib *puzzles.Library) model.Bytes32 {
	transfer := driver.RoyaltyTransferHash(lib.Hash(puzzles.NftRoyaltyTransfer), lib.SingletonStruct(i.LauncherID),
		i.RoyaltyPuzzleHash, i.RoyaltyBasisPoints)
	ownership := driver.OwnershipLayerHash(lib.Hash(puzzles.NftOwnershipLayer), i.CurrentOwner, transfer, i.P2PuzzleHash)
	return driver.StateLayerHash(lib.Hash(puzzles.NftStateLayer), i.Metadata.TreeHash(), i.MetadataUpdaterHash, ownership)
}

func (i NftInfo) PuzzleHash(lib *puzzles.Library) model.Bytes32 {
	return driver.SingletonPuzzleHash(lib.SingletonStruct(i.LauncherID), i.InnerPuzzleHash(lib))
}

// Layer builds the full layer stack around p2.
func (i NftInfo) Layer(lib *puzzles.Library, p2 driver.Layer) driver.SingletonLayer {
	transfer := driver.NewRoyaltyTransferLayer(lib, i.LauncherID, i.RoyaltyPuzzleHash, i.RoyaltyBasisPoints)
	ownership := driver.NewOwnershipLayer(lib, i.CurrentOwner, transfer, p2)
	state := driver.NewStateLayer(lib, i.Metadata, ownership)
	state.MetadataUpdaterHash = i.MetadataUpdaterHash
	return driver.NewSingletonLayer(lib, i.LauncherID, state)
}

// Child returns the info of the coin created when this NFT is spent to p2PuzzleHash
// with newOwner. The child's lineage proof references this coin exactly.
func (i NftInfo) Child(lib *puzzles.Library, p2PuzzleHash model.Bytes32, newOwner *model.Bytes32) NftInfo {
	child := i
	child.Proof = puzzles.LineageProof{
		ParentCoinInfo:  i.Coin.ParentCoinInfo,
		InnerPuzzleHash: i.InnerPuzzleHash(lib),
		Amount:          i.Coin.Amount,
	}
	child.CurrentOwner = newOwner
	child.P2PuzzleHash = p2PuzzleHash
	child.Coin = model.NewCoin(i.Coin.ID(), child.PuzzleHash(lib), i.Coin.Amount)
	return child
}

// SpendNFT spends the NFT coin through p2, which must hash to info.P2PuzzleHash.
func SpendNFT(ctx *driver.SpendContext, info NftInfo, p2 driver.Layer, p2Solution driver.Solution) (model.CoinSpend, error) {
	if got := p2.TreeHash(); got != info.P2PuzzleHash {
		return model.CoinSpend{}, fmt.Errorf("%w: p2 puzzle hashes to %s, nft expects %s", driver.ErrStructuralMismatch, got, info.P2PuzzleHash)
	}
	layer := info.Layer(ctx.Library(), p2)
	solution := driver.SingletonSolution{
		Proof:  info.Proof,
		Amount: info.Coin.Amount,
		Inner:  driver.StateSolution{Inner: driver.OwnershipSolution{Inner: p2Solution}},
	}
	cs, err := driver.Spend(ctx, info.Coin, layer, solution)
	if err != nil {
		return model.CoinSpend{}, fmt.Errorf("nft spend of %s: %w", info.LauncherID, err)
	}
	return cs, nil
}

// EveNFT describes the NFT a launcher is spent into.
type EveNFT struct {
	P2PuzzleHash        model.Bytes32
	Metadata            clvm.Value
	MetadataUpdaterHash model.Bytes32
	RoyaltyPuzzleHash   model.Bytes32
	RoyaltyBasisPoints  uint16
}

// MintEveNFT spends the launcher into an eve NFT without an owner. The eve puzzle
// hash is computed from the shortcut hash formulas, never by building the puzzle.
func MintEveNFT(ctx *driver.SpendContext, launch LaunchSingleton, eve EveNFT) (ChainedSpend, NftInfo, error) {
	info := NftInfo{
		LauncherID:          launch.LauncherID(),
		Metadata:            eve.Metadata,
		MetadataUpdaterHash: eve.MetadataUpdaterHash,
		RoyaltyPuzzleHash:   eve.RoyaltyPuzzleHash,
		RoyaltyBasisPoints:  eve.RoyaltyBasisPoints,
		P2PuzzleHash:        eve.P2PuzzleHash,
		Proof: puzzles.EveProof{
			ParentCoinInfo: launch.Coin().ParentCoinInfo,
			Amount:         launch.Coin().Amount,
		},
	}

	chained, eveCoin, err := launch.Finish(ctx, info.InnerPuzzleHash(ctx.Library()), clvm.Nil)
	if err != nil {
		return ChainedSpend{}, NftInfo{}, err
	}
	info.Coin = eveCoin
	return chained, info, nil
}

// DIDOwner identifies the identity singleton an NFT is assigned to.
type DIDOwner struct {
	LauncherID      model.Bytes32
	InnerPuzzleHash model.Bytes32
}

// PuzzleHash is the identity singleton's full puzzle hash, the origin of its puzzle
// announcements.
func (d DIDOwner) PuzzleHash(lib *puzzles.Library) model.Bytes32 {
	return driver.SingletonPuzzleHash(lib.SingletonStruct(d.LauncherID), d.InnerPuzzleHash)
}

// StandardNFT describes an NFT minted to the standard puzzle of SyntheticKey and then
// sent to OwnerPuzzleHash. Zero hashes take defaults: the library's metadata updater,
// and the minter's own puzzle hash for royalties and owner.
type StandardNFT struct {
	Metadata            clvm.Value
	MetadataUpdaterHash model.Bytes32
	RoyaltyPuzzleHash   model.Bytes32
	RoyaltyBasisPoints  uint16
	SyntheticKey        model.PublicKey
	OwnerPuzzleHash     model.Bytes32
	Owner               *DIDOwner
}

// MintStandardNFT mints the eve NFT and spends it in the same bundle, transferring it
// to Owner when set. The returned info describes the NFT after the eve spend.
func MintStandardNFT(ctx *driver.SpendContext, launch LaunchSingleton, nft StandardNFT) (ChainedSpend, NftInfo, error) {
	lib := ctx.Library()
	p2 := driver.NewStandardLayer(lib, nft.SyntheticKey)
	p2PuzzleHash := p2.TreeHash()

	var zero model.Bytes32
	if nft.MetadataUpdaterHash == zero {
		nft.MetadataUpdaterHash = lib.Hash(puzzles.NftMetadataUpdater)
	}
	if nft.RoyaltyPuzzleHash == zero {
		nft.RoyaltyPuzzleHash = p2PuzzleHash
	}
	if nft.OwnerPuzzleHash == zero {
		nft.OwnerPuzzleHash = p2PuzzleHash
	}

	chained, info, err := MintEveNFT(ctx, launch, EveNFT{
		P2PuzzleHash:        p2PuzzleHash,
		Metadata:            nft.Metadata,
		MetadataUpdaterHash: nft.MetadataUpdaterHash,
		RoyaltyPuzzleHash:   nft.RoyaltyPuzzleHash,
		RoyaltyBasisPoints:  nft.RoyaltyBasisPoints,
	})
	if err != nil {
		return ChainedSpend{}, NftInfo{}, err
	}

	conds := []conditions.Condition{
		conditions.CreateCoin{
			PuzzleHash: nft.OwnerPuzzleHash,
			Amount:     info.Coin.Amount,
			Memos:      [][]byte{nft.OwnerPuzzleHash.Bytes()},
		},
	}
	var newOwner *model.Bytes32
	if nft.Owner != nil {
		did := nft.Owner.LauncherID
		didInner := nft.Owner.InnerPuzzleHash
		newOwner = &did
		transfer := conditions.NewNftOwner{NewOwner: &did, NewDIDInnerHash: &didInner}
		conds = append(conds, transfer)

		evePuzzleHash := info.Coin.PuzzleHash
		message := transfer.AnnouncementMessage()
		launcherID := info.LauncherID

		// The ownership layer announces the transfer and requires the identity to
		// announce the launcher id; the identity's spend does the reverse.
		chained.Ledger.CreatePuzzleAnnouncement(evePuzzleHash, message)
		chained.Ledger.AssertPuzzleAnnouncement(conditions.PuzzleAnnouncementID(nft.Owner.PuzzleHash(lib), launcherID[:]))
		chained.ParentConditions = append(chained.ParentConditions,
			conditions.CreatePuzzleAnnouncement{Message: launcherID.Bytes()},
			conditions.AssertPuzzleAnnouncement{AnnouncementID: conditions.PuzzleAnnouncementID(evePuzzleHash, message)},
		)
	}

	cs, err := SpendNFT(ctx, info, p2, driver.StandardConditions(conditions.List(conds...)))
	if err != nil {
		return ChainedSpend{}, NftInfo{}, err
	}
	chained.CoinSpends = append(chained.CoinSpends, cs)
	chained.Ledger.Observe(info.Coin.ID(), info.Coin.PuzzleHash, conds)

	return chained, info.Child(lib, nft.OwnerPuzzleHash, newOwner), nil
}
