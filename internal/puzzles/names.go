// Package puzzles holds the library of puzzle mods the wallet curries and the
// structural argument types those mods consume.
package puzzles

import "github.com/goodnatureofminers/smartcoin-wallet/internal/model"

// Name identifies a puzzle mod. It is also the file name stem when loading a library
// from disk.
type Name string

const (
	SingletonTopLayer       Name = "singleton_top_layer_v1_1"
	SingletonLauncher       Name = "singleton_launcher"
	NftStateLayer           Name = "nft_state_layer"
	NftOwnershipLayer       Name = "nft_ownership_layer"
	NftRoyaltyTransfer      Name = "nft_ownership_transfer_program_one_way_claim_with_royalties"
	NftIntermediateLauncher Name = "nft_intermediate_launcher"
	NftMetadataUpdater      Name = "nft_metadata_updater_default"
	StandardPuzzle          Name = "p2_delegated_puzzle_or_hidden_puzzle"
	SettlementPayments      Name = "settlement_payments"
)

// AllNames lists every mod a complete library carries.
var AllNames = []Name{
	SingletonTopLayer,
	SingletonLauncher,
	NftStateLayer,
	NftOwnershipLayer,
	NftRoyaltyTransfer,
	NftIntermediateLauncher,
	NftMetadataUpdater,
	StandardPuzzle,
	SettlementPayments,
}

// CanonicalHashes are the mainnet tree hashes of the compiled mods.
var CanonicalHashes = map[Name]model.Bytes32{
	SingletonTopLayer:       mustHash("7faa3253bfddd1e0decb0906b2dc6247bbc4cf608f58345d173adb63e8b47c9f"),
	SingletonLauncher:       mustHash("eff07522495060c066f66f32acc2a77e3a3e737aca8baea4d1a64ea4cdc13da9"),
	NftStateLayer:           mustHash("a04d9f57764f54a43e4030befb4d80026e870519aaa66334aef8304f5d0393c2"),
	NftOwnershipLayer:       mustHash("c5abea79afaa001b5427dfa0c8cf42ca6f38f5841b78f9b3c252733eb2de2726"),
	NftRoyaltyTransfer:      mustHash("025dee0fb1e9fa110302a7e9bfb6e381ca09618e2778b0184fa5c6b275cfce1f"),
	NftIntermediateLauncher: mustHash("7a32d2d9571d3436791c0ad3d7fcfdb9c43ace2b0f0ff13f98d29f0cc093f445"),
	NftMetadataUpdater:      mustHash("fe8a4b4e27a2e29a4d3fc7ce9d527adbcaccbab6ada3903ccf3ba9a769d2d78b"),
	StandardPuzzle:          mustHash("e9aaa49f45bad5c889b86ee3341550c155cfdd10c3a6757de618d20612fffd52"),
	SettlementPayments:      mustHash("cfbfdeed5c4ca2de3d0bf520b9cb4bb7743a359bd2e6a188d19ce7dffc21d3e7"),
}

// DefaultHiddenPuzzleHash is the hidden puzzle used when deriving synthetic keys.
var DefaultHiddenPuzzleHash = mustHash("711d6c4e32c92e53179b199484cf8c897542bc57f2b22582799f9d657eec4699")

func mustHash(s string) model.Bytes32 {
	h, err := model.Bytes32FromHex(s)
	if err != nil {
		panic(err)
	}
	return h
}
