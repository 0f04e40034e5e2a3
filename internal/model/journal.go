package model

import "time"

// BundleRecord is a journal row for an assembled spend bundle.
type BundleRecord struct {
	Network    Network
	BundleID   Bytes32
	Kind       string
	CoinSpends uint32
	Inputs     uint64
	Change     uint64
	CreatedAt  time.Time
}

// MintRecord is a journal row for one minted NFT.
type MintRecord struct {
	Network            Network
	BundleID           Bytes32
	LauncherID         Bytes32
	CoinID             Bytes32
	PuzzleHash         Bytes32
	P2PuzzleHash       Bytes32
	MetadataHash       Bytes32
	RoyaltyPuzzleHash  Bytes32
	RoyaltyBasisPoints uint16
	Amount             uint64
	CreatedAt          time.Time
}

// JournalEntry groups the rows written for one bundle.
type JournalEntry struct {
	Bundle BundleRecord
	Mints  []MintRecord
}
