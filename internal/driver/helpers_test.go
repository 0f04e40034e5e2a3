package driver_test

import (
	"math/rand/v2"
	"testing"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/clvm"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/driver"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles/puzzletest"
)

func newContext(t *testing.T) *driver.SpendContext {
	t.Helper()
	return driver.NewSpendContext(puzzletest.Library(t))
}

func randomBytes32(r *rand.Rand) model.Bytes32 {
	var out model.Bytes32
	for i := range out {
		out[i] = byte(r.UintN(256))
	}
	return out
}

func randomKey(r *rand.Rand) model.PublicKey {
	var out model.PublicKey
	for i := range out {
		out[i] = byte(r.UintN(256))
	}
	return out
}

func randomMetadata(r *rand.Rand) clvm.Value {
	m := puzzles.DefaultNftMetadata()
	m.EditionNumber = r.Uint64N(100) + 1
	m.EditionTotal = m.EditionNumber + r.Uint64N(100)
	m.DataURIs = []string{"https://example.com/" + randomBytes32(r).String()}
	if r.IntN(2) == 0 {
		h := randomBytes32(r)
		m.DataHash = &h
	}
	return m.Value()
}

func randomNFT(r *rand.Rand, lib *puzzles.Library) driver.SingletonLayer {
	launcherID := randomBytes32(r)
	var owner *model.Bytes32
	if r.IntN(2) == 0 {
		did := randomBytes32(r)
		owner = &did
	}
	transfer := driver.NewRoyaltyTransferLayer(lib, launcherID, randomBytes32(r), uint16(r.UintN(10_001)))
	ownership := driver.NewOwnershipLayer(lib, owner, transfer, driver.NewStandardLayer(lib, randomKey(r)))
	state := driver.NewStateLayer(lib, randomMetadata(r), ownership)
	return driver.NewSingletonLayer(lib, launcherID, state)
}
