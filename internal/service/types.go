package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	JournalRepository interface {
		InsertBundles(ctx context.Context, bundles []model.BundleRecord) error
		InsertMints(ctx context.Context, mints []model.MintRecord) error
	}
	Journal interface {
		Write(ctx context.Context, entry model.JournalEntry) error
	}
	MintMetrics interface {
		ObserveBuild(err error, items int, started time.Time)
		ObserveCoinSelection(coins int)
	}
	VerifyMetrics interface {
		ObserveBundle(err error, started time.Time)
		ObserveLayers(layers string)
	}
)
