package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/metrics"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/repository/clickhouse"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/service"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	LibraryDir    string        `long:"library-dir" env:"VERIFY_LIBRARY_DIR" description:"directory with the serialized puzzle library (<name>.hex)" required:"true"`
	Bundle        string        `long:"bundle" env:"VERIFY_BUNDLE" description:"path to the spend bundle JSON, - for stdin" default:"-"`
	Network       model.Network `long:"network" env:"VERIFY_NETWORK" description:"network name" choice:"mainnet" choice:"testnet" default:"testnet"`
	Workers       int           `long:"workers" env:"VERIFY_WORKERS" description:"coin spends parsed concurrently" default:"4"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"VERIFY_CLICKHOUSE_DSN" description:"ClickHouse DSN of the mint journal, used with --launcher-id"`
	LauncherID    string        `long:"launcher-id" env:"VERIFY_LAUNCHER_ID" description:"launcher id to look up in the mint journal"`
}

type output struct {
	Reports []service.SpendReport `json:"reports"`
	Mints   []model.MintRecord    `json:"mints,omitempty"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.LauncherID != "" && cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required for --launcher-id")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("verify failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	lib, err := puzzles.LoadCanonicalLibrary(cfg.LibraryDir)
	if err != nil {
		return fmt.Errorf("load puzzle library: %w", err)
	}

	bundle, err := readBundle(cfg.Bundle)
	if err != nil {
		return fmt.Errorf("read spend bundle: %w", err)
	}

	svc, err := service.NewVerifyService(lib, cfg.Network, cfg.Workers, metrics.NewVerify(cfg.Network), logger)
	if err != nil {
		return err
	}

	var out output
	if out.Reports, err = svc.Verify(ctx, bundle); err != nil {
		return err
	}

	if cfg.LauncherID != "" {
		if out.Mints, err = lookupLauncher(ctx, cfg); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func lookupLauncher(ctx context.Context, cfg config) ([]model.MintRecord, error) {
	launcherID, err := model.Bytes32FromHex(cfg.LauncherID)
	if err != nil {
		return nil, fmt.Errorf("parse launcher id: %w", err)
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return nil, fmt.Errorf("init repository: %w", err)
	}
	defer repo.Close()

	return repo.MintsByLauncher(ctx, cfg.Network, launcherID)
}

func readBundle(path string) (model.SpendBundle, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return model.SpendBundle{}, err
		}
		defer f.Close()
		r = f
	}

	var bundle model.SpendBundle
	if err := json.NewDecoder(r).Decode(&bundle); err != nil {
		return model.SpendBundle{}, err
	}
	return bundle, nil
}
