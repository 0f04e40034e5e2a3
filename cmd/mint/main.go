package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/metrics"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/puzzles"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/repository/clickhouse"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/service"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	LibraryDir    string        `long:"library-dir" env:"MINT_LIBRARY_DIR" description:"directory with the serialized puzzle library (<name>.hex)" required:"true"`
	Request       string        `long:"request" env:"MINT_REQUEST" description:"path to the mint request JSON, - for stdin" default:"-"`
	Output        string        `long:"output" env:"MINT_OUTPUT" description:"path for the mint result JSON, - for stdout" default:"-"`
	Network       model.Network `long:"network" env:"MINT_NETWORK" description:"network name" choice:"mainnet" choice:"testnet" default:"testnet"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"MINT_CLICKHOUSE_DSN" description:"ClickHouse DSN of the mint journal, journal is disabled when empty"`
	MetricsAddr   string        `long:"metrics-addr" env:"MINT_METRICS_ADDR" description:"address for metrics server, disabled when empty"`
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("mint failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	lib, err := puzzles.LoadCanonicalLibrary(cfg.LibraryDir)
	if err != nil {
		return fmt.Errorf("load puzzle library: %w", err)
	}

	var req service.MintRequest
	if err := readJSON(cfg.Request, &req); err != nil {
		return fmt.Errorf("read mint request: %w", err)
	}

	var journal service.Journal
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("close repository", zap.Error(err))
			}
		}()

		writer := service.NewJournalWriter(repo, logger)
		writer.Start(ctx)
		defer writer.Stop()
		journal = writer
	}

	svc, err := service.NewMintService(lib, cfg.Network, journal, metrics.NewMint(cfg.Network), logger)
	if err != nil {
		return err
	}

	res, err := svc.Mint(ctx, req)
	if err != nil {
		return err
	}
	return writeJSON(cfg.Output, res)
}

func readJSON(path string, v any) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(path string, v any) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
