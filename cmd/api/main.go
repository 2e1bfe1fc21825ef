package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"vetcalc/internal/adapters/storage/leveldb"
	mem "vetcalc/internal/adapters/storage/memory"
	pg "vetcalc/internal/adapters/storage/postgres"
	"vetcalc/internal/platform/config"
	"vetcalc/internal/platform/logger"
	"vetcalc/internal/platform/metrics"
	"vetcalc/internal/ports/kvstore"
	"vetcalc/internal/router"
)

// @title VetCalc API
// @version 1.0
// @description Calculadora de dosis veterinarias y registro de vacunas.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vetcalc: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("closing store", map[string]any{"error": err})
		}
	}()

	var m *metrics.Collector
	if cfg.Metrics.Enabled {
		m = metrics.NewCollector("vetcalc")
	}

	r := router.NewRouter(router.Options{
		Store:   store,
		Logger:  log,
		Metrics: m,
		AppTag:  cfg.App.ExportTag(),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    srv.Addr,
			"storage": string(cfg.Storage.Driver),
			"metrics": cfg.Metrics.Enabled,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, sc config.StorageConfig) (kvstore.Store, error) {
	switch sc.Driver {
	case config.DriverLevelDB:
		s, err := leveldb.OpenFile(sc.LevelDBPath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverPostgres:
		db, err := pg.Open(sc.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("opening postgres: %w", err)
		}
		s := pg.NewKVStore(db)
		if err := s.Migrate(ctx); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("migrating postgres: %w", err)
		}
		return s, nil
	default:
		return mem.NewKVStore(), nil
	}
}
