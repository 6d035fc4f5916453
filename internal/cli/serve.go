package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dapsigames/game-hub/internal/account"
	"github.com/dapsigames/game-hub/internal/catalog"
	"github.com/dapsigames/game-hub/internal/config"
	"github.com/dapsigames/game-hub/internal/prefs"
	"github.com/dapsigames/game-hub/internal/search"
	"github.com/dapsigames/game-hub/internal/server"
	"github.com/dapsigames/game-hub/internal/store"
)

// NewServeCmd creates the 'serve' command for running the API server.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the game-hub API server",
		Long: `Start the game-hub HTTP API server.

The server exposes the catalog, ranked search, the mock auth workflow,
and the leaderboard under /api, backed by the local preference store.`,
		Example: `  # Run with defaults (:3001)
  game-hub serve

  # Override the listen address
  GAMEHUB_ADDR=:8080 game-hub serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	return cmd
}

func runServe() error {
	cfg, err := config.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	st := store.New(cfg.StorePath(), log)
	if err := st.Init(); err != nil {
		// The store degrades to empty reads; the server still works.
		log.Warn("preference store unavailable", zap.Error(err))
	}
	defer st.Close()

	engine := search.NewEngine(cat)
	indexer, err := search.NewIndexer()
	if err != nil {
		return fmt.Errorf("failed to create search index: %w", err)
	}
	defer indexer.Close()
	if err := indexer.IndexCatalog(cat); err != nil {
		return fmt.Errorf("failed to index catalog: %w", err)
	}

	manager := prefs.NewManager(st, log)
	unsubscribe := manager.Subscribe(func(e prefs.Event) {
		log.Debug("preferences changed",
			zap.String("kind", string(e.Kind)), zap.String("action", e.Action))
	})
	defer unsubscribe()

	secret := []byte(cfg.TokenSecret)
	accounts := account.NewMock(st, secret, log)
	board := account.NewLeaderboard(st, log)

	srv := server.New(cat, engine, indexer, manager, accounts, board, secret, log)
	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Handler(),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := make(chan error, 1)
	go func() {
		log.Info("serving", zap.String("addr", cfg.Addr), zap.Int("games", cat.Len()))
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		log.Info("received signal, shutting down gracefully", zap.Stringer("signal", sig))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		log.Info("shutdown complete")
		return nil

	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}

// loadCatalog returns the configured YAML catalog or the built-in one.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.CatalogPath)
}

// newLogger builds the process logger at the configured level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	log, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}
