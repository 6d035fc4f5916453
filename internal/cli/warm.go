package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dapsigames/game-hub/internal/cache"
	"github.com/dapsigames/game-hub/internal/config"
)

// NewWarmCmd creates the 'warm' command: run the offline cache
// lifecycle (activate, then precache) against the configured upstream.
func NewWarmCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Warm the offline cache",
		Long: `Evict stale cache buckets and pre-populate the static bucket with
the precache manifest (root document, web manifest, robots, sitemap)
fetched from the configured upstream.`,
		Example: `  game-hub warm
  GAMEHUB_UPSTREAM=https://dapsigames.com game-hub warm`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWarm(timeout)
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 30*time.Second, "Overall fetch timeout")
	return cmd
}

func runWarm(timeout time.Duration) error {
	cfg, err := config.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	buckets, err := cache.OpenBucketStore(cfg.CachePath(), log)
	if err != nil {
		return err
	}
	defer buckets.Close()

	controller := cache.NewController(buckets, nil, log)

	if err := controller.Activate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := controller.Install(ctx, cfg.Upstream); err != nil {
		return fmt.Errorf("precache failed: %w", err)
	}

	log.Info("cache warmed",
		zap.String("upstream", cfg.Upstream),
		zap.Int("assets", len(cache.PrecacheManifest)))
	fmt.Printf("Cached %d assets from %s\n", len(cache.PrecacheManifest), cfg.Upstream)
	return nil
}
