package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dapsigames/game-hub/internal/catalog"
	"github.com/dapsigames/game-hub/internal/config"
	"github.com/dapsigames/game-hub/internal/search"
)

// benchQueries is a representative query mix for timing runs.
var benchQueries = []string{
	"math",
	"memory",
	"puzzle",
	"vocabulary",
	"fraction",
	"chess tactics",
	"periodic table",
	"nonexistent-xyz",
}

// NewBenchCmd creates the 'bench' command: time the substring engine
// against the ranked index over the current catalog.
func NewBenchCmd() *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark catalog search",
		Long:  `Measure per-query latency of the substring engine and the full-text index.`,
		Example: `  game-hub bench
  game-hub bench --iterations 1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(iterations)
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "i", 200, "Iterations per query")
	return cmd
}

func runBench(iterations int) error {
	if iterations <= 0 {
		iterations = 200
	}

	cfg, err := config.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	engine := search.NewEngine(cat)
	indexer, err := search.NewIndexer()
	if err != nil {
		return err
	}
	defer indexer.Close()
	if err := indexer.IndexCatalog(cat); err != nil {
		return err
	}

	fmt.Printf("Catalog: %d games, %d iterations per query\n\n", cat.Len(), iterations)
	fmt.Printf("%-20s %14s %14s\n", "query", "engine", "index")

	for _, q := range benchQueries {
		engineTime := timeIt(iterations, func() {
			engine.SearchAndFilter(q, catalog.CategoryAll)
		})
		indexTime := timeIt(iterations, func() {
			indexer.Search(q, catalog.CategoryAll, 10)
		})
		fmt.Printf("%-20s %14s %14s\n", q, engineTime, indexTime)
	}
	return nil
}

// timeIt returns the mean duration of fn over n runs.
func timeIt(n int, fn func()) time.Duration {
	start := time.Now()
	for i := 0; i < n; i++ {
		fn()
	}
	return time.Since(start) / time.Duration(n)
}
