package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dapsigames/game-hub/internal/catalog"
	"github.com/dapsigames/game-hub/internal/config"
	"github.com/dapsigames/game-hub/internal/search"
)

// NewSearchCmd creates the 'search' command for querying the catalog.
func NewSearchCmd() *cobra.Command {
	var categoryFlag string
	var ranked bool
	var fuzz bool
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the game catalog",
		Long: `Search games by name and description.

By default a case-insensitive substring match is used. With --ranked,
results come from the full-text index ordered by relevance. With
--fuzzy, typo-tolerant matching is used instead.`,
		Example: `  game-hub search fractions
  game-hub search puzzle --category logic
  game-hub search memry --ranked
  game-hub search vocabulry --fuzzy`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(strings.Join(args, " "), categoryFlag, ranked, fuzz, limit)
		},
	}

	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "all", "Restrict to one category")
	cmd.Flags().BoolVarP(&ranked, "ranked", "r", false, "Rank results by relevance")
	cmd.Flags().BoolVarP(&fuzz, "fuzzy", "f", false, "Typo-tolerant matching")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum results with --ranked or --fuzzy")

	return cmd
}

func runSearch(query, categoryFlag string, ranked, fuzz bool, limit int) error {
	cfg, err := config.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	selected, err := catalog.ParseCategory(categoryFlag)
	if err != nil {
		return err
	}

	engine := search.NewEngine(cat)

	if fuzz {
		tools := engine.SearchRanked(query, limit)
		if len(tools) == 0 {
			fmt.Println("No results.")
			return nil
		}
		for _, t := range tools {
			fmt.Printf("  %-28s [%s] %s\n", t.ID, t.Category, t.Name)
		}
		return nil
	}

	if ranked {
		indexer, err := search.NewIndexer()
		if err != nil {
			return fmt.Errorf("failed to create search index: %w", err)
		}
		defer indexer.Close()
		if err := indexer.IndexCatalog(cat); err != nil {
			return fmt.Errorf("failed to index catalog: %w", err)
		}

		results, err := indexer.Search(query, selected, limit)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No results.")
			return nil
		}
		for _, r := range results {
			fmt.Printf("  %.3f  %-28s %s\n", r.Score, r.ID, r.Name)
		}
		return nil
	}

	tools := engine.SearchAndFilter(query, selected)
	if len(tools) == 0 {
		fmt.Println("No results.")
		return nil
	}
	for _, t := range tools {
		fmt.Printf("  %-28s [%s] %s\n", t.ID, t.Category, t.Name)
	}
	return nil
}
