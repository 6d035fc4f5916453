package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dapsigames/game-hub/internal/catalog"
	"github.com/dapsigames/game-hub/internal/config"
)

// NewListCmd creates the 'list' command for listing catalog games.
func NewListCmd() *cobra.Command {
	var jsonOutput bool
	var categoryFlag string
	var popularOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List games in the catalog",
		Long:    `Display the game catalog, grouped by category.`,
		Example: `  game-hub list
  game-hub list --category math
  game-hub list --popular
  game-hub list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(jsonOutput, categoryFlag, popularOnly)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "all", "Restrict to one category")
	cmd.Flags().BoolVarP(&popularOnly, "popular", "p", false, "Show only popular games")

	return cmd
}

func runList(jsonOutput bool, categoryFlag string, popularOnly bool) error {
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

	tools := cat.ByCategory(selected)
	if popularOnly {
		filtered := tools[:0]
		for _, t := range tools {
			if t.IsPopular {
				filtered = append(filtered, t)
			}
		}
		tools = filtered
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tools)
	}

	if len(tools) == 0 {
		fmt.Println("No games found.")
		return nil
	}

	fmt.Printf("Games (%d):\n\n", len(tools))
	for _, c := range catalog.Categories() {
		if selected != catalog.CategoryAll && c != selected {
			continue
		}
		printed := false
		for _, t := range tools {
			if t.Category != c {
				continue
			}
			if !printed {
				fmt.Printf("%s\n", c.DisplayName())
				printed = true
			}
			marker := " "
			if t.IsPopular {
				marker = "*"
			}
			fmt.Printf("  %s %-28s %s\n", marker, t.ID, t.Description)
		}
		if printed {
			fmt.Println()
		}
	}
	return nil
}
