/*
Package main is the entry point for the game-hub CLI.

game-hub serves the DapsiGames catalog: an HTTP API for browsing and
searching educational games, a persisted favorites/recents layer, mock
authentication with a leaderboard, and an offline-capable asset cache.

Usage:
  game-hub [command]

Available Commands:
  serve       Run the catalog HTTP server
  list        List games in the catalog
  search      Search the game catalog
  warm        Warm the offline cache
  bench       Benchmark catalog search
  version     Print version information
  help        Help about any command

Examples:
  # Run the API server on the configured address
  game-hub serve

  # List all logic games
  game-hub list --category logic

  # Ranked full-text search
  game-hub search memry --ranked
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dapsigames/game-hub/internal/cli"
	"github.com/dapsigames/game-hub/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "game-hub",
		Short: "DapsiGames catalog server and tools",
		Long: `game-hub is the backend for the DapsiGames educational game catalog.

It serves the game catalog over HTTP with substring and ranked search,
tracks favorites and recently played games with durable persistence,
provides mock authentication with a global leaderboard, and keeps an
offline cache of pages, static assets, and API responses.`,
		Version: version.GetVersion(),
	}

	rootCmd.AddCommand(cli.NewServeCmd())
	rootCmd.AddCommand(cli.NewListCmd())
	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewWarmCmd())
	rootCmd.AddCommand(cli.NewBenchCmd())
	rootCmd.AddCommand(cli.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
