// tetrois is a terminal falling-block puzzle game.
//
// Usage:
//
//	tetrois                  - Play the game
//	tetrois play             - Same as above
//	tetrois serve            - Start SSH server for remote play
//	tetrois scores           - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetrois/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/mkraev/tetrois/internal/game"
)

const gameID = "tetrois"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetrois",
	Short: "Tetrois - A falling-block puzzle game for your terminal",
	Long: `Tetrois is a terminal-based falling-block puzzle game.

Stack the falling pieces, clear lines, and chase the high score.

Available commands:
  play     - Play the game (default when no command is given)
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tetrois
  tetrois play --seed 42
  tetrois serve --ssh :2222
  tetrois scores --board`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetrois/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
