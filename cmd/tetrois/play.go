package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkraev/tetrois/internal/config"
	"github.com/mkraev/tetrois/internal/core"
	"github.com/mkraev/tetrois/internal/game"
	"github.com/mkraev/tetrois/internal/platform/tui"
	"github.com/mkraev/tetrois/internal/registry"
	"github.com/mkraev/tetrois/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session in the current terminal.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  S/Down     - Soft drop
  W/Up       - Rotate
  Space      - Hard drop
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  tetrois play
  tetrois play --seed 42
  tetrois play --config ./my-tetrois.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply gameplay configuration before creating the game
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	game.SetTuning(game.Tuning{
		DropStartMS:  gameCfg.Timing.DropStartMS,
		DropStepMS:   gameCfg.Timing.DropStepMS,
		DropMinMS:    gameCfg.Timing.DropMinMS,
		LineScores:   gameCfg.Scoring.LineScores,
		GhostEnabled: gameCfg.UI.Ghost,
	})

	// Create game instance
	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Headless single-frame mode for rendering smoke tests
	if os.Getenv(tui.RenderOnceEnv) != "" {
		fmt.Print(tui.RenderOnce(g, store, cfg))
		if store != nil {
			store.Close()
		}
		return
	}

	// Run the game
	runErr := tui.Run(g, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
