package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/frame-arcade/internal/platform/tui"
	"github.com/vovakirdan/frame-arcade/internal/registry"
	"github.com/vovakirdan/frame-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Mouse          - Steer the paddle / move the build cursor
  Click          - Place a tower on the clicked tile
  A/D, Left/Right - Move paddle or cursor, turn the snake
  W/S, Up/Down   - Move cursor, turn the snake
  Enter/Space    - Place a tower at the cursor
  P              - Pause
  R              - Restart (after game over)
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - More lives and a wider paddle, a full build meter at start, or a slower snake
  normal - Config values as written
  hard   - Fewer lives and a faster ball, smaller kill rewards, or a faster snake
  fixed  - Tower defense only: no difficulty progression

Examples:
  arcade play breakout
  arcade play breakout_classic --difficulty easy
  arcade play defense --config ./my-defense.yaml
  arcade play defense_weakest --difficulty hard
  arcade play snake --difficulty easy --seed 7`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fail("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	game, err := newGame(gameID, flagConfig)
	if err != nil {
		fail("%v", err)
	}

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

// newGame creates a registered game and applies the config file and
// difficulty preset when the game supports them.
func newGame(gameID, configPath string) (registry.Game, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return nil, fmt.Errorf("creating game: %w", err)
	}

	if c, ok := game.(registry.Configurable); ok {
		if err := c.Configure(configPath, flagDifficulty); err != nil {
			return nil, fmt.Errorf("loading %s config: %w", gameID, err)
		}
	}
	logger.Debug("game created", "game", gameID, "config", configPath, "difficulty", flagDifficulty)
	return game, nil
}

// openStore opens the scores database. Games keep running without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
