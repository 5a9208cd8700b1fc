package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game of 2048.

Controls (defaults, see config):
  Arrows/WASD/HJKL  - Slide tiles
  Z/U               - Undo last move (one step)
  R                 - Restart
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Finished games are recorded in the scores database.

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file
	logger, logCloser, err := logging.OpenFile(config.ExpandPath(cfg.Logging.File), cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		logger = logging.Discard()
	} else {
		defer logCloser.Close()
	}

	game := t2048.New(cfg.Runtime(seed()))
	game.SetLogger(logger)

	// Open score storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("storage unavailable", "path", cfg.Storage.DBPath, "err", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting game", "db", cfg.Storage.DBPath)

	// Run the game
	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("tui failed", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
