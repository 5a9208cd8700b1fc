// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play                 - Play interactively
//	t2048 scores               - Show recorded games
//	t2048 replay <commands...> - Apply commands headlessly and print the board
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible spawns
//	--db <path>          - Set database path (default from config: ~/.t2048/scores.db)
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - Override the configured log level
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Available commands:
  play     - Play a game
  scores   - View recorded games and statistics
  replay   - Run a command sequence without the UI

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 scores --limit 20
  t2048 replay --board "2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,0" left up`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig loads the configuration and applies global flag overrides.
// The result is validated again so bad flag values are rejected like bad
// file values.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid flags: %w", err)
	}

	return cfg, nil
}

// seed returns the --seed value, or a time-based seed when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
