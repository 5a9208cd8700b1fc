package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded games",
	Long: `Display the best recorded games and overall statistics.

Examples:
  t2048 scores
  t2048 scores --limit 25
  t2048 scores --interactive
  t2048 scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of games to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All scores cleared.")

	case flagInteractive:
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}

	default:
		if err := printScores(os.Stdout, store, flagLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}
}

// printScores writes the top scores and aggregate statistics as text.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - 2048")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 't2048 play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Tile", "Moves", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10s  %-6d  %-6d  %s\n", i+1, tui.FormatScore(entry.Score), entry.MaxTile, entry.Moves, dateStr)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.FormatStats(stats))

	return nil
}
