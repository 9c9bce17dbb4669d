package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top 10 runs for a level, or across all levels when
no level is given.

Examples:
  breakout scores
  breakout scores 01-standard
  breakout scores 01-standard --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var flagClear bool

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run for the level")
}

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse high scores interactively",
	Long:  `Opens a scoreboard with one tab per level. Use Left/Right to switch tabs.`,
	Args:  cobra.NoArgs,
	Run:   runScoreboard,
}

func runScores(cmd *cobra.Command, args []string) {
	level := ""
	title := "all levels"
	if len(args) == 1 {
		level = args[0]
		title = level
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if level == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a level")
			return
		}
		if err := store.ClearRuns(level); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared all runs for %s.\n", level)
		return
	}

	runs, err := store.TopRuns(level, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakout play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-12s  %-7s  %-6s  %s\n", "Rank", "Score", "Level", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-7s  %-6s  %s\n", "----", "-----", "-----", "------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-12s  %-7s  %-6s  %s\n",
			i+1, r.Score, r.Level, r.Outcome, fmt.Sprintf("%.0fs", r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if level == "" {
		return
	}
	stats, err := store.Stats(level)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Average: %.0f  Runs: %d  Cleared: %d\n",
			stats.HighScore, stats.AvgScore, stats.Runs, stats.Cleared)
	}
}

func runScoreboard(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Levels without a loadable definition still get a tab if they have runs
	defs, err := loadLevels()
	if err != nil {
		defs = nil
	}
	stored, err := store.Levels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing levels: %v\n", err)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	if err := tui.RunScoreboard(store, tui.ScoreboardTabs(defs, stored), width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
	}
}
