// breakout is a brick-breaking game with a terminal and a desktop frontend.
//
// Usage:
//
//	breakout play              - Play in the terminal
//	breakout play -f desktop   - Play in a window
//	breakout levels            - List available levels
//	breakout scores [level]    - Show high scores
//	breakout scoreboard        - Browse high scores interactively
//	breakout frontends         - List available frontends
//	breakout assets            - List textures and shaders
//
// Global flags:
//
//	--config <path>      - Game config YAML
//	--difficulty <name>  - easy, normal or hard
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.breakout/scores.db)
//	--levels <dir>       - Load levels from a directory instead of the built-in set
//	--assets <dir>       - Override built-in textures and shaders
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/levels"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-breakout/internal/platform/desktop"
	_ "github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLevels     string
	flagAssets     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal or a window",
	Long: `Breakout is a brick-breaking game. Bounce the ball off the paddle,
clear every breakable brick and catch the power-ups that fall out of them.

Available commands:
  play        - Play a level
  levels      - Show all available levels
  scores      - View high scores
  scoreboard  - Browse high scores interactively
  frontends   - Show the available frontends
  assets      - Show the textures and shaders in use

Examples:
  breakout play
  breakout play --level 3 --difficulty hard
  breakout play --frontend desktop
  breakout scores 01-standard`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory of texture and shader overrides")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(assetsCmd)
}

// newLogger builds the process logger. Without --log-file the fallback
// writer is used, since the terminal frontend owns stdout.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig loads the game config and applies the difficulty preset.
func loadConfig() (config.BreakoutConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// loadLevels loads the --levels directory, or the built-in levels.
func loadLevels() ([]levels.Level, error) {
	return levels.NewLoader(flagLevels).LoadAll()
}
