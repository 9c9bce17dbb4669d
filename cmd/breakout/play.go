package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/resources"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagFrontend string
	flagLevel    int
	flagMenu     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play breakout",
	Long: `Start playing breakout.

Controls:
  A/D, Left/Right  - Move the paddle
  Space            - Launch the ball
  W/S, Up/Down     - Choose a level (menu)
  Enter            - Start / continue
  P/Esc            - Pause
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower ball, wider paddle, more power-ups
  normal - Default settings
  hard   - Faster ball, narrower paddle, fewer power-ups

Examples:
  breakout play
  breakout play --menu
  breakout play --level 2 --difficulty easy
  breakout play --frontend desktop
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", tui.FrontendID, "Frontend: terminal or desktop")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level number to start on (1-based, 0 = config default)")
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Start in the level selection menu")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Check if frontend exists
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q (run 'breakout frontends' to see available frontends)", flagFrontend)
	}
	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	// Bubble Tea owns the terminal, so its logs go nowhere unless --log-file is set
	var fallback io.Writer = os.Stderr
	if flagFrontend == tui.FrontendID {
		fallback = io.Discard
	}
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagLevel > 0 {
		cfg.Gameplay.StartLevel = flagLevel - 1
	}
	if flagMenu {
		cfg.Gameplay.StartInMenu = true
	}

	defs, err := loadLevels()
	if err != nil {
		return fmt.Errorf("loading levels: %w", err)
	}

	res, err := resources.NewDefaultManager(flagAssets, logger)
	if err != nil {
		return fmt.Errorf("loading assets: %w", err)
	}

	// Get terminal size early for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game, err := breakout.New(cfg, defs, res,
		breakout.WithSeed(runtime.Seed),
		breakout.WithLogger(logger),
		breakout.WithRunHook(saveRunHook(store, logger)),
	)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting", "frontend", frontend.ID(), "level", game.LevelID(), "seed", runtime.Seed)
	err = frontend.Run(registry.Session{
		Game:      game,
		Resources: res,
		Runtime:   runtime,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// saveRunHook records finished runs. A nil store drops them.
func saveRunHook(store *storage.Store, logger *log.Logger) func(breakout.RunResult) {
	return func(r breakout.RunResult) {
		if store == nil {
			return
		}
		best, err := store.HighScore(r.Level)
		if err != nil {
			logger.Warn("could not read high score", "level", r.Level, "err", err)
		}

		outcome := storage.OutcomeLost
		if r.Cleared {
			outcome = storage.OutcomeCleared
		}
		_, err = store.SaveRun(storage.Run{
			Level:    r.Level,
			Score:    r.Score,
			Bricks:   r.Bricks,
			Outcome:  outcome,
			Duration: float64(r.Duration),
		})
		if err != nil {
			logger.Warn("could not save run", "level", r.Level, "err", err)
			return
		}
		if r.Score > best {
			logger.Info("new high score", "level", r.Level, "score", r.Score, "previous", best)
		}
	}
}
