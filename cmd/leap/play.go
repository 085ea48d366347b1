package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vanara-leap/internal/config"
	"github.com/vovakirdan/vanara-leap/internal/core"
	"github.com/vovakirdan/vanara-leap/internal/games/quest"
	"github.com/vovakirdan/vanara-leap/internal/narration"
	"github.com/vovakirdan/vanara-leap/internal/platform/tui"
	"github.com/vovakirdan/vanara-leap/internal/registry"
	"github.com/vovakirdan/vanara-leap/internal/storage"
)

var (
	flagLevel string
	flagWatch bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the Vanara Leap campaign.

Controls:
  ←/→ or A/D   - Run
  ↑/W          - Jump
  F            - Fly (drains prana)
  Space        - Strike with the mace
  P            - Pause (B/Esc while paused abandons the run)
  Enter        - Continue on menu and story screens
  R            - Retry after game over
  Q/Ctrl+C     - Quit

Set GEMINI_API_KEY to let Jambavan speak through Gemini; without it the
level descriptions and stock lines are used.

Difficulty options:
  easy   - Slower demons, half contact damage
  normal - Stock tuning
  hard   - Faster demons, double contact damage

Examples:
  leap play
  leap play --difficulty easy
  leap play --level l3
  leap play --config ./my-quest.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Start the campaign at this level id")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes (applied at the next level)")
}

func runPlay(cmd *cobra.Command, args []string) {
	quest.SetStartLevel(flagLevel)
	cfg, err := loadQuest()
	exitOnError("loading config", err)

	logger := log.New(io.Discard)
	if f, logErr := openLogFile(); logErr == nil {
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "leap",
		})
	}

	if flagWatch {
		path := config.ResolvePath(flagConfig)
		if path == "" {
			fmt.Fprintln(os.Stderr, "Warning: --watch needs a config file on disk; using embedded defaults without reload")
		} else {
			w, watchErr := config.NewWatcher(path)
			exitOnError("watching config", watchErr)
			defer w.Close()
			quest.SetConfigWatcher(w)
			logger.Info("watching config", "path", w.Path())
		}
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.DefaultConfig()
	rt.ScreenW, rt.ScreenH = width, height
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	game, err := registry.Create("quest")
	exitOnError("creating game", err)

	// Storage failures are not fatal; the score just won't persist.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	narrator, timeout := newNarrator(cfg, logger)

	runErr := tui.Run(game, rt, tui.Options{
		Store:     store,
		Narrator:  narration.WithFallback(narrator, timeout, logger.WithPrefix("narration")),
		Logger:    logger,
		HoldTicks: cfg.Input.HoldTicks,
	})

	if store != nil {
		store.Close()
	}

	exitOnError("running game", runErr)
}
