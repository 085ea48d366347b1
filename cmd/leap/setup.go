package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vanara-leap/internal/config"
	"github.com/vovakirdan/vanara-leap/internal/games/quest"
	"github.com/vovakirdan/vanara-leap/internal/narration"
)

// loadQuest applies the global flags to the quest package and loads the
// configuration once, so a bad file fails before the terminal is taken over.
func loadQuest() (config.QuestConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.QuestConfig{}, err
	}
	quest.SetConfigPath(flagConfig)
	quest.SetDifficultyPreset(preset)
	return quest.LoadConfig()
}

// exitOnError prints err and exits non-zero.
func exitOnError(what string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	os.Exit(1)
}

// newNarrator picks Gemini when an API key is set, the stock lines otherwise.
func newNarrator(cfg config.QuestConfig, logger *log.Logger) (narration.Narrator, time.Duration) {
	timeout := time.Duration(cfg.Narration.TimeoutMS) * time.Millisecond

	n, err := narration.FromEnv(context.Background(), cfg.Narration.Model)
	if err != nil {
		logger.Warn("narration backend unavailable, using stock lines", "error", err)
		return narration.Static{}, timeout
	}
	if _, ok := n.(narration.Static); ok {
		logger.Info("no API key set, using stock narration")
	} else {
		logger.Info("narration enabled", "model", cfg.Narration.Model)
	}
	return n, timeout
}

// openLogFile opens ~/.arcade/leap.log for appending. The terminal belongs
// to Bubble Tea during play, so logs go to a file.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "leap.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
