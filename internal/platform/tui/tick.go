// Package tui provides the Bubble Tea integration for the quest.
// It handles the terminal UI loop, key latching, narration requests and
// high score bookkeeping.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vanara-leap/internal/narration"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// narrationMsg carries a resolved narration line back into Update.
type narrationMsg struct {
	req  narration.Request
	text string
}

// narrateCmd resolves req off the tick path. The fallback bounds it with a
// deadline, so the command always returns.
func narrateCmd(f *narration.Fallback, metrics *Metrics, req narration.Request) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		text := f.Line(context.Background(), req)
		metrics.narrationResolved(req.Taunt, time.Since(start))
		return narrationMsg{req: req, text: text}
	}
}
