package narration

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
)

// Stock lines used when no narrator answers in time.
const (
	DefaultEncouragement = "The path is long, but your spirit is eternal, O Mighty Son of Vayu!"
	DefaultTaunt         = "You shall not pass, Vanara! Lanka's walls are unbreakable."
)

// DefaultTimeout bounds a single narration request.
const DefaultTimeout = 4 * time.Second

// Request describes one line the host wants.
type Request struct {
	ID          uint64 // Assigned by the requester to match deliveries
	LevelName   string
	Description string // Static fallback for encouragement
	Situation   Situation
	Taunt       bool // Ask for a demon taunt instead of encouragement
}

// Fallback wraps a Narrator with a deadline and stock text. Its methods never fail.
type Fallback struct {
	inner   Narrator
	timeout time.Duration
	logger  *log.Logger
}

// WithFallback wraps n. A nil narrator behaves like Static; a non-positive
// timeout uses DefaultTimeout; a nil logger discards.
func WithFallback(n Narrator, timeout time.Duration, logger *log.Logger) *Fallback {
	if n == nil {
		n = Static{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fallback{inner: n, timeout: timeout, logger: logger}
}

// Line resolves a request to display text.
func (f *Fallback) Line(ctx context.Context, req Request) string {
	if req.Taunt {
		return f.TauntLine(ctx, req.LevelName)
	}
	return f.Encourage(ctx, req.LevelName, req.Description, req.Situation)
}

// Encourage asks for advice, falling back to the level description, or the
// stock line when the description is empty.
func (f *Fallback) Encourage(ctx context.Context, levelName, description string, s Situation) string {
	fallback := description
	if fallback == "" {
		fallback = DefaultEncouragement
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	text, err := f.inner.Narrate(ctx, levelName, s)
	if err != nil || text == "" {
		f.report(err, "level", levelName, "situation", string(s))
		return fallback
	}
	return text
}

// TauntLine asks for a demon taunt, falling back to the stock taunt.
func (f *Fallback) TauntLine(ctx context.Context, levelName string) string {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	text, err := f.inner.Taunt(ctx, levelName)
	if err != nil || text == "" {
		f.report(err, "level", levelName, "taunt", true)
		return DefaultTaunt
	}
	return text
}

func (f *Fallback) report(err error, keyvals ...any) {
	if f.logger == nil {
		return
	}
	keyvals = append(keyvals, "error", err)
	switch {
	case errors.Is(err, ErrUnavailable):
		f.logger.Debug("narration unavailable, using fallback", keyvals...)
	case errors.Is(err, context.DeadlineExceeded):
		f.logger.Warn("narration timed out, using fallback", keyvals...)
	default:
		f.logger.Warn("narration failed, using fallback", keyvals...)
	}
}
