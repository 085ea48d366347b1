package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - run left
	ActionRight          // D, Right arrow - run right
	ActionJump           // W, Up arrow - jump
	ActionAttack         // Space - swing the mace
	ActionFly            // F, Shift+arrow - fly while energy lasts
	ActionPause          // P - pause/unpause
	ActionConfirm        // Enter - confirm on menu/story screens
	ActionBack           // B, Escape - abandon run / back to menu
	ActionRestart        // R - new run after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionFly:
		return "Fly"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the held-key snapshot a game reads once per simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are held this tick.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// DefaultHoldTicks is how long a press keeps a key held when the host
// never reports key releases.
const DefaultHoldTicks = 15

// KeyLatch is the write-many key-state table between input events and the
// simulation. Events may arrive any number of times between ticks; Frame is
// read exactly once at the start of each tick and the last write before it wins.
//
// Terminals only report presses (plus auto-repeat), so a pressed key stays
// held for holdTicks frames unless refreshed by a repeat or released explicitly.
type KeyLatch struct {
	holdTicks int
	remaining map[Action]int
}

// NewKeyLatch creates a latch that holds presses for holdTicks frames.
// Values below 1 fall back to DefaultHoldTicks.
func NewKeyLatch(holdTicks int) *KeyLatch {
	if holdTicks < 1 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyLatch{
		holdTicks: holdTicks,
		remaining: make(map[Action]int),
	}
}

// Press marks an action held for the latch's hold window.
// Pressing a direction releases the opposite one.
func (l *KeyLatch) Press(a Action) {
	switch a {
	case ActionLeft:
		delete(l.remaining, ActionRight)
	case ActionRight:
		delete(l.remaining, ActionLeft)
	}
	l.remaining[a] = l.holdTicks
}

// Tap marks an action held for exactly the next frame.
func (l *KeyLatch) Tap(a Action) {
	if l.remaining[a] < 1 {
		l.remaining[a] = 1
	}
}

// Release clears an action immediately.
func (l *KeyLatch) Release(a Action) {
	delete(l.remaining, a)
}

// Reset releases every action.
func (l *KeyLatch) Reset() {
	for k := range l.remaining {
		delete(l.remaining, k)
	}
}

// Frame returns the held snapshot for the coming tick and ages every hold by one.
func (l *KeyLatch) Frame() InputFrame {
	frame := NewInputFrame()
	for a, n := range l.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(l.remaining, a)
		} else {
			l.remaining[a] = n - 1
		}
	}
	return frame
}
