// Package narration produces short advisory lines for the quest: Jambavan's
// encouragement at the start of a level, when health runs low and before the
// final battle, plus a demon's taunt when Lanka's guards are first engaged.
//
// A Narrator may be slow or fail. Hosts wrap it with WithFallback so every
// request resolves to some text within a deadline.
package narration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Situation is what the hero is facing when the line is requested.
type Situation string

const (
	SituationStart     Situation = "start"
	SituationLowHealth Situation = "low_health"
	SituationBossFight Situation = "boss_fight"
)

// Valid reports whether s is a known situation.
func (s Situation) Valid() bool {
	switch s {
	case SituationStart, SituationLowHealth, SituationBossFight:
		return true
	}
	return false
}

// ErrUnavailable is returned by narrators that have no backend to ask.
var ErrUnavailable = errors.New("narration: no backend configured")

// Narrator produces advisory text. Implementations must honor ctx cancellation.
type Narrator interface {
	Narrate(ctx context.Context, levelName string, s Situation) (string, error)
	Taunt(ctx context.Context, levelName string) (string, error)
}

// Static is a narrator with no backend. Every request fails with ErrUnavailable,
// which the fallback wrapper turns into the stock lines.
type Static struct{}

// Narrate implements Narrator.
func (Static) Narrate(ctx context.Context, levelName string, s Situation) (string, error) {
	return "", ErrUnavailable
}

// Taunt implements Narrator.
func (Static) Taunt(ctx context.Context, levelName string) (string, error) {
	return "", ErrUnavailable
}

// Environment variables checked for a Gemini API key, in order.
var apiKeyEnv = []string{"GEMINI_API_KEY", "API_KEY"}

// APIKeyFromEnv returns the first configured API key, or "".
func APIKeyFromEnv() string {
	for _, name := range apiKeyEnv {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

func encouragementPrompt(levelName string, s Situation) string {
	return fmt.Sprintf(
		"Speak as Jambavan, the aged and wise king of the bears in the Ramayana. "+
			"In 15 to 20 words, in an epic and ancient voice, counsel Hanuman, who is now in %s. "+
			"His situation: %s.",
		levelName, situationPhrase(s))
}

func tauntPrompt(levelName string) string {
	return fmt.Sprintf(
		"Speak as a Rakshasa guarding the road to %s. "+
			"Hurl one short, menacing taunt at Hanuman, at most 15 words.",
		levelName)
}

func situationPhrase(s Situation) string {
	switch s {
	case SituationLowHealth:
		return "he is badly wounded"
	case SituationBossFight:
		return "he approaches the final battle"
	default:
		return "he is setting out"
	}
}

// cleanLine trims model output down to a single displayable line.
func cleanLine(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"“”")
	s = strings.Join(strings.Fields(s), " ")
	return s
}
