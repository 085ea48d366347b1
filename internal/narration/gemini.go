package narration

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is used when the configuration names none.
const DefaultModel = "gemini-2.5-flash"

// Sampling settings for the two kinds of request.
const (
	encourageTemperature = 0.8
	encourageMaxTokens   = 50
	tauntTemperature     = 0.9
	tauntMaxTokens       = 40
)

// Gemini asks the Gemini API for narration.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini narrator for apiKey.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrUnavailable
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("narration: create gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// Narrate implements Narrator.
func (g *Gemini) Narrate(ctx context.Context, levelName string, s Situation) (string, error) {
	return g.generate(ctx, encouragementPrompt(levelName, s), encourageTemperature, encourageMaxTokens)
}

// Taunt implements Narrator.
func (g *Gemini) Taunt(ctx context.Context, levelName string) (string, error) {
	return g.generate(ctx, tauntPrompt(levelName), tauntTemperature, tauntMaxTokens)
}

func (g *Gemini) generate(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("narration: generate: %w", err)
	}

	text := cleanLine(resp.Text())
	if text == "" {
		return "", errors.New("narration: empty response")
	}
	return text, nil
}

// FromEnv returns a Gemini narrator when an API key is present in the
// environment, and Static otherwise.
func FromEnv(ctx context.Context, model string) (Narrator, error) {
	key := APIKeyFromEnv()
	if key == "" {
		return Static{}, nil
	}
	g, err := NewGemini(ctx, key, model)
	if err != nil {
		return Static{}, err
	}
	return g, nil
}
