package main

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/tylr-r/crossword-studio/engine"
)

const (
	defaultRegion = "us-central1"
	defaultModel  = "gemini-2.5-flash"
)

// GeminiClient wraps the Google GenAI client for VertexAI.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a client using Application Default Credentials.
// Set GOOGLE_APPLICATION_CREDENTIALS to the service account key file path.
func NewGeminiClient(ctx context.Context, projectID, region string) (*GeminiClient, error) {
	if region == "" {
		region = defaultRegion
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: defaultModel,
	}, nil
}

// Close does nothing and always returns nil; it exists so callers can defer
// it.
func (g *GeminiClient) Close() error {
	return nil
}

const suggestPrompt = `You are helping build a crossword puzzle.

Propose %d (word, clue) pairs for the theme %q.

Respond ONLY with JSON in this exact shape, no commentary or markdown:
[
  {"word": "EXAMPLE", "clue": "Short definition"},
  ...
]

Rules:
- Each word is a single word of 3 to 12 letters, A-Z only, no spaces or hyphens.
- Clues are short, one line, and never contain the word itself.
- Prefer common words a general audience knows.`

// SuggestEntries asks Gemini for themed (word, clue) pairs and runs the
// response through the engine normalizer, so callers only ever see entries
// the layout engine will accept.
func (g *GeminiClient) SuggestEntries(ctx context.Context, theme string, count int) ([]engine.Entry, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role: "user",
			Parts: []*genai.Part{
				{Text: fmt.Sprintf(suggestPrompt, count, theme)},
			},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.8)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	entries, err := parseSuggestions(text)
	if err != nil {
		return nil, fmt.Errorf("parse suggestions: %w\nraw response: %s", err, text)
	}
	return entries, nil
}

// parseSuggestions validates a model response through the normalizer.
func parseSuggestions(text string) ([]engine.Entry, error) {
	return engine.Normalize([]byte(text))
}
