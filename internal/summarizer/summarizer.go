package summarizer

import (
	"context"
	"strings"
)

// ShortTextPrefix marks a summary that is the input returned verbatim because
// it was below the minimum length threshold.
const ShortTextPrefix = "Text summary: "

// Adapter is the raw summarization engine call.
type Adapter interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Config holds summarization engine settings. Lengths are in words, matching
// the engine's generation bounds.
type Config struct {
	Model     string
	MinWords  int // inputs shorter than this skip the engine
	MaxLength int
	MinLength int
}

// DefaultConfig returns the fixed summarization bounds.
func DefaultConfig() Config {
	return Config{
		Model:     "gpt-4o-mini",
		MinWords:  20,
		MaxLength: 100,
		MinLength: 25,
	}
}

// Summarizer wraps an engine adapter with the short-input short circuit:
// inputs below MinWords whitespace-delimited tokens are returned unchanged
// behind ShortTextPrefix, without touching the engine.
type Summarizer struct {
	adapter Adapter
	config  Config
}

func New(adapter Adapter, config Config) *Summarizer {
	return &Summarizer{
		adapter: adapter,
		config:  config,
	}
}

// Summarize returns a summary of text, or the prefixed input when it is too
// short to be worth summarizing. Engine errors are returned for the caller to
// encode.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if len(strings.Fields(text)) < s.config.MinWords {
		return ShortTextPrefix + text, nil
	}
	return s.adapter.Summarize(ctx, text)
}
