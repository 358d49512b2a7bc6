// Package translator wraps the translation capability behind a string-in /
// string-out adapter. The source language is always detected by the engine;
// only the target is pinned.
package translator

import "context"

// Adapter translates text into targetLang (ISO 639-1 code). Single attempt,
// no retry.
type Adapter interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Config holds translation engine settings.
type Config struct {
	Model string
}

// DefaultConfig returns the default translation engine settings.
func DefaultConfig() Config {
	return Config{
		Model: "gpt-4o-mini",
	}
}
