// Package testutil holds shared fixtures: a valid config manager and stub
// engine adapters for pipeline and server tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/leonardotrapani/voicelab/internal/config"
	"github.com/leonardotrapani/voicelab/internal/pipeline"
)

// TestConfig returns a valid configuration for testing.
func TestConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Providers = map[string]config.ProviderConfig{
		"openai": {APIKey: "test-api-key"},
	}
	return cfg
}

// NewManager builds a config manager on an absent file so defaults apply,
// with the API key satisfied from the environment.
func NewManager(t *testing.T) *config.Manager {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "test-api-key")

	m, err := config.NewManager(filepath.Join(t.TempDir(), "voicelab.toml"))
	if err != nil {
		t.Fatalf("testutil: NewManager: %v", err)
	}
	return m
}

// StubTranscriber returns fixed engine output.
type StubTranscriber struct {
	Text string
	Err  error
}

func (s *StubTranscriber) Transcribe(_ context.Context, _, _ string) (string, error) {
	return s.Text, s.Err
}

// StubTranslator returns fixed engine output.
type StubTranslator struct {
	Text string
	Err  error
}

func (s *StubTranslator) Translate(_ context.Context, _, _ string) (string, error) {
	return s.Text, s.Err
}

// StubSummarizer returns fixed engine output.
type StubSummarizer struct {
	Text string
	Err  error
}

func (s *StubSummarizer) Summarize(_ context.Context, _ string) (string, error) {
	return s.Text, s.Err
}

// NewService wires stub adapters into a real pipeline service backed by a
// temp audio store.
func NewService(t *testing.T, tr pipeline.Transcriber, tl pipeline.Translator, sm pipeline.Summarizer) *pipeline.Service {
	t.Helper()

	store, err := pipeline.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("testutil: NewStore: %v", err)
	}
	return pipeline.NewService(tr, tl, sm, store, pipeline.Timeouts{
		Transcription: 10 * time.Second,
		Translation:   10 * time.Second,
		Summarization: 10 * time.Second,
	})
}
