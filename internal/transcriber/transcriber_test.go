package transcriber

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sashabaranov/go-openai"
)

// stubAdapter returns canned engine output for wrapper tests.
type stubAdapter struct {
	text     string
	err      error
	language string // records the hint the wrapper passed down
}

func (s *stubAdapter) Transcribe(_ context.Context, _, language string) (string, error) {
	s.language = language
	return s.text, s.err
}

func TestTranscribe(t *testing.T) {
	tests := []struct {
		name     string
		engine   string
		expected string
	}{
		{
			name:     "plain text passes through",
			engine:   "hello world",
			expected: "hello world",
		},
		{
			name:     "output is trimmed",
			engine:   "  hello world \n",
			expected: "hello world",
		},
		{
			name:     "corrections applied",
			engine:   "what is the sub date",
			expected: "what is the update",
		},
		{
			name:     "empty output becomes sentinel",
			engine:   "",
			expected: NoSpeechSentinel,
		},
		{
			name:     "whitespace-only output becomes sentinel",
			engine:   "   \n\t ",
			expected: NoSpeechSentinel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := New(&stubAdapter{text: tc.engine})
			got, err := tr.Transcribe(context.Background(), "audio.wav", "en")
			if err != nil {
				t.Fatalf("Transcribe returned error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("Transcribe = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestTranscribeLanguageHint(t *testing.T) {
	tests := []struct {
		hint   string
		passed string
	}{
		{"en", "en"},
		{"auto", ""}, // auto means no hint, engine detects
		{"", ""},
	}

	for _, tc := range tests {
		stub := &stubAdapter{text: "ok"}
		tr := New(stub)
		if _, err := tr.Transcribe(context.Background(), "audio.wav", tc.hint); err != nil {
			t.Fatalf("Transcribe(%q) returned error: %v", tc.hint, err)
		}
		if stub.language != tc.passed {
			t.Errorf("hint %q passed to engine as %q, want %q", tc.hint, stub.language, tc.passed)
		}
	}
}

func TestTranscribeEngineError(t *testing.T) {
	engineErr := errors.New("model unavailable")
	tr := New(&stubAdapter{err: engineErr})

	_, err := tr.Transcribe(context.Background(), "audio.wav", "en")
	if !errors.Is(err, engineErr) {
		t.Fatalf("Transcribe error = %v, want wrapped %v", err, engineErr)
	}
}

func TestExtractText(t *testing.T) {
	t.Run("top-level text", func(t *testing.T) {
		resp := openai.AudioResponse{Text: "hello from the text field"}
		if got := extractText(resp); got != "hello from the text field" {
			t.Errorf("extractText = %q", got)
		}
	})

	t.Run("segments joined when text absent", func(t *testing.T) {
		raw := `{"task":"transcribe","text":"","segments":[{"id":0,"text":" first part "},{"id":1,"text":"second part"},{"id":2,"text":"  "}]}`
		var resp openai.AudioResponse
		if err := json.Unmarshal([]byte(raw), &resp); err != nil {
			t.Fatalf("unmarshal fixture: %v", err)
		}
		if got := extractText(resp); got != "first part second part" {
			t.Errorf("extractText = %q, want %q", got, "first part second part")
		}
	})

	t.Run("empty response", func(t *testing.T) {
		if got := extractText(openai.AudioResponse{}); got != "" {
			t.Errorf("extractText = %q, want empty", got)
		}
	})
}
