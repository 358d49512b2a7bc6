package transcriber

import (
	"context"
	"strings"

	"github.com/leonardotrapani/voicelab/internal/corrector"
	"github.com/leonardotrapani/voicelab/internal/language"
)

// NoSpeechSentinel is returned when the engine produced no usable text.
const NoSpeechSentinel = "No speech detected."

// Adapter is the raw speech-to-text engine call. language is the source hint;
// empty means auto-detect.
type Adapter interface {
	Transcribe(ctx context.Context, audioPath, language string) (string, error)
}

// Config holds the decoding parameters passed to the engine. The threshold
// fields exist for OpenAI-compatible self-hosted servers that accept them; the
// hosted API only honors model, language, and temperature.
type Config struct {
	Model                     string
	ChunkLengthSec            int
	StrideLengthSec           int
	Temperature               float32
	NoSpeechThreshold         float64
	LogprobThreshold          float64
	CompressionRatioThreshold float64
	ConditionOnPreviousText   bool
}

// DefaultConfig returns the decoding parameters tuned for meeting audio:
// deterministic sampling plus thresholds that suppress hallucinated or
// repetitive segments.
func DefaultConfig() Config {
	return Config{
		Model:                     "whisper-1",
		ChunkLengthSec:            30,
		StrideLengthSec:           5,
		Temperature:               0.0,
		NoSpeechThreshold:         0.6,
		LogprobThreshold:          -1.0,
		CompressionRatioThreshold: 2.4,
		ConditionOnPreviousText:   true,
	}
}

// Transcriber wraps an engine adapter with transcript post-processing: trim,
// apply the corrector, and normalize empty output to the sentinel.
type Transcriber struct {
	adapter   Adapter
	corrector *corrector.Corrector
}

// New wraps adapter with the default correction table.
func New(adapter Adapter) *Transcriber {
	return &Transcriber{
		adapter:   adapter,
		corrector: corrector.New(),
	}
}

// Transcribe runs the engine on the audio at audioPath. languageHint may be an
// ISO 639-1 code or "auto"/"" for engine-side detection. The engine error, if
// any, is returned unwrapped for the caller to encode.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath, languageHint string) (string, error) {
	raw, err := t.adapter.Transcribe(ctx, audioPath, language.Normalize(languageHint))
	if err != nil {
		return "", err
	}

	text := t.corrector.Correct(strings.TrimSpace(raw))
	if text == "" {
		return NoSpeechSentinel, nil
	}
	return text, nil
}
