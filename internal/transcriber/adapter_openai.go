package transcriber

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/leonardotrapani/voicelab/internal/engine"
)

// OpenAIAdapter implements Adapter against the OpenAI Whisper API (or any
// OpenAI-compatible endpoint via the engine handle's base URL).
type OpenAIAdapter struct {
	engine *engine.Handle
	config Config
}

func NewOpenAIAdapter(h *engine.Handle, config Config) *OpenAIAdapter {
	return &OpenAIAdapter{
		engine: h,
		config: config,
	}
}

func (a *OpenAIAdapter) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	req := openai.AudioRequest{
		Model:       a.config.Model,
		FilePath:    audioPath,
		Language:    language,
		Temperature: a.config.Temperature,
		// Verbose JSON carries segment timestamps, which keeps the engine's
		// segmenter honest on long meeting audio.
		Format: openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []openai.TranscriptionTimestampGranularity{
			openai.TranscriptionTimestampGranularitySegment,
		},
	}

	start := time.Now()
	resp, err := a.engine.Client().CreateTranscription(ctx, req)
	duration := time.Since(start)

	if err != nil {
		logrus.Warnf("openai-transcriber: API call failed after %v: %v", duration, err)
		return "", fmt.Errorf("openai transcription: %w", err)
	}

	text := extractText(resp)
	logrus.Debugf("openai-transcriber: transcribed %s in %v: %q", audioPath, duration, text)
	return text, nil
}

// extractText handles both result shapes the engine returns: a plain text
// field, or a structured segment list when the top-level text is absent.
func extractText(resp openai.AudioResponse) string {
	if strings.TrimSpace(resp.Text) != "" {
		return resp.Text
	}

	parts := make([]string, 0, len(resp.Segments))
	for _, seg := range resp.Segments {
		if s := strings.TrimSpace(seg.Text); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
