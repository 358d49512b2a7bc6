package summarizer

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/leonardotrapani/voicelab/internal/engine"
)

// OpenAIAdapter implements Adapter using chat completions.
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

func (a *OpenAIAdapter) Summarize(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", nil
	}

	model := a.config.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: BuildSystemPrompt(a.config.MaxLength, a.config.MinLength)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0, // deterministic decoding
	}

	start := time.Now()
	resp, err := a.engine.Client().CreateChatCompletion(ctx, req)
	duration := time.Since(start)

	if err != nil {
		logrus.Warnf("openai-summarizer: API call failed after %v: %v", duration, err)
		return "", fmt.Errorf("openai summarization: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai summarization: no response choices")
	}

	result := resp.Choices[0].Message.Content
	logrus.Debugf("openai-summarizer: summarized %d chars in %v", len(text), duration)
	return result, nil
}
