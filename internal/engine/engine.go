// Package engine holds the process-wide handle to the pretrained-model
// provider. The underlying client is created lazily on first use and shared by
// every adapter; initialization is guarded so concurrent first requests build
// it exactly once.
package engine

import (
	"sync"

	"github.com/sashabaranov/go-openai"
)

// Handle lazily initializes and caches the provider client.
type Handle struct {
	apiKey  string
	baseURL string

	once   sync.Once
	client *openai.Client
}

// New returns an uninitialized handle. baseURL may be empty to use the
// provider default; a non-empty value points the client at an OpenAI-compatible
// endpoint (self-hosted Whisper servers expose the same API).
func New(apiKey, baseURL string) *Handle {
	return &Handle{apiKey: apiKey, baseURL: baseURL}
}

// Client returns the shared provider client, creating it on first call.
func (h *Handle) Client() *openai.Client {
	h.once.Do(func() {
		if h.baseURL == "" {
			h.client = openai.NewClient(h.apiKey)
			return
		}
		cfg := openai.DefaultConfig(h.apiKey)
		cfg.BaseURL = h.baseURL
		h.client = openai.NewClientWithConfig(cfg)
	})
	return h.client
}
