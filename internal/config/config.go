package config

import (
	"fmt"
	"os"
	"time"

	"github.com/leonardotrapani/voicelab/internal/language"
)

type Config struct {
	Server        ServerConfig              `toml:"server"`
	Transcription TranscriptionConfig       `toml:"transcription"`
	Translation   TranslationConfig         `toml:"translation"`
	Summarization SummarizationConfig       `toml:"summarization"`
	Storage       StorageConfig             `toml:"storage"`
	Log           LogConfig                 `toml:"log"`
	Providers     map[string]ProviderConfig `toml:"providers"`
}

type ServerConfig struct {
	Host         string        `toml:"host"`
	Port         int           `toml:"port"`
	CORSOrigins  string        `toml:"cors_origins"`
	BodyLimitMB  int           `toml:"body_limit_mb"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
}

type TranscriptionConfig struct {
	Provider                  string        `toml:"provider"`
	Model                     string        `toml:"model"`
	DefaultLanguage           string        `toml:"default_language"`
	ChunkLengthSec            int           `toml:"chunk_length_sec"`
	StrideLengthSec           int           `toml:"stride_length_sec"`
	Temperature               float32       `toml:"temperature"`
	NoSpeechThreshold         float64       `toml:"no_speech_threshold"`
	LogprobThreshold          float64       `toml:"logprob_threshold"`
	CompressionRatioThreshold float64       `toml:"compression_ratio_threshold"`
	ConditionOnPreviousText   bool          `toml:"condition_on_previous_text"`
	Timeout                   time.Duration `toml:"timeout"`
}

type TranslationConfig struct {
	Model   string        `toml:"model"`
	Timeout time.Duration `toml:"timeout"`
}

type SummarizationConfig struct {
	Model     string        `toml:"model"`
	MinWords  int           `toml:"min_words"`
	MaxLength int           `toml:"max_length"`
	MinLength int           `toml:"min_length"`
	Timeout   time.Duration `toml:"timeout"`
}

type StorageConfig struct {
	AudioDir string `toml:"audio_dir"`
}

type LogConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", "error"
	Format string `toml:"format"` // "text" or "json"
}

type ProviderConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

// ProviderAPIKey resolves the API key for a provider, falling back to the
// conventional environment variable when the config leaves it empty.
func (c *Config) ProviderAPIKey(name string) string {
	if p, ok := c.Providers[name]; ok && p.APIKey != "" {
		return p.APIKey
	}
	if name == "openai" {
		return os.Getenv("OPENAI_API_KEY")
	}
	return ""
}

// ProviderBaseURL resolves the base URL override for a provider, if any.
func (c *Config) ProviderBaseURL(name string) string {
	if p, ok := c.Providers[name]; ok {
		return p.BaseURL
	}
	return ""
}

func (c *Config) Validate() error {
	// Server
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	if c.Server.BodyLimitMB <= 0 {
		return fmt.Errorf("invalid server.body_limit_mb: %d", c.Server.BodyLimitMB)
	}

	// Transcription
	if c.Transcription.Provider == "" {
		return fmt.Errorf("invalid transcription.provider: empty")
	}
	if c.Transcription.Provider != "openai" {
		return fmt.Errorf("unsupported transcription.provider: %s", c.Transcription.Provider)
	}
	if c.Transcription.Model == "" {
		return fmt.Errorf("invalid transcription.model: empty")
	}
	if !language.IsValidCode(c.Transcription.DefaultLanguage) {
		return fmt.Errorf("invalid transcription.default_language: %s (use ISO-639-1 codes like 'en', or 'auto')", c.Transcription.DefaultLanguage)
	}
	if c.Transcription.ChunkLengthSec <= 0 {
		return fmt.Errorf("invalid transcription.chunk_length_sec: %d", c.Transcription.ChunkLengthSec)
	}
	if c.Transcription.StrideLengthSec < 0 || c.Transcription.StrideLengthSec >= c.Transcription.ChunkLengthSec {
		return fmt.Errorf("invalid transcription.stride_length_sec: %d (must be shorter than the chunk)", c.Transcription.StrideLengthSec)
	}
	if c.Transcription.Temperature < 0 || c.Transcription.Temperature > 1 {
		return fmt.Errorf("invalid transcription.temperature: %v", c.Transcription.Temperature)
	}
	if c.Transcription.NoSpeechThreshold < 0 || c.Transcription.NoSpeechThreshold > 1 {
		return fmt.Errorf("invalid transcription.no_speech_threshold: %v", c.Transcription.NoSpeechThreshold)
	}
	if c.Transcription.CompressionRatioThreshold <= 0 {
		return fmt.Errorf("invalid transcription.compression_ratio_threshold: %v", c.Transcription.CompressionRatioThreshold)
	}
	if c.Transcription.Timeout <= 0 {
		return fmt.Errorf("invalid transcription.timeout: %v", c.Transcription.Timeout)
	}
	if c.ProviderAPIKey(c.Transcription.Provider) == "" {
		return fmt.Errorf("OpenAI API key required: not found in config (providers.openai.api_key) or environment variable (OPENAI_API_KEY)")
	}

	// Translation
	if c.Translation.Model == "" {
		return fmt.Errorf("invalid translation.model: empty")
	}
	if c.Translation.Timeout <= 0 {
		return fmt.Errorf("invalid translation.timeout: %v", c.Translation.Timeout)
	}

	// Summarization
	if c.Summarization.Model == "" {
		return fmt.Errorf("invalid summarization.model: empty")
	}
	if c.Summarization.MinWords <= 0 {
		return fmt.Errorf("invalid summarization.min_words: %d", c.Summarization.MinWords)
	}
	if c.Summarization.MinLength <= 0 || c.Summarization.MaxLength <= c.Summarization.MinLength {
		return fmt.Errorf("invalid summarization length bounds: min %d, max %d", c.Summarization.MinLength, c.Summarization.MaxLength)
	}
	if c.Summarization.Timeout <= 0 {
		return fmt.Errorf("invalid summarization.timeout: %v", c.Summarization.Timeout)
	}

	// Log
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level: %s (must be debug, info, warn, or error)", c.Log.Level)
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format: %s (must be text or json)", c.Log.Format)
	}

	return nil
}
