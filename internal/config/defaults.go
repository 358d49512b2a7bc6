package config

import "time"

// DefaultConfig returns the configuration the server boots with when no
// config file exists. The transcription decoding values are tuned for meeting
// audio: deterministic sampling plus thresholds that suppress hallucinated or
// repetitive segments.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         5000,
			CORSOrigins:  "*",
			BodyLimitMB:  50,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 5 * time.Minute,
		},
		Transcription: TranscriptionConfig{
			Provider:                  "openai",
			Model:                     "whisper-1",
			DefaultLanguage:           "en",
			ChunkLengthSec:            30,
			StrideLengthSec:           5,
			Temperature:               0.0,
			NoSpeechThreshold:         0.6,
			LogprobThreshold:          -1.0,
			CompressionRatioThreshold: 2.4,
			ConditionOnPreviousText:   true,
			Timeout:                   2 * time.Minute,
		},
		Translation: TranslationConfig{
			Model:   "gpt-4o-mini",
			Timeout: time.Minute,
		},
		Summarization: SummarizationConfig{
			Model:     "gpt-4o-mini",
			MinWords:  20,
			MaxLength: 100,
			MinLength: 25,
			Timeout:   time.Minute,
		},
		Storage: StorageConfig{
			AudioDir: "",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Providers: make(map[string]ProviderConfig),
	}
}
