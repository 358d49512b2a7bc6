package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/leonardotrapani/voicelab/internal/config"
	"github.com/leonardotrapani/voicelab/internal/engine"
	"github.com/leonardotrapani/voicelab/internal/pipeline"
	"github.com/leonardotrapani/voicelab/internal/server"
	"github.com/leonardotrapani/voicelab/internal/summarizer"
	"github.com/leonardotrapani/voicelab/internal/transcriber"
	"github.com/leonardotrapani/voicelab/internal/translator"
)

const version = "0.1.0"

func main() {
	_ = rootCmd.Execute()
}

var rootCmd = &cobra.Command{
	Use:   "voicelab",
	Short: "Meeting transcription, translation, and summarization backend",
}

func init() {
	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)
}

func serveCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to voicelab.toml (default: user config dir)")

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version)
			return nil
		},
	}
}

func runServe(configPath string) error {
	// Best effort: a missing .env is fine, the environment may carry the key.
	_ = godotenv.Load()

	if configPath == "" {
		var err error
		configPath, err = config.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
	}

	manager, err := config.NewManager(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	defer manager.Stop()

	cfg := manager.GetConfig()
	log := newLogger(cfg.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := manager.StartWatching(ctx); err != nil {
		log.Warnf("config watching disabled: %v", err)
	}

	srv, err := buildServer(manager, log)
	if err != nil {
		return err
	}

	// Shut down cleanly on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Infof("received %v, shutting down", sig)
		if err := srv.Shutdown(); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	return srv.Listen()
}

func buildServer(manager *config.Manager, log *logrus.Logger) (*server.Server, error) {
	cfg := manager.GetConfig()

	handle := engine.New(
		cfg.ProviderAPIKey(cfg.Transcription.Provider),
		cfg.ProviderBaseURL(cfg.Transcription.Provider),
	)

	trans := transcriber.New(transcriber.NewOpenAIAdapter(handle, transcriber.Config{
		Model:                     cfg.Transcription.Model,
		ChunkLengthSec:            cfg.Transcription.ChunkLengthSec,
		StrideLengthSec:           cfg.Transcription.StrideLengthSec,
		Temperature:               cfg.Transcription.Temperature,
		NoSpeechThreshold:         cfg.Transcription.NoSpeechThreshold,
		LogprobThreshold:          cfg.Transcription.LogprobThreshold,
		CompressionRatioThreshold: cfg.Transcription.CompressionRatioThreshold,
		ConditionOnPreviousText:   cfg.Transcription.ConditionOnPreviousText,
	}))

	transl := translator.NewOpenAIAdapter(handle, translator.Config{
		Model: cfg.Translation.Model,
	})

	summCfg := summarizer.Config{
		Model:     cfg.Summarization.Model,
		MinWords:  cfg.Summarization.MinWords,
		MaxLength: cfg.Summarization.MaxLength,
		MinLength: cfg.Summarization.MinLength,
	}
	summ := summarizer.New(summarizer.NewOpenAIAdapter(handle, summCfg), summCfg)

	store, err := pipeline.NewStore(cfg.Storage.AudioDir)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare audio storage: %w", err)
	}

	svc := pipeline.NewService(trans, transl, summ, store, pipeline.Timeouts{
		Transcription: cfg.Transcription.Timeout,
		Translation:   cfg.Translation.Timeout,
		Summarization: cfg.Summarization.Timeout,
	})

	return server.New(manager, svc, log), nil
}

func newLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	// Adapters log through the package-level logger; keep it in sync.
	logrus.SetOutput(log.Out)
	logrus.SetFormatter(log.Formatter)
	logrus.SetLevel(level)

	return log
}
