// Package pipeline sequences the transcription, translation, and summarization
// adapters over one audio input and owns the string-outcome contract: every
// stage result reaching a caller is a plain string, with failures encoded as
// fixed-prefix messages instead of errors.
package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Fixed prefixes of the inline error strings. These are part of the wire
// contract and must not change.
const (
	TranscriptionErrPrefix = "Error during transcription: "
	TranslationErrPrefix   = "Translation error: "
	SummarizationErrPrefix = "Summarization error: "
)

// Transcriber is satisfied by *transcriber.Transcriber.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, languageHint string) (string, error)
}

// Translator is satisfied by any translator adapter.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Summarizer is satisfied by *summarizer.Summarizer.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Timeouts bounds each adapter call. Zero means no bound.
type Timeouts struct {
	Transcription time.Duration
	Translation   time.Duration
	Summarization time.Duration
}

// Result aggregates one full pipeline run. Immutable once constructed; this is
// the only artifact handed back to callers.
type Result struct {
	Transcript     string
	TranslatedText string
	Summary        string
	SourceLang     string
	TargetLang     string
}

// Service orchestrates the adapters.
type Service struct {
	transcriber Transcriber
	translator  Translator
	summarizer  Summarizer
	store       *Store
	timeouts    Timeouts
}

func NewService(t Transcriber, tr Translator, s Summarizer, store *Store, timeouts Timeouts) *Service {
	return &Service{
		transcriber: t,
		translator:  tr,
		summarizer:  s,
		store:       store,
		timeouts:    timeouts,
	}
}

// TranscribeAudio runs transcription on a persisted audio file. Always returns
// a string: the transcript, the no-speech sentinel, or an inline error.
func (s *Service) TranscribeAudio(ctx context.Context, audioPath, languageHint string) string {
	ctx, cancel := withTimeout(ctx, s.timeouts.Transcription)
	defer cancel()

	text, err := s.transcriber.Transcribe(ctx, audioPath, languageHint)
	if err != nil {
		logrus.Errorf("pipeline: transcription failed: %v", err)
		return TranscriptionErrPrefix + err.Error()
	}
	return text
}

// TranslateText translates text into targetLang. Always returns a string.
func (s *Service) TranslateText(ctx context.Context, text, targetLang string) string {
	ctx, cancel := withTimeout(ctx, s.timeouts.Translation)
	defer cancel()

	translated, err := s.translator.Translate(ctx, text, targetLang)
	if err != nil {
		logrus.Errorf("pipeline: translation failed: %v", err)
		return TranslationErrPrefix + err.Error()
	}
	return translated
}

// SummarizeText summarizes text. Always returns a string.
func (s *Service) SummarizeText(ctx context.Context, text string) string {
	ctx, cancel := withTimeout(ctx, s.timeouts.Summarization)
	defer cancel()

	summary, err := s.summarizer.Summarize(ctx, text)
	if err != nil {
		logrus.Errorf("pipeline: summarization failed: %v", err)
		return SummarizationErrPrefix + err.Error()
	}
	return summary
}

// TranscribeUpload persists the uploaded audio, transcribes it, and removes
// the temporary file. The error is a request-level persistence failure only;
// engine failures are inlined in the returned string.
func (s *Service) TranscribeUpload(ctx context.Context, audio []byte, filename, languageHint string) (string, error) {
	path, err := s.store.SaveAudio(audio, filename)
	if err != nil {
		return "", err
	}
	defer s.store.Remove(path)

	return s.TranscribeAudio(ctx, path, languageHint), nil
}

// ProcessAll runs the full pipeline: persist, transcribe, then translate and
// summarize the transcript concurrently. The temp file is removed right after
// transcription, before the dependent stages run. Stages never abort the
// pipeline; each Result slot carries its own outcome.
func (s *Service) ProcessAll(ctx context.Context, audio []byte, filename, sourceLang, targetLang string) (Result, error) {
	path, err := s.store.SaveAudio(audio, filename)
	if err != nil {
		return Result{}, err
	}

	logrus.Infof("pipeline: processing %s (source=%s target=%s)", path, sourceLang, targetLang)

	transcript := s.TranscribeAudio(ctx, path, sourceLang)
	s.store.Remove(path)

	// Translation and summarization both depend only on the transcript.
	var translated, summary string
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		translated = s.TranslateText(ctx, transcript, targetLang)
	}()
	go func() {
		defer wg.Done()
		summary = s.SummarizeText(ctx, transcript)
	}()
	wg.Wait()

	return Result{
		Transcript:     transcript,
		TranslatedText: translated,
		Summary:        summary,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
	}, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
