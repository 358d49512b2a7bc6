package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type stubTranscriber struct {
	text string
	err  error
	path string // records the audio path it was handed
}

func (s *stubTranscriber) Transcribe(_ context.Context, audioPath, _ string) (string, error) {
	s.path = audioPath
	return s.text, s.err
}

type stubTranslator struct {
	text string
	err  error
}

func (s *stubTranslator) Translate(_ context.Context, _, _ string) (string, error) {
	return s.text, s.err
}

type stubSummarizer struct {
	text string
	err  error
}

func (s *stubSummarizer) Summarize(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func testService(t *testing.T, tr *stubTranscriber, tl *stubTranslator, sm *stubSummarizer) *Service {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return NewService(tr, tl, sm, store, Timeouts{
		Transcription: 10 * time.Second,
		Translation:   10 * time.Second,
		Summarization: 10 * time.Second,
	})
}

func TestStageErrorEncoding(t *testing.T) {
	s := testService(t,
		&stubTranscriber{err: errors.New("engine down")},
		&stubTranslator{err: errors.New("quota exceeded")},
		&stubSummarizer{err: errors.New("model overloaded")},
	)
	ctx := context.Background()

	tests := []struct {
		name   string
		got    string
		prefix string
	}{
		{"transcription", s.TranscribeAudio(ctx, "missing.wav", "en"), TranscriptionErrPrefix},
		{"translation", s.TranslateText(ctx, "hello", "fr"), TranslationErrPrefix},
		{"summarization", s.SummarizeText(ctx, "hello"), SummarizationErrPrefix},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !strings.HasPrefix(tc.got, tc.prefix) {
				t.Errorf("outcome %q missing prefix %q", tc.got, tc.prefix)
			}
		})
	}
}

func TestProcessAll(t *testing.T) {
	tr := &stubTranscriber{text: "hello world"}
	s := testService(t, tr,
		&stubTranslator{text: "bonjour le monde"},
		&stubSummarizer{text: "Text summary: hello world"},
	)

	result, err := s.ProcessAll(context.Background(), []byte("RIFF"), "clip.wav", "en", "fr")
	if err != nil {
		t.Fatalf("ProcessAll: %v", err)
	}

	if result.Transcript != "hello world" {
		t.Errorf("Transcript = %q", result.Transcript)
	}
	if result.TranslatedText != "bonjour le monde" {
		t.Errorf("TranslatedText = %q", result.TranslatedText)
	}
	if result.Summary != "Text summary: hello world" {
		t.Errorf("Summary = %q", result.Summary)
	}
	if result.SourceLang != "en" || result.TargetLang != "fr" {
		t.Errorf("languages = %q/%q, want en/fr", result.SourceLang, result.TargetLang)
	}
}

func TestProcessAllPartialResults(t *testing.T) {
	// A failing stage fills its own slot with an inline error string and the
	// pipeline still returns the stages that succeeded.
	s := testService(t,
		&stubTranscriber{text: "hello world"},
		&stubTranslator{err: errors.New("no route")},
		&stubSummarizer{text: "summary"},
	)

	result, err := s.ProcessAll(context.Background(), []byte("RIFF"), "clip.wav", "en", "de")
	if err != nil {
		t.Fatalf("ProcessAll: %v", err)
	}

	if result.Transcript != "hello world" {
		t.Errorf("Transcript = %q", result.Transcript)
	}
	if !strings.HasPrefix(result.TranslatedText, TranslationErrPrefix) {
		t.Errorf("TranslatedText = %q, want inline error", result.TranslatedText)
	}
	if result.Summary != "summary" {
		t.Errorf("Summary = %q, want success despite translation failure", result.Summary)
	}
}

func TestProcessAllRemovesTempFile(t *testing.T) {
	tr := &stubTranscriber{text: "ok"}
	s := testService(t, tr, &stubTranslator{text: "ok"}, &stubSummarizer{text: "ok"})

	if _, err := s.ProcessAll(context.Background(), []byte("data"), "m.ogg", "en", "en"); err != nil {
		t.Fatalf("ProcessAll: %v", err)
	}

	if tr.path == "" {
		t.Fatal("transcriber never received an audio path")
	}
	if _, err := os.Stat(tr.path); !os.IsNotExist(err) {
		t.Errorf("temp file %s still exists after pipeline run", tr.path)
	}
}

func TestProcessAllCleansUpOnStageFailure(t *testing.T) {
	// Cleanup happens after transcription even when both later stages fail.
	tr := &stubTranscriber{text: "ok"}
	s := testService(t, tr,
		&stubTranslator{err: errors.New("down")},
		&stubSummarizer{err: errors.New("down")},
	)

	if _, err := s.ProcessAll(context.Background(), []byte("data"), "m.wav", "en", "fr"); err != nil {
		t.Fatalf("ProcessAll: %v", err)
	}
	if _, err := os.Stat(tr.path); !os.IsNotExist(err) {
		t.Errorf("temp file %s not removed after stage failures", tr.path)
	}
}

func TestTranscribeUpload(t *testing.T) {
	tr := &stubTranscriber{text: "hello"}
	s := testService(t, tr, &stubTranslator{}, &stubSummarizer{})

	got, err := s.TranscribeUpload(context.Background(), []byte("data"), "note.mp3", "en")
	if err != nil {
		t.Fatalf("TranscribeUpload: %v", err)
	}
	if got != "hello" {
		t.Errorf("TranscribeUpload = %q", got)
	}
	if filepath.Ext(tr.path) != ".mp3" {
		t.Errorf("persisted path %q does not keep the upload extension", tr.path)
	}
	if _, err := os.Stat(tr.path); !os.IsNotExist(err) {
		t.Errorf("temp file %s still exists", tr.path)
	}
}

func TestSaveAudioNaming(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	tests := []struct {
		upload string
		ext    string
	}{
		{"meeting.webm", ".webm"},
		{"meeting", ".wav"}, // no extension defaults to wav
		{"a.b.ogg", ".ogg"},
	}

	for _, tc := range tests {
		path, err := store.SaveAudio([]byte("x"), tc.upload)
		if err != nil {
			t.Fatalf("SaveAudio(%q): %v", tc.upload, err)
		}
		if filepath.Ext(path) != tc.ext {
			t.Errorf("SaveAudio(%q) ext = %q, want %q", tc.upload, filepath.Ext(path), tc.ext)
		}
		base := filepath.Base(path)
		if !strings.HasPrefix(base, "audio_") {
			t.Errorf("SaveAudio(%q) name = %q, want audio_ prefix", tc.upload, base)
		}
	}

	// Two saves in the same second must not collide.
	p1, _ := store.SaveAudio([]byte("x"), "a.wav")
	p2, _ := store.SaveAudio([]byte("x"), "a.wav")
	if p1 == p2 {
		t.Errorf("SaveAudio produced colliding paths %q", p1)
	}
}
