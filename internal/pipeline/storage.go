package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Store persists uploaded audio to a working directory for the duration of a
// transcription call.
type Store struct {
	dir string
}

// NewStore creates the working directory if needed. An empty dir falls back to
// the system temp directory.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "voicelab")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create audio dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the working directory.
func (st *Store) Dir() string {
	return st.dir
}

// SaveAudio writes audio under a timestamped name with a short random suffix
// so concurrent uploads in the same second cannot collide. The extension comes
// from the original filename, defaulting to "wav".
func (st *Store) SaveAudio(audio []byte, originalName string) (string, error) {
	name := fmt.Sprintf("audio_%s_%s.%s",
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8],
		fileExtension(originalName))

	path := filepath.Join(st.dir, name)
	if err := os.WriteFile(path, audio, 0644); err != nil {
		return "", fmt.Errorf("save audio %s: %w", path, err)
	}
	return path, nil
}

// Remove deletes a persisted audio file. Best effort: a leftover temp file is
// not worth failing a request over.
func (st *Store) Remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("store: failed to remove %s: %v", path, err)
	}
}

// fileExtension extracts the extension without the dot, defaulting to "wav"
// when the name has none.
func fileExtension(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "wav"
	}
	return ext
}
