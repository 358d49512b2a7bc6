package config

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Manager serves config snapshots to the rest of the process and hot-reloads
// the file on change.
type Manager struct {
	mu      sync.RWMutex
	path    string
	config  *Config
	watcher *fsnotify.Watcher
	wg      sync.WaitGroup
}

func NewManager(path string) (*Manager, error) {
	config, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Manager{
		path:   path,
		config: config,
	}, nil
}

// GetConfig returns a copy of the current configuration.
func (m *Manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	return &configCopy
}

// StartWatching reloads the config whenever the file is rewritten. Watching
// the directory rather than the file survives editors that replace-on-save.
func (m *Manager) StartWatching(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.watcher = watcher

	if err := watcher.Add(filepath.Dir(m.path)); err != nil {
		watcher.Close()
		return err
	}

	m.wg.Add(1)
	go m.watchLoop(ctx)

	logrus.Infof("config: watching %s for changes", m.path)
	return nil
}

func (m *Manager) Stop() {
	if m.watcher != nil {
		m.watcher.Close()
	}
	m.wg.Wait()
}

func (m *Manager) watchLoop(ctx context.Context) {
	defer m.wg.Done()
	configFileName := filepath.Base(m.path)

	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != configFileName {
				continue
			}

			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logrus.Infof("config: file change detected: %s, reloading", event.Name)
				m.reload()
			}

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			logrus.Warnf("config: watcher error: %v", err)

		case <-ctx.Done():
			return
		}
	}
}

func (m *Manager) reload() {
	newConfig, err := Load(m.path)
	if err != nil {
		logrus.Errorf("config: failed to reload: %v", err)
		return
	}

	if err := newConfig.Validate(); err != nil {
		logrus.Errorf("config: invalid config after reload, keeping previous: %v", err)
		return
	}

	m.mu.Lock()
	m.config = newConfig
	m.mu.Unlock()

	logrus.Infof("config: configuration reloaded")
}
