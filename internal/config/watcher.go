package config

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/sarf/internal/logging"
)

// Watch starts watching the config file for changes and reloads
// automatically. Invalid edits are logged and the previous config is kept.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	log := logging.FromContext(ctx)
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")
		if err := m.handleChange(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config, keeping previous values")
		}
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// handleChange reloads the file and notifies callbacks on success.
func (m *Manager) handleChange() error {
	m.mu.Lock()
	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		return err
	}
	config, err := m.build()
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.config = config
	m.notifyCallbacksLocked()
	return nil
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		configCopy := *config
		callback(&configCopy)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
// Callbacks run on the watcher goroutine.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}
