// Package theme holds the visitor's persisted dark/light preference as a
// small settings store instead of ambient globals.
package theme

import "sync"

// Mode is a color scheme.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// settingsKey under which the preference is stored.
const settingsKey = "theme"

// Store is a key-value settings store with an init-time read and an
// on-toggle write.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemoryStore is an in-memory Store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value for key.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key.
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Manager resolves and toggles the active color scheme.
type Manager struct {
	store   Store
	current Mode
}

// NewManager reads the saved preference, falling back to the system
// preference when none was saved yet.
func NewManager(store Store, systemPrefersDark bool) *Manager {
	m := &Manager{store: store, current: ModeLight}

	saved, ok := store.Get(settingsKey)
	switch {
	case ok && Mode(saved) == ModeDark:
		m.current = ModeDark
	case ok:
		m.current = ModeLight
	case systemPrefersDark:
		m.current = ModeDark
	}
	return m
}

// Current returns the active mode.
func (m *Manager) Current() Mode {
	return m.current
}

// Toggle flips the mode and persists the choice.
func (m *Manager) Toggle() Mode {
	if m.current == ModeDark {
		m.current = ModeLight
	} else {
		m.current = ModeDark
	}
	m.store.Set(settingsKey, string(m.current))
	return m.current
}
