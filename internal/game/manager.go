package game

import "sync"

// Manager tracks the active round per chat for front-ends that serve
// many conversations at once. Each round itself stays single-threaded;
// the lock only guards the registry.
type Manager struct {
	rounds map[int64]*Round
	mu     sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		rounds: make(map[int64]*Round),
	}
}

func (m *Manager) Get(chatID int64) *Round {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rounds[chatID]
}

func (m *Manager) Set(chatID int64, r *Round) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[chatID] = r
}

func (m *Manager) Delete(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, chatID)
}
