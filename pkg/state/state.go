package state

import (
	"sync"
	"time"
)

// State represents the conversational state of a chat
type State string

const (
	// StateNormal is the normal state
	StateNormal State = "normal"
	// StateAddingItems is the state while the user is sending pantry items
	StateAddingItems State = "adding_items"
)

// staleAfter resets an abandoned flow back to normal
const staleAfter = 10 * time.Minute

// ChatState pairs a state with when it was entered
type ChatState struct {
	State     State
	Timestamp time.Time
}

// Manager manages per-chat conversational states
type Manager struct {
	states map[int64]ChatState
	mu     sync.Mutex
}

// New creates a new state manager
func New() *Manager {
	return &Manager{
		states: make(map[int64]ChatState),
	}
}

// SetState sets the state for a chat
func (m *Manager) SetState(chatID int64, state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[chatID] = ChatState{
		State:     state,
		Timestamp: time.Now(),
	}
}

// GetState gets the state for a chat, expiring stale flows
func (m *Manager) GetState(chatID int64) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.states[chatID]
	if !ok {
		return StateNormal
	}
	if time.Since(entry.Timestamp) > staleAfter {
		delete(m.states, chatID)
		return StateNormal
	}
	return entry.State
}

// ClearState clears the state for a chat
func (m *Manager) ClearState(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, chatID)
}
