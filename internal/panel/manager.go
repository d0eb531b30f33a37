package panel

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/CraftPanel_Go/internal/concurrency"
	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/logger"
	"github.com/osse101/CraftPanel_Go/internal/metrics"
)

// Key identifies one open session: a panel kind, the panel document and
// the user working on it.
type Key struct {
	Kind    domain.PanelKind
	PanelID string
	UserID  string
}

// String renders the key as kind/panel/user.
func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Kind, k.PanelID, k.UserID)
}

// KeyFor builds the session key of user on p.
func KeyFor(p *domain.Panel, userID string) Key {
	return Key{Kind: p.Kind, PanelID: p.ID, UserID: userID}
}

// Session is anything the manager can track. Close releases whatever the
// session holds; it is called once when the session is unregistered.
type Session interface {
	Key() Key
	Close()
}

// Manager owns the open sessions and serializes actions on each of them
type Manager struct {
	mu       sync.RWMutex
	sessions map[Key]Session
	locks    *concurrency.LockManager
}

// NewManager creates an empty Manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[Key]Session),
		locks:    concurrency.NewLockManager(),
	}
}

// Open returns the session registered under key, creating it with create
// when none is open. The bool reports whether a new session was created.
func (m *Manager) Open(ctx context.Context, key Key, create func() (Session, error)) (Session, bool, error) {
	unlock := m.locks.Lock(key.String())
	defer unlock()

	if s, err := m.Get(key); err == nil {
		return s, false, nil
	}

	s, err := create()
	if err != nil {
		return nil, false, err
	}

	m.mu.Lock()
	m.sessions[key] = s
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	m.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgSessionOpened, "session", key.String())
	return s, true, nil
}

// Get returns the session registered under key
func (m *Manager) Get(key Key) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[key]
	if !ok {
		return nil, fmt.Errorf("session '%s' | %w", key, domain.ErrSessionNotFound)
	}
	return s, nil
}

// With runs fn on the session under key while holding its lock.
func (m *Manager) With(key Key, fn func(Session) error) error {
	unlock := m.locks.Lock(key.String())
	defer unlock()

	s, err := m.Get(key)
	if err != nil {
		return err
	}
	return fn(s)
}

// Close unregisters and closes the session under key
func (m *Manager) Close(ctx context.Context, key Key) error {
	unlock := m.locks.Lock(key.String())
	defer unlock()

	m.mu.Lock()
	s, ok := m.sessions[key]
	if ok {
		delete(m.sessions, key)
		metrics.ActiveSessions.Set(float64(len(m.sessions)))
	}
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("session '%s' | %w", key, domain.ErrSessionNotFound)
	}
	s.Close()
	logger.FromContext(ctx).Info(LogMsgSessionClosed, "session", key.String())
	return nil
}

// Keys lists the open sessions in a stable order
func (m *Manager) Keys() []Key {
	m.mu.RLock()
	keys := make([]Key, 0, len(m.sessions))
	for k := range m.sessions {
		keys = append(keys, k)
	}
	m.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

// Len returns the number of open sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
