package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultSessionTTL is how long an idle cart is kept before the sweeper
// discards it.
const DefaultSessionTTL = 24 * time.Hour

// sweepInterval controls how often expired sessions are collected.
const sweepInterval = 10 * time.Minute

type session struct {
	cart     *Cart
	lastSeen time.Time
}

// Manager owns one Cart per active session. Sessions are keyed by opaque
// uuid ids handed to clients; a cart is created on first use and discarded
// on Destroy or after sitting idle for the configured TTL. Carts live only
// in process memory and are never persisted.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	logger   zerolog.Logger
	done     chan struct{}
	closeOne sync.Once
}

// NewManager creates a session manager and starts its expiry sweeper. A
// non-positive ttl falls back to DefaultSessionTTL.
func NewManager(ttl time.Duration, logger zerolog.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	m := &Manager{
		sessions: make(map[string]*session),
		ttl:      ttl,
		logger:   logger.With().Str("component", "cart-manager").Logger(),
		done:     make(chan struct{}),
	}

	go m.sweep()

	return m
}

// GetOrCreate returns the cart for sessionID, creating a fresh session when
// the id is unknown. A non-empty unknown id is adopted as the session key, so
// an id issued by the session middleware maps to the same cart on every
// request; only an empty id gets a generated one. The returned id is the one
// the client should carry on subsequent requests.
func (m *Manager) GetOrCreate(sessionID string) (string, *Cart) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sessionID != "" {
		if s, ok := m.sessions[sessionID]; ok {
			s.lastSeen = time.Now()
			return sessionID, s.cart
		}
	}

	id := sessionID
	if id == "" {
		id = uuid.NewString()
	}
	c := New()
	m.sessions[id] = &session{cart: c, lastSeen: time.Now()}

	m.logger.Debug().
		Str("session_id", id).
		Int("active_sessions", len(m.sessions)).
		Msg("session created")

	return id, c
}

// Get returns the cart for sessionID, or false when the session does not
// exist.
func (m *Manager) Get(sessionID string) (*Cart, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, false
	}
	s.lastSeen = time.Now()
	return s.cart, true
}

// Destroy drops the session and its cart. Unknown ids are a no-op.
func (m *Manager) Destroy(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// Len returns the number of active sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close stops the expiry sweeper. Safe to call more than once.
func (m *Manager) Close() {
	m.closeOne.Do(func() { close(m.done) })
}

// sweep periodically discards sessions idle longer than the TTL.
func (m *Manager) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case now := <-ticker.C:
			m.expire(now)
		}
	}
}

func (m *Manager) expire(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expired := 0
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.ttl {
			delete(m.sessions, id)
			expired++
		}
	}

	if expired > 0 {
		m.logger.Info().
			Int("expired", expired).
			Int("active_sessions", len(m.sessions)).
			Msg("expired idle cart sessions")
	}
}
