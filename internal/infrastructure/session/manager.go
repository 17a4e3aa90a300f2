package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"paksupply/internal/domain/entity"
	"paksupply/pkg/errors"
)

// Manager holds the live sessions in memory. A session exists from login
// until logout or expiry; nothing else creates or destroys one.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*entity.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create issues a new token for the given identity. The caller's value is copied.
func (m *Manager) Create(s entity.Session) *entity.Session {
	now := m.now()
	s.Token = uuid.NewString()
	s.CreatedAt = now
	if m.ttl > 0 {
		s.ExpiresAt = now.Add(m.ttl)
	}

	m.mu.Lock()
	m.sessions[s.Token] = &s
	m.mu.Unlock()

	cp := s
	return &cp
}

func (m *Manager) Get(token string) (*entity.Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return nil, errors.Unauthorized("Invalid or expired session", nil)
	}
	if s.Expired(m.now()) {
		m.Destroy(token)
		return nil, errors.Unauthorized("Invalid or expired session", nil)
	}

	cp := *s
	return &cp, nil
}

// RefreshShopkeeper replaces the shop profile carried by every session of that shop.
func (m *Manager) RefreshShopkeeper(profile *entity.ShopkeeperProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sessions {
		if s.Shopkeeper != nil && s.Shopkeeper.ID == profile.ID {
			p := profile.Public()
			s.Shopkeeper = &p
		}
	}
}

func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Sweep drops expired sessions.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for token, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}
