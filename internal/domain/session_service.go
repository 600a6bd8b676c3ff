package domain

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Vovarama1992/salesacademy/internal/ports"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

var ErrSessionLimit = errors.New("too many live sessions")

// Session is one visitor's page. Lock it for the duration of a request so
// that events on the same page run one at a time.
type Session struct {
	sync.Mutex

	ID   string
	Page *Page

	lastSeen time.Time
}

type SessionGauge interface {
	SetSessions(n int)
}

type SessionService struct {
	tokens  ports.SessionTokens
	newPage func() *Page
	ttl     time.Duration
	limit   int
	gauge   SessionGauge
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionService keeps at most limit live sessions; limit 0 means no cap.
func NewSessionService(tokens ports.SessionTokens, newPage func() *Page, ttl time.Duration, limit int, gauge SessionGauge) *SessionService {
	return &SessionService{
		tokens:   tokens,
		newPage:  newPage,
		ttl:      ttl,
		limit:    limit,
		gauge:    gauge,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Create opens a fresh session and returns it with its cookie token. When
// the store is full, idle sessions are evicted first; if none are idle the
// call fails with ErrSessionLimit.
func (s *SessionService) Create() (*Session, string, error) {
	now := s.now()

	s.mu.Lock()
	if s.limit > 0 && len(s.sessions) >= s.limit {
		s.evictIdle(now)
	}
	full := s.limit > 0 && len(s.sessions) >= s.limit
	s.mu.Unlock()
	if full {
		return nil, "", ErrSessionLimit
	}

	sess := &Session{
		ID:       uuid.NewString(),
		Page:     s.newPage(),
		lastSeen: now,
	}

	token, err := s.tokens.Sign(sess.ID, now.Add(tokenLifetime))
	if err != nil {
		return nil, "", fmt.Errorf("sign session: %w", err)
	}

	s.mu.Lock()
	// между проверкой и вставкой мог успеть другой запрос
	if s.limit > 0 && len(s.sessions) >= s.limit {
		s.mu.Unlock()
		return nil, "", ErrSessionLimit
	}
	s.sessions[sess.ID] = sess
	n := len(s.sessions)
	s.mu.Unlock()

	s.report(n)
	return sess, token, nil
}

// Resolve finds the live session behind a cookie token.
func (s *SessionService) Resolve(token string) (*Session, bool) {
	sid, err := s.tokens.Verify(token)
	if err != nil {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sid]
	if !ok {
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess, true
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were dropped.
func (s *SessionService) Sweep(now time.Time) int {
	s.mu.Lock()
	dropped := s.evictIdle(now)
	n := len(s.sessions)
	s.mu.Unlock()

	s.report(n)
	return dropped
}

// evictIdle expects s.mu held.
func (s *SessionService) evictIdle(now time.Time) int {
	dropped := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

func (s *SessionService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionService) report(n int) {
	if s.gauge != nil {
		s.gauge.SetSessions(n)
	}
}
