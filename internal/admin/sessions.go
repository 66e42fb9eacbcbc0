package admin

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one logged-in admin with a private workspace.
type Session struct {
	Token     string
	Username  string
	Workspace *Workspace
	CreatedAt time.Time

	lastSeen time.Time // guarded by Sessions.mu
}

// Sessions tracks admin sessions by bearer token.
// A session idle for longer than ttl is treated as gone even before Expire
// removes it.
type Sessions struct {
	mu       sync.Mutex
	byToken  map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	newToken func() string
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		byToken:  make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		newToken: uuid.NewString,
	}
}

// TTL returns the idle timeout.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// Open starts a session for username working on ws.
func (s *Sessions) Open(username string, ws *Workspace) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := &Session{
		Token:     s.newToken(),
		Username:  username,
		Workspace: ws,
		CreatedAt: now,
		lastSeen:  now,
	}
	s.byToken[sess.Token] = sess
	return sess
}

// Get returns the live session for token and refreshes its idle timer.
func (s *Sessions) Get(token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byToken[token]
	if !ok {
		return nil, ErrUnauthorized
	}
	now := s.now()
	if s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl {
		delete(s.byToken, token)
		return nil, ErrUnauthorized
	}
	sess.lastSeen = now
	return sess, nil
}

// Close ends the session. It reports whether token was known.
func (s *Sessions) Close(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.byToken[token]
	delete(s.byToken, token)
	return ok
}

// Expire drops every session idle for longer than ttl at now and returns
// how many were removed.
func (s *Sessions) Expire(now time.Time, ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, sess := range s.byToken {
		if now.Sub(sess.lastSeen) > ttl {
			delete(s.byToken, token)
			removed++
		}
	}
	return removed
}

// Count returns the number of tracked sessions, expired or not.
func (s *Sessions) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byToken)
}
