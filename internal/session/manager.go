// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/farmfeed/internal/config"
	"github.com/tomtom215/farmfeed/internal/feed"
	"github.com/tomtom215/farmfeed/internal/metrics"
)

var (
	// ErrSessionNotFound is returned when no session exists with the given ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when a session was idle for too long.
	ErrSessionExpired = errors.New("session expired")
)

// Session is one anonymous reader.
type Session struct {
	ID        string
	Tracker   *feed.InterestTracker
	CreatedAt time.Time

	// guarded by Manager.mu
	lastSeen time.Time
}

// Manager owns all live sessions.
type Manager struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	newTracker  func() *feed.InterestTracker
	idleTimeout time.Duration
	maxSessions int
	now         func() time.Time
}

// NewManager creates a session manager. newTracker builds the zeroed
// interest tracker given to every new session.
func NewManager(cfg *config.SessionsConfig, newTracker func() *feed.InterestTracker) *Manager {
	m := &Manager{
		sessions:   make(map[string]*Session),
		newTracker: newTracker,
		now:        time.Now,
	}
	if cfg != nil {
		m.idleTimeout = cfg.IdleTimeout
		m.maxSessions = cfg.MaxSessions
	}
	return m
}

// Start creates a session with a fresh interest vector. When the manager is
// full the least recently seen session is evicted first.
func (m *Manager) Start() *Session {
	now := m.now()
	sess := &Session{
		ID:        uuid.New().String(),
		Tracker:   m.newTracker(),
		CreatedAt: now,
		lastSeen:  now,
	}

	m.mu.Lock()
	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		m.evictOldestLocked()
	}
	m.sessions[sess.ID] = sess
	n := len(m.sessions)
	m.mu.Unlock()

	metrics.SetActiveSessions(n)
	return sess
}

// Get returns a live session and marks it as seen.
func (m *Manager) Get(id string) (*Session, error) {
	now := m.now()

	m.mu.Lock()
	sess, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if m.idleLocked(sess, now) {
		delete(m.sessions, id)
		n := len(m.sessions)
		m.mu.Unlock()
		metrics.SetActiveSessions(n)
		return nil, ErrSessionExpired
	}
	sess.lastSeen = now
	m.mu.Unlock()

	return sess, nil
}

// End removes a session. It reports whether the session existed.
func (m *Manager) End(id string) bool {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	n := len(m.sessions)
	m.mu.Unlock()

	metrics.SetActiveSessions(n)
	return ok
}

// ExpireIdle removes every session idle at now and returns how many were
// removed.
func (m *Manager) ExpireIdle(now time.Time) int {
	if m.idleTimeout <= 0 {
		return 0
	}

	m.mu.Lock()
	removed := 0
	for id, sess := range m.sessions {
		if m.idleLocked(sess, now) {
			delete(m.sessions, id)
			removed++
		}
	}
	n := len(m.sessions)
	m.mu.Unlock()

	metrics.SetActiveSessions(n)
	return removed
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) idleLocked(sess *Session, now time.Time) bool {
	return m.idleTimeout > 0 && now.Sub(sess.lastSeen) > m.idleTimeout
}

func (m *Manager) evictOldestLocked() {
	var oldest *Session
	for _, sess := range m.sessions {
		if oldest == nil || sess.lastSeen.Before(oldest.lastSeen) {
			oldest = sess
		}
	}
	if oldest != nil {
		delete(m.sessions, oldest.ID)
	}
}
