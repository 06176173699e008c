package session

import (
	"context"
	"sync"
	"time"
)

// RetentionPolicy bounds memory held by sessions. The zero value keeps
// every score and never evicts a session.
type RetentionPolicy struct {
	// HistoryCap is the number of most recent scores kept per skill.
	// 0 keeps all of them.
	HistoryCap int

	// IdleTTL evicts sessions that have not been used for this long.
	// 0 disables eviction.
	IdleTTL time.Duration
}

// Store holds sessions by user ID for the lifetime of the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	policy   RetentionPolicy
	now      func() time.Time
}

// NewStore creates an empty Store.
func NewStore(policy RetentionPolicy) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		policy:   policy,
		now:      time.Now,
	}
}

// GetOrCreate returns the session of userID, creating it on first contact.
// Concurrent first calls for the same user all get the same *Session.
func (st *Store) GetOrCreate(userID string) *Session {
	now := st.now()

	// The touch happens under the map lock so a concurrent Sweep either
	// evicts before the lookup or sees the fresh lastSeen.
	st.mu.RLock()
	s, ok := st.sessions[userID]
	if ok {
		s.touch(now)
	}
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok = st.sessions[userID]; !ok {
		s = newSession(userID, st.policy.HistoryCap, now)
		st.sessions[userID] = s
	}
	s.touch(now)
	return s
}

// Get returns the session of userID without creating one.
func (st *Store) Get(userID string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[userID]
	return s, ok
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep evicts sessions idle longer than the policy's IdleTTL and returns
// how many were removed. A session returned by GetOrCreate is never
// evicted by a sweep running at the same instant.
func (st *Store) Sweep(now time.Time) int {
	if st.policy.IdleTTL <= 0 {
		return 0
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	var n int
	for id, s := range st.sessions {
		if s.idleSince(now) > st.policy.IdleTTL {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// RunJanitor sweeps every interval until ctx is done. It returns at once
// when the policy has no IdleTTL.
func (st *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	if st.policy.IdleTTL <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			st.Sweep(t)
		}
	}
}
