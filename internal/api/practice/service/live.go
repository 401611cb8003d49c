package practiceService

import (
	"EmotiClose/pkg/salescoring"
	"sync"
	"time"
)

// liveSession is the mutable state of one active practice session. Each
// session owns its own accumulator; the mutex only guards concurrent frames
// arriving for the same session (HTTP and websocket can race).
type liveSession struct {
	id            string
	userID        string
	scriptTitle   string
	scriptContent string
	startedAt     time.Time
	acc           *salescoring.Accumulator
	lastEmotions  salescoring.EmotionVector

	mu sync.Mutex
}

type liveSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*liveSession
}

func newLiveSessionStore() *liveSessionStore {
	return &liveSessionStore{
		sessions: make(map[string]*liveSession),
	}
}

func (s *liveSessionStore) put(session *liveSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.id] = session
}

func (s *liveSessionStore) get(id string) (*liveSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// remove takes the session out of the store and returns it, so end-session
// can consume the accumulator exactly once.
func (s *liveSessionStore) remove(id string) (*liveSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	return session, ok
}
