package game

import (
	"sync"

	"github.com/google/uuid"

	"wordvolley/internal/words"
)

// Session holds the in-memory state of one user's active game: the word
// pool, the active tier, the one-way merge latches, and the last word
// thrown to the user.
//
// A Session is shared mutable state. Callers must hold the session lock
// for the duration of each game operation so that concurrent requests
// for the same user are serialized.
type Session struct {
	mu sync.Mutex

	ID     string
	UserID string

	catalog     *words.Catalog
	pool        []string
	tier        int
	tier2Merged bool
	tier3Merged bool
	lastThrown  string
}

// Lock acquires the per-session lock
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the per-session lock
func (s *Session) Unlock() { s.mu.Unlock() }

// Tier returns the current active difficulty tier
func (s *Session) Tier() int { return s.tier }

// LastThrown returns the last word thrown to the user, or "" before the
// first throw
func (s *Session) LastThrown() string { return s.lastThrown }

// SetLastThrown records the word most recently thrown to the user
func (s *Session) SetLastThrown(word string) { s.lastThrown = word }

// Store is the registry of active sessions keyed by user ID. It is the
// in-memory authority for "is this user already playing".
type Store struct {
	mu       sync.RWMutex
	catalog  *words.Catalog
	sessions map[string]*Session
}

// NewStore creates a session store backed by the given word catalog
func NewStore(catalog *words.Catalog) *Store {
	return &Store{
		catalog:  catalog,
		sessions: make(map[string]*Session),
	}
}

// Create initializes a fresh session for the user: tier 1 pool, merge
// latches cleared, no word thrown yet. Returns ErrDuplicateSession if
// the user already has one.
func (st *Store) Create(userID string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, exists := st.sessions[userID]; exists {
		return nil, ErrDuplicateSession
	}

	session := &Session{
		ID:      uuid.New().String(),
		UserID:  userID,
		catalog: st.catalog,
		pool:    st.catalog.Tier(1),
		tier:    1,
	}
	st.sessions[userID] = session
	return session, nil
}

// Get retrieves the active session for a user
func (st *Store) Get(userID string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	session, ok := st.sessions[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	return session, nil
}

// Delete removes a user's session. Deleting an absent session is a no-op.
func (st *Store) Delete(userID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}
