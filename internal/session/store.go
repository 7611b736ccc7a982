package session

import "sync"

// Store maps chats to their active session. Each chat additionally gets
// its own mutex via Bind, so a handler can hold the chat lock across
// fetch, mutate, and render without serializing unrelated chats.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	locks    map[int64]*sync.Mutex
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*Session),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// Bind returns the mutex for the chat, creating it on first use. The
// mutex persists even after the session is removed, so a late callback
// still serializes against a concurrent new search.
func (st *Store) Bind(chatID int64) *sync.Mutex {
	st.mu.Lock()
	defer st.mu.Unlock()
	if mu, ok := st.locks[chatID]; ok {
		return mu
	}
	mu := &sync.Mutex{}
	st.locks[chatID] = mu
	return mu
}

// Get returns the chat's active session, if any.
func (st *Store) Get(chatID int64) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[chatID]
	return s, ok
}

// Replace installs the session as the chat's active one, displacing any
// previous session. A new search in a chat with an open listing simply
// forgets the old listing's state.
func (st *Store) Replace(chatID int64, s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[chatID] = s
}

// Remove drops the chat's session. Removing an absent session is a
// no-op.
func (st *Store) Remove(chatID int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, chatID)
}
