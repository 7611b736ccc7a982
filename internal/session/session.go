// Package session keeps the per-chat search state behind paginated song
// listings. A session lives only in memory: it is created on a fresh
// search, mutated by pagination callbacks, and dropped when the listing
// is dismissed or replaced.
package session

import "lyricsbot/internal/genius"

// FetchFunc loads the songs for the given 1-based page. An empty result
// means the page does not exist or the backend is unavailable; callers
// cannot tell the two apart.
type FetchFunc func(page int) []genius.Song

// Session is the state of one active search listing in a chat.
type Session struct {
	// Query is the text the listing was built from, kept verbatim so
	// page fetches repeat the exact same search.
	Query string

	// Page is the 1-based page currently displayed.
	Page int

	// Songs holds exactly the songs rendered on the current page.
	// Select callbacks resolve against this slice and nothing else.
	Songs []genius.Song

	// MessageID identifies the listing message being edited in place.
	MessageID int

	ChatID int64
}

// New starts a session at page 1 with the given result set.
func New(chatID int64, query string, songs []genius.Song) *Session {
	return &Session{
		Query:  query,
		Page:   1,
		Songs:  songs,
		ChatID: chatID,
	}
}

// Advance moves to the next page. The session mutates only when fetch
// returns at least one song; on an empty fetch the current page stays
// displayed and Advance reports false.
func (s *Session) Advance(fetch FetchFunc) bool {
	songs := fetch(s.Page + 1)
	if len(songs) == 0 {
		return false
	}
	s.Page++
	s.Songs = songs
	return true
}

// Retreat moves to the previous page. At page 1 it reports false
// without calling fetch at all.
func (s *Session) Retreat(fetch FetchFunc) bool {
	if s.Page <= 1 {
		return false
	}
	songs := fetch(s.Page - 1)
	if len(songs) == 0 {
		return false
	}
	s.Page--
	s.Songs = songs
	return true
}

// Resolve finds a song by identifier among the currently displayed
// songs. Identifiers from pages no longer shown do not resolve.
func (s *Session) Resolve(songID string) (genius.Song, bool) {
	for _, song := range s.Songs {
		if song.ID == songID {
			return song, true
		}
	}
	return genius.Song{}, false
}
