package session

import (
	"testing"

	"lyricsbot/internal/genius"
)

func page(ids ...string) []genius.Song {
	songs := make([]genius.Song, 0, len(ids))
	for _, id := range ids {
		songs = append(songs, genius.Song{ID: id, Title: "t" + id})
	}
	return songs
}

func TestAdvanceMovesOnNonEmptyFetch(t *testing.T) {
	s := New(1, "q", page("a", "b"))

	var fetched int
	ok := s.Advance(func(p int) []genius.Song {
		fetched = p
		return page("c", "d")
	})

	if !ok {
		t.Fatal("advance rejected despite a non-empty next page")
	}
	if fetched != 2 {
		t.Fatalf("fetched page %d, want 2", fetched)
	}
	if s.Page != 2 || len(s.Songs) != 2 || s.Songs[0].ID != "c" {
		t.Fatalf("session not updated: page=%d songs=%v", s.Page, s.Songs)
	}
}

func TestAdvanceKeepsStateOnEmptyFetch(t *testing.T) {
	s := New(1, "q", page("a", "b"))

	if s.Advance(func(int) []genius.Song { return nil }) {
		t.Fatal("advance accepted an empty fetch")
	}
	if s.Page != 1 || s.Songs[0].ID != "a" {
		t.Fatalf("state mutated on rejected advance: page=%d songs=%v", s.Page, s.Songs)
	}
}

func TestRetreatRejectedAtFirstPage(t *testing.T) {
	s := New(1, "q", page("a"))

	called := false
	if s.Retreat(func(int) []genius.Song { called = true; return page("x") }) {
		t.Fatal("retreat accepted at page 1")
	}
	if called {
		t.Fatal("fetch must not run when already at page 1")
	}
}

func TestRetreatSymmetricWithAdvance(t *testing.T) {
	s := New(1, "q", page("a"))
	s.Advance(func(int) []genius.Song { return page("b") })

	var fetched int
	ok := s.Retreat(func(p int) []genius.Song {
		fetched = p
		return page("a")
	})
	if !ok || fetched != 1 {
		t.Fatalf("retreat ok=%v fetched=%d, want true/1", ok, fetched)
	}
	if s.Page != 1 || s.Songs[0].ID != "a" {
		t.Fatalf("session not restored: page=%d songs=%v", s.Page, s.Songs)
	}
}

func TestResolveOnlyCurrentPage(t *testing.T) {
	s := New(1, "q", page("a", "b"))
	s.Advance(func(int) []genius.Song { return page("c") })

	if _, ok := s.Resolve("a"); ok {
		t.Fatal("resolved a song from a page no longer displayed")
	}
	song, ok := s.Resolve("c")
	if !ok || song.Title != "tc" {
		t.Fatalf("resolve failed for displayed song: %+v ok=%v", song, ok)
	}
}
