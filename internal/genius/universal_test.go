package genius

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func hitJSON(id int, title, artist string) string {
	return fmt.Sprintf(
		`{"result":{"id":%d,"title":%q,"url":"https://genius.com/%d","primary_artist":{"name":%q}}}`,
		id, title, id, artist,
	)
}

func TestUniversalSearchMergesTransliteratedResults(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		queries = append(queries, q)
		var hits []string
		if q == "привет" {
			hits = []string{hitJSON(1, "One", "A"), hitJSON(2, "Two", "B")}
		} else {
			hits = []string{hitJSON(2, "Two", "B"), hitJSON(3, "Three", "C")}
		}
		fmt.Fprintf(w, `{"response":{"hits":[%s]}}`, strings.Join(hits, ","))
	}))
	defer srv.Close()

	c := NewClient(Config{Token: "t", BaseURL: srv.URL})
	songs, err := c.UniversalSearch(context.Background(), "привет", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(queries) != 2 {
		t.Fatalf("expected 2 page-1 fetches, got %d (%v)", len(queries), queries)
	}
	if queries[1] != "privet" {
		t.Fatalf("second query = %q, want transliterated form", queries[1])
	}
	ids := make([]string, 0, len(songs))
	for _, s := range songs {
		ids = append(ids, s.ID)
	}
	if strings.Join(ids, ",") != "1,2,3" {
		t.Fatalf("merged ids = %v, want [1 2 3] (deduplicated, original first)", ids)
	}
}

func TestUniversalSearchSkipsIdenticalTransliteration(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprintf(w, `{"response":{"hits":[%s]}}`, hitJSON(1, "One", "A"))
	}))
	defer srv.Close()

	c := NewClient(Config{Token: "t", BaseURL: srv.URL})
	if _, err := c.UniversalSearch(context.Background(), "hello", 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single fetch for pure-Latin query, got %d", calls)
	}
}

func TestUniversalSearchTruncatesToLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits := make([]string, 0, 10)
		for i := 1; i <= 10; i++ {
			hits = append(hits, hitJSON(i, fmt.Sprintf("Song %d", i), "A"))
		}
		fmt.Fprintf(w, `{"response":{"hits":[%s]}}`, strings.Join(hits, ","))
	}))
	defer srv.Close()

	c := NewClient(Config{Token: "t", BaseURL: srv.URL})
	songs, err := c.UniversalSearch(context.Background(), "hello", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(songs) != 4 {
		t.Fatalf("got %d songs, want 4", len(songs))
	}
}

func TestUniversalSearchRequiresToken(t *testing.T) {
	c := NewClient(Config{})
	if _, err := c.UniversalSearch(context.Background(), "q", 10); !errors.Is(err, ErrNoAPIToken) {
		t.Fatalf("err = %v, want ErrNoAPIToken", err)
	}
}

func TestUniversalSearchDegradesOnRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Config{Token: "t", BaseURL: srv.URL})
	songs, err := c.UniversalSearch(context.Background(), "привет", 10)
	if err != nil {
		t.Fatalf("remote failure must not raise: %v", err)
	}
	if len(songs) != 0 {
		t.Fatalf("got %d songs, want 0", len(songs))
	}
}
