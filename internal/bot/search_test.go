package bot

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lyricsbot/internal/genius"
)

func searchHit(id int, title, artist string) string {
	return fmt.Sprintf(
		`{"result":{"id":%d,"title":%q,"url":"https://genius.com/%d","primary_artist":{"name":%q}}}`,
		id, title, id, artist,
	)
}

func searchApp(t *testing.T, pageSize int, handler http.HandlerFunc) *App {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &App{
		cfg:    &Config{App: AppConfig{PageSize: pageSize}},
		search: genius.NewClient(genius.Config{Token: "t", BaseURL: srv.URL}),
	}
}

func TestFirstPageMergesTransliteratedHits(t *testing.T) {
	var queries []string
	a := searchApp(t, 10, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		queries = append(queries, q)
		if q == "привет" {
			fmt.Fprint(w, `{"response":{"hits":[]}}`)
			return
		}
		fmt.Fprintf(w, `{"response":{"hits":[%s]}}`, searchHit(7, "Privet", "A"))
	})

	songs := a.firstPage(context.Background(), "привет")

	if len(queries) != 2 || queries[1] != "privet" {
		t.Fatalf("queries = %v, want original then transliterated form", queries)
	}
	if len(songs) != 1 || songs[0].ID != "7" {
		t.Fatalf("songs = %+v, want the hit found via transliteration", songs)
	}
}

func TestFirstPageTrimsToPageSize(t *testing.T) {
	a := searchApp(t, 3, func(w http.ResponseWriter, r *http.Request) {
		hits := make([]string, 0, 8)
		for i := 1; i <= 8; i++ {
			hits = append(hits, searchHit(i, fmt.Sprintf("Song %d", i), "A"))
		}
		fmt.Fprintf(w, `{"response":{"hits":[%s]}}`, strings.Join(hits, ","))
	})

	if songs := a.firstPage(context.Background(), "hello"); len(songs) != 3 {
		t.Fatalf("got %d songs, want the page size of 3", len(songs))
	}
}

func TestFirstPageWithoutTokenIsEmpty(t *testing.T) {
	a := &App{
		cfg:    &Config{App: AppConfig{PageSize: 10}},
		search: genius.NewClient(genius.Config{}),
	}
	if songs := a.firstPage(context.Background(), "hello"); len(songs) != 0 {
		t.Fatalf("got %d songs, want none without an API token", len(songs))
	}
}

func TestSplitArtistTitle(t *testing.T) {
	artist, title, ok := splitArtistTitle("Muse - Uprising")
	if !ok || artist != "Muse" || title != "Uprising" {
		t.Fatalf("got %q / %q / %v", artist, title, ok)
	}
	if _, _, ok := splitArtistTitle("just a song name"); ok {
		t.Fatal("query without a dash must not match")
	}
	if _, _, ok := splitArtistTitle("- No Artist"); ok {
		t.Fatal("empty artist part must not match")
	}
}
