package bot

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lyricsbot/internal/genius"
	"lyricsbot/internal/i18n"
	"lyricsbot/internal/session"
)

type fixedLang string

func (f fixedLang) Language(context.Context, int64) string { return string(f) }

func testApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	locale := "artist_songs_found_title: \"search results\"\n" +
		"select_song_prompt: \"Pick a number:\"\n" +
		"page_indicator: \"Page {page}\"\n" +
		"list_expired: \"This list has expired\"\n" +
		"language_selected: \"Language saved\"\n" +
		"welcome_existing: \"Send a song name\"\n" +
		"error_db_save: \"Could not save your choice\"\n"
	if err := os.WriteFile(filepath.Join(dir, "uz.yml"), []byte(locale), 0o644); err != nil {
		t.Fatal(err)
	}
	loc, err := i18n.Load(dir, fixedLang("uz"))
	if err != nil {
		t.Fatal(err)
	}
	return &App{loc: loc, sessions: session.NewStore()}
}

func listingSession(n int) *session.Session {
	songs := make([]genius.Song, 0, n)
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		songs = append(songs, genius.Song{
			ID:        id,
			Title:     "Song " + id,
			Artist:    "Artist",
			FullTitle: "Artist - Song " + id,
			URL:       "https://example.com/" + id,
		})
	}
	return session.New(42, "test query", songs)
}

func TestListingTextNumbersAndHeader(t *testing.T) {
	a := testApp(t)
	sess := listingSession(3)
	sess.Page = 2

	text := a.listingText(context.Background(), 42, sess)

	if !strings.HasPrefix(text, "*test query* - search results\n(Page 2)\nPick a number:\n\n") {
		t.Fatalf("header wrong:\n%s", text)
	}
	for _, line := range []string{"1. Artist - Song a", "2. Artist - Song b", "3. Artist - Song c"} {
		if !strings.Contains(text, line) {
			t.Fatalf("missing line %q in:\n%s", line, text)
		}
	}
}

func TestListingTextEscapesQuery(t *testing.T) {
	a := testApp(t)
	sess := session.New(1, "under_score", []genius.Song{{ID: "1", Title: "T", FullTitle: "A - T"}})

	text := a.listingText(context.Background(), 1, sess)
	if !strings.Contains(text, `under\_score`) {
		t.Fatalf("query not escaped:\n%s", text)
	}
}

func TestListingMarkupRowsAndPayloads(t *testing.T) {
	sess := listingSession(7)
	markup := listingMarkup(sess)

	rows := markup.InlineKeyboard
	// 5 + 2 select buttons, then navigation.
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if len(rows[0]) != 5 || len(rows[1]) != 2 || len(rows[2]) != 3 {
		t.Fatalf("row widths = %d/%d/%d", len(rows[0]), len(rows[1]), len(rows[2]))
	}

	first := rows[0][0]
	if first.Text != "1" || !strings.Contains(first.Unique+first.Data, "a") {
		t.Fatalf("first select button = %+v", first)
	}
	nav := rows[2]
	for i, want := range []string{cbPagePrev, cbListClose, cbPageNext} {
		if !strings.Contains(nav[i].Unique+nav[i].Data, want) {
			t.Fatalf("nav button %d = %+v, want key %s", i, nav[i], want)
		}
	}
}
