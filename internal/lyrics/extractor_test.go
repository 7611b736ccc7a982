package lyrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const modernPage = `<html><body><div data-lyrics-container="true">12 ContributorsCold Night Lyrics[Verse 1]<br>Walking through the rain tonight<br>Nothing but the city light<br><br>[Chorus]<br>Hold on, hold on<br><span class="ReferentFragmentdesktop__Highlight-sc-1">noise</span>Rock &amp; roll forever</div></body></html>`

const legacyPage = `<html><body><div class="song_body-lyrics"><div class="lyrics"><p>Old markup line one<br>Old markup line two</p></div></div></body></html>`

func serve(t *testing.T, status int, body string) (*Extractor, string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewExtractor(Config{}), srv.URL
}

func TestExtractModernMarkup(t *testing.T) {
	e, url := serve(t, http.StatusOK, modernPage)

	got, err := e.Extract(context.Background(), url)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Walking through the rain tonight\nNothing but the city light\n\nHold on, hold on\nRock & roll forever"
	if got != want {
		t.Fatalf("extracted text mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestExtractLegacyMarkupFallback(t *testing.T) {
	e, url := serve(t, http.StatusOK, legacyPage)

	got, err := e.Extract(context.Background(), url)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Old markup line one\nOld markup line two") {
		t.Fatalf("legacy selector did not win: %q", got)
	}
}

func TestExtractNotFound(t *testing.T) {
	t.Run("no lyric containers", func(t *testing.T) {
		e, url := serve(t, http.StatusOK, "<html><body><p>nothing here</p></body></html>")
		if _, err := e.Extract(context.Background(), url); err != ErrLyricsNotFound {
			t.Fatalf("err = %v, want ErrLyricsNotFound", err)
		}
	})

	t.Run("http error", func(t *testing.T) {
		e, url := serve(t, http.StatusNotFound, "gone")
		if _, err := e.Extract(context.Background(), url); err != ErrLyricsNotFound {
			t.Fatalf("err = %v, want ErrLyricsNotFound", err)
		}
	})

	t.Run("empty url", func(t *testing.T) {
		e := NewExtractor(Config{})
		if _, err := e.Extract(context.Background(), ""); err != ErrLyricsNotFound {
			t.Fatalf("err = %v, want ErrLyricsNotFound", err)
		}
	})
}

func TestExtractSendsBrowserUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(modernPage))
	}))
	defer srv.Close()

	e := NewExtractor(Config{})
	if _, err := e.Extract(context.Background(), srv.URL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(gotUA, "Mozilla/5.0") {
		t.Fatalf("user agent = %q, want browser-like", gotUA)
	}
}

func TestCleanTextCollapsesBlankRuns(t *testing.T) {
	in := "line one\n\n\n\n\nline two"
	if got := CleanText(in); got != "line one\n\nline two" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanTextStripsSectionMarkers(t *testing.T) {
	in := "[Verse 2]\nfirst line\n[Chorus 1:]\nsecond line\n[spoken]\nthird line"
	got := CleanText(in)
	if strings.Contains(got, "[") {
		t.Fatalf("section markers left behind: %q", got)
	}
	for _, line := range []string{"first line", "second line", "third line"} {
		if !strings.Contains(got, line) {
			t.Fatalf("lost line %q in %q", line, got)
		}
	}
}

func TestCleanTextStripsLeadingBoilerplate(t *testing.T) {
	in := "5 ContributorsCold Night Lyrics\nEmbed\nYou might also like\nreal first line\nsecond line"
	got := CleanText(in)
	if !strings.HasPrefix(got, "real first line") {
		t.Fatalf("boilerplate not stripped: %q", got)
	}
}
