package genius

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const hitsPage = `{"response":{"hits":[
	{"result":{"id":101,"title":"Stan (Live)","url":"https://genius.com/stan","primary_artist":{"name":"Eminem"}}},
	{"result":{"id":102,"title":"","url":"https://genius.com/x","primary_artist":{"name":"Nobody"}}},
	{"result":{"id":0,"title":"Ghost","url":"https://genius.com/ghost","primary_artist":{"name":"Nobody"}}},
	{"result":{"id":103,"title":"No URL","url":"","primary_artist":{"name":"Nobody"}}},
	{"result":{"id":104,"title":"Без названия","url":"https://genius.com/bn","primary_artist":{"name":""}}},
	{"result":{"id":105,"title":"Rock &amp; Roll","url":"https://genius.com/rr","primary_artist":{"name":"  The   Band "}}}
]}}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{Token: "test-token", BaseURL: srv.URL})
}

func TestSearchPageFiltersAndNormalizes(t *testing.T) {
	var gotAuth, gotPage string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPage = r.URL.Query().Get("page")
		w.Write([]byte(hitsPage))
	})

	songs := c.SearchPage(context.Background(), "stan", 3)

	if gotAuth != "Bearer test-token" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotPage != "3" {
		t.Fatalf("page param = %q, want 3", gotPage)
	}
	if len(songs) != 2 {
		t.Fatalf("got %d songs, want 2 (invalid hits filtered)", len(songs))
	}
	if songs[0].ID != "101" || songs[0].Title != "Stan" || songs[0].FullTitle != "Eminem - Stan" {
		t.Fatalf("first song not normalized: %+v", songs[0])
	}
	if songs[1].Artist != "The Band" || songs[1].Title != "Rock & Roll" {
		t.Fatalf("second song not normalized: %+v", songs[1])
	}
}

func TestSearchPageDegradesToEmpty(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
		if songs := c.SearchPage(context.Background(), "q", 1); len(songs) != 0 {
			t.Fatalf("expected no songs, got %d", len(songs))
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		})
		if songs := c.SearchPage(context.Background(), "q", 1); len(songs) != 0 {
			t.Fatalf("expected no songs, got %d", len(songs))
		}
	})

	t.Run("missing token", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer srv.Close()
		c := NewClient(Config{BaseURL: srv.URL})
		if songs := c.SearchPage(context.Background(), "q", 1); len(songs) != 0 {
			t.Fatalf("expected no songs, got %d", len(songs))
		}
		if calls.Load() != 0 {
			t.Fatal("no request should be issued without a token")
		}
	})
}

func TestSearchPageClampsPage(t *testing.T) {
	var gotPage string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		w.Write([]byte(`{"response":{"hits":[]}}`))
	})
	c.SearchPage(context.Background(), "q", 0)
	if gotPage != "1" {
		t.Fatalf("page param = %q, want 1", gotPage)
	}
}
