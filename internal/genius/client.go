// Package genius queries the Genius song-search API one page at a time
// and normalizes hits into Song records.
package genius

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"lyricsbot/core/logger"
	"lyricsbot/internal/textnorm"

	"log/slog"
)

const defaultBaseURL = "https://api.genius.com"

// Config controls the search client.
type Config struct {
	// Token is the Genius API bearer token. An empty token disables
	// search: SearchPage degrades to empty results and UniversalSearch
	// returns ErrNoAPIToken.
	Token   string
	BaseURL string
	Timeout time.Duration
}

// Client talks to the Genius search API.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewClient builds a search client with sane defaults for zeroed fields.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		token:   cfg.Token,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// SearchPage fetches a single result page (1-based) for the query.
// Every failure mode degrades to an empty slice: missing token, network
// errors, non-2xx responses, and malformed payloads are logged but never
// surfaced to the caller. Retrying is the caller's decision.
func (c *Client) SearchPage(ctx context.Context, query string, page int) []Song {
	if c.token == "" {
		logger.Warn(ctx, "service.search", "search.skip",
			slog.String("status", "skip"),
			slog.String("reason", "no_api_token"),
		)
		return nil
	}
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	requestURL := c.baseURL + "/search?" + params.Encode()

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logSearchFailure(ctx, query, page, err)
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		logSearchFailure(ctx, query, page, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logSearchFailure(ctx, query, page, fmt.Errorf("unexpected status: %s", resp.Status))
		return nil
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logSearchFailure(ctx, query, page, err)
		return nil
	}

	songs := make([]Song, 0, len(payload.Response.Hits))
	for _, hit := range payload.Response.Hits {
		r := hit.Result
		if r.ID == 0 || r.URL == "" || r.Title == "" || r.PrimaryArtist.Name == "" {
			continue
		}
		title := textnorm.CleanTitle(r.Title)
		artist := textnorm.CleanArtist(r.PrimaryArtist.Name)
		songs = append(songs, Song{
			ID:        strconv.FormatInt(r.ID, 10),
			Title:     title,
			Artist:    artist,
			FullTitle: textnorm.FullTitle(artist, title),
			URL:       r.URL,
		})
	}

	logger.Debug(ctx, "service.search", "search.page",
		slog.String("status", "ok"),
		slog.String("query", logger.SanitizeLimit(query, 128)),
		slog.Int("page", page),
		slog.Int("songs", len(songs)),
		slog.Duration("duration", logger.Took(start)),
	)
	return songs
}

func logSearchFailure(ctx context.Context, query string, page int, err error) {
	logger.Warn(ctx, "service.search", "search.fail",
		slog.String("status", "fail"),
		slog.String("query", logger.SanitizeLimit(query, 128)),
		slog.Int("page", page),
		slog.String("err", err.Error()),
	)
}
