// Package lyrics extracts plain lyrics text from third-party song pages.
// Extraction is best effort: a prioritized selector list survives markup
// drift, and every failure mode collapses into ErrLyricsNotFound.
package lyrics

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"lyricsbot/core/logger"

	"github.com/PuerkitoBio/goquery"
	"log/slog"
)

// ErrLyricsNotFound covers fetch failures, timeouts, and pages where no
// selector produced text. Callers never learn which of those happened.
var ErrLyricsNotFound = errors.New("lyrics: not found")

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Config controls the extractor.
type Config struct {
	Timeout   time.Duration
	UserAgent string
}

// Extractor scrapes lyrics pages.
type Extractor struct {
	http      *http.Client
	userAgent string
}

// NewExtractor builds an extractor with defaults for zeroed fields.
func NewExtractor(cfg Config) *Extractor {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Extractor{
		http:      &http.Client{Timeout: timeout},
		userAgent: ua,
	}
}

// Extract fetches the page and returns cleaned lyrics text, or
// ErrLyricsNotFound.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (string, error) {
	if pageURL == "" {
		return "", ErrLyricsNotFound
	}

	start := time.Now()
	raw, err := e.fetch(ctx, pageURL)
	if err != nil {
		logger.Warn(ctx, "service.lyrics", "extract.fetch_fail",
			slog.String("status", "fail"),
			slog.String("url", pageURL),
			slog.String("err", err.Error()),
		)
		return "", ErrLyricsNotFound
	}

	text, selector := extractFromHTML(raw)
	if text == "" {
		logger.Warn(ctx, "service.lyrics", "extract.no_match",
			slog.String("status", "fail"),
			slog.String("url", pageURL),
		)
		return "", ErrLyricsNotFound
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", ErrLyricsNotFound
	}

	logger.Debug(ctx, "service.lyrics", "extract.ok",
		slog.String("status", "ok"),
		slog.String("url", pageURL),
		slog.String("selector", selector),
		slog.Int("count", len(cleaned)),
		slog.Duration("duration", logger.Took(start)),
	)
	return cleaned, nil
}

func (e *Extractor) fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}
	htmlStr, err := doc.Html()
	if err != nil {
		return "", err
	}
	return htmlStr, nil
}

// extractFromHTML walks the selector priority list and returns the raw
// concatenated text of the first selector with a non-empty match, plus
// the winning selector for diagnostics.
func extractFromHTML(rawHTML string) (string, string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", ""
	}

	for _, selector := range lyricsSelectors {
		var b strings.Builder
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			s.Find(artifactSelector).Remove()
			inner, err := s.Html()
			if err != nil || inner == "" {
				b.WriteString(strings.TrimSpace(s.Text()))
				b.WriteString("\n\n")
				return
			}
			inner = lineBreakTagRE.ReplaceAllString(inner, "\n")
			frag, err := goquery.NewDocumentFromReader(strings.NewReader("<div>" + inner + "</div>"))
			if err != nil {
				return
			}
			b.WriteString(strings.TrimSpace(frag.Text()))
			b.WriteString("\n\n")
		})
		if text := strings.TrimSpace(b.String()); text != "" {
			return text, selector
		}
	}
	return "", ""
}

// CleanText strips page boilerplate and section markers, collapses blank
// runs, and decodes HTML entities. Exposed for tests.
func CleanText(text string) string {
	text = strings.TrimSpace(text)
	for _, pattern := range boilerplatePatterns {
		for pattern.MatchString(text) {
			text = pattern.ReplaceAllString(text, "")
			text = strings.TrimLeft(text, " \t\n")
		}
	}
	text = sectionLabelRE.ReplaceAllString(text, "")
	text = anyBracketRE.ReplaceAllString(text, "")
	text = blankRunsRE.ReplaceAllString(text, "\n\n")
	text = html.UnescapeString(text)
	return strings.TrimSpace(text)
}
