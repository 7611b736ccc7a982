package genius

import (
	"context"
	"errors"
	"strings"

	"lyricsbot/core/logger"
	"lyricsbot/internal/textnorm"

	"log/slog"
)

// ErrNoAPIToken indicates the search feature is unconfigured. It is the
// only error UniversalSearch returns; every remote failure degrades to an
// empty contribution instead.
var ErrNoAPIToken = errors.New("genius: api token is not configured")

// UniversalSearch fetches the first result page for the query and, when
// the transliterated form differs, for that form as well. Results of the
// original query come first in their original order; transliterated
// results are appended only when their ID is not present yet. The merged
// list is truncated to limit.
func (c *Client) UniversalSearch(ctx context.Context, query string, limit int) ([]Song, error) {
	if c.token == "" {
		return nil, ErrNoAPIToken
	}

	combined := c.SearchPage(ctx, query, 1)

	translit := textnorm.Transliterate(query)
	if translit != "" && !strings.EqualFold(translit, query) {
		seen := make(map[string]struct{}, len(combined))
		for _, s := range combined {
			seen[s.ID] = struct{}{}
		}
		for _, s := range c.SearchPage(ctx, translit, 1) {
			if _, dup := seen[s.ID]; dup {
				continue
			}
			seen[s.ID] = struct{}{}
			combined = append(combined, s)
		}
	}

	if limit > 0 && len(combined) > limit {
		combined = combined[:limit]
	}

	logger.Debug(ctx, "service.search", "search.universal",
		slog.String("status", "ok"),
		slog.String("query", logger.SanitizeLimit(query, 128)),
		slog.Int("songs", len(combined)),
	)
	return combined, nil
}
