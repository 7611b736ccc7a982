package textnorm

import (
	"html"
	"regexp"
	"strings"
)

var (
	trailingParenRE = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	whitespaceRE    = regexp.MustCompile(`\s+`)
)

// CleanTitle decodes HTML entities and strips a single trailing
// parenthetical group, e.g. a "(Russian Translation)" suffix appended by
// the search API. A title that is nothing but a parenthetical is kept
// as-is so it does not collapse to an empty string.
func CleanTitle(raw string) string {
	title := html.UnescapeString(raw)
	clean := strings.TrimSpace(trailingParenRE.ReplaceAllString(title, ""))
	if clean == "" {
		clean = strings.TrimSpace(title)
	}
	return CollapseSpaces(clean)
}

// CleanArtist decodes HTML entities and collapses whitespace runs.
func CleanArtist(raw string) string {
	return CollapseSpaces(html.UnescapeString(raw))
}

// FullTitle joins a cleaned artist and title as "artist - title".
func FullTitle(artist, title string) string {
	return artist + " - " + title
}

// CollapseSpaces squeezes internal whitespace runs to single spaces and
// trims the result.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
