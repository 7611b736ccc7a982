package lyrics

import "regexp"

// lyricsSelectors is tried in order against the fetched document; the
// first selector yielding non-empty text wins. Order encodes priority
// from the current Genius markup down to legacy page layouts.
var lyricsSelectors = []string{
	`div[data-lyrics-container="true"]`,
	`div[class*="Lyrics__Container"]`,
	`.lyrics p`,
	`div.song_body-lyrics p`,
	`div.lyrics`,
}

// artifactSelector matches annotation popups and share/embed UI nested
// inside lyric containers. Matched elements are removed before the
// container text is read.
const artifactSelector = `a[href*="genius.com/annotations"],` +
	`button[class*="ReferentFragmentdesktop__ClickTarget"],` +
	`span[class*="ReferentFragmentdesktop__Highlight"],` +
	`div[class*="ReferentFragmentdesktop__HighlightText"],` +
	`[data-exclude-from-selection="true"]`

// boilerplatePatterns strips leading page chrome (contributor counts,
// page-title echoes, embed/share banners). Each pattern is applied
// repeatedly until it no longer matches, in order.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*\d+\s*Contributors?\s*.*Lyrics\s*\n?`),
	regexp.MustCompile(`(?i)^\s*.*?Lyrics\s*(\d+\s*Embed)?\n?`),
	regexp.MustCompile(`(?i)^\s*Embed\s*\n?`),
	regexp.MustCompile(`(?i)^\s*Share URL\s*\n?`),
	regexp.MustCompile(`(?i)^\s*Copy Page URL\s*\n?`),
	regexp.MustCompile(`(?i)^\s*Translations\s*.*?Lyrics\s*\n?`),
	regexp.MustCompile(`(?i)^\s*\[.*?\]\s*Lyrics\s*\n?`),
	regexp.MustCompile(`(?i)^\s*You might also like\s*\n?`),
	regexp.MustCompile(`(?i)^\s*\d+KEmbed\s*\n?`),
}

var (
	sectionLabelRE = regexp.MustCompile(`(?i)\[\s*(Chorus|Verse|Intro|Outro|Bridge|Pre-Chorus|Post-Chorus|Hook|Interlude|Skit|Refrain|Instrumental|Guitar Solo|Solo|Part)\s*\d*\s*:?\s*\]\s*\n?`)
	anyBracketRE   = regexp.MustCompile(`\[[^\]\n]*\]\s*\n?`)
	blankRunsRE    = regexp.MustCompile(`\n{3,}`)
	lineBreakTagRE = regexp.MustCompile(`(?i)<br\s*/?>`)
)
