package textnorm

import "testing"

func TestCleanTitleStripsTrailingParenthetical(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Song (Remix)", "Song"},
		{"Дождь (English Translation)", "Дождь"},
		{"Plain Title", "Plain Title"},
	}
	for _, tc := range cases {
		if got := CleanTitle(tc.in); got != tc.want {
			t.Errorf("CleanTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanTitleKeepsParentheticalOnlyTitle(t *testing.T) {
	if got := CleanTitle("(Interlude)"); got != "(Interlude)" {
		t.Fatalf("CleanTitle((Interlude)) = %q, want (Interlude)", got)
	}
}

func TestCleanTitleDecodesEntities(t *testing.T) {
	if got := CleanTitle("Rock &amp; Roll"); got != "Rock & Roll" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanArtistCollapsesWhitespace(t *testing.T) {
	if got := CleanArtist("  The   Beatles "); got != "The Beatles" {
		t.Fatalf("got %q", got)
	}
}

func TestFullTitle(t *testing.T) {
	if got := FullTitle("Artist", "Song"); got != "Artist - Song" {
		t.Fatalf("got %q", got)
	}
}
