package textnorm

import "testing"

func TestTransliterateCyrillic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"привет", "privet"},
		{"Щедрость", "Shchedrost"},
		{"ёлка", "yolka"},
		{"объект", "ob'ekt"},
	}
	for _, tc := range cases {
		if got := Transliterate(tc.in); got != tc.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTransliterateUzbekLetters(t *testing.T) {
	if got := Transliterate("қўшиқ"); got != "qo'shiq" {
		t.Fatalf("Transliterate(қўшиқ) = %q, want qo'shiq", got)
	}
	if got := Transliterate("Ғалаба ҳақида"); got != "G'alaba haqida" {
		t.Fatalf("Transliterate(Ғалаба ҳақида) = %q", got)
	}
}

func TestTransliterateLatinShortCircuit(t *testing.T) {
	for _, in := range []string{"hello world", "Eminem - Stan", "abc 123!"} {
		if got := Transliterate(in); got != in {
			t.Errorf("Transliterate(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestTransliterateIdempotentOnLatin(t *testing.T) {
	once := Transliterate("привет mir")
	twice := Transliterate(once)
	if once != twice {
		t.Fatalf("second pass changed output: %q -> %q", once, twice)
	}
}

func TestTransliterateMixedAndUnmapped(t *testing.T) {
	// Digits, punctuation and unmapped runes pass through.
	if got := Transliterate("до-ре №5"); got != "do-re №5" {
		t.Fatalf("got %q", got)
	}
	if got := Transliterate(""); got != "" {
		t.Fatalf("empty input: got %q", got)
	}
}
