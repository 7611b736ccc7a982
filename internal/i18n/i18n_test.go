package i18n

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type stubResolver map[int64]string

func (s stubResolver) Language(_ context.Context, chatID int64) string {
	return s[chatID]
}

func writeLocales(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newLocalizer(t *testing.T, resolver LanguageResolver) *Localizer {
	t.Helper()
	dir := writeLocales(t, map[string]string{
		"uz.yml": "greeting: \"Salom, {name}!\"\nonly_uz: \"faqat\"\n",
		"ru.yml": "greeting: \"Привет, {name}!\"\n",
		"en.yml": "greeting: \"Hello, {name}!\"\n",
	})
	l, err := Load(dir, resolver)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return l
}

func TestTUsesStoredLanguage(t *testing.T) {
	l := newLocalizer(t, stubResolver{1: "en", 2: "ru"})

	if got := l.T(context.Background(), 1, "greeting", map[string]string{"name": "Ann"}); got != "Hello, Ann!" {
		t.Fatalf("en greeting = %q", got)
	}
	if got := l.T(context.Background(), 2, "greeting", map[string]string{"name": "Оля"}); got != "Привет, Оля!" {
		t.Fatalf("ru greeting = %q", got)
	}
}

func TestTFallsBackForUnknownChat(t *testing.T) {
	l := newLocalizer(t, stubResolver{})

	if got := l.T(context.Background(), 99, "greeting", map[string]string{"name": "X"}); got != "Salom, X!" {
		t.Fatalf("fallback greeting = %q", got)
	}
}

func TestTFallsBackForMissingKey(t *testing.T) {
	l := newLocalizer(t, stubResolver{1: "ru"})

	if got := l.T(context.Background(), 1, "only_uz", nil); got != "faqat" {
		t.Fatalf("missing key did not fall back: %q", got)
	}
	if got := l.T(context.Background(), 1, "nope", nil); got != "nope" {
		t.Fatalf("fully missing key = %q, want the key itself", got)
	}
}

func TestLanguagesSortedAndSupported(t *testing.T) {
	l := newLocalizer(t, stubResolver{})

	langs := l.Languages()
	if strings.Join(langs, ",") != "en,ru,uz" {
		t.Fatalf("languages = %v", langs)
	}
	if !l.Supported("uz") || l.Supported("de") {
		t.Fatal("Supported misreports loaded locales")
	}
}

func TestLoadSkipsBrokenLocale(t *testing.T) {
	dir := writeLocales(t, map[string]string{
		"uz.yml":  "greeting: ok\n",
		"bad.yml": "greeting: [unclosed\n",
	})
	l, err := Load(dir, stubResolver{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if l.Supported("bad") {
		t.Fatal("broken locale should be skipped")
	}
}

func TestLoadFailsOnEmptyDir(t *testing.T) {
	if _, err := Load(t.TempDir(), stubResolver{}); err == nil {
		t.Fatal("expected error for a directory without locales")
	}
}
