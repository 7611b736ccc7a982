package bot

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const minimalConfig = `
telegram:
  token: "123:abc"
  run_mode: longpoll
database:
  host: localhost
genius:
  token: "g"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.App.PageSize != 10 {
		t.Fatalf("page size = %d, want 10", cfg.App.PageSize)
	}
	if cfg.App.DefaultLanguage != "ru" || cfg.App.LocalesDir != "locales" {
		t.Fatalf("app defaults = %+v", cfg.App)
	}
	if cfg.GeniusTimeout() != 10*time.Second || cfg.LyricsTimeout() != 15*time.Second {
		t.Fatalf("timeouts = %v / %v", cfg.GeniusTimeout(), cfg.LyricsTimeout())
	}
	if cfg.CoreConfig().Telegram.Token != "123:abc" {
		t.Fatal("core config not exposed")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("APP_PAGE_SIZE", "5")
	t.Setenv("GENIUS_API_TOKEN", "env-token")

	cfg, err := LoadConfig(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.PageSize != 5 {
		t.Fatalf("page size = %d, want env override 5", cfg.App.PageSize)
	}
	if cfg.Genius.Token != "env-token" {
		t.Fatalf("genius token = %q, want env override", cfg.Genius.Token)
	}
}

func TestLoadConfigRequiresToken(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "telegram:\n  run_mode: longpoll\n")); err == nil {
		t.Fatal("expected error for missing telegram token")
	}
}
