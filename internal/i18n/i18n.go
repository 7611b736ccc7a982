// Package i18n renders localized bot messages from YAML locale files.
package i18n

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
	"log/slog"

	"lyricsbot/core/logger"
)

// FallbackLanguage is used when the chat's language is unknown or a key
// is missing from the chat's locale.
const FallbackLanguage = "uz"

// LanguageResolver reports a chat's stored language, "" when unknown.
type LanguageResolver interface {
	Language(ctx context.Context, chatID int64) string
}

// Localizer holds all loaded locales and resolves per-chat messages.
type Localizer struct {
	resolver  LanguageResolver
	locales   map[string]map[string]string
	languages []string
}

// Load reads every *.yml file under dir; the file stem is the language
// code. A file that fails to parse is skipped with a warning rather
// than failing startup.
func Load(dir string, resolver LanguageResolver) (*Localizer, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales dir: %w", err)
	}

	locales := make(map[string]map[string]string)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".yml") {
			continue
		}
		lang := strings.TrimSuffix(name, ".yml")
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn(logger.Background(), "i18n", "locale.read_fail",
				slog.String("lang", lang),
				slog.String("err", err.Error()),
			)
			continue
		}
		messages := make(map[string]string)
		if err := yaml.Unmarshal(raw, &messages); err != nil {
			logger.Warn(logger.Background(), "i18n", "locale.parse_fail",
				slog.String("lang", lang),
				slog.String("err", err.Error()),
			)
			continue
		}
		locales[lang] = messages
	}
	if len(locales) == 0 {
		return nil, fmt.Errorf("i18n: no locales loaded from %s", dir)
	}

	languages := make([]string, 0, len(locales))
	for lang := range locales {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	logger.Info(logger.Background(), "i18n", "locales.loaded",
		slog.String("status", "ok"),
		slog.Int("count", len(languages)),
		slog.String("langs", strings.Join(languages, ", ")),
	)
	return &Localizer{resolver: resolver, locales: locales, languages: languages}, nil
}

// Languages lists the loaded language codes, sorted.
func (l *Localizer) Languages() []string {
	return l.languages
}

// Supported reports whether the language code has a loaded locale.
func (l *Localizer) Supported(lang string) bool {
	_, ok := l.locales[lang]
	return ok
}

// T renders the message for the chat's language. Unknown and unloaded
// languages fall back to FallbackLanguage, as do keys missing from the
// chat's locale. Params substitute {name} placeholders.
func (l *Localizer) T(ctx context.Context, chatID int64, key string, params map[string]string) string {
	lang := l.resolver.Language(ctx, chatID)
	if !l.Supported(lang) {
		lang = FallbackLanguage
	}
	return l.In(lang, key, params)
}

// In renders the message in an explicit language, with the same
// fallback rules as T. A key missing from the fallback locale too is
// logged and rendered as the key itself.
func (l *Localizer) In(lang, key string, params map[string]string) string {
	template, ok := l.locales[lang][key]
	if !ok {
		template, ok = l.locales[FallbackLanguage][key]
	}
	if !ok {
		logger.Warn(logger.Background(), "i18n", "message.missing",
			slog.String("lang", lang),
			slog.String("key", key),
		)
		return key
	}
	for name, value := range params {
		template = strings.ReplaceAll(template, "{"+name+"}", value)
	}
	return template
}
