// Package bot wires the lyrics search features to the Telegram runtime.
package bot

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lyricsbot/core/bootstrap"
	coretelegram "lyricsbot/core/telegram"
	"lyricsbot/core/telegram/commands"
	"lyricsbot/core/telegram/router"
	"lyricsbot/internal/genius"
	"lyricsbot/internal/i18n"
	"lyricsbot/internal/lyrics"
	"lyricsbot/internal/session"
	"lyricsbot/internal/users"
)

// userStore is the slice of the users service the handlers call.
type userStore interface {
	Get(ctx context.Context, chatID int64) (*users.User, error)
	Register(ctx context.Context, chatID int64, language string, p users.Profile) error
	SetLanguage(ctx context.Context, chatID int64, language string) error
}

// App aggregates the services behind the bot handlers.
type App struct {
	cfg      *Config
	db       *sqlx.DB
	users    userStore
	loc      *i18n.Localizer
	search   *genius.Client
	lyrics   *lyrics.Extractor
	sessions *session.Store
}

// Bootstrap initializes infrastructure and builds the application.
func Bootstrap(cfg *Config) (*App, error) {
	res, err := bootstrap.Run(bootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	usersSvc := users.NewService(users.NewRepo(res.DB))
	loc, err := i18n.Load(cfg.App.LocalesDir, usersSvc)
	if err != nil {
		return nil, fmt.Errorf("bot: %w", err)
	}

	return &App{
		cfg:   cfg,
		db:    res.DB,
		users: usersSvc,
		loc:   loc,
		search: genius.NewClient(genius.Config{
			Token:   cfg.Genius.Token,
			BaseURL: cfg.Genius.BaseURL,
			Timeout: cfg.GeniusTimeout(),
		}),
		lyrics: lyrics.NewExtractor(lyrics.Config{
			Timeout:   cfg.LyricsTimeout(),
			UserAgent: cfg.Lyrics.UserAgent,
		}),
		sessions: session.NewStore(),
	}, nil
}

// TelegramRunOptions assembles registry, routes, and middlewares for
// the shared Telegram runtime.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Start the bot and pick a language",
	})
	reg.RegisterCommand("/language", commands.Command{
		Handler:     a.handleLanguage,
		Description: "Change the interface language",
	})
	reg.SetTextFallback(a.handleSearch)

	for _, key := range []string{cbPageNext, cbPagePrev, cbListClose, cbSongPick, cbSetLang} {
		if err := reg.RegisterCallback(key, a.handleCallback); err != nil {
			return coretelegram.RunOptions{}, err
		}
	}

	core := a.cfg.CoreConfig()
	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: core.Telegram.AdminID,
	})
	routes = append(routes, router.TextRoutes(nil, reg, router.TextOptions{})...)
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))

	return coretelegram.RunOptions{
		Config:      core,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(core, nil),
		Routes:      routes,
	}, nil
}
