package bot

import (
	"context"
	"regexp"
	"strings"

	tele "gopkg.in/telebot.v4"
	"log/slog"

	"lyricsbot/core/logger"
	tghelpers "lyricsbot/core/telegram/helpers"
	"lyricsbot/internal/genius"
	"lyricsbot/internal/session"
)

var artistTitleRE = regexp.MustCompile(`^(.+?)\s*-\s*(.+)$`)

// handleSearch is the text fallback: any non-command message starts a
// lyrics search.
func (a *App) handleSearch(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	chatID := c.Chat().ID
	query := strings.TrimSpace(c.Text())
	if query == "" || strings.HasPrefix(query, "/") {
		return nil
	}

	u, err := a.users.Get(ctx, chatID)
	if err != nil {
		return tghelpers.SendText(c, a.loc.T(ctx, chatID, "error_generic", nil))
	}
	if u == nil || u.Language == "" {
		welcome := a.loc.In(a.cfg.App.DefaultLanguage, "welcome_new", nil)
		return c.Send(welcome, languageMarkup())
	}
	if err := a.users.Register(ctx, chatID, u.Language, profileFrom(c.Sender())); err != nil {
		logger.Warn(ctx, "tg", "search.profile_refresh_fail",
			slog.String("err", err.Error()),
		)
	}

	searching, _ := c.Bot().Send(tele.ChatID(chatID),
		a.loc.T(ctx, chatID, "searching_lyrics", map[string]string{"query": query}))
	_ = c.Notify(tele.Typing)

	if artist, title, ok := splitArtistTitle(query); ok {
		if a.tryDirectMatch(c, ctx, chatID, artist, title) {
			if searching != nil {
				a.deleteMessage(c, chatID, searching.ID)
			}
			return nil
		}
	}

	songs := a.firstPage(ctx, query)
	if searching != nil {
		a.deleteMessage(c, chatID, searching.ID)
	}
	if len(songs) == 0 {
		return tghelpers.SendText(c, a.loc.T(ctx, chatID, "lyrics_not_found", map[string]string{"query": query}))
	}

	mu := a.sessions.Bind(chatID)
	mu.Lock()
	defer mu.Unlock()

	if old, ok := a.sessions.Get(chatID); ok {
		a.deleteMessage(c, chatID, old.MessageID)
	}
	sess := session.New(chatID, query, songs)
	a.sessions.Replace(chatID, sess)
	return a.renderList(c, ctx, sess)
}

// tryDirectMatch handles "Artist - Title" queries: when the top search
// hit matches both parts, the lyrics are sent straight away without a
// listing. Reports whether lyrics were delivered.
func (a *App) tryDirectMatch(c tele.Context, ctx context.Context, chatID int64, artist, title string) bool {
	songs, err := a.search.UniversalSearch(ctx, artist+" - "+title, 1)
	if err != nil || len(songs) == 0 || songs[0].URL == "" {
		return false
	}
	song := songs[0]
	if !strings.Contains(strings.ToLower(song.Title), strings.ToLower(title)) ||
		!strings.Contains(strings.ToLower(song.Artist), strings.ToLower(artist)) {
		return false
	}

	text, err := a.lyrics.Extract(ctx, song.URL)
	if err != nil {
		return false
	}
	logger.Debug(ctx, "tg", "search.direct_hit",
		slog.String("query", artist+" - "+title),
		slog.String("song_id", song.ID),
	)
	_ = a.sendLyrics(c, ctx, chatID, song, text)
	return true
}

// firstPage fetches the listing's opening page through the universal
// search, so a Cyrillic query also surfaces hits for its transliterated
// form. Later pages go through pageFetcher.
func (a *App) firstPage(ctx context.Context, query string) []genius.Song {
	songs, err := a.search.UniversalSearch(ctx, query, a.cfg.App.PageSize)
	if err != nil {
		logger.Warn(ctx, "tg", "search.universal_fail",
			slog.String("err", err.Error()),
		)
		return nil
	}
	return songs
}

// pageFetcher builds the fetch function used by session pagination.
// Every page repeats the stored query and is trimmed to the display
// page size.
func (a *App) pageFetcher(ctx context.Context, query string) session.FetchFunc {
	return func(page int) []genius.Song {
		songs := a.search.SearchPage(ctx, query, page)
		if len(songs) > a.cfg.App.PageSize {
			songs = songs[:a.cfg.App.PageSize]
		}
		return songs
	}
}

// sendLyrics delivers the lyrics with a localized header, chunking when
// the whole message would exceed the Telegram limit.
func (a *App) sendLyrics(c tele.Context, ctx context.Context, chatID int64, song genius.Song, text string) error {
	artistBlock := ""
	if song.Artist != "" {
		artistBlock = a.loc.T(ctx, chatID, "artist_with_dash", map[string]string{"artist": song.Artist})
	}
	header := a.loc.T(ctx, chatID, "lyrics_found", map[string]string{
		"title":        song.Title,
		"artist_block": artistBlock,
	})

	full := header + "\n\n" + text
	if len([]rune(full)) <= maxMessageLen {
		return c.Send(full)
	}

	header += a.loc.T(ctx, chatID, "lyrics_too_long", nil)
	if err := c.Send(header); err != nil {
		return err
	}
	for _, part := range splitLyrics(text) {
		if err := c.Send(part); err != nil {
			return err
		}
	}
	return nil
}

func splitArtistTitle(query string) (artist, title string, ok bool) {
	m := artistTitleRE.FindStringSubmatch(query)
	if m == nil {
		return "", "", false
	}
	artist = strings.TrimSpace(m[1])
	title = strings.TrimSpace(m[2])
	if artist == "" || title == "" {
		return "", "", false
	}
	return artist, title, true
}
