package bot

import (
	"context"
	"strconv"

	tele "gopkg.in/telebot.v4"

	"lyricsbot/core/telegram/callbacks"
	tghelpers "lyricsbot/core/telegram/helpers"

	"lyricsbot/internal/session"
)

// handleCallback decodes the pressed button into an Action and
// dispatches it. Language changes work without a session; everything
// else requires an active listing and holds the chat lock so page
// fetches and rendering stay atomic per chat.
func (a *App) handleCallback(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	chatID := c.Chat().ID

	action, ok := DecodeAction(callbacks.CallbackKey(c), callbacks.CallbackPayload(c))
	if !ok {
		return c.Respond(&tele.CallbackResponse{})
	}

	if action.Kind == ActionSetLanguage {
		return a.applyLanguage(c, ctx, chatID, action.Language)
	}

	mu := a.sessions.Bind(chatID)
	mu.Lock()
	defer mu.Unlock()

	sess, ok := a.sessions.Get(chatID)
	if !ok {
		if msg := c.Message(); msg != nil {
			a.deleteMessage(c, chatID, msg.ID)
		}
		return c.Respond(&tele.CallbackResponse{
			Text: a.loc.T(ctx, chatID, "list_expired", nil),
		})
	}

	switch action.Kind {
	case ActionAdvance:
		return a.advanceListing(c, ctx, sess)
	case ActionRetreat:
		return a.retreatListing(c, ctx, sess)
	case ActionDismiss:
		return a.dismissListing(c, sess)
	case ActionSelect:
		return a.selectSong(c, ctx, sess, action.SongID)
	}
	return c.Respond(&tele.CallbackResponse{})
}

func (a *App) advanceListing(c tele.Context, ctx context.Context, sess *session.Session) error {
	chatID := sess.ChatID
	_ = c.Respond(&tele.CallbackResponse{
		Text: a.loc.T(ctx, chatID, "loading_page", map[string]string{"page": strconv.Itoa(sess.Page + 1)}),
	})
	if !sess.Advance(a.pageFetcher(ctx, sess.Query)) {
		// Either past the last page or the search backend failed;
		// the chat sees the same answer for both.
		return tghelpers.SendText(c, a.loc.T(ctx, chatID, "no_more_songs", nil))
	}
	return a.renderList(c, ctx, sess)
}

func (a *App) retreatListing(c tele.Context, ctx context.Context, sess *session.Session) error {
	chatID := sess.ChatID
	if sess.Page <= 1 {
		return c.Respond(&tele.CallbackResponse{
			Text: a.loc.T(ctx, chatID, "first_page", nil),
		})
	}
	_ = c.Respond(&tele.CallbackResponse{
		Text: a.loc.T(ctx, chatID, "loading_page", map[string]string{"page": strconv.Itoa(sess.Page - 1)}),
	})
	if !sess.Retreat(a.pageFetcher(ctx, sess.Query)) {
		return tghelpers.SendText(c, a.loc.T(ctx, chatID, "no_more_songs", nil))
	}
	return a.renderList(c, ctx, sess)
}

func (a *App) dismissListing(c tele.Context, sess *session.Session) error {
	a.deleteMessage(c, sess.ChatID, sess.MessageID)
	a.sessions.Remove(sess.ChatID)
	return c.Respond(&tele.CallbackResponse{})
}

func (a *App) selectSong(c tele.Context, ctx context.Context, sess *session.Session, songID string) error {
	chatID := sess.ChatID
	song, ok := sess.Resolve(songID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{
			Text: a.loc.T(ctx, chatID, "song_not_found", nil),
		})
	}
	if song.URL == "" {
		return c.Respond(&tele.CallbackResponse{
			Text: a.loc.T(ctx, chatID, "song_no_url", nil),
		})
	}

	_ = c.Respond(&tele.CallbackResponse{})
	_ = c.Notify(tele.Typing)
	searching, _ := c.Bot().Send(tele.ChatID(chatID),
		a.loc.T(ctx, chatID, "searching_specific_song", map[string]string{"songTitle": song.Title}))

	text, err := a.lyrics.Extract(ctx, song.URL)
	if searching != nil {
		a.deleteMessage(c, chatID, searching.ID)
	}
	if err != nil {
		return tghelpers.SendText(c, a.loc.T(ctx, chatID, "lyrics_not_found", map[string]string{"query": song.FullTitle}))
	}
	return a.sendLyrics(c, ctx, chatID, song, text)
}

// applyLanguage saves the chosen language, rewrites the keyboard
// message into a confirmation, and re-sends the usage hint in the new
// language.
func (a *App) applyLanguage(c tele.Context, ctx context.Context, chatID int64, lang string) error {
	if !a.loc.Supported(lang) {
		return c.Respond(&tele.CallbackResponse{})
	}
	if err := a.users.SetLanguage(ctx, chatID, lang); err != nil {
		_ = tghelpers.SendText(c, a.loc.T(ctx, chatID, "error_db_save", nil))
		return c.Respond(&tele.CallbackResponse{})
	}

	_ = c.Edit(a.loc.T(ctx, chatID, "language_selected", nil), &tele.ReplyMarkup{})
	_ = tghelpers.SendText(c, a.loc.T(ctx, chatID, "welcome_existing", nil))
	return c.Respond(&tele.CallbackResponse{})
}
