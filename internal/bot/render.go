package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tele "gopkg.in/telebot.v4"
	"log/slog"

	"lyricsbot/core/logger"
	"lyricsbot/core/telegram/format"
	"lyricsbot/core/telegram/keyboard"
	"lyricsbot/internal/session"
)

const selectButtonsPerRow = 5

func escapeMD(text string) string {
	out, err := format.EscapeMarkdown(text, format.MarkdownV1, "")
	if err != nil {
		return text
	}
	return out
}

// listingText builds the numbered song list shown above the keyboard.
func (a *App) listingText(ctx context.Context, chatID int64, sess *session.Session) string {
	header := fmt.Sprintf("*%s* - %s\n(%s)\n%s\n\n",
		escapeMD(sess.Query),
		a.loc.T(ctx, chatID, "artist_songs_found_title", nil),
		a.loc.T(ctx, chatID, "page_indicator", map[string]string{"page": strconv.Itoa(sess.Page)}),
		a.loc.T(ctx, chatID, "select_song_prompt", nil),
	)
	body := ""
	for i, song := range sess.Songs {
		title := song.FullTitle
		if title == "" {
			title = song.Title
		}
		body += fmt.Sprintf("%d. %s\n", i+1, escapeMD(title))
	}
	return header + body
}

// listingMarkup builds numbered select buttons carrying song IDs, five
// per row, and a prev/close/next navigation row.
func listingMarkup(sess *session.Session) *tele.ReplyMarkup {
	var rows [][]keyboard.InlineBtn
	var row []keyboard.InlineBtn
	for i, song := range sess.Songs {
		row = append(row, keyboard.InlineBtn{
			Text:   strconv.Itoa(i + 1),
			Unique: cbSongPick,
			Data:   song.ID,
		})
		if len(row) == selectButtonsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, []keyboard.InlineBtn{
		{Text: "⬅️", Unique: cbPagePrev},
		{Text: "❌", Unique: cbListClose},
		{Text: "➡️", Unique: cbPageNext},
	})
	return keyboard.InlineButtonsRows(rows...)
}

// renderList edits the listing message in place, or sends a fresh one
// when there is nothing to edit. An edit that fails for any reason
// other than unchanged content falls back to delete plus resend so the
// chat always ends up with a working listing.
func (a *App) renderList(c tele.Context, ctx context.Context, sess *session.Session) error {
	chatID := sess.ChatID
	text := a.listingText(ctx, chatID, sess)
	markup := listingMarkup(sess)
	opts := &tele.SendOptions{ParseMode: tele.ModeMarkdown, ReplyMarkup: markup}

	if sess.MessageID == 0 {
		return a.sendNewListing(c, sess, text, opts)
	}

	stored := &tele.StoredMessage{
		MessageID: strconv.Itoa(sess.MessageID),
		ChatID:    chatID,
	}
	_, err := c.Bot().Edit(stored, text, opts)
	if err == nil || errors.Is(err, tele.ErrSameMessageContent) {
		return nil
	}

	logger.Warn(ctx, "tg", "listing.edit_fail",
		slog.Int("message_id", sess.MessageID),
		slog.String("err", err.Error()),
	)
	a.deleteMessage(c, chatID, sess.MessageID)
	sess.MessageID = 0
	return a.sendNewListing(c, sess, text, opts)
}

func (a *App) sendNewListing(c tele.Context, sess *session.Session, text string, opts *tele.SendOptions) error {
	msg, err := c.Bot().Send(tele.ChatID(sess.ChatID), text, opts)
	if err != nil {
		return err
	}
	sess.MessageID = msg.ID
	return nil
}

// deleteMessage removes a message, tolerating the usual "already gone"
// failures.
func (a *App) deleteMessage(c tele.Context, chatID int64, messageID int) {
	if messageID == 0 {
		return
	}
	stored := &tele.StoredMessage{
		MessageID: strconv.Itoa(messageID),
		ChatID:    chatID,
	}
	_ = c.Bot().Delete(stored)
}
