package bot

import (
	"fmt"
	"html"

	tele "gopkg.in/telebot.v4"
	"log/slog"

	"lyricsbot/core/logger"
	"lyricsbot/core/telegram/format"
	tghelpers "lyricsbot/core/telegram/helpers"
	"lyricsbot/core/telegram/keyboard"
	"lyricsbot/internal/users"
)

// handleStart registers the user. New users get the language keyboard
// in the default language; returning users get a short reminder of how
// the bot works.
func (a *App) handleStart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	chatID := c.Chat().ID
	profile := profileFrom(c.Sender())

	u, err := a.users.Get(ctx, chatID)
	if err != nil {
		return err
	}

	if u == nil || u.Language == "" {
		if err := a.users.Register(ctx, chatID, a.cfg.App.DefaultLanguage, profile); err != nil {
			return err
		}
		welcome := a.loc.In(a.cfg.App.DefaultLanguage, "welcome_new", nil)
		if err := c.Send(welcome, languageMarkup()); err != nil {
			return err
		}
		a.notifyNewUser(c, chatID, profile)
		return nil
	}

	if err := a.users.Register(ctx, chatID, u.Language, profile); err != nil {
		return err
	}
	return tghelpers.SendText(c, a.loc.T(ctx, chatID, "welcome_existing", nil))
}

// handleLanguage shows the language keyboard.
func (a *App) handleLanguage(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	prompt := a.loc.T(ctx, c.Chat().ID, "language_select_prompt", nil)
	return c.Send(prompt, languageMarkup())
}

func languageMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "🇺🇿 O'zbekcha", Unique: cbSetLang, Data: "uz"},
		{Text: "🇷🇺 Русский", Unique: cbSetLang, Data: "ru"},
		{Text: "🇬🇧 English", Unique: cbSetLang, Data: "en"},
	})
}

// notifyNewUser posts a registration notice to the admin channel, if
// one is configured. Failures are logged and never surface to the user.
func (a *App) notifyNewUser(c tele.Context, chatID int64, p users.Profile) {
	channelID := a.cfg.App.ChannelID
	if channelID == 0 {
		return
	}
	ctx := tghelpers.BuildContext(c)

	name := format.DerefString(p.FirstName, "")
	if last := format.DerefString(p.LastName, ""); last != "" {
		name += " " + last
	}
	userLink := fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, chatID, html.EscapeString(name))

	text := "✅ <b>Yangi foydalanuvchi!</b>\n\n" +
		fmt.Sprintf("👤 <b>Foydalanuvchi:</b> %s\n", userLink) +
		fmt.Sprintf("🆔 <b>ID:</b> <code>%d</code>\n", chatID)
	if username := format.DerefString(p.Username, ""); username != "" {
		text += fmt.Sprintf("🪪 <b>Username:</b> @%s", html.EscapeString(username))
	}

	_, err := c.Bot().Send(tele.ChatID(channelID), text, &tele.SendOptions{ParseMode: tele.ModeHTML})
	if err != nil {
		logger.Warn(ctx, "tg", "notify.channel_fail",
			slog.Int64("chat_id", channelID),
			slog.String("err", err.Error()),
		)
	}
}

func profileFrom(u *tele.User) users.Profile {
	if u == nil {
		return users.Profile{}
	}
	return users.Profile{
		FirstName: optional(u.FirstName),
		LastName:  optional(u.LastName),
		Username:  optional(u.Username),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
