package users

import (
	"context"
	"log/slog"
	"time"

	"lyricsbot/core/logger"
)

const component = "service.users"

// Service wraps the repository with logging. Read failures degrade to
// "user unknown" so a broken database never blocks answering a chat.
type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, chatID int64) (*User, error) {
	u, err := s.repo.Get(ctx, chatID)
	if err != nil {
		logger.Error(ctx, component, "user.get_fail",
			slog.String("status", "fail"),
			slog.Int64("chat_id", chatID),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return u, nil
}

// Register upserts the user with the given language and profile.
func (s *Service) Register(ctx context.Context, chatID int64, language string, p Profile) error {
	start := time.Now()
	if err := s.repo.Upsert(ctx, chatID, language, p); err != nil {
		logger.Error(ctx, component, "user.upsert_fail",
			slog.String("status", "fail"),
			slog.Int64("chat_id", chatID),
			slog.String("err", err.Error()),
		)
		return err
	}
	logger.Debug(ctx, component, "user.upsert",
		slog.String("status", "ok"),
		slog.Int64("chat_id", chatID),
		slog.String("lang", language),
		slog.Duration("duration", logger.Took(start)),
	)
	return nil
}

func (s *Service) SetLanguage(ctx context.Context, chatID int64, language string) error {
	if err := s.repo.SetLanguage(ctx, chatID, language); err != nil {
		logger.Error(ctx, component, "user.set_lang_fail",
			slog.String("status", "fail"),
			slog.Int64("chat_id", chatID),
			slog.String("lang", language),
			slog.String("err", err.Error()),
		)
		return err
	}
	logger.Info(ctx, component, "user.set_lang",
		slog.String("status", "ok"),
		slog.Int64("chat_id", chatID),
		slog.String("lang", language),
	)
	return nil
}

// Language returns the user's stored language, or "" when the user is
// unknown or the lookup failed.
func (s *Service) Language(ctx context.Context, chatID int64) string {
	u, err := s.repo.Get(ctx, chatID)
	if err != nil || u == nil {
		return ""
	}
	return u.Language
}
