package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repo is the sqlx-backed users repository.
type Repo struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

// Get loads a user by chat. A missing user is (nil, nil), not an error.
func (r *Repo) Get(ctx context.Context, chatID int64) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, `SELECT * FROM users WHERE chat_id = $1`, chatID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("users get: %w", err)
	}
	return &u, nil
}

// Upsert inserts the user or updates an existing row. The language
// always takes the new value; name fields only overwrite when non-nil,
// so a later update without profile data keeps what was stored.
func (r *Repo) Upsert(ctx context.Context, chatID int64, language string, p Profile) error {
	const q = `
		INSERT INTO users (chat_id, language, first_name, last_name, username, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (chat_id) DO UPDATE SET
			language   = excluded.language,
			first_name = COALESCE(excluded.first_name, users.first_name),
			last_name  = COALESCE(excluded.last_name, users.last_name),
			username   = COALESCE(excluded.username, users.username),
			updated_at = now()`
	if _, err := r.db.ExecContext(ctx, q, chatID, language, p.FirstName, p.LastName, p.Username); err != nil {
		return fmt.Errorf("users upsert: %w", err)
	}
	return nil
}

// SetLanguage changes only the language of an existing user.
func (r *Repo) SetLanguage(ctx context.Context, chatID int64, language string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET language = $1, updated_at = now() WHERE chat_id = $2`,
		language, chatID,
	)
	if err != nil {
		return fmt.Errorf("users set language: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Callback arrived before the user row existed.
		return r.Upsert(ctx, chatID, language, Profile{})
	}
	return nil
}
