// Package users stores Telegram users and their language preference.
package users

import "time"

// User is a row of the users table.
type User struct {
	ChatID    int64      `db:"chat_id"`
	Language  string     `db:"language"`
	FirstName *string    `db:"first_name"`
	LastName  *string    `db:"last_name"`
	Username  *string    `db:"username"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// Profile carries the optional identity fields taken from an incoming
// Telegram update. Nil fields never overwrite stored values.
type Profile struct {
	FirstName *string
	LastName  *string
	Username  *string
}
