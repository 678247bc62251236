package models

import "time"

// Admin is the DB row shape of the system administrator account.
type Admin struct {
	Username      string    `db:"username"`
	PasswordHash  string    `db:"password_hash"`
	Email         string    `db:"email"`
	PasswordHint  string    `db:"password_hint"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
