package domain

import "time"

// Admin is the single system administrator account.
type Admin struct {
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"`
	Email         string    `json:"email"`
	PasswordHint  string    `json:"passwordHint"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
