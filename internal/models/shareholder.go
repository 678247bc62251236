package models

import "database/sql"

// HolderType mirrors domain.HolderType for persistence.
type HolderType string

const (
	Individual HolderType = "INDIVIDUAL"
	Corporate  HolderType = "CORPORATE"
)

// Shareholder is the DB row shape of a share register entry.
type Shareholder struct {
	TaxID          string         `db:"tax_id"`
	Name           string         `db:"name"`
	HolderType     HolderType     `db:"holder_type"`
	Representative string         `db:"representative"`
	Address        string         `db:"address"`
	Email          string         `db:"email"`
	Phone          string         `db:"phone"`
	SharesHeld     int64          `db:"shares_held"`
	PasswordHash   sql.NullString `db:"password_hash"`
	PasswordHint   string         `db:"password_hint"`
	IDImageURL     string         `db:"id_image_url"`
	AuditFields
}
