package models

import "time"

// ChangeLogEntry is the DB row shape of an audit entry.
type ChangeLogEntry struct {
	EntryID     string    `db:"entry_id"`
	ChangedAt   time.Time `db:"changed_at"`
	Editor      string    `db:"editor"`
	TargetTaxID string    `db:"target_tax_id"`
	FieldName   string    `db:"field_name"`
	OldValue    string    `db:"old_value"`
	NewValue    string    `db:"new_value"`
}
