package domain

import "time"

// ChangeLogEntry records a single field change from a profile edit.
// One entry is appended per changed field; the log itself is append-only.
type ChangeLogEntry struct {
	EntryID     string    `json:"entryID"`
	ChangedAt   time.Time `json:"changedAt"`
	Editor      string    `json:"editor"`
	TargetTaxID string    `json:"targetTaxID"`
	FieldName   string    `json:"fieldName"`
	OldValue    string    `json:"oldValue"`
	NewValue    string    `json:"newValue"`
}
