package repositories

import (
	"context"

	"github.com/SscSPs/share_registry_app/internal/core/domain"
)

// ChangeLogRepository persists the append-only profile-edit audit trail.
type ChangeLogRepository interface {
	// AppendEntries writes one entry per changed field.
	AppendEntries(ctx context.Context, entries []domain.ChangeLogEntry) error

	// ListEntriesByTarget pages through the audit trail of one shareholder,
	// newest first.
	ListEntriesByTarget(ctx context.Context, targetTaxID string, limit, offset int) ([]domain.ChangeLogEntry, error)
}
