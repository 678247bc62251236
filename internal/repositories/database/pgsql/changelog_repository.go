package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/share_registry_app/internal/core/domain"
	portsrepo "github.com/SscSPs/share_registry_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChangeLogRepository struct {
	BaseRepository
}

func newPgxChangeLogRepository(pool *pgxpool.Pool) portsrepo.ChangeLogRepository {
	return &PgxChangeLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ChangeLogRepository = (*PgxChangeLogRepository)(nil)

// AppendEntries writes one row per changed field in a single batch.
func (r *PgxChangeLogRepository) AppendEntries(ctx context.Context, entries []domain.ChangeLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := `
		INSERT INTO change_log (entry_id, changed_at, editor, target_tax_id, field_name, old_value, new_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(query, e.EntryID, e.ChangedAt, e.Editor, e.TargetTaxID, e.FieldName, e.OldValue, e.NewValue)
	}

	br := r.Pool.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to append change log entry %s: %w", entries[i].EntryID, err)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close change log batch: %w", err)
	}
	return batchErr
}

// ListEntriesByTarget pages through one shareholder's audit trail, newest first.
func (r *PgxChangeLogRepository) ListEntriesByTarget(ctx context.Context, targetTaxID string, limit, offset int) ([]domain.ChangeLogEntry, error) {
	query := `
		SELECT entry_id, changed_at, editor, target_tax_id, field_name, old_value, new_value
		FROM change_log
		WHERE target_tax_id = $1
		ORDER BY changed_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, targetTaxID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list change log for %s: %w", targetTaxID, err)
	}
	defer rows.Close()

	var result []domain.ChangeLogEntry
	for rows.Next() {
		var e domain.ChangeLogEntry
		if err := rows.Scan(&e.EntryID, &e.ChangedAt, &e.Editor, &e.TargetTaxID, &e.FieldName, &e.OldValue, &e.NewValue); err != nil {
			return nil, fmt.Errorf("failed to scan change log row: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating change log rows: %w", err)
	}
	return result, nil
}
