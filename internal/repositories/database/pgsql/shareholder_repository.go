package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/share_registry_app/internal/apperrors"
	"github.com/SscSPs/share_registry_app/internal/core/domain"
	portsrepo "github.com/SscSPs/share_registry_app/internal/core/ports/repositories"
	"github.com/SscSPs/share_registry_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxShareholderRepository struct {
	BaseRepository
}

// newPgxShareholderRepository creates a new repository for share register data.
func newPgxShareholderRepository(pool *pgxpool.Pool) portsrepo.ShareholderRepository {
	return &PgxShareholderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxShareholderRepository implements portsrepo.ShareholderRepository
var _ portsrepo.ShareholderRepository = (*PgxShareholderRepository)(nil)

// Helper to convert domain.Shareholder to models.Shareholder for DB storage
func toModelShareholder(d domain.Shareholder) models.Shareholder {
	var hash sql.NullString
	if d.PasswordHash != nil && *d.PasswordHash != "" {
		hash = sql.NullString{String: *d.PasswordHash, Valid: true}
	}
	return models.Shareholder{
		TaxID:          d.TaxID,
		Name:           d.Name,
		HolderType:     models.HolderType(d.HolderType),
		Representative: d.Representative,
		Address:        d.Address,
		Email:          d.Email,
		Phone:          d.Phone,
		SharesHeld:     d.SharesHeld,
		PasswordHash:   hash,
		PasswordHint:   d.PasswordHint,
		IDImageURL:     d.IDImageURL,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Shareholder from DB to domain.Shareholder
func toDomainShareholder(m models.Shareholder) domain.Shareholder {
	var hash *string
	if m.PasswordHash.Valid {
		h := m.PasswordHash.String
		hash = &h
	}
	return domain.Shareholder{
		TaxID:          m.TaxID,
		Name:           m.Name,
		HolderType:     domain.HolderType(m.HolderType),
		Representative: m.Representative,
		Address:        m.Address,
		Email:          m.Email,
		Phone:          m.Phone,
		SharesHeld:     m.SharesHeld,
		PasswordHash:   hash,
		PasswordHint:   m.PasswordHint,
		IDImageURL:     m.IDImageURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const shareholderColumns = `tax_id, name, holder_type, representative, address, email, phone, shares_held, password_hash, password_hint, id_image_url, created_at, created_by, last_updated_at, last_updated_by`

func scanShareholder(row pgx.Row) (models.Shareholder, error) {
	var m models.Shareholder
	err := row.Scan(
		&m.TaxID,
		&m.Name,
		&m.HolderType,
		&m.Representative,
		&m.Address,
		&m.Email,
		&m.Phone,
		&m.SharesHeld,
		&m.PasswordHash,
		&m.PasswordHint,
		&m.IDImageURL,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveShareholder inserts a new register entry.
func (r *PgxShareholderRepository) SaveShareholder(ctx context.Context, s domain.Shareholder) error {
	m := toModelShareholder(s)

	query := `
		INSERT INTO shareholders (` + shareholderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TaxID,
		m.Name,
		m.HolderType,
		m.Representative,
		m.Address,
		m.Email,
		m.Phone,
		m.SharesHeld,
		m.PasswordHash,
		m.PasswordHint,
		m.IDImageURL,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: shareholder with tax ID %s already exists", apperrors.ErrDuplicate, m.TaxID)
		}
		return fmt.Errorf("failed to save shareholder %s: %w", m.TaxID, err)
	}
	return nil
}

// UpdateShareholder updates profile fields of an existing entry. The balance
// and credential columns are deliberately left out of the statement.
func (r *PgxShareholderRepository) UpdateShareholder(ctx context.Context, s domain.Shareholder) error {
	m := toModelShareholder(s)

	query := `
		UPDATE shareholders
		SET name = $2, holder_type = $3, representative = $4, address = $5, email = $6, phone = $7, password_hint = $8, id_image_url = $9, last_updated_at = $10, last_updated_by = $11
		WHERE tax_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query,
		m.TaxID,
		m.Name,
		m.HolderType,
		m.Representative,
		m.Address,
		m.Email,
		m.Phone,
		m.PasswordHint,
		m.IDImageURL,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update shareholder %s: %w", m.TaxID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: shareholder %s not found for update", apperrors.ErrNotFound, m.TaxID)
	}
	return nil
}

// UpdateCredential replaces the stored password hash and hint.
func (r *PgxShareholderRepository) UpdateCredential(ctx context.Context, taxID, passwordHash, hint string, now time.Time) error {
	query := `
		UPDATE shareholders
		SET password_hash = $2, password_hint = $3, last_updated_at = $4, last_updated_by = $1
		WHERE tax_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query, taxID, passwordHash, hint, now)
	if err != nil {
		return fmt.Errorf("failed to update credential for %s: %w", taxID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: shareholder %s not found for credential update", apperrors.ErrNotFound, taxID)
	}
	return nil
}

// FindShareholderByTaxID retrieves one register entry.
func (r *PgxShareholderRepository) FindShareholderByTaxID(ctx context.Context, taxID string) (*domain.Shareholder, error) {
	query := `SELECT ` + shareholderColumns + ` FROM shareholders WHERE tax_id = $1;`

	m, err := scanShareholder(r.Pool.QueryRow(ctx, query, taxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: shareholder %s", apperrors.ErrNotFound, taxID)
		}
		return nil, fmt.Errorf("failed to find shareholder %s: %w", taxID, err)
	}

	d := toDomainShareholder(m)
	return &d, nil
}

// ListShareholders retrieves a page of entries, optionally filtered by a
// case-insensitive match on name or tax ID.
func (r *PgxShareholderRepository) ListShareholders(ctx context.Context, search string, limit, offset int) ([]domain.Shareholder, error) {
	query := `
		SELECT ` + shareholderColumns + `
		FROM shareholders
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR tax_id ILIKE '%' || $1 || '%')
		ORDER BY name, tax_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list shareholders: %w", err)
	}
	defer rows.Close()

	var result []domain.Shareholder
	for rows.Next() {
		m, err := scanShareholder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shareholder row: %w", err)
		}
		result = append(result, toDomainShareholder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shareholder rows: %w", err)
	}
	return result, nil
}

// CountAndTotalShares returns the register headcount and the sum of all balances.
func (r *PgxShareholderRepository) CountAndTotalShares(ctx context.Context) (int64, int64, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(shares_held), 0) FROM shareholders;`

	var count, total int64
	if err := r.Pool.QueryRow(ctx, query).Scan(&count, &total); err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate register summary: %w", err)
	}
	return count, total, nil
}

// DeleteShareholder removes one entry.
func (r *PgxShareholderRepository) DeleteShareholder(ctx context.Context, taxID string) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM shareholders WHERE tax_id = $1;`, taxID)
	if err != nil {
		return fmt.Errorf("failed to delete shareholder %s: %w", taxID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: shareholder %s", apperrors.ErrNotFound, taxID)
	}
	return nil
}

// DeleteShareholders removes a batch of entries and reports how many went away.
func (r *PgxShareholderRepository) DeleteShareholders(ctx context.Context, taxIDs []string) (int64, error) {
	if len(taxIDs) == 0 {
		return 0, nil
	}
	ct, err := r.Pool.Exec(ctx, `DELETE FROM shareholders WHERE tax_id = ANY($1);`, taxIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to batch delete shareholders: %w", err)
	}
	return ct.RowsAffected(), nil
}

// FindShareholdersForUpdate retrieves the named rows and locks them for update.
// Must be called within a transaction.
func (r *PgxShareholderRepository) FindShareholdersForUpdate(ctx context.Context, tx pgx.Tx, taxIDs []string) (map[string]domain.Shareholder, error) {
	if len(taxIDs) == 0 {
		return map[string]domain.Shareholder{}, nil
	}

	query := `
		SELECT ` + shareholderColumns + `
		FROM shareholders
		WHERE tax_id = ANY($1)
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, taxIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query shareholders for update: %w", err)
	}
	defer rows.Close()

	holders := make(map[string]domain.Shareholder)
	for rows.Next() {
		m, err := scanShareholder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked shareholder row: %w", err)
		}
		holders[m.TaxID] = toDomainShareholder(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked shareholder rows: %w", err)
	}

	// Check that all requested rows were found and locked
	if len(holders) != len(taxIDs) {
		missing := []string{}
		for _, id := range taxIDs {
			if _, found := holders[id]; !found {
				missing = append(missing, id)
			}
		}
		return nil, fmt.Errorf("%w: shareholders not found for locking: %v", apperrors.ErrNotFound, missing)
	}

	return holders, nil
}

// ApplyShareDeltasInTx applies signed balance changes to locked rows.
func (r *PgxShareholderRepository) ApplyShareDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]int64, updatedBy string, now time.Time) error {
	if len(deltas) == 0 {
		return nil
	}

	query := `
		UPDATE shareholders
		SET shares_held = shares_held + $2, last_updated_at = $3, last_updated_by = $4
		WHERE tax_id = $1;
	`

	batch := &pgx.Batch{}
	taxIDs := make([]string, 0, len(deltas))
	for taxID, delta := range deltas {
		if delta != 0 {
			batch.Queue(query, taxID, delta, now, updatedBy)
			taxIDs = append(taxIDs, taxID)
		}
	}
	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to apply share delta for %s: %w", taxIDs[i], err)
			}
		} else if ct.RowsAffected() == 0 {
			if batchErr == nil {
				batchErr = fmt.Errorf("%w: shareholder %s not found during delta apply", apperrors.ErrNotFound, taxIDs[i])
			}
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close share delta batch: %w", err)
	}
	return batchErr
}

// SetShareCountInTx overwrites one balance inside a caller transaction.
func (r *PgxShareholderRepository) SetShareCountInTx(ctx context.Context, tx pgx.Tx, taxID string, amount int64, updatedBy string, now time.Time) error {
	return setShareCountExec(ctx, tx, taxID, amount, updatedBy, now)
}

// SetShareCount overwrites one balance outside any caller transaction.
func (r *PgxShareholderRepository) SetShareCount(ctx context.Context, taxID string, amount int64, updatedBy string, now time.Time) error {
	return setShareCountExec(ctx, r.Pool, taxID, amount, updatedBy, now)
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func setShareCountExec(ctx context.Context, db execer, taxID string, amount int64, updatedBy string, now time.Time) error {
	query := `
		UPDATE shareholders
		SET shares_held = $2, last_updated_at = $3, last_updated_by = $4
		WHERE tax_id = $1;
	`
	ct, err := db.Exec(ctx, query, taxID, amount, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to set share count for %s: %w", taxID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: shareholder %s not found for share count set", apperrors.ErrNotFound, taxID)
	}
	return nil
}
