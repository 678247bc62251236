package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/share_registry_app/internal/apperrors"
	"github.com/SscSPs/share_registry_app/internal/core/domain"
	portsrepo "github.com/SscSPs/share_registry_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAdminRepository struct {
	BaseRepository
}

func newPgxAdminRepository(pool *pgxpool.Pool) portsrepo.AdminRepository {
	return &PgxAdminRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AdminRepository = (*PgxAdminRepository)(nil)

// FindAdminByUsername retrieves the admin account.
func (r *PgxAdminRepository) FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query := `
		SELECT username, password_hash, email, password_hint, created_at, last_updated_at
		FROM system_admins
		WHERE username = $1;
	`
	var a domain.Admin
	err := r.Pool.QueryRow(ctx, query, username).Scan(
		&a.Username,
		&a.PasswordHash,
		&a.Email,
		&a.PasswordHint,
		&a.CreatedAt,
		&a.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: admin %s", apperrors.ErrNotFound, username)
		}
		return nil, fmt.Errorf("failed to find admin %s: %w", username, err)
	}
	return &a, nil
}

// EnsureAdmin inserts the admin account if it does not exist yet. Safe to
// call on every boot.
func (r *PgxAdminRepository) EnsureAdmin(ctx context.Context, admin domain.Admin) error {
	query := `
		INSERT INTO system_admins (username, password_hash, email, password_hint, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (username) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query,
		admin.Username,
		admin.PasswordHash,
		admin.Email,
		admin.PasswordHint,
		admin.CreatedAt,
		admin.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure admin %s: %w", admin.Username, err)
	}
	return nil
}

// UpdateAdminCredential replaces password hash and hint.
func (r *PgxAdminRepository) UpdateAdminCredential(ctx context.Context, username, passwordHash, hint string, now time.Time) error {
	ct, err := r.Pool.Exec(ctx, `
		UPDATE system_admins
		SET password_hash = $2, password_hint = $3, last_updated_at = $4
		WHERE username = $1;
	`, username, passwordHash, hint, now)
	if err != nil {
		return fmt.Errorf("failed to update admin credential: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: admin %s", apperrors.ErrNotFound, username)
	}
	return nil
}
