package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/share_registry_app/internal/core/domain"
)

// AdminRepository persists the single system administrator account.
type AdminRepository interface {
	// FindAdminByUsername retrieves the admin account.
	FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error)

	// EnsureAdmin inserts the admin account if it does not exist yet.
	EnsureAdmin(ctx context.Context, admin domain.Admin) error

	// UpdateAdminCredential replaces password hash and hint.
	UpdateAdminCredential(ctx context.Context, username, passwordHash, hint string, now time.Time) error
}
