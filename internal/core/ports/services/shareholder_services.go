package services

import (
	"context"

	"github.com/SscSPs/share_registry_app/internal/core/domain"
	"github.com/SscSPs/share_registry_app/internal/dto"
)

// ShareholderSvcFacade bundles share-register maintenance operations.
// Balance mutation is deliberately absent; that belongs to LedgerSvcFacade.
type ShareholderSvcFacade interface {
	// CreateShareholder registers a new entry with zero shares.
	CreateShareholder(ctx context.Context, principal domain.Principal, req dto.UpsertShareholderRequest) (*domain.Shareholder, error)

	// UpdateShareholder updates administrative profile fields of an entry.
	UpdateShareholder(ctx context.Context, principal domain.Principal, taxID string, req dto.UpsertShareholderRequest) (*domain.Shareholder, error)

	// UpdateOwnProfile lets a shareholder edit their own contact fields,
	// appending one change-log entry per changed field.
	UpdateOwnProfile(ctx context.Context, principal domain.Principal, req dto.UpdateProfileRequest) (*domain.Shareholder, error)

	// GetShareholder fetches one entry. Shareholders may only fetch themselves.
	GetShareholder(ctx context.Context, principal domain.Principal, taxID string) (*domain.Shareholder, error)

	// ListShareholders pages through the register with an optional search.
	ListShareholders(ctx context.Context, search string, limit, offset int) ([]domain.Shareholder, error)

	// DeleteShareholder removes one entry.
	DeleteShareholder(ctx context.Context, taxID string) error

	// BatchDeleteShareholders removes a batch of entries and reports the count.
	BatchDeleteShareholders(ctx context.Context, taxIDs []string) (int64, error)

	// BulkImport upserts rows from an uploaded register snapshot. When
	// replaceShares is false the imported quantities accumulate onto any
	// existing balance.
	BulkImport(ctx context.Context, principal domain.Principal, req dto.BulkImportRequest) (*dto.BulkImportResponse, error)

	// RegistrySummary returns headcount and total outstanding shares.
	RegistrySummary(ctx context.Context) (*dto.RegistrySummaryResponse, error)

	// GetChangeLog pages through one entry's profile-edit audit trail.
	GetChangeLog(ctx context.Context, principal domain.Principal, taxID string, limit, offset int) ([]domain.ChangeLogEntry, error)
}
