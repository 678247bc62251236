package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/share_registry_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ShareholderReader defines read operations over the share register.
type ShareholderReader interface {
	// FindShareholderByTaxID retrieves one register entry.
	FindShareholderByTaxID(ctx context.Context, taxID string) (*domain.Shareholder, error)

	// ListShareholders retrieves a page of entries, optionally filtered by a
	// case-insensitive match on name or tax ID.
	ListShareholders(ctx context.Context, search string, limit, offset int) ([]domain.Shareholder, error)

	// CountAndTotalShares returns the register headcount and the sum of all balances.
	CountAndTotalShares(ctx context.Context) (count int64, totalShares int64, err error)
}

// ShareholderWriter defines profile-level write operations. None of these
// touch shares_held; balance mutation belongs to the ledger methods below.
type ShareholderWriter interface {
	// SaveShareholder inserts a new register entry (zero shares, no credential).
	SaveShareholder(ctx context.Context, s domain.Shareholder) error

	// UpdateShareholder updates profile fields of an existing entry.
	UpdateShareholder(ctx context.Context, s domain.Shareholder) error

	// UpdateCredential replaces the stored password hash and hint.
	UpdateCredential(ctx context.Context, taxID, passwordHash, hint string, now time.Time) error

	// DeleteShareholder removes one entry.
	DeleteShareholder(ctx context.Context, taxID string) error

	// DeleteShareholders removes a batch of entries and reports how many went away.
	DeleteShareholders(ctx context.Context, taxIDs []string) (int64, error)
}

// ShareholderLedgerFacade exposes the balance-mutation primitives used by the
// ledger repository inside its own DB transactions.
type ShareholderLedgerFacade interface {
	// FindShareholdersForUpdate loads the named rows with FOR UPDATE locks.
	// Must be called within a transaction. Missing rows are reported via
	// apperrors.ErrNotFound.
	FindShareholdersForUpdate(ctx context.Context, tx pgx.Tx, taxIDs []string) (map[string]domain.Shareholder, error)

	// ApplyShareDeltasInTx applies signed balance changes to locked rows.
	ApplyShareDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]int64, updatedBy string, now time.Time) error

	// SetShareCountInTx overwrites one balance (import/corrective use only).
	SetShareCountInTx(ctx context.Context, tx pgx.Tx, taxID string, amount int64, updatedBy string, now time.Time) error
}

// ShareholderRepository combines all share-register persistence concerns.
type ShareholderRepository interface {
	ShareholderReader
	ShareholderWriter
	ShareholderLedgerFacade

	// SetShareCount overwrites one balance outside any caller transaction.
	SetShareCount(ctx context.Context, taxID string, amount int64, updatedBy string, now time.Time) error
}
