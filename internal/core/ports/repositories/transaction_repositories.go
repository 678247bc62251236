package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/share_registry_app/internal/core/domain"
)

// TransactionRepository persists the append-only share ledger and drives the
// intent/commit protocol for transfers.
type TransactionRepository interface {
	// AppendIntent inserts a PENDING ledger row. No balances are touched.
	AppendIntent(ctx context.Context, txn domain.ShareTransaction) error

	// ApplyTransfer runs the commit phase for a previously written intent:
	// within one DB transaction it locks seller and buyer, re-validates the
	// seller balance, applies both deltas and flips the row to COMMITTED.
	// Fails with apperrors.ErrInsufficientShares or apperrors.ErrNotFound
	// without applying anything.
	ApplyTransfer(ctx context.Context, transactionID, sellerTaxID, buyerTaxID string, amount int64, actor string, now time.Time) error

	// SaveIssuance atomically credits one account and appends a COMMITTED
	// issuance row (empty seller) in a single DB transaction.
	SaveIssuance(ctx context.Context, txn domain.ShareTransaction) error

	// MarkTransactionFailed abandons an intent. Only PENDING rows transition.
	MarkTransactionFailed(ctx context.Context, transactionID, actor string, now time.Time) error

	// FindTransactionByID retrieves one ledger row regardless of status.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.ShareTransaction, error)

	// ListCommittedTransactions pages through the visible history, newest
	// first, using token-based pagination.
	ListCommittedTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.ShareTransaction, *string, error)

	// MarkStalePendingFailed flips PENDING intents older than the cutoff to
	// FAILED and returns how many were repaired.
	MarkStalePendingFailed(ctx context.Context, cutoff time.Time, actor string, now time.Time) (int64, error)
}
