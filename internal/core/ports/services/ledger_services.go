package services

import (
	"context"

	"github.com/SscSPs/share_registry_app/internal/core/domain"
	"github.com/SscSPs/share_registry_app/internal/dto"
)

// LedgerSvcFacade bundles every operation that moves shares. All balance
// mutation in the system funnels through this facade.
type LedgerSvcFacade interface {
	// IssueShares credits newly issued shares and appends a committed
	// issuance entry.
	IssueShares(ctx context.Context, principal domain.Principal, req dto.IssueSharesRequest) (*domain.ShareTransaction, error)

	// DirectTransfer moves shares between two holders using the
	// intent/commit protocol, outside the request workflow.
	DirectTransfer(ctx context.Context, principal domain.Principal, req dto.DirectTransferRequest) (*domain.ShareTransaction, error)

	// SetShareCount overwrites one balance to an absolute value, recording
	// the correction in the ledger.
	SetShareCount(ctx context.Context, principal domain.Principal, taxID string, req dto.SetShareCountRequest) error

	// ListTransactions pages through committed ledger history, newest first.
	ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.ShareTransaction, *string, error)

	// RecoverStalePending sweeps PENDING intents older than the configured
	// window to FAILED. Run at startup and on a schedule.
	RecoverStalePending(ctx context.Context) (int64, error)
}
