package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/share_registry_app/internal/apperrors"
	"github.com/SscSPs/share_registry_app/internal/core/domain"
	portsrepo "github.com/SscSPs/share_registry_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/share_registry_app/internal/core/ports/services"
	"github.com/SscSPs/share_registry_app/internal/dto"
	"github.com/google/uuid"
)

// sweepActor is recorded as the updater on rows repaired by the recovery sweep.
const sweepActor = "system:pending-sweep"

type LedgerService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	shareholderRepo portsrepo.ShareholderRepository
	publisher       portssvc.EventPublisher
	pendingSweepAge time.Duration
}

func NewLedgerService(transactionRepo portsrepo.TransactionRepository, shareholderRepo portsrepo.ShareholderRepository, publisher portssvc.EventPublisher, pendingSweepAge time.Duration) *LedgerService {
	return &LedgerService{
		transactionRepo: transactionRepo,
		shareholderRepo: shareholderRepo,
		publisher:       publisher,
		pendingSweepAge: pendingSweepAge,
	}
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// IssueShares credits newly issued shares and appends a committed issuance entry.
func (s *LedgerService) IssueShares(ctx context.Context, principal domain.Principal, req dto.IssueSharesRequest) (*domain.ShareTransaction, error) {
	now := time.Now()
	txn := domain.ShareTransaction{
		TransactionID:   uuid.NewString(),
		TransactionDate: now,
		BuyerTaxID:      req.BuyerTaxID,
		Amount:          req.Amount,
		Reason:          req.Reason,
		Status:          domain.TxnCommitted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.ID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.ID,
		},
	}

	if err := s.transactionRepo.SaveIssuance(ctx, txn); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Shares issued", "tax_id", req.BuyerTaxID, "amount", req.Amount)
	s.publishEvent(ctx, txn.TransactionID, domain.SharesIssued{
		TransactionID: txn.TransactionID,
		TaxID:         txn.BuyerTaxID,
		Amount:        txn.Amount,
		Reason:        txn.Reason,
		OccurredAt:    now,
	})
	return &txn, nil
}

// DirectTransfer moves shares between two holders using the intent/commit
// protocol. The intent row is written first; if the commit phase rejects the
// transfer the intent flips to FAILED rather than disappearing.
func (s *LedgerService) DirectTransfer(ctx context.Context, principal domain.Principal, req dto.DirectTransferRequest) (*domain.ShareTransaction, error) {
	if req.SellerTaxID == req.BuyerTaxID {
		return nil, fmt.Errorf("%w: seller and buyer must differ", apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.ShareTransaction{
		TransactionID:   uuid.NewString(),
		TransactionDate: now,
		SellerTaxID:     req.SellerTaxID,
		BuyerTaxID:      req.BuyerTaxID,
		Amount:          req.Amount,
		Reason:          req.Reason,
		Status:          domain.TxnPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.ID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.ID,
		},
	}

	if err := s.transactionRepo.AppendIntent(ctx, txn); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.ApplyTransfer(ctx, txn.TransactionID, req.SellerTaxID, req.BuyerTaxID, req.Amount, principal.ID, now); err != nil {
		if failErr := s.transactionRepo.MarkTransactionFailed(ctx, txn.TransactionID, principal.ID, time.Now()); failErr != nil {
			s.LogError(ctx, failErr, "Failed to mark abandoned intent", "transaction_id", txn.TransactionID)
		}
		return nil, err
	}
	txn.Status = domain.TxnCommitted

	s.LogInfo(ctx, "Shares transferred", "seller", req.SellerTaxID, "buyer", req.BuyerTaxID, "amount", req.Amount)
	s.publishEvent(ctx, txn.TransactionID, domain.ShareTransferCompleted{
		TransactionID: txn.TransactionID,
		SellerTaxID:   txn.SellerTaxID,
		BuyerTaxID:    txn.BuyerTaxID,
		Amount:        txn.Amount,
		Reason:        txn.Reason,
		OccurredAt:    now,
	})
	return &txn, nil
}

// SetShareCount overwrites one balance to an absolute value.
func (s *LedgerService) SetShareCount(ctx context.Context, principal domain.Principal, taxID string, req dto.SetShareCountRequest) error {
	if req.Shares < 0 {
		return fmt.Errorf("%w: share count cannot be negative", apperrors.ErrValidation)
	}
	if err := s.shareholderRepo.SetShareCount(ctx, taxID, req.Shares, principal.ID, time.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Share count set", "tax_id", taxID, "shares", req.Shares)
	return nil
}

// ListTransactions pages through committed ledger history, newest first.
func (s *LedgerService) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.ShareTransaction, *string, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.transactionRepo.ListCommittedTransactions(ctx, limit, nextToken)
}

// RecoverStalePending sweeps PENDING intents older than the configured window
// to FAILED.
func (s *LedgerService) RecoverStalePending(ctx context.Context) (int64, error) {
	now := time.Now()
	cutoff := now.Add(-s.pendingSweepAge)
	repaired, err := s.transactionRepo.MarkStalePendingFailed(ctx, cutoff, sweepActor, now)
	if err != nil {
		return 0, err
	}
	if repaired > 0 {
		s.LogWarn(ctx, "Abandoned stale pending transfers", "count", repaired)
	}
	return repaired, nil
}

// publishEvent emits a domain event; broker failures are logged, never
// surfaced into the request path.
func (s *LedgerService) publishEvent(ctx context.Context, key string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, key, event); err != nil {
		s.LogError(ctx, err, "Failed to publish ledger event", "key", key)
	}
}
