package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/share_registry_app/internal/apperrors"
	"github.com/SscSPs/share_registry_app/internal/core/domain"
	portsrepo "github.com/SscSPs/share_registry_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/share_registry_app/internal/core/ports/services"
	"github.com/SscSPs/share_registry_app/internal/dto"
	"github.com/google/uuid"
)

type RequestService struct {
	BaseService
	requestRepo       portsrepo.TransferRequestRepository
	transactionRepo   portsrepo.TransactionRepository
	publisher         portssvc.EventPublisher
	strictReservation bool
}

func NewRequestService(requestRepo portsrepo.TransferRequestRepository, transactionRepo portsrepo.TransactionRepository, publisher portssvc.EventPublisher, strictReservation bool) *RequestService {
	return &RequestService{
		requestRepo:       requestRepo,
		transactionRepo:   transactionRepo,
		publisher:         publisher,
		strictReservation: strictReservation,
	}
}

var _ portssvc.RequestSvcFacade = (*RequestService)(nil)

// SubmitRequest creates a Pending request after the reservation check. The
// returned snapshot reflects the applicant's balance picture at submission
// time, on success and on insufficient-available failure alike.
func (s *RequestService) SubmitRequest(ctx context.Context, principal domain.Principal, req dto.SubmitTransferRequest) (*domain.TransferRequest, *dto.ReservationSnapshot, error) {
	if principal.IsAdmin() {
		return nil, nil, fmt.Errorf("%w: requests are submitted by shareholders", apperrors.ErrForbidden)
	}
	if req.TargetTaxID == principal.ID {
		return nil, nil, fmt.Errorf("%w: cannot transfer to yourself", apperrors.ErrValidation)
	}

	now := time.Now()
	request := domain.TransferRequest{
		RequestID:      uuid.NewString(),
		RequestDate:    now,
		ApplicantTaxID: principal.ID,
		TargetTaxID:    req.TargetTaxID,
		Amount:         req.Amount,
		Status:         domain.RequestPending,
		Reason:         req.Reason,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.ID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.ID,
		},
	}

	result, err := s.requestRepo.CreatePendingWithReservation(ctx, request, s.strictReservation)
	snapshot := toSnapshot(result)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientAvailable) {
			s.LogWarn(ctx, "Transfer request rejected by reservation check",
				"applicant", principal.ID, "amount", req.Amount,
				"available", result.Available, "reserved", result.Reserved)
		}
		return nil, snapshot, err
	}

	s.LogInfo(ctx, "Transfer request submitted", "request_id", request.RequestID, "applicant", principal.ID, "amount", req.Amount)
	return &request, snapshot, nil
}

func toSnapshot(r *portsrepo.ReservationResult) *dto.ReservationSnapshot {
	if r == nil {
		return nil
	}
	return &dto.ReservationSnapshot{Current: r.Current, Reserved: r.Reserved, Available: r.Available}
}

// GetRequest fetches one request. Shareholders may only fetch their own.
func (s *RequestService) GetRequest(ctx context.Context, principal domain.Principal, requestID string) (*domain.TransferRequest, error) {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() && request.ApplicantTaxID != principal.ID {
		return nil, fmt.Errorf("%w: request belongs to another applicant", apperrors.ErrForbidden)
	}
	return request, nil
}

// ListRequests pages through requests. Shareholders are pinned to their own
// applicant ID regardless of filters.
func (s *RequestService) ListRequests(ctx context.Context, principal domain.Principal, params dto.ListRequestsParams) ([]domain.TransferRequest, error) {
	applicant := ""
	if !principal.IsAdmin() {
		applicant = principal.ID
	}

	var status *domain.RequestStatus
	if params.Status != "" {
		st := domain.RequestStatus(params.Status)
		status = &st
	}

	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	return s.requestRepo.ListRequests(ctx, applicant, status, limit, offset)
}

// ApproveRequest executes a pending request's transfer and marks it Approved.
// The transfer runs first; if the applicant's balance no longer covers the
// amount the request stays Pending and the error propagates, so approval can
// be retried after the situation is resolved.
func (s *RequestService) ApproveRequest(ctx context.Context, principal domain.Principal, requestID string, body dto.ApproveRequestBody) (*domain.TransferRequest, error) {
	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%w: only the admin approves requests", apperrors.ErrForbidden)
	}

	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.IsDecided() {
		return nil, fmt.Errorf("%w: transfer request %s", apperrors.ErrAlreadyDecided, requestID)
	}

	target := request.TargetTaxID
	if body.TargetTaxID != "" {
		target = body.TargetTaxID
	}
	if target == "" {
		return nil, fmt.Errorf("%w: approval requires a target tax ID", apperrors.ErrValidation)
	}
	if target == request.ApplicantTaxID {
		return nil, fmt.Errorf("%w: applicant cannot be the transfer target", apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.ShareTransaction{
		TransactionID:   uuid.NewString(),
		TransactionDate: now,
		SellerTaxID:     request.ApplicantTaxID,
		BuyerTaxID:      target,
		Amount:          request.Amount,
		Reason:          fmt.Sprintf("transfer request %s", request.RequestID),
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

	if err := s.transactionRepo.ApplyTransfer(ctx, txn.TransactionID, txn.SellerTaxID, txn.BuyerTaxID, txn.Amount, principal.ID, now); err != nil {
		if failErr := s.transactionRepo.MarkTransactionFailed(ctx, txn.TransactionID, principal.ID, time.Now()); failErr != nil {
			s.LogError(ctx, failErr, "Failed to mark abandoned approval intent", "transaction_id", txn.TransactionID)
		}
		// The request stays Pending on purpose; a stale balance is not a
		// terminal condition for the request itself.
		return nil, err
	}

	if err := s.requestRepo.DecideRequest(ctx, requestID, domain.RequestApproved, target, "", principal.ID, now); err != nil {
		// Shares moved but the request did not flip. Surface loudly so an
		// operator reconciles instead of a silent double-approval window.
		s.LogError(ctx, err, "Transfer applied but request not marked approved", "request_id", requestID, "transaction_id", txn.TransactionID)
		return nil, fmt.Errorf("%w: transfer %s applied but request %s not decided: %v", apperrors.ErrInconsistent, txn.TransactionID, requestID, err)
	}

	s.LogInfo(ctx, "Transfer request approved", "request_id", requestID, "target", target, "amount", request.Amount)
	s.publishEvent(ctx, txn.TransactionID, domain.ShareTransferCompleted{
		TransactionID: txn.TransactionID,
		SellerTaxID:   txn.SellerTaxID,
		BuyerTaxID:    txn.BuyerTaxID,
		Amount:        txn.Amount,
		Reason:        txn.Reason,
		OccurredAt:    now,
	})

	approved := *request
	approved.Status = domain.RequestApproved
	approved.TargetTaxID = target
	approved.LastUpdatedAt = now
	approved.LastUpdatedBy = principal.ID
	return &approved, nil
}

// RejectRequest marks a pending request Rejected with a reason.
func (s *RequestService) RejectRequest(ctx context.Context, principal domain.Principal, requestID string, body dto.RejectRequestBody) (*domain.TransferRequest, error) {
	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%w: only the admin rejects requests", apperrors.ErrForbidden)
	}
	if body.Reason == "" {
		return nil, fmt.Errorf("%w: rejection requires a reason", apperrors.ErrValidation)
	}

	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.requestRepo.DecideRequest(ctx, requestID, domain.RequestRejected, request.TargetTaxID, body.Reason, principal.ID, now); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transfer request rejected", "request_id", requestID)

	rejected := *request
	rejected.Status = domain.RequestRejected
	rejected.RejectReason = body.Reason
	rejected.LastUpdatedAt = now
	rejected.LastUpdatedBy = principal.ID
	return &rejected, nil
}

// DeleteRequest cancels a Pending request. Applicants may cancel their own;
// the admin may cancel any.
func (s *RequestService) DeleteRequest(ctx context.Context, principal domain.Principal, requestID string) error {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if !principal.IsAdmin() && request.ApplicantTaxID != principal.ID {
		return fmt.Errorf("%w: request belongs to another applicant", apperrors.ErrForbidden)
	}

	if err := s.requestRepo.DeleteRequest(ctx, requestID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Transfer request cancelled", "request_id", requestID)
	return nil
}

func (s *RequestService) publishEvent(ctx context.Context, key string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, key, event); err != nil {
		s.LogError(ctx, err, "Failed to publish request event", "key", key)
	}
}
