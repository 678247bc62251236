package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/share_registry_app/internal/core/domain"
)

// ReservationResult reports the balance picture at submission time. The
// current/reserved/available triple is part of the user-visible contract of a
// failed submission, not just internal bookkeeping.
type ReservationResult struct {
	Current   int64
	Reserved  int64
	Available int64
}

// TransferRequestRepository persists transfer requests and the reservation
// check that guards their creation.
type TransferRequestRepository interface {
	// CreatePendingWithReservation inserts a new Pending request after
	// re-aggregating the applicant's pending amounts inside one DB
	// transaction. When strict is true the applicant row is locked FOR
	// UPDATE first, serializing concurrent submissions per account. The
	// returned ReservationResult is valid on both success and
	// apperrors.ErrInsufficientAvailable failure.
	CreatePendingWithReservation(ctx context.Context, req domain.TransferRequest, strict bool) (*ReservationResult, error)

	// FindRequestByID retrieves one request.
	FindRequestByID(ctx context.Context, requestID string) (*domain.TransferRequest, error)

	// ListRequests retrieves requests, optionally filtered by applicant
	// and/or status, newest first.
	ListRequests(ctx context.Context, applicantTaxID string, status *domain.RequestStatus, limit, offset int) ([]domain.TransferRequest, error)

	// DecideRequest moves a Pending request to a terminal status. The update
	// is guarded by status = PENDING; attempts against decided requests fail
	// with apperrors.ErrAlreadyDecided.
	DecideRequest(ctx context.Context, requestID string, status domain.RequestStatus, targetTaxID, rejectReason, actor string, now time.Time) error

	// DeleteRequest physically removes a Pending request. Guarded by
	// status = PENDING; decided requests fail with apperrors.ErrNotCancellable.
	DeleteRequest(ctx context.Context, requestID string) error
}
