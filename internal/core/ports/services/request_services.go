package services

import (
	"context"

	"github.com/SscSPs/share_registry_app/internal/core/domain"
	"github.com/SscSPs/share_registry_app/internal/dto"
)

// RequestSvcFacade bundles the transfer-request workflow.
type RequestSvcFacade interface {
	// SubmitRequest creates a Pending request after the reservation check.
	// On apperrors.ErrInsufficientAvailable the reservation numbers are still
	// returned so the caller can report current/reserved/available.
	SubmitRequest(ctx context.Context, principal domain.Principal, req dto.SubmitTransferRequest) (*domain.TransferRequest, *dto.ReservationSnapshot, error)

	// GetRequest fetches one request. Shareholders may only fetch their own.
	GetRequest(ctx context.Context, principal domain.Principal, requestID string) (*domain.TransferRequest, error)

	// ListRequests pages through requests. Shareholders are pinned to their
	// own applicant ID regardless of the filter they pass.
	ListRequests(ctx context.Context, principal domain.Principal, params dto.ListRequestsParams) ([]domain.TransferRequest, error)

	// ApproveRequest executes a pending request's transfer and marks it
	// Approved. Insufficient balance at approval time leaves the request
	// Pending and returns the error.
	ApproveRequest(ctx context.Context, principal domain.Principal, requestID string, body dto.ApproveRequestBody) (*domain.TransferRequest, error)

	// RejectRequest marks a pending request Rejected with a reason.
	RejectRequest(ctx context.Context, principal domain.Principal, requestID string, body dto.RejectRequestBody) (*domain.TransferRequest, error)

	// DeleteRequest cancels a request. Applicants may cancel their own
	// Pending requests; admins may cancel any Pending request.
	DeleteRequest(ctx context.Context, principal domain.Principal, requestID string) error
}
