package dto

import (
	"time"

	"github.com/SscSPs/share_registry_app/internal/core/domain"
)

// SubmitTransferRequest asks to move shares out of the caller's holding. The
// target may be named now or left for the approving admin to fill in.
type SubmitTransferRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	TargetTaxID string `json:"targetTaxID"`
	Reason      string `json:"reason"`
}

// ApproveRequestBody finalizes a pending request. TargetTaxID is required
// here when the applicant left it blank at submission.
type ApproveRequestBody struct {
	TargetTaxID string `json:"targetTaxID"`
}

// RejectRequestBody records why a request was declined.
type RejectRequestBody struct {
	Reason string `json:"reason" binding:"required"`
}

// ListRequestsParams filter the request listing. Admins see every
// applicant's requests; shareholders are pinned to their own.
type ListRequestsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// ReservationSnapshot reports the applicant's balance picture at submission
// time. It accompanies both successful submissions and insufficient-available
// rejections.
type ReservationSnapshot struct {
	Current   int64 `json:"current"`
	Reserved  int64 `json:"reserved"`
	Available int64 `json:"available"`
}

// TransferRequestResponse is the outward shape of a transfer request.
// DecidedAt/DecidedBy are set once the request leaves PENDING.
type TransferRequestResponse struct {
	RequestID      string     `json:"requestID"`
	RequestDate    time.Time  `json:"requestDate"`
	ApplicantTaxID string     `json:"applicantTaxID"`
	TargetTaxID    string     `json:"targetTaxID,omitempty"`
	Amount         int64      `json:"amount"`
	Status         string     `json:"status"`
	Reason         string     `json:"reason,omitempty"`
	RejectReason   string     `json:"rejectReason,omitempty"`
	DecidedAt      *time.Time `json:"decidedAt,omitempty"`
	DecidedBy      string     `json:"decidedBy,omitempty"`
}

// ToTransferRequestResponse converts a domain.TransferRequest.
func ToTransferRequestResponse(r *domain.TransferRequest) TransferRequestResponse {
	resp := TransferRequestResponse{
		RequestID:      r.RequestID,
		RequestDate:    r.RequestDate,
		ApplicantTaxID: r.ApplicantTaxID,
		TargetTaxID:    r.TargetTaxID,
		Amount:         r.Amount,
		Status:         string(r.Status),
		Reason:         r.Reason,
		RejectReason:   r.RejectReason,
	}
	if r.IsDecided() {
		decidedAt := r.LastUpdatedAt
		resp.DecidedAt = &decidedAt
		resp.DecidedBy = r.LastUpdatedBy
	}
	return resp
}

// ListTransferRequestsResponse wraps a page of transfer requests.
type ListTransferRequestsResponse struct {
	Requests []TransferRequestResponse `json:"requests"`
}

// ToListTransferRequestsResponse converts a slice of domain requests.
func ToListTransferRequestsResponse(rs []domain.TransferRequest) ListTransferRequestsResponse {
	out := make([]TransferRequestResponse, len(rs))
	for i := range rs {
		out[i] = ToTransferRequestResponse(&rs[i])
	}
	return ListTransferRequestsResponse{Requests: out}
}
