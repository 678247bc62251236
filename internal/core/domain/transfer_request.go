package domain

import "time"

// RequestStatus is the lifecycle state of a transfer request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

// TransferRequest is a shareholder's application to transfer part of their
// holding. The buyer is chosen by the admin at approval time, so TargetTaxID
// stays empty while the request is pending.
type TransferRequest struct {
	RequestID      string        `json:"requestID"`
	RequestDate    time.Time     `json:"requestDate"`
	ApplicantTaxID string        `json:"applicantTaxID"`
	TargetTaxID    string        `json:"targetTaxID"`
	Amount         int64         `json:"amount"`
	Status         RequestStatus `json:"status"`
	Reason         string        `json:"reason"`
	RejectReason   string        `json:"rejectReason"`
	AuditFields
}

// IsDecided reports whether the request reached a terminal state.
// Terminal requests are immutable and can no longer be cancelled.
func (r TransferRequest) IsDecided() bool {
	return r.Status != RequestPending
}
