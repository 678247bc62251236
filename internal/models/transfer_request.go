package models

import "time"

// RequestStatus mirrors domain.RequestStatus for persistence.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

// TransferRequest is the DB row shape of a pending/decided transfer request.
type TransferRequest struct {
	RequestID      string        `db:"request_id"`
	RequestDate    time.Time     `db:"request_date"`
	ApplicantTaxID string        `db:"applicant_tax_id"`
	TargetTaxID    string        `db:"target_tax_id"`
	Amount         int64         `db:"amount"`
	Status         RequestStatus `db:"status"`
	Reason         string        `db:"reason"`
	RejectReason   string        `db:"reject_reason"`
	AuditFields
}
