package domain

import "time"

// TransactionStatus tracks a ledger row through the intent/commit protocol.
type TransactionStatus string

const (
	// TxnPending marks a written intent whose balance deltas have not been
	// applied yet. A stale PENDING row means the writer died mid-transfer.
	TxnPending TransactionStatus = "PENDING"
	// TxnCommitted marks a fully applied movement; only committed rows are
	// part of the visible transaction history.
	TxnCommitted TransactionStatus = "COMMITTED"
	// TxnFailed marks an intent that was abandoned (validation failure or
	// recovery sweep). Terminal, like committed.
	TxnFailed TransactionStatus = "FAILED"
)

// ShareTransaction is one movement in the append-only share ledger.
// SellerTaxID is empty for issuance entries. Rows never change once they
// reach a terminal status.
type ShareTransaction struct {
	TransactionID   string            `json:"transactionID"`
	TransactionDate time.Time         `json:"transactionDate"`
	SellerTaxID     string            `json:"sellerTaxID"`
	BuyerTaxID      string            `json:"buyerTaxID"`
	Amount          int64             `json:"amount"`
	Reason          string            `json:"reason"`
	Status          TransactionStatus `json:"status"`
	AuditFields
}

// IsIssuance reports whether the entry credits shares without a selling side.
func (t ShareTransaction) IsIssuance() bool {
	return t.SellerTaxID == ""
}
