package models

import "time"

// TransactionStatus mirrors domain.TransactionStatus for persistence.
type TransactionStatus string

const (
	TxnPending   TransactionStatus = "PENDING"
	TxnCommitted TransactionStatus = "COMMITTED"
	TxnFailed    TransactionStatus = "FAILED"
)

// ShareTransaction is the DB row shape of a share ledger entry.
type ShareTransaction struct {
	TransactionID   string            `db:"transaction_id"`
	TransactionDate time.Time         `db:"transaction_date"`
	SellerTaxID     string            `db:"seller_tax_id"`
	BuyerTaxID      string            `db:"buyer_tax_id"`
	Amount          int64             `db:"amount"`
	Reason          string            `db:"reason"`
	Status          TransactionStatus `db:"status"`
	AuditFields
}
