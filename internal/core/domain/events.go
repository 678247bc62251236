package domain

import "time"

// ShareTransferCompleted is published after a transfer commits.
type ShareTransferCompleted struct {
	TransactionID string    `json:"transaction_id"`
	SellerTaxID   string    `json:"seller_tax_id"`
	BuyerTaxID    string    `json:"buyer_tax_id"`
	Amount        int64     `json:"amount"`
	Reason        string    `json:"reason"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// SharesIssued is published after an issuance commits.
type SharesIssued struct {
	TransactionID string    `json:"transaction_id"`
	TaxID         string    `json:"tax_id"`
	Amount        int64     `json:"amount"`
	Reason        string    `json:"reason"`
	OccurredAt    time.Time `json:"occurred_at"`
}
