package dto

import (
	"time"

	"github.com/SscSPs/share_registry_app/internal/core/domain"
)

// IssueSharesRequest credits newly issued shares to a holder.
type IssueSharesRequest struct {
	BuyerTaxID string `json:"buyerTaxID" binding:"required"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	Reason     string `json:"reason"`
}

// DirectTransferRequest moves shares between two holders immediately,
// bypassing the request/approval workflow. Admin only.
type DirectTransferRequest struct {
	SellerTaxID string `json:"sellerTaxID" binding:"required"`
	BuyerTaxID  string `json:"buyerTaxID" binding:"required,nefield=SellerTaxID"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Reason      string `json:"reason"`
}

// SetShareCountRequest overwrites a holder's balance to an absolute value.
type SetShareCountRequest struct {
	Shares int64  `json:"shares" binding:"gte=0"`
	Reason string `json:"reason"`
}

// TransactionResponse is the outward shape of one ledger entry. SellerTaxID
// is empty for issuances.
type TransactionResponse struct {
	TransactionID   string    `json:"transactionID"`
	TransactionDate time.Time `json:"transactionDate"`
	SellerTaxID     string    `json:"sellerTaxID,omitempty"`
	BuyerTaxID      string    `json:"buyerTaxID"`
	Amount          int64     `json:"amount"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	CreatedBy       string    `json:"createdBy"`
}

// ToTransactionResponse converts a domain.ShareTransaction.
func ToTransactionResponse(t *domain.ShareTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		TransactionDate: t.TransactionDate,
		SellerTaxID:     t.SellerTaxID,
		BuyerTaxID:      t.BuyerTaxID,
		Amount:          t.Amount,
		Status:          string(t.Status),
		Reason:          t.Reason,
		CreatedAt:       t.CreatedAt,
		CreatedBy:       t.CreatedBy,
	}
}

// ListTransactionsResponse wraps a page of ledger entries with a cursor for
// the next page. NextToken is empty on the last page.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse converts a page of domain transactions.
func ToListTransactionsResponse(ts []domain.ShareTransaction, nextToken string) ListTransactionsResponse {
	out := make([]TransactionResponse, len(ts))
	for i := range ts {
		out[i] = ToTransactionResponse(&ts[i])
	}
	return ListTransactionsResponse{Transactions: out, NextToken: nextToken}
}
