package dto

import (
	"time"

	"github.com/SscSPs/share_registry_app/internal/core/domain"
)

// UpsertShareholderRequest creates or updates a register entry (admin only).
// Shares and credentials are never touched through this path.
type UpsertShareholderRequest struct {
	TaxID          string `json:"taxID" binding:"required,taxid"`
	Name           string `json:"name" binding:"required"`
	HolderType     string `json:"holderType" binding:"required,oneof=INDIVIDUAL CORPORATE"`
	Representative string `json:"representative"`
	Address        string `json:"address"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	PasswordHint   string `json:"passwordHint"`
}

// UpdateProfileRequest is a shareholder's edit of their own record. Pointers
// distinguish omitted fields from cleared ones. TaxID and shares are not
// editable here.
type UpdateProfileRequest struct {
	Name           *string `json:"name"`
	Representative *string `json:"representative"`
	Address        *string `json:"address"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone"`
	IDImageURL     *string `json:"idImageURL"`
}

// BatchDeleteRequest names the entries to remove.
type BatchDeleteRequest struct {
	TaxIDs []string `json:"taxIDs" binding:"required,min=1"`
}

// ListShareholdersParams are query parameters for the register listing.
type ListShareholdersParams struct {
	Search string `form:"search"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// ShareholderResponse is the outward shape of a register entry.
type ShareholderResponse struct {
	TaxID          string    `json:"taxID"`
	Name           string    `json:"name"`
	HolderType     string    `json:"holderType"`
	Representative string    `json:"representative"`
	Address        string    `json:"address"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	SharesHeld     int64     `json:"sharesHeld"`
	PasswordHint   string    `json:"passwordHint"`
	IDImageURL     string    `json:"idImageURL"`
	CreatedAt      time.Time `json:"createdAt"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
}

// ToShareholderResponse converts a domain.Shareholder to its response DTO.
func ToShareholderResponse(s *domain.Shareholder) ShareholderResponse {
	return ShareholderResponse{
		TaxID:          s.TaxID,
		Name:           s.Name,
		HolderType:     string(s.HolderType),
		Representative: s.Representative,
		Address:        s.Address,
		Email:          s.Email,
		Phone:          s.Phone,
		SharesHeld:     s.SharesHeld,
		PasswordHint:   s.PasswordHint,
		IDImageURL:     s.IDImageURL,
		CreatedAt:      s.CreatedAt,
		LastUpdatedAt:  s.LastUpdatedAt,
	}
}

// ListShareholdersResponse wraps a page of register entries.
type ListShareholdersResponse struct {
	Shareholders []ShareholderResponse `json:"shareholders"`
}

// ToListShareholdersResponse converts a slice of domain shareholders.
func ToListShareholdersResponse(ss []domain.Shareholder) ListShareholdersResponse {
	out := make([]ShareholderResponse, len(ss))
	for i := range ss {
		out[i] = ToShareholderResponse(&ss[i])
	}
	return ListShareholdersResponse{Shareholders: out}
}

// RegistrySummaryResponse carries the dashboard metrics.
type RegistrySummaryResponse struct {
	ShareholderCount int64 `json:"shareholderCount"`
	TotalShares      int64 `json:"totalShares"`
}

// ImportRow is one parsed row of a bulk import. Parsing the uploaded
// spreadsheet is the client's concern; the API accepts structured rows.
type ImportRow struct {
	TaxID          string `json:"taxID" binding:"required"`
	Name           string `json:"name" binding:"required"`
	HolderType     string `json:"holderType" binding:"required,oneof=INDIVIDUAL CORPORATE"`
	Representative string `json:"representative"`
	Address        string `json:"address"`
	Email          string `json:"email"`
	PasswordHint   string `json:"passwordHint"`
	Shares         int64  `json:"shares" binding:"gte=0"`
}

// BulkImportRequest imports a batch of rows. ReplaceShares overwrites
// balances; otherwise share quantities accumulate onto existing holdings.
type BulkImportRequest struct {
	ReplaceShares bool        `json:"replaceShares"`
	Rows          []ImportRow `json:"rows" binding:"required,min=1,dive"`
}

// BulkImportResponse reports per-row outcomes.
type BulkImportResponse struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// ChangeLogEntryResponse is the outward shape of one audit entry.
type ChangeLogEntryResponse struct {
	EntryID     string    `json:"entryID"`
	ChangedAt   time.Time `json:"changedAt"`
	Editor      string    `json:"editor"`
	TargetTaxID string    `json:"targetTaxID"`
	FieldName   string    `json:"fieldName"`
	OldValue    string    `json:"oldValue"`
	NewValue    string    `json:"newValue"`
}

// ToChangeLogResponse converts a slice of domain change-log entries.
func ToChangeLogResponse(entries []domain.ChangeLogEntry) []ChangeLogEntryResponse {
	out := make([]ChangeLogEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ChangeLogEntryResponse{
			EntryID:     e.EntryID,
			ChangedAt:   e.ChangedAt,
			Editor:      e.Editor,
			TargetTaxID: e.TargetTaxID,
			FieldName:   e.FieldName,
			OldValue:    e.OldValue,
			NewValue:    e.NewValue,
		}
	}
	return out
}
