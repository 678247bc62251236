package domain

// HolderType distinguishes natural persons from corporate shareholders.
type HolderType string

const (
	Individual HolderType = "INDIVIDUAL"
	Corporate  HolderType = "CORPORATE"
)

// Shareholder represents one entry in the share register.
// TaxID is the immutable primary identifier; SharesHeld is the ledger balance
// and is mutated exclusively by the ledger service.
type Shareholder struct {
	TaxID          string     `json:"taxID"`
	Name           string     `json:"name"`
	HolderType     HolderType `json:"holderType"`
	Representative string     `json:"representative"`
	Address        string     `json:"address"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	SharesHeld     int64      `json:"sharesHeld"`
	// PasswordHash is nil for accounts still on the default-password scheme,
	// where the tax ID itself is accepted as the password.
	PasswordHash *string `json:"-"`
	PasswordHint string  `json:"passwordHint"`
	IDImageURL   string  `json:"idImageURL"`
	AuditFields
}

// HasDefaultPassword reports whether the account never set its own credential.
func (s Shareholder) HasDefaultPassword() bool {
	return s.PasswordHash == nil || *s.PasswordHash == ""
}
