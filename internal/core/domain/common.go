package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // Principal reference (taxID or admin username)
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Role identifies the kind of authenticated principal.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleShareholder Role = "SHAREHOLDER"
)

// AdminUsername is the single well-known admin identity.
const AdminUsername = "admin"

// Principal is the authenticated caller attached to each request.
type Principal struct {
	ID   string `json:"id"` // taxID for shareholders, username for the admin
	Role Role   `json:"role"`
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
