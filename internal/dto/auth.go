package dto

// LoginRequest carries credentials for /auth/login. Username is "admin" for
// the administrator and a tax ID for shareholders.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginFailure is returned on a password mismatch; Hint carries the stored
// password hint (never the password) to aid recovery.
type LoginFailure struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

// ChangePasswordRequest sets a new credential for the authenticated principal.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
	Hint        string `json:"hint" binding:"required"`
}

// RecoverPasswordRequest asks for account recovery by username/tax ID.
type RecoverPasswordRequest struct {
	Username string `json:"username" binding:"required"`
}

// RecoverPasswordResponse reports the hint and where the temporary password
// was sent. Email is masked; the password itself is never echoed.
type RecoverPasswordResponse struct {
	Hint      string `json:"hint"`
	EmailSent bool   `json:"emailSent"`
	Email     string `json:"email,omitempty"`
}
