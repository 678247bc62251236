package services

import (
	"context"

	"github.com/SscSPs/share_registry_app/internal/core/domain"
	"github.com/SscSPs/share_registry_app/internal/dto"
)

// AuthSvcFacade bundles authentication and credential operations.
type AuthSvcFacade interface {
	// Login verifies credentials and mints a JWT. On a password mismatch the
	// stored hint is returned alongside the error so the handler can surface
	// it without exposing the credential itself.
	Login(ctx context.Context, req dto.LoginRequest) (resp *dto.LoginResponse, hint string, err error)

	// ChangePassword replaces the caller's credential and hint.
	ChangePassword(ctx context.Context, principal domain.Principal, req dto.ChangePasswordRequest) error

	// RecoverPassword generates a temporary credential, stores its hash and
	// mails it to the account's registered address when one exists.
	RecoverPassword(ctx context.Context, req dto.RecoverPasswordRequest) (*dto.RecoverPasswordResponse, error)

	// EnsureSeedAdmin creates the well-known admin account on first boot.
	EnsureSeedAdmin(ctx context.Context) error
}
