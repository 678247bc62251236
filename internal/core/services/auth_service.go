package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/share_registry_app/internal/apperrors"
	"github.com/SscSPs/share_registry_app/internal/core/domain"
	portsrepo "github.com/SscSPs/share_registry_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/share_registry_app/internal/core/ports/services"
	"github.com/SscSPs/share_registry_app/internal/dto"
	"github.com/SscSPs/share_registry_app/internal/platform/config"
	"github.com/SscSPs/share_registry_app/internal/utils"
)

// seedAdminPassword is the well-known first-boot credential. It is hashed
// before storage and expected to be rotated immediately.
const seedAdminPassword = "admin888"

type AuthService struct {
	BaseService
	cfg             *config.Config
	shareholderRepo portsrepo.ShareholderRepository
	adminRepo       portsrepo.AdminRepository
	mailer          portssvc.EmailSender
}

func NewAuthService(cfg *config.Config, shareholderRepo portsrepo.ShareholderRepository, adminRepo portsrepo.AdminRepository, mailer portssvc.EmailSender) *AuthService {
	return &AuthService{
		cfg:             cfg,
		shareholderRepo: shareholderRepo,
		adminRepo:       adminRepo,
		mailer:          mailer,
	}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// EnsureSeedAdmin creates the well-known admin account on first boot. An
// existing account is left untouched, including a rotated password.
func (s *AuthService) EnsureSeedAdmin(ctx context.Context) error {
	hash, err := utils.HashPassword(seedAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}
	now := time.Now()
	return s.adminRepo.EnsureAdmin(ctx, domain.Admin{
		Username:      domain.AdminUsername,
		PasswordHash:  hash,
		CreatedAt:     now,
		LastUpdatedAt: now,
	})
}

// Login verifies credentials and mints a JWT. A mismatch returns the stored
// hint alongside ErrAuthentication so the handler can surface it.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, string, error) {
	if req.Username == domain.AdminUsername {
		return s.loginAdmin(ctx, req)
	}
	return s.loginShareholder(ctx, req)
}

func (s *AuthService) loginAdmin(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, string, error) {
	admin, err := s.adminRepo.FindAdminByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", err
	}

	if !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		s.LogWarn(ctx, "Admin login failed", "username", req.Username)
		return nil, admin.PasswordHint, fmt.Errorf("%w: wrong password for %s", apperrors.ErrAuthentication, req.Username)
	}

	token, err := utils.GenerateJWT(admin.Username, string(domain.RoleAdmin), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.LogInfo(ctx, "Admin logged in", "username", admin.Username)
	return &dto.LoginResponse{Token: token, Name: admin.Username, Role: string(domain.RoleAdmin)}, "", nil
}

func (s *AuthService) loginShareholder(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, string, error) {
	holder, err := s.shareholderRepo.FindShareholderByTaxID(ctx, req.Username)
	if err != nil {
		return nil, "", err
	}

	// Accounts that never set a credential accept their tax ID as password.
	var ok bool
	if holder.HasDefaultPassword() {
		ok = req.Password == holder.TaxID
	} else {
		ok = utils.CheckPasswordHash(req.Password, *holder.PasswordHash)
	}
	if !ok {
		s.LogWarn(ctx, "Shareholder login failed", "tax_id", holder.TaxID)
		return nil, holder.PasswordHint, fmt.Errorf("%w: wrong password for %s", apperrors.ErrAuthentication, holder.TaxID)
	}

	token, err := utils.GenerateJWT(holder.TaxID, string(domain.RoleShareholder), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.LogInfo(ctx, "Shareholder logged in", "tax_id", holder.TaxID)
	return &dto.LoginResponse{Token: token, Name: holder.Name, Role: string(domain.RoleShareholder)}, "", nil
}

// ChangePassword replaces the caller's credential and hint.
func (s *AuthService) ChangePassword(ctx context.Context, principal domain.Principal, req dto.ChangePasswordRequest) error {
	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	now := time.Now()

	if principal.IsAdmin() {
		if err := s.adminRepo.UpdateAdminCredential(ctx, principal.ID, hash, req.Hint, now); err != nil {
			return err
		}
	} else {
		if err := s.shareholderRepo.UpdateCredential(ctx, principal.ID, hash, req.Hint, now); err != nil {
			return err
		}
	}

	s.LogInfo(ctx, "Password changed", "principal_id", principal.ID)
	return nil
}

// RecoverPassword generates a temporary credential, stores its hash and mails
// it to the registered address. Accounts without an address still get their
// hint back so recovery is never a dead end.
func (s *AuthService) RecoverPassword(ctx context.Context, req dto.RecoverPasswordRequest) (*dto.RecoverPasswordResponse, error) {
	var hint, email, name string
	isAdmin := req.Username == domain.AdminUsername

	if isAdmin {
		admin, err := s.adminRepo.FindAdminByUsername(ctx, req.Username)
		if err != nil {
			return nil, err
		}
		hint, email, name = admin.PasswordHint, admin.Email, admin.Username
	} else {
		holder, err := s.shareholderRepo.FindShareholderByTaxID(ctx, req.Username)
		if err != nil {
			return nil, err
		}
		hint, email, name = holder.PasswordHint, holder.Email, holder.Name
	}

	resp := &dto.RecoverPasswordResponse{Hint: hint}
	if email == "" {
		s.LogWarn(ctx, "Recovery requested for account without email", "username", req.Username)
		return resp, nil
	}

	tempPassword, err := utils.GenerateTempPassword(8)
	if err != nil {
		return nil, fmt.Errorf("failed to generate temporary password: %w", err)
	}
	hash, err := utils.HashPassword(tempPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash temporary password: %w", err)
	}

	now := time.Now()
	if isAdmin {
		err = s.adminRepo.UpdateAdminCredential(ctx, req.Username, hash, hint, now)
	} else {
		err = s.shareholderRepo.UpdateCredential(ctx, req.Username, hash, hint, now)
	}
	if err != nil {
		return nil, err
	}

	body := fmt.Sprintf("A temporary password was generated for your account: %s\nPlease log in and change it immediately.", tempPassword)
	if err := s.mailer.Send(ctx, email, name, "Password recovery", body); err != nil {
		// The credential is already rotated; report the delivery failure
		// instead of leaving the caller guessing.
		s.LogError(ctx, err, "Failed to send recovery mail", "username", req.Username)
		return nil, fmt.Errorf("failed to send recovery mail: %w", err)
	}

	resp.EmailSent = true
	resp.Email = maskEmail(email)
	s.LogInfo(ctx, "Recovery mail sent", "username", req.Username)
	return resp, nil
}

// maskEmail hides the local part except its first character.
func maskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 1 {
		return email
	}
	return email[:1] + strings.Repeat("*", at-1) + email[at:]
}
