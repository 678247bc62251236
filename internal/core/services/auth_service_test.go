package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/share_registry_app/internal/apperrors"
	"github.com/SscSPs/share_registry_app/internal/core/domain"
	"github.com/SscSPs/share_registry_app/internal/core/services"
	"github.com/SscSPs/share_registry_app/internal/dto"
	"github.com/SscSPs/share_registry_app/internal/platform/config"
	"github.com/SscSPs/share_registry_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockShareholderRepo *MockShareholderRepository
	mockAdminRepo       *MockAdminRepository
	mockMailer          *MockEmailSender
	service             *services.AuthService
	ctx                 context.Context
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockShareholderRepo = new(MockShareholderRepository)
	suite.mockAdminRepo = new(MockAdminRepository)
	suite.mockMailer = new(MockEmailSender)
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "share-registry-app",
	}
	suite.service = services.NewAuthService(cfg, suite.mockShareholderRepo, suite.mockAdminRepo, suite.mockMailer)
	suite.ctx = context.Background()
}

func (suite *AuthServiceTestSuite) hashOf(password string) string {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return hash
}

func (suite *AuthServiceTestSuite) TestLogin_AdminSuccess() {
	admin := &domain.Admin{Username: domain.AdminUsername, PasswordHash: suite.hashOf("admin888")}
	suite.mockAdminRepo.On("FindAdminByUsername", suite.ctx, domain.AdminUsername).Return(admin, nil).Once()

	resp, hint, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: domain.AdminUsername, Password: "admin888"})

	suite.Require().NoError(err)
	suite.Empty(hint)
	suite.Equal(string(domain.RoleAdmin), resp.Role)
	suite.NotEmpty(resp.Token)

	claims, err := utils.ParseAndValidateJWT(resp.Token, "test-secret")
	suite.Require().NoError(err)
	suite.Equal(domain.AdminUsername, claims.Subject)
	suite.Equal(string(domain.RoleAdmin), claims.Role)
	suite.mockAdminRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_AdminWrongPasswordReturnsHint() {
	admin := &domain.Admin{Username: domain.AdminUsername, PasswordHash: suite.hashOf("rotated"), PasswordHint: "the usual one"}
	suite.mockAdminRepo.On("FindAdminByUsername", suite.ctx, domain.AdminUsername).Return(admin, nil).Once()

	resp, hint, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: domain.AdminUsername, Password: "admin888"})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrAuthentication))
	suite.Nil(resp)
	suite.Equal("the usual one", hint)
}

// Accounts that never set a credential accept the tax ID itself as password.
func (suite *AuthServiceTestSuite) TestLogin_ShareholderDefaultPassword() {
	holder := &domain.Shareholder{TaxID: "TAX1001", Name: "Alice Chen"}
	suite.mockShareholderRepo.On("FindShareholderByTaxID", suite.ctx, "TAX1001").Return(holder, nil).Once()

	resp, _, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "TAX1001", Password: "TAX1001"})

	suite.Require().NoError(err)
	suite.Equal("Alice Chen", resp.Name)
	suite.Equal(string(domain.RoleShareholder), resp.Role)
}

func (suite *AuthServiceTestSuite) TestLogin_ShareholderDefaultPasswordMismatch() {
	holder := &domain.Shareholder{TaxID: "TAX1001", PasswordHint: "your tax ID"}
	suite.mockShareholderRepo.On("FindShareholderByTaxID", suite.ctx, "TAX1001").Return(holder, nil).Once()

	_, hint, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "TAX1001", Password: "guess"})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrAuthentication))
	suite.Equal("your tax ID", hint)
}

func (suite *AuthServiceTestSuite) TestLogin_ShareholderHashedPassword() {
	hash := suite.hashOf("s3cret-one")
	holder := &domain.Shareholder{TaxID: "TAX1001", Name: "Alice Chen", PasswordHash: &hash}
	suite.mockShareholderRepo.On("FindShareholderByTaxID", suite.ctx, "TAX1001").Return(holder, nil).Once()

	resp, _, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "TAX1001", Password: "s3cret-one"})

	suite.Require().NoError(err)
	suite.NotEmpty(resp.Token)
}

// Once a credential is set the tax ID no longer works as a password.
func (suite *AuthServiceTestSuite) TestLogin_TaxIDRejectedAfterPasswordSet() {
	hash := suite.hashOf("s3cret-one")
	holder := &domain.Shareholder{TaxID: "TAX1001", PasswordHash: &hash}
	suite.mockShareholderRepo.On("FindShareholderByTaxID", suite.ctx, "TAX1001").Return(holder, nil).Once()

	_, _, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "TAX1001", Password: "TAX1001"})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrAuthentication))
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownAccount() {
	suite.mockShareholderRepo.On("FindShareholderByTaxID", suite.ctx, "TAX404").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "TAX404", Password: "whatever"})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *AuthServiceTestSuite) TestChangePassword_Shareholder() {
	principal := domain.Principal{ID: "TAX1001", Role: domain.RoleShareholder}
	suite.mockShareholderRepo.On("UpdateCredential", suite.ctx, "TAX1001", mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("new-password", hash)
	}), "pet name", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ChangePassword(suite.ctx, principal, dto.ChangePasswordRequest{NewPassword: "new-password", Hint: "pet name"})

	suite.Require().NoError(err)
	suite.mockShareholderRepo.AssertExpectations(suite.T())
	suite.mockAdminRepo.AssertNotCalled(suite.T(), "UpdateAdminCredential")
}

func (suite *AuthServiceTestSuite) TestChangePassword_Admin() {
	principal := domain.Principal{ID: domain.AdminUsername, Role: domain.RoleAdmin}
	suite.mockAdminRepo.On("UpdateAdminCredential", suite.ctx, domain.AdminUsername, mock.AnythingOfType("string"), "vault", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ChangePassword(suite.ctx, principal, dto.ChangePasswordRequest{NewPassword: "rotated-pass", Hint: "vault"})

	suite.Require().NoError(err)
	suite.mockAdminRepo.AssertExpectations(suite.T())
	suite.mockShareholderRepo.AssertNotCalled(suite.T(), "UpdateCredential")
}

func (suite *AuthServiceTestSuite) TestRecoverPassword_NoEmailReturnsHintOnly() {
	holder := &domain.Shareholder{TaxID: "TAX1001", PasswordHint: "pet name"}
	suite.mockShareholderRepo.On("FindShareholderByTaxID", suite.ctx, "TAX1001").Return(holder, nil).Once()

	resp, err := suite.service.RecoverPassword(suite.ctx, dto.RecoverPasswordRequest{Username: "TAX1001"})

	suite.Require().NoError(err)
	suite.Equal("pet name", resp.Hint)
	suite.False(resp.EmailSent)
	suite.Empty(resp.Email)
	suite.mockShareholderRepo.AssertNotCalled(suite.T(), "UpdateCredential")
	suite.mockMailer.AssertNotCalled(suite.T(), "Send")
}

func (suite *AuthServiceTestSuite) TestRecoverPassword_RotatesCredentialAndMails() {
	holder := &domain.Shareholder{TaxID: "TAX1001", Name: "Alice Chen", Email: "alice@example.com", PasswordHint: "pet name"}
	suite.mockShareholderRepo.On("FindShareholderByTaxID", suite.ctx, "TAX1001").Return(holder, nil).Once()
	suite.mockShareholderRepo.On("UpdateCredential", suite.ctx, "TAX1001", mock.AnythingOfType("string"), "pet name", mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockMailer.On("Send", suite.ctx, "alice@example.com", "Alice Chen", "Password recovery", mock.AnythingOfType("string")).Return(nil).Once()

	resp, err := suite.service.RecoverPassword(suite.ctx, dto.RecoverPasswordRequest{Username: "TAX1001"})

	suite.Require().NoError(err)
	suite.True(resp.EmailSent)
	suite.Equal("a****@example.com", resp.Email)
	suite.mockShareholderRepo.AssertExpectations(suite.T())
	suite.mockMailer.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRecoverPassword_MailFailureSurfaces() {
	holder := &domain.Shareholder{TaxID: "TAX1001", Name: "Alice Chen", Email: "alice@example.com"}
	suite.mockShareholderRepo.On("FindShareholderByTaxID", suite.ctx, "TAX1001").Return(holder, nil).Once()
	suite.mockShareholderRepo.On("UpdateCredential", suite.ctx, "TAX1001", mock.AnythingOfType("string"), "", mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockMailer.On("Send", suite.ctx, "alice@example.com", "Alice Chen", "Password recovery", mock.AnythingOfType("string")).Return(assert.AnError).Once()

	_, err := suite.service.RecoverPassword(suite.ctx, dto.RecoverPasswordRequest{Username: "TAX1001"})

	suite.Require().Error(err)
}

func (suite *AuthServiceTestSuite) TestEnsureSeedAdmin() {
	suite.mockAdminRepo.On("EnsureAdmin", suite.ctx, mock.MatchedBy(func(admin domain.Admin) bool {
		return admin.Username == domain.AdminUsername && utils.CheckPasswordHash("admin888", admin.PasswordHash)
	})).Return(nil).Once()

	err := suite.service.EnsureSeedAdmin(suite.ctx)

	suite.Require().NoError(err)
	suite.mockAdminRepo.AssertExpectations(suite.T())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
