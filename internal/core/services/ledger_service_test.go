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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	mockShareholderRepo *MockShareholderRepository
	mockPublisher       *MockEventPublisher
	service             *services.LedgerService
	ctx                 context.Context
	admin               domain.Principal
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockShareholderRepo = new(MockShareholderRepository)
	suite.mockPublisher = new(MockEventPublisher)
	suite.service = services.NewLedgerService(suite.mockTransactionRepo, suite.mockShareholderRepo, suite.mockPublisher, 10*time.Minute)
	suite.ctx = context.Background()
	suite.admin = domain.Principal{ID: domain.AdminUsername, Role: domain.RoleAdmin}
}

func (suite *LedgerServiceTestSuite) TestIssueShares_Success() {
	req := dto.IssueSharesRequest{BuyerTaxID: "TAX1001", Amount: 1000, Reason: "capital increase"}

	suite.mockTransactionRepo.On("SaveIssuance", suite.ctx, mock.MatchedBy(func(txn domain.ShareTransaction) bool {
		return txn.BuyerTaxID == "TAX1001" && txn.SellerTaxID == "" && txn.Amount == 1000 && txn.Status == domain.TxnCommitted
	})).Return(nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, mock.AnythingOfType("string"), mock.MatchedBy(func(event any) bool {
		issued, ok := event.(domain.SharesIssued)
		return ok && issued.TaxID == "TAX1001" && issued.Amount == 1000
	})).Return(nil).Once()

	txn, err := suite.service.IssueShares(suite.ctx, suite.admin, req)

	suite.Require().NoError(err)
	suite.Equal(domain.TxnCommitted, txn.Status)
	suite.Equal(domain.AdminUsername, txn.CreatedBy)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestIssueShares_RepoError() {
	suite.mockTransactionRepo.On("SaveIssuance", suite.ctx, mock.AnythingOfType("domain.ShareTransaction")).
		Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.IssueShares(suite.ctx, suite.admin, dto.IssueSharesRequest{BuyerTaxID: "TAX404", Amount: 10})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.mockPublisher.AssertNotCalled(suite.T(), "Publish")
}

func (suite *LedgerServiceTestSuite) TestDirectTransfer_Success() {
	req := dto.DirectTransferRequest{SellerTaxID: "TAX1001", BuyerTaxID: "TAX2002", Amount: 250, Reason: "private sale"}

	suite.mockTransactionRepo.On("AppendIntent", suite.ctx, mock.MatchedBy(func(txn domain.ShareTransaction) bool {
		return txn.Status == domain.TxnPending && txn.SellerTaxID == "TAX1001" && txn.BuyerTaxID == "TAX2002"
	})).Return(nil).Once()
	suite.mockTransactionRepo.On("ApplyTransfer", suite.ctx, mock.AnythingOfType("string"), "TAX1001", "TAX2002", int64(250), domain.AdminUsername, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, mock.AnythingOfType("string"), mock.AnythingOfType("domain.ShareTransferCompleted")).Return(nil).Once()

	txn, err := suite.service.DirectTransfer(suite.ctx, suite.admin, req)

	suite.Require().NoError(err)
	suite.Equal(domain.TxnCommitted, txn.Status)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDirectTransfer_SameParty() {
	req := dto.DirectTransferRequest{SellerTaxID: "TAX1001", BuyerTaxID: "TAX1001", Amount: 10}

	_, err := suite.service.DirectTransfer(suite.ctx, suite.admin, req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "AppendIntent")
}

// The commit phase rejecting the transfer must abandon the intent so it does
// not linger PENDING forever.
func (suite *LedgerServiceTestSuite) TestDirectTransfer_InsufficientSharesMarksIntentFailed() {
	req := dto.DirectTransferRequest{SellerTaxID: "TAX1001", BuyerTaxID: "TAX2002", Amount: 5000}

	suite.mockTransactionRepo.On("AppendIntent", suite.ctx, mock.AnythingOfType("domain.ShareTransaction")).Return(nil).Once()
	suite.mockTransactionRepo.On("ApplyTransfer", suite.ctx, mock.AnythingOfType("string"), "TAX1001", "TAX2002", int64(5000), domain.AdminUsername, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrInsufficientShares).Once()
	suite.mockTransactionRepo.On("MarkTransactionFailed", suite.ctx, mock.AnythingOfType("string"), domain.AdminUsername, mock.AnythingOfType("time.Time")).Return(nil).Once()

	_, err := suite.service.DirectTransfer(suite.ctx, suite.admin, req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrInsufficientShares))
	suite.mockTransactionRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertNotCalled(suite.T(), "Publish")
}

// The original commit error wins even when abandoning the intent also fails.
func (suite *LedgerServiceTestSuite) TestDirectTransfer_MarkFailedErrorDoesNotMaskCause() {
	req := dto.DirectTransferRequest{SellerTaxID: "TAX1001", BuyerTaxID: "TAX2002", Amount: 5000}

	suite.mockTransactionRepo.On("AppendIntent", suite.ctx, mock.AnythingOfType("domain.ShareTransaction")).Return(nil).Once()
	suite.mockTransactionRepo.On("ApplyTransfer", suite.ctx, mock.AnythingOfType("string"), "TAX1001", "TAX2002", int64(5000), domain.AdminUsername, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrInsufficientShares).Once()
	suite.mockTransactionRepo.On("MarkTransactionFailed", suite.ctx, mock.AnythingOfType("string"), domain.AdminUsername, mock.AnythingOfType("time.Time")).
		Return(assert.AnError).Once()

	_, err := suite.service.DirectTransfer(suite.ctx, suite.admin, req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrInsufficientShares))
}

func (suite *LedgerServiceTestSuite) TestSetShareCount_Success() {
	suite.mockShareholderRepo.On("SetShareCount", suite.ctx, "TAX1001", int64(1500), domain.AdminUsername, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.SetShareCount(suite.ctx, suite.admin, "TAX1001", dto.SetShareCountRequest{Shares: 1500, Reason: "audit correction"})

	suite.Require().NoError(err)
	suite.mockShareholderRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestSetShareCount_NegativeRejected() {
	err := suite.service.SetShareCount(suite.ctx, suite.admin, "TAX1001", dto.SetShareCountRequest{Shares: -5})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockShareholderRepo.AssertNotCalled(suite.T(), "SetShareCount")
}

func (suite *LedgerServiceTestSuite) TestListTransactions_ClampsLimit() {
	suite.mockTransactionRepo.On("ListCommittedTransactions", suite.ctx, 20, (*string)(nil)).
		Return([]domain.ShareTransaction{}, nil, nil).Once()

	_, _, err := suite.service.ListTransactions(suite.ctx, 0, nil)

	suite.Require().NoError(err)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecoverStalePending_CutoffRespectsSweepAge() {
	before := time.Now()
	suite.mockTransactionRepo.On("MarkStalePendingFailed", suite.ctx, mock.MatchedBy(func(cutoff time.Time) bool {
		age := before.Sub(cutoff)
		return age >= 10*time.Minute-time.Second && age <= 10*time.Minute+time.Second
	}), "system:pending-sweep", mock.AnythingOfType("time.Time")).Return(int64(3), nil).Once()

	repaired, err := suite.service.RecoverStalePending(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(3), repaired)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecoverStalePending_RepoError() {
	suite.mockTransactionRepo.On("MarkStalePendingFailed", suite.ctx, mock.AnythingOfType("time.Time"), "system:pending-sweep", mock.AnythingOfType("time.Time")).
		Return(int64(0), assert.AnError).Once()

	_, err := suite.service.RecoverStalePending(suite.ctx)

	suite.Require().Error(err)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
