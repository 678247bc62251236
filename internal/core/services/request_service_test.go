package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/share_registry_app/internal/apperrors"
	"github.com/SscSPs/share_registry_app/internal/core/domain"
	portsrepo "github.com/SscSPs/share_registry_app/internal/core/ports/repositories"
	"github.com/SscSPs/share_registry_app/internal/core/services"
	"github.com/SscSPs/share_registry_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RequestServiceTestSuite struct {
	suite.Suite
	mockRequestRepo     *MockTransferRequestRepository
	mockTransactionRepo *MockTransactionRepository
	mockPublisher       *MockEventPublisher
	service             *services.RequestService
	ctx                 context.Context
	admin               domain.Principal
	applicant           domain.Principal
}

func (suite *RequestServiceTestSuite) SetupTest() {
	suite.mockRequestRepo = new(MockTransferRequestRepository)
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockPublisher = new(MockEventPublisher)
	suite.service = services.NewRequestService(suite.mockRequestRepo, suite.mockTransactionRepo, suite.mockPublisher, true)
	suite.ctx = context.Background()
	suite.admin = domain.Principal{ID: domain.AdminUsername, Role: domain.RoleAdmin}
	suite.applicant = domain.Principal{ID: "TAX1001", Role: domain.RoleShareholder}
}

func (suite *RequestServiceTestSuite) TestSubmitRequest_Success() {
	req := dto.SubmitTransferRequest{Amount: 300, Reason: "estate planning"}
	result := &portsrepo.ReservationResult{Current: 1000, Reserved: 300, Available: 400}

	suite.mockRequestRepo.On("CreatePendingWithReservation", suite.ctx, mock.MatchedBy(func(r domain.TransferRequest) bool {
		return r.ApplicantTaxID == "TAX1001" && r.Amount == 300 && r.Status == domain.RequestPending && r.RequestID != ""
	}), true).Return(result, nil).Once()

	request, snapshot, err := suite.service.SubmitRequest(suite.ctx, suite.applicant, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(request)
	suite.Equal(domain.RequestPending, request.Status)
	suite.Equal("TAX1001", request.ApplicantTaxID)
	suite.Require().NotNil(snapshot)
	suite.Equal(int64(400), snapshot.Available)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

// A holder with 1000 shares and 600 already reserved across pending requests
// must not be able to reserve another 500; the failure carries the full
// balance picture.
func (suite *RequestServiceTestSuite) TestSubmitRequest_InsufficientAvailable() {
	req := dto.SubmitTransferRequest{Amount: 500}
	result := &portsrepo.ReservationResult{Current: 1000, Reserved: 600, Available: 400}

	suite.mockRequestRepo.On("CreatePendingWithReservation", suite.ctx, mock.AnythingOfType("domain.TransferRequest"), true).
		Return(result, apperrors.ErrInsufficientAvailable).Once()

	request, snapshot, err := suite.service.SubmitRequest(suite.ctx, suite.applicant, req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrInsufficientAvailable))
	suite.Nil(request)
	suite.Require().NotNil(snapshot)
	suite.Equal(int64(1000), snapshot.Current)
	suite.Equal(int64(600), snapshot.Reserved)
	suite.Equal(int64(400), snapshot.Available)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestSubmitRequest_AdminForbidden() {
	_, _, err := suite.service.SubmitRequest(suite.ctx, suite.admin, dto.SubmitTransferRequest{Amount: 10})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrForbidden))
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "CreatePendingWithReservation")
}

func (suite *RequestServiceTestSuite) TestSubmitRequest_SelfTargetRejected() {
	_, _, err := suite.service.SubmitRequest(suite.ctx, suite.applicant, dto.SubmitTransferRequest{Amount: 10, TargetTaxID: "TAX1001"})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "CreatePendingWithReservation")
}

func (suite *RequestServiceTestSuite) pendingRequest() *domain.TransferRequest {
	return &domain.TransferRequest{
		RequestID:      "req-1",
		ApplicantTaxID: "TAX1001",
		TargetTaxID:    "TAX2002",
		Amount:         250,
		Status:         domain.RequestPending,
	}
}

func (suite *RequestServiceTestSuite) TestApproveRequest_Success() {
	request := suite.pendingRequest()
	suite.mockRequestRepo.On("FindRequestByID", suite.ctx, "req-1").Return(request, nil).Once()
	suite.mockTransactionRepo.On("AppendIntent", suite.ctx, mock.MatchedBy(func(txn domain.ShareTransaction) bool {
		return txn.SellerTaxID == "TAX1001" && txn.BuyerTaxID == "TAX2002" && txn.Amount == 250 && txn.Status == domain.TxnPending
	})).Return(nil).Once()
	suite.mockTransactionRepo.On("ApplyTransfer", suite.ctx, mock.AnythingOfType("string"), "TAX1001", "TAX2002", int64(250), domain.AdminUsername, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRequestRepo.On("DecideRequest", suite.ctx, "req-1", domain.RequestApproved, "TAX2002", "", domain.AdminUsername, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, mock.AnythingOfType("string"), mock.AnythingOfType("domain.ShareTransferCompleted")).Return(nil).Once()

	approved, err := suite.service.ApproveRequest(suite.ctx, suite.admin, "req-1", dto.ApproveRequestBody{})

	suite.Require().NoError(err)
	suite.Equal(domain.RequestApproved, approved.Status)
	suite.Equal("TAX2002", approved.TargetTaxID)
	suite.mockRequestRepo.AssertExpectations(suite.T())
	suite.mockTransactionRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestApproveRequest_TargetOverride() {
	request := suite.pendingRequest()
	request.TargetTaxID = ""
	suite.mockRequestRepo.On("FindRequestByID", suite.ctx, "req-1").Return(request, nil).Once()
	suite.mockTransactionRepo.On("AppendIntent", suite.ctx, mock.AnythingOfType("domain.ShareTransaction")).Return(nil).Once()
	suite.mockTransactionRepo.On("ApplyTransfer", suite.ctx, mock.AnythingOfType("string"), "TAX1001", "TAX3003", int64(250), domain.AdminUsername, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRequestRepo.On("DecideRequest", suite.ctx, "req-1", domain.RequestApproved, "TAX3003", "", domain.AdminUsername, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()

	approved, err := suite.service.ApproveRequest(suite.ctx, suite.admin, "req-1", dto.ApproveRequestBody{TargetTaxID: "TAX3003"})

	suite.Require().NoError(err)
	suite.Equal("TAX3003", approved.TargetTaxID)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestApproveRequest_NoTarget() {
	request := suite.pendingRequest()
	request.TargetTaxID = ""
	suite.mockRequestRepo.On("FindRequestByID", suite.ctx, "req-1").Return(request, nil).Once()

	_, err := suite.service.ApproveRequest(suite.ctx, suite.admin, "req-1", dto.ApproveRequestBody{})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "AppendIntent")
}

// A stale balance at approval time must leave the request Pending so the
// admin can retry once the situation is resolved. The intent row flips to
// FAILED but DecideRequest is never reached.
func (suite *RequestServiceTestSuite) TestApproveRequest_StaleBalanceKeepsRequestPending() {
	request := suite.pendingRequest()
	suite.mockRequestRepo.On("FindRequestByID", suite.ctx, "req-1").Return(request, nil).Once()
	suite.mockTransactionRepo.On("AppendIntent", suite.ctx, mock.AnythingOfType("domain.ShareTransaction")).Return(nil).Once()
	suite.mockTransactionRepo.On("ApplyTransfer", suite.ctx, mock.AnythingOfType("string"), "TAX1001", "TAX2002", int64(250), domain.AdminUsername, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrInsufficientShares).Once()
	suite.mockTransactionRepo.On("MarkTransactionFailed", suite.ctx, mock.AnythingOfType("string"), domain.AdminUsername, mock.AnythingOfType("time.Time")).Return(nil).Once()

	_, err := suite.service.ApproveRequest(suite.ctx, suite.admin, "req-1", dto.ApproveRequestBody{})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrInsufficientShares))
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "DecideRequest")
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestApproveRequest_AlreadyDecided() {
	request := suite.pendingRequest()
	request.Status = domain.RequestApproved
	suite.mockRequestRepo.On("FindRequestByID", suite.ctx, "req-1").Return(request, nil).Once()

	_, err := suite.service.ApproveRequest(suite.ctx, suite.admin, "req-1", dto.ApproveRequestBody{})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrAlreadyDecided))
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "AppendIntent")
}

// The transfer applied but the status flip failed; the caller must see the
// inconsistency instead of a generic error.
func (suite *RequestServiceTestSuite) TestApproveRequest_DecideFailureSurfacesInconsistency() {
	request := suite.pendingRequest()
	suite.mockRequestRepo.On("FindRequestByID", suite.ctx, "req-1").Return(request, nil).Once()
	suite.mockTransactionRepo.On("AppendIntent", suite.ctx, mock.AnythingOfType("domain.ShareTransaction")).Return(nil).Once()
	suite.mockTransactionRepo.On("ApplyTransfer", suite.ctx, mock.AnythingOfType("string"), "TAX1001", "TAX2002", int64(250), domain.AdminUsername, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRequestRepo.On("DecideRequest", suite.ctx, "req-1", domain.RequestApproved, "TAX2002", "", domain.AdminUsername, mock.AnythingOfType("time.Time")).
		Return(assert.AnError).Once()

	_, err := suite.service.ApproveRequest(suite.ctx, suite.admin, "req-1", dto.ApproveRequestBody{})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrInconsistent))
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestApproveRequest_NonAdminForbidden() {
	_, err := suite.service.ApproveRequest(suite.ctx, suite.applicant, "req-1", dto.ApproveRequestBody{})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrForbidden))
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "FindRequestByID")
}

func (suite *RequestServiceTestSuite) TestRejectRequest_Success() {
	request := suite.pendingRequest()
	suite.mockRequestRepo.On("FindRequestByID", suite.ctx, "req-1").Return(request, nil).Once()
	suite.mockRequestRepo.On("DecideRequest", suite.ctx, "req-1", domain.RequestRejected, "TAX2002", "amount disputed", domain.AdminUsername, mock.AnythingOfType("time.Time")).Return(nil).Once()

	rejected, err := suite.service.RejectRequest(suite.ctx, suite.admin, "req-1", dto.RejectRequestBody{Reason: "amount disputed"})

	suite.Require().NoError(err)
	suite.Equal(domain.RequestRejected, rejected.Status)
	suite.Equal("amount disputed", rejected.RejectReason)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

// A rejection without a reason never reaches the repository; the record must
// explain itself.
func (suite *RequestServiceTestSuite) TestRejectRequest_EmptyReasonRejected() {
	_, err := suite.service.RejectRequest(suite.ctx, suite.admin, "req-1", dto.RejectRequestBody{})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "FindRequestByID")
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "DecideRequest")
}

func (suite *RequestServiceTestSuite) TestRejectRequest_AlreadyDecided() {
	request := suite.pendingRequest()
	suite.mockRequestRepo.On("FindRequestByID", suite.ctx, "req-1").Return(request, nil).Once()
	suite.mockRequestRepo.On("DecideRequest", suite.ctx, "req-1", domain.RequestRejected, "TAX2002", "late", domain.AdminUsername, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrAlreadyDecided).Once()

	_, err := suite.service.RejectRequest(suite.ctx, suite.admin, "req-1", dto.RejectRequestBody{Reason: "late"})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrAlreadyDecided))
}

func (suite *RequestServiceTestSuite) TestDeleteRequest_OwnerCancels() {
	request := suite.pendingRequest()
	suite.mockRequestRepo.On("FindRequestByID", suite.ctx, "req-1").Return(request, nil).Once()
	suite.mockRequestRepo.On("DeleteRequest", suite.ctx, "req-1").Return(nil).Once()

	err := suite.service.DeleteRequest(suite.ctx, suite.applicant, "req-1")

	suite.Require().NoError(err)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestDeleteRequest_OtherApplicantForbidden() {
	request := suite.pendingRequest()
	suite.mockRequestRepo.On("FindRequestByID", suite.ctx, "req-1").Return(request, nil).Once()

	other := domain.Principal{ID: "TAX9999", Role: domain.RoleShareholder}
	err := suite.service.DeleteRequest(suite.ctx, other, "req-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrForbidden))
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "DeleteRequest")
}

func (suite *RequestServiceTestSuite) TestDeleteRequest_DecidedNotCancellable() {
	request := suite.pendingRequest()
	request.Status = domain.RequestRejected
	suite.mockRequestRepo.On("FindRequestByID", suite.ctx, "req-1").Return(request, nil).Once()
	suite.mockRequestRepo.On("DeleteRequest", suite.ctx, "req-1").Return(apperrors.ErrNotCancellable).Once()

	err := suite.service.DeleteRequest(suite.ctx, suite.applicant, "req-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotCancellable))
}

func (suite *RequestServiceTestSuite) TestListRequests_ShareholderPinnedToOwnID() {
	suite.mockRequestRepo.On("ListRequests", suite.ctx, "TAX1001", (*domain.RequestStatus)(nil), 20, 0).
		Return([]domain.TransferRequest{}, nil).Once()

	_, err := suite.service.ListRequests(suite.ctx, suite.applicant, dto.ListRequestsParams{})

	suite.Require().NoError(err)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestListRequests_AdminSeesAllWithStatusFilter() {
	pending := domain.RequestPending
	suite.mockRequestRepo.On("ListRequests", suite.ctx, "", &pending, 50, 10).
		Return([]domain.TransferRequest{*suite.pendingRequest()}, nil).Once()

	requests, err := suite.service.ListRequests(suite.ctx, suite.admin, dto.ListRequestsParams{Status: "PENDING", Limit: 50, Offset: 10})

	suite.Require().NoError(err)
	suite.Len(requests, 1)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestGetRequest_ShareholderCannotReadOthers() {
	request := suite.pendingRequest()
	suite.mockRequestRepo.On("FindRequestByID", suite.ctx, "req-1").Return(request, nil).Once()

	other := domain.Principal{ID: "TAX9999", Role: domain.RoleShareholder}
	_, err := suite.service.GetRequest(suite.ctx, other, "req-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrForbidden))
}

func TestRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RequestServiceTestSuite))
}
