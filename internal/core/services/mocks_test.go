package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/share_registry_app/internal/core/domain"
	portsrepo "github.com/SscSPs/share_registry_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock ShareholderRepository ---

type MockShareholderRepository struct {
	mock.Mock
	FindShareholderByTaxIDFn func(ctx context.Context, taxID string) (*domain.Shareholder, error)
	SetShareCountFn          func(ctx context.Context, taxID string, amount int64, updatedBy string, now time.Time) error
}

func (m *MockShareholderRepository) FindShareholderByTaxID(ctx context.Context, taxID string) (*domain.Shareholder, error) {
	if m.FindShareholderByTaxIDFn != nil {
		return m.FindShareholderByTaxIDFn(ctx, taxID)
	}
	args := m.Called(ctx, taxID)
	var holder *domain.Shareholder
	if args.Get(0) != nil {
		holder = args.Get(0).(*domain.Shareholder)
	}
	return holder, args.Error(1)
}

func (m *MockShareholderRepository) ListShareholders(ctx context.Context, search string, limit, offset int) ([]domain.Shareholder, error) {
	args := m.Called(ctx, search, limit, offset)
	var holders []domain.Shareholder
	if args.Get(0) != nil {
		holders = args.Get(0).([]domain.Shareholder)
	}
	return holders, args.Error(1)
}

func (m *MockShareholderRepository) CountAndTotalShares(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockShareholderRepository) SaveShareholder(ctx context.Context, s domain.Shareholder) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShareholderRepository) UpdateShareholder(ctx context.Context, s domain.Shareholder) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShareholderRepository) UpdateCredential(ctx context.Context, taxID, passwordHash, hint string, now time.Time) error {
	args := m.Called(ctx, taxID, passwordHash, hint, now)
	return args.Error(0)
}

func (m *MockShareholderRepository) DeleteShareholder(ctx context.Context, taxID string) error {
	args := m.Called(ctx, taxID)
	return args.Error(0)
}

func (m *MockShareholderRepository) DeleteShareholders(ctx context.Context, taxIDs []string) (int64, error) {
	args := m.Called(ctx, taxIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShareholderRepository) FindShareholdersForUpdate(ctx context.Context, tx pgx.Tx, taxIDs []string) (map[string]domain.Shareholder, error) {
	args := m.Called(ctx, tx, taxIDs)
	var holders map[string]domain.Shareholder
	if args.Get(0) != nil {
		holders = args.Get(0).(map[string]domain.Shareholder)
	}
	return holders, args.Error(1)
}

func (m *MockShareholderRepository) ApplyShareDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]int64, updatedBy string, now time.Time) error {
	args := m.Called(ctx, tx, deltas, updatedBy, now)
	return args.Error(0)
}

func (m *MockShareholderRepository) SetShareCountInTx(ctx context.Context, tx pgx.Tx, taxID string, amount int64, updatedBy string, now time.Time) error {
	args := m.Called(ctx, tx, taxID, amount, updatedBy, now)
	return args.Error(0)
}

func (m *MockShareholderRepository) SetShareCount(ctx context.Context, taxID string, amount int64, updatedBy string, now time.Time) error {
	if m.SetShareCountFn != nil {
		return m.SetShareCountFn(ctx, taxID, amount, updatedBy, now)
	}
	args := m.Called(ctx, taxID, amount, updatedBy, now)
	return args.Error(0)
}

var _ portsrepo.ShareholderRepository = (*MockShareholderRepository)(nil)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
	ApplyTransferFn func(ctx context.Context, transactionID, sellerTaxID, buyerTaxID string, amount int64, actor string, now time.Time) error
}

func (m *MockTransactionRepository) AppendIntent(ctx context.Context, txn domain.ShareTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) ApplyTransfer(ctx context.Context, transactionID, sellerTaxID, buyerTaxID string, amount int64, actor string, now time.Time) error {
	if m.ApplyTransferFn != nil {
		return m.ApplyTransferFn(ctx, transactionID, sellerTaxID, buyerTaxID, amount, actor, now)
	}
	args := m.Called(ctx, transactionID, sellerTaxID, buyerTaxID, amount, actor, now)
	return args.Error(0)
}

func (m *MockTransactionRepository) SaveIssuance(ctx context.Context, txn domain.ShareTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkTransactionFailed(ctx context.Context, transactionID, actor string, now time.Time) error {
	args := m.Called(ctx, transactionID, actor, now)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.ShareTransaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.ShareTransaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.ShareTransaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListCommittedTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.ShareTransaction, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var txns []domain.ShareTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.ShareTransaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) MarkStalePendingFailed(ctx context.Context, cutoff time.Time, actor string, now time.Time) (int64, error) {
	args := m.Called(ctx, cutoff, actor, now)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

// --- Mock TransferRequestRepository ---

type MockTransferRequestRepository struct {
	mock.Mock
	CreatePendingWithReservationFn func(ctx context.Context, req domain.TransferRequest, strict bool) (*portsrepo.ReservationResult, error)
}

func (m *MockTransferRequestRepository) CreatePendingWithReservation(ctx context.Context, req domain.TransferRequest, strict bool) (*portsrepo.ReservationResult, error) {
	if m.CreatePendingWithReservationFn != nil {
		return m.CreatePendingWithReservationFn(ctx, req, strict)
	}
	args := m.Called(ctx, req, strict)
	var result *portsrepo.ReservationResult
	if args.Get(0) != nil {
		result = args.Get(0).(*portsrepo.ReservationResult)
	}
	return result, args.Error(1)
}

func (m *MockTransferRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.TransferRequest, error) {
	args := m.Called(ctx, requestID)
	var request *domain.TransferRequest
	if args.Get(0) != nil {
		request = args.Get(0).(*domain.TransferRequest)
	}
	return request, args.Error(1)
}

func (m *MockTransferRequestRepository) ListRequests(ctx context.Context, applicantTaxID string, status *domain.RequestStatus, limit, offset int) ([]domain.TransferRequest, error) {
	args := m.Called(ctx, applicantTaxID, status, limit, offset)
	var requests []domain.TransferRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.TransferRequest)
	}
	return requests, args.Error(1)
}

func (m *MockTransferRequestRepository) DecideRequest(ctx context.Context, requestID string, status domain.RequestStatus, targetTaxID, rejectReason, actor string, now time.Time) error {
	args := m.Called(ctx, requestID, status, targetTaxID, rejectReason, actor, now)
	return args.Error(0)
}

func (m *MockTransferRequestRepository) DeleteRequest(ctx context.Context, requestID string) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

var _ portsrepo.TransferRequestRepository = (*MockTransferRequestRepository)(nil)

// --- Mock ChangeLogRepository ---

type MockChangeLogRepository struct {
	mock.Mock
	AppendEntriesFn func(ctx context.Context, entries []domain.ChangeLogEntry) error
}

func (m *MockChangeLogRepository) AppendEntries(ctx context.Context, entries []domain.ChangeLogEntry) error {
	if m.AppendEntriesFn != nil {
		return m.AppendEntriesFn(ctx, entries)
	}
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockChangeLogRepository) ListEntriesByTarget(ctx context.Context, targetTaxID string, limit, offset int) ([]domain.ChangeLogEntry, error) {
	args := m.Called(ctx, targetTaxID, limit, offset)
	var entries []domain.ChangeLogEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.ChangeLogEntry)
	}
	return entries, args.Error(1)
}

var _ portsrepo.ChangeLogRepository = (*MockChangeLogRepository)(nil)

// --- Mock AdminRepository ---

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	args := m.Called(ctx, username)
	var admin *domain.Admin
	if args.Get(0) != nil {
		admin = args.Get(0).(*domain.Admin)
	}
	return admin, args.Error(1)
}

func (m *MockAdminRepository) EnsureAdmin(ctx context.Context, admin domain.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) UpdateAdminCredential(ctx context.Context, username, passwordHash, hint string, now time.Time) error {
	args := m.Called(ctx, username, passwordHash, hint, now)
	return args.Error(0)
}

var _ portsrepo.AdminRepository = (*MockAdminRepository)(nil)

// --- Mock EventPublisher ---

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, key string, event any) error {
	args := m.Called(ctx, key, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// --- Mock EmailSender ---

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, toEmail, toName, subject, plainBody string) error {
	args := m.Called(ctx, toEmail, toName, subject, plainBody)
	return args.Error(0)
}
