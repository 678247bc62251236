package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	ShareholderRepo ShareholderRepository
	TransactionRepo TransactionRepository
	RequestRepo     TransferRequestRepository
	ChangeLogRepo   ChangeLogRepository
	AdminRepo       AdminRepository
}
