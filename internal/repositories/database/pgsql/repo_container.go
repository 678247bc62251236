package pgsql

import (
	portsrepo "github.com/SscSPs/share_registry_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	shareholderRepo := newPgxShareholderRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, shareholderRepo)
	requestRepo := newPgxTransferRequestRepository(dbPool, shareholderRepo)
	changeLogRepo := newPgxChangeLogRepository(dbPool)
	adminRepo := newPgxAdminRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ShareholderRepo: shareholderRepo,
		TransactionRepo: transactionRepo,
		RequestRepo:     requestRepo,
		ChangeLogRepo:   changeLogRepo,
		AdminRepo:       adminRepo,
	}
}
