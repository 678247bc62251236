package services

import (
	portsrepo "github.com/SscSPs/share_registry_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/share_registry_app/internal/core/ports/services"
	"github.com/SscSPs/share_registry_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher portssvc.EventPublisher, mailer portssvc.EmailSender) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.AuthSvc = NewAuthService(cfg, repos.ShareholderRepo, repos.AdminRepo, mailer)
	container.ShareholderSvc = NewShareholderService(repos.ShareholderRepo, repos.ChangeLogRepo)
	container.LedgerSvc = NewLedgerService(repos.TransactionRepo, repos.ShareholderRepo, publisher, cfg.PendingSweepAge)
	container.RequestSvc = NewRequestService(repos.RequestRepo, repos.TransactionRepo, publisher, cfg.StrictReservation)

	return container
}

// Compile-time interface checks
var (
	_ portssvc.AuthSvcFacade        = (*AuthService)(nil)
	_ portssvc.ShareholderSvcFacade = (*ShareholderService)(nil)
	_ portssvc.LedgerSvcFacade      = (*LedgerService)(nil)
	_ portssvc.RequestSvcFacade     = (*RequestService)(nil)
)
