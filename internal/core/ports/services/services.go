package services

// ServiceContainer bundles all service facades for injection into handlers.
type ServiceContainer struct {
	AuthSvc        AuthSvcFacade
	ShareholderSvc ShareholderSvcFacade
	LedgerSvc      LedgerSvcFacade
	RequestSvc     RequestSvcFacade
}
