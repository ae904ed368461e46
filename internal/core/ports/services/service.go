package services

// ServiceContainer bundles every service facade handed to the handlers at
// startup.
type ServiceContainer struct {
	School    SchoolSvcFacade
	Student   StudentSvcFacade
	Invoice   InvoiceSvcFacade
	Payment   PaymentSvcFacade
	Statement StatementSvcFacade
	Auth      AuthSvcFacade
}
