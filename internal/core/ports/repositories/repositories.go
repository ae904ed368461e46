package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service layer at startup.
type RepositoryProvider struct {
	SchoolRepo  SchoolRepositoryFacade
	StudentRepo StudentRepositoryFacade
	InvoiceRepo InvoiceRepositoryFacade
	PaymentRepo PaymentRepositoryFacade
	UserRepo    UserRepositoryFacade
}
