package services

import (
	portsrepo "github.com/mattilda/school_billing_app/internal/core/ports/repositories"
	portssvc "github.com/mattilda/school_billing_app/internal/core/ports/services"
	"github.com/mattilda/school_billing_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The statement cache is shared by every service that mutates ledger state.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, cache portsrepo.StatementCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.School = NewSchoolService(repos.SchoolRepo)
	container.Student = NewStudentService(repos.StudentRepo, repos.SchoolRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.StudentRepo, cache)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.InvoiceRepo, repos.StudentRepo, cache)
	container.Statement = NewStatementService(repos.StudentRepo, repos.SchoolRepo, cache, cfg.DefaultCurrency)
	container.Auth = NewAuthService(repos.UserRepo, cfg)

	return container
}
