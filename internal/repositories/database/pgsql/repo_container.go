package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mattilda/school_billing_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	schoolRepo := newPgxSchoolRepository(dbPool)
	studentRepo := newPgxStudentRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		SchoolRepo:  schoolRepo,
		StudentRepo: studentRepo,
		InvoiceRepo: invoiceRepo,
		PaymentRepo: paymentRepo,
		UserRepo:    userRepo,
	}
}
