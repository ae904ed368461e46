package repositories

import (
	"context"
	"time"

	"github.com/mattilda/school_billing_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoices.
type InvoiceReader interface {
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	// ListInvoices returns invoices, optionally filtered by student when
	// studentID is non-empty.
	ListInvoices(ctx context.Context, limit int, offset int, studentID string) ([]domain.Invoice, error)
	// SumImputationsForInvoice returns the committed paid total for an
	// invoice in minor units.
	SumImputationsForInvoice(ctx context.Context, invoiceID string) (int64, error)
}

// InvoiceWriter defines write operations for invoices.
type InvoiceWriter interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
	// DeleteInvoice hard-deletes the invoice; imputations cascade.
	DeleteInvoice(ctx context.Context, invoiceID string) error
	RevokeInvoice(ctx context.Context, invoiceID string, now time.Time) error
	RestoreInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceRepositoryFacade combines read and write operations.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
