package services

import (
	"context"

	"github.com/mattilda/school_billing_app/internal/core/domain"
	"github.com/mattilda/school_billing_app/internal/dto"
)

// InvoiceSvcFacade defines invoice operations consumed by handlers. Every
// mutation invalidates the affected student and school statement caches
// before it returns.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, limit int, offset int, studentID string) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error
	RevokeInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	RestoreInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}
