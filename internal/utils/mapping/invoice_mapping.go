package mapping

import (
	"github.com/mattilda/school_billing_app/internal/core/domain"
	"github.com/mattilda/school_billing_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:   d.InvoiceID,
		StudentID:   d.StudentID,
		AmountCents: d.AmountCents,
		Currency:    d.Currency,
		Description: d.Description,
		IssuedAt:    d.IssuedAt,
		DueDate:     d.DueDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
		Revocation:  ToModelRevocation(d.Revocation),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:   m.InvoiceID,
		StudentID:   m.StudentID,
		AmountCents: m.AmountCents,
		Currency:    m.Currency,
		Description: m.Description,
		IssuedAt:    m.IssuedAt,
		DueDate:     m.DueDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
		Revocation:  ToDomainRevocation(m.Revocation),
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to a slice of domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}
