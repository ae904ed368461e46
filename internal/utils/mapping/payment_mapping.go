package mapping

import (
	"github.com/mattilda/school_billing_app/internal/core/domain"
	"github.com/mattilda/school_billing_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		StudentID:     d.StudentID,
		AmountCents:   d.AmountCents,
		Currency:      d.Currency,
		PaymentMethod: string(d.PaymentMethod),
		Reference:     d.Reference,
		PaymentDate:   d.PaymentDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
		Revocation:    ToModelRevocation(d.Revocation),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		StudentID:     m.StudentID,
		AmountCents:   m.AmountCents,
		Currency:      m.Currency,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Reference:     m.Reference,
		PaymentDate:   m.PaymentDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
		Revocation:    ToDomainRevocation(m.Revocation),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to a slice of domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}

// ToModelImputation converts a domain PaymentImputation to a model PaymentImputation
func ToModelImputation(d domain.PaymentImputation) models.PaymentImputation {
	return models.PaymentImputation{
		ImputationID: d.ImputationID,
		PaymentID:    d.PaymentID,
		InvoiceID:    d.InvoiceID,
		AmountCents:  d.AmountCents,
		Currency:     d.Currency,
		AuditFields:  ToModelAuditFields(d.AuditFields),
		Revocation:   ToModelRevocation(d.Revocation),
	}
}

// ToDomainImputation converts a model PaymentImputation to a domain PaymentImputation
func ToDomainImputation(m models.PaymentImputation) domain.PaymentImputation {
	return domain.PaymentImputation{
		ImputationID: m.ImputationID,
		PaymentID:    m.PaymentID,
		InvoiceID:    m.InvoiceID,
		AmountCents:  m.AmountCents,
		Currency:     m.Currency,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		Revocation:   ToDomainRevocation(m.Revocation),
	}
}

// ToDomainImputationSlice converts a slice of model PaymentImputations to a slice of domain PaymentImputations
func ToDomainImputationSlice(ms []models.PaymentImputation) []domain.PaymentImputation {
	ds := make([]domain.PaymentImputation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainImputation(m)
	}
	return ds
}
