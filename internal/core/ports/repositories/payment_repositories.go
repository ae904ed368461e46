package repositories

import (
	"context"

	"github.com/mattilda/school_billing_app/internal/core/domain"
)

// PaymentReader defines read operations for payments.
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	FindImputationsByPaymentID(ctx context.Context, paymentID string) ([]domain.PaymentImputation, error)
	// ListPayments returns payments, optionally filtered by student when
	// studentID is non-empty.
	ListPayments(ctx context.Context, limit int, offset int, studentID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payments.
type PaymentWriter interface {
	// SavePayment inserts the payment and all of its imputations in one
	// store transaction; either every row commits or none do.
	SavePayment(ctx context.Context, payment domain.Payment, imputations []domain.PaymentImputation) error
	// DeletePayment hard-deletes the payment; imputations cascade.
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentRepositoryFacade combines read and write operations.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
