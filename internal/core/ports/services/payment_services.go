package services

import (
	"context"

	"github.com/mattilda/school_billing_app/internal/core/domain"
	"github.com/mattilda/school_billing_app/internal/dto"
)

// PaymentSvcFacade defines payment operations consumed by handlers. Every
// mutation invalidates the affected student and school statement caches
// before it returns.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, []domain.PaymentImputation, error)
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, []domain.PaymentImputation, error)
	ListPayments(ctx context.Context, limit int, offset int, studentID string) ([]domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID string) error
}
