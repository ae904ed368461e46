package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mattilda/school_billing_app/internal/apperrors"
	"github.com/mattilda/school_billing_app/internal/core/domain"
	portsrepo "github.com/mattilda/school_billing_app/internal/core/ports/repositories"
	portssvc "github.com/mattilda/school_billing_app/internal/core/ports/services"
	"github.com/mattilda/school_billing_app/internal/dto"
	"github.com/mattilda/school_billing_app/internal/utils/money"
)

// paymentServiceImpl implements the PaymentSvcFacade interface.
type paymentServiceImpl struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	invoiceRepo portsrepo.InvoiceReader
	studentRepo portsrepo.StudentReader
	cache       portsrepo.StatementCache
}

// NewPaymentService creates a new payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, invoiceRepo portsrepo.InvoiceReader, studentRepo portsrepo.StudentReader, cache portsrepo.StatementCache) portssvc.PaymentSvcFacade {
	return &paymentServiceImpl{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		studentRepo: studentRepo,
		cache:       cache,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentServiceImpl)(nil)

// CreatePayment validates and records a payment with its imputations.
//
// Each imputation is checked against the latest committed state: the invoice
// must exist, belong to the paying student, match the payment currency, and
// the imputed amount must not exceed the invoice's outstanding balance. The
// imputation total must equal the payment amount exactly. Nothing is written
// until every check passes.
//
// The outstanding-balance read and the insert are not serialized against
// concurrent payments to the same invoice; under default isolation a narrow
// window exists where two payments both pass the check. Accepted risk.
func (s *paymentServiceImpl) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, []domain.PaymentImputation, error) {
	if !money.ValidCurrency(req.Currency) {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, req.Currency)
	}
	if !domain.ValidPaymentMethod(req.PaymentMethod) {
		return nil, nil, fmt.Errorf("%w: invalid payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}

	student, err := s.studentRepo.FindStudentByID(ctx, req.StudentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find student for payment", slog.String("student_id", req.StudentID))
		return nil, nil, err
	}

	paymentTotal, err := money.FromMinorUnits(req.AmountCents, req.Currency)
	if err != nil {
		return nil, nil, err
	}
	imputedTotal, _ := money.Zero(req.Currency)

	for _, input := range req.Imputations {
		invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, input.InvoiceID)
		if err != nil {
			return nil, nil, fmt.Errorf("invoice %s: %w", input.InvoiceID, err)
		}
		if invoice.StudentID != req.StudentID {
			return nil, nil, fmt.Errorf("%w: invoice %s does not belong to student %s",
				apperrors.ErrValidation, input.InvoiceID, req.StudentID)
		}
		if invoice.Currency != req.Currency {
			return nil, nil, fmt.Errorf("%w: invoice currency %s does not match payment currency %s",
				apperrors.ErrValidation, invoice.Currency, req.Currency)
		}

		paidCents, err := s.invoiceRepo.SumImputationsForInvoice(ctx, input.InvoiceID)
		if err != nil {
			return nil, nil, err
		}
		if input.AmountCents > invoice.AmountCents-paidCents {
			return nil, nil, fmt.Errorf("%w: invoice %s", apperrors.ErrImputationExceedsOutstanding, input.InvoiceID)
		}

		amount, err := money.FromMinorUnits(input.AmountCents, req.Currency)
		if err != nil {
			return nil, nil, err
		}
		if imputedTotal, err = imputedTotal.Add(amount); err != nil {
			return nil, nil, err
		}
	}

	if !imputedTotal.Equal(paymentTotal) {
		return nil, nil, fmt.Errorf("%w: imputed %s, payment %s",
			apperrors.ErrImputationTotalMismatch, imputedTotal, paymentTotal)
	}

	now := time.Now().UTC()
	paymentDate := now
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		StudentID:     student.StudentID,
		AmountCents:   req.AmountCents,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		PaymentDate:   paymentDate,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	imputations := make([]domain.PaymentImputation, len(req.Imputations))
	for i, input := range req.Imputations {
		imputations[i] = domain.PaymentImputation{
			ImputationID: uuid.NewString(),
			PaymentID:    payment.PaymentID,
			InvoiceID:    input.InvoiceID,
			AmountCents:  input.AmountCents,
			Currency:     req.Currency,
			AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
		}
	}

	if err := s.paymentRepo.SavePayment(ctx, payment, imputations); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("payment_id", payment.PaymentID))
		return nil, nil, err
	}

	s.cache.InvalidateStudent(ctx, student.StudentID, student.SchoolID)
	s.LogInfo(ctx, "Payment created",
		slog.String("payment_id", payment.PaymentID),
		slog.String("student_id", student.StudentID),
		slog.Int("imputations", len(imputations)))
	return &payment, imputations, nil
}

func (s *paymentServiceImpl) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, []domain.PaymentImputation, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, nil, err
	}
	imputations, err := s.paymentRepo.FindImputationsByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, nil, err
	}
	return payment, imputations, nil
}

func (s *paymentServiceImpl) ListPayments(ctx context.Context, limit int, offset int, studentID string) ([]domain.Payment, error) {
	return s.paymentRepo.ListPayments(ctx, limit, offset, studentID)
}

func (s *paymentServiceImpl) DeletePayment(ctx context.Context, paymentID string) error {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return err
	}

	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.String("payment_id", paymentID))
		return err
	}

	schoolID := ""
	if student, err := s.studentRepo.FindStudentByID(ctx, payment.StudentID); err == nil {
		schoolID = student.SchoolID
	} else {
		s.LogWarn(ctx, "Could not resolve school for cache invalidation", slog.String("student_id", payment.StudentID))
	}
	s.cache.InvalidateStudent(ctx, payment.StudentID, schoolID)
	s.LogInfo(ctx, "Payment deleted", slog.String("payment_id", paymentID))
	return nil
}
