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

// invoiceServiceImpl implements the InvoiceSvcFacade interface. Every
// mutation invalidates the owning student's statement cache entry and that
// student's school entry after the store commit, before the caller is told
// the mutation succeeded.
type invoiceServiceImpl struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	studentRepo portsrepo.StudentReader
	cache       portsrepo.StatementCache
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, studentRepo portsrepo.StudentReader, cache portsrepo.StatementCache) portssvc.InvoiceSvcFacade {
	return &invoiceServiceImpl{
		invoiceRepo: invoiceRepo,
		studentRepo: studentRepo,
		cache:       cache,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceServiceImpl)(nil)

func (s *invoiceServiceImpl) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if !money.ValidCurrency(req.Currency) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, req.Currency)
	}

	student, err := s.studentRepo.FindStudentByID(ctx, req.StudentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find student for invoice", slog.String("student_id", req.StudentID))
		return nil, err
	}

	now := time.Now().UTC()
	issuedAt := now
	if req.IssuedAt != nil {
		issuedAt = *req.IssuedAt
	}

	invoice := domain.Invoice{
		InvoiceID:   uuid.NewString(),
		StudentID:   student.StudentID,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		Description: req.Description,
		IssuedAt:    issuedAt,
		DueDate:     req.DueDate,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", invoice.InvoiceID))
		return nil, err
	}

	s.cache.InvalidateStudent(ctx, student.StudentID, student.SchoolID)
	s.LogInfo(ctx, "Invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("student_id", student.StudentID))
	return &invoice, nil
}

func (s *invoiceServiceImpl) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

func (s *invoiceServiceImpl) ListInvoices(ctx context.Context, limit int, offset int, studentID string) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListInvoices(ctx, limit, offset, studentID)
}

func (s *invoiceServiceImpl) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.Currency != nil {
		if !money.ValidCurrency(*req.Currency) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, *req.Currency)
		}
		invoice.Currency = *req.Currency
	}
	if req.AmountCents != nil {
		invoice.AmountCents = *req.AmountCents
	}
	if req.Description != nil {
		invoice.Description = *req.Description
	}
	if req.DueDate != nil {
		invoice.DueDate = req.DueDate
	}
	invoice.UpdatedAt = time.Now().UTC()

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	s.invalidateFor(ctx, invoice.StudentID)
	return invoice, nil
}

func (s *invoiceServiceImpl) DeleteInvoice(ctx context.Context, invoiceID string) error {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return err
	}

	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return err
	}

	s.invalidateFor(ctx, invoice.StudentID)
	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

func (s *invoiceServiceImpl) RevokeInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.invoiceRepo.RevokeInvoice(ctx, invoiceID, now); err != nil {
		s.LogError(ctx, err, "Failed to revoke invoice", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	invoice.Revoke(now)
	invoice.UpdatedAt = now

	s.invalidateFor(ctx, invoice.StudentID)
	s.LogInfo(ctx, "Invoice revoked", slog.String("invoice_id", invoiceID))
	return invoice, nil
}

func (s *invoiceServiceImpl) RestoreInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.RestoreInvoice(ctx, invoiceID); err != nil {
		s.LogError(ctx, err, "Failed to restore invoice", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	invoice.Restore()
	invoice.UpdatedAt = time.Now().UTC()

	s.invalidateFor(ctx, invoice.StudentID)
	s.LogInfo(ctx, "Invoice restored", slog.String("invoice_id", invoiceID))
	return invoice, nil
}

// invalidateFor drops the statement cache entries for a student and their
// school. A lookup failure here only skips the school key; the student key
// is always dropped.
func (s *invoiceServiceImpl) invalidateFor(ctx context.Context, studentID string) {
	schoolID := ""
	if student, err := s.studentRepo.FindStudentByID(ctx, studentID); err == nil {
		schoolID = student.SchoolID
	} else {
		s.LogWarn(ctx, "Could not resolve school for cache invalidation", slog.String("student_id", studentID))
	}
	s.cache.InvalidateStudent(ctx, studentID, schoolID)
}
