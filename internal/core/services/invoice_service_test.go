package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mattilda/school_billing_app/internal/apperrors"
	"github.com/mattilda/school_billing_app/internal/core/domain"
	portssvc "github.com/mattilda/school_billing_app/internal/core/ports/services"
	"github.com/mattilda/school_billing_app/internal/core/services"
	"github.com/mattilda/school_billing_app/internal/dto"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	invoiceRepo *MockInvoiceRepository
	studentRepo *MockStudentRepository
	cache       *MockStatementCache
	service     portssvc.InvoiceSvcFacade
	ctx         context.Context

	student domain.Student
}

func (s *InvoiceServiceTestSuite) SetupTest() {
	s.invoiceRepo = new(MockInvoiceRepository)
	s.studentRepo = new(MockStudentRepository)
	s.cache = new(MockStatementCache)
	s.service = services.NewInvoiceService(s.invoiceRepo, s.studentRepo, s.cache)
	s.ctx = context.Background()

	s.student = domain.Student{StudentID: uuid.NewString(), Name: "Ada", SchoolID: uuid.NewString()}
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	s.studentRepo.On("FindStudentByID", s.ctx, s.student.StudentID).Return(&s.student, nil)
	s.invoiceRepo.On("SaveInvoice", s.ctx, mock.AnythingOfType("domain.Invoice")).Return(nil)
	s.cache.On("InvalidateStudent", s.ctx, s.student.StudentID, s.student.SchoolID).Return()

	req := dto.CreateInvoiceRequest{
		StudentID:   s.student.StudentID,
		AmountCents: 15000,
		Currency:    "USD",
		Description: "Tuition March",
	}
	invoice, err := s.service.CreateInvoice(s.ctx, req)

	s.NoError(err)
	s.NotEmpty(invoice.InvoiceID)
	s.Equal(int64(15000), invoice.AmountCents)
	s.False(invoice.IssuedAt.IsZero())
	s.cache.AssertCalled(s.T(), "InvalidateStudent", s.ctx, s.student.StudentID, s.student.SchoolID)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_UnsupportedCurrency() {
	req := dto.CreateInvoiceRequest{
		StudentID:   s.student.StudentID,
		AmountCents: 15000,
		Currency:    "XXX",
	}
	_, err := s.service.CreateInvoice(s.ctx, req)

	s.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	s.invoiceRepo.AssertNotCalled(s.T(), "SaveInvoice", mock.Anything, mock.Anything)
	s.cache.AssertNotCalled(s.T(), "InvalidateStudent", mock.Anything, mock.Anything, mock.Anything)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_UnknownStudent() {
	s.studentRepo.On("FindStudentByID", s.ctx, s.student.StudentID).Return(nil, apperrors.ErrNotFound)

	req := dto.CreateInvoiceRequest{
		StudentID:   s.student.StudentID,
		AmountCents: 15000,
		Currency:    "USD",
	}
	_, err := s.service.CreateInvoice(s.ctx, req)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.invoiceRepo.AssertNotCalled(s.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (s *InvoiceServiceTestSuite) TestUpdateInvoice_InvalidatesCache() {
	invoice := &domain.Invoice{
		InvoiceID:   uuid.NewString(),
		StudentID:   s.student.StudentID,
		AmountCents: 10000,
		Currency:    "USD",
	}
	newAmount := int64(12000)

	s.invoiceRepo.On("FindInvoiceByID", s.ctx, invoice.InvoiceID).Return(invoice, nil)
	s.invoiceRepo.On("UpdateInvoice", s.ctx, mock.AnythingOfType("domain.Invoice")).Return(nil)
	s.studentRepo.On("FindStudentByID", s.ctx, s.student.StudentID).Return(&s.student, nil)
	s.cache.On("InvalidateStudent", s.ctx, s.student.StudentID, s.student.SchoolID).Return()

	updated, err := s.service.UpdateInvoice(s.ctx, invoice.InvoiceID, dto.UpdateInvoiceRequest{AmountCents: &newAmount})

	s.NoError(err)
	s.Equal(newAmount, updated.AmountCents)
	s.cache.AssertCalled(s.T(), "InvalidateStudent", s.ctx, s.student.StudentID, s.student.SchoolID)
}

func (s *InvoiceServiceTestSuite) TestDeleteInvoice_InvalidatesCache() {
	invoice := &domain.Invoice{InvoiceID: uuid.NewString(), StudentID: s.student.StudentID}

	s.invoiceRepo.On("FindInvoiceByID", s.ctx, invoice.InvoiceID).Return(invoice, nil)
	s.invoiceRepo.On("DeleteInvoice", s.ctx, invoice.InvoiceID).Return(nil)
	s.studentRepo.On("FindStudentByID", s.ctx, s.student.StudentID).Return(&s.student, nil)
	s.cache.On("InvalidateStudent", s.ctx, s.student.StudentID, s.student.SchoolID).Return()

	err := s.service.DeleteInvoice(s.ctx, invoice.InvoiceID)

	s.NoError(err)
	s.cache.AssertCalled(s.T(), "InvalidateStudent", s.ctx, s.student.StudentID, s.student.SchoolID)
}

func (s *InvoiceServiceTestSuite) TestRevokeInvoice_MarksRevokedAndInvalidates() {
	invoice := &domain.Invoice{InvoiceID: uuid.NewString(), StudentID: s.student.StudentID}

	s.invoiceRepo.On("FindInvoiceByID", s.ctx, invoice.InvoiceID).Return(invoice, nil)
	s.invoiceRepo.On("RevokeInvoice", s.ctx, invoice.InvoiceID, mock.AnythingOfType("time.Time")).Return(nil)
	s.studentRepo.On("FindStudentByID", s.ctx, s.student.StudentID).Return(&s.student, nil)
	s.cache.On("InvalidateStudent", s.ctx, s.student.StudentID, s.student.SchoolID).Return()

	revoked, err := s.service.RevokeInvoice(s.ctx, invoice.InvoiceID)

	s.NoError(err)
	s.True(revoked.IsRevoked())
	s.cache.AssertCalled(s.T(), "InvalidateStudent", s.ctx, s.student.StudentID, s.student.SchoolID)
}

func (s *InvoiceServiceTestSuite) TestRestoreInvoice_ClearsRevocation() {
	invoice := &domain.Invoice{InvoiceID: uuid.NewString(), StudentID: s.student.StudentID}
	invoice.Revoke(time.Now().UTC())

	s.invoiceRepo.On("FindInvoiceByID", s.ctx, invoice.InvoiceID).Return(invoice, nil)
	s.invoiceRepo.On("RestoreInvoice", s.ctx, invoice.InvoiceID).Return(nil)
	s.studentRepo.On("FindStudentByID", s.ctx, s.student.StudentID).Return(&s.student, nil)
	s.cache.On("InvalidateStudent", s.ctx, s.student.StudentID, s.student.SchoolID).Return()

	restored, err := s.service.RestoreInvoice(s.ctx, invoice.InvoiceID)

	s.NoError(err)
	s.False(restored.IsRevoked())
}

func (s *InvoiceServiceTestSuite) TestRevokeInvoice_UnknownInvoice() {
	missingID := uuid.NewString()
	s.invoiceRepo.On("FindInvoiceByID", s.ctx, missingID).Return(nil, apperrors.ErrNotFound)

	_, err := s.service.RevokeInvoice(s.ctx, missingID)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.invoiceRepo.AssertNotCalled(s.T(), "RevokeInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
