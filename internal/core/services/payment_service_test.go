package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mattilda/school_billing_app/internal/apperrors"
	"github.com/mattilda/school_billing_app/internal/core/domain"
	portssvc "github.com/mattilda/school_billing_app/internal/core/ports/services"
	"github.com/mattilda/school_billing_app/internal/core/services"
	"github.com/mattilda/school_billing_app/internal/dto"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	paymentRepo *MockPaymentRepository
	invoiceRepo *MockInvoiceRepository
	studentRepo *MockStudentRepository
	cache       *MockStatementCache
	service     portssvc.PaymentSvcFacade
	ctx         context.Context

	student domain.Student
	invoice domain.Invoice
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.paymentRepo = new(MockPaymentRepository)
	s.invoiceRepo = new(MockInvoiceRepository)
	s.studentRepo = new(MockStudentRepository)
	s.cache = new(MockStatementCache)
	s.service = services.NewPaymentService(s.paymentRepo, s.invoiceRepo, s.studentRepo, s.cache)
	s.ctx = context.Background()

	s.student = domain.Student{StudentID: uuid.NewString(), Name: "Ada", SchoolID: uuid.NewString()}
	s.invoice = domain.Invoice{
		InvoiceID:   uuid.NewString(),
		StudentID:   s.student.StudentID,
		AmountCents: 10000,
		Currency:    "USD",
	}
}

func (s *PaymentServiceTestSuite) request(amountCents int64, imputations ...dto.ImputationInput) dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		StudentID:     s.student.StudentID,
		AmountCents:   amountCents,
		Currency:      "USD",
		PaymentMethod: domain.Cash,
		Imputations:   imputations,
	}
}

func (s *PaymentServiceTestSuite) TestCreatePayment_Success() {
	s.studentRepo.On("FindStudentByID", s.ctx, s.student.StudentID).Return(&s.student, nil)
	s.invoiceRepo.On("FindInvoiceByID", s.ctx, s.invoice.InvoiceID).Return(&s.invoice, nil)
	s.invoiceRepo.On("SumImputationsForInvoice", s.ctx, s.invoice.InvoiceID).Return(int64(0), nil)
	s.paymentRepo.On("SavePayment", s.ctx, mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("[]domain.PaymentImputation")).Return(nil)
	s.cache.On("InvalidateStudent", s.ctx, s.student.StudentID, s.student.SchoolID).Return()

	req := s.request(6000, dto.ImputationInput{InvoiceID: s.invoice.InvoiceID, AmountCents: 6000})
	payment, imputations, err := s.service.CreatePayment(s.ctx, req)

	s.NoError(err)
	s.NotEmpty(payment.PaymentID)
	s.Equal(int64(6000), payment.AmountCents)
	s.Require().Len(imputations, 1)
	s.Equal(payment.PaymentID, imputations[0].PaymentID)
	s.Equal(s.invoice.InvoiceID, imputations[0].InvoiceID)
	s.paymentRepo.AssertExpectations(s.T())
	s.cache.AssertCalled(s.T(), "InvalidateStudent", s.ctx, s.student.StudentID, s.student.SchoolID)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_ImputationTotalMismatch() {
	s.studentRepo.On("FindStudentByID", s.ctx, s.student.StudentID).Return(&s.student, nil)
	s.invoiceRepo.On("FindInvoiceByID", s.ctx, s.invoice.InvoiceID).Return(&s.invoice, nil)
	s.invoiceRepo.On("SumImputationsForInvoice", s.ctx, s.invoice.InvoiceID).Return(int64(0), nil)

	req := s.request(10000, dto.ImputationInput{InvoiceID: s.invoice.InvoiceID, AmountCents: 5000})
	_, _, err := s.service.CreatePayment(s.ctx, req)

	s.ErrorIs(err, apperrors.ErrImputationTotalMismatch)
	s.paymentRepo.AssertNotCalled(s.T(), "SavePayment", mock.Anything, mock.Anything, mock.Anything)
	s.cache.AssertNotCalled(s.T(), "InvalidateStudent", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_ExceedsOutstanding() {
	s.studentRepo.On("FindStudentByID", s.ctx, s.student.StudentID).Return(&s.student, nil)
	s.invoiceRepo.On("FindInvoiceByID", s.ctx, s.invoice.InvoiceID).Return(&s.invoice, nil)
	s.invoiceRepo.On("SumImputationsForInvoice", s.ctx, s.invoice.InvoiceID).Return(int64(7000), nil)

	// 7000 already paid against a 10000 invoice leaves only 3000 open.
	req := s.request(4000, dto.ImputationInput{InvoiceID: s.invoice.InvoiceID, AmountCents: 4000})
	_, _, err := s.service.CreatePayment(s.ctx, req)

	s.ErrorIs(err, apperrors.ErrImputationExceedsOutstanding)
	s.paymentRepo.AssertNotCalled(s.T(), "SavePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_InvoiceBelongsToOtherStudent() {
	other := s.invoice
	other.StudentID = uuid.NewString()
	s.studentRepo.On("FindStudentByID", s.ctx, s.student.StudentID).Return(&s.student, nil)
	s.invoiceRepo.On("FindInvoiceByID", s.ctx, other.InvoiceID).Return(&other, nil)

	req := s.request(5000, dto.ImputationInput{InvoiceID: other.InvoiceID, AmountCents: 5000})
	_, _, err := s.service.CreatePayment(s.ctx, req)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.paymentRepo.AssertNotCalled(s.T(), "SavePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_InvoiceCurrencyMismatch() {
	eurInvoice := s.invoice
	eurInvoice.Currency = "EUR"
	s.studentRepo.On("FindStudentByID", s.ctx, s.student.StudentID).Return(&s.student, nil)
	s.invoiceRepo.On("FindInvoiceByID", s.ctx, eurInvoice.InvoiceID).Return(&eurInvoice, nil)

	req := s.request(5000, dto.ImputationInput{InvoiceID: eurInvoice.InvoiceID, AmountCents: 5000})
	_, _, err := s.service.CreatePayment(s.ctx, req)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.paymentRepo.AssertNotCalled(s.T(), "SavePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_UnsupportedCurrency() {
	req := s.request(5000, dto.ImputationInput{InvoiceID: s.invoice.InvoiceID, AmountCents: 5000})
	req.Currency = "XXX"

	_, _, err := s.service.CreatePayment(s.ctx, req)

	s.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	s.studentRepo.AssertNotCalled(s.T(), "FindStudentByID", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_UnknownInvoice() {
	missingID := uuid.NewString()
	s.studentRepo.On("FindStudentByID", s.ctx, s.student.StudentID).Return(&s.student, nil)
	s.invoiceRepo.On("FindInvoiceByID", s.ctx, missingID).Return(nil, apperrors.ErrNotFound)

	req := s.request(5000, dto.ImputationInput{InvoiceID: missingID, AmountCents: 5000})
	_, _, err := s.service.CreatePayment(s.ctx, req)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.paymentRepo.AssertNotCalled(s.T(), "SavePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_UnknownStudent() {
	s.studentRepo.On("FindStudentByID", s.ctx, s.student.StudentID).Return(nil, apperrors.ErrNotFound)

	req := s.request(5000, dto.ImputationInput{InvoiceID: s.invoice.InvoiceID, AmountCents: 5000})
	_, _, err := s.service.CreatePayment(s.ctx, req)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.invoiceRepo.AssertNotCalled(s.T(), "FindInvoiceByID", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_SplitAcrossInvoices() {
	second := domain.Invoice{
		InvoiceID:   uuid.NewString(),
		StudentID:   s.student.StudentID,
		AmountCents: 5000,
		Currency:    "USD",
	}
	s.studentRepo.On("FindStudentByID", s.ctx, s.student.StudentID).Return(&s.student, nil)
	s.invoiceRepo.On("FindInvoiceByID", s.ctx, s.invoice.InvoiceID).Return(&s.invoice, nil)
	s.invoiceRepo.On("FindInvoiceByID", s.ctx, second.InvoiceID).Return(&second, nil)
	s.invoiceRepo.On("SumImputationsForInvoice", s.ctx, s.invoice.InvoiceID).Return(int64(0), nil)
	s.invoiceRepo.On("SumImputationsForInvoice", s.ctx, second.InvoiceID).Return(int64(0), nil)
	s.paymentRepo.On("SavePayment", s.ctx, mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("[]domain.PaymentImputation")).Return(nil)
	s.cache.On("InvalidateStudent", s.ctx, s.student.StudentID, s.student.SchoolID).Return()

	req := s.request(12000,
		dto.ImputationInput{InvoiceID: s.invoice.InvoiceID, AmountCents: 10000},
		dto.ImputationInput{InvoiceID: second.InvoiceID, AmountCents: 2000},
	)
	payment, imputations, err := s.service.CreatePayment(s.ctx, req)

	s.NoError(err)
	s.Len(imputations, 2)
	s.Equal(int64(12000), payment.AmountCents)
}

func (s *PaymentServiceTestSuite) TestDeletePayment_InvalidatesCache() {
	payment := &domain.Payment{PaymentID: uuid.NewString(), StudentID: s.student.StudentID}
	s.paymentRepo.On("FindPaymentByID", s.ctx, payment.PaymentID).Return(payment, nil)
	s.paymentRepo.On("DeletePayment", s.ctx, payment.PaymentID).Return(nil)
	s.studentRepo.On("FindStudentByID", s.ctx, s.student.StudentID).Return(&s.student, nil)
	s.cache.On("InvalidateStudent", s.ctx, s.student.StudentID, s.student.SchoolID).Return()

	err := s.service.DeletePayment(s.ctx, payment.PaymentID)

	s.NoError(err)
	s.cache.AssertCalled(s.T(), "InvalidateStudent", s.ctx, s.student.StudentID, s.student.SchoolID)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
