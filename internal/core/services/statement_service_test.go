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

type StatementServiceTestSuite struct {
	suite.Suite
	studentRepo *MockStudentRepository
	schoolRepo  *MockSchoolRepository
	cache       *MockStatementCache
	service     portssvc.StatementSvcFacade
	ctx         context.Context
}

func (s *StatementServiceTestSuite) SetupTest() {
	s.studentRepo = new(MockStudentRepository)
	s.schoolRepo = new(MockSchoolRepository)
	s.cache = new(MockStatementCache)
	s.service = services.NewStatementService(s.studentRepo, s.schoolRepo, s.cache, "USD")
	s.ctx = context.Background()
}

func (s *StatementServiceTestSuite) TestGetStudentStatement_CacheHit() {
	studentID := uuid.NewString()
	cached := &dto.StudentAccountStatement{StudentID: studentID}
	s.cache.On("GetStudentStatement", s.ctx, studentID).Return(cached, true)

	statement, err := s.service.GetStudentStatement(s.ctx, studentID)

	s.NoError(err)
	s.Same(cached, statement)
	s.studentRepo.AssertNotCalled(s.T(), "FindStudentWithLedger", mock.Anything, mock.Anything)
	s.cache.AssertNotCalled(s.T(), "PutStudentStatement", mock.Anything, mock.Anything, mock.Anything)
}

func (s *StatementServiceTestSuite) TestGetStudentStatement_CacheMissPopulatesCache() {
	studentID := uuid.NewString()
	ledger := &domain.StudentLedger{
		Student: domain.Student{StudentID: studentID, Name: "Ada", SchoolID: uuid.NewString()},
		School:  domain.School{SchoolID: uuid.NewString(), Name: "St. Analytical"},
		Invoices: []domain.InvoiceWithImputations{
			{Invoice: domain.Invoice{InvoiceID: uuid.NewString(), StudentID: studentID, AmountCents: 10000, Currency: "USD"}},
		},
	}

	s.cache.On("GetStudentStatement", s.ctx, studentID).Return(nil, false)
	s.studentRepo.On("FindStudentWithLedger", s.ctx, studentID).Return(ledger, nil)
	s.cache.On("PutStudentStatement", s.ctx, studentID, mock.AnythingOfType("*dto.StudentAccountStatement")).Return()

	statement, err := s.service.GetStudentStatement(s.ctx, studentID)

	s.NoError(err)
	s.Equal(int64(10000), statement.TotalOutstanding.AmountCents)
	s.cache.AssertCalled(s.T(), "PutStudentStatement", s.ctx, studentID, statement)
}

func (s *StatementServiceTestSuite) TestGetStudentStatement_NotFoundSkipsCache() {
	studentID := uuid.NewString()
	s.cache.On("GetStudentStatement", s.ctx, studentID).Return(nil, false)
	s.studentRepo.On("FindStudentWithLedger", s.ctx, studentID).Return(nil, apperrors.ErrNotFound)

	_, err := s.service.GetStudentStatement(s.ctx, studentID)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.cache.AssertNotCalled(s.T(), "PutStudentStatement", mock.Anything, mock.Anything, mock.Anything)
}

func (s *StatementServiceTestSuite) TestGetStudentStatement_AggregationFailureSkipsCache() {
	studentID := uuid.NewString()
	ledger := &domain.StudentLedger{
		Student: domain.Student{StudentID: studentID},
		Invoices: []domain.InvoiceWithImputations{
			{Invoice: domain.Invoice{InvoiceID: uuid.NewString(), AmountCents: 1000, Currency: "USD"}},
			{Invoice: domain.Invoice{InvoiceID: uuid.NewString(), AmountCents: 1000, Currency: "EUR"}},
		},
	}
	s.cache.On("GetStudentStatement", s.ctx, studentID).Return(nil, false)
	s.studentRepo.On("FindStudentWithLedger", s.ctx, studentID).Return(ledger, nil)

	_, err := s.service.GetStudentStatement(s.ctx, studentID)

	s.ErrorIs(err, apperrors.ErrMixedCurrency)
	s.cache.AssertNotCalled(s.T(), "PutStudentStatement", mock.Anything, mock.Anything, mock.Anything)
}

func (s *StatementServiceTestSuite) TestGetSchoolStatement_CacheHit() {
	schoolID := uuid.NewString()
	cached := &dto.SchoolAccountStatement{SchoolID: schoolID}
	s.cache.On("GetSchoolStatement", s.ctx, schoolID).Return(cached, true)

	statement, err := s.service.GetSchoolStatement(s.ctx, schoolID)

	s.NoError(err)
	s.Same(cached, statement)
	s.schoolRepo.AssertNotCalled(s.T(), "FindSchoolWithLedger", mock.Anything, mock.Anything)
}

func (s *StatementServiceTestSuite) TestGetSchoolStatement_CacheMissPopulatesCache() {
	schoolID := uuid.NewString()
	studentID := uuid.NewString()
	ledger := &domain.SchoolLedger{
		School: domain.School{SchoolID: schoolID, Name: "St. Analytical"},
		Students: []domain.StudentWithInvoices{
			{
				Student: domain.Student{StudentID: studentID, Name: "Ada", SchoolID: schoolID},
				Invoices: []domain.InvoiceWithImputations{
					{Invoice: domain.Invoice{InvoiceID: uuid.NewString(), StudentID: studentID, AmountCents: 8000, Currency: "USD"}},
				},
			},
		},
	}

	s.cache.On("GetSchoolStatement", s.ctx, schoolID).Return(nil, false)
	s.schoolRepo.On("FindSchoolWithLedger", s.ctx, schoolID).Return(ledger, nil)
	s.cache.On("PutSchoolStatement", s.ctx, schoolID, mock.AnythingOfType("*dto.SchoolAccountStatement")).Return()

	statement, err := s.service.GetSchoolStatement(s.ctx, schoolID)

	s.NoError(err)
	s.Equal(1, statement.NumberOfStudents)
	s.Equal(int64(8000), statement.TotalInvoiced.AmountCents)
	s.cache.AssertCalled(s.T(), "PutSchoolStatement", s.ctx, schoolID, statement)
}

func (s *StatementServiceTestSuite) TestGetSchoolStatement_NotFoundSkipsCache() {
	schoolID := uuid.NewString()
	s.cache.On("GetSchoolStatement", s.ctx, schoolID).Return(nil, false)
	s.schoolRepo.On("FindSchoolWithLedger", s.ctx, schoolID).Return(nil, apperrors.ErrNotFound)

	_, err := s.service.GetSchoolStatement(s.ctx, schoolID)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.cache.AssertNotCalled(s.T(), "PutSchoolStatement", mock.Anything, mock.Anything, mock.Anything)
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
