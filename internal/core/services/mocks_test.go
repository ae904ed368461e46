package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mattilda/school_billing_app/internal/core/domain"
	"github.com/mattilda/school_billing_app/internal/dto"
)

// MockStudentRepository is a mock type for the StudentRepositoryFacade interface
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentRepository) ListStudents(ctx context.Context, limit int, offset int, schoolID string) ([]domain.Student, error) {
	args := m.Called(ctx, limit, offset, schoolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}

func (m *MockStudentRepository) FindStudentWithLedger(ctx context.Context, studentID string) (*domain.StudentLedger, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentLedger), args.Error(1)
}

func (m *MockStudentRepository) SaveStudent(ctx context.Context, student domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) UpdateStudent(ctx context.Context, student domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) DeleteStudent(ctx context.Context, studentID string) error {
	args := m.Called(ctx, studentID)
	return args.Error(0)
}

// MockSchoolRepository is a mock type for the SchoolRepositoryFacade interface
type MockSchoolRepository struct {
	mock.Mock
}

func (m *MockSchoolRepository) FindSchoolByID(ctx context.Context, schoolID string) (*domain.School, error) {
	args := m.Called(ctx, schoolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.School), args.Error(1)
}

func (m *MockSchoolRepository) ListSchools(ctx context.Context, limit int, offset int) ([]domain.School, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.School), args.Error(1)
}

func (m *MockSchoolRepository) FindSchoolWithLedger(ctx context.Context, schoolID string) (*domain.SchoolLedger, error) {
	args := m.Called(ctx, schoolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SchoolLedger), args.Error(1)
}

func (m *MockSchoolRepository) SaveSchool(ctx context.Context, school domain.School) error {
	args := m.Called(ctx, school)
	return args.Error(0)
}

func (m *MockSchoolRepository) UpdateSchool(ctx context.Context, school domain.School) error {
	args := m.Called(ctx, school)
	return args.Error(0)
}

func (m *MockSchoolRepository) DeleteSchool(ctx context.Context, schoolID string) error {
	args := m.Called(ctx, schoolID)
	return args.Error(0)
}

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, limit int, offset int, studentID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, limit, offset, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SumImputationsForInvoice(ctx context.Context, invoiceID string) (int64, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) RevokeInvoice(ctx context.Context, invoiceID string, now time.Time) error {
	args := m.Called(ctx, invoiceID, now)
	return args.Error(0)
}

func (m *MockInvoiceRepository) RestoreInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

// MockPaymentRepository is a mock type for the PaymentRepositoryFacade interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindImputationsByPaymentID(ctx context.Context, paymentID string) ([]domain.PaymentImputation, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentImputation), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, limit int, offset int, studentID string) ([]domain.Payment, error) {
	args := m.Called(ctx, limit, offset, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, imputations []domain.PaymentImputation) error {
	args := m.Called(ctx, payment, imputations)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockStatementCache is a mock type for the StatementCache interface
type MockStatementCache struct {
	mock.Mock
}

func (m *MockStatementCache) GetStudentStatement(ctx context.Context, studentID string) (*dto.StudentAccountStatement, bool) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*dto.StudentAccountStatement), args.Bool(1)
}

func (m *MockStatementCache) PutStudentStatement(ctx context.Context, studentID string, statement *dto.StudentAccountStatement) {
	m.Called(ctx, studentID, statement)
}

func (m *MockStatementCache) GetSchoolStatement(ctx context.Context, schoolID string) (*dto.SchoolAccountStatement, bool) {
	args := m.Called(ctx, schoolID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*dto.SchoolAccountStatement), args.Bool(1)
}

func (m *MockStatementCache) PutSchoolStatement(ctx context.Context, schoolID string, statement *dto.SchoolAccountStatement) {
	m.Called(ctx, schoolID, statement)
}

func (m *MockStatementCache) InvalidateStudent(ctx context.Context, studentID string, schoolID string) {
	m.Called(ctx, studentID, schoolID)
}
