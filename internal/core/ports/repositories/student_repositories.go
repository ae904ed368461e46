package repositories

import (
	"context"

	"github.com/mattilda/school_billing_app/internal/core/domain"
)

// StudentReader defines read operations for students.
type StudentReader interface {
	FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error)
	// ListStudents returns students, optionally filtered by school when
	// schoolID is non-empty.
	ListStudents(ctx context.Context, limit int, offset int, schoolID string) ([]domain.Student, error)
	// FindStudentWithLedger eager-loads the student, their school, their
	// invoices and the imputations against those invoices, in one call.
	FindStudentWithLedger(ctx context.Context, studentID string) (*domain.StudentLedger, error)
}

// StudentWriter defines write operations for students.
type StudentWriter interface {
	SaveStudent(ctx context.Context, student domain.Student) error
	UpdateStudent(ctx context.Context, student domain.Student) error
	DeleteStudent(ctx context.Context, studentID string) error
}

// StudentRepositoryFacade combines read and write operations.
type StudentRepositoryFacade interface {
	StudentReader
	StudentWriter
}
