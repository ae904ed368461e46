package services

import (
	"context"

	"github.com/mattilda/school_billing_app/internal/core/domain"
	"github.com/mattilda/school_billing_app/internal/dto"
)

// StudentSvcFacade defines student management operations consumed by handlers.
type StudentSvcFacade interface {
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*domain.Student, error)
	GetStudentByID(ctx context.Context, studentID string) (*domain.Student, error)
	ListStudents(ctx context.Context, limit int, offset int, schoolID string) ([]domain.Student, error)
	UpdateStudent(ctx context.Context, studentID string, req dto.UpdateStudentRequest) (*domain.Student, error)
	DeleteStudent(ctx context.Context, studentID string) error
}
