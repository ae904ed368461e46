package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mattilda/school_billing_app/internal/core/domain"
	portsrepo "github.com/mattilda/school_billing_app/internal/core/ports/repositories"
	portssvc "github.com/mattilda/school_billing_app/internal/core/ports/services"
	"github.com/mattilda/school_billing_app/internal/dto"
)

// studentServiceImpl implements the StudentSvcFacade interface.
type studentServiceImpl struct {
	BaseService
	studentRepo portsrepo.StudentRepositoryFacade
	schoolRepo  portsrepo.SchoolReader
}

// NewStudentService creates a new student service.
func NewStudentService(studentRepo portsrepo.StudentRepositoryFacade, schoolRepo portsrepo.SchoolReader) portssvc.StudentSvcFacade {
	return &studentServiceImpl{studentRepo: studentRepo, schoolRepo: schoolRepo}
}

var _ portssvc.StudentSvcFacade = (*studentServiceImpl)(nil)

func (s *studentServiceImpl) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*domain.Student, error) {
	// The school must exist before a student can be enrolled in it.
	if _, err := s.schoolRepo.FindSchoolByID(ctx, req.SchoolID); err != nil {
		s.LogError(ctx, err, "Failed to find school for student", slog.String("school_id", req.SchoolID))
		return nil, err
	}

	now := time.Now().UTC()
	student := domain.Student{
		StudentID:   uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		SchoolID:    req.SchoolID,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.studentRepo.SaveStudent(ctx, student); err != nil {
		s.LogError(ctx, err, "Failed to save student", slog.String("student_id", student.StudentID))
		return nil, err
	}

	s.LogInfo(ctx, "Student created", slog.String("student_id", student.StudentID), slog.String("school_id", student.SchoolID))
	return &student, nil
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	return s.studentRepo.FindStudentByID(ctx, studentID)
}

func (s *studentServiceImpl) ListStudents(ctx context.Context, limit int, offset int, schoolID string) ([]domain.Student, error) {
	return s.studentRepo.ListStudents(ctx, limit, offset, schoolID)
}

func (s *studentServiceImpl) UpdateStudent(ctx context.Context, studentID string, req dto.UpdateStudentRequest) (*domain.Student, error) {
	student, err := s.studentRepo.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	student.UpdatedAt = time.Now().UTC()

	if err := s.studentRepo.UpdateStudent(ctx, *student); err != nil {
		s.LogError(ctx, err, "Failed to update student", slog.String("student_id", studentID))
		return nil, err
	}
	return student, nil
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, studentID string) error {
	if _, err := s.studentRepo.FindStudentByID(ctx, studentID); err != nil {
		return err
	}
	if err := s.studentRepo.DeleteStudent(ctx, studentID); err != nil {
		s.LogError(ctx, err, "Failed to delete student", slog.String("student_id", studentID))
		return err
	}
	s.LogInfo(ctx, "Student deleted", slog.String("student_id", studentID))
	return nil
}
