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

// schoolServiceImpl implements the SchoolSvcFacade interface.
type schoolServiceImpl struct {
	BaseService
	schoolRepo portsrepo.SchoolRepositoryFacade
}

// NewSchoolService creates a new school service.
func NewSchoolService(schoolRepo portsrepo.SchoolRepositoryFacade) portssvc.SchoolSvcFacade {
	return &schoolServiceImpl{schoolRepo: schoolRepo}
}

var _ portssvc.SchoolSvcFacade = (*schoolServiceImpl)(nil)

func (s *schoolServiceImpl) CreateSchool(ctx context.Context, req dto.CreateSchoolRequest) (*domain.School, error) {
	now := time.Now().UTC()
	school := domain.School{
		SchoolID:    uuid.NewString(),
		Name:        req.Name,
		Address:     req.Address,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.schoolRepo.SaveSchool(ctx, school); err != nil {
		s.LogError(ctx, err, "Failed to save school", slog.String("school_id", school.SchoolID))
		return nil, err
	}

	s.LogInfo(ctx, "School created", slog.String("school_id", school.SchoolID))
	return &school, nil
}

func (s *schoolServiceImpl) GetSchoolByID(ctx context.Context, schoolID string) (*domain.School, error) {
	return s.schoolRepo.FindSchoolByID(ctx, schoolID)
}

func (s *schoolServiceImpl) ListSchools(ctx context.Context, limit int, offset int) ([]domain.School, error) {
	return s.schoolRepo.ListSchools(ctx, limit, offset)
}

func (s *schoolServiceImpl) UpdateSchool(ctx context.Context, schoolID string, req dto.UpdateSchoolRequest) (*domain.School, error) {
	school, err := s.schoolRepo.FindSchoolByID(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		school.Name = *req.Name
	}
	if req.Address != nil {
		school.Address = *req.Address
	}
	school.UpdatedAt = time.Now().UTC()

	if err := s.schoolRepo.UpdateSchool(ctx, *school); err != nil {
		s.LogError(ctx, err, "Failed to update school", slog.String("school_id", schoolID))
		return nil, err
	}
	return school, nil
}

func (s *schoolServiceImpl) DeleteSchool(ctx context.Context, schoolID string) error {
	if _, err := s.schoolRepo.FindSchoolByID(ctx, schoolID); err != nil {
		return err
	}
	if err := s.schoolRepo.DeleteSchool(ctx, schoolID); err != nil {
		s.LogError(ctx, err, "Failed to delete school", slog.String("school_id", schoolID))
		return err
	}
	s.LogInfo(ctx, "School deleted", slog.String("school_id", schoolID))
	return nil
}
