package services

import (
	"context"

	"github.com/mattilda/school_billing_app/internal/core/domain"
	"github.com/mattilda/school_billing_app/internal/dto"
)

// SchoolSvcFacade defines school management operations consumed by handlers.
type SchoolSvcFacade interface {
	CreateSchool(ctx context.Context, req dto.CreateSchoolRequest) (*domain.School, error)
	GetSchoolByID(ctx context.Context, schoolID string) (*domain.School, error)
	ListSchools(ctx context.Context, limit int, offset int) ([]domain.School, error)
	UpdateSchool(ctx context.Context, schoolID string, req dto.UpdateSchoolRequest) (*domain.School, error)
	DeleteSchool(ctx context.Context, schoolID string) error
}
