package repositories

import (
	"context"

	"github.com/mattilda/school_billing_app/internal/core/domain"
)

// SchoolReader defines read operations for schools.
type SchoolReader interface {
	FindSchoolByID(ctx context.Context, schoolID string) (*domain.School, error)
	ListSchools(ctx context.Context, limit int, offset int) ([]domain.School, error)
	// FindSchoolWithLedger eager-loads the school, its students, their
	// invoices and the imputations against those invoices, in one call.
	// Iteration order is store order and stable within a call.
	FindSchoolWithLedger(ctx context.Context, schoolID string) (*domain.SchoolLedger, error)
}

// SchoolWriter defines write operations for schools.
type SchoolWriter interface {
	SaveSchool(ctx context.Context, school domain.School) error
	UpdateSchool(ctx context.Context, school domain.School) error
	// DeleteSchool hard-deletes the school; students, invoices and
	// imputations cascade at the store level.
	DeleteSchool(ctx context.Context, schoolID string) error
}

// SchoolRepositoryFacade combines read and write operations.
type SchoolRepositoryFacade interface {
	SchoolReader
	SchoolWriter
}
