package services

import (
	"context"

	"github.com/mattilda/school_billing_app/internal/dto"
)

// StatementSvcFacade serves account statements through the statement cache.
type StatementSvcFacade interface {
	GetStudentStatement(ctx context.Context, studentID string) (*dto.StudentAccountStatement, error)
	GetSchoolStatement(ctx context.Context, schoolID string) (*dto.SchoolAccountStatement, error)
}
