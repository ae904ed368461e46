package repositories

import (
	"context"

	"github.com/mattilda/school_billing_app/internal/dto"
)

// StatementCache stores the most recently computed statement per student or
// school id until explicitly invalidated or expired.
//
// The cache is a pure optimization: implementations must never surface I/O
// or serialization failures to callers. A failed read reports a miss, a
// failed write or invalidation is logged and swallowed. Correctness never
// depends on the cache being available.
type StatementCache interface {
	// GetStudentStatement returns the cached statement and true on a hit,
	// nil and false on a miss (including any cache failure).
	GetStudentStatement(ctx context.Context, studentID string) (*dto.StudentAccountStatement, bool)
	// PutStudentStatement stores the statement with the configured TTL,
	// overwriting any prior value.
	PutStudentStatement(ctx context.Context, studentID string, statement *dto.StudentAccountStatement)

	GetSchoolStatement(ctx context.Context, schoolID string) (*dto.SchoolAccountStatement, bool)
	PutSchoolStatement(ctx context.Context, schoolID string, statement *dto.SchoolAccountStatement)

	// InvalidateStudent removes the cached statements for a student and for
	// that student's school. Idempotent: invalidating absent keys is a
	// no-op.
	InvalidateStudent(ctx context.Context, studentID string, schoolID string)
}
