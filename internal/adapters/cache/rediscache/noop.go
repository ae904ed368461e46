package rediscache

import (
	"context"

	portsrepo "github.com/mattilda/school_billing_app/internal/core/ports/repositories"
	"github.com/mattilda/school_billing_app/internal/dto"
)

// NoopStatementCache is used when no redis URL is configured. Every read is
// a miss and every write is discarded, so statement reads always hit the
// store.
type NoopStatementCache struct{}

// NewNoopStatementCache creates a statement cache that caches nothing.
func NewNoopStatementCache() *NoopStatementCache {
	return &NoopStatementCache{}
}

var _ portsrepo.StatementCache = (*NoopStatementCache)(nil)

func (*NoopStatementCache) GetStudentStatement(context.Context, string) (*dto.StudentAccountStatement, bool) {
	return nil, false
}

func (*NoopStatementCache) PutStudentStatement(context.Context, string, *dto.StudentAccountStatement) {
}

func (*NoopStatementCache) GetSchoolStatement(context.Context, string) (*dto.SchoolAccountStatement, bool) {
	return nil, false
}

func (*NoopStatementCache) PutSchoolStatement(context.Context, string, *dto.SchoolAccountStatement) {
}

func (*NoopStatementCache) InvalidateStudent(context.Context, string, string) {}
