package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mattilda/school_billing_app/internal/apperrors"
	portsrepo "github.com/mattilda/school_billing_app/internal/core/ports/repositories"
	portssvc "github.com/mattilda/school_billing_app/internal/core/ports/services"
	"github.com/mattilda/school_billing_app/internal/dto"
	"github.com/mattilda/school_billing_app/internal/metrics"
)

// statementServiceImpl ties aggregator, store and cache into one coherent
// read path: cache hit returns immediately, cache miss loads the ledger
// graph, aggregates and populates the cache before returning. NotFound and
// aggregation failures never touch the cache.
type statementServiceImpl struct {
	BaseService
	studentRepo     portsrepo.StudentReader
	schoolRepo      portsrepo.SchoolReader
	cache           portsrepo.StatementCache
	defaultCurrency string
}

// NewStatementService creates the cache-coherent statement service.
func NewStatementService(studentRepo portsrepo.StudentReader, schoolRepo portsrepo.SchoolReader, cache portsrepo.StatementCache, defaultCurrency string) portssvc.StatementSvcFacade {
	return &statementServiceImpl{
		studentRepo:     studentRepo,
		schoolRepo:      schoolRepo,
		cache:           cache,
		defaultCurrency: defaultCurrency,
	}
}

var _ portssvc.StatementSvcFacade = (*statementServiceImpl)(nil)

func (s *statementServiceImpl) GetStudentStatement(ctx context.Context, studentID string) (*dto.StudentAccountStatement, error) {
	start := time.Now()

	if statement, ok := s.cache.GetStudentStatement(ctx, studentID); ok {
		metrics.StatementRead("student", "hit", time.Since(start))
		return statement, nil
	}

	ledger, err := s.studentRepo.FindStudentWithLedger(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			metrics.StatementRead("student", "not_found", time.Since(start))
		} else {
			s.LogError(ctx, err, "Failed to load student ledger", slog.String("student_id", studentID))
			metrics.StatementRead("student", "error", time.Since(start))
		}
		return nil, err
	}

	statement, err := BuildStudentStatement(*ledger, s.defaultCurrency)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate student statement", slog.String("student_id", studentID))
		metrics.StatementRead("student", "error", time.Since(start))
		return nil, err
	}

	s.cache.PutStudentStatement(ctx, studentID, statement)
	metrics.StatementRead("student", "miss", time.Since(start))
	return statement, nil
}

func (s *statementServiceImpl) GetSchoolStatement(ctx context.Context, schoolID string) (*dto.SchoolAccountStatement, error) {
	start := time.Now()

	if statement, ok := s.cache.GetSchoolStatement(ctx, schoolID); ok {
		metrics.StatementRead("school", "hit", time.Since(start))
		return statement, nil
	}

	ledger, err := s.schoolRepo.FindSchoolWithLedger(ctx, schoolID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			metrics.StatementRead("school", "not_found", time.Since(start))
		} else {
			s.LogError(ctx, err, "Failed to load school ledger", slog.String("school_id", schoolID))
			metrics.StatementRead("school", "error", time.Since(start))
		}
		return nil, err
	}

	statement, err := BuildSchoolStatement(*ledger, s.defaultCurrency)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate school statement", slog.String("school_id", schoolID))
		metrics.StatementRead("school", "error", time.Since(start))
		return nil, err
	}

	s.cache.PutSchoolStatement(ctx, schoolID, statement)
	metrics.StatementRead("school", "miss", time.Since(start))
	return statement, nil
}
