package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mattilda/school_billing_app/internal/apperrors"
	"github.com/mattilda/school_billing_app/internal/core/domain"
	portsrepo "github.com/mattilda/school_billing_app/internal/core/ports/repositories"
	"github.com/mattilda/school_billing_app/internal/models"
	"github.com/mattilda/school_billing_app/internal/utils/mapping"
)

type PgxStudentRepository struct {
	pool *pgxpool.Pool
}

// newPgxStudentRepository creates a new repository for student data.
func newPgxStudentRepository(pool *pgxpool.Pool) portsrepo.StudentRepositoryFacade {
	return &PgxStudentRepository{pool: pool}
}

var _ portsrepo.StudentRepositoryFacade = (*PgxStudentRepository)(nil)

const studentColumns = `student_id, name, email, school_id, created_at, updated_at, revoked_at`

func scanStudent(row pgx.Row) (models.Student, error) {
	var m models.Student
	err := row.Scan(
		&m.StudentID,
		&m.Name,
		&m.Email,
		&m.SchoolID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.RevokedAt,
	)
	return m, err
}

// SaveStudent inserts a new student.
func (r *PgxStudentRepository) SaveStudent(ctx context.Context, student domain.Student) error {
	m := mapping.ToModelStudent(student)

	query := `
		INSERT INTO students (student_id, name, email, school_id, created_at, updated_at, revoked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.StudentID,
		m.Name,
		m.Email,
		m.SchoolID,
		m.CreatedAt,
		m.UpdatedAt,
		m.RevokedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: student with ID %s already exists", apperrors.ErrDuplicate, m.StudentID)
		}
		return fmt.Errorf("failed to save student %s: %w", m.StudentID, err)
	}
	return nil
}

// FindStudentByID retrieves a student by their ID.
func (r *PgxStudentRepository) FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1;`

	m, err := scanStudent(r.pool.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: student %s", apperrors.ErrNotFound, studentID)
		}
		return nil, fmt.Errorf("failed to find student %s: %w", studentID, err)
	}

	student := mapping.ToDomainStudent(m)
	return &student, nil
}

// ListStudents retrieves a page of students in insertion order, optionally
// restricted to one school.
func (r *PgxStudentRepository) ListStudents(ctx context.Context, limit int, offset int, schoolID string) ([]domain.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE ($3 = '' OR school_id = $3)
		ORDER BY created_at, student_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var ms []models.Student
	for rows.Next() {
		m, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return mapping.ToDomainStudentSlice(ms), nil
}

// UpdateStudent persists changes to an existing student.
func (r *PgxStudentRepository) UpdateStudent(ctx context.Context, student domain.Student) error {
	m := mapping.ToModelStudent(student)

	query := `
		UPDATE students
		SET name = $2, email = $3, updated_at = $4, revoked_at = $5
		WHERE student_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.StudentID,
		m.Name,
		m.Email,
		m.UpdatedAt,
		m.RevokedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update student %s: %w", m.StudentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: student %s", apperrors.ErrNotFound, m.StudentID)
	}
	return nil
}

// DeleteStudent hard-deletes a student. Invoices, payments and imputations
// cascade via foreign keys.
func (r *PgxStudentRepository) DeleteStudent(ctx context.Context, studentID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE student_id = $1;`, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete student %s: %w", studentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: student %s", apperrors.ErrNotFound, studentID)
	}
	return nil
}

// FindStudentWithLedger eager-loads the student, their school and their live
// invoices with imputations in one call.
func (r *PgxStudentRepository) FindStudentWithLedger(ctx context.Context, studentID string) (*domain.StudentLedger, error) {
	student, err := r.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	schoolQuery := `SELECT school_id, name, address, created_at, updated_at, revoked_at FROM schools WHERE school_id = $1;`
	school, err := scanSchool(r.pool.QueryRow(ctx, schoolQuery, student.SchoolID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: school %s", apperrors.ErrNotFound, student.SchoolID)
		}
		return nil, fmt.Errorf("failed to find school %s: %w", student.SchoolID, err)
	}

	invoicesByStudent, err := loadInvoicesForStudents(ctx, r.pool, []string{student.StudentID})
	if err != nil {
		return nil, err
	}

	return &domain.StudentLedger{
		Student:  *student,
		School:   mapping.ToDomainSchool(school),
		Invoices: invoicesByStudent[student.StudentID],
	}, nil
}
