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

type PgxSchoolRepository struct {
	pool *pgxpool.Pool
}

// newPgxSchoolRepository creates a new repository for school data.
func newPgxSchoolRepository(pool *pgxpool.Pool) portsrepo.SchoolRepositoryFacade {
	return &PgxSchoolRepository{pool: pool}
}

var _ portsrepo.SchoolRepositoryFacade = (*PgxSchoolRepository)(nil)

const schoolColumns = `school_id, name, address, created_at, updated_at, revoked_at`

func scanSchool(row pgx.Row) (models.School, error) {
	var m models.School
	err := row.Scan(
		&m.SchoolID,
		&m.Name,
		&m.Address,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.RevokedAt,
	)
	return m, err
}

// SaveSchool inserts a new school.
func (r *PgxSchoolRepository) SaveSchool(ctx context.Context, school domain.School) error {
	m := mapping.ToModelSchool(school)

	query := `
		INSERT INTO schools (school_id, name, address, created_at, updated_at, revoked_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		m.SchoolID,
		m.Name,
		m.Address,
		m.CreatedAt,
		m.UpdatedAt,
		m.RevokedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: school with ID %s already exists", apperrors.ErrDuplicate, m.SchoolID)
		}
		return fmt.Errorf("failed to save school %s: %w", m.SchoolID, err)
	}
	return nil
}

// FindSchoolByID retrieves a school by its ID.
func (r *PgxSchoolRepository) FindSchoolByID(ctx context.Context, schoolID string) (*domain.School, error) {
	query := `SELECT ` + schoolColumns + ` FROM schools WHERE school_id = $1;`

	m, err := scanSchool(r.pool.QueryRow(ctx, query, schoolID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: school %s", apperrors.ErrNotFound, schoolID)
		}
		return nil, fmt.Errorf("failed to find school %s: %w", schoolID, err)
	}

	school := mapping.ToDomainSchool(m)
	return &school, nil
}

// ListSchools retrieves a page of schools in insertion order.
func (r *PgxSchoolRepository) ListSchools(ctx context.Context, limit int, offset int) ([]domain.School, error) {
	query := `
		SELECT ` + schoolColumns + `
		FROM schools
		ORDER BY created_at, school_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list schools: %w", err)
	}
	defer rows.Close()

	var ms []models.School
	for rows.Next() {
		m, err := scanSchool(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan school row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating school rows: %w", err)
	}

	return mapping.ToDomainSchoolSlice(ms), nil
}

// UpdateSchool persists changes to an existing school.
func (r *PgxSchoolRepository) UpdateSchool(ctx context.Context, school domain.School) error {
	m := mapping.ToModelSchool(school)

	query := `
		UPDATE schools
		SET name = $2, address = $3, updated_at = $4, revoked_at = $5
		WHERE school_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.SchoolID,
		m.Name,
		m.Address,
		m.UpdatedAt,
		m.RevokedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update school %s: %w", m.SchoolID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: school %s", apperrors.ErrNotFound, m.SchoolID)
	}
	return nil
}

// DeleteSchool hard-deletes a school. Students, invoices, payments and
// imputations cascade via foreign keys.
func (r *PgxSchoolRepository) DeleteSchool(ctx context.Context, schoolID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM schools WHERE school_id = $1;`, schoolID)
	if err != nil {
		return fmt.Errorf("failed to delete school %s: %w", schoolID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: school %s", apperrors.ErrNotFound, schoolID)
	}
	return nil
}

// FindSchoolWithLedger eager-loads the school with every student, their
// invoices and the imputations against those invoices. Revoked invoices are
// left out; they no longer participate in statements.
func (r *PgxSchoolRepository) FindSchoolWithLedger(ctx context.Context, schoolID string) (*domain.SchoolLedger, error) {
	school, err := r.FindSchoolByID(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	studentQuery := `
		SELECT student_id, name, email, school_id, created_at, updated_at, revoked_at
		FROM students
		WHERE school_id = $1
		ORDER BY created_at, student_id;
	`
	rows, err := r.pool.Query(ctx, studentQuery, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to load students for school %s: %w", schoolID, err)
	}
	defer rows.Close()

	var studentModels []models.Student
	for rows.Next() {
		var m models.Student
		if err := rows.Scan(&m.StudentID, &m.Name, &m.Email, &m.SchoolID, &m.CreatedAt, &m.UpdatedAt, &m.RevokedAt); err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		studentModels = append(studentModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	rows.Close()

	studentIDs := make([]string, len(studentModels))
	for i, m := range studentModels {
		studentIDs[i] = m.StudentID
	}

	invoicesByStudent, err := loadInvoicesForStudents(ctx, r.pool, studentIDs)
	if err != nil {
		return nil, err
	}

	ledger := &domain.SchoolLedger{
		School:   *school,
		Students: make([]domain.StudentWithInvoices, len(studentModels)),
	}
	for i, m := range studentModels {
		ledger.Students[i] = domain.StudentWithInvoices{
			Student:  mapping.ToDomainStudent(m),
			Invoices: invoicesByStudent[m.StudentID],
		}
	}
	return ledger, nil
}

// loadInvoicesForStudents fans out from a set of student ids to their live
// invoices and imputations, preserving insertion order per student.
func loadInvoicesForStudents(ctx context.Context, pool *pgxpool.Pool, studentIDs []string) (map[string][]domain.InvoiceWithImputations, error) {
	result := make(map[string][]domain.InvoiceWithImputations, len(studentIDs))
	if len(studentIDs) == 0 {
		return result, nil
	}

	invoiceQuery := `
		SELECT invoice_id, student_id, amount_cents, currency, description, issued_at, due_date, created_at, updated_at, revoked_at
		FROM invoices
		WHERE student_id = ANY($1) AND revoked_at IS NULL
		ORDER BY created_at, invoice_id;
	`
	rows, err := pool.Query(ctx, invoiceQuery, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	defer rows.Close()

	var invoiceModels []models.Invoice
	for rows.Next() {
		var m models.Invoice
		if err := rows.Scan(&m.InvoiceID, &m.StudentID, &m.AmountCents, &m.Currency, &m.Description, &m.IssuedAt, &m.DueDate, &m.CreatedAt, &m.UpdatedAt, &m.RevokedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoiceModels = append(invoiceModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	rows.Close()

	if len(invoiceModels) == 0 {
		return result, nil
	}

	invoiceIDs := make([]string, len(invoiceModels))
	for i, m := range invoiceModels {
		invoiceIDs[i] = m.InvoiceID
	}

	imputationQuery := `
		SELECT imputation_id, payment_id, invoice_id, amount_cents, currency, created_at, updated_at, revoked_at
		FROM payment_imputations
		WHERE invoice_id = ANY($1)
		ORDER BY created_at, imputation_id;
	`
	impRows, err := pool.Query(ctx, imputationQuery, invoiceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load imputations: %w", err)
	}
	defer impRows.Close()

	imputationsByInvoice := make(map[string][]domain.PaymentImputation)
	for impRows.Next() {
		var m models.PaymentImputation
		if err := impRows.Scan(&m.ImputationID, &m.PaymentID, &m.InvoiceID, &m.AmountCents, &m.Currency, &m.CreatedAt, &m.UpdatedAt, &m.RevokedAt); err != nil {
			return nil, fmt.Errorf("failed to scan imputation row: %w", err)
		}
		imputationsByInvoice[m.InvoiceID] = append(imputationsByInvoice[m.InvoiceID], mapping.ToDomainImputation(m))
	}
	if err := impRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating imputation rows: %w", err)
	}

	for _, m := range invoiceModels {
		result[m.StudentID] = append(result[m.StudentID], domain.InvoiceWithImputations{
			Invoice:     mapping.ToDomainInvoice(m),
			Imputations: imputationsByInvoice[m.InvoiceID],
		})
	}
	return result, nil
}
