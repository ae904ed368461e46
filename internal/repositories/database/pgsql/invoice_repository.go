package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mattilda/school_billing_app/internal/apperrors"
	"github.com/mattilda/school_billing_app/internal/core/domain"
	portsrepo "github.com/mattilda/school_billing_app/internal/core/ports/repositories"
	"github.com/mattilda/school_billing_app/internal/models"
	"github.com/mattilda/school_billing_app/internal/utils/mapping"
)

type PgxInvoiceRepository struct {
	pool *pgxpool.Pool
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{pool: pool}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, student_id, amount_cents, currency, description, issued_at, due_date, created_at, updated_at, revoked_at`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.StudentID,
		&m.AmountCents,
		&m.Currency,
		&m.Description,
		&m.IssuedAt,
		&m.DueDate,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.RevokedAt,
	)
	return m, err
}

// SaveInvoice inserts a new invoice.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)

	query := `
		INSERT INTO invoices (invoice_id, student_id, amount_cents, currency, description, issued_at, due_date, created_at, updated_at, revoked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.InvoiceID,
		m.StudentID,
		m.AmountCents,
		m.Currency,
		m.Description,
		m.IssuedAt,
		m.DueDate,
		m.CreatedAt,
		m.UpdatedAt,
		m.RevokedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: invoice with ID %s already exists", apperrors.ErrDuplicate, m.InvoiceID)
		}
		return fmt.Errorf("failed to save invoice %s: %w", m.InvoiceID, err)
	}
	return nil
}

// FindInvoiceByID retrieves an invoice by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`

	m, err := scanInvoice(r.pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

// ListInvoices retrieves a page of invoices in insertion order, optionally
// restricted to one student.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, limit int, offset int, studentID string) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE ($3 = '' OR student_id = $3)
		ORDER BY created_at, invoice_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var ms []models.Invoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}

	return mapping.ToDomainInvoiceSlice(ms), nil
}

// SumImputationsForInvoice returns the committed paid total for an invoice
// in minor units. Invoices with no imputations sum to zero.
func (r *PgxInvoiceRepository) SumImputationsForInvoice(ctx context.Context, invoiceID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount_cents), 0)
		FROM payment_imputations
		WHERE invoice_id = $1;
	`
	var total int64
	if err := r.pool.QueryRow(ctx, query, invoiceID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum imputations for invoice %s: %w", invoiceID, err)
	}
	return total, nil
}

// UpdateInvoice persists changes to an existing invoice.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)

	query := `
		UPDATE invoices
		SET amount_cents = $2, currency = $3, description = $4, due_date = $5, updated_at = $6, revoked_at = $7
		WHERE invoice_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.InvoiceID,
		m.AmountCents,
		m.Currency,
		m.Description,
		m.DueDate,
		m.UpdatedAt,
		m.RevokedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", m.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, m.InvoiceID)
	}
	return nil
}

// DeleteInvoice hard-deletes an invoice. Imputations cascade via foreign
// keys.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
	}
	return nil
}

// RevokeInvoice marks an invoice as revoked without removing its rows.
func (r *PgxInvoiceRepository) RevokeInvoice(ctx context.Context, invoiceID string, now time.Time) error {
	query := `
		UPDATE invoices
		SET revoked_at = $2, updated_at = $2
		WHERE invoice_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, invoiceID, now)
	if err != nil {
		return fmt.Errorf("failed to revoke invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
	}
	return nil
}

// RestoreInvoice clears the revocation marker of an invoice.
func (r *PgxInvoiceRepository) RestoreInvoice(ctx context.Context, invoiceID string) error {
	query := `
		UPDATE invoices
		SET revoked_at = NULL, updated_at = NOW()
		WHERE invoice_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to restore invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
	}
	return nil
}
