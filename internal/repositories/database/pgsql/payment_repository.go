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

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, student_id, amount_cents, currency, payment_method, reference, payment_date, created_at, updated_at, revoked_at`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.StudentID,
		&m.AmountCents,
		&m.Currency,
		&m.PaymentMethod,
		&m.Reference,
		&m.PaymentDate,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.RevokedAt,
	)
	return m, err
}

// SavePayment inserts a payment and all of its imputations in one database
// transaction. Either every row commits or none do.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, imputations []domain.PaymentImputation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelPayment(payment)
	paymentQuery := `
		INSERT INTO payments (payment_id, student_id, amount_cents, currency, payment_method, reference, payment_date, created_at, updated_at, revoked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, paymentQuery,
		m.PaymentID,
		m.StudentID,
		m.AmountCents,
		m.Currency,
		m.PaymentMethod,
		m.Reference,
		m.PaymentDate,
		m.CreatedAt,
		m.UpdatedAt,
		m.RevokedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: payment with ID %s already exists", apperrors.ErrDuplicate, m.PaymentID)
		}
		return fmt.Errorf("failed to insert payment %s: %w", m.PaymentID, err)
	}

	batch := &pgx.Batch{}
	imputationQuery := `
		INSERT INTO payment_imputations (imputation_id, payment_id, invoice_id, amount_cents, currency, created_at, updated_at, revoked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, imp := range imputations {
		mi := mapping.ToModelImputation(imp)
		batch.Queue(imputationQuery,
			mi.ImputationID,
			mi.PaymentID,
			mi.InvoiceID,
			mi.AmountCents,
			mi.Currency,
			mi.CreatedAt,
			mi.UpdatedAt,
			mi.RevokedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert imputations for payment %s: %w", m.PaymentID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return fmt.Errorf("failed to commit payment %s: %w", m.PaymentID, err)
	}
	return nil
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}

	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// FindImputationsByPaymentID retrieves the imputations of a payment in
// insertion order.
func (r *PgxPaymentRepository) FindImputationsByPaymentID(ctx context.Context, paymentID string) ([]domain.PaymentImputation, error) {
	query := `
		SELECT imputation_id, payment_id, invoice_id, amount_cents, currency, created_at, updated_at, revoked_at
		FROM payment_imputations
		WHERE payment_id = $1
		ORDER BY created_at, imputation_id;
	`
	rows, err := r.Pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load imputations for payment %s: %w", paymentID, err)
	}
	defer rows.Close()

	var ms []models.PaymentImputation
	for rows.Next() {
		var m models.PaymentImputation
		if err := rows.Scan(&m.ImputationID, &m.PaymentID, &m.InvoiceID, &m.AmountCents, &m.Currency, &m.CreatedAt, &m.UpdatedAt, &m.RevokedAt); err != nil {
			return nil, fmt.Errorf("failed to scan imputation row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating imputation rows: %w", err)
	}

	return mapping.ToDomainImputationSlice(ms), nil
}

// ListPayments retrieves a page of payments in insertion order, optionally
// restricted to one student.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, limit int, offset int, studentID string) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE ($3 = '' OR student_id = $3)
		ORDER BY created_at, payment_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var ms []models.Payment
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return mapping.ToDomainPaymentSlice(ms), nil
}

// DeletePayment hard-deletes a payment. Imputations cascade via foreign
// keys.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
	}
	return nil
}
