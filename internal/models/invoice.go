package models

import "time"

// Invoice represents an invoice row. Amounts are integer minor units.
type Invoice struct {
	InvoiceID   string     `db:"invoice_id"`
	StudentID   string     `db:"student_id"`
	AmountCents int64      `db:"amount_cents"`
	Currency    string     `db:"currency"`
	Description string     `db:"description"`
	IssuedAt    time.Time  `db:"issued_at"`
	DueDate     *time.Time `db:"due_date"` // Nullable
	AuditFields
	Revocation
}
