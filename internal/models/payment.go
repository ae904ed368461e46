package models

import "time"

// Payment represents a payment row. Amounts are integer minor units.
type Payment struct {
	PaymentID     string    `db:"payment_id"`
	StudentID     string    `db:"student_id"`
	AmountCents   int64     `db:"amount_cents"`
	Currency      string    `db:"currency"`
	PaymentMethod string    `db:"payment_method"`
	Reference     string    `db:"reference"` // Nullable
	PaymentDate   time.Time `db:"payment_date"`
	AuditFields
	Revocation
}

// PaymentImputation represents an imputation row linking a payment to an
// invoice.
type PaymentImputation struct {
	ImputationID string `db:"imputation_id"`
	PaymentID    string `db:"payment_id"`
	InvoiceID    string `db:"invoice_id"`
	AmountCents  int64  `db:"amount_cents"`
	Currency     string `db:"currency"`
	AuditFields
	Revocation
}
