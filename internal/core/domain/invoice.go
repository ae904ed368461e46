package domain

import "time"

// Invoice represents an amount billed to a student. Amounts are integer
// minor units (cents) and must be positive.
type Invoice struct {
	InvoiceID   string     `json:"invoiceID"` // Primary Key (UUID)
	StudentID   string     `json:"studentID"` // FK -> students.student_id (NON-NULL)
	AmountCents int64      `json:"amountCents"`
	Currency    string     `json:"currency"` // ISO 4217 code
	Description string     `json:"description"`
	IssuedAt    time.Time  `json:"issuedAt"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	AuditFields
	Revocation
}
