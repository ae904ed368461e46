package dto

import "time"

// Statement DTOs double as the cache serialization format: a cached
// statement deserializes straight back into these shapes without touching
// the store. Field names follow the statement wire contract (snake_case,
// money as integer minor units plus currency code, never floating point).

// MoneyAmount is the wire representation of a monetary value.
type MoneyAmount struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

// InvoiceDetail is one per-invoice row of a student statement.
type InvoiceDetail struct {
	InvoiceID         string      `json:"id"`
	Amount            MoneyAmount `json:"amount"`
	PaidAmount        MoneyAmount `json:"paid_amount"`
	OutstandingAmount MoneyAmount `json:"outstanding_amount"`
	IssuedAt          time.Time   `json:"issued_at"`
	Description       string      `json:"description"`
}

// StudentAccountStatement aggregates a student's billing activity.
type StudentAccountStatement struct {
	StudentID        string          `json:"student_id"`
	StudentName      string          `json:"student_name"`
	SchoolID         string          `json:"school_id"`
	SchoolName       string          `json:"school_name"`
	TotalInvoiced    MoneyAmount     `json:"total_invoiced"`
	TotalPaid        MoneyAmount     `json:"total_paid"`
	TotalOutstanding MoneyAmount     `json:"total_outstanding"`
	Invoices         []InvoiceDetail `json:"invoices"`
}

// StudentSummary is one per-student row of a school statement. Only
// students with at least one invoice get a row.
type StudentSummary struct {
	StudentID        string      `json:"student_id"`
	StudentName      string      `json:"student_name"`
	TotalOutstanding MoneyAmount `json:"total_outstanding"`
}

// SchoolAccountStatement aggregates billing activity across a school.
// NumberOfStudents counts every student, not just those with invoices.
type SchoolAccountStatement struct {
	SchoolID         string           `json:"school_id"`
	SchoolName       string           `json:"school_name"`
	TotalInvoiced    MoneyAmount      `json:"total_invoiced"`
	TotalPaid        MoneyAmount      `json:"total_paid"`
	TotalOutstanding MoneyAmount      `json:"total_outstanding"`
	NumberOfStudents int              `json:"number_of_students"`
	Students         []StudentSummary `json:"students"`
}
