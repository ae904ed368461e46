package domain

import "time"

// PaymentMethod enumerates how a payment was made.
type PaymentMethod string

const (
	Cash         PaymentMethod = "cash"
	CreditCard   PaymentMethod = "credit_card"
	DebitCard    PaymentMethod = "debit_card"
	BankTransfer PaymentMethod = "bank_transfer"
	WireTransfer PaymentMethod = "wire_transfer"
	Check        PaymentMethod = "check"
	Other        PaymentMethod = "other"
)

// ValidPaymentMethod reports whether m is one of the enumerated methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case Cash, CreditCard, DebitCard, BankTransfer, WireTransfer, Check, Other:
		return true
	}
	return false
}

// Payment represents money received from a student. Its amount equals the
// sum of its imputations at creation time; this is enforced at creation and
// not re-validated afterwards.
type Payment struct {
	PaymentID     string        `json:"paymentID"` // Primary Key (UUID)
	StudentID     string        `json:"studentID"` // FK -> students.student_id (NON-NULL)
	AmountCents   int64         `json:"amountCents"`
	Currency      string        `json:"currency"` // ISO 4217 code
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Reference     string        `json:"reference"` // Nullable
	PaymentDate   time.Time     `json:"paymentDate"`
	AuditFields
	Revocation
}

// PaymentImputation allocates part of a payment's amount to one invoice.
// Currency must equal both the payment's and the invoice's currency.
type PaymentImputation struct {
	ImputationID string `json:"imputationID"` // Primary Key (UUID)
	PaymentID    string `json:"paymentID"`    // FK -> payments.payment_id (NON-NULL)
	InvoiceID    string `json:"invoiceID"`    // FK -> invoices.invoice_id (NON-NULL)
	AmountCents  int64  `json:"amountCents"`
	Currency     string `json:"currency"`
	AuditFields
	Revocation
}
