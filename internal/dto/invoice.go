package dto

import (
	"time"

	"github.com/mattilda/school_billing_app/internal/core/domain"
)

// CreateInvoiceRequest defines the data needed to issue an invoice.
// Amounts are integer minor units (cents) and must be positive.
type CreateInvoiceRequest struct {
	StudentID   string     `json:"studentID" binding:"required,uuid"`
	AmountCents int64      `json:"amountCents" binding:"required,gt=0"`
	Currency    string     `json:"currency" binding:"required,len=3,uppercase"`
	Description string     `json:"description"`
	IssuedAt    *time.Time `json:"issuedAt"` // Defaults to now when omitted
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateInvoiceRequest defines the fields an invoice allows updating.
type UpdateInvoiceRequest struct {
	AmountCents *int64     `json:"amountCents" binding:"omitempty,gt=0"`
	Currency    *string    `json:"currency" binding:"omitempty,len=3,uppercase"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID   string     `json:"invoiceID"`
	StudentID   string     `json:"studentID"`
	AmountCents int64      `json:"amountCents"`
	Currency    string     `json:"currency"`
	Description string     `json:"description"`
	IssuedAt    time.Time  `json:"issuedAt"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	RevokedAt   *time.Time `json:"revokedAt,omitempty"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:   inv.InvoiceID,
		StudentID:   inv.StudentID,
		AmountCents: inv.AmountCents,
		Currency:    inv.Currency,
		Description: inv.Description,
		IssuedAt:    inv.IssuedAt,
		DueDate:     inv.DueDate,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
		RevokedAt:   inv.RevokedAt,
	}
}

// ToListInvoiceResponse converts a slice of domain.Invoice to responses.
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit     int    `form:"limit,default=100"`
	Offset    int    `form:"offset,default=0"`
	StudentID string `form:"studentID" binding:"omitempty,uuid"`
}
