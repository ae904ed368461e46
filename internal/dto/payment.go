package dto

import (
	"time"

	"github.com/mattilda/school_billing_app/internal/core/domain"
)

// ImputationInput allocates part of a payment to one invoice.
type ImputationInput struct {
	InvoiceID   string `json:"invoiceID" binding:"required,uuid"`
	AmountCents int64  `json:"amountCents" binding:"required,gt=0"`
}

// CreatePaymentRequest defines the data needed to record a payment. The
// imputation amounts must sum to the payment amount.
type CreatePaymentRequest struct {
	StudentID     string               `json:"studentID" binding:"required,uuid"`
	AmountCents   int64                `json:"amountCents" binding:"required,gt=0"`
	Currency      string               `json:"currency" binding:"required,len=3,uppercase"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=cash credit_card debit_card bank_transfer wire_transfer check other"`
	Reference     string               `json:"reference"`
	PaymentDate   *time.Time           `json:"paymentDate"` // Defaults to now when omitted
	Imputations   []ImputationInput    `json:"imputations" binding:"required,min=1,dive"`
}

// ImputationResponse defines the data returned for one imputation.
type ImputationResponse struct {
	ImputationID string `json:"imputationID"`
	PaymentID    string `json:"paymentID"`
	InvoiceID    string `json:"invoiceID"`
	AmountCents  int64  `json:"amountCents"`
	Currency     string `json:"currency"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID     string               `json:"paymentID"`
	StudentID     string               `json:"studentID"`
	AmountCents   int64                `json:"amountCents"`
	Currency      string               `json:"currency"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Reference     string               `json:"reference"`
	PaymentDate   time.Time            `json:"paymentDate"`
	Imputations   []ImputationResponse `json:"imputations"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
	RevokedAt     *time.Time           `json:"revokedAt,omitempty"`
}

// ToPaymentResponse converts a payment and its imputations to a response.
func ToPaymentResponse(p *domain.Payment, imputations []domain.PaymentImputation) PaymentResponse {
	imps := make([]ImputationResponse, len(imputations))
	for i, imp := range imputations {
		imps[i] = ImputationResponse{
			ImputationID: imp.ImputationID,
			PaymentID:    imp.PaymentID,
			InvoiceID:    imp.InvoiceID,
			AmountCents:  imp.AmountCents,
			Currency:     imp.Currency,
		}
	}
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		StudentID:     p.StudentID,
		AmountCents:   p.AmountCents,
		Currency:      p.Currency,
		PaymentMethod: p.PaymentMethod,
		Reference:     p.Reference,
		PaymentDate:   p.PaymentDate,
		Imputations:   imps,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		RevokedAt:     p.RevokedAt,
	}
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	Limit     int    `form:"limit,default=100"`
	Offset    int    `form:"offset,default=0"`
	StudentID string `form:"studentID" binding:"omitempty,uuid"`
}
