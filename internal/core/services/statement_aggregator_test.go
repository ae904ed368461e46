package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattilda/school_billing_app/internal/apperrors"
	"github.com/mattilda/school_billing_app/internal/core/domain"
	"github.com/mattilda/school_billing_app/internal/core/services"
)

func makeInvoice(studentID string, amountCents int64, currency string) domain.InvoiceWithImputations {
	return domain.InvoiceWithImputations{
		Invoice: domain.Invoice{
			InvoiceID:   uuid.NewString(),
			StudentID:   studentID,
			AmountCents: amountCents,
			Currency:    currency,
			IssuedAt:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func withImputation(inv domain.InvoiceWithImputations, amountCents int64) domain.InvoiceWithImputations {
	inv.Imputations = append(inv.Imputations, domain.PaymentImputation{
		ImputationID: uuid.NewString(),
		PaymentID:    uuid.NewString(),
		InvoiceID:    inv.Invoice.InvoiceID,
		AmountCents:  amountCents,
		Currency:     inv.Invoice.Currency,
	})
	return inv
}

func makeStudentLedger(invoices ...domain.InvoiceWithImputations) domain.StudentLedger {
	student := domain.Student{StudentID: uuid.NewString(), Name: "Ada Lovelace", SchoolID: uuid.NewString()}
	return domain.StudentLedger{
		Student:  student,
		School:   domain.School{SchoolID: student.SchoolID, Name: "St. Analytical"},
		Invoices: invoices,
	}
}

func TestBuildStudentStatement_UnpaidInvoices(t *testing.T) {
	studentID := uuid.NewString()
	ledger := makeStudentLedger(
		makeInvoice(studentID, 10000, "USD"),
		makeInvoice(studentID, 5000, "USD"),
	)

	statement, err := services.BuildStudentStatement(ledger, "USD")
	require.NoError(t, err)

	assert.Equal(t, int64(15000), statement.TotalInvoiced.AmountCents)
	assert.Equal(t, int64(0), statement.TotalPaid.AmountCents)
	assert.Equal(t, int64(15000), statement.TotalOutstanding.AmountCents)
	assert.Equal(t, "USD", statement.TotalInvoiced.Currency)
	assert.Len(t, statement.Invoices, 2)
}

func TestBuildStudentStatement_PartiallyPaid(t *testing.T) {
	studentID := uuid.NewString()
	inv := withImputation(makeInvoice(studentID, 10000, "USD"), 6000)
	ledger := makeStudentLedger(inv)

	statement, err := services.BuildStudentStatement(ledger, "USD")
	require.NoError(t, err)

	assert.Equal(t, int64(10000), statement.TotalInvoiced.AmountCents)
	assert.Equal(t, int64(6000), statement.TotalPaid.AmountCents)
	assert.Equal(t, int64(4000), statement.TotalOutstanding.AmountCents)

	require.Len(t, statement.Invoices, 1)
	assert.Equal(t, int64(6000), statement.Invoices[0].PaidAmount.AmountCents)
	assert.Equal(t, int64(4000), statement.Invoices[0].OutstandingAmount.AmountCents)
}

func TestBuildStudentStatement_NoInvoices(t *testing.T) {
	ledger := makeStudentLedger()

	statement, err := services.BuildStudentStatement(ledger, "USD")
	require.NoError(t, err)

	assert.Equal(t, int64(0), statement.TotalInvoiced.AmountCents)
	assert.Equal(t, int64(0), statement.TotalPaid.AmountCents)
	assert.Equal(t, int64(0), statement.TotalOutstanding.AmountCents)
	assert.Equal(t, "USD", statement.TotalInvoiced.Currency)
	assert.Empty(t, statement.Invoices)
}

func TestBuildStudentStatement_FirstInvoiceFixesCurrency(t *testing.T) {
	studentID := uuid.NewString()
	ledger := makeStudentLedger(makeInvoice(studentID, 2000, "EUR"))

	// The default currency only applies when there are no invoices at all.
	statement, err := services.BuildStudentStatement(ledger, "USD")
	require.NoError(t, err)
	assert.Equal(t, "EUR", statement.TotalInvoiced.Currency)
	assert.Equal(t, "EUR", statement.TotalOutstanding.Currency)
}

func TestBuildStudentStatement_MixedCurrency(t *testing.T) {
	studentID := uuid.NewString()
	ledger := makeStudentLedger(
		makeInvoice(studentID, 1000, "USD"),
		makeInvoice(studentID, 1000, "EUR"),
	)

	_, err := services.BuildStudentStatement(ledger, "USD")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMixedCurrency)
}

func TestBuildStudentStatement_OverpaymentNotClamped(t *testing.T) {
	studentID := uuid.NewString()
	inv := withImputation(makeInvoice(studentID, 5000, "USD"), 8000)
	ledger := makeStudentLedger(inv)

	statement, err := services.BuildStudentStatement(ledger, "USD")
	require.NoError(t, err)

	assert.Equal(t, int64(8000), statement.TotalPaid.AmountCents)
	assert.Equal(t, int64(-3000), statement.TotalOutstanding.AmountCents)
	assert.Equal(t, int64(-3000), statement.Invoices[0].OutstandingAmount.AmountCents)
}

func TestBuildStudentStatement_ConservationLaw(t *testing.T) {
	studentID := uuid.NewString()
	ledger := makeStudentLedger(
		withImputation(makeInvoice(studentID, 12345, "USD"), 2345),
		makeInvoice(studentID, 678, "USD"),
		withImputation(makeInvoice(studentID, 999999, "USD"), 999999),
	)

	statement, err := services.BuildStudentStatement(ledger, "USD")
	require.NoError(t, err)

	var invoicedSum, paidSum int64
	for _, row := range statement.Invoices {
		invoicedSum += row.Amount.AmountCents
		paidSum += row.PaidAmount.AmountCents
	}
	assert.Equal(t, invoicedSum, statement.TotalInvoiced.AmountCents)
	assert.Equal(t, paidSum, statement.TotalPaid.AmountCents)
	assert.Equal(t, statement.TotalInvoiced.AmountCents-statement.TotalPaid.AmountCents, statement.TotalOutstanding.AmountCents)
}

func makeSchoolLedger(students ...domain.StudentWithInvoices) domain.SchoolLedger {
	return domain.SchoolLedger{
		School:   domain.School{SchoolID: uuid.NewString(), Name: "St. Analytical"},
		Students: students,
	}
}

func TestBuildSchoolStatement_TwoStudents(t *testing.T) {
	studentA := domain.Student{StudentID: uuid.NewString(), Name: "Ada"}
	studentB := domain.Student{StudentID: uuid.NewString(), Name: "Blaise"}
	ledger := makeSchoolLedger(
		domain.StudentWithInvoices{Student: studentA, Invoices: []domain.InvoiceWithImputations{makeInvoice(studentA.StudentID, 10000, "USD")}},
		domain.StudentWithInvoices{Student: studentB, Invoices: []domain.InvoiceWithImputations{makeInvoice(studentB.StudentID, 8000, "USD")}},
	)

	statement, err := services.BuildSchoolStatement(ledger, "USD")
	require.NoError(t, err)

	assert.Equal(t, int64(18000), statement.TotalInvoiced.AmountCents)
	assert.Equal(t, 2, statement.NumberOfStudents)
	assert.Len(t, statement.Students, 2)
}

func TestBuildSchoolStatement_EmptySchool(t *testing.T) {
	ledger := makeSchoolLedger()

	statement, err := services.BuildSchoolStatement(ledger, "USD")
	require.NoError(t, err)

	assert.Equal(t, int64(0), statement.TotalInvoiced.AmountCents)
	assert.Equal(t, int64(0), statement.TotalPaid.AmountCents)
	assert.Equal(t, int64(0), statement.TotalOutstanding.AmountCents)
	assert.Equal(t, 0, statement.NumberOfStudents)
	assert.Empty(t, statement.Students)
	assert.Equal(t, "USD", statement.TotalInvoiced.Currency)
}

func TestBuildSchoolStatement_InvoicelessStudentCountedButNotSummarized(t *testing.T) {
	billed := domain.Student{StudentID: uuid.NewString(), Name: "Ada"}
	unbilled := domain.Student{StudentID: uuid.NewString(), Name: "Blaise"}
	ledger := makeSchoolLedger(
		domain.StudentWithInvoices{Student: billed, Invoices: []domain.InvoiceWithImputations{withImputation(makeInvoice(billed.StudentID, 10000, "USD"), 4000)}},
		domain.StudentWithInvoices{Student: unbilled},
	)

	statement, err := services.BuildSchoolStatement(ledger, "USD")
	require.NoError(t, err)

	assert.Equal(t, 2, statement.NumberOfStudents)
	require.Len(t, statement.Students, 1)
	assert.Equal(t, billed.StudentID, statement.Students[0].StudentID)
	assert.Equal(t, int64(6000), statement.Students[0].TotalOutstanding.AmountCents)
	assert.Equal(t, int64(4000), statement.TotalPaid.AmountCents)
}

func TestBuildSchoolStatement_MixedCurrencyAcrossStudents(t *testing.T) {
	studentA := domain.Student{StudentID: uuid.NewString(), Name: "Ada"}
	studentB := domain.Student{StudentID: uuid.NewString(), Name: "Blaise"}
	ledger := makeSchoolLedger(
		domain.StudentWithInvoices{Student: studentA, Invoices: []domain.InvoiceWithImputations{makeInvoice(studentA.StudentID, 1000, "USD")}},
		domain.StudentWithInvoices{Student: studentB, Invoices: []domain.InvoiceWithImputations{makeInvoice(studentB.StudentID, 1000, "MXN")}},
	)

	_, err := services.BuildSchoolStatement(ledger, "USD")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMixedCurrency)
}

func TestBuildStudentStatement_Deterministic(t *testing.T) {
	studentID := uuid.NewString()
	ledger := makeStudentLedger(
		withImputation(makeInvoice(studentID, 10000, "USD"), 2500),
		makeInvoice(studentID, 5000, "USD"),
	)

	first, err := services.BuildStudentStatement(ledger, "USD")
	require.NoError(t, err)
	second, err := services.BuildStudentStatement(ledger, "USD")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
