package services

import (
	"fmt"

	"github.com/mattilda/school_billing_app/internal/apperrors"
	"github.com/mattilda/school_billing_app/internal/core/domain"
	"github.com/mattilda/school_billing_app/internal/dto"
	"github.com/mattilda/school_billing_app/internal/utils/money"
)

// The aggregator is a pure function from an eager-loaded ledger graph to a
// statement DTO: no I/O, no side effects, deterministic for a given input.
// Statements are single-currency; the first invoice encountered fixes the
// currency for the whole scope and any deviation fails the aggregation.

// paidCents sums the imputations recorded against one invoice. Unbounded:
// an upstream over-payment surfaces here as paid > amount and is reported
// as-is, never clamped, so it stays visible as a data-integrity signal.
func paidCents(inv domain.InvoiceWithImputations) int64 {
	var total int64
	for _, imp := range inv.Imputations {
		total += imp.AmountCents
	}
	return total
}

// BuildStudentStatement aggregates a student's ledger into a statement.
// A student with no invoices gets zero totals in defaultCurrency.
func BuildStudentStatement(ledger domain.StudentLedger, defaultCurrency string) (*dto.StudentAccountStatement, error) {
	currencyCode := defaultCurrency
	if len(ledger.Invoices) > 0 {
		currencyCode = ledger.Invoices[0].Invoice.Currency
	}

	totalInvoiced, err := money.Zero(currencyCode)
	if err != nil {
		return nil, err
	}
	totalPaid, _ := money.Zero(currencyCode)

	details := make([]dto.InvoiceDetail, 0, len(ledger.Invoices))
	for _, inv := range ledger.Invoices {
		if inv.Invoice.Currency != currencyCode {
			return nil, fmt.Errorf("%w: student %s has invoices in %s and %s",
				apperrors.ErrMixedCurrency, ledger.Student.StudentID, currencyCode, inv.Invoice.Currency)
		}

		amount, err := money.FromMinorUnits(inv.Invoice.AmountCents, currencyCode)
		if err != nil {
			return nil, err
		}
		if totalInvoiced, err = totalInvoiced.Add(amount); err != nil {
			return nil, err
		}

		paid, err := money.FromMinorUnits(paidCents(inv), currencyCode)
		if err != nil {
			return nil, err
		}
		if totalPaid, err = totalPaid.Add(paid); err != nil {
			return nil, err
		}

		details = append(details, dto.InvoiceDetail{
			InvoiceID:         inv.Invoice.InvoiceID,
			Amount:            dto.MoneyAmount{AmountCents: inv.Invoice.AmountCents, Currency: inv.Invoice.Currency},
			PaidAmount:        dto.MoneyAmount{AmountCents: paid.MinorUnits(), Currency: inv.Invoice.Currency},
			OutstandingAmount: dto.MoneyAmount{AmountCents: inv.Invoice.AmountCents - paid.MinorUnits(), Currency: inv.Invoice.Currency},
			IssuedAt:          inv.Invoice.IssuedAt,
			Description:       inv.Invoice.Description,
		})
	}

	outstanding, err := totalInvoiced.Sub(totalPaid)
	if err != nil {
		return nil, err
	}

	return &dto.StudentAccountStatement{
		StudentID:        ledger.Student.StudentID,
		StudentName:      ledger.Student.Name,
		SchoolID:         ledger.School.SchoolID,
		SchoolName:       ledger.School.Name,
		TotalInvoiced:    dto.MoneyAmount{AmountCents: totalInvoiced.MinorUnits(), Currency: currencyCode},
		TotalPaid:        dto.MoneyAmount{AmountCents: totalPaid.MinorUnits(), Currency: currencyCode},
		TotalOutstanding: dto.MoneyAmount{AmountCents: outstanding.MinorUnits(), Currency: currencyCode},
		Invoices:         details,
	}, nil
}

// BuildSchoolStatement aggregates a school's ledger into a statement. The
// first invoice encountered across the whole school fixes the currency.
// Students without invoices count toward NumberOfStudents but contribute no
// summary row and nothing to the totals.
func BuildSchoolStatement(ledger domain.SchoolLedger, defaultCurrency string) (*dto.SchoolAccountStatement, error) {
	var (
		currencyCode  string
		totalInvoiced money.Money
		totalPaid     money.Money
	)
	summaries := make([]dto.StudentSummary, 0, len(ledger.Students))

	for _, student := range ledger.Students {
		var studentInvoicedCents, studentPaidCents int64
		hasInvoices := false

		for _, inv := range student.Invoices {
			if currencyCode == "" {
				currencyCode = inv.Invoice.Currency
				var err error
				if totalInvoiced, err = money.Zero(currencyCode); err != nil {
					return nil, err
				}
				totalPaid, _ = money.Zero(currencyCode)
			} else if inv.Invoice.Currency != currencyCode {
				return nil, fmt.Errorf("%w: school %s has invoices in %s and %s",
					apperrors.ErrMixedCurrency, ledger.School.SchoolID, currencyCode, inv.Invoice.Currency)
			}

			hasInvoices = true
			studentInvoicedCents += inv.Invoice.AmountCents
			studentPaidCents += paidCents(inv)
		}

		if !hasInvoices {
			continue
		}

		invoiced, err := money.FromMinorUnits(studentInvoicedCents, currencyCode)
		if err != nil {
			return nil, err
		}
		if totalInvoiced, err = totalInvoiced.Add(invoiced); err != nil {
			return nil, err
		}
		paid, err := money.FromMinorUnits(studentPaidCents, currencyCode)
		if err != nil {
			return nil, err
		}
		if totalPaid, err = totalPaid.Add(paid); err != nil {
			return nil, err
		}

		summaries = append(summaries, dto.StudentSummary{
			StudentID:   student.Student.StudentID,
			StudentName: student.Student.Name,
			TotalOutstanding: dto.MoneyAmount{
				AmountCents: studentInvoicedCents - studentPaidCents,
				Currency:    currencyCode,
			},
		})
	}

	// No student has any invoice: zero totals in the default currency.
	if currencyCode == "" {
		currencyCode = defaultCurrency
		var err error
		if totalInvoiced, err = money.Zero(currencyCode); err != nil {
			return nil, err
		}
		totalPaid, _ = money.Zero(currencyCode)
	}

	outstanding, err := totalInvoiced.Sub(totalPaid)
	if err != nil {
		return nil, err
	}

	return &dto.SchoolAccountStatement{
		SchoolID:         ledger.School.SchoolID,
		SchoolName:       ledger.School.Name,
		TotalInvoiced:    dto.MoneyAmount{AmountCents: totalInvoiced.MinorUnits(), Currency: currencyCode},
		TotalPaid:        dto.MoneyAmount{AmountCents: totalPaid.MinorUnits(), Currency: currencyCode},
		TotalOutstanding: dto.MoneyAmount{AmountCents: outstanding.MinorUnits(), Currency: currencyCode},
		NumberOfStudents: len(ledger.Students),
		Students:         summaries,
	}, nil
}
