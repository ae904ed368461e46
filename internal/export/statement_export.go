package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/mattilda/school_billing_app/internal/dto"
)

func formatMoney(m dto.MoneyAmount) string {
	return fmt.Sprintf("%.2f %s", float64(m.AmountCents)/100, m.Currency)
}

// BuildStudentStatementPDF renders a student account statement as a PDF.
func BuildStudentStatementPDF(stmt *dto.StudentAccountStatement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Student Account Statement")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Student: %s (%s)", stmt.StudentName, stmt.StudentID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("School: %s (%s)", stmt.SchoolName, stmt.SchoolID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Invoiced: %s", formatMoney(stmt.TotalInvoiced)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Paid: %s", formatMoney(stmt.TotalPaid)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Outstanding: %s", formatMoney(stmt.TotalOutstanding)))
	pdf.Ln(8)

	// Invoices table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(30, 6, "Issued", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 6, "Description", "1", 0, "C", false, 0, "")
	pdf.CellFormat(33, 6, "Amount", "1", 0, "C", false, 0, "")
	pdf.CellFormat(33, 6, "Paid", "1", 0, "C", false, 0, "")
	pdf.CellFormat(33, 6, "Outstanding", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, inv := range stmt.Invoices {
		pdf.CellFormat(30, 6, inv.IssuedAt.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 6, inv.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(33, 6, formatMoney(inv.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(33, 6, formatMoney(inv.PaidAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(33, 6, formatMoney(inv.OutstandingAmount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildSchoolStatementPDF renders a school account statement as a PDF.
func BuildSchoolStatementPDF(stmt *dto.SchoolAccountStatement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "School Account Statement")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("School: %s (%s)", stmt.SchoolName, stmt.SchoolID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Students: %d", stmt.NumberOfStudents))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Invoiced: %s", formatMoney(stmt.TotalInvoiced)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Paid: %s", formatMoney(stmt.TotalPaid)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Outstanding: %s", formatMoney(stmt.TotalOutstanding)))
	pdf.Ln(8)

	// Per-student summary table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 6, "Student", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Outstanding", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, s := range stmt.Students {
		pdf.CellFormat(90, 6, s.StudentName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, formatMoney(s.TotalOutstanding), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildStudentStatementXLSX renders a student account statement as an XLSX
// workbook with a summary sheet and an invoices sheet.
func BuildStudentStatementXLSX(stmt *dto.StudentAccountStatement) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	invoicesSheet := "invoices"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(invoicesSheet)

	_ = f.SetCellValue(summarySheet, "A1", "Student Account Statement")
	_ = f.SetCellValue(summarySheet, "A3", "Student")
	_ = f.SetCellValue(summarySheet, "B3", stmt.StudentName)
	_ = f.SetCellValue(summarySheet, "A4", "Student ID")
	_ = f.SetCellValue(summarySheet, "B4", stmt.StudentID)
	_ = f.SetCellValue(summarySheet, "A5", "School")
	_ = f.SetCellValue(summarySheet, "B5", stmt.SchoolName)
	_ = f.SetCellValue(summarySheet, "A6", "Total Invoiced")
	_ = f.SetCellValue(summarySheet, "B6", formatMoney(stmt.TotalInvoiced))
	_ = f.SetCellValue(summarySheet, "A7", "Total Paid")
	_ = f.SetCellValue(summarySheet, "B7", formatMoney(stmt.TotalPaid))
	_ = f.SetCellValue(summarySheet, "A8", "Total Outstanding")
	_ = f.SetCellValue(summarySheet, "B8", formatMoney(stmt.TotalOutstanding))

	_ = f.SetCellValue(invoicesSheet, "A1", "Issued")
	_ = f.SetCellValue(invoicesSheet, "B1", "Description")
	_ = f.SetCellValue(invoicesSheet, "C1", "Amount")
	_ = f.SetCellValue(invoicesSheet, "D1", "Paid")
	_ = f.SetCellValue(invoicesSheet, "E1", "Outstanding")
	for i, inv := range stmt.Invoices {
		row := i + 2
		_ = f.SetCellValue(invoicesSheet, fmt.Sprintf("A%d", row), inv.IssuedAt.Format("2006-01-02"))
		_ = f.SetCellValue(invoicesSheet, fmt.Sprintf("B%d", row), inv.Description)
		_ = f.SetCellValue(invoicesSheet, fmt.Sprintf("C%d", row), formatMoney(inv.Amount))
		_ = f.SetCellValue(invoicesSheet, fmt.Sprintf("D%d", row), formatMoney(inv.PaidAmount))
		_ = f.SetCellValue(invoicesSheet, fmt.Sprintf("E%d", row), formatMoney(inv.OutstandingAmount))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildSchoolStatementXLSX renders a school account statement as an XLSX
// workbook with a summary sheet and a per-student sheet.
func BuildSchoolStatementXLSX(stmt *dto.SchoolAccountStatement) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	studentsSheet := "students"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(studentsSheet)

	_ = f.SetCellValue(summarySheet, "A1", "School Account Statement")
	_ = f.SetCellValue(summarySheet, "A3", "School")
	_ = f.SetCellValue(summarySheet, "B3", stmt.SchoolName)
	_ = f.SetCellValue(summarySheet, "A4", "School ID")
	_ = f.SetCellValue(summarySheet, "B4", stmt.SchoolID)
	_ = f.SetCellValue(summarySheet, "A5", "Students")
	_ = f.SetCellValue(summarySheet, "B5", stmt.NumberOfStudents)
	_ = f.SetCellValue(summarySheet, "A6", "Total Invoiced")
	_ = f.SetCellValue(summarySheet, "B6", formatMoney(stmt.TotalInvoiced))
	_ = f.SetCellValue(summarySheet, "A7", "Total Paid")
	_ = f.SetCellValue(summarySheet, "B7", formatMoney(stmt.TotalPaid))
	_ = f.SetCellValue(summarySheet, "A8", "Total Outstanding")
	_ = f.SetCellValue(summarySheet, "B8", formatMoney(stmt.TotalOutstanding))

	_ = f.SetCellValue(studentsSheet, "A1", "Student")
	_ = f.SetCellValue(studentsSheet, "B1", "Student ID")
	_ = f.SetCellValue(studentsSheet, "C1", "Outstanding")
	for i, s := range stmt.Students {
		row := i + 2
		_ = f.SetCellValue(studentsSheet, fmt.Sprintf("A%d", row), s.StudentName)
		_ = f.SetCellValue(studentsSheet, fmt.Sprintf("B%d", row), s.StudentID)
		_ = f.SetCellValue(studentsSheet, fmt.Sprintf("C%d", row), formatMoney(s.TotalOutstanding))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
