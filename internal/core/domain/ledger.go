package domain

// The ledger graph types below are the fully materialized inputs to the
// statement aggregator. They are eager-loaded in one repository call so the
// aggregation itself stays pure: no lazy traversal, no I/O.

// InvoiceWithImputations pairs an invoice with every imputation recorded
// against it.
type InvoiceWithImputations struct {
	Invoice     Invoice
	Imputations []PaymentImputation
}

// StudentWithInvoices pairs a student with their invoices, in store order.
type StudentWithInvoices struct {
	Student  Student
	Invoices []InvoiceWithImputations
}

// StudentLedger is the entity graph backing a student statement: the
// student, their school, and their invoices with imputations.
type StudentLedger struct {
	Student  Student
	School   School
	Invoices []InvoiceWithImputations
}

// SchoolLedger is the entity graph backing a school statement: the school
// and every student with their invoices and imputations.
type SchoolLedger struct {
	School   School
	Students []StudentWithInvoices
}
