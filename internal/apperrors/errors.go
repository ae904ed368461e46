package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnsupportedCurrency indicates a currency code that is not a recognized ISO 4217 code.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrMixedCurrency indicates that a statement scope contains invoices in more
// than one currency. Statements are always single-currency.
var ErrMixedCurrency = errors.New("mixed currencies are not supported in a single statement")

// ErrImputationExceedsOutstanding indicates an imputation that would push an
// invoice's paid total past its face amount.
var ErrImputationExceedsOutstanding = errors.New("imputation exceeds outstanding amount")

// ErrImputationTotalMismatch indicates a payment whose imputations do not sum
// to the payment amount.
var ErrImputationTotalMismatch = errors.New("total imputation amount must equal payment amount")
