package expense

import "errors"

var (
	ErrNotFound = errors.New("expense not found")

	// ErrMalformedDate marks a stored date column that cannot be decoded into a
	// schedule. It is a data-integrity fault and is never defaulted.
	ErrMalformedDate = errors.New("malformed expense date")

	ErrInvalidExpense = errors.New("invalid expense")
	ErrInvalidMonth   = errors.New("invalid month")
)
