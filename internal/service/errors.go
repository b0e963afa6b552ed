package service

import "errors"

// Validation failures are resolved locally and never reach persistence.
// Storage failures are returned wrapped so handlers can render a retry
// prompt; nothing is mutated locally when they occur.
var (
	ErrInvalidAmount     = errors.New("amount is below the service minimum")
	ErrInsufficientStock = errors.New("insufficient stock remaining")
	ErrMissingField      = errors.New("missing required field")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrProductNotFound   = errors.New("product not found")
	ErrCreditNotFound    = errors.New("utang record not found")
	ErrCreditAlreadyPaid = errors.New("utang is already marked as paid")
	ErrCreditNotPaid     = errors.New("utang is not marked as paid")
	ErrLiabilityNotFound = errors.New("liability record not found")
)
