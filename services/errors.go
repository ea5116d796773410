package services

import "errors"

// Domain errors. Controllers match these with errors.Is and map them to HTTP
// statuses; anything unmatched is treated as an internal error.
var (
	ErrValidation         = errors.New("validation failed")
	ErrRoomNotFound       = errors.New("room not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrRoomUnavailable    = errors.New("room not available")
	ErrDuplicateRoom      = errors.New("room number already exists")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
