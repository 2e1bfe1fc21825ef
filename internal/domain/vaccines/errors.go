package vaccines

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrVaccineNotFound = errors.New("vaccine not found")
	ErrNotFound        = errors.New("vaccine record not found")
	ErrTooManyRecords  = errors.New("too many vaccine records")
	ErrInvalidCatalog  = errors.New("invalid vaccine catalog")
)
