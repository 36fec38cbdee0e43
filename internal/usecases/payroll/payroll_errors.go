package payroll

import (
	"errors"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrNegativeValue         = errors.New("daily rate and sales percentage must not be negative")
)
