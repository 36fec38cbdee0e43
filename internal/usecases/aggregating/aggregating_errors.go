package aggregating

import (
	"errors"
	"fmt"
)

// Erros de validação da requisição. São as únicas falhas do lote inteiro.
var (
	ErrStoreRequired = errors.New("store id is required")
	ErrTokenRequired = errors.New("moysklad token is required")
	ErrDatesRequired = errors.New("dates array required")
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
)

// DateError associa um erro a uma data específica
type DateError struct {
	Date string
	Err  error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s: %v", e.Date, e.Err)
}

func (e *DateError) Unwrap() error {
	return e.Err
}
