package moyskladclient

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

const (
	msgInvalidCredential = "invalid credential"
	msgForbidden         = "forbidden"
)

// AuthError é retornado em 401/403. Nunca é retentado.
type AuthError struct {
	Status  int
	Code    int
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("moysklad: %s (HTTP %d)", e.Message, e.Status)
}

// IsForbidden diferencia 403 (sem permissão) de 401 (token inválido)
func (e *AuthError) IsForbidden() bool {
	return e.Status == http.StatusForbidden
}

func newAuthError(status, code int) *AuthError {
	message := msgInvalidCredential
	if status == http.StatusForbidden {
		message = msgForbidden
	}

	return &AuthError{Status: status, Code: code, Message: message}
}

// RateLimitError é retornado em 429 quando as tentativas se esgotam
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	if e.Message == "" {
		return "moysklad: rate limit exceeded"
	}
	return "moysklad: rate limit exceeded: " + e.Message
}

// NetworkError envolve falhas de transporte (conexão, leitura do corpo)
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "moysklad: network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError cobre qualquer outro status fora de 2xx
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("moysklad: %s (HTTP %d)", e.Message, e.Status)
}

// IsRetryable decide se a política de retentativa deve tentar de novo
func IsRetryable(err error) bool {
	var rateLimitErr *RateLimitError
	var networkErr *NetworkError

	return errors.As(err, &rateLimitErr) || errors.As(err, &networkErr)
}
