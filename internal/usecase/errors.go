package usecase

import (
	"errors"
	"strings"
)

var (
	// ErrMpesaAuth means the Daraja credential exchange failed. Transient;
	// no intent is created and the caller may retry.
	ErrMpesaAuth = errors.New("mpesa authorization failed")

	// ErrMpesaUnavailable means the STK push call itself failed (network,
	// timeout, provider 5xx). No intent is created.
	ErrMpesaUnavailable = errors.New("mpesa request failed")

	ErrPaymentNotFound          = errors.New("payment intent not found")
	ErrMalformedCallback        = errors.New("malformed stk callback")
	ErrUnknownCheckoutRequestID = errors.New("unknown checkout request id")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every offending input field. It is produced before
// any side effect, so a request failing validation never reaches Daraja.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "invalid input: " + strings.Join(names, ", ")
}
