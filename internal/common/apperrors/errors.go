package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidOTP is returned when no stored record matches the supplied
	// phone number and code. Deliberately undifferentiated: callers cannot
	// tell a wrong code from an unknown phone number.
	ErrInvalidOTP = errors.New("Invalid OTP or phone number")

	// ErrUserNotFound is returned when an update targets a phone number
	// with no user record.
	ErrUserNotFound = errors.New("no user found for this phone number")

	// ErrConflict is returned when a write collides with an existing
	// unique-keyed record.
	ErrConflict = errors.New("record already exists")
)

// ValidationError reports a missing or empty required field, raised before
// any side effect occurs.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validation creates a ValidationError with the given reason.
func Validation(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// DeliveryError wraps a failure from the SMS gateway. The underlying cause
// is kept for server-side logs and never shown to the client.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return fmt.Sprintf("sms delivery failed: %v", e.Err) }

func (e *DeliveryError) Unwrap() error { return e.Err }

// IsDelivery reports whether err is a DeliveryError.
func IsDelivery(err error) bool {
	var d *DeliveryError
	return errors.As(err, &d)
}

// StatusCode maps an error from the service layer to the HTTP status code
// reported at the boundary.
func StatusCode(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidOTP):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message safe to expose in the response body.
// Operational failures fall back to the handler-supplied generic message.
func ClientMessage(err error, fallback string) string {
	switch {
	case IsValidation(err), errors.Is(err, ErrInvalidOTP), errors.Is(err, ErrUserNotFound), errors.Is(err, ErrConflict):
		return err.Error()
	default:
		return fallback
	}
}
