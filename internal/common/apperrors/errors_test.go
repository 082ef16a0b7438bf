package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("Phone number is required"), http.StatusBadRequest},
		{"invalid otp", ErrInvalidOTP, http.StatusUnauthorized},
		{"wrapped invalid otp", fmt.Errorf("verify: %w", ErrInvalidOTP), http.StatusUnauthorized},
		{"user not found", ErrUserNotFound, http.StatusNotFound},
		{"conflict", ErrConflict, http.StatusConflict},
		{"delivery", &DeliveryError{Err: assert.AnError}, http.StatusInternalServerError},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestClientMessage(t *testing.T) {
	assert.Equal(t, "Phone number is required", ClientMessage(Validation("Phone number is required"), "fallback"))
	assert.Equal(t, "Invalid OTP or phone number", ClientMessage(ErrInvalidOTP, "fallback"))

	// Operational failures never leak their cause.
	msg := ClientMessage(&DeliveryError{Err: assert.AnError}, "Failed to send OTP")
	assert.Equal(t, "Failed to send OTP", msg)
}
