package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	resp := NewError(ErrCodeInvalidInput, "Invalid input").WithRequestID("req-1")

	assert.Equal(t, ErrCodeInvalidInput, resp.Error)
	assert.Equal(t, "Invalid input", resp.Message)
	assert.Equal(t, "req-1", resp.RequestID)
	assert.False(t, resp.Timestamp.IsZero())
	assert.Nil(t, resp.Details)
}

func TestErrorResponse_WithDetail(t *testing.T) {
	base := NewError(ErrCodeInvalidInput, "Invalid input").WithDetail("field", "length")
	extended := base.WithDetail("reason", "must be greater than zero")

	assert.Equal(t, map[string]string{"field": "length"}, base.Details, "original is not mutated")
	assert.Equal(t, map[string]string{"field": "length", "reason": "must be greater than zero"}, extended.Details)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := map[int]string{
		http.StatusBadRequest:          ErrCodeInvalidRequest,
		http.StatusUnprocessableEntity: ErrCodeInvalidInput,
		http.StatusUnauthorized:        ErrCodeUnauthorized,
		http.StatusForbidden:           ErrCodeForbidden,
		http.StatusNotFound:            ErrCodeNotFound,
		http.StatusConflict:            ErrCodeConflict,
		http.StatusTooManyRequests:     ErrCodeRateLimit,
		http.StatusGatewayTimeout:      ErrCodeTimeout,
		http.StatusRequestTimeout:      ErrCodeTimeout,
		http.StatusServiceUnavailable:  ErrCodeUnavailable,
		http.StatusInternalServerError: ErrCodeInternal,
		http.StatusTeapot:              ErrCodeInternal,
	}

	for status, expected := range tests {
		assert.Equal(t, expected, ErrCodeFromStatus(status), http.StatusText(status))
	}
}
