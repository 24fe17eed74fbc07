package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := New("IDEM_001", "Invalid or missing idempotency key", http.StatusBadRequest)
	assert.Equal(t, "[IDEM_001] Invalid or missing idempotency key", e.Error())
}

func TestAppError_ErrorWithWrapped(t *testing.T) {
	inner := errors.New("connection refused")
	e := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, inner)
	assert.Contains(t, e.Error(), "SYS_001")
	assert.Contains(t, e.Error(), "connection refused")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("row not found")
	e := InternalError(fmt.Errorf("lookup: %w", inner))
	assert.True(t, errors.Is(e, inner))
}

func TestAppError_ErrorsAs(t *testing.T) {
	var appErr *AppError
	err := fmt.Errorf("handler: %w", ErrKeyReuseMismatch())
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "IDEM_002", appErr.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
}

func TestConstructors_StatusMapping(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{ErrInvalidIdempotencyKey(), "IDEM_001", http.StatusBadRequest},
		{ErrKeyReuseMismatch(), "IDEM_002", http.StatusUnprocessableEntity},
		{ErrRequestInProgress(), "IDEM_003", http.StatusConflict},
		{ErrLedgerState(errors.New("finalize on terminal record")), "IDEM_004", http.StatusInternalServerError},
		{ErrBookingNotFound(), "BOOK_001", http.StatusNotFound},
		{ErrBookingNotCancellable(), "BOOK_002", http.StatusConflict},
		{ErrTransactionNotFound(), "TXN_001", http.StatusNotFound},
		{ErrUnknownProduct("PLN-XXX"), "TXN_003", http.StatusBadRequest},
		{ErrProviderRejected("E42", "bill already paid"), "PROV_001", http.StatusBadGateway},
		{ErrProviderUnavailable(errors.New("timeout")), "PROV_002", http.StatusBadGateway},
		{ErrWebhookSignature(), "HOOK_001", http.StatusUnauthorized},
		{ErrInvalidCredentials(), "AUTH_001", http.StatusUnauthorized},
		{ErrEmailExists(), "AUTH_002", http.StatusConflict},
	}

	for _, c := range cases {
		assert.Equal(t, c.code, c.err.Code)
		assert.Equal(t, c.status, c.err.HTTPStatus)
	}
}
