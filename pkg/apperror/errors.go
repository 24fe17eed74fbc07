package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Idempotency (IDEM) ----

func ErrInvalidIdempotencyKey() *AppError {
	return New("IDEM_001", "Invalid or missing idempotency key", http.StatusBadRequest)
}

// ErrKeyReuseMismatch means the key was reused with a different request body
// or resource type. This is a caller bug, not a retry.
func ErrKeyReuseMismatch() *AppError {
	return New("IDEM_002", "Idempotency key already used for a different request", http.StatusUnprocessableEntity)
}

// ErrRequestInProgress means another request with the same key is in flight.
// The caller should poll status, not resubmit.
func ErrRequestInProgress() *AppError {
	return New("IDEM_003", "Request with this idempotency key is being processed", http.StatusConflict)
}

// ErrLedgerState marks a finalize call against an absent or already-terminal
// record. This is a coordination bug and must never be swallowed.
func ErrLedgerState(err error) *AppError {
	return Wrap("IDEM_004", "Idempotency ledger state violation", http.StatusInternalServerError, err)
}

// ---- Bookings (BOOK) ----

func ErrBookingNotFound() *AppError {
	return New("BOOK_001", "Booking not found", http.StatusNotFound)
}

func ErrBookingNotCancellable() *AppError {
	return New("BOOK_002", "Booking is not in a cancellable state", http.StatusConflict)
}

func ErrTicketAlreadyIssued() *AppError {
	return New("BOOK_003", "Tickets already issued for this booking", http.StatusConflict)
}

// ---- Transactions (TXN: PPOB, pulsa, transfers) ----

func ErrTransactionNotFound() *AppError {
	return New("TXN_001", "Transaction not found", http.StatusNotFound)
}

func ErrInvalidAmount() *AppError {
	return New("TXN_002", "Invalid amount", http.StatusBadRequest)
}

func ErrUnknownProduct(code string) *AppError {
	return New("TXN_003", fmt.Sprintf("Unknown product code: %s", code), http.StatusBadRequest)
}

func ErrUnsupportedBank(code string) *AppError {
	return New("TXN_004", fmt.Sprintf("Unsupported bank: %s", code), http.StatusBadRequest)
}

func ErrTransferLimit() *AppError {
	return New("TXN_005", "Amount outside the bank transfer limits", http.StatusUnprocessableEntity)
}

// ---- Upstream provider (PROV) ----

// ErrProviderRejected carries a structured rejection from the settlement
// provider (declined bill, unknown customer id, and so on).
func ErrProviderRejected(code, message string) *AppError {
	return New("PROV_001", fmt.Sprintf("Provider rejected request [%s]: %s", code, message), http.StatusBadGateway)
}

func ErrProviderUnavailable(err error) *AppError {
	return Wrap("PROV_002", "Settlement provider unavailable", http.StatusBadGateway, err)
}

// ---- Webhooks (HOOK) ----

func ErrWebhookSignature() *AppError {
	return New("HOOK_001", "Invalid webhook signature", http.StatusUnauthorized)
}

func ErrWebhookEventNotFound() *AppError {
	return New("HOOK_002", "Webhook event not found", http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrEmailExists() *AppError {
	return New("AUTH_002", "Email already registered", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrUserInactive() *AppError {
	return New("AUTH_004", "User account is inactive", http.StatusForbidden)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrNotFound(entity string) *AppError {
	return New("SYS_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("SYS_003", message, http.StatusBadRequest)
}

func ErrRateLimitExceeded() *AppError {
	return New("SYS_004", "Rate limit exceeded", http.StatusTooManyRequests)
}
