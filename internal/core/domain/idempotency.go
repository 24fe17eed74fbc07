package domain

import (
	"encoding/json"
	"errors"
	"regexp"
	"time"
)

// ResourceType classifies the side-effecting operation an idempotency key
// scopes. A key is bound to exactly one resource type for its lifetime.
type ResourceType string

const (
	ResourceFlightBooking ResourceType = "flight_booking"
	ResourceTrainBooking  ResourceType = "train_booking"
	ResourceTicketIssue   ResourceType = "ticket_issue"
	ResourcePpobPayment   ResourceType = "ppob_payment"
	ResourcePulsaTopup    ResourceType = "pulsa_topup"
	ResourceBankTransfer  ResourceType = "bank_transfer"
)

// IdempotencyStatus is the ledger record lifecycle state.
type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
	IdempotencyFailed     IdempotencyStatus = "failed"
)

// Ledger sentinel errors. Repositories return these so the coordinator can
// branch on them without string matching.
var (
	// ErrKeyConflict: an unexpired record for the key already exists.
	ErrKeyConflict = errors.New("idempotency key already recorded")
	// ErrNotProcessing: finalize or reclaim hit a record that is absent or
	// not in the expected state. Indicates a coordination bug upstream.
	ErrNotProcessing = errors.New("idempotency record absent or not processing")
)

// IdempotencyRecord is one entry in the ledger. The key is the identity;
// resource type and fingerprint are immutable after creation.
type IdempotencyRecord struct {
	Key                string            `json:"key"`
	ResourceType       ResourceType      `json:"resource_type"`
	RequestFingerprint string            `json:"request_fingerprint"`
	Status             IdempotencyStatus `json:"status"`
	ResourceID         *string           `json:"resource_id,omitempty"` // id of the created resource, set on completion
	ResponseData       json.RawMessage   `json:"response_data,omitempty"`
	FailureReason      *string           `json:"failure_reason,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	ExpiresAt          time.Time         `json:"expires_at"`
}

// IsTerminal returns true once the record reached completed or failed.
func (r *IdempotencyRecord) IsTerminal() bool {
	return r.Status == IdempotencyCompleted || r.Status == IdempotencyFailed
}

// IsExpired reports whether the record is past its TTL and must be treated
// as absent.
func (r *IdempotencyRecord) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

var idempotencyKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,255}$`)

// ValidIdempotencyKey reports whether a client-supplied key matches the
// accepted syntax: 1-255 chars over [A-Za-z0-9_-].
func ValidIdempotencyKey(key string) bool {
	return idempotencyKeyPattern.MatchString(key)
}
