package domain

import (
	"encoding/json"
	"time"
)

// Provider webhook event types the reconciler knows how to apply.
// Unknown types are accepted and marked processed for forward compatibility.
const (
	EventBookingConfirmed  = "booking_confirmed"
	EventBookingCancelled  = "booking_cancelled"
	EventTicketIssued      = "ticket_issued"
	EventPaymentCompleted  = "payment_completed"
	EventPaymentFailed     = "payment_failed"
	EventTransferCompleted = "transfer_completed"
	EventTransferFailed    = "transfer_failed"
	EventTopupCompleted    = "topup_completed"
	EventTopupFailed       = "topup_failed"
)

// WebhookEvent is one inbound provider callback. Rows are append-only:
// the reconciler mutates the processing bookkeeping but events are never
// deleted. EventID is the provider-assigned de-duplication key.
type WebhookEvent struct {
	ID                 int64           `json:"id"`
	EventID            string          `json:"event_id"` // unique
	EventType          string          `json:"event_type"`
	Source             string          `json:"source"`
	Payload            json.RawMessage `json:"payload"`
	Processed          bool            `json:"processed"`
	ProcessingAttempts int             `json:"processing_attempts"`
	LastError          *string         `json:"last_error,omitempty"`
	PermanentlyFailed  bool            `json:"permanently_failed"`
	NextRetryAt        *time.Time      `json:"next_retry_at,omitempty"`
	ProcessedAt        *time.Time      `json:"processed_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// EventPayload is the common shape of provider callback bodies. ExternalRef
// ties the event back to the local transaction it settles.
type EventPayload struct {
	ExternalRef   string          `json:"external_ref"`
	TransactionID string          `json:"transaction_id,omitempty"` // our id, when echoed back
	Status        string          `json:"status,omitempty"`
	Reason        string          `json:"reason,omitempty"`
	Tickets       json.RawMessage `json:"tickets,omitempty"`
}
