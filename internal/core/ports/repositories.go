package ports

import (
	"context"
	"encoding/json"
	"time"

	"multipay-aggregator/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// IdempotencyLedger is the durable record of each idempotency key's
// lifecycle. Creation and reclaim are atomic at the storage level: of any
// number of concurrent callers racing on one key, exactly one wins.
type IdempotencyLedger interface {
	// Lookup returns nil, nil when no unexpired record exists for key.
	Lookup(ctx context.Context, key string) (*domain.IdempotencyRecord, error)

	// CreateProcessing atomically inserts a processing record, taking over
	// an expired row for the same key if one is present. Returns
	// domain.ErrKeyConflict when an unexpired record already exists.
	CreateProcessing(ctx context.Context, key string, resource domain.ResourceType, fingerprint string, ttl time.Duration) (*domain.IdempotencyRecord, error)

	// Finalize transitions a processing record to its terminal state. The
	// update is fenced to the claim identified by claimedAt: if the record
	// was taken over after the claimant's window expired, the stale
	// finalize matches nothing. Returns domain.ErrNotProcessing if the
	// record is absent, already terminal, or owned by a newer claim;
	// callers must surface that loudly, never swallow it.
	Finalize(ctx context.Context, key string, claimedAt time.Time, outcome LedgerOutcome) error

	// ReclaimFailed atomically flips a failed record back to processing so
	// that exactly one retry proceeds, and returns the refreshed record.
	// Returns domain.ErrNotProcessing when the record is absent or not
	// failed.
	ReclaimFailed(ctx context.Context, key string, ttl time.Duration) (*domain.IdempotencyRecord, error)

	// PurgeExpired deletes records whose expiry has passed. Safe to run
	// concurrently with creation; a freshly reused key is never removed.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// LedgerOutcome is the terminal result recorded by Finalize.
type LedgerOutcome struct {
	Status        domain.IdempotencyStatus // completed or failed
	ResourceID    *string
	ResponseData  json.RawMessage
	FailureReason *string
}

// CompletedOutcome builds the outcome for a successful operation.
func CompletedOutcome(resourceID string, response json.RawMessage) LedgerOutcome {
	return LedgerOutcome{
		Status:       domain.IdempotencyCompleted,
		ResourceID:   &resourceID,
		ResponseData: response,
	}
}

// FailedOutcome builds the outcome for a failed operation.
func FailedOutcome(reason string) LedgerOutcome {
	return LedgerOutcome{
		Status:        domain.IdempotencyFailed,
		FailureReason: &reason,
	}
}

// BookingRepository persists flight and train reservations.
// Methods accepting pgx.Tx run inside reconciler transactions so a status
// write and the event bookkeeping commit together.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)
	GetByRef(ctx context.Context, externalRef string) (*domain.Booking, error)
	List(ctx context.Context, params BookingListParams) ([]domain.Booking, int64, error)
	SetExternalRef(ctx context.Context, code string, externalRef string) error

	// AdvanceStatusByCode applies status only when it supersedes the current
	// one; returns whether a row changed.
	AdvanceStatusByCode(ctx context.Context, code string, status domain.BookingStatus) (bool, error)
	// AdvanceStatusByRef is the reconciler's write path, keyed by the
	// provider reference. The returned bool reports whether any row matched
	// the reference; precedence is applied inside, so an equal or lower
	// status is a silent no-op that still matches.
	AdvanceStatusByRef(ctx context.Context, tx pgx.Tx, externalRef string, status domain.BookingStatus) (bool, error)

	// ExpireHolds fails pending bookings whose payment hold has lapsed.
	ExpireHolds(ctx context.Context, now time.Time) (int64, error)

	CreateTickets(ctx context.Context, tx pgx.Tx, tickets []domain.Ticket) error
	ListTickets(ctx context.Context, bookingID int64) ([]domain.Ticket, error)
}

// BookingListParams filters and paginates booking listings.
type BookingListParams struct {
	UserID   int64
	Type     *domain.BookingType
	Status   *domain.BookingStatus
	From     *int64 // Unix timestamp
	To       *int64
	Page     int
	PageSize int
}

// TxListParams filters and paginates PPOB/topup/transfer listings.
type TxListParams struct {
	UserID   int64
	Status   *domain.TxStatus
	From     *int64
	To       *int64
	Page     int
	PageSize int
}

// PpobRepository persists bill payment transactions.
type PpobRepository interface {
	Create(ctx context.Context, t *domain.PpobTransaction) error
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.PpobTransaction, error)
	List(ctx context.Context, params TxListParams) ([]domain.PpobTransaction, int64, error)
	// RecordResult writes the synchronous gateway outcome: terminal status,
	// provider reference and response snapshot.
	RecordResult(ctx context.Context, transactionID string, status domain.TxStatus, externalRef *string, paymentData json.RawMessage) error
	AdvanceStatusByRef(ctx context.Context, tx pgx.Tx, externalRef string, status domain.TxStatus) (bool, error)
}

// TopupRepository persists pulsa/data topup transactions.
type TopupRepository interface {
	Create(ctx context.Context, t *domain.WalletTopup) error
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.WalletTopup, error)
	List(ctx context.Context, params TxListParams) ([]domain.WalletTopup, int64, error)
	RecordResult(ctx context.Context, transactionID string, status domain.TxStatus, externalRef *string, topupData json.RawMessage) error
	AdvanceStatusByRef(ctx context.Context, tx pgx.Tx, externalRef string, status domain.TxStatus) (bool, error)
}

// TransferRepository persists interbank transfers.
type TransferRepository interface {
	Create(ctx context.Context, t *domain.BankTransfer) error
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.BankTransfer, error)
	List(ctx context.Context, params TxListParams) ([]domain.BankTransfer, int64, error)
	RecordResult(ctx context.Context, transactionID string, status domain.TxStatus, externalRef *string, transferData json.RawMessage) error
	AdvanceStatusByRef(ctx context.Context, tx pgx.Tx, externalRef string, status domain.TxStatus) (bool, error)
}

// WebhookEventRepository is the append-only audit trail of provider
// callbacks plus the reconciler's retry bookkeeping.
type WebhookEventRepository interface {
	// Insert persists a new event. Returns false when event_id is already
	// recorded (provider redelivery).
	Insert(ctx context.Context, e *domain.WebhookEvent) (bool, error)
	GetByEventID(ctx context.Context, eventID string) (*domain.WebhookEvent, error)
	// MarkProcessed runs in the same transaction as the status write it
	// acknowledges.
	MarkProcessed(ctx context.Context, tx pgx.Tx, eventID string) error
	// RecordFailure increments the attempt counter and schedules the next
	// retry, or flags the event permanently failed.
	RecordFailure(ctx context.Context, eventID string, lastError string, nextRetryAt *time.Time, permanent bool) error
	// ListDue returns unprocessed, non-permanently-failed events whose
	// next_retry_at has passed (or was never set).
	ListDue(ctx context.Context, now time.Time, limit int) ([]domain.WebhookEvent, error)
	List(ctx context.Context, params WebhookListParams) ([]domain.WebhookEvent, int64, error)
}

// WebhookListParams filters the admin event listing.
type WebhookListParams struct {
	Processed         *bool
	PermanentlyFailed *bool
	Page              int
	PageSize          int
}

// UserRepository persists end users.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ReportingRepository serves cross-table admin queries.
type ReportingRepository interface {
	GetSystemStats(ctx context.Context) (*SystemStats, error)
	ListFailedTransactions(ctx context.Context, since *int64, limit int) ([]FailedTransaction, error)
}

// SystemStats aggregates counters for the admin dashboard.
type SystemStats struct {
	TotalUsers        int64
	TotalBookings     int64
	PendingBookings   int64
	CompletedBookings int64
	TotalPpob         int64
	TotalTopups       int64
	TotalTransfers    int64
	FailedSettlements int64
	RevenueMinor      int64 // sum of completed settlement amounts, minor units
}

// FailedTransaction is one row in the failed-settlement report.
type FailedTransaction struct {
	Domain        string // booking, ppob, topup, transfer
	TransactionID string
	UserID        int64
	Amount        int64
	FailedAt      time.Time
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
