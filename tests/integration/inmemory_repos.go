package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Idempotency Ledger ---

type inMemoryLedger struct {
	mu      sync.Mutex
	records map[string]*domain.IdempotencyRecord
}

func newInMemoryLedger() *inMemoryLedger {
	return &inMemoryLedger{records: make(map[string]*domain.IdempotencyRecord)}
}

func (l *inMemoryLedger) Lookup(ctx context.Context, key string) (*domain.IdempotencyRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.records[key]
	if !ok || rec.IsExpired(time.Now()) {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (l *inMemoryLedger) CreateProcessing(ctx context.Context, key string, resource domain.ResourceType, fingerprint string, ttl time.Duration) (*domain.IdempotencyRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	if rec, ok := l.records[key]; ok && !rec.IsExpired(now) {
		return nil, domain.ErrKeyConflict
	}
	rec := &domain.IdempotencyRecord{
		Key:                key,
		ResourceType:       resource,
		RequestFingerprint: fingerprint,
		Status:             domain.IdempotencyProcessing,
		CreatedAt:          now,
		ExpiresAt:          now.Add(ttl),
	}
	l.records[key] = rec
	cp := *rec
	return &cp, nil
}

func (l *inMemoryLedger) Finalize(ctx context.Context, key string, claimedAt time.Time, outcome ports.LedgerOutcome) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.records[key]
	if !ok || rec.Status != domain.IdempotencyProcessing || !rec.CreatedAt.Equal(claimedAt) {
		return domain.ErrNotProcessing
	}
	rec.Status = outcome.Status
	rec.ResourceID = outcome.ResourceID
	rec.ResponseData = outcome.ResponseData
	rec.FailureReason = outcome.FailureReason
	return nil
}

func (l *inMemoryLedger) ReclaimFailed(ctx context.Context, key string, ttl time.Duration) (*domain.IdempotencyRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	rec, ok := l.records[key]
	if !ok || rec.Status != domain.IdempotencyFailed || rec.IsExpired(now) {
		return nil, domain.ErrNotProcessing
	}
	rec.Status = domain.IdempotencyProcessing
	rec.CreatedAt = now
	rec.ExpiresAt = now.Add(ttl)
	cp := *rec
	return &cp, nil
}

func (l *inMemoryLedger) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var n int64
	for key, rec := range l.records {
		if rec.IsExpired(now) {
			delete(l.records, key)
			n++
		}
	}
	return n, nil
}

// --- In-Memory Booking Repo ---

type inMemoryBookingRepo struct {
	mu      sync.Mutex
	nextID  int64
	byCode  map[string]*domain.Booking
	tickets map[int64][]domain.Ticket
}

func newInMemoryBookingRepo() *inMemoryBookingRepo {
	return &inMemoryBookingRepo{byCode: make(map[string]*domain.Booking), tickets: make(map[int64][]domain.Ticket)}
}

func (r *inMemoryBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byCode[b.BookingCode]; ok {
		return fmt.Errorf("booking code already exists")
	}
	r.nextID++
	b.ID = r.nextID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	r.byCode[b.BookingCode] = &cp
	return nil
}

func (r *inMemoryBookingRepo) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *inMemoryBookingRepo) GetByRef(ctx context.Context, externalRef string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.byCode {
		if b.ExternalRef != nil && *b.ExternalRef == externalRef {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryBookingRepo) List(ctx context.Context, params ports.BookingListParams) ([]domain.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Booking
	for _, b := range r.byCode {
		if b.UserID != params.UserID {
			continue
		}
		if params.Type != nil && b.Type != *params.Type {
			continue
		}
		if params.Status != nil && b.Status != *params.Status {
			continue
		}
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *inMemoryBookingRepo) SetExternalRef(ctx context.Context, code string, externalRef string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byCode[code]
	if !ok {
		return fmt.Errorf("booking not found")
	}
	b.ExternalRef = &externalRef
	return nil
}

func (r *inMemoryBookingRepo) AdvanceStatusByCode(ctx context.Context, code string, status domain.BookingStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byCode[code]
	if !ok || !status.Supersedes(b.Status) {
		return false, nil
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	return true, nil
}

func (r *inMemoryBookingRepo) AdvanceStatusByRef(ctx context.Context, tx pgx.Tx, externalRef string, status domain.BookingStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.byCode {
		if b.ExternalRef != nil && *b.ExternalRef == externalRef {
			if status.Supersedes(b.Status) {
				b.Status = status
				b.UpdatedAt = time.Now()
			}
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryBookingRepo) ExpireHolds(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.byCode {
		if b.Status == domain.BookingPending && b.ExpiresAt != nil && !b.ExpiresAt.After(now) {
			b.Status = domain.BookingFailed
			n++
		}
	}
	return n, nil
}

func (r *inMemoryBookingRepo) CreateTickets(ctx context.Context, tx pgx.Tx, tickets []domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range tickets {
		r.tickets[t.BookingID] = append(r.tickets[t.BookingID], t)
	}
	return nil
}

func (r *inMemoryBookingRepo) ListTickets(ctx context.Context, bookingID int64) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Ticket(nil), r.tickets[bookingID]...), nil
}

// --- In-Memory PPOB Repo ---

type inMemoryPpobRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.PpobTransaction
}

func newInMemoryPpobRepo() *inMemoryPpobRepo {
	return &inMemoryPpobRepo{byID: make(map[string]*domain.PpobTransaction)}
}

func (r *inMemoryPpobRepo) Create(ctx context.Context, t *domain.PpobTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = int64(len(r.byID) + 1)
	t.CreatedAt = time.Now()
	cp := *t
	r.byID[t.TransactionID] = &cp
	return nil
}

func (r *inMemoryPpobRepo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.PpobTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[transactionID]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryPpobRepo) List(ctx context.Context, params ports.TxListParams) ([]domain.PpobTransaction, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.PpobTransaction
	for _, t := range r.byID {
		if t.UserID != params.UserID {
			continue
		}
		if params.Status != nil && t.Status != *params.Status {
			continue
		}
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *inMemoryPpobRepo) RecordResult(ctx context.Context, transactionID string, status domain.TxStatus, externalRef *string, paymentData json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[transactionID]
	if !ok {
		return fmt.Errorf("transaction not found")
	}
	t.Status = status
	if externalRef != nil {
		t.ExternalRef = externalRef
	}
	if paymentData != nil {
		t.PaymentData = paymentData
	}
	return nil
}

func (r *inMemoryPpobRepo) AdvanceStatusByRef(ctx context.Context, tx pgx.Tx, externalRef string, status domain.TxStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.byID {
		if t.ExternalRef != nil && *t.ExternalRef == externalRef {
			if txStatusSupersedes(status, t.Status) {
				t.Status = status
			}
			return true, nil
		}
	}
	return false, nil
}

func txStatusSupersedes(next, current domain.TxStatus) bool {
	rank := map[domain.TxStatus]int{
		domain.TxPending:    0,
		domain.TxProcessing: 1,
		domain.TxCompleted:  2,
		domain.TxFailed:     2,
		domain.TxCancelled:  2,
	}
	return rank[next] > rank[current]
}

// --- In-Memory Topup Repo ---

type inMemoryTopupRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.WalletTopup
}

func newInMemoryTopupRepo() *inMemoryTopupRepo {
	return &inMemoryTopupRepo{byID: make(map[string]*domain.WalletTopup)}
}

func (r *inMemoryTopupRepo) Create(ctx context.Context, t *domain.WalletTopup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = int64(len(r.byID) + 1)
	t.CreatedAt = time.Now()
	cp := *t
	r.byID[t.TransactionID] = &cp
	return nil
}

func (r *inMemoryTopupRepo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.WalletTopup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[transactionID]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTopupRepo) List(ctx context.Context, params ports.TxListParams) ([]domain.WalletTopup, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.WalletTopup
	for _, t := range r.byID {
		if t.UserID == params.UserID {
			out = append(out, *t)
		}
	}
	return out, int64(len(out)), nil
}

func (r *inMemoryTopupRepo) RecordResult(ctx context.Context, transactionID string, status domain.TxStatus, externalRef *string, topupData json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[transactionID]
	if !ok {
		return fmt.Errorf("topup not found")
	}
	t.Status = status
	if externalRef != nil {
		t.ExternalRef = externalRef
	}
	if topupData != nil {
		t.TopupData = topupData
	}
	return nil
}

func (r *inMemoryTopupRepo) AdvanceStatusByRef(ctx context.Context, tx pgx.Tx, externalRef string, status domain.TxStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.byID {
		if t.ExternalRef != nil && *t.ExternalRef == externalRef {
			if txStatusSupersedes(status, t.Status) {
				t.Status = status
			}
			return true, nil
		}
	}
	return false, nil
}

// --- In-Memory Transfer Repo ---

type inMemoryTransferRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.BankTransfer
}

func newInMemoryTransferRepo() *inMemoryTransferRepo {
	return &inMemoryTransferRepo{byID: make(map[string]*domain.BankTransfer)}
}

func (r *inMemoryTransferRepo) Create(ctx context.Context, t *domain.BankTransfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = int64(len(r.byID) + 1)
	t.CreatedAt = time.Now()
	cp := *t
	r.byID[t.TransactionID] = &cp
	return nil
}

func (r *inMemoryTransferRepo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.BankTransfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[transactionID]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTransferRepo) List(ctx context.Context, params ports.TxListParams) ([]domain.BankTransfer, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.BankTransfer
	for _, t := range r.byID {
		if t.UserID == params.UserID {
			out = append(out, *t)
		}
	}
	return out, int64(len(out)), nil
}

func (r *inMemoryTransferRepo) RecordResult(ctx context.Context, transactionID string, status domain.TxStatus, externalRef *string, transferData json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[transactionID]
	if !ok {
		return fmt.Errorf("transfer not found")
	}
	t.Status = status
	if externalRef != nil {
		t.ExternalRef = externalRef
	}
	if transferData != nil {
		t.TransferData = transferData
	}
	return nil
}

func (r *inMemoryTransferRepo) AdvanceStatusByRef(ctx context.Context, tx pgx.Tx, externalRef string, status domain.TxStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.byID {
		if t.ExternalRef != nil && *t.ExternalRef == externalRef {
			if txStatusSupersedes(status, t.Status) {
				t.Status = status
			}
			return true, nil
		}
	}
	return false, nil
}

// --- In-Memory Webhook Event Repo ---

type inMemoryWebhookRepo struct {
	mu      sync.Mutex
	nextID  int64
	byEvent map[string]*domain.WebhookEvent
}

func newInMemoryWebhookRepo() *inMemoryWebhookRepo {
	return &inMemoryWebhookRepo{byEvent: make(map[string]*domain.WebhookEvent)}
}

func (r *inMemoryWebhookRepo) Insert(ctx context.Context, e *domain.WebhookEvent) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEvent[e.EventID]; ok {
		return false, nil
	}
	r.nextID++
	e.ID = r.nextID
	e.CreatedAt = time.Now()
	cp := *e
	r.byEvent[e.EventID] = &cp
	return true, nil
}

func (r *inMemoryWebhookRepo) GetByEventID(ctx context.Context, eventID string) (*domain.WebhookEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byEvent[eventID]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *inMemoryWebhookRepo) MarkProcessed(ctx context.Context, tx pgx.Tx, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byEvent[eventID]
	if !ok {
		return fmt.Errorf("event not found")
	}
	now := time.Now()
	e.Processed = true
	e.ProcessedAt = &now
	e.ProcessingAttempts++
	e.NextRetryAt = nil
	e.LastError = nil
	return nil
}

func (r *inMemoryWebhookRepo) RecordFailure(ctx context.Context, eventID string, lastError string, nextRetryAt *time.Time, permanent bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byEvent[eventID]
	if !ok {
		return fmt.Errorf("event not found")
	}
	e.ProcessingAttempts++
	e.LastError = &lastError
	e.NextRetryAt = nextRetryAt
	e.PermanentlyFailed = permanent
	return nil
}

func (r *inMemoryWebhookRepo) ListDue(ctx context.Context, now time.Time, limit int) ([]domain.WebhookEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.WebhookEvent
	for _, e := range r.byEvent {
		if e.Processed || e.PermanentlyFailed {
			continue
		}
		if e.NextRetryAt != nil && e.NextRetryAt.After(now) {
			continue
		}
		out = append(out, *e)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *inMemoryWebhookRepo) List(ctx context.Context, params ports.WebhookListParams) ([]domain.WebhookEvent, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.WebhookEvent
	for _, e := range r.byEvent {
		if params.Processed != nil && e.Processed != *params.Processed {
			continue
		}
		if params.PermanentlyFailed != nil && e.PermanentlyFailed != *params.PermanentlyFailed {
			continue
		}
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[int64]*domain.User)}
}

func (r *inMemoryUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return fmt.Errorf("email already exists")
		}
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *inMemoryUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// --- In-Memory Reporting Repo ---

type inMemoryReportingRepo struct{}

func (r *inMemoryReportingRepo) GetSystemStats(ctx context.Context) (*ports.SystemStats, error) {
	return &ports.SystemStats{}, nil
}

func (r *inMemoryReportingRepo) ListFailedTransactions(ctx context.Context, since *int64, limit int) ([]ports.FailedTransaction, error) {
	return nil, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
