package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.IdempotencyLedger on a single
// idempotency_records table. All state transitions are single-statement
// conditional writes, so concurrency control happens in the database: of any
// number of racing callers, exactly one statement matches.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

const ledgerColumns = `idempotency_key, resource_type, request_fingerprint, status,
	resource_id, response_data, failure_reason, created_at, expires_at`

// Lookup fetches the unexpired record for key, or nil when absent.
func (r *LedgerRepo) Lookup(ctx context.Context, key string) (*domain.IdempotencyRecord, error) {
	query := `SELECT ` + ledgerColumns + `
		FROM idempotency_records
		WHERE idempotency_key = $1 AND expires_at > $2`

	rec := &domain.IdempotencyRecord{}
	err := r.pool.QueryRow(ctx, query, key, time.Now()).Scan(
		&rec.Key, &rec.ResourceType, &rec.RequestFingerprint, &rec.Status,
		&rec.ResourceID, &rec.ResponseData, &rec.FailureReason,
		&rec.CreatedAt, &rec.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup idempotency record: %w", err)
	}
	return rec, nil
}

// CreateProcessing inserts a processing record. An expired row for the same
// key is taken over in the same statement; an unexpired one makes the upsert
// match nothing, which surfaces as domain.ErrKeyConflict.
func (r *LedgerRepo) CreateProcessing(ctx context.Context, key string, resource domain.ResourceType, fingerprint string, ttl time.Duration) (*domain.IdempotencyRecord, error) {
	now := time.Now()
	query := `INSERT INTO idempotency_records
			(idempotency_key, resource_type, request_fingerprint, status, created_at, expires_at)
		VALUES ($1, $2, $3, 'processing', $4, $5)
		ON CONFLICT (idempotency_key) DO UPDATE SET
			resource_type = EXCLUDED.resource_type,
			request_fingerprint = EXCLUDED.request_fingerprint,
			status = 'processing',
			resource_id = NULL,
			response_data = NULL,
			failure_reason = NULL,
			created_at = EXCLUDED.created_at,
			expires_at = EXCLUDED.expires_at
		WHERE idempotency_records.expires_at <= EXCLUDED.created_at
		RETURNING ` + ledgerColumns

	rec := &domain.IdempotencyRecord{}
	err := r.pool.QueryRow(ctx, query, key, string(resource), fingerprint, now, now.Add(ttl)).Scan(
		&rec.Key, &rec.ResourceType, &rec.RequestFingerprint, &rec.Status,
		&rec.ResourceID, &rec.ResponseData, &rec.FailureReason,
		&rec.CreatedAt, &rec.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrKeyConflict
		}
		return nil, fmt.Errorf("create idempotency record: %w", err)
	}
	return rec, nil
}

// Finalize transitions a processing record to its terminal state. The
// created_at guard fences the write to the caller's own claim: a slow
// finalizer whose record expired and was taken over matches nothing instead
// of overwriting the usurper's in-flight execution.
func (r *LedgerRepo) Finalize(ctx context.Context, key string, claimedAt time.Time, outcome ports.LedgerOutcome) error {
	query := `UPDATE idempotency_records
		SET status = $2, resource_id = $3, response_data = $4, failure_reason = $5
		WHERE idempotency_key = $1 AND status = 'processing' AND created_at = $6`

	tag, err := r.pool.Exec(ctx, query,
		key, string(outcome.Status), outcome.ResourceID, outcome.ResponseData, outcome.FailureReason, claimedAt)
	if err != nil {
		return fmt.Errorf("finalize idempotency record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotProcessing
	}
	return nil
}

// ReclaimFailed flips a failed record back to processing with a fresh window
// and returns the refreshed record. The status guard makes concurrent
// reclaims mutually exclusive.
func (r *LedgerRepo) ReclaimFailed(ctx context.Context, key string, ttl time.Duration) (*domain.IdempotencyRecord, error) {
	now := time.Now()
	query := `UPDATE idempotency_records
		SET status = 'processing', resource_id = NULL, response_data = NULL,
			failure_reason = NULL, created_at = $2, expires_at = $3
		WHERE idempotency_key = $1 AND status = 'failed' AND expires_at > $2
		RETURNING ` + ledgerColumns

	rec := &domain.IdempotencyRecord{}
	err := r.pool.QueryRow(ctx, query, key, now, now.Add(ttl)).Scan(
		&rec.Key, &rec.ResourceType, &rec.RequestFingerprint, &rec.Status,
		&rec.ResourceID, &rec.ResponseData, &rec.FailureReason,
		&rec.CreatedAt, &rec.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotProcessing
		}
		return nil, fmt.Errorf("reclaim idempotency record: %w", err)
	}
	return rec, nil
}

// PurgeExpired removes records past their TTL and returns the count.
func (r *LedgerRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM idempotency_records WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("purge idempotency records: %w", err)
	}
	return tag.RowsAffected(), nil
}
