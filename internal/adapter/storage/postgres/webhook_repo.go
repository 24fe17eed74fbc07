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

// WebhookEventRepo implements ports.WebhookEventRepository. Events are
// append-only; only the processing bookkeeping mutates.
type WebhookEventRepo struct {
	pool Pool
}

// NewWebhookEventRepo creates a new WebhookEventRepo.
func NewWebhookEventRepo(pool Pool) *WebhookEventRepo {
	return &WebhookEventRepo{pool: pool}
}

const webhookColumns = `id, event_id, event_type, source, payload, processed,
	processing_attempts, last_error, permanently_failed, next_retry_at,
	processed_at, created_at`

// Insert persists a new event. The unique event_id absorbs provider
// redelivery: a duplicate inserts nothing and returns false.
func (r *WebhookEventRepo) Insert(ctx context.Context, e *domain.WebhookEvent) (bool, error) {
	query := `INSERT INTO webhook_events (event_id, event_type, source, payload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id) DO NOTHING
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, e.EventID, e.EventType, e.Source, e.Payload).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("insert webhook event: %w", err)
	}
	return true, nil
}

// GetByEventID fetches one event, nil when absent.
func (r *WebhookEventRepo) GetByEventID(ctx context.Context, eventID string) (*domain.WebhookEvent, error) {
	query := `SELECT ` + webhookColumns + ` FROM webhook_events WHERE event_id = $1`

	e := &domain.WebhookEvent{}
	err := r.pool.QueryRow(ctx, query, eventID).Scan(
		&e.ID, &e.EventID, &e.EventType, &e.Source, &e.Payload, &e.Processed,
		&e.ProcessingAttempts, &e.LastError, &e.PermanentlyFailed,
		&e.NextRetryAt, &e.ProcessedAt, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webhook event: %w", err)
	}
	return e, nil
}

// MarkProcessed flags the event done inside the caller's transaction, so the
// flag commits together with the status write it acknowledges. The
// successful attempt counts too: processing_attempts always reflects every
// processing pass, not just the failed ones.
func (r *WebhookEventRepo) MarkProcessed(ctx context.Context, tx pgx.Tx, eventID string) error {
	_, err := tx.Exec(ctx,
		`UPDATE webhook_events
		SET processed = TRUE, processed_at = now(),
			processing_attempts = processing_attempts + 1,
			next_retry_at = NULL, last_error = NULL
		WHERE event_id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("mark webhook event processed: %w", err)
	}
	return nil
}

// RecordFailure increments the attempt counter and schedules the next retry,
// or flags the event permanently failed when the ceiling is hit.
func (r *WebhookEventRepo) RecordFailure(ctx context.Context, eventID string, lastError string, nextRetryAt *time.Time, permanent bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE webhook_events
		SET processing_attempts = processing_attempts + 1,
			last_error = $2, next_retry_at = $3, permanently_failed = $4
		WHERE event_id = $1`,
		eventID, lastError, nextRetryAt, permanent)
	if err != nil {
		return fmt.Errorf("record webhook failure: %w", err)
	}
	return nil
}

// ListDue returns unprocessed, retryable events whose retry time has passed
// or was never scheduled, oldest first.
func (r *WebhookEventRepo) ListDue(ctx context.Context, now time.Time, limit int) ([]domain.WebhookEvent, error) {
	query := `SELECT ` + webhookColumns + ` FROM webhook_events
		WHERE processed = FALSE AND permanently_failed = FALSE
			AND (next_retry_at IS NULL OR next_retry_at <= $1)
		ORDER BY created_at
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list due webhook events: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

// List serves the admin event listing.
func (r *WebhookEventRepo) List(ctx context.Context, params ports.WebhookListParams) ([]domain.WebhookEvent, int64, error) {
	where := `WHERE TRUE`
	var args []any

	if params.Processed != nil {
		args = append(args, *params.Processed)
		where += fmt.Sprintf(" AND processed = $%d", len(args))
	}
	if params.PermanentlyFailed != nil {
		args = append(args, *params.PermanentlyFailed)
		where += fmt.Sprintf(" AND permanently_failed = $%d", len(args))
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM webhook_events `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count webhook events: %w", err)
	}

	args = append(args, params.PageSize, (params.Page-1)*params.PageSize)
	query := fmt.Sprintf(`SELECT `+webhookColumns+` FROM webhook_events %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list webhook events: %w", err)
	}
	defer rows.Close()

	events, err := r.scanEvents(rows)
	return events, total, err
}

func (r *WebhookEventRepo) scanEvents(rows pgx.Rows) ([]domain.WebhookEvent, error) {
	var events []domain.WebhookEvent
	for rows.Next() {
		e := domain.WebhookEvent{}
		err := rows.Scan(
			&e.ID, &e.EventID, &e.EventType, &e.Source, &e.Payload, &e.Processed,
			&e.ProcessingAttempts, &e.LastError, &e.PermanentlyFailed,
			&e.NextRetryAt, &e.ProcessedAt, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan webhook event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
