package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/pkg/apperror"

	"github.com/rs/zerolog"
)

// CoordinatorImpl implements ports.Coordinator: at-most-once execution of a
// side-effecting operation under a client-supplied idempotency key.
//
// The ledger, not in-process state, is the source of truth; the "lock" is
// the processing record itself, released only by Finalize or expiry. This
// holds across process restarts and across concurrently deployed instances.
type CoordinatorImpl struct {
	ledger ports.IdempotencyLedger
	cache  ports.ReplayCache
	fp     ports.FingerprintService
	ttl    time.Duration
	log    zerolog.Logger
}

// NewCoordinator creates a new CoordinatorImpl.
func NewCoordinator(
	ledger ports.IdempotencyLedger,
	cache ports.ReplayCache,
	fp ports.FingerprintService,
	ttl time.Duration,
	log zerolog.Logger,
) *CoordinatorImpl {
	return &CoordinatorImpl{
		ledger: ledger,
		cache:  cache,
		fp:     fp,
		ttl:    ttl,
		log:    log,
	}
}

// replayEntry is the cached shape of a completed execution. The fingerprint
// travels with it so key reuse with a different body is caught on the fast
// path too.
type replayEntry struct {
	Fingerprint string          `json:"fingerprint"`
	ResourceID  string          `json:"resource_id"`
	Response    json.RawMessage `json:"response"`
}

// Execute runs op at most once under key. Duplicate submissions with a
// matching fingerprint replay the recorded outcome; a concurrent duplicate
// is rejected with InProgress rather than queued.
func (c *CoordinatorImpl) Execute(
	ctx context.Context,
	key string,
	resource domain.ResourceType,
	payload any,
	op ports.Operation,
) (*ports.ExecutionResult, error) {
	if !domain.ValidIdempotencyKey(key) {
		return nil, apperror.ErrInvalidIdempotencyKey()
	}

	fingerprint, err := c.fp.Fingerprint(payload)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fingerprint request: %w", err))
	}

	// Fast path: completed results cached in Redis. Best-effort; any cache
	// error degrades to the ledger.
	if cached, cerr := c.cache.Get(ctx, cacheKey(resource, key)); cerr != nil {
		c.log.Warn().Err(cerr).Str("key", key).Msg("replay cache read failed, falling through to ledger")
	} else if cached != nil {
		var entry replayEntry
		if uerr := json.Unmarshal(cached, &entry); uerr == nil {
			if entry.Fingerprint != fingerprint {
				return nil, apperror.ErrKeyReuseMismatch()
			}
			return &ports.ExecutionResult{
				ResourceID: entry.ResourceID,
				Response:   entry.Response,
				Replayed:   true,
			}, nil
		}
	}

	// Two passes: a conflict whose record vanishes before lookup (purged
	// right after expiry) retries creation once.
	for attempt := 0; attempt < 2; attempt++ {
		claim, err := c.ledger.CreateProcessing(ctx, key, resource, fingerprint, c.ttl)
		if err == nil {
			return c.runOperation(ctx, key, resource, fingerprint, claim, op)
		}
		if !errors.Is(err, domain.ErrKeyConflict) {
			return nil, apperror.InternalError(fmt.Errorf("ledger create: %w", err))
		}

		rec, err := c.ledger.Lookup(ctx, key)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("ledger lookup: %w", err))
		}
		if rec == nil {
			continue
		}

		if rec.ResourceType != resource || rec.RequestFingerprint != fingerprint {
			return nil, apperror.ErrKeyReuseMismatch()
		}

		switch rec.Status {
		case domain.IdempotencyCompleted:
			c.cacheResult(ctx, key, resource, fingerprint, rec)
			result := &ports.ExecutionResult{Response: rec.ResponseData, Replayed: true}
			if rec.ResourceID != nil {
				result.ResourceID = *rec.ResourceID
			}
			return result, nil

		case domain.IdempotencyProcessing:
			return nil, apperror.ErrRequestInProgress()

		case domain.IdempotencyFailed:
			// A failed attempt is retryable, but only one retry may take
			// over the record.
			claim, rerr := c.ledger.ReclaimFailed(ctx, key, c.ttl)
			if rerr != nil {
				if errors.Is(rerr, domain.ErrNotProcessing) {
					return nil, apperror.ErrRequestInProgress()
				}
				return nil, apperror.InternalError(fmt.Errorf("ledger reclaim: %w", rerr))
			}
			return c.runOperation(ctx, key, resource, fingerprint, claim, op)
		}
	}

	return nil, apperror.ErrRequestInProgress()
}

// runOperation is the only place the external side effect happens. The
// caller holds the processing record (claim) at this point; its created_at
// fences every Finalize so a takeover after expiry cannot be overwritten.
func (c *CoordinatorImpl) runOperation(
	ctx context.Context,
	key string,
	resource domain.ResourceType,
	fingerprint string,
	claim *domain.IdempotencyRecord,
	op ports.Operation,
) (*ports.ExecutionResult, error) {
	opResult, opErr := op(ctx)
	if opErr != nil {
		if ferr := c.ledger.Finalize(ctx, key, claim.CreatedAt, ports.FailedOutcome(opErr.Error())); ferr != nil {
			return nil, c.finalizeError(key, ferr)
		}
		// Retry is the caller's decision: a fresh Execute with the same key
		// re-enters through ReclaimFailed.
		return nil, opErr
	}

	respJSON, err := json.Marshal(opResult.Response)
	if err != nil {
		reason := fmt.Sprintf("encode response: %v", err)
		if ferr := c.ledger.Finalize(ctx, key, claim.CreatedAt, ports.FailedOutcome(reason)); ferr != nil {
			return nil, c.finalizeError(key, ferr)
		}
		return nil, apperror.InternalError(fmt.Errorf("encode operation response: %w", err))
	}

	if ferr := c.ledger.Finalize(ctx, key, claim.CreatedAt, ports.CompletedOutcome(opResult.ResourceID, respJSON)); ferr != nil {
		return nil, c.finalizeError(key, ferr)
	}

	c.cacheResult(ctx, key, resource, fingerprint, &domain.IdempotencyRecord{
		ResourceID:   &opResult.ResourceID,
		ResponseData: respJSON,
		ExpiresAt:    claim.ExpiresAt,
	})

	return &ports.ExecutionResult{
		ResourceID: opResult.ResourceID,
		Response:   respJSON,
	}, nil
}

// finalizeError classifies a failed Finalize. ErrNotProcessing means the
// at-most-once invariant was violated somewhere; it is never absorbed.
func (c *CoordinatorImpl) finalizeError(key string, err error) error {
	if errors.Is(err, domain.ErrNotProcessing) {
		c.log.Error().Err(err).Str("key", key).Msg("finalize hit absent or terminal ledger record; coordination invariant violated")
		return apperror.ErrLedgerState(err)
	}
	return apperror.InternalError(fmt.Errorf("ledger finalize: %w", err))
}

// cacheResult stores a completed outcome for fast replay. Best-effort. The
// entry's lifetime is the ledger record's remaining window, never the full
// TTL: once the record expires the key is reusable as new, and a cache
// entry outliving it would replay a result the ledger no longer backs.
func (c *CoordinatorImpl) cacheResult(ctx context.Context, key string, resource domain.ResourceType, fingerprint string, rec *domain.IdempotencyRecord) {
	remaining := time.Until(rec.ExpiresAt)
	if remaining <= 0 {
		return
	}
	entry := replayEntry{
		Fingerprint: fingerprint,
		Response:    rec.ResponseData,
	}
	if rec.ResourceID != nil {
		entry.ResourceID = *rec.ResourceID
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, cacheKey(resource, key), raw, remaining); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("failed to cache replay entry")
	}
}

func cacheKey(resource domain.ResourceType, key string) string {
	return string(resource) + ":" + key
}
