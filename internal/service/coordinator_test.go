package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/internal/core/ports/mocks"
	"multipay-aggregator/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type coordinatorTestDeps struct {
	svc    *CoordinatorImpl
	ledger *mocks.MockIdempotencyLedger
	cache  *mocks.MockReplayCache
	ctrl   *gomock.Controller
}

func setupCoordinator(t *testing.T) *coordinatorTestDeps {
	ctrl := gomock.NewController(t)
	d := &coordinatorTestDeps{
		ledger: mocks.NewMockIdempotencyLedger(ctrl),
		cache:  mocks.NewMockReplayCache(ctrl),
		ctrl:   ctrl,
	}
	// Real fingerprinter: the coordinator's behavior depends on digest
	// equality, which is cheaper to exercise than to fake.
	d.svc = NewCoordinator(d.ledger, d.cache, NewFingerprintService(), time.Hour, zerolog.Nop())
	return d
}

type bookPayload struct {
	OfferID string `json:"offer_id"`
	UserID  int64  `json:"user_id"`
}

func mustFingerprint(t *testing.T, payload any) string {
	t.Helper()
	fp, err := NewFingerprintService().Fingerprint(payload)
	require.NoError(t, err)
	return fp
}

func appCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestCoordinator_Execute_FirstRequestRunsOperation(t *testing.T) {
	d := setupCoordinator(t)
	defer d.ctrl.Finish()

	payload := bookPayload{OfferID: "GA-412", UserID: 7}
	claimedAt := time.Now()

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	d.ledger.EXPECT().
		CreateProcessing(gomock.Any(), "req-1", domain.ResourceFlightBooking, mustFingerprint(t, payload), time.Hour).
		Return(&domain.IdempotencyRecord{
			Key:       "req-1",
			Status:    domain.IdempotencyProcessing,
			CreatedAt: claimedAt,
			ExpiresAt: claimedAt.Add(time.Hour),
		}, nil)
	d.ledger.EXPECT().
		Finalize(gomock.Any(), "req-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, at time.Time, outcome ports.LedgerOutcome) error {
			assert.True(t, at.Equal(claimedAt), "finalize must be fenced to the claim it belongs to")
			assert.Equal(t, domain.IdempotencyCompleted, outcome.Status)
			require.NotNil(t, outcome.ResourceID)
			assert.Equal(t, "BK-100", *outcome.ResourceID)
			return nil
		})
	d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	invocations := 0
	result, err := d.svc.Execute(context.Background(), "req-1", domain.ResourceFlightBooking, payload,
		func(ctx context.Context) (*ports.OperationResult, error) {
			invocations++
			return &ports.OperationResult{
				ResourceID: "BK-100",
				Response:   map[string]string{"booking_code": "BK-100"},
			}, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 1, invocations)
	assert.Equal(t, "BK-100", result.ResourceID)
	assert.False(t, result.Replayed)
	assert.JSONEq(t, `{"booking_code":"BK-100"}`, string(result.Response))
}

func TestCoordinator_Execute_RejectsMalformedKey(t *testing.T) {
	d := setupCoordinator(t)
	defer d.ctrl.Finish()

	for _, key := range []string{"", "has space", "semi;colon", string(make([]byte, 256))} {
		_, err := d.svc.Execute(context.Background(), key, domain.ResourceFlightBooking, bookPayload{},
			func(ctx context.Context) (*ports.OperationResult, error) {
				t.Fatal("operation must not run for a malformed key")
				return nil, nil
			})
		assert.Equal(t, "IDEM_001", appCode(t, err), "key %q", key)
	}
}

func TestCoordinator_Execute_ReplaysCompletedRecord(t *testing.T) {
	d := setupCoordinator(t)
	defer d.ctrl.Finish()

	payload := bookPayload{OfferID: "GA-412", UserID: 7}
	fp := mustFingerprint(t, payload)
	resourceID := "BK-100"

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	d.ledger.EXPECT().
		CreateProcessing(gomock.Any(), "req-1", domain.ResourceFlightBooking, fp, time.Hour).
		Return(nil, domain.ErrKeyConflict)
	d.ledger.EXPECT().Lookup(gomock.Any(), "req-1").Return(&domain.IdempotencyRecord{
		Key:                "req-1",
		ResourceType:       domain.ResourceFlightBooking,
		RequestFingerprint: fp,
		Status:             domain.IdempotencyCompleted,
		ResourceID:         &resourceID,
		ResponseData:       json.RawMessage(`{"booking_code":"BK-100"}`),
		ExpiresAt:          time.Now().Add(time.Hour),
	}, nil)
	d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := d.svc.Execute(context.Background(), "req-1", domain.ResourceFlightBooking, payload,
		func(ctx context.Context) (*ports.OperationResult, error) {
			t.Fatal("completed record must replay without re-executing")
			return nil, nil
		})

	require.NoError(t, err)
	assert.True(t, result.Replayed)
	assert.Equal(t, "BK-100", result.ResourceID)
	assert.JSONEq(t, `{"booking_code":"BK-100"}`, string(result.Response))
}

func TestCoordinator_Execute_FingerprintMismatchRejected(t *testing.T) {
	d := setupCoordinator(t)
	defer d.ctrl.Finish()

	original := bookPayload{OfferID: "GA-412", UserID: 7}
	altered := bookPayload{OfferID: "GA-999", UserID: 7}

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	d.ledger.EXPECT().
		CreateProcessing(gomock.Any(), "req-1", domain.ResourceFlightBooking, gomock.Any(), time.Hour).
		Return(nil, domain.ErrKeyConflict)
	d.ledger.EXPECT().Lookup(gomock.Any(), "req-1").Return(&domain.IdempotencyRecord{
		Key:                "req-1",
		ResourceType:       domain.ResourceFlightBooking,
		RequestFingerprint: mustFingerprint(t, original),
		Status:             domain.IdempotencyCompleted,
	}, nil)

	_, err := d.svc.Execute(context.Background(), "req-1", domain.ResourceFlightBooking, altered,
		func(ctx context.Context) (*ports.OperationResult, error) {
			t.Fatal("mismatched body must never execute")
			return nil, nil
		})

	assert.Equal(t, "IDEM_002", appCode(t, err))
}

func TestCoordinator_Execute_ResourceTypeMismatchRejected(t *testing.T) {
	d := setupCoordinator(t)
	defer d.ctrl.Finish()

	payload := bookPayload{OfferID: "GA-412", UserID: 7}
	fp := mustFingerprint(t, payload)

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	d.ledger.EXPECT().
		CreateProcessing(gomock.Any(), "req-1", domain.ResourceTrainBooking, fp, time.Hour).
		Return(nil, domain.ErrKeyConflict)
	d.ledger.EXPECT().Lookup(gomock.Any(), "req-1").Return(&domain.IdempotencyRecord{
		Key:                "req-1",
		ResourceType:       domain.ResourceFlightBooking,
		RequestFingerprint: fp,
		Status:             domain.IdempotencyCompleted,
	}, nil)

	_, err := d.svc.Execute(context.Background(), "req-1", domain.ResourceTrainBooking, payload,
		func(ctx context.Context) (*ports.OperationResult, error) {
			t.Fatal("cross-resource key reuse must never execute")
			return nil, nil
		})

	assert.Equal(t, "IDEM_002", appCode(t, err))
}

func TestCoordinator_Execute_ConcurrentDuplicateGetsInProgress(t *testing.T) {
	d := setupCoordinator(t)
	defer d.ctrl.Finish()

	payload := bookPayload{OfferID: "GA-412", UserID: 7}
	fp := mustFingerprint(t, payload)

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	d.ledger.EXPECT().
		CreateProcessing(gomock.Any(), "req-1", domain.ResourceFlightBooking, fp, time.Hour).
		Return(nil, domain.ErrKeyConflict)
	d.ledger.EXPECT().Lookup(gomock.Any(), "req-1").Return(&domain.IdempotencyRecord{
		Key:                "req-1",
		ResourceType:       domain.ResourceFlightBooking,
		RequestFingerprint: fp,
		Status:             domain.IdempotencyProcessing,
	}, nil)

	_, err := d.svc.Execute(context.Background(), "req-1", domain.ResourceFlightBooking, payload,
		func(ctx context.Context) (*ports.OperationResult, error) {
			t.Fatal("in-progress duplicate must not execute")
			return nil, nil
		})

	assert.Equal(t, "IDEM_003", appCode(t, err))
}

func TestCoordinator_Execute_FailedRecordRetriedAfterReclaim(t *testing.T) {
	d := setupCoordinator(t)
	defer d.ctrl.Finish()

	payload := bookPayload{OfferID: "GA-412", UserID: 7}
	fp := mustFingerprint(t, payload)

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	d.ledger.EXPECT().
		CreateProcessing(gomock.Any(), "req-1", domain.ResourceFlightBooking, fp, time.Hour).
		Return(nil, domain.ErrKeyConflict)
	d.ledger.EXPECT().Lookup(gomock.Any(), "req-1").Return(&domain.IdempotencyRecord{
		Key:                "req-1",
		ResourceType:       domain.ResourceFlightBooking,
		RequestFingerprint: fp,
		Status:             domain.IdempotencyFailed,
	}, nil)
	reclaimedAt := time.Now()
	d.ledger.EXPECT().ReclaimFailed(gomock.Any(), "req-1", time.Hour).Return(&domain.IdempotencyRecord{
		Key:       "req-1",
		Status:    domain.IdempotencyProcessing,
		CreatedAt: reclaimedAt,
		ExpiresAt: reclaimedAt.Add(time.Hour),
	}, nil)
	d.ledger.EXPECT().
		Finalize(gomock.Any(), "req-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, at time.Time, outcome ports.LedgerOutcome) error {
			assert.True(t, at.Equal(reclaimedAt), "finalize must carry the reclaimed window's timestamp")
			assert.Equal(t, domain.IdempotencyCompleted, outcome.Status)
			return nil
		})
	d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	invocations := 0
	result, err := d.svc.Execute(context.Background(), "req-1", domain.ResourceFlightBooking, payload,
		func(ctx context.Context) (*ports.OperationResult, error) {
			invocations++
			return &ports.OperationResult{ResourceID: "BK-101", Response: map[string]string{"ok": "yes"}}, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 1, invocations)
	assert.False(t, result.Replayed)
}

func TestCoordinator_Execute_LostReclaimRaceGetsInProgress(t *testing.T) {
	d := setupCoordinator(t)
	defer d.ctrl.Finish()

	payload := bookPayload{OfferID: "GA-412", UserID: 7}
	fp := mustFingerprint(t, payload)

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	d.ledger.EXPECT().
		CreateProcessing(gomock.Any(), "req-1", domain.ResourceFlightBooking, fp, time.Hour).
		Return(nil, domain.ErrKeyConflict)
	d.ledger.EXPECT().Lookup(gomock.Any(), "req-1").Return(&domain.IdempotencyRecord{
		Key:                "req-1",
		ResourceType:       domain.ResourceFlightBooking,
		RequestFingerprint: fp,
		Status:             domain.IdempotencyFailed,
	}, nil)
	d.ledger.EXPECT().ReclaimFailed(gomock.Any(), "req-1", time.Hour).Return(nil, domain.ErrNotProcessing)

	_, err := d.svc.Execute(context.Background(), "req-1", domain.ResourceFlightBooking, payload,
		func(ctx context.Context) (*ports.OperationResult, error) {
			t.Fatal("losing the reclaim race must not execute")
			return nil, nil
		})

	assert.Equal(t, "IDEM_003", appCode(t, err))
}

func TestCoordinator_Execute_OperationFailureFinalizedAndPropagated(t *testing.T) {
	d := setupCoordinator(t)
	defer d.ctrl.Finish()

	payload := bookPayload{OfferID: "GA-412", UserID: 7}
	opErr := errors.New("provider rejected booking")

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	d.ledger.EXPECT().
		CreateProcessing(gomock.Any(), "req-1", domain.ResourceFlightBooking, gomock.Any(), time.Hour).
		Return(&domain.IdempotencyRecord{
			Key:       "req-1",
			Status:    domain.IdempotencyProcessing,
			CreatedAt: time.Now(),
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
	d.ledger.EXPECT().
		Finalize(gomock.Any(), "req-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ time.Time, outcome ports.LedgerOutcome) error {
			assert.Equal(t, domain.IdempotencyFailed, outcome.Status)
			require.NotNil(t, outcome.FailureReason)
			assert.Equal(t, "provider rejected booking", *outcome.FailureReason)
			return nil
		})

	_, err := d.svc.Execute(context.Background(), "req-1", domain.ResourceFlightBooking, payload,
		func(ctx context.Context) (*ports.OperationResult, error) {
			return nil, opErr
		})

	assert.ErrorIs(t, err, opErr)
}

func TestCoordinator_Execute_CacheHitReplaysWithoutLedger(t *testing.T) {
	d := setupCoordinator(t)
	defer d.ctrl.Finish()

	payload := bookPayload{OfferID: "GA-412", UserID: 7}
	entry, err := json.Marshal(replayEntry{
		Fingerprint: mustFingerprint(t, payload),
		ResourceID:  "BK-100",
		Response:    json.RawMessage(`{"booking_code":"BK-100"}`),
	})
	require.NoError(t, err)

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(entry, nil)

	result, err := d.svc.Execute(context.Background(), "req-1", domain.ResourceFlightBooking, payload,
		func(ctx context.Context) (*ports.OperationResult, error) {
			t.Fatal("cache hit must not execute")
			return nil, nil
		})

	require.NoError(t, err)
	assert.True(t, result.Replayed)
	assert.Equal(t, "BK-100", result.ResourceID)
}

func TestCoordinator_Execute_CacheHitWithDifferentBodyRejected(t *testing.T) {
	d := setupCoordinator(t)
	defer d.ctrl.Finish()

	entry, err := json.Marshal(replayEntry{
		Fingerprint: mustFingerprint(t, bookPayload{OfferID: "GA-412", UserID: 7}),
		ResourceID:  "BK-100",
		Response:    json.RawMessage(`{}`),
	})
	require.NoError(t, err)

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(entry, nil)

	_, err = d.svc.Execute(context.Background(), "req-1", domain.ResourceFlightBooking,
		bookPayload{OfferID: "GA-999", UserID: 7},
		func(ctx context.Context) (*ports.OperationResult, error) {
			t.Fatal("mismatched body must never execute")
			return nil, nil
		})

	assert.Equal(t, "IDEM_002", appCode(t, err))
}

func TestCoordinator_Execute_CacheErrorFallsThroughToLedger(t *testing.T) {
	d := setupCoordinator(t)
	defer d.ctrl.Finish()

	payload := bookPayload{OfferID: "GA-412", UserID: 7}

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
	d.ledger.EXPECT().
		CreateProcessing(gomock.Any(), "req-1", domain.ResourceFlightBooking, gomock.Any(), time.Hour).
		Return(&domain.IdempotencyRecord{
			Key:       "req-1",
			Status:    domain.IdempotencyProcessing,
			CreatedAt: time.Now(),
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
	d.ledger.EXPECT().Finalize(gomock.Any(), "req-1", gomock.Any(), gomock.Any()).Return(nil)
	d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := d.svc.Execute(context.Background(), "req-1", domain.ResourceFlightBooking, payload,
		func(ctx context.Context) (*ports.OperationResult, error) {
			return &ports.OperationResult{ResourceID: "BK-100", Response: map[string]string{}}, nil
		})

	require.NoError(t, err)
	assert.False(t, result.Replayed)
}

func TestCoordinator_Execute_PurgedRecordRetriesCreation(t *testing.T) {
	d := setupCoordinator(t)
	defer d.ctrl.Finish()

	payload := bookPayload{OfferID: "GA-412", UserID: 7}
	fp := mustFingerprint(t, payload)

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	gomock.InOrder(
		d.ledger.EXPECT().
			CreateProcessing(gomock.Any(), "req-1", domain.ResourceFlightBooking, fp, time.Hour).
			Return(nil, domain.ErrKeyConflict),
		d.ledger.EXPECT().Lookup(gomock.Any(), "req-1").Return(nil, nil),
		d.ledger.EXPECT().
			CreateProcessing(gomock.Any(), "req-1", domain.ResourceFlightBooking, fp, time.Hour).
			Return(&domain.IdempotencyRecord{
				Key:       "req-1",
				Status:    domain.IdempotencyProcessing,
				CreatedAt: time.Now(),
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil),
	)
	d.ledger.EXPECT().Finalize(gomock.Any(), "req-1", gomock.Any(), gomock.Any()).Return(nil)
	d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	invocations := 0
	_, err := d.svc.Execute(context.Background(), "req-1", domain.ResourceFlightBooking, payload,
		func(ctx context.Context) (*ports.OperationResult, error) {
			invocations++
			return &ports.OperationResult{ResourceID: "BK-100", Response: map[string]string{}}, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 1, invocations)
}

func TestCoordinator_Execute_FinalizeOnTerminalRecordSurfacesLedgerState(t *testing.T) {
	d := setupCoordinator(t)
	defer d.ctrl.Finish()

	payload := bookPayload{OfferID: "GA-412", UserID: 7}

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	d.ledger.EXPECT().
		CreateProcessing(gomock.Any(), "req-1", domain.ResourceFlightBooking, gomock.Any(), time.Hour).
		Return(&domain.IdempotencyRecord{
			Key:       "req-1",
			Status:    domain.IdempotencyProcessing,
			CreatedAt: time.Now(),
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
	d.ledger.EXPECT().Finalize(gomock.Any(), "req-1", gomock.Any(), gomock.Any()).Return(domain.ErrNotProcessing)

	_, err := d.svc.Execute(context.Background(), "req-1", domain.ResourceFlightBooking, payload,
		func(ctx context.Context) (*ports.OperationResult, error) {
			return &ports.OperationResult{ResourceID: "BK-100", Response: map[string]string{}}, nil
		})

	assert.Equal(t, "IDEM_004", appCode(t, err))
}

func TestCoordinator_Execute_ReplayCacheBoundedByLedgerExpiry(t *testing.T) {
	d := setupCoordinator(t)
	defer d.ctrl.Finish()

	payload := bookPayload{OfferID: "GA-412", UserID: 7}
	fp := mustFingerprint(t, payload)
	resourceID := "BK-100"

	// The record has 10 minutes left; a cache entry re-created during a
	// ledger replay must not be granted the coordinator's full hour, or it
	// would keep replaying after the record expires and the key becomes
	// reusable as new.
	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	d.ledger.EXPECT().
		CreateProcessing(gomock.Any(), "req-1", domain.ResourceFlightBooking, fp, time.Hour).
		Return(nil, domain.ErrKeyConflict)
	d.ledger.EXPECT().Lookup(gomock.Any(), "req-1").Return(&domain.IdempotencyRecord{
		Key:                "req-1",
		ResourceType:       domain.ResourceFlightBooking,
		RequestFingerprint: fp,
		Status:             domain.IdempotencyCompleted,
		ResourceID:         &resourceID,
		ResponseData:       json.RawMessage(`{"booking_code":"BK-100"}`),
		ExpiresAt:          time.Now().Add(10 * time.Minute),
	}, nil)
	d.cache.EXPECT().
		Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []byte, ttl time.Duration) error {
			assert.LessOrEqual(t, ttl, 10*time.Minute)
			assert.Greater(t, ttl, 9*time.Minute)
			return nil
		})

	result, err := d.svc.Execute(context.Background(), "req-1", domain.ResourceFlightBooking, payload,
		func(ctx context.Context) (*ports.OperationResult, error) {
			t.Fatal("completed record must replay without re-executing")
			return nil, nil
		})

	require.NoError(t, err)
	assert.True(t, result.Replayed)
}

func TestCoordinator_Execute_SlowOperationCachedForRemainingWindow(t *testing.T) {
	d := setupCoordinator(t)
	defer d.ctrl.Finish()

	payload := bookPayload{OfferID: "GA-412", UserID: 7}
	claimedAt := time.Now().Add(-50 * time.Minute)

	// The operation finished with only a sliver of the claim's window
	// left. The cached result gets that sliver, not a fresh hour.
	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	d.ledger.EXPECT().
		CreateProcessing(gomock.Any(), "req-1", domain.ResourceFlightBooking, gomock.Any(), time.Hour).
		Return(&domain.IdempotencyRecord{
			Key:       "req-1",
			Status:    domain.IdempotencyProcessing,
			CreatedAt: claimedAt,
			ExpiresAt: claimedAt.Add(time.Hour),
		}, nil)
	d.ledger.EXPECT().Finalize(gomock.Any(), "req-1", gomock.Any(), gomock.Any()).Return(nil)
	d.cache.EXPECT().
		Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []byte, ttl time.Duration) error {
			assert.LessOrEqual(t, ttl, 10*time.Minute)
			assert.Greater(t, ttl, 9*time.Minute)
			return nil
		})

	_, err := d.svc.Execute(context.Background(), "req-1", domain.ResourceFlightBooking, payload,
		func(ctx context.Context) (*ports.OperationResult, error) {
			return &ports.OperationResult{ResourceID: "BK-100", Response: map[string]string{}}, nil
		})

	require.NoError(t, err)
}
