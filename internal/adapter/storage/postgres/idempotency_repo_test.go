package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"idempotency_key", "resource_type", "request_fingerprint", "status",
		"resource_id", "response_data", "failure_reason", "created_at", "expires_at",
	})
}

func TestLedgerRepo_Lookup(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM idempotency_records").
		WithArgs("req-1", pgxmock.AnyArg()).
		WillReturnRows(ledgerRows().AddRow(
			"req-1", string(domain.ResourcePpobPayment), "fp-abc", string(domain.IdempotencyCompleted),
			ptr("PPB-1"), []byte(`{"ok":true}`), nil, now, now.Add(time.Hour),
		))

	rec, err := repo.Lookup(context.Background(), "req-1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, domain.IdempotencyCompleted, rec.Status)
	assert.Equal(t, "fp-abc", rec.RequestFingerprint)
	require.NotNil(t, rec.ResourceID)
	assert.Equal(t, "PPB-1", *rec.ResourceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_Lookup_Absent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM idempotency_records").
		WithArgs("ghost", pgxmock.AnyArg()).
		WillReturnRows(ledgerRows())

	rec, err := repo.Lookup(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, rec)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_CreateProcessing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("INSERT INTO idempotency_records").
		WithArgs("req-1", string(domain.ResourceBankTransfer), "fp-abc", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(ledgerRows().AddRow(
			"req-1", string(domain.ResourceBankTransfer), "fp-abc", string(domain.IdempotencyProcessing),
			nil, nil, nil, now, now.Add(time.Hour),
		))

	rec, err := repo.CreateProcessing(context.Background(), "req-1", domain.ResourceBankTransfer, "fp-abc", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, domain.IdempotencyProcessing, rec.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_CreateProcessing_Conflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	// An unexpired row makes the conditional upsert match nothing.
	mock.ExpectQuery("INSERT INTO idempotency_records").
		WithArgs("req-1", string(domain.ResourceBankTransfer), "fp-abc", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(ledgerRows())

	_, err = repo.CreateProcessing(context.Background(), "req-1", domain.ResourceBankTransfer, "fp-abc", time.Hour)
	assert.ErrorIs(t, err, domain.ErrKeyConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_Finalize(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	claimedAt := time.Now().UTC().Truncate(time.Microsecond)
	outcome := ports.CompletedOutcome("PPB-1", []byte(`{"ok":true}`))

	// The UPDATE is fenced to the claim's created_at.
	mock.ExpectExec(`(?s)UPDATE idempotency_records.+status = 'processing' AND created_at =`).
		WithArgs("req-1", string(domain.IdempotencyCompleted), outcome.ResourceID, outcome.ResponseData, (*string)(nil), claimedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.Finalize(context.Background(), "req-1", claimedAt, outcome)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_Finalize_NotProcessing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	claimedAt := time.Now().UTC().Truncate(time.Microsecond)
	outcome := ports.FailedOutcome("provider timeout")

	mock.ExpectExec("UPDATE idempotency_records").
		WithArgs("req-1", string(domain.IdempotencyFailed), (*string)(nil), json.RawMessage(nil), outcome.FailureReason, claimedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Finalize(context.Background(), "req-1", claimedAt, outcome)
	assert.ErrorIs(t, err, domain.ErrNotProcessing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_Finalize_SupersededClaim(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	// A claim whose window expired and was taken over: the row is back in
	// processing, but under a newer created_at, so the stale finalize
	// matches nothing.
	staleClaim := time.Now().UTC().Add(-2 * time.Hour).Truncate(time.Microsecond)
	outcome := ports.CompletedOutcome("BK-9", []byte(`{"late":true}`))

	mock.ExpectExec("UPDATE idempotency_records").
		WithArgs("req-1", string(domain.IdempotencyCompleted), outcome.ResourceID, outcome.ResponseData, (*string)(nil), staleClaim).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Finalize(context.Background(), "req-1", staleClaim, outcome)
	assert.ErrorIs(t, err, domain.ErrNotProcessing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ReclaimFailed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("UPDATE idempotency_records").
		WithArgs("req-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(ledgerRows().AddRow(
			"req-1", string(domain.ResourcePpobPayment), "fp-abc", string(domain.IdempotencyProcessing),
			nil, nil, nil, now, now.Add(time.Hour),
		))

	rec, err := repo.ReclaimFailed(context.Background(), "req-1", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, domain.IdempotencyProcessing, rec.Status)
	assert.Equal(t, now, rec.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ReclaimFailed_LostRace(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)

	mock.ExpectQuery("UPDATE idempotency_records").
		WithArgs("req-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(ledgerRows())

	_, err = repo.ReclaimFailed(context.Background(), "req-1", time.Hour)
	assert.ErrorIs(t, err, domain.ErrNotProcessing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_PurgeExpired(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	now := time.Now()

	mock.ExpectExec("DELETE FROM idempotency_records").
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	purged, err := repo.PurgeExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func ptr[T any](v T) *T { return &v }
