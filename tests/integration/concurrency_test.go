package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"multipay-aggregator/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentDuplicateSubmissions fires many concurrent booking requests
// carrying the same idempotency key and body. The provider must be hit
// exactly once: every caller either gets the recorded receipt (fresh or
// replayed) or a 409 telling it the request is still in flight.
func TestConcurrentDuplicateSubmissions(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.registerAndLogin(t, "concurrent@example.com")

	concurrency := 50

	var wg sync.WaitGroup
	var created atomic.Int64
	var inProgress atomic.Int64
	var other atomic.Int64
	codes := make([]string, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			resp := app.bookFlight(t, token, "shared-key")
			defer resp.Body.Close()
			raw, _ := io.ReadAll(resp.Body)

			switch resp.StatusCode {
			case http.StatusCreated:
				created.Add(1)
				var body struct {
					Data struct {
						BookingCode string `json:"booking_code"`
					} `json:"data"`
				}
				if json.Unmarshal(raw, &body) == nil {
					codes[idx] = body.Data.BookingCode
				}
			case http.StatusConflict:
				inProgress.Add(1)
			default:
				other.Add(1)
			}
		}(i)
	}
	wg.Wait()

	// The at-most-once guarantee: one provider call, no unexpected errors.
	assert.Equal(t, int64(1), app.provider.bookCalls.Load(), "provider must execute the booking exactly once")
	assert.Equal(t, int64(0), other.Load(), "no request may fail with an unexpected status")
	require.GreaterOrEqual(t, created.Load(), int64(1), "at least the winner must receive the receipt")

	// Every successful response carries the same booking code.
	var winner string
	for _, code := range codes {
		if code == "" {
			continue
		}
		if winner == "" {
			winner = code
			continue
		}
		assert.Equal(t, winner, code)
	}

	// Exactly one booking row exists. Each test app starts empty, so the
	// first registered user always has id 1.
	bookings, total, err := app.bookings.List(context.Background(), ports.BookingListParams{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, bookings, 1)
	assert.Equal(t, winner, bookings[0].BookingCode)

	t.Logf("created=%d in_progress=%d", created.Load(), inProgress.Load())
}

// TestConcurrentDistinctKeys verifies independent keys do not serialize
// against each other: every request executes.
func TestConcurrentDistinctKeys(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.registerAndLogin(t, "distinct@example.com")

	concurrency := 20

	var wg sync.WaitGroup
	var created atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			resp := app.bookFlight(t, token, fmt.Sprintf("distinct-key-%d", idx))
			defer resp.Body.Close()
			_, _ = io.ReadAll(resp.Body)
			if resp.StatusCode == http.StatusCreated {
				created.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(concurrency), created.Load())
	assert.Equal(t, int64(concurrency), app.provider.bookCalls.Load())
}

// TestFailedAttemptIsRetryable drives an operation to failure, then retries
// with the same key and expects exactly one successful re-execution.
func TestFailedAttemptIsRetryable(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.registerAndLogin(t, "retry@example.com")

	// Take the provider down so the first attempt fails.
	app.provider.server.Close()

	body := []byte(`{"product_code":"PLN_POSTPAID","customer_id":"543210987654"}`)
	req, _ := http.NewRequest(http.MethodPost, app.server.URL+"/api/v1/ppob/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Idempotency-Key", "retry-key")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	// Same key again: the failed ledger record is reclaimed and the
	// operation re-executes. Still down, so it fails again rather than
	// replaying the failure blindly.
	req2, _ := http.NewRequest(http.MethodPost, app.server.URL+"/api/v1/ppob/pay", bytes.NewReader(body))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("Authorization", "Bearer "+token)
	req2.Header.Set("Idempotency-Key", "retry-key")
	resp2, err := http.DefaultClient.Do(req2)
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp2.StatusCode)
}
