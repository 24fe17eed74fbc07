package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"multipay-aggregator/config"
	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.GatewayConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}, zerolog.Nop())
}

func TestClient_SearchFlights(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/flights/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "CGK", r.URL.Query().Get("origin"))
		assert.Equal(t, "DPS", r.URL.Query().Get("destination"))
		assert.Equal(t, "2", r.URL.Query().Get("passengers"))

		json.NewEncoder(w).Encode(map[string]any{
			"offers": []ports.FlightOffer{
				{FlightID: "GA-412", Airline: "Garuda", Origin: "CGK", Dest: "DPS", Price: 1_250_000},
			},
		})
	})

	offers, err := client.SearchFlights(context.Background(), ports.FlightSearchQuery{
		Origin:      "CGK",
		Destination: "DPS",
		Date:        "2026-09-01",
		Passengers:  2,
	})
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "GA-412", offers[0].FlightID)
}

func TestClient_BookFlight_CarriesRawResponse(t *testing.T) {
	holdUntil := time.Now().Add(30 * time.Minute).UTC().Truncate(time.Second)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/flights/book", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body bookingRequestBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "GA-412", body.OfferID)
		assert.Equal(t, "FL-AAAA1111", body.BookingCode)
		require.Len(t, body.Passengers, 1)

		json.NewEncoder(w).Encode(map[string]any{
			"external_ref": "PRV-77",
			"total_amount": 1_250_000,
			"hold_until":   holdUntil,
			"pnr":          "ABCDEF",
		})
	})

	result, err := client.BookFlight(context.Background(), ports.GatewayBookingRequest{
		OfferID:     "GA-412",
		BookingCode: "FL-AAAA1111",
		Passengers:  []domain.Passenger{{FirstName: "Budi", LastName: "Santoso"}},
		ContactName: "Budi Santoso",
	})
	require.NoError(t, err)
	assert.Equal(t, "PRV-77", result.ExternalRef)
	assert.Equal(t, int64(1_250_000), result.TotalAmount)
	require.NotNil(t, result.HoldUntil)
	assert.True(t, holdUntil.Equal(*result.HoldUntil))

	// The raw provider body travels with the result for persistence.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(result.Raw, &raw))
	assert.Equal(t, "ABCDEF", raw["pnr"])
}

func TestClient_PayBill_PendingStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/ppob/pay", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "PLN-POSTPAID", body["product_code"])
		assert.Equal(t, "PPB-ABC123", body["transaction_id"])

		json.NewEncoder(w).Encode(map[string]any{
			"external_ref": "PRV-P1",
			"status":       "pending",
		})
	})

	result, err := client.PayBill(context.Background(), ports.GatewayPayRequest{
		ProductCode:   "PLN-POSTPAID",
		CustomerID:    "12345",
		Amount:        152_500,
		TransactionID: "PPB-ABC123",
	})
	require.NoError(t, err)
	assert.Equal(t, "PRV-P1", result.ExternalRef)
	assert.True(t, result.Pending)
}

func TestClient_Transfer_SynchronousCompletion(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"external_ref": "PRV-TR1",
			"status":       "completed",
		})
	})

	result, err := client.Transfer(context.Background(), ports.GatewayTransferRequest{
		BankCode:      "BCA",
		AccountNumber: "1234567890",
		AccountName:   "SITI AMINAH",
		Amount:        500_000,
		TransactionID: "TRF-XYZ789",
	})
	require.NoError(t, err)
	assert.False(t, result.Pending)
}

func TestClient_InquireBill_ProviderRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{
			"error_code": "BILL_NOT_FOUND",
			"message":    "no outstanding bill for customer",
		})
	})

	_, err := client.InquireBill(context.Background(), "PLN-POSTPAID", "00000")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PROV_001", appErr.Code)
	assert.Contains(t, appErr.Message, "BILL_NOT_FOUND")
}

func TestClient_RejectionWithoutEnvelopeStillStructured(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad request"))
	})

	_, err := client.ListBanks(context.Background())
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PROV_001", appErr.Code)
	assert.Contains(t, appErr.Message, "400")
}

func TestClient_ServerErrorMapsToUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ListPpobProducts(context.Background())
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PROV_002", appErr.Code)
}

func TestClient_ConnectionRefusedMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // closed server: dial fails

	client := NewClient(config.GatewayConfig{BaseURL: srv.URL, APIKey: "k"}, zerolog.Nop())
	_, err := client.ListBanks(context.Background())
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PROV_002", appErr.Code)
}

func TestClient_IssueTicket(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tickets/issue", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "PRV-77", body["external_ref"])

		json.NewEncoder(w).Encode(map[string]any{
			"external_ref": "PRV-77",
			"tickets": []map[string]string{
				{"ticket_number": "TKT-001", "ticket_url": "https://tickets.example.com/TKT-001"},
			},
		})
	})

	result, err := client.IssueTicket(context.Background(), "PRV-77")
	require.NoError(t, err)
	require.Len(t, result.Tickets, 1)
	assert.Equal(t, "TKT-001", result.Tickets[0].TicketNumber)
}

func TestClient_ListPulsaProducts_FiltersByOperator(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "telkomsel", r.URL.Query().Get("operator"))
		json.NewEncoder(w).Encode(map[string]any{
			"products": []domain.PulsaProduct{
				{Code: "TSEL-50", Operator: "telkomsel", Denomination: 50_000, Price: 51_500},
			},
		})
	})

	products, err := client.ListPulsaProducts(context.Background(), "telkomsel")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "TSEL-50", products[0].Code)
}
