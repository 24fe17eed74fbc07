// Package provider implements the outbound HTTP client for the external
// settlement provider. One REST endpoint per gateway operation; the provider
// authenticates us with a static API key header.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"multipay-aggregator/config"
	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/pkg/apperror"

	"github.com/rs/zerolog"
)

const apiKeyHeader = "X-Api-Key"

// Client talks to the settlement provider's REST API. It implements
// ports.SettlementGateway.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient builds a gateway client from configuration. A zero timeout
// defaults to 15s so a hung provider can never stall a request forever.
func NewClient(cfg config.GatewayConfig, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("component", "settlement_gateway").Logger(),
	}
}

// providerError is the provider's error envelope on non-2xx responses.
type providerError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("encoding gateway request: %w", err))
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("building gateway request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("gateway request failed")
		return apperror.ErrProviderUnavailable(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apperror.ErrProviderUnavailable(fmt.Errorf("reading gateway response: %w", err))
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return apperror.ErrProviderUnavailable(fmt.Errorf("decoding gateway response: %w", err))
		}
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var pe providerError
		if err := json.Unmarshal(respBody, &pe); err != nil || pe.Code == "" {
			pe = providerError{Code: strconv.Itoa(resp.StatusCode), Message: http.StatusText(resp.StatusCode)}
		}
		c.log.Warn().Str("path", path).Str("provider_code", pe.Code).Msg("gateway rejected request")
		return apperror.ErrProviderRejected(pe.Code, pe.Message)
	default:
		c.log.Error().Str("path", path).Int("status", resp.StatusCode).Msg("gateway server error")
		return apperror.ErrProviderUnavailable(fmt.Errorf("gateway returned status %d", resp.StatusCode))
	}
}

// --- Flights ---

func (c *Client) SearchFlights(ctx context.Context, q ports.FlightSearchQuery) ([]ports.FlightOffer, error) {
	query := url.Values{
		"origin":      {q.Origin},
		"destination": {q.Destination},
		"date":        {q.Date},
		"passengers":  {strconv.Itoa(q.Passengers)},
	}
	var out struct {
		Offers []ports.FlightOffer `json:"offers"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/flights/search", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Offers, nil
}

func (c *Client) PriceFlight(ctx context.Context, flightID string, passengers int) (*ports.PriceQuote, error) {
	query := url.Values{"passengers": {strconv.Itoa(passengers)}}
	var out ports.PriceQuote
	path := "/v1/flights/" + url.PathEscape(flightID) + "/price"
	if err := c.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BookFlight(ctx context.Context, req ports.GatewayBookingRequest) (*ports.GatewayBookingResult, error) {
	return c.book(ctx, "/v1/flights/book", req)
}

// --- Trains ---

func (c *Client) SearchTrains(ctx context.Context, q ports.TrainSearchQuery) ([]ports.TrainSchedule, error) {
	query := url.Values{
		"origin":      {q.Origin},
		"destination": {q.Destination},
		"date":        {q.Date},
	}
	if q.Class != "" {
		query.Set("class", q.Class)
	}
	var out struct {
		Schedules []ports.TrainSchedule `json:"schedules"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/trains/search", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Schedules, nil
}

func (c *Client) BookTrain(ctx context.Context, req ports.GatewayBookingRequest) (*ports.GatewayBookingResult, error) {
	return c.book(ctx, "/v1/trains/book", req)
}

type bookingRequestBody struct {
	OfferID     string             `json:"offer_id"`
	BookingCode string             `json:"booking_code"`
	Passengers  []domain.Passenger `json:"passengers"`
	ContactName string             `json:"contact_name"`
	ContactTel  string             `json:"contact_tel"`
}

type bookingResponseBody struct {
	ExternalRef string     `json:"external_ref"`
	TotalAmount int64      `json:"total_amount"`
	HoldUntil   *time.Time `json:"hold_until,omitempty"`
}

func (c *Client) book(ctx context.Context, path string, req ports.GatewayBookingRequest) (*ports.GatewayBookingResult, error) {
	body := bookingRequestBody{
		OfferID:     req.OfferID,
		BookingCode: req.BookingCode,
		Passengers:  req.Passengers,
		ContactName: req.ContactName,
		ContactTel:  req.ContactTel,
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, path, nil, body, &raw); err != nil {
		return nil, err
	}
	var out bookingResponseBody
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("decoding booking response: %w", err))
	}
	return &ports.GatewayBookingResult{
		ExternalRef: out.ExternalRef,
		TotalAmount: out.TotalAmount,
		HoldUntil:   out.HoldUntil,
		Raw:         raw,
	}, nil
}

// --- Ticketing ---

func (c *Client) IssueTicket(ctx context.Context, externalRef string) (*ports.GatewayTicketResult, error) {
	body := map[string]string{"external_ref": externalRef}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/v1/tickets/issue", nil, body, &raw); err != nil {
		return nil, err
	}
	var out struct {
		ExternalRef string               `json:"external_ref"`
		Tickets     []ports.GatewayTicket `json:"tickets"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("decoding ticket response: %w", err))
	}
	return &ports.GatewayTicketResult{
		ExternalRef: out.ExternalRef,
		Tickets:     out.Tickets,
		Raw:         raw,
	}, nil
}

// --- PPOB ---

func (c *Client) ListPpobProducts(ctx context.Context) ([]domain.PpobProduct, error) {
	var out struct {
		Products []domain.PpobProduct `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/ppob/products", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) InquireBill(ctx context.Context, productCode, customerID string) (*domain.BillInfo, error) {
	query := url.Values{
		"product_code": {productCode},
		"customer_id":  {customerID},
	}
	var out domain.BillInfo
	if err := c.do(ctx, http.MethodGet, "/v1/ppob/inquiry", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PayBill(ctx context.Context, req ports.GatewayPayRequest) (*ports.GatewaySettleResult, error) {
	body := map[string]any{
		"product_code":   req.ProductCode,
		"customer_id":    req.CustomerID,
		"amount":         req.Amount,
		"transaction_id": req.TransactionID,
	}
	return c.settle(ctx, "/v1/ppob/pay", body)
}

// --- Pulsa ---

func (c *Client) ListPulsaProducts(ctx context.Context, operator string) ([]domain.PulsaProduct, error) {
	query := url.Values{"operator": {operator}}
	var out struct {
		Products []domain.PulsaProduct `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/pulsa/products", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) TopupPulsa(ctx context.Context, req ports.GatewayTopupRequest) (*ports.GatewaySettleResult, error) {
	body := map[string]any{
		"product_code":   req.ProductCode,
		"phone_number":   req.PhoneNumber,
		"transaction_id": req.TransactionID,
	}
	return c.settle(ctx, "/v1/pulsa/topup", body)
}

// --- Transfers ---

func (c *Client) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	var out struct {
		Banks []domain.Bank `json:"banks"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/transfers/banks", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Banks, nil
}

func (c *Client) InquireAccount(ctx context.Context, bankCode, accountNumber string) (*domain.BankAccountInfo, error) {
	query := url.Values{
		"bank_code":      {bankCode},
		"account_number": {accountNumber},
	}
	var out domain.BankAccountInfo
	if err := c.do(ctx, http.MethodGet, "/v1/transfers/inquiry", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Transfer(ctx context.Context, req ports.GatewayTransferRequest) (*ports.GatewaySettleResult, error) {
	body := map[string]any{
		"bank_code":      req.BankCode,
		"account_number": req.AccountNumber,
		"account_name":   req.AccountName,
		"amount":         req.Amount,
		"transaction_id": req.TransactionID,
	}
	return c.settle(ctx, "/v1/transfers/execute", body)
}

// settleResponseBody is the provider's synchronous answer on settlement
// endpoints. status "pending" means confirmation arrives via webhook.
type settleResponseBody struct {
	ExternalRef string `json:"external_ref"`
	Status      string `json:"status"`
}

func (c *Client) settle(ctx context.Context, path string, body any) (*ports.GatewaySettleResult, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, path, nil, body, &raw); err != nil {
		return nil, err
	}
	var out settleResponseBody
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("decoding settlement response: %w", err))
	}
	return &ports.GatewaySettleResult{
		ExternalRef: out.ExternalRef,
		Pending:     out.Status == "pending",
		Raw:         raw,
	}, nil
}
