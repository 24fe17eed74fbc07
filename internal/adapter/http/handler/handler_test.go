package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"multipay-aggregator/internal/adapter/http/dto"
	"multipay-aggregator/internal/adapter/http/middleware"
	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/internal/core/ports/mocks"
	"multipay-aggregator/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func jsonRequest(t *testing.T, method, target string, body any) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Auth Handler Tests ---

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Register(gomock.Any(), ports.RegisterRequest{
		Email:    "budi@example.com",
		FullName: "Budi Santoso",
		Password: "password123",
	}).Return(&domain.User{
		ID:       42,
		Email:    "budi@example.com",
		FullName: "Budi Santoso",
	}, nil)

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		Email:    "budi@example.com",
		FullName: "Budi Santoso",
		Password: "password123",
	})

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(42), data["user_id"])
	assert.Equal(t, "budi@example.com", data["email"])
}

func TestRegister_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mocks.NewMockAuthService(ctrl))

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "not-an-email",
	})

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "SYS_003", envelope(t, w)["error_code"])
}

func TestRegister_EmailExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrEmailExists())

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		Email:    "taken@example.com",
		FullName: "Taken",
		Password: "password123",
	})

	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "AUTH_002", envelope(t, w)["error_code"])
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	mockAuth.EXPECT().Login(gomock.Any(), "budi@example.com", "password123").
		Return("jwt-token", expiry, nil)

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "budi@example.com",
		Password: "password123",
	})

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "jwt-token", data["token"])
	assert.Equal(t, float64(expiry.Unix()), data["expiry"])
}

// --- Booking Handler Tests ---

func TestBookFlight_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBooking := mocks.NewMockBookingService(ctrl)
	h := NewBookingHandler(mockBooking)

	mockBooking.EXPECT().BookFlight(gomock.Any(), "key-123", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, req ports.BookRequest) (*ports.ExecutionResult, error) {
			assert.Equal(t, int64(7), req.UserID)
			assert.Equal(t, "GA-204-20260901", req.OfferID)
			require.Len(t, req.Passengers, 1)
			return &ports.ExecutionResult{
				ResourceID: "BK-FLT-0001",
				Response:   json.RawMessage(`{"booking_code":"BK-FLT-0001","status":"confirmed"}`),
			}, nil
		})

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/flights/book", dto.BookRequest{
		OfferID: "GA-204-20260901",
		Passengers: []dto.PassengerRequest{
			{Title: "Mr", FirstName: "Budi", LastName: "Santoso", IDNumber: "3174011202900001", PassengerType: "adult"},
		},
		ContactName: "Budi Santoso",
		ContactTel:  "+628123456789",
	})
	c.Request.Header.Set(middleware.HeaderIdempotencyKey, "key-123")
	c.Set(middleware.CtxUserID, int64(7))

	h.BookFlight(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get("Idempotency-Replayed"))
	data := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "BK-FLT-0001", data["booking_code"])
}

func TestBookFlight_ReplayMarksHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBooking := mocks.NewMockBookingService(ctrl)
	h := NewBookingHandler(mockBooking)

	mockBooking.EXPECT().BookFlight(gomock.Any(), "key-123", gomock.Any()).
		Return(&ports.ExecutionResult{
			ResourceID: "BK-FLT-0001",
			Response:   json.RawMessage(`{"booking_code":"BK-FLT-0001"}`),
			Replayed:   true,
		}, nil)

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/flights/book", dto.BookRequest{
		OfferID: "GA-204-20260901",
		Passengers: []dto.PassengerRequest{
			{Title: "Mr", FirstName: "Budi", LastName: "Santoso", IDNumber: "3174011202900001", PassengerType: "adult"},
		},
		ContactName: "Budi Santoso",
		ContactTel:  "+628123456789",
	})
	c.Request.Header.Set(middleware.HeaderIdempotencyKey, "key-123")
	c.Set(middleware.CtxUserID, int64(7))

	h.BookFlight(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "true", w.Header().Get("Idempotency-Replayed"))
}

func TestBookFlight_MissingAuthContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewBookingHandler(mocks.NewMockBookingService(ctrl))

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/flights/book", dto.BookRequest{})

	h.BookFlight(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_003", envelope(t, w)["error_code"])
}

// --- PPOB Handler Tests ---

func TestInquireBill_RequiresQueryParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewPpobHandler(mocks.NewMockPpobService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/ppob/inquiry?product_code=PLN_POSTPAID", nil)

	h.InquireBill(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayBill_ProviderRejectionPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPpob := mocks.NewMockPpobService(ctrl)
	h := NewPpobHandler(mockPpob)

	mockPpob.EXPECT().PayBill(gomock.Any(), "key-9", gomock.Any()).
		Return(nil, apperror.ErrProviderRejected("BILL_EXPIRED", "bill window closed"))

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/ppob/pay", dto.PayBillRequest{
		ProductCode: "PLN_POSTPAID",
		CustomerID:  "543210987654",
	})
	c.Request.Header.Set(middleware.HeaderIdempotencyKey, "key-9")
	c.Set(middleware.CtxUserID, int64(7))

	h.PayBill(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "PROV_001", envelope(t, w)["error_code"])
}

// --- Webhook Handler Tests ---

func TestWebhookIngest_ValidSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReconciler := mocks.NewMockReconciler(ctrl)
	mockSig := mocks.NewMockSignatureService(ctrl)
	h := NewWebhookHandler(mockReconciler, mockSig, "whsec", zerolog.Nop())

	body := []byte(`{"event_id":"evt_1","event_type":"booking.confirmed","source":"provider","data":{"external_ref":"EXT-1"}}`)

	mockSig.EXPECT().Verify("whsec", body, "sig-ok").Return(true)
	mockReconciler.EXPECT().
		Ingest(gomock.Any(), "evt_1", "booking.confirmed", "provider", json.RawMessage(`{"external_ref":"EXT-1"}`)).
		Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/settlement", bytes.NewReader(body))
	c.Request.Header.Set(HeaderWebhookSignature, "sig-ok")

	h.Ingest(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookIngest_InvalidSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReconciler := mocks.NewMockReconciler(ctrl)
	mockSig := mocks.NewMockSignatureService(ctrl)
	h := NewWebhookHandler(mockReconciler, mockSig, "whsec", zerolog.Nop())

	body := []byte(`{"event_id":"evt_1","event_type":"booking.confirmed","data":{}}`)
	mockSig.EXPECT().Verify("whsec", body, "sig-bad").Return(false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/settlement", bytes.NewReader(body))
	c.Request.Header.Set(HeaderWebhookSignature, "sig-bad")

	h.Ingest(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "HOOK_001", envelope(t, w)["error_code"])
}

func TestWebhookIngest_MissingSignatureHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWebhookHandler(mocks.NewMockReconciler(ctrl), mocks.NewMockSignatureService(ctrl), "whsec", zerolog.Nop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/settlement", bytes.NewReader([]byte(`{}`)))

	h.Ingest(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookIngest_MissingEnvelopeFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSig := mocks.NewMockSignatureService(ctrl)
	h := NewWebhookHandler(mocks.NewMockReconciler(ctrl), mockSig, "whsec", zerolog.Nop())

	body := []byte(`{"event_type":"booking.confirmed"}`)
	mockSig.EXPECT().Verify("whsec", body, "sig-ok").Return(true)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/settlement", bytes.NewReader(body))
	c.Request.Header.Set(HeaderWebhookSignature, "sig-ok")

	h.Ingest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Admin Handler Tests ---

func TestRetryWebhook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReconciler := mocks.NewMockReconciler(ctrl)
	h := NewAdminHandler(mocks.NewMockReportingService(ctrl), mockReconciler)

	mockReconciler.EXPECT().Retry(gomock.Any(), "evt_1").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/webhooks/evt_1/retry", nil)
	c.Params = gin.Params{{Key: "event_id", Value: "evt_1"}}

	h.RetryWebhook(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "evt_1", data["event_id"])
}

func TestRetryWebhook_UnknownEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReconciler := mocks.NewMockReconciler(ctrl)
	h := NewAdminHandler(mocks.NewMockReportingService(ctrl), mockReconciler)

	mockReconciler.EXPECT().Retry(gomock.Any(), "evt_missing").Return(apperror.ErrWebhookEventNotFound())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/webhooks/evt_missing/retry", nil)
	c.Params = gin.Params{{Key: "event_id", Value: "evt_missing"}}

	h.RetryWebhook(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "HOOK_002", envelope(t, w)["error_code"])
}

func TestSystemStats_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporting := mocks.NewMockReportingService(ctrl)
	h := NewAdminHandler(mockReporting, mocks.NewMockReconciler(ctrl))

	mockReporting.EXPECT().SystemStats(gomock.Any()).Return(&ports.SystemStats{
		TotalUsers:    10,
		TotalBookings: 25,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)

	h.SystemStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
