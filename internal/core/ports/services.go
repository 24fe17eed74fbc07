package ports

import (
	"context"
	"encoding/json"
	"time"

	"multipay-aggregator/internal/core/domain"
)

// FingerprintService computes a deterministic digest of a request payload.
// Implementations must be pure: equal payloads yield equal digests across
// processes and time, regardless of map key order.
type FingerprintService interface {
	Fingerprint(payload any) (string, error)
}

// Operation is the caller-supplied side-effecting closure the coordinator
// runs at most once per processing window. ResourceID identifies the
// resource the operation created; Response is replayed verbatim to
// duplicate callers.
type Operation func(ctx context.Context) (*OperationResult, error)

// OperationResult is the successful outcome of an Operation.
type OperationResult struct {
	ResourceID string
	Response   any
}

// ExecutionResult is what Execute hands back to the transport layer.
type ExecutionResult struct {
	ResourceID string
	Response   json.RawMessage
	Replayed   bool // true when served from the ledger without re-execution
}

// Coordinator runs a side-effecting operation at most once under an
// idempotency key.
type Coordinator interface {
	Execute(ctx context.Context, key string, resource domain.ResourceType, payload any, op Operation) (*ExecutionResult, error)
}

// ReplayCache is the fast-path cache of completed execution results,
// consulted before the ledger. Best-effort: errors degrade to the ledger.
type ReplayCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil on miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CatalogCache holds provider catalog snapshots (products, banks) with an
// explicit TTL. Owned by the services that populate it, never ambient.
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// --- External settlement gateway (collaborator) ---

// FlightSearchQuery is the flight availability request.
type FlightSearchQuery struct {
	Origin      string
	Destination string
	Date        string // YYYY-MM-DD
	Passengers  int
}

// FlightOffer is one bookable flight returned by the provider.
type FlightOffer struct {
	FlightID  string `json:"flight_id"`
	Airline   string `json:"airline"`
	Origin    string `json:"origin"`
	Dest      string `json:"destination"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Price     int64  `json:"price"`
	SeatsLeft int    `json:"seats_left"`
}

// PriceQuote is a priced breakdown for a specific offer.
type PriceQuote struct {
	BaseFare int64 `json:"base_fare"`
	Taxes    int64 `json:"taxes"`
	Total    int64 `json:"total"`
}

// TrainSearchQuery is the train schedule request.
type TrainSearchQuery struct {
	Origin      string
	Destination string
	Date        string
	Class       string // economy, business, executive
}

// TrainSchedule is one bookable departure.
type TrainSchedule struct {
	ScheduleID string `json:"schedule_id"`
	TrainName  string `json:"train_name"`
	Origin     string `json:"origin"`
	Dest       string `json:"destination"`
	Departure  string `json:"departure"`
	Arrival    string `json:"arrival"`
	Class      string `json:"class"`
	Price      int64  `json:"price"`
}

// GatewayBookingRequest asks the provider to hold a reservation.
type GatewayBookingRequest struct {
	OfferID     string // flight id or train schedule id
	BookingCode string // our externally visible id, echoed in callbacks
	Passengers  []domain.Passenger
	ContactName string
	ContactTel  string
}

// GatewayBookingResult is the provider's acknowledgement of a hold.
type GatewayBookingResult struct {
	ExternalRef string
	TotalAmount int64
	HoldUntil   *time.Time
	Raw         json.RawMessage
}

// GatewayTicketResult carries issued ticket documents.
type GatewayTicketResult struct {
	ExternalRef string
	Tickets     []GatewayTicket
	Raw         json.RawMessage
}

// GatewayTicket is one issued document.
type GatewayTicket struct {
	TicketNumber string          `json:"ticket_number"`
	TicketURL    string          `json:"ticket_url,omitempty"`
	Detail       json.RawMessage `json:"detail,omitempty"`
}

// GatewayPayRequest settles a bill payment.
type GatewayPayRequest struct {
	ProductCode   string
	CustomerID    string
	Amount        int64
	TransactionID string // our id, echoed in callbacks
}

// GatewayTopupRequest settles a pulsa topup.
type GatewayTopupRequest struct {
	ProductCode   string
	PhoneNumber   string
	TransactionID string
}

// GatewayTransferRequest executes an interbank transfer.
type GatewayTransferRequest struct {
	BankCode      string
	AccountNumber string
	AccountName   string
	Amount        int64
	TransactionID string
}

// GatewaySettleResult is the provider's synchronous settlement answer.
// Pending=true means the provider accepted the request and will confirm via
// webhook; the local record stays processing until reconciled.
type GatewaySettleResult struct {
	ExternalRef string
	Pending     bool
	Raw         json.RawMessage
}

// SettlementGateway is the single external settlement API, one method per
// domain operation. Each side-effecting method is called at most once per
// coordinator execution; failures surface as ordinary errors and are
// finalized as failed in the ledger.
type SettlementGateway interface {
	SearchFlights(ctx context.Context, q FlightSearchQuery) ([]FlightOffer, error)
	PriceFlight(ctx context.Context, flightID string, passengers int) (*PriceQuote, error)
	BookFlight(ctx context.Context, req GatewayBookingRequest) (*GatewayBookingResult, error)

	SearchTrains(ctx context.Context, q TrainSearchQuery) ([]TrainSchedule, error)
	BookTrain(ctx context.Context, req GatewayBookingRequest) (*GatewayBookingResult, error)

	IssueTicket(ctx context.Context, externalRef string) (*GatewayTicketResult, error)

	ListPpobProducts(ctx context.Context) ([]domain.PpobProduct, error)
	InquireBill(ctx context.Context, productCode, customerID string) (*domain.BillInfo, error)
	PayBill(ctx context.Context, req GatewayPayRequest) (*GatewaySettleResult, error)

	ListPulsaProducts(ctx context.Context, operator string) ([]domain.PulsaProduct, error)
	TopupPulsa(ctx context.Context, req GatewayTopupRequest) (*GatewaySettleResult, error)

	ListBanks(ctx context.Context) ([]domain.Bank, error)
	InquireAccount(ctx context.Context, bankCode, accountNumber string) (*domain.BankAccountInfo, error)
	Transfer(ctx context.Context, req GatewayTransferRequest) (*GatewaySettleResult, error)
}

// --- Business services ---

// BookingService covers flights and trains.
type BookingService interface {
	SearchFlights(ctx context.Context, q FlightSearchQuery) ([]FlightOffer, error)
	PriceFlight(ctx context.Context, flightID string, passengers int) (*PriceQuote, error)
	BookFlight(ctx context.Context, idempotencyKey string, req BookRequest) (*ExecutionResult, error)
	SearchTrains(ctx context.Context, q TrainSearchQuery) ([]TrainSchedule, error)
	BookTrain(ctx context.Context, idempotencyKey string, req BookRequest) (*ExecutionResult, error)
	IssueTicket(ctx context.Context, idempotencyKey string, userID int64, bookingCode string) (*ExecutionResult, error)
	GetBooking(ctx context.Context, userID int64, code string) (*domain.Booking, []domain.Ticket, error)
	ListBookings(ctx context.Context, params BookingListParams) ([]domain.Booking, int64, error)
	CancelBooking(ctx context.Context, userID int64, code string) (*domain.Booking, error)
}

// BookRequest holds validated input for flight/train booking.
type BookRequest struct {
	UserID      int64
	OfferID     string
	Passengers  []domain.Passenger
	ContactName string
	ContactTel  string
}

// PpobService covers bill inquiry and payment.
type PpobService interface {
	ListProducts(ctx context.Context) ([]domain.PpobProduct, error)
	InquireBill(ctx context.Context, productCode, customerID string) (*domain.BillInfo, error)
	PayBill(ctx context.Context, idempotencyKey string, req PpobPayRequest) (*ExecutionResult, error)
	GetTransaction(ctx context.Context, userID int64, transactionID string) (*domain.PpobTransaction, error)
	ListTransactions(ctx context.Context, params TxListParams) ([]domain.PpobTransaction, int64, error)
}

// PpobPayRequest holds validated input for bill payment.
type PpobPayRequest struct {
	UserID      int64
	ProductCode string
	CustomerID  string
}

// TopupService covers pulsa/data topups.
type TopupService interface {
	ListProducts(ctx context.Context, operator string) ([]domain.PulsaProduct, error)
	DetectOperator(phone string) string
	Topup(ctx context.Context, idempotencyKey string, req TopupRequest) (*ExecutionResult, error)
	GetTransaction(ctx context.Context, userID int64, transactionID string) (*domain.WalletTopup, error)
	ListTransactions(ctx context.Context, params TxListParams) ([]domain.WalletTopup, int64, error)
}

// TopupRequest holds validated input for a pulsa topup.
type TopupRequest struct {
	UserID      int64
	PhoneNumber string
	ProductCode string
}

// TransferService covers interbank transfers.
type TransferService interface {
	ListBanks(ctx context.Context) ([]domain.Bank, error)
	InquireAccount(ctx context.Context, bankCode, accountNumber string) (*domain.BankAccountInfo, error)
	Transfer(ctx context.Context, idempotencyKey string, req TransferRequest) (*ExecutionResult, error)
	GetTransfer(ctx context.Context, userID int64, transactionID string) (*domain.BankTransfer, error)
	ListTransfers(ctx context.Context, params TxListParams) ([]domain.BankTransfer, int64, error)
}

// TransferRequest holds validated input for a bank transfer.
type TransferRequest struct {
	UserID        int64
	FromBank      string
	ToBank        string
	AccountNumber string
	AccountName   string
	Amount        int64
}

// Reconciler ingests provider callbacks and applies them to transaction
// state.
type Reconciler interface {
	// Ingest persists the event, then attempts one processing pass.
	// Redelivery of an already-recorded event is a no-op success.
	Ingest(ctx context.Context, eventID, eventType, source string, payload json.RawMessage) error
	// Sweep retries due unprocessed events, honoring backoff and the
	// attempt ceiling.
	Sweep(ctx context.Context, now time.Time) error
	// Retry forces one processing attempt for a specific event (admin).
	Retry(ctx context.Context, eventID string) error
}

// AuthService defines end-user authentication.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, time.Time, error) // token, expiry
}

// RegisterRequest holds input for user registration.
type RegisterRequest struct {
	Email    string
	Phone    *string
	FullName string
	Password string
}

// ReportingService serves the admin surface.
type ReportingService interface {
	SystemStats(ctx context.Context) (*SystemStats, error)
	FailedTransactions(ctx context.Context, since *int64, limit int) ([]FailedTransaction, error)
	WebhookEvents(ctx context.Context, params WebhookListParams) ([]domain.WebhookEvent, int64, error)
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// SignatureService verifies webhook HMAC-SHA256 signatures.
type SignatureService interface {
	Sign(secret string, payload []byte) string
	Verify(secret string, payload []byte, signature string) bool
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID int64, email string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID int64
	Email  string
}
