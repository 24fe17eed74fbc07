package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BookingServiceImpl implements ports.BookingService for flights and trains.
// Every side-effecting operation runs through the coordinator; reads go
// straight to the gateway or the repository.
type BookingServiceImpl struct {
	coordinator ports.Coordinator
	gateway     ports.SettlementGateway
	bookings    ports.BookingRepository
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewBookingService creates a new BookingServiceImpl.
func NewBookingService(
	coordinator ports.Coordinator,
	gateway ports.SettlementGateway,
	bookings ports.BookingRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *BookingServiceImpl {
	return &BookingServiceImpl{
		coordinator: coordinator,
		gateway:     gateway,
		bookings:    bookings,
		transactor:  transactor,
		log:         log,
	}
}

// bookingReceipt is the response recorded in the ledger and replayed to
// duplicate submissions.
type bookingReceipt struct {
	BookingCode string     `json:"booking_code"`
	Status      string     `json:"status"`
	TotalAmount int64      `json:"total_amount"`
	Currency    string     `json:"currency"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

func (s *BookingServiceImpl) SearchFlights(ctx context.Context, q ports.FlightSearchQuery) ([]ports.FlightOffer, error) {
	if q.Origin == "" || q.Destination == "" || q.Date == "" {
		return nil, apperror.Validation("origin, destination and date are required")
	}
	if q.Passengers < 1 {
		q.Passengers = 1
	}
	offers, err := s.gateway.SearchFlights(ctx, q)
	if err != nil {
		return nil, err
	}
	return offers, nil
}

func (s *BookingServiceImpl) PriceFlight(ctx context.Context, flightID string, passengers int) (*ports.PriceQuote, error) {
	if flightID == "" {
		return nil, apperror.Validation("flight_id is required")
	}
	if passengers < 1 {
		passengers = 1
	}
	return s.gateway.PriceFlight(ctx, flightID, passengers)
}

func (s *BookingServiceImpl) BookFlight(ctx context.Context, idempotencyKey string, req ports.BookRequest) (*ports.ExecutionResult, error) {
	if err := validateBookRequest(req); err != nil {
		return nil, err
	}
	return s.coordinator.Execute(ctx, idempotencyKey, domain.ResourceFlightBooking, req,
		func(ctx context.Context) (*ports.OperationResult, error) {
			return s.placeBooking(ctx, domain.BookingFlight, req, s.gateway.BookFlight)
		})
}

func (s *BookingServiceImpl) SearchTrains(ctx context.Context, q ports.TrainSearchQuery) ([]ports.TrainSchedule, error) {
	if q.Origin == "" || q.Destination == "" || q.Date == "" {
		return nil, apperror.Validation("origin, destination and date are required")
	}
	return s.gateway.SearchTrains(ctx, q)
}

func (s *BookingServiceImpl) BookTrain(ctx context.Context, idempotencyKey string, req ports.BookRequest) (*ports.ExecutionResult, error) {
	if err := validateBookRequest(req); err != nil {
		return nil, err
	}
	return s.coordinator.Execute(ctx, idempotencyKey, domain.ResourceTrainBooking, req,
		func(ctx context.Context) (*ports.OperationResult, error) {
			return s.placeBooking(ctx, domain.BookingTrain, req, s.gateway.BookTrain)
		})
}

// placeBooking is the shared at-most-once body: hold the reservation at the
// provider, then persist the local row carrying the provider reference. The
// provider call comes first because the amount and hold deadline are its
// output; a persist failure afterwards finalizes the key failed, and the
// dangling hold lapses at the provider when unpaid.
func (s *BookingServiceImpl) placeBooking(
	ctx context.Context,
	bType domain.BookingType,
	req ports.BookRequest,
	book func(context.Context, ports.GatewayBookingRequest) (*ports.GatewayBookingResult, error),
) (*ports.OperationResult, error) {
	code := newBookingCode(bType)

	result, err := book(ctx, ports.GatewayBookingRequest{
		OfferID:     req.OfferID,
		BookingCode: code,
		Passengers:  req.Passengers,
		ContactName: req.ContactName,
		ContactTel:  req.ContactTel,
	})
	if err != nil {
		return nil, err
	}

	ref := result.ExternalRef
	booking := &domain.Booking{
		BookingCode: code,
		UserID:      req.UserID,
		Type:        bType,
		Status:      domain.BookingPending,
		TotalAmount: result.TotalAmount,
		Currency:    "IDR",
		Passengers:  req.Passengers,
		BookingData: result.Raw,
		ExternalRef: &ref,
		ExpiresAt:   result.HoldUntil,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist booking: %w", err))
	}

	s.log.Info().Str("booking_code", code).Str("type", string(bType)).
		Str("external_ref", ref).Int64("amount", result.TotalAmount).
		Msg("booking held at provider")

	return &ports.OperationResult{
		ResourceID: code,
		Response: bookingReceipt{
			BookingCode: code,
			Status:      string(domain.BookingPending),
			TotalAmount: result.TotalAmount,
			Currency:    "IDR",
			ExpiresAt:   result.HoldUntil,
		},
	}, nil
}

// ticketReceipt is the replayable response for ticket issuance.
type ticketReceipt struct {
	BookingCode string               `json:"booking_code"`
	Status      string               `json:"status"`
	Tickets     []ports.GatewayTicket `json:"tickets"`
}

func (s *BookingServiceImpl) IssueTicket(ctx context.Context, idempotencyKey string, userID int64, bookingCode string) (*ports.ExecutionResult, error) {
	booking, err := s.ownedBooking(ctx, userID, bookingCode)
	if err != nil {
		return nil, err
	}
	switch booking.Status {
	case domain.BookingCompleted:
		return nil, apperror.ErrTicketAlreadyIssued()
	case domain.BookingConfirmed:
	default:
		return nil, apperror.Validation("booking is not confirmed")
	}
	if booking.ExternalRef == nil {
		return nil, apperror.InternalError(fmt.Errorf("booking %s has no provider reference", bookingCode))
	}

	payload := map[string]string{"booking_code": bookingCode}
	return s.coordinator.Execute(ctx, idempotencyKey, domain.ResourceTicketIssue, payload,
		func(ctx context.Context) (*ports.OperationResult, error) {
			return s.issueTickets(ctx, booking)
		})
}

func (s *BookingServiceImpl) issueTickets(ctx context.Context, booking *domain.Booking) (*ports.OperationResult, error) {
	result, err := s.gateway.IssueTicket(ctx, *booking.ExternalRef)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tickets := make([]domain.Ticket, 0, len(result.Tickets))
	for _, t := range result.Tickets {
		ticket := domain.Ticket{
			BookingID:    booking.ID,
			TicketNumber: t.TicketNumber,
			TicketData:   t.Detail,
			IssuedAt:     now,
		}
		if t.TicketURL != "" {
			url := t.TicketURL
			ticket.TicketURL = &url
		}
		tickets = append(tickets, ticket)
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin ticket tx: %w", err))
	}
	defer tx.Rollback(ctx)
	if err := s.bookings.CreateTickets(ctx, tx, tickets); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("store tickets: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tickets: %w", err))
	}

	if _, err := s.bookings.AdvanceStatusByCode(ctx, booking.BookingCode, domain.BookingCompleted); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("advance booking status: %w", err))
	}

	return &ports.OperationResult{
		ResourceID: booking.BookingCode,
		Response: ticketReceipt{
			BookingCode: booking.BookingCode,
			Status:      string(domain.BookingCompleted),
			Tickets:     result.Tickets,
		},
	}, nil
}

func (s *BookingServiceImpl) GetBooking(ctx context.Context, userID int64, code string) (*domain.Booking, []domain.Ticket, error) {
	booking, err := s.ownedBooking(ctx, userID, code)
	if err != nil {
		return nil, nil, err
	}
	tickets, err := s.bookings.ListTickets(ctx, booking.ID)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("list tickets: %w", err))
	}
	return booking, tickets, nil
}

func (s *BookingServiceImpl) ListBookings(ctx context.Context, params ports.BookingListParams) ([]domain.Booking, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
	return s.bookings.List(ctx, params)
}

func (s *BookingServiceImpl) CancelBooking(ctx context.Context, userID int64, code string) (*domain.Booking, error) {
	booking, err := s.ownedBooking(ctx, userID, code)
	if err != nil {
		return nil, err
	}
	if !booking.Status.Cancellable() {
		return nil, apperror.ErrBookingNotCancellable()
	}

	changed, err := s.bookings.AdvanceStatusByCode(ctx, code, domain.BookingCancelled)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("cancel booking: %w", err))
	}
	if !changed {
		// Lost a race with the reconciler; a terminal status landed first.
		return nil, apperror.ErrBookingNotCancellable()
	}

	booking.Status = domain.BookingCancelled
	s.log.Info().Str("booking_code", code).Int64("user_id", userID).Msg("booking cancelled")
	return booking, nil
}

func (s *BookingServiceImpl) ownedBooking(ctx context.Context, userID int64, code string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByCode(ctx, code)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load booking: %w", err))
	}
	if booking == nil || booking.UserID != userID {
		return nil, apperror.ErrBookingNotFound()
	}
	return booking, nil
}

func validateBookRequest(req ports.BookRequest) error {
	if req.OfferID == "" {
		return apperror.Validation("offer id is required")
	}
	if len(req.Passengers) == 0 {
		return apperror.Validation("at least one passenger is required")
	}
	for _, p := range req.Passengers {
		if p.FirstName == "" || p.LastName == "" {
			return apperror.Validation("passenger name is required")
		}
	}
	if req.ContactName == "" || req.ContactTel == "" {
		return apperror.Validation("contact name and phone are required")
	}
	return nil
}

func newBookingCode(bType domain.BookingType) string {
	prefix := "FL"
	if bType == domain.BookingTrain {
		prefix = "TR"
	}
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(uuid.NewString()[:8]))
}
