package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/internal/core/ports/mocks"
	"multipay-aggregator/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// passthroughExecute runs the operation directly, standing in for the real
// coordinator in service tests that exercise the operation body.
func passthroughExecute(ctx context.Context, _ string, _ domain.ResourceType, _ any, op ports.Operation) (*ports.ExecutionResult, error) {
	res, err := op(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(res.Response)
	if err != nil {
		return nil, err
	}
	return &ports.ExecutionResult{ResourceID: res.ResourceID, Response: raw}, nil
}

type bookingTestDeps struct {
	svc         *BookingServiceImpl
	coordinator *mocks.MockCoordinator
	gateway     *mocks.MockSettlementGateway
	bookings    *mocks.MockBookingRepository
	transactor  *mocks.MockDBTransactor
	ctrl        *gomock.Controller
}

func setupBookingService(t *testing.T) *bookingTestDeps {
	ctrl := gomock.NewController(t)
	d := &bookingTestDeps{
		coordinator: mocks.NewMockCoordinator(ctrl),
		gateway:     mocks.NewMockSettlementGateway(ctrl),
		bookings:    mocks.NewMockBookingRepository(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewBookingService(d.coordinator, d.gateway, d.bookings, d.transactor, zerolog.Nop())
	return d
}

func validBookRequest() ports.BookRequest {
	return ports.BookRequest{
		UserID:  7,
		OfferID: "GA-412",
		Passengers: []domain.Passenger{
			{Title: "Mr", FirstName: "Budi", LastName: "Santoso", PassengerType: "adult"},
		},
		ContactName: "Budi Santoso",
		ContactTel:  "081234567890",
	}
}

func TestBookingService_BookFlight_HoldsAndPersists(t *testing.T) {
	d := setupBookingService(t)
	defer d.ctrl.Finish()

	req := validBookRequest()
	holdUntil := time.Now().Add(30 * time.Minute)

	d.coordinator.EXPECT().
		Execute(gomock.Any(), "req-1", domain.ResourceFlightBooking, req, gomock.Any()).
		DoAndReturn(passthroughExecute)
	d.gateway.EXPECT().
		BookFlight(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, greq ports.GatewayBookingRequest) (*ports.GatewayBookingResult, error) {
			assert.Equal(t, "GA-412", greq.OfferID)
			assert.NotEmpty(t, greq.BookingCode)
			return &ports.GatewayBookingResult{
				ExternalRef: "PRV-77",
				TotalAmount: 1_250_000,
				HoldUntil:   &holdUntil,
				Raw:         json.RawMessage(`{"pnr":"ABCDEF"}`),
			}, nil
		})
	d.bookings.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *domain.Booking) error {
			assert.Equal(t, domain.BookingFlight, b.Type)
			assert.Equal(t, domain.BookingPending, b.Status)
			assert.Equal(t, int64(1_250_000), b.TotalAmount)
			require.NotNil(t, b.ExternalRef)
			assert.Equal(t, "PRV-77", *b.ExternalRef)
			return nil
		})

	result, err := d.svc.BookFlight(context.Background(), "req-1", req)
	require.NoError(t, err)
	assert.NotEmpty(t, result.ResourceID)

	var receipt bookingReceipt
	require.NoError(t, json.Unmarshal(result.Response, &receipt))
	assert.Equal(t, string(domain.BookingPending), receipt.Status)
	assert.Equal(t, int64(1_250_000), receipt.TotalAmount)
}

func TestBookingService_BookFlight_ValidationBeforeCoordinator(t *testing.T) {
	d := setupBookingService(t)
	defer d.ctrl.Finish()

	req := validBookRequest()
	req.Passengers = nil

	_, err := d.svc.BookFlight(context.Background(), "req-1", req)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_003", appErr.Code)
}

func TestBookingService_BookTrain_UsesTrainResource(t *testing.T) {
	d := setupBookingService(t)
	defer d.ctrl.Finish()

	req := validBookRequest()
	req.OfferID = "KA-ARGO-21"

	d.coordinator.EXPECT().
		Execute(gomock.Any(), "req-2", domain.ResourceTrainBooking, req, gomock.Any()).
		DoAndReturn(passthroughExecute)
	d.gateway.EXPECT().
		BookTrain(gomock.Any(), gomock.Any()).
		Return(&ports.GatewayBookingResult{ExternalRef: "PRV-T1", TotalAmount: 350_000}, nil)
	d.bookings.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *domain.Booking) error {
			assert.Equal(t, domain.BookingTrain, b.Type)
			return nil
		})

	_, err := d.svc.BookTrain(context.Background(), "req-2", req)
	require.NoError(t, err)
}

func TestBookingService_IssueTicket_Confirmed(t *testing.T) {
	d := setupBookingService(t)
	defer d.ctrl.Finish()

	ref := "PRV-77"
	d.bookings.EXPECT().GetByCode(gomock.Any(), "FL-AAAA1111").Return(&domain.Booking{
		ID:          42,
		BookingCode: "FL-AAAA1111",
		UserID:      7,
		Status:      domain.BookingConfirmed,
		ExternalRef: &ref,
	}, nil)
	d.coordinator.EXPECT().
		Execute(gomock.Any(), "req-3", domain.ResourceTicketIssue, gomock.Any(), gomock.Any()).
		DoAndReturn(passthroughExecute)
	d.gateway.EXPECT().IssueTicket(gomock.Any(), "PRV-77").Return(&ports.GatewayTicketResult{
		ExternalRef: "PRV-77",
		Tickets:     []ports.GatewayTicket{{TicketNumber: "TKT-001"}},
	}, nil)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(&mockTx{}, nil)
	d.bookings.EXPECT().
		CreateTickets(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, tickets []domain.Ticket) error {
			require.Len(t, tickets, 1)
			assert.Equal(t, int64(42), tickets[0].BookingID)
			return nil
		})
	d.bookings.EXPECT().
		AdvanceStatusByCode(gomock.Any(), "FL-AAAA1111", domain.BookingCompleted).
		Return(true, nil)

	result, err := d.svc.IssueTicket(context.Background(), "req-3", 7, "FL-AAAA1111")
	require.NoError(t, err)
	assert.Equal(t, "FL-AAAA1111", result.ResourceID)
}

func TestBookingService_IssueTicket_AlreadyIssued(t *testing.T) {
	d := setupBookingService(t)
	defer d.ctrl.Finish()

	ref := "PRV-77"
	d.bookings.EXPECT().GetByCode(gomock.Any(), "FL-AAAA1111").Return(&domain.Booking{
		BookingCode: "FL-AAAA1111",
		UserID:      7,
		Status:      domain.BookingCompleted,
		ExternalRef: &ref,
	}, nil)

	_, err := d.svc.IssueTicket(context.Background(), "req-3", 7, "FL-AAAA1111")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BOOK_003", appErr.Code)
}

func TestBookingService_IssueTicket_OtherUsersBookingHidden(t *testing.T) {
	d := setupBookingService(t)
	defer d.ctrl.Finish()

	d.bookings.EXPECT().GetByCode(gomock.Any(), "FL-AAAA1111").Return(&domain.Booking{
		BookingCode: "FL-AAAA1111",
		UserID:      99,
		Status:      domain.BookingConfirmed,
	}, nil)

	_, err := d.svc.IssueTicket(context.Background(), "req-3", 7, "FL-AAAA1111")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BOOK_001", appErr.Code)
}

func TestBookingService_CancelBooking_Pending(t *testing.T) {
	d := setupBookingService(t)
	defer d.ctrl.Finish()

	d.bookings.EXPECT().GetByCode(gomock.Any(), "FL-AAAA1111").Return(&domain.Booking{
		BookingCode: "FL-AAAA1111",
		UserID:      7,
		Status:      domain.BookingPending,
	}, nil)
	d.bookings.EXPECT().
		AdvanceStatusByCode(gomock.Any(), "FL-AAAA1111", domain.BookingCancelled).
		Return(true, nil)

	booking, err := d.svc.CancelBooking(context.Background(), 7, "FL-AAAA1111")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, booking.Status)
}

func TestBookingService_CancelBooking_TerminalRejected(t *testing.T) {
	d := setupBookingService(t)
	defer d.ctrl.Finish()

	d.bookings.EXPECT().GetByCode(gomock.Any(), "FL-AAAA1111").Return(&domain.Booking{
		BookingCode: "FL-AAAA1111",
		UserID:      7,
		Status:      domain.BookingCompleted,
	}, nil)

	_, err := d.svc.CancelBooking(context.Background(), 7, "FL-AAAA1111")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BOOK_002", appErr.Code)
}

func TestBookingService_CancelBooking_LostRaceWithReconciler(t *testing.T) {
	d := setupBookingService(t)
	defer d.ctrl.Finish()

	d.bookings.EXPECT().GetByCode(gomock.Any(), "FL-AAAA1111").Return(&domain.Booking{
		BookingCode: "FL-AAAA1111",
		UserID:      7,
		Status:      domain.BookingConfirmed,
	}, nil)
	d.bookings.EXPECT().
		AdvanceStatusByCode(gomock.Any(), "FL-AAAA1111", domain.BookingCancelled).
		Return(false, nil)

	_, err := d.svc.CancelBooking(context.Background(), 7, "FL-AAAA1111")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BOOK_002", appErr.Code)
}

func TestBookingService_SearchFlights_RequiresRoute(t *testing.T) {
	d := setupBookingService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.SearchFlights(context.Background(), ports.FlightSearchQuery{Origin: "CGK"})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_003", appErr.Code)
}
