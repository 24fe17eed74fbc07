package handler

import (
	"context"

	"multipay-aggregator/internal/adapter/http/dto"
	"multipay-aggregator/internal/adapter/http/middleware"
	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/pkg/apperror"
	"multipay-aggregator/pkg/response"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles flight and train endpoints.
type BookingHandler struct {
	bookingSvc ports.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingSvc ports.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// SearchFlights handles GET /api/v1/flights/search.
func (h *BookingHandler) SearchFlights(c *gin.Context) {
	q := ports.FlightSearchQuery{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Date:        c.Query("date"),
		Passengers:  queryInt(c, "passengers", 1),
	}

	offers, err := h.bookingSvc.SearchFlights(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"offers": offers})
}

// PriceFlight handles GET /api/v1/flights/:flight_id/price.
func (h *BookingHandler) PriceFlight(c *gin.Context) {
	quote, err := h.bookingSvc.PriceFlight(c.Request.Context(),
		c.Param("flight_id"), queryInt(c, "passengers", 1))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, quote)
}

// BookFlight handles POST /api/v1/flights/book.
func (h *BookingHandler) BookFlight(c *gin.Context) {
	h.book(c, h.bookingSvc.BookFlight)
}

// SearchTrains handles GET /api/v1/trains/search.
func (h *BookingHandler) SearchTrains(c *gin.Context) {
	q := ports.TrainSearchQuery{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Date:        c.Query("date"),
		Class:       c.Query("class"),
	}

	schedules, err := h.bookingSvc.SearchTrains(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"schedules": schedules})
}

// BookTrain handles POST /api/v1/trains/book.
func (h *BookingHandler) BookTrain(c *gin.Context) {
	h.book(c, h.bookingSvc.BookTrain)
}

// book is the shared body of the two booking endpoints; exec is the
// product-specific service method.
func (h *BookingHandler) book(c *gin.Context, exec func(ctx context.Context, key string, req ports.BookRequest) (*ports.ExecutionResult, error)) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := exec(c.Request.Context(), idempotencyKey(c), ports.BookRequest{
		UserID:      userID,
		OfferID:     req.OfferID,
		Passengers:  req.DomainPassengers(),
		ContactName: req.ContactName,
		ContactTel:  req.ContactTel,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	writeExecution(c, result)
}

// GetBooking handles GET /api/v1/bookings/:code.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	booking, tickets, err := h.bookingSvc.GetBooking(c.Request.Context(), userID, c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToBookingResponse(booking, tickets))
}

// ListBookings handles GET /api/v1/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	page, pageSize := pageParams(c)
	params := ports.BookingListParams{UserID: userID, Page: page, PageSize: pageSize}
	if t := c.Query("type"); t != "" {
		bt := domain.BookingType(t)
		params.Type = &bt
	}
	if s := c.Query("status"); s != "" {
		bs := domain.BookingStatus(s)
		params.Status = &bs
	}

	bookings, total, err := h.bookingSvc.ListBookings(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		items[i] = dto.ToBookingResponse(&bookings[i], nil)
	}
	response.OK(c, dto.PagedResponse{Items: items, Total: total, Page: page, PageSize: pageSize})
}

// IssueTicket handles POST /api/v1/bookings/:code/issue.
func (h *BookingHandler) IssueTicket(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	result, err := h.bookingSvc.IssueTicket(c.Request.Context(), idempotencyKey(c), userID, c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	writeExecution(c, result)
}

// CancelBooking handles POST /api/v1/bookings/:code/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	booking, err := h.bookingSvc.CancelBooking(c.Request.Context(), userID, c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToBookingResponse(booking, nil))
}
