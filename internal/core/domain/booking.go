package domain

import (
	"encoding/json"
	"time"
)

// BookingType distinguishes the two reservation products.
type BookingType string

const (
	BookingFlight BookingType = "flight"
	BookingTrain  BookingType = "train"
)

// BookingStatus is the reservation lifecycle:
// pending -> confirmed -> completed, with cancelled reachable from
// pending/confirmed and failed from pending.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingFailed    BookingStatus = "failed"
)

var bookingStatusRank = map[BookingStatus]int{
	BookingPending:   0,
	BookingConfirmed: 1,
	BookingCompleted: 2,
	BookingCancelled: 2,
	BookingFailed:    2,
}

// Supersedes reports whether next advances the booking lifecycle over
// current. Used by the reconciler to keep status writes monotonic.
func (next BookingStatus) Supersedes(current BookingStatus) bool {
	return bookingStatusRank[next] > bookingStatusRank[current]
}

// Cancellable is true while the booking has not reached a terminal state.
func (s BookingStatus) Cancellable() bool {
	return s == BookingPending || s == BookingConfirmed
}

// Passenger is one traveller on a flight or train booking.
type Passenger struct {
	Title         string `json:"title"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	IDNumber      string `json:"id_number,omitempty"`
	PassengerType string `json:"passenger_type"` // adult, child, infant
	SeatNumber    string `json:"seat_number,omitempty"`
}

// Booking is a flight or train reservation owned by a single user.
// Amounts are fixed at creation; Status is written only by the booking
// service and the webhook reconciler.
type Booking struct {
	ID          int64           `json:"id"`
	BookingCode string          `json:"booking_code"` // externally visible id, unique
	UserID      int64           `json:"user_id"`
	Type        BookingType     `json:"type"`
	Status      BookingStatus   `json:"status"`
	TotalAmount int64           `json:"total_amount"` // minor units (IDR)
	Currency    string          `json:"currency"`
	Passengers  []Passenger     `json:"passengers"`
	BookingData json.RawMessage `json:"booking_data"` // typed per BookingType at the boundary
	ExternalRef *string         `json:"external_ref,omitempty"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"` // payment hold deadline
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Ticket is an issued travel document attached to a booking.
type Ticket struct {
	ID           int64           `json:"id"`
	BookingID    int64           `json:"booking_id"`
	TicketNumber string          `json:"ticket_number"` // unique
	TicketData   json.RawMessage `json:"ticket_data"`
	TicketURL    *string         `json:"ticket_url,omitempty"`
	IssuedAt     time.Time       `json:"issued_at"`
}
