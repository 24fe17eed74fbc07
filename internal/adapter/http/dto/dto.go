package dto

import (
	"encoding/json"
	"time"

	"multipay-aggregator/internal/core/domain"
)

// --- Auth ---

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone,omitempty"`
	FullName string  `json:"full_name" binding:"required,min=1,max=100"`
	Password string  `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// --- Bookings ---

// PassengerRequest is one traveller in a booking request.
type PassengerRequest struct {
	Title         string `json:"title" binding:"required,max=10"`
	FirstName     string `json:"first_name" binding:"required,max=100"`
	LastName      string `json:"last_name" binding:"max=100"`
	IDNumber      string `json:"id_number,omitempty" binding:"max=50"`
	PassengerType string `json:"passenger_type" binding:"required,oneof=adult child infant"`
	SeatNumber    string `json:"seat_number,omitempty" binding:"max=10"`
}

// BookRequest is the request body for flight and train booking.
type BookRequest struct {
	OfferID     string             `json:"offer_id" binding:"required,safe_id,max=100"`
	Passengers  []PassengerRequest `json:"passengers" binding:"required,min=1,max=9,dive"`
	ContactName string             `json:"contact_name" binding:"required,max=100"`
	ContactTel  string             `json:"contact_tel" binding:"required,max=20"`
}

// Passengers converts the request passengers to domain values.
func (r BookRequest) DomainPassengers() []domain.Passenger {
	out := make([]domain.Passenger, len(r.Passengers))
	for i, p := range r.Passengers {
		out[i] = domain.Passenger{
			Title:         p.Title,
			FirstName:     p.FirstName,
			LastName:      p.LastName,
			IDNumber:      p.IDNumber,
			PassengerType: p.PassengerType,
			SeatNumber:    p.SeatNumber,
		}
	}
	return out
}

// BookingResponse is the response body for booking queries.
type BookingResponse struct {
	BookingCode string             `json:"booking_code"`
	Type        string             `json:"type"`
	Status      string             `json:"status"`
	TotalAmount int64              `json:"total_amount"`
	Currency    string             `json:"currency"`
	Passengers  []domain.Passenger `json:"passengers,omitempty"`
	BookingData json.RawMessage    `json:"booking_data,omitempty"`
	ExpiresAt   *int64             `json:"expires_at,omitempty"`
	CreatedAt   string             `json:"created_at"`
	Tickets     []TicketResponse   `json:"tickets,omitempty"`
}

// TicketResponse is one issued ticket document.
type TicketResponse struct {
	TicketNumber string          `json:"ticket_number"`
	TicketURL    *string         `json:"ticket_url,omitempty"`
	TicketData   json.RawMessage `json:"ticket_data,omitempty"`
	IssuedAt     string          `json:"issued_at"`
}

// ToBookingResponse converts a domain booking and its tickets.
func ToBookingResponse(b *domain.Booking, tickets []domain.Ticket) BookingResponse {
	resp := BookingResponse{
		BookingCode: b.BookingCode,
		Type:        string(b.Type),
		Status:      string(b.Status),
		TotalAmount: b.TotalAmount,
		Currency:    b.Currency,
		Passengers:  b.Passengers,
		BookingData: b.BookingData,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
	if b.ExpiresAt != nil {
		ts := b.ExpiresAt.Unix()
		resp.ExpiresAt = &ts
	}
	for _, t := range tickets {
		resp.Tickets = append(resp.Tickets, TicketResponse{
			TicketNumber: t.TicketNumber,
			TicketURL:    t.TicketURL,
			TicketData:   t.TicketData,
			IssuedAt:     t.IssuedAt.Format(time.RFC3339),
		})
	}
	return resp
}

// --- PPOB ---

// PayBillRequest is the request body for bill payment.
type PayBillRequest struct {
	ProductCode string `json:"product_code" binding:"required,safe_id,max=50"`
	CustomerID  string `json:"customer_id" binding:"required,max=50"`
}

// --- Pulsa ---

// TopupRequest is the request body for a pulsa topup.
type TopupRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required,min=10,max=15"`
	ProductCode string `json:"product_code" binding:"required,safe_id,max=50"`
}

// --- Transfers ---

// TransferRequest is the request body for an interbank transfer.
type TransferRequest struct {
	FromBank      string `json:"from_bank,omitempty" binding:"max=20"`
	ToBank        string `json:"to_bank" binding:"required,max=20"`
	AccountNumber string `json:"account_number" binding:"required,min=5,max=30"`
	AccountName   string `json:"account_name,omitempty" binding:"max=100"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
}

// --- Webhooks ---

// WebhookEnvelope is the provider callback body. The raw request body is
// verified against the HMAC signature before this is decoded.
type WebhookEnvelope struct {
	EventID   string          `json:"event_id" binding:"required,max=100"`
	EventType string          `json:"event_type" binding:"required,max=50"`
	Source    string          `json:"source,omitempty"`
	Data      json.RawMessage `json:"data" binding:"required"`
}

// --- Listings ---

// PagedResponse wraps a paginated listing.
type PagedResponse struct {
	Items    any   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}
