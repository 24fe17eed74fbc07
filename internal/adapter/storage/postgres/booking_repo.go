package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// BookingRepo implements ports.BookingRepository.
type BookingRepo struct {
	pool Pool
}

// NewBookingRepo creates a new BookingRepo.
func NewBookingRepo(pool Pool) *BookingRepo {
	return &BookingRepo{pool: pool}
}

const bookingColumns = `id, booking_code, user_id, type, status, total_amount, currency,
	passengers, booking_data, external_ref, expires_at, created_at, updated_at`

// bookingStatusRankSQL mirrors domain.BookingStatus.Supersedes so precedence
// is enforced in the same statement that writes the status.
const bookingStatusRankSQL = `CASE %s WHEN 'pending' THEN 0 WHEN 'confirmed' THEN 1 ELSE 2 END`

// Create inserts a booking and backfills the generated id and timestamps.
func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	passengers, err := json.Marshal(b.Passengers)
	if err != nil {
		return fmt.Errorf("encoding passengers: %w", err)
	}

	query := `INSERT INTO bookings
			(booking_code, user_id, type, status, total_amount, currency,
			 passengers, booking_data, external_ref, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	err = r.pool.QueryRow(ctx, query,
		b.BookingCode, b.UserID, string(b.Type), string(b.Status),
		b.TotalAmount, b.Currency, passengers, b.BookingData,
		b.ExternalRef, b.ExpiresAt,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// GetByCode fetches a booking by its externally visible code. Returns
// nil, nil when absent.
func (r *BookingRepo) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_code = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, code))
}

// GetByRef fetches a booking by the provider reference.
func (r *BookingRepo) GetByRef(ctx context.Context, externalRef string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE external_ref = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, externalRef))
}

func (r *BookingRepo) scanOne(row pgx.Row) (*domain.Booking, error) {
	b := &domain.Booking{}
	var passengers []byte
	err := row.Scan(
		&b.ID, &b.BookingCode, &b.UserID, &b.Type, &b.Status,
		&b.TotalAmount, &b.Currency, &passengers, &b.BookingData,
		&b.ExternalRef, &b.ExpiresAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if len(passengers) > 0 {
		if err := json.Unmarshal(passengers, &b.Passengers); err != nil {
			return nil, fmt.Errorf("decoding passengers: %w", err)
		}
	}
	return b, nil
}

// List returns a page of the user's bookings plus the unpaginated total.
func (r *BookingRepo) List(ctx context.Context, params ports.BookingListParams) ([]domain.Booking, int64, error) {
	where := `WHERE user_id = $1`
	args := []any{params.UserID}

	if params.Type != nil {
		args = append(args, string(*params.Type))
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if params.Status != nil {
		args = append(args, string(*params.Status))
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if params.From != nil {
		args = append(args, time.Unix(*params.From, 0))
		where += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if params.To != nil {
		args = append(args, time.Unix(*params.To, 0))
		where += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bookings `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	args = append(args, params.PageSize, (params.Page-1)*params.PageSize)
	query := fmt.Sprintf(`SELECT `+bookingColumns+` FROM bookings %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b := domain.Booking{}
		var passengers []byte
		err := rows.Scan(
			&b.ID, &b.BookingCode, &b.UserID, &b.Type, &b.Status,
			&b.TotalAmount, &b.Currency, &passengers, &b.BookingData,
			&b.ExternalRef, &b.ExpiresAt, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking: %w", err)
		}
		if len(passengers) > 0 {
			if err := json.Unmarshal(passengers, &b.Passengers); err != nil {
				return nil, 0, fmt.Errorf("decoding passengers: %w", err)
			}
		}
		bookings = append(bookings, b)
	}
	return bookings, total, rows.Err()
}

// SetExternalRef records the provider reference after a successful hold.
func (r *BookingRepo) SetExternalRef(ctx context.Context, code string, externalRef string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE bookings SET external_ref = $2, updated_at = now() WHERE booking_code = $1`,
		code, externalRef)
	if err != nil {
		return fmt.Errorf("set booking external ref: %w", err)
	}
	return nil
}

// AdvanceStatusByCode writes status only when it supersedes the current one.
func (r *BookingRepo) AdvanceStatusByCode(ctx context.Context, code string, status domain.BookingStatus) (bool, error) {
	query := fmt.Sprintf(`UPDATE bookings SET status = $2, updated_at = now()
		WHERE booking_code = $1 AND `+bookingStatusRankSQL+` < `+bookingStatusRankSQL,
		"status", "$2")

	tag, err := r.pool.Exec(ctx, query, code, string(status))
	if err != nil {
		return false, fmt.Errorf("advance booking status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// AdvanceStatusByRef is the reconciler's write path. The statement matches on
// the reference alone so the returned bool distinguishes "no such booking"
// (retryable: the webhook outran the local commit) from a precedence no-op.
func (r *BookingRepo) AdvanceStatusByRef(ctx context.Context, tx pgx.Tx, externalRef string, status domain.BookingStatus) (bool, error) {
	query := fmt.Sprintf(`UPDATE bookings
		SET status = CASE WHEN `+bookingStatusRankSQL+` < `+bookingStatusRankSQL+` THEN $2 ELSE status END,
			updated_at = now()
		WHERE external_ref = $1`,
		"status", "$2")

	tag, err := tx.Exec(ctx, query, externalRef, string(status))
	if err != nil {
		return false, fmt.Errorf("advance booking status by ref: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ExpireHolds fails pending bookings whose payment hold has lapsed.
func (r *BookingRepo) ExpireHolds(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings SET status = 'failed', updated_at = now()
		WHERE status = 'pending' AND expires_at IS NOT NULL AND expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("expire booking holds: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CreateTickets inserts issued tickets inside the reconciler's transaction.
// Redelivered ticket events hit the unique ticket_number and are dropped.
func (r *BookingRepo) CreateTickets(ctx context.Context, tx pgx.Tx, tickets []domain.Ticket) error {
	for i := range tickets {
		t := &tickets[i]
		query := `INSERT INTO tickets (booking_id, ticket_number, ticket_data, ticket_url, issued_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (ticket_number) DO NOTHING`

		if _, err := tx.Exec(ctx, query,
			t.BookingID, t.TicketNumber, t.TicketData, t.TicketURL, t.IssuedAt); err != nil {
			return fmt.Errorf("insert ticket %s: %w", t.TicketNumber, err)
		}
	}
	return nil
}

// ListTickets returns the issued tickets for a booking.
func (r *BookingRepo) ListTickets(ctx context.Context, bookingID int64) ([]domain.Ticket, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, booking_id, ticket_number, ticket_data, ticket_url, issued_at
		FROM tickets WHERE booking_id = $1 ORDER BY id`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		t := domain.Ticket{}
		if err := rows.Scan(&t.ID, &t.BookingID, &t.TicketNumber, &t.TicketData, &t.TicketURL, &t.IssuedAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}
