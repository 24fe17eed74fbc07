package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// retryBackoff is the delay before each successive reprocessing attempt.
// Attempts beyond the table reuse the last interval until the ceiling.
var retryBackoff = []time.Duration{
	15 * time.Second,
	1 * time.Minute,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// ReconcilerServiceImpl implements ports.Reconciler. It is the only writer
// of settlement status driven by provider callbacks: events are persisted
// first, then applied, and the status write commits in the same database
// transaction as the processed flag.
type ReconcilerServiceImpl struct {
	events      ports.WebhookEventRepository
	bookings    ports.BookingRepository
	ppob        ports.PpobRepository
	topups      ports.TopupRepository
	transfers   ports.TransferRepository
	transactor  ports.DBTransactor
	maxAttempts int
	log         zerolog.Logger
}

// NewReconcilerService creates a new ReconcilerServiceImpl.
func NewReconcilerService(
	events ports.WebhookEventRepository,
	bookings ports.BookingRepository,
	ppob ports.PpobRepository,
	topups ports.TopupRepository,
	transfers ports.TransferRepository,
	transactor ports.DBTransactor,
	maxAttempts int,
	log zerolog.Logger,
) *ReconcilerServiceImpl {
	return &ReconcilerServiceImpl{
		events:      events,
		bookings:    bookings,
		ppob:        ppob,
		topups:      topups,
		transfers:   transfers,
		transactor:  transactor,
		maxAttempts: maxAttempts,
		log:         log,
	}
}

// Ingest persists the event and attempts one processing pass. Persisting is
// the contract with the provider: once the event is stored, Ingest reports
// success even if processing fails, and the sweep loop retries later.
func (s *ReconcilerServiceImpl) Ingest(ctx context.Context, eventID, eventType, source string, payload json.RawMessage) error {
	event := &domain.WebhookEvent{
		EventID:   eventID,
		EventType: eventType,
		Source:    source,
		Payload:   payload,
	}

	inserted, err := s.events.Insert(ctx, event)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("persist webhook event: %w", err))
	}
	if !inserted {
		s.log.Debug().Str("event_id", eventID).Msg("webhook event redelivered, already recorded")
		return nil
	}

	if err := s.processEvent(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("event_id", eventID).Str("event_type", eventType).
			Msg("webhook event processing deferred to sweep")
		s.scheduleRetry(ctx, event, err, time.Now().UTC())
	}
	return nil
}

// Sweep reprocesses due events in creation order. Individual failures are
// rescheduled, never aborting the batch.
func (s *ReconcilerServiceImpl) Sweep(ctx context.Context, now time.Time) error {
	due, err := s.events.ListDue(ctx, now, 50)
	if err != nil {
		return fmt.Errorf("list due webhook events: %w", err)
	}

	for i := range due {
		event := &due[i]
		if err := s.processEvent(ctx, event); err != nil {
			s.scheduleRetry(ctx, event, err, now)
			continue
		}
		s.log.Info().Str("event_id", event.EventID).Str("event_type", event.EventType).
			Int("attempts", event.ProcessingAttempts+1).Msg("webhook event reconciled")
	}
	return nil
}

// Retry forces one processing attempt, including for permanently failed
// events. Used from the admin surface after an operator fixed the cause.
func (s *ReconcilerServiceImpl) Retry(ctx context.Context, eventID string) error {
	event, err := s.events.GetByEventID(ctx, eventID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load webhook event: %w", err))
	}
	if event == nil {
		return apperror.ErrWebhookEventNotFound()
	}
	if event.Processed {
		return nil
	}

	if err := s.processEvent(ctx, event); err != nil {
		s.scheduleRetry(ctx, event, err, time.Now().UTC())
		return apperror.InternalError(fmt.Errorf("reprocess webhook event: %w", err))
	}
	return nil
}

// processEvent applies the event's status change and marks it processed in
// one transaction, so a crash between the two cannot strand state.
func (s *ReconcilerServiceImpl) processEvent(ctx context.Context, event *domain.WebhookEvent) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reconcile tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.applyEvent(ctx, tx, event); err != nil {
		return err
	}
	if err := s.events.MarkProcessed(ctx, tx, event.EventID); err != nil {
		return fmt.Errorf("mark event processed: %w", err)
	}
	return tx.Commit(ctx)
}

func (s *ReconcilerServiceImpl) applyEvent(ctx context.Context, tx pgx.Tx, event *domain.WebhookEvent) error {
	switch event.EventType {
	case domain.EventBookingConfirmed, domain.EventBookingCancelled, domain.EventTicketIssued,
		domain.EventPaymentCompleted, domain.EventPaymentFailed,
		domain.EventTransferCompleted, domain.EventTransferFailed,
		domain.EventTopupCompleted, domain.EventTopupFailed:
	default:
		// Providers add event types without notice. Record and move on so
		// the retry queue never clogs with events we will never handle.
		s.log.Warn().Str("event_id", event.EventID).Str("event_type", event.EventType).
			Msg("unknown webhook event type, marking processed without side effects")
		return nil
	}

	var payload domain.EventPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return fmt.Errorf("decode event payload: %w", err)
	}
	if payload.ExternalRef == "" {
		return errors.New("event payload missing external_ref")
	}

	switch event.EventType {
	case domain.EventBookingConfirmed:
		return s.advanceBooking(ctx, tx, payload.ExternalRef, domain.BookingConfirmed)
	case domain.EventBookingCancelled:
		return s.advanceBooking(ctx, tx, payload.ExternalRef, domain.BookingCancelled)
	case domain.EventTicketIssued:
		return s.applyTicketIssued(ctx, tx, &payload)
	case domain.EventPaymentCompleted:
		return s.advanceSettlement(ctx, tx, s.ppob.AdvanceStatusByRef, "ppob", payload.ExternalRef, domain.TxCompleted)
	case domain.EventPaymentFailed:
		return s.advanceSettlement(ctx, tx, s.ppob.AdvanceStatusByRef, "ppob", payload.ExternalRef, domain.TxFailed)
	case domain.EventTopupCompleted:
		return s.advanceSettlement(ctx, tx, s.topups.AdvanceStatusByRef, "topup", payload.ExternalRef, domain.TxCompleted)
	case domain.EventTopupFailed:
		return s.advanceSettlement(ctx, tx, s.topups.AdvanceStatusByRef, "topup", payload.ExternalRef, domain.TxFailed)
	case domain.EventTransferCompleted:
		return s.advanceSettlement(ctx, tx, s.transfers.AdvanceStatusByRef, "transfer", payload.ExternalRef, domain.TxCompleted)
	case domain.EventTransferFailed:
		return s.advanceSettlement(ctx, tx, s.transfers.AdvanceStatusByRef, "transfer", payload.ExternalRef, domain.TxFailed)
	}
	return nil
}

func (s *ReconcilerServiceImpl) advanceBooking(ctx context.Context, tx pgx.Tx, externalRef string, status domain.BookingStatus) error {
	matched, err := s.bookings.AdvanceStatusByRef(ctx, tx, externalRef, status)
	if err != nil {
		return fmt.Errorf("advance booking status: %w", err)
	}
	if !matched {
		// The callback can outrun the local commit that records the
		// reference. Retryable: the sweep will find the row later.
		return fmt.Errorf("no booking for external ref %s", externalRef)
	}
	return nil
}

// advanceSettlement applies a TxStatus write for the three settlement tables
// that share the lifecycle.
func (s *ReconcilerServiceImpl) advanceSettlement(
	ctx context.Context,
	tx pgx.Tx,
	advance func(context.Context, pgx.Tx, string, domain.TxStatus) (bool, error),
	kind, externalRef string,
	status domain.TxStatus,
) error {
	matched, err := advance(ctx, tx, externalRef, status)
	if err != nil {
		return fmt.Errorf("advance %s status: %w", kind, err)
	}
	if !matched {
		return fmt.Errorf("no %s transaction for external ref %s", kind, externalRef)
	}
	return nil
}

func (s *ReconcilerServiceImpl) applyTicketIssued(ctx context.Context, tx pgx.Tx, payload *domain.EventPayload) error {
	booking, err := s.bookings.GetByRef(ctx, payload.ExternalRef)
	if err != nil {
		return fmt.Errorf("load booking by ref: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("no booking for external ref %s", payload.ExternalRef)
	}

	if _, err := s.bookings.AdvanceStatusByRef(ctx, tx, payload.ExternalRef, domain.BookingCompleted); err != nil {
		return fmt.Errorf("advance booking status: %w", err)
	}

	if len(payload.Tickets) == 0 {
		return nil
	}

	var issued []struct {
		TicketNumber string          `json:"ticket_number"`
		TicketURL    string          `json:"ticket_url"`
		Detail       json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(payload.Tickets, &issued); err != nil {
		return fmt.Errorf("decode tickets: %w", err)
	}

	now := time.Now().UTC()
	tickets := make([]domain.Ticket, 0, len(issued))
	for _, t := range issued {
		if t.TicketNumber == "" {
			return errors.New("issued ticket missing ticket_number")
		}
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
	if err := s.bookings.CreateTickets(ctx, tx, tickets); err != nil {
		return fmt.Errorf("store tickets: %w", err)
	}
	return nil
}

// scheduleRetry records the failure and either schedules the next attempt or
// flags the event permanently failed once the ceiling is reached.
func (s *ReconcilerServiceImpl) scheduleRetry(ctx context.Context, event *domain.WebhookEvent, cause error, now time.Time) {
	attempts := event.ProcessingAttempts + 1
	if attempts >= s.maxAttempts {
		if err := s.events.RecordFailure(ctx, event.EventID, cause.Error(), nil, true); err != nil {
			s.log.Error().Err(err).Str("event_id", event.EventID).Msg("failed to flag webhook event permanently failed")
			return
		}
		s.log.Error().Str("event_id", event.EventID).Str("event_type", event.EventType).
			Int("attempts", attempts).Str("last_error", cause.Error()).
			Msg("webhook event permanently failed, operator intervention required")
		return
	}

	backoff := retryBackoff[len(retryBackoff)-1]
	if attempts-1 < len(retryBackoff) {
		backoff = retryBackoff[attempts-1]
	}
	next := now.Add(backoff)
	if err := s.events.RecordFailure(ctx, event.EventID, cause.Error(), &next, false); err != nil {
		s.log.Error().Err(err).Str("event_id", event.EventID).Msg("failed to record webhook processing failure")
	}
}
