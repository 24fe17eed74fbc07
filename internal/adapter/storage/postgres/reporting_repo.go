package postgres

import (
	"context"
	"fmt"
	"time"

	"multipay-aggregator/internal/core/ports"
)

// ReportingRepo implements ports.ReportingRepository with cross-table
// aggregate queries for the admin surface.
type ReportingRepo struct {
	pool Pool
}

// NewReportingRepo creates a new ReportingRepo.
func NewReportingRepo(pool Pool) *ReportingRepo {
	return &ReportingRepo{pool: pool}
}

// GetSystemStats collects the dashboard counters in one round trip.
func (r *ReportingRepo) GetSystemStats(ctx context.Context) (*ports.SystemStats, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM users),
		(SELECT COUNT(*) FROM bookings),
		(SELECT COUNT(*) FROM bookings WHERE status = 'pending'),
		(SELECT COUNT(*) FROM bookings WHERE status = 'completed'),
		(SELECT COUNT(*) FROM ppob_transactions),
		(SELECT COUNT(*) FROM wallet_topups),
		(SELECT COUNT(*) FROM bank_transfers),
		(SELECT (SELECT COUNT(*) FROM ppob_transactions WHERE status = 'failed')
			+ (SELECT COUNT(*) FROM wallet_topups WHERE status = 'failed')
			+ (SELECT COUNT(*) FROM bank_transfers WHERE status = 'failed')),
		(SELECT COALESCE((SELECT SUM(total_amount) FROM ppob_transactions WHERE status = 'completed'), 0)
			+ COALESCE((SELECT SUM(amount) FROM wallet_topups WHERE status = 'completed'), 0)
			+ COALESCE((SELECT SUM(total_amount) FROM bank_transfers WHERE status = 'completed'), 0))`

	stats := &ports.SystemStats{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalUsers, &stats.TotalBookings, &stats.PendingBookings,
		&stats.CompletedBookings, &stats.TotalPpob, &stats.TotalTopups,
		&stats.TotalTransfers, &stats.FailedSettlements, &stats.RevenueMinor,
	)
	if err != nil {
		return nil, fmt.Errorf("get system stats: %w", err)
	}
	return stats, nil
}

// ListFailedTransactions returns failed settlements across all product
// tables, newest first.
func (r *ReportingRepo) ListFailedTransactions(ctx context.Context, since *int64, limit int) ([]ports.FailedTransaction, error) {
	sinceTime := time.Unix(0, 0)
	if since != nil {
		sinceTime = time.Unix(*since, 0)
	}

	query := `SELECT domain, transaction_id, user_id, amount, failed_at FROM (
			SELECT 'booking' AS domain, booking_code AS transaction_id, user_id,
				total_amount AS amount, updated_at AS failed_at
			FROM bookings WHERE status = 'failed'
		UNION ALL
			SELECT 'ppob', transaction_id, user_id, total_amount, updated_at
			FROM ppob_transactions WHERE status = 'failed'
		UNION ALL
			SELECT 'topup', transaction_id, user_id, amount, updated_at
			FROM wallet_topups WHERE status = 'failed'
		UNION ALL
			SELECT 'transfer', transaction_id, user_id, total_amount, updated_at
			FROM bank_transfers WHERE status = 'failed'
	) failed
	WHERE failed_at >= $1
	ORDER BY failed_at DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, sinceTime, limit)
	if err != nil {
		return nil, fmt.Errorf("list failed transactions: %w", err)
	}
	defer rows.Close()

	var failed []ports.FailedTransaction
	for rows.Next() {
		f := ports.FailedTransaction{}
		if err := rows.Scan(&f.Domain, &f.TransactionID, &f.UserID, &f.Amount, &f.FailedAt); err != nil {
			return nil, fmt.Errorf("scan failed transaction: %w", err)
		}
		failed = append(failed, f)
	}
	return failed, rows.Err()
}
