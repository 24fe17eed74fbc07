package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// TopupRepo implements ports.TopupRepository.
type TopupRepo struct {
	pool Pool
}

// NewTopupRepo creates a new TopupRepo.
func NewTopupRepo(pool Pool) *TopupRepo {
	return &TopupRepo{pool: pool}
}

const topupColumns = `id, transaction_id, user_id, phone_number, operator,
	product_code, denomination, amount, status, topup_data, external_ref,
	processed_at, created_at, updated_at`

// Create inserts a pending topup.
func (r *TopupRepo) Create(ctx context.Context, t *domain.WalletTopup) error {
	query := `INSERT INTO wallet_topups
			(transaction_id, user_id, phone_number, operator,
			 product_code, denomination, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		t.TransactionID, t.UserID, t.PhoneNumber, t.Operator,
		t.ProductCode, t.Denomination, t.Amount, string(t.Status),
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert topup: %w", err)
	}
	return nil
}

// GetByTransactionID fetches one topup, nil when absent.
func (r *TopupRepo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.WalletTopup, error) {
	query := `SELECT ` + topupColumns + ` FROM wallet_topups WHERE transaction_id = $1`

	t := &domain.WalletTopup{}
	err := r.pool.QueryRow(ctx, query, transactionID).Scan(
		&t.ID, &t.TransactionID, &t.UserID, &t.PhoneNumber, &t.Operator,
		&t.ProductCode, &t.Denomination, &t.Amount, &t.Status, &t.TopupData,
		&t.ExternalRef, &t.ProcessedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get topup: %w", err)
	}
	return t, nil
}

// List returns a page of the user's topups plus the total.
func (r *TopupRepo) List(ctx context.Context, params ports.TxListParams) ([]domain.WalletTopup, int64, error) {
	where, args := txListWhere(params)

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM wallet_topups `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count topups: %w", err)
	}

	args = append(args, params.PageSize, (params.Page-1)*params.PageSize)
	query := fmt.Sprintf(`SELECT `+topupColumns+` FROM wallet_topups %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list topups: %w", err)
	}
	defer rows.Close()

	var txns []domain.WalletTopup
	for rows.Next() {
		t := domain.WalletTopup{}
		err := rows.Scan(
			&t.ID, &t.TransactionID, &t.UserID, &t.PhoneNumber, &t.Operator,
			&t.ProductCode, &t.Denomination, &t.Amount, &t.Status, &t.TopupData,
			&t.ExternalRef, &t.ProcessedAt, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan topup: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, total, rows.Err()
}

// RecordResult writes the synchronous gateway outcome; terminal statuses also
// stamp processed_at.
func (r *TopupRepo) RecordResult(ctx context.Context, transactionID string, status domain.TxStatus, externalRef *string, topupData json.RawMessage) error {
	query := fmt.Sprintf(`UPDATE wallet_topups
		SET status = CASE WHEN `+txStatusRankSQL+` < `+txStatusRankSQL+` THEN $2 ELSE status END,
			external_ref = COALESCE($3, external_ref),
			topup_data = COALESCE($4, topup_data),
			processed_at = CASE WHEN $2 IN ('completed', 'failed', 'cancelled') THEN now() ELSE processed_at END,
			updated_at = now()
		WHERE transaction_id = $1`,
		"status", "$2")

	_, err := r.pool.Exec(ctx, query, transactionID, string(status), externalRef, topupData)
	if err != nil {
		return fmt.Errorf("record topup result: %w", err)
	}
	return nil
}

// AdvanceStatusByRef is the reconciler's write path; see BookingRepo for the
// matched-row semantics.
func (r *TopupRepo) AdvanceStatusByRef(ctx context.Context, tx pgx.Tx, externalRef string, status domain.TxStatus) (bool, error) {
	query := fmt.Sprintf(`UPDATE wallet_topups
		SET status = CASE WHEN `+txStatusRankSQL+` < `+txStatusRankSQL+` THEN $2 ELSE status END,
			processed_at = CASE WHEN $2 IN ('completed', 'failed', 'cancelled') THEN now() ELSE processed_at END,
			updated_at = now()
		WHERE external_ref = $1`,
		"status", "$2")

	tag, err := tx.Exec(ctx, query, externalRef, string(status))
	if err != nil {
		return false, fmt.Errorf("advance topup status by ref: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
