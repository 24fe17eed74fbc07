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

// txStatusRankSQL mirrors domain.TxStatus.Supersedes for in-statement
// precedence checks, shared by the three settlement transaction repos.
const txStatusRankSQL = `CASE %s WHEN 'pending' THEN 0 WHEN 'processing' THEN 1 ELSE 2 END`

// PpobRepo implements ports.PpobRepository.
type PpobRepo struct {
	pool Pool
}

// NewPpobRepo creates a new PpobRepo.
func NewPpobRepo(pool Pool) *PpobRepo {
	return &PpobRepo{pool: pool}
}

const ppobColumns = `id, transaction_id, user_id, product_code, customer_id,
	amount, admin_fee, total_amount, status, bill_data, payment_data,
	external_ref, created_at, updated_at`

// Create inserts a pending bill payment.
func (r *PpobRepo) Create(ctx context.Context, t *domain.PpobTransaction) error {
	query := `INSERT INTO ppob_transactions
			(transaction_id, user_id, product_code, customer_id,
			 amount, admin_fee, total_amount, status, bill_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		t.TransactionID, t.UserID, t.ProductCode, t.CustomerID,
		t.Amount, t.AdminFee, t.TotalAmount, string(t.Status), t.BillData,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert ppob transaction: %w", err)
	}
	return nil
}

// GetByTransactionID fetches one transaction, nil when absent.
func (r *PpobRepo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.PpobTransaction, error) {
	query := `SELECT ` + ppobColumns + ` FROM ppob_transactions WHERE transaction_id = $1`

	t := &domain.PpobTransaction{}
	err := r.pool.QueryRow(ctx, query, transactionID).Scan(
		&t.ID, &t.TransactionID, &t.UserID, &t.ProductCode, &t.CustomerID,
		&t.Amount, &t.AdminFee, &t.TotalAmount, &t.Status, &t.BillData,
		&t.PaymentData, &t.ExternalRef, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ppob transaction: %w", err)
	}
	return t, nil
}

// List returns a page of the user's bill payments plus the total.
func (r *PpobRepo) List(ctx context.Context, params ports.TxListParams) ([]domain.PpobTransaction, int64, error) {
	where, args := txListWhere(params)

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ppob_transactions `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ppob transactions: %w", err)
	}

	args = append(args, params.PageSize, (params.Page-1)*params.PageSize)
	query := fmt.Sprintf(`SELECT `+ppobColumns+` FROM ppob_transactions %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ppob transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.PpobTransaction
	for rows.Next() {
		t := domain.PpobTransaction{}
		err := rows.Scan(
			&t.ID, &t.TransactionID, &t.UserID, &t.ProductCode, &t.CustomerID,
			&t.Amount, &t.AdminFee, &t.TotalAmount, &t.Status, &t.BillData,
			&t.PaymentData, &t.ExternalRef, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan ppob transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, total, rows.Err()
}

// RecordResult writes the synchronous gateway outcome. The status write is
// precedence-guarded: a webhook that already completed the row wins over a
// late processing write.
func (r *PpobRepo) RecordResult(ctx context.Context, transactionID string, status domain.TxStatus, externalRef *string, paymentData json.RawMessage) error {
	query := fmt.Sprintf(`UPDATE ppob_transactions
		SET status = CASE WHEN `+txStatusRankSQL+` < `+txStatusRankSQL+` THEN $2 ELSE status END,
			external_ref = COALESCE($3, external_ref),
			payment_data = COALESCE($4, payment_data),
			updated_at = now()
		WHERE transaction_id = $1`,
		"status", "$2")

	_, err := r.pool.Exec(ctx, query, transactionID, string(status), externalRef, paymentData)
	if err != nil {
		return fmt.Errorf("record ppob result: %w", err)
	}
	return nil
}

// AdvanceStatusByRef is the reconciler's write path; see BookingRepo for the
// matched-row semantics.
func (r *PpobRepo) AdvanceStatusByRef(ctx context.Context, tx pgx.Tx, externalRef string, status domain.TxStatus) (bool, error) {
	query := fmt.Sprintf(`UPDATE ppob_transactions
		SET status = CASE WHEN `+txStatusRankSQL+` < `+txStatusRankSQL+` THEN $2 ELSE status END,
			updated_at = now()
		WHERE external_ref = $1`,
		"status", "$2")

	tag, err := tx.Exec(ctx, query, externalRef, string(status))
	if err != nil {
		return false, fmt.Errorf("advance ppob status by ref: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// txListWhere builds the shared filter clause for the settlement transaction
// listings. Args start at $1 = user id.
func txListWhere(params ports.TxListParams) (string, []any) {
	where := `WHERE user_id = $1`
	args := []any{params.UserID}

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
	return where, args
}
