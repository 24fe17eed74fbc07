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

// TransferRepo implements ports.TransferRepository.
type TransferRepo struct {
	pool Pool
}

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(pool Pool) *TransferRepo {
	return &TransferRepo{pool: pool}
}

const transferColumns = `id, transaction_id, user_id, from_bank, to_bank,
	to_account_number, to_account_name, amount, transfer_fee, total_amount,
	status, inquiry_data, transfer_data, external_ref, processed_at,
	created_at, updated_at`

// Create inserts a pending transfer.
func (r *TransferRepo) Create(ctx context.Context, t *domain.BankTransfer) error {
	query := `INSERT INTO bank_transfers
			(transaction_id, user_id, from_bank, to_bank, to_account_number,
			 to_account_name, amount, transfer_fee, total_amount, status, inquiry_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		t.TransactionID, t.UserID, t.FromBank, t.ToBank, t.ToAccountNumber,
		t.ToAccountName, t.Amount, t.TransferFee, t.TotalAmount,
		string(t.Status), t.InquiryData,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// GetByTransactionID fetches one transfer, nil when absent.
func (r *TransferRepo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.BankTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM bank_transfers WHERE transaction_id = $1`

	t := &domain.BankTransfer{}
	err := r.pool.QueryRow(ctx, query, transactionID).Scan(
		&t.ID, &t.TransactionID, &t.UserID, &t.FromBank, &t.ToBank,
		&t.ToAccountNumber, &t.ToAccountName, &t.Amount, &t.TransferFee,
		&t.TotalAmount, &t.Status, &t.InquiryData, &t.TransferData,
		&t.ExternalRef, &t.ProcessedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return t, nil
}

// List returns a page of the user's transfers plus the total.
func (r *TransferRepo) List(ctx context.Context, params ports.TxListParams) ([]domain.BankTransfer, int64, error) {
	where, args := txListWhere(params)

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bank_transfers `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transfers: %w", err)
	}

	args = append(args, params.PageSize, (params.Page-1)*params.PageSize)
	query := fmt.Sprintf(`SELECT `+transferColumns+` FROM bank_transfers %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var txns []domain.BankTransfer
	for rows.Next() {
		t := domain.BankTransfer{}
		err := rows.Scan(
			&t.ID, &t.TransactionID, &t.UserID, &t.FromBank, &t.ToBank,
			&t.ToAccountNumber, &t.ToAccountName, &t.Amount, &t.TransferFee,
			&t.TotalAmount, &t.Status, &t.InquiryData, &t.TransferData,
			&t.ExternalRef, &t.ProcessedAt, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan transfer: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, total, rows.Err()
}

// RecordResult writes the synchronous gateway outcome; terminal statuses also
// stamp processed_at.
func (r *TransferRepo) RecordResult(ctx context.Context, transactionID string, status domain.TxStatus, externalRef *string, transferData json.RawMessage) error {
	query := fmt.Sprintf(`UPDATE bank_transfers
		SET status = CASE WHEN `+txStatusRankSQL+` < `+txStatusRankSQL+` THEN $2 ELSE status END,
			external_ref = COALESCE($3, external_ref),
			transfer_data = COALESCE($4, transfer_data),
			processed_at = CASE WHEN $2 IN ('completed', 'failed', 'cancelled') THEN now() ELSE processed_at END,
			updated_at = now()
		WHERE transaction_id = $1`,
		"status", "$2")

	_, err := r.pool.Exec(ctx, query, transactionID, string(status), externalRef, transferData)
	if err != nil {
		return fmt.Errorf("record transfer result: %w", err)
	}
	return nil
}

// AdvanceStatusByRef is the reconciler's write path; see BookingRepo for the
// matched-row semantics.
func (r *TransferRepo) AdvanceStatusByRef(ctx context.Context, tx pgx.Tx, externalRef string, status domain.TxStatus) (bool, error) {
	query := fmt.Sprintf(`UPDATE bank_transfers
		SET status = CASE WHEN `+txStatusRankSQL+` < `+txStatusRankSQL+` THEN $2 ELSE status END,
			processed_at = CASE WHEN $2 IN ('completed', 'failed', 'cancelled') THEN now() ELSE processed_at END,
			updated_at = now()
		WHERE external_ref = $1`,
		"status", "$2")

	tag, err := tx.Exec(ctx, query, externalRef, string(status))
	if err != nil {
		return false, fmt.Errorf("advance transfer status by ref: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
