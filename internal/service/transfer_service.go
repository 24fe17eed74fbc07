package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/pkg/apperror"

	"github.com/rs/zerolog"
)

const bankCatalogKey = "catalog:banks"

// TransferServiceImpl implements ports.TransferService for interbank
// transfers.
type TransferServiceImpl struct {
	coordinator ports.Coordinator
	gateway     ports.SettlementGateway
	transfers   ports.TransferRepository
	catalog     ports.CatalogCache
	catalogTTL  time.Duration
	log         zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(
	coordinator ports.Coordinator,
	gateway ports.SettlementGateway,
	transfers ports.TransferRepository,
	catalog ports.CatalogCache,
	catalogTTL time.Duration,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		coordinator: coordinator,
		gateway:     gateway,
		transfers:   transfers,
		catalog:     catalog,
		catalogTTL:  catalogTTL,
		log:         log,
	}
}

func (s *TransferServiceImpl) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	if cached, err := s.catalog.Get(ctx, bankCatalogKey); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache read failed")
	} else if cached != nil {
		var banks []domain.Bank
		if err := json.Unmarshal(cached, &banks); err == nil {
			return banks, nil
		}
	}

	banks, err := s.gateway.ListBanks(ctx)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(banks); err == nil {
		if err := s.catalog.Set(ctx, bankCatalogKey, raw, s.catalogTTL); err != nil {
			s.log.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return banks, nil
}

func (s *TransferServiceImpl) InquireAccount(ctx context.Context, bankCode, accountNumber string) (*domain.BankAccountInfo, error) {
	if bankCode == "" || accountNumber == "" {
		return nil, apperror.Validation("bank_code and account_number are required")
	}
	if _, err := s.bank(ctx, bankCode); err != nil {
		return nil, err
	}
	return s.gateway.InquireAccount(ctx, bankCode, accountNumber)
}

// transferReceipt is the replayable response for a transfer.
type transferReceipt struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	ToBank        string `json:"to_bank"`
	ToAccountName string `json:"to_account_name"`
	Amount        int64  `json:"amount"`
	TransferFee   int64  `json:"transfer_fee"`
	TotalAmount   int64  `json:"total_amount"`
}

func (s *TransferServiceImpl) Transfer(ctx context.Context, idempotencyKey string, req ports.TransferRequest) (*ports.ExecutionResult, error) {
	if req.ToBank == "" || req.AccountNumber == "" {
		return nil, apperror.Validation("to_bank and account_number are required")
	}
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	return s.coordinator.Execute(ctx, idempotencyKey, domain.ResourceBankTransfer, req,
		func(ctx context.Context) (*ports.OperationResult, error) {
			return s.transfer(ctx, req)
		})
}

func (s *TransferServiceImpl) transfer(ctx context.Context, req ports.TransferRequest) (*ports.OperationResult, error) {
	bank, err := s.bank(ctx, req.ToBank)
	if err != nil {
		return nil, err
	}
	if req.Amount < bank.MinAmount || req.Amount > bank.MaxAmount {
		return nil, apperror.ErrTransferLimit()
	}

	// Always resolve the destination account at the bank; a stale or typoed
	// account name must never reach settlement.
	account, err := s.gateway.InquireAccount(ctx, req.ToBank, req.AccountNumber)
	if err != nil {
		return nil, err
	}
	inquiryData, err := json.Marshal(account)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encode inquiry data: %w", err))
	}

	txn := &domain.BankTransfer{
		TransactionID:   newTransactionID("TRF"),
		UserID:          req.UserID,
		FromBank:        req.FromBank,
		ToBank:          req.ToBank,
		ToAccountNumber: req.AccountNumber,
		ToAccountName:   account.AccountName,
		Amount:          req.Amount,
		TransferFee:     bank.TransferFee,
		TotalAmount:     req.Amount + bank.TransferFee,
		Status:          domain.TxPending,
		InquiryData:     inquiryData,
	}
	if err := s.transfers.Create(ctx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist transfer: %w", err))
	}

	settle, err := s.gateway.Transfer(ctx, ports.GatewayTransferRequest{
		BankCode:      req.ToBank,
		AccountNumber: req.AccountNumber,
		AccountName:   account.AccountName,
		Amount:        req.Amount,
		TransactionID: txn.TransactionID,
	})
	if err != nil {
		if rerr := s.transfers.RecordResult(ctx, txn.TransactionID, domain.TxFailed, nil, nil); rerr != nil {
			s.log.Error().Err(rerr).Str("transaction_id", txn.TransactionID).Msg("failed to record transfer failure")
		}
		return nil, err
	}

	status := domain.TxCompleted
	if settle.Pending {
		status = domain.TxProcessing
	}
	ref := settle.ExternalRef
	if err := s.transfers.RecordResult(ctx, txn.TransactionID, status, &ref, settle.Raw); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record transfer result: %w", err))
	}

	s.log.Info().Str("transaction_id", txn.TransactionID).Str("to_bank", req.ToBank).
		Str("status", string(status)).Int64("amount", req.Amount).Msg("transfer submitted")

	return &ports.OperationResult{
		ResourceID: txn.TransactionID,
		Response: transferReceipt{
			TransactionID: txn.TransactionID,
			Status:        string(status),
			ToBank:        req.ToBank,
			ToAccountName: account.AccountName,
			Amount:        req.Amount,
			TransferFee:   bank.TransferFee,
			TotalAmount:   req.Amount + bank.TransferFee,
		},
	}, nil
}

// bank resolves a destination bank from the cached catalog.
func (s *TransferServiceImpl) bank(ctx context.Context, code string) (*domain.Bank, error) {
	banks, err := s.ListBanks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range banks {
		if banks[i].Code == code {
			return &banks[i], nil
		}
	}
	return nil, apperror.ErrUnsupportedBank(code)
}

func (s *TransferServiceImpl) GetTransfer(ctx context.Context, userID int64, transactionID string) (*domain.BankTransfer, error) {
	txn, err := s.transfers.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load transfer: %w", err))
	}
	if txn == nil || txn.UserID != userID {
		return nil, apperror.ErrTransactionNotFound()
	}
	return txn, nil
}

func (s *TransferServiceImpl) ListTransfers(ctx context.Context, params ports.TxListParams) ([]domain.BankTransfer, int64, error) {
	normalizeTxListParams(&params)
	return s.transfers.List(ctx, params)
}
