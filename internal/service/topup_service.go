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

// TopupServiceImpl implements ports.TopupService for pulsa and data
// package topups.
type TopupServiceImpl struct {
	coordinator ports.Coordinator
	gateway     ports.SettlementGateway
	topups      ports.TopupRepository
	catalog     ports.CatalogCache
	catalogTTL  time.Duration
	log         zerolog.Logger
}

// NewTopupService creates a new TopupServiceImpl.
func NewTopupService(
	coordinator ports.Coordinator,
	gateway ports.SettlementGateway,
	topups ports.TopupRepository,
	catalog ports.CatalogCache,
	catalogTTL time.Duration,
	log zerolog.Logger,
) *TopupServiceImpl {
	return &TopupServiceImpl{
		coordinator: coordinator,
		gateway:     gateway,
		topups:      topups,
		catalog:     catalog,
		catalogTTL:  catalogTTL,
		log:         log,
	}
}

func (s *TopupServiceImpl) ListProducts(ctx context.Context, operator string) ([]domain.PulsaProduct, error) {
	if operator == "" {
		return nil, apperror.Validation("operator is required")
	}

	key := "catalog:pulsa:" + operator
	if cached, err := s.catalog.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache read failed")
	} else if cached != nil {
		var products []domain.PulsaProduct
		if err := json.Unmarshal(cached, &products); err == nil {
			return products, nil
		}
	}

	products, err := s.gateway.ListPulsaProducts(ctx, operator)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(products); err == nil {
		if err := s.catalog.Set(ctx, key, raw, s.catalogTTL); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
		}
	}
	return products, nil
}

func (s *TopupServiceImpl) DetectOperator(phone string) string {
	return domain.OperatorForPhone(phone)
}

// topupReceipt is the replayable response for a pulsa topup.
type topupReceipt struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	PhoneNumber   string `json:"phone_number"`
	Operator      string `json:"operator"`
	Denomination  int64  `json:"denomination"`
	Amount        int64  `json:"amount"`
}

func (s *TopupServiceImpl) Topup(ctx context.Context, idempotencyKey string, req ports.TopupRequest) (*ports.ExecutionResult, error) {
	if req.PhoneNumber == "" || req.ProductCode == "" {
		return nil, apperror.Validation("phone_number and product_code are required")
	}
	operator := domain.OperatorForPhone(req.PhoneNumber)
	if operator == "" {
		return nil, apperror.Validation("unrecognized mobile number prefix")
	}

	return s.coordinator.Execute(ctx, idempotencyKey, domain.ResourcePulsaTopup, req,
		func(ctx context.Context) (*ports.OperationResult, error) {
			return s.topup(ctx, req, operator)
		})
}

func (s *TopupServiceImpl) topup(ctx context.Context, req ports.TopupRequest, operator string) (*ports.OperationResult, error) {
	product, err := s.findProduct(ctx, operator, req.ProductCode)
	if err != nil {
		return nil, err
	}

	txn := &domain.WalletTopup{
		TransactionID: newTransactionID("TOP"),
		UserID:        req.UserID,
		PhoneNumber:   req.PhoneNumber,
		Operator:      operator,
		ProductCode:   req.ProductCode,
		Denomination:  product.Denomination,
		Amount:        product.Price,
		Status:        domain.TxPending,
	}
	if err := s.topups.Create(ctx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist topup: %w", err))
	}

	settle, err := s.gateway.TopupPulsa(ctx, ports.GatewayTopupRequest{
		ProductCode:   req.ProductCode,
		PhoneNumber:   req.PhoneNumber,
		TransactionID: txn.TransactionID,
	})
	if err != nil {
		if rerr := s.topups.RecordResult(ctx, txn.TransactionID, domain.TxFailed, nil, nil); rerr != nil {
			s.log.Error().Err(rerr).Str("transaction_id", txn.TransactionID).Msg("failed to record topup failure")
		}
		return nil, err
	}

	// Operators confirm most topups asynchronously.
	status := domain.TxCompleted
	if settle.Pending {
		status = domain.TxProcessing
	}
	ref := settle.ExternalRef
	if err := s.topups.RecordResult(ctx, txn.TransactionID, status, &ref, settle.Raw); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record topup result: %w", err))
	}

	s.log.Info().Str("transaction_id", txn.TransactionID).Str("operator", operator).
		Str("status", string(status)).Msg("topup submitted")

	return &ports.OperationResult{
		ResourceID: txn.TransactionID,
		Response: topupReceipt{
			TransactionID: txn.TransactionID,
			Status:        string(status),
			PhoneNumber:   req.PhoneNumber,
			Operator:      operator,
			Denomination:  product.Denomination,
			Amount:        product.Price,
		},
	}, nil
}

func (s *TopupServiceImpl) findProduct(ctx context.Context, operator, code string) (*domain.PulsaProduct, error) {
	products, err := s.ListProducts(ctx, operator)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Code == code {
			return &products[i], nil
		}
	}
	return nil, apperror.ErrUnknownProduct(code)
}

func (s *TopupServiceImpl) GetTransaction(ctx context.Context, userID int64, transactionID string) (*domain.WalletTopup, error) {
	txn, err := s.topups.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load topup: %w", err))
	}
	if txn == nil || txn.UserID != userID {
		return nil, apperror.ErrTransactionNotFound()
	}
	return txn, nil
}

func (s *TopupServiceImpl) ListTransactions(ctx context.Context, params ports.TxListParams) ([]domain.WalletTopup, int64, error) {
	normalizeTxListParams(&params)
	return s.topups.List(ctx, params)
}
