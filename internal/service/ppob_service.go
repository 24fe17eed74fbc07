package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const ppobCatalogKey = "catalog:ppob:products"

// PpobServiceImpl implements ports.PpobService: bill inquiry and payment
// for PLN, PDAM, BPJS and similar billers.
type PpobServiceImpl struct {
	coordinator ports.Coordinator
	gateway     ports.SettlementGateway
	ppob        ports.PpobRepository
	catalog     ports.CatalogCache
	catalogTTL  time.Duration
	log         zerolog.Logger
}

// NewPpobService creates a new PpobServiceImpl.
func NewPpobService(
	coordinator ports.Coordinator,
	gateway ports.SettlementGateway,
	ppob ports.PpobRepository,
	catalog ports.CatalogCache,
	catalogTTL time.Duration,
	log zerolog.Logger,
) *PpobServiceImpl {
	return &PpobServiceImpl{
		coordinator: coordinator,
		gateway:     gateway,
		ppob:        ppob,
		catalog:     catalog,
		catalogTTL:  catalogTTL,
		log:         log,
	}
}

func (s *PpobServiceImpl) ListProducts(ctx context.Context) ([]domain.PpobProduct, error) {
	if cached, err := s.catalog.Get(ctx, ppobCatalogKey); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache read failed")
	} else if cached != nil {
		var products []domain.PpobProduct
		if err := json.Unmarshal(cached, &products); err == nil {
			return products, nil
		}
	}

	products, err := s.gateway.ListPpobProducts(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheCatalog(ctx, ppobCatalogKey, products)
	return products, nil
}

func (s *PpobServiceImpl) InquireBill(ctx context.Context, productCode, customerID string) (*domain.BillInfo, error) {
	if productCode == "" || customerID == "" {
		return nil, apperror.Validation("product_code and customer_id are required")
	}
	return s.gateway.InquireBill(ctx, productCode, customerID)
}

// ppobReceipt is the replayable response for a bill payment.
type ppobReceipt struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	CustomerName  string `json:"customer_name"`
	Amount        int64  `json:"amount"`
	AdminFee      int64  `json:"admin_fee"`
	TotalAmount   int64  `json:"total_amount"`
}

func (s *PpobServiceImpl) PayBill(ctx context.Context, idempotencyKey string, req ports.PpobPayRequest) (*ports.ExecutionResult, error) {
	if req.ProductCode == "" || req.CustomerID == "" {
		return nil, apperror.Validation("product_code and customer_id are required")
	}

	return s.coordinator.Execute(ctx, idempotencyKey, domain.ResourcePpobPayment, req,
		func(ctx context.Context) (*ports.OperationResult, error) {
			return s.payBill(ctx, req)
		})
}

// payBill re-inquires inside the execution window so the charged amount is
// the biller's current one, then persists the local row before the
// settlement call. The row must exist before the provider can call back.
func (s *PpobServiceImpl) payBill(ctx context.Context, req ports.PpobPayRequest) (*ports.OperationResult, error) {
	bill, err := s.gateway.InquireBill(ctx, req.ProductCode, req.CustomerID)
	if err != nil {
		return nil, err
	}

	billData, err := json.Marshal(bill)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encode bill data: %w", err))
	}

	txn := &domain.PpobTransaction{
		TransactionID: newTransactionID("PPB"),
		UserID:        req.UserID,
		ProductCode:   req.ProductCode,
		CustomerID:    req.CustomerID,
		Amount:        bill.Amount,
		AdminFee:      bill.AdminFee,
		TotalAmount:   bill.TotalAmount,
		Status:        domain.TxPending,
		BillData:      billData,
	}
	if err := s.ppob.Create(ctx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist ppob transaction: %w", err))
	}

	settle, err := s.gateway.PayBill(ctx, ports.GatewayPayRequest{
		ProductCode:   req.ProductCode,
		CustomerID:    req.CustomerID,
		Amount:        bill.TotalAmount,
		TransactionID: txn.TransactionID,
	})
	if err != nil {
		if rerr := s.ppob.RecordResult(ctx, txn.TransactionID, domain.TxFailed, nil, nil); rerr != nil {
			s.log.Error().Err(rerr).Str("transaction_id", txn.TransactionID).Msg("failed to record ppob failure")
		}
		return nil, err
	}

	status := domain.TxCompleted
	if settle.Pending {
		status = domain.TxProcessing
	}
	ref := settle.ExternalRef
	if err := s.ppob.RecordResult(ctx, txn.TransactionID, status, &ref, settle.Raw); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record ppob result: %w", err))
	}

	s.log.Info().Str("transaction_id", txn.TransactionID).Str("status", string(status)).
		Str("external_ref", ref).Int64("total", bill.TotalAmount).Msg("bill payment settled")

	return &ports.OperationResult{
		ResourceID: txn.TransactionID,
		Response: ppobReceipt{
			TransactionID: txn.TransactionID,
			Status:        string(status),
			CustomerName:  bill.CustomerName,
			Amount:        bill.Amount,
			AdminFee:      bill.AdminFee,
			TotalAmount:   bill.TotalAmount,
		},
	}, nil
}

func (s *PpobServiceImpl) GetTransaction(ctx context.Context, userID int64, transactionID string) (*domain.PpobTransaction, error) {
	txn, err := s.ppob.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load ppob transaction: %w", err))
	}
	if txn == nil || txn.UserID != userID {
		return nil, apperror.ErrTransactionNotFound()
	}
	return txn, nil
}

func (s *PpobServiceImpl) ListTransactions(ctx context.Context, params ports.TxListParams) ([]domain.PpobTransaction, int64, error) {
	normalizeTxListParams(&params)
	return s.ppob.List(ctx, params)
}

func (s *PpobServiceImpl) cacheCatalog(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.catalog.Set(ctx, key, raw, s.catalogTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
}

func normalizeTxListParams(params *ports.TxListParams) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
}

func newTransactionID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12]))
}
