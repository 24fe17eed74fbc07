package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/internal/core/ports/mocks"
	"multipay-aggregator/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type transferTestDeps struct {
	svc         *TransferServiceImpl
	coordinator *mocks.MockCoordinator
	gateway     *mocks.MockSettlementGateway
	transfers   *mocks.MockTransferRepository
	catalog     *mocks.MockCatalogCache
	ctrl        *gomock.Controller
}

func setupTransferService(t *testing.T) *transferTestDeps {
	ctrl := gomock.NewController(t)
	d := &transferTestDeps{
		coordinator: mocks.NewMockCoordinator(ctrl),
		gateway:     mocks.NewMockSettlementGateway(ctrl),
		transfers:   mocks.NewMockTransferRepository(ctrl),
		catalog:     mocks.NewMockCatalogCache(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewTransferService(d.coordinator, d.gateway, d.transfers, d.catalog, 15*time.Minute, zerolog.Nop())
	return d
}

func bcaCatalog(t *testing.T) []byte {
	t.Helper()
	raw, err := json.Marshal([]domain.Bank{
		{Code: "BCA", Name: "Bank Central Asia", TransferFee: 6_500, MinAmount: 10_000, MaxAmount: 50_000_000},
	})
	require.NoError(t, err)
	return raw
}

func TestTransferService_Transfer_InquiresThenSettles(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	req := ports.TransferRequest{
		UserID:        7,
		FromBank:      "MULTIPAY",
		ToBank:        "BCA",
		AccountNumber: "1234567890",
		Amount:        500_000,
	}

	d.coordinator.EXPECT().
		Execute(gomock.Any(), "req-1", domain.ResourceBankTransfer, req, gomock.Any()).
		DoAndReturn(passthroughExecute)
	d.catalog.EXPECT().Get(gomock.Any(), bankCatalogKey).Return(bcaCatalog(t), nil)
	d.gateway.EXPECT().InquireAccount(gomock.Any(), "BCA", "1234567890").
		Return(&domain.BankAccountInfo{BankCode: "BCA", AccountNumber: "1234567890", AccountName: "SITI AMINAH"}, nil)
	d.transfers.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *domain.BankTransfer) error {
			assert.Equal(t, "SITI AMINAH", txn.ToAccountName)
			assert.Equal(t, int64(6_500), txn.TransferFee)
			assert.Equal(t, int64(506_500), txn.TotalAmount)
			return nil
		})
	d.gateway.EXPECT().
		Transfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, greq ports.GatewayTransferRequest) (*ports.GatewaySettleResult, error) {
			assert.Equal(t, "SITI AMINAH", greq.AccountName)
			return &ports.GatewaySettleResult{ExternalRef: "PRV-TR1", Pending: true}, nil
		})
	d.transfers.EXPECT().
		RecordResult(gomock.Any(), gomock.Any(), domain.TxProcessing, gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := d.svc.Transfer(context.Background(), "req-1", req)
	require.NoError(t, err)

	var receipt transferReceipt
	require.NoError(t, json.Unmarshal(result.Response, &receipt))
	assert.Equal(t, int64(506_500), receipt.TotalAmount)
}

func TestTransferService_Transfer_UnsupportedBank(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	req := ports.TransferRequest{UserID: 7, ToBank: "XYZ", AccountNumber: "1", Amount: 100_000}

	d.coordinator.EXPECT().
		Execute(gomock.Any(), "req-1", domain.ResourceBankTransfer, req, gomock.Any()).
		DoAndReturn(passthroughExecute)
	d.catalog.EXPECT().Get(gomock.Any(), bankCatalogKey).Return(bcaCatalog(t), nil)

	_, err := d.svc.Transfer(context.Background(), "req-1", req)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TXN_004", appErr.Code)
}

func TestTransferService_Transfer_BelowMinimumRejected(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	req := ports.TransferRequest{UserID: 7, ToBank: "BCA", AccountNumber: "1234567890", Amount: 5_000}

	d.coordinator.EXPECT().
		Execute(gomock.Any(), "req-1", domain.ResourceBankTransfer, req, gomock.Any()).
		DoAndReturn(passthroughExecute)
	d.catalog.EXPECT().Get(gomock.Any(), bankCatalogKey).Return(bcaCatalog(t), nil)

	_, err := d.svc.Transfer(context.Background(), "req-1", req)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TXN_005", appErr.Code)
}

func TestTransferService_Transfer_NonPositiveAmount(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Transfer(context.Background(), "req-1",
		ports.TransferRequest{UserID: 7, ToBank: "BCA", AccountNumber: "1", Amount: 0})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TXN_002", appErr.Code)
}
