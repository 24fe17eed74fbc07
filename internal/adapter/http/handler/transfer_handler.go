package handler

import (
	"multipay-aggregator/internal/adapter/http/dto"
	"multipay-aggregator/internal/adapter/http/middleware"
	"multipay-aggregator/internal/core/domain"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/pkg/apperror"
	"multipay-aggregator/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransferHandler handles interbank transfer endpoints.
type TransferHandler struct {
	transferSvc ports.TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferSvc ports.TransferService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc}
}

// ListBanks handles GET /api/v1/transfers/banks.
func (h *TransferHandler) ListBanks(c *gin.Context) {
	banks, err := h.transferSvc.ListBanks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"banks": banks})
}

// InquireAccount handles GET /api/v1/transfers/inquiry.
func (h *TransferHandler) InquireAccount(c *gin.Context) {
	bankCode := c.Query("bank_code")
	accountNumber := c.Query("account_number")
	if bankCode == "" || accountNumber == "" {
		response.Error(c, apperror.Validation("bank_code and account_number are required"))
		return
	}

	info, err := h.transferSvc.InquireAccount(c.Request.Context(), bankCode, accountNumber)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

// Transfer handles POST /api/v1/transfers.
func (h *TransferHandler) Transfer(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.transferSvc.Transfer(c.Request.Context(), idempotencyKey(c), ports.TransferRequest{
		UserID:        userID,
		FromBank:      req.FromBank,
		ToBank:        req.ToBank,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		Amount:        req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	writeExecution(c, result)
}

// GetTransfer handles GET /api/v1/transfers/:transaction_id.
func (h *TransferHandler) GetTransfer(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	txn, err := h.transferSvc.GetTransfer(c.Request.Context(), userID, c.Param("transaction_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, txn)
}

// ListTransfers handles GET /api/v1/transfers.
func (h *TransferHandler) ListTransfers(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	page, pageSize := pageParams(c)
	params := ports.TxListParams{UserID: userID, Page: page, PageSize: pageSize}
	if s := c.Query("status"); s != "" {
		st := domain.TxStatus(s)
		params.Status = &st
	}

	txns, total, err := h.transferSvc.ListTransfers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PagedResponse{Items: txns, Total: total, Page: page, PageSize: pageSize})
}
