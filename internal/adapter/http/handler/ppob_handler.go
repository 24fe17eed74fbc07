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

// PpobHandler handles bill inquiry and payment endpoints.
type PpobHandler struct {
	ppobSvc ports.PpobService
}

// NewPpobHandler creates a new PpobHandler.
func NewPpobHandler(ppobSvc ports.PpobService) *PpobHandler {
	return &PpobHandler{ppobSvc: ppobSvc}
}

// ListProducts handles GET /api/v1/ppob/products.
func (h *PpobHandler) ListProducts(c *gin.Context) {
	products, err := h.ppobSvc.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"products": products})
}

// InquireBill handles GET /api/v1/ppob/inquiry.
func (h *PpobHandler) InquireBill(c *gin.Context) {
	productCode := c.Query("product_code")
	customerID := c.Query("customer_id")
	if productCode == "" || customerID == "" {
		response.Error(c, apperror.Validation("product_code and customer_id are required"))
		return
	}

	bill, err := h.ppobSvc.InquireBill(c.Request.Context(), productCode, customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, bill)
}

// PayBill handles POST /api/v1/ppob/pay.
func (h *PpobHandler) PayBill(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.PayBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.ppobSvc.PayBill(c.Request.Context(), idempotencyKey(c), ports.PpobPayRequest{
		UserID:      userID,
		ProductCode: req.ProductCode,
		CustomerID:  req.CustomerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	writeExecution(c, result)
}

// GetTransaction handles GET /api/v1/ppob/transactions/:transaction_id.
func (h *PpobHandler) GetTransaction(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	txn, err := h.ppobSvc.GetTransaction(c.Request.Context(), userID, c.Param("transaction_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, txn)
}

// ListTransactions handles GET /api/v1/ppob/transactions.
func (h *PpobHandler) ListTransactions(c *gin.Context) {
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

	txns, total, err := h.ppobSvc.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PagedResponse{Items: txns, Total: total, Page: page, PageSize: pageSize})
}
