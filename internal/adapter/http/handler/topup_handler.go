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

// TopupHandler handles pulsa/data topup endpoints.
type TopupHandler struct {
	topupSvc ports.TopupService
}

// NewTopupHandler creates a new TopupHandler.
func NewTopupHandler(topupSvc ports.TopupService) *TopupHandler {
	return &TopupHandler{topupSvc: topupSvc}
}

// ListProducts handles GET /api/v1/pulsa/products. The operator comes either
// from the query directly or is detected from a phone number.
func (h *TopupHandler) ListProducts(c *gin.Context) {
	operator := c.Query("operator")
	if operator == "" {
		if phone := c.Query("phone_number"); phone != "" {
			operator = h.topupSvc.DetectOperator(phone)
		}
	}
	if operator == "" {
		response.Error(c, apperror.Validation("operator or a recognizable phone_number is required"))
		return
	}

	products, err := h.topupSvc.ListProducts(c.Request.Context(), operator)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"operator": operator, "products": products})
}

// Topup handles POST /api/v1/pulsa/topup.
func (h *TopupHandler) Topup(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.topupSvc.Topup(c.Request.Context(), idempotencyKey(c), ports.TopupRequest{
		UserID:      userID,
		PhoneNumber: req.PhoneNumber,
		ProductCode: req.ProductCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	writeExecution(c, result)
}

// GetTransaction handles GET /api/v1/pulsa/transactions/:transaction_id.
func (h *TopupHandler) GetTransaction(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	txn, err := h.topupSvc.GetTransaction(c.Request.Context(), userID, c.Param("transaction_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, txn)
}

// ListTransactions handles GET /api/v1/pulsa/transactions.
func (h *TopupHandler) ListTransactions(c *gin.Context) {
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

	txns, total, err := h.topupSvc.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PagedResponse{Items: txns, Total: total, Page: page, PageSize: pageSize})
}
