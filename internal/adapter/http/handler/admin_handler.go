package handler

import (
	"strconv"

	"multipay-aggregator/internal/adapter/http/dto"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes operational reporting and webhook administration.
type AdminHandler struct {
	reportingSvc ports.ReportingService
	reconciler   ports.Reconciler
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(reportingSvc ports.ReportingService, reconciler ports.Reconciler) *AdminHandler {
	return &AdminHandler{reportingSvc: reportingSvc, reconciler: reconciler}
}

// SystemStats handles GET /api/v1/admin/stats.
func (h *AdminHandler) SystemStats(c *gin.Context) {
	stats, err := h.reportingSvc.SystemStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// FailedTransactions handles GET /api/v1/admin/transactions/failed.
func (h *AdminHandler) FailedTransactions(c *gin.Context) {
	var since *int64
	if s := c.Query("since"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			since = &v
		}
	}
	limit := queryInt(c, "limit", 50)

	failed, err := h.reportingSvc.FailedTransactions(c.Request.Context(), since, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"transactions": failed})
}

// WebhookEvents handles GET /api/v1/admin/webhooks.
func (h *AdminHandler) WebhookEvents(c *gin.Context) {
	page, pageSize := pageParams(c)
	params := ports.WebhookListParams{Page: page, PageSize: pageSize}
	if s := c.Query("processed"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			params.Processed = &v
		}
	}
	if s := c.Query("permanently_failed"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			params.PermanentlyFailed = &v
		}
	}

	events, total, err := h.reportingSvc.WebhookEvents(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PagedResponse{Items: events, Total: total, Page: page, PageSize: pageSize})
}

// RetryWebhook handles POST /api/v1/admin/webhooks/:event_id/retry.
func (h *AdminHandler) RetryWebhook(c *gin.Context) {
	eventID := c.Param("event_id")
	if err := h.reconciler.Retry(c.Request.Context(), eventID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"event_id": eventID, "retried": true})
}
