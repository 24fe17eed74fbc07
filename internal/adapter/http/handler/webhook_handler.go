package handler

import (
	"encoding/json"
	"io"

	"multipay-aggregator/internal/adapter/http/dto"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/pkg/apperror"
	"multipay-aggregator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HeaderWebhookSignature carries the provider's HMAC-SHA256 signature over
// the raw request body.
const HeaderWebhookSignature = "X-Webhook-Signature"

// WebhookHandler ingests provider settlement callbacks.
type WebhookHandler struct {
	reconciler ports.Reconciler
	sigSvc     ports.SignatureService
	secret     string
	log        zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(reconciler ports.Reconciler, sigSvc ports.SignatureService, secret string, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler, sigSvc: sigSvc, secret: secret, log: log}
}

// Ingest handles POST /api/v1/webhooks/settlement. The signature is verified
// over the exact raw bytes; only then is the envelope decoded. A 2xx means
// the event is durably recorded — processing failures are retried by the
// sweeper and must not make the provider redeliver.
func (h *WebhookHandler) Ingest(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	signature := c.GetHeader(HeaderWebhookSignature)
	if signature == "" || !h.sigSvc.Verify(h.secret, body, signature) {
		h.log.Warn().Str("client_ip", c.ClientIP()).Msg("webhook signature rejected")
		response.Error(c, apperror.ErrWebhookSignature())
		return
	}

	var envelope dto.WebhookEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		response.Error(c, apperror.Validation("malformed webhook body"))
		return
	}
	if envelope.EventID == "" || envelope.EventType == "" || len(envelope.Data) == 0 {
		response.Error(c, apperror.Validation("event_id, event_type and data are required"))
		return
	}

	err = h.reconciler.Ingest(c.Request.Context(), envelope.EventID, envelope.EventType, envelope.Source, envelope.Data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"received": true})
}
