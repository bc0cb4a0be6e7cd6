package handlers

import (
	"io"
	"net/http"

	"github.com/eventbook/eventbook-api/internal/constants"
	"github.com/eventbook/eventbook-api/internal/interfaces"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxWebhookBodyBytes = 64 << 10

// WebhookHandler applies provider refund webhooks in-process. Deployed
// stages receive webhooks through the queue instead.
type WebhookHandler struct {
	common     *CommonServices
	parser     interfaces.WebhookParser
	settlement interfaces.RefundSettlementService
}

func NewWebhookHandler(common *CommonServices, parser interfaces.WebhookParser, settlement interfaces.RefundSettlementService) *WebhookHandler {
	return &WebhookHandler{common: common, parser: parser, settlement: settlement}
}

// HandleStripeWebhook godoc
// @Summary Receive Stripe webhooks
// @Tags exclude
// @Accept json
// @Produce json
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	signature := c.GetHeader(constants.StripeSignatureHeader)
	if signature == "" {
		sendError(c, http.StatusBadRequest, "Missing signature header", nil)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		sendError(c, http.StatusRequestEntityTooLarge, "Webhook body too large", err)
		return
	}

	events, err := h.parser.ParseEvent(body, signature)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Webhook validation failed", err)
		return
	}

	for _, event := range events {
		if err := h.settlement.HandleProviderEvent(c.Request.Context(), event); err != nil {
			// 5xx makes the provider redeliver the event.
			sendError(c, http.StatusInternalServerError, "Failed to apply webhook event", err)
			return
		}
	}

	h.common.GetLogger().Info("Webhook processed",
		zap.Int("events", len(events)),
		zap.String("correlation_id", c.GetString(constants.CorrelationIDContextKey)),
	)
	c.JSON(http.StatusOK, gin.H{"status": "received"})
}
