package webhooks

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/eventbook/eventbook-api/internal/constants"
	"github.com/eventbook/eventbook-api/internal/interfaces"
	"github.com/eventbook/eventbook-api/internal/logger"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// Message attributes set on every queued provider event
const (
	AttributeEventType       = "EventType"
	AttributeProviderEventID = "ProviderEventID"
	AttributeRefundID        = "RefundID"
	AttributeProvider        = "Provider"
)

// Receiver verifies provider webhooks arriving through API Gateway and hands
// the refund events to a queue for asynchronous settlement.
type Receiver struct {
	parser    interfaces.WebhookParser
	publisher interfaces.QueuePublisher
	logger    *zap.Logger
}

func NewReceiver(parser interfaces.WebhookParser, publisher interfaces.QueuePublisher, l *zap.Logger) *Receiver {
	return &Receiver{
		parser:    parser,
		publisher: publisher,
		logger:    logger.ForComponent(l, logger.ComponentWebhook),
	}
}

func jsonResponse(status int, body interface{}) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		payload = []byte(`{"error":"internal error"}`)
		status = http.StatusInternalServerError
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Body:       string(payload),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

func errorResponse(status int, msg string) events.APIGatewayProxyResponse {
	return jsonResponse(status, map[string]string{"error": msg})
}

// header looks up name ignoring case; API Gateway preserves the sender's casing.
func header(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// HandleAPIGatewayRequest returns a 5xx only when publishing fails, so the
// provider redelivers the webhook.
func (r *Receiver) HandleAPIGatewayRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log := r.logger.With(
		zap.String("path", request.Path),
		zap.String("request_id", request.RequestContext.RequestID),
	)

	signature := header(request.Headers, constants.StripeSignatureHeader)
	if signature == "" {
		log.Warn("Missing signature header")
		return errorResponse(http.StatusBadRequest, "missing signature header"), nil
	}

	body := []byte(request.Body)
	if request.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(request.Body)
		if err != nil {
			log.Warn("Failed to decode webhook body", zap.Error(err))
			return errorResponse(http.StatusBadRequest, "invalid body encoding"), nil
		}
		body = decoded
	}

	providerEvents, err := r.parser.ParseEvent(body, signature)
	if err != nil {
		log.Warn("Rejected webhook", zap.Error(err))
		return errorResponse(http.StatusBadRequest, "invalid webhook"), nil
	}

	for _, event := range providerEvents {
		payload, err := json.Marshal(event)
		if err != nil {
			log.Error("Failed to encode provider event", zap.Error(err))
			return errorResponse(http.StatusInternalServerError, "failed to queue event"), nil
		}

		messageID, err := r.publisher.Publish(ctx, payload, map[string]string{
			AttributeProvider:        constants.StripeProvider,
			AttributeEventType:       event.Type,
			AttributeProviderEventID: event.ID,
			AttributeRefundID:        event.RefundID,
		})
		if err != nil {
			log.Error("Failed to queue provider event",
				zap.String("provider_event_id", event.ID),
				zap.Error(err))
			return errorResponse(http.StatusInternalServerError, "failed to queue event"), nil
		}

		log.Info("Queued provider event",
			zap.String("provider_event_id", event.ID),
			zap.String("provider_event_type", event.Type),
			zap.String("message_id", messageID))
	}

	return jsonResponse(http.StatusOK, map[string]interface{}{
		"status": "received",
		"queued": len(providerEvents),
	}), nil
}
