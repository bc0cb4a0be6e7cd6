package stripe

import (
	"encoding/json"
	"fmt"

	"github.com/eventbook/eventbook-api/internal/types/business"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"
)

// WebhookVerifier checks Stripe webhook signatures and reduces refund
// related events to business.ProviderEvent values
type WebhookVerifier struct {
	secret string
	logger *zap.Logger
}

// NewWebhookVerifier creates a verifier for the endpoint signing secret
func NewWebhookVerifier(secret string, logger *zap.Logger) (*WebhookVerifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("stripe webhook secret not provided")
	}
	return &WebhookVerifier{secret: secret, logger: logger}, nil
}

// Verify validates the signature header and returns the event id and type
// without decoding the payload object
func (v *WebhookVerifier) Verify(body []byte, signatureHeader string) (stripe.Event, error) {
	event, err := webhook.ConstructEvent(body, signatureHeader, v.secret)
	if err != nil {
		v.logger.Error("Webhook signature verification failed", zap.Error(err))
		return stripe.Event{}, fmt.Errorf("webhook signature verification failed: %w", err)
	}
	return event, nil
}

// ParseEvent verifies a webhook and extracts the refunds it reports. Events
// unrelated to refunds yield a single event with no refund id.
func (v *WebhookVerifier) ParseEvent(body []byte, signatureHeader string) ([]business.ProviderEvent, error) {
	event, err := v.Verify(body, signatureHeader)
	if err != nil {
		return nil, err
	}
	return ExtractRefundEvents(event)
}

// ExtractRefundEvents maps an already verified Stripe event. A
// charge.refunded event yields one entry per refund on the charge.
func ExtractRefundEvents(event stripe.Event) ([]business.ProviderEvent, error) {
	base := business.ProviderEvent{ID: event.ID, Type: string(event.Type)}
	if event.Data == nil {
		return []business.ProviderEvent{base}, nil
	}

	switch event.Type {
	case stripe.EventTypeRefundCreated, stripe.EventTypeRefundUpdated, stripe.EventTypeRefundFailed,
		stripe.EventTypeChargeRefundUpdated:
		var refund stripe.Refund
		if err := json.Unmarshal(event.Data.Raw, &refund); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
		}
		base.RefundID = refund.ID
		base.Status = string(refund.Status)
		return []business.ProviderEvent{base}, nil

	case stripe.EventTypeChargeRefunded:
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
		}
		if charge.Refunds == nil || len(charge.Refunds.Data) == 0 {
			return []business.ProviderEvent{base}, nil
		}
		events := make([]business.ProviderEvent, 0, len(charge.Refunds.Data))
		for _, refund := range charge.Refunds.Data {
			e := base
			e.RefundID = refund.ID
			e.Status = string(refund.Status)
			events = append(events, e)
		}
		return events, nil

	default:
		return []business.ProviderEvent{base}, nil
	}
}
