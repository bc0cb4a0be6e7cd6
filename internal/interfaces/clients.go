package interfaces

import (
	"context"

	"github.com/eventbook/eventbook-api/internal/types/api/params"
	"github.com/eventbook/eventbook-api/internal/types/business"
)

// PaymentProvider issues refunds against captured payments
type PaymentProvider interface {
	CreateRefund(ctx context.Context, params params.ProviderRefundParams) (*business.ProviderRefund, error)
}

// WebhookParser verifies a provider webhook and reduces it to refund events
type WebhookParser interface {
	ParseEvent(body []byte, signatureHeader string) ([]business.ProviderEvent, error)
}

// QueuePublisher publishes messages to a work queue
type QueuePublisher interface {
	Publish(ctx context.Context, body []byte, attributes map[string]string) (string, error)
}

// RefundMetrics records refund and waitlist activity
type RefundMetrics interface {
	RefundRequested(source, result string)
	RefundIssued(source string, amountCents int64)
	WaitlistPromoted(count int)
}
