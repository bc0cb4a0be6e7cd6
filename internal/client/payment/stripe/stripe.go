package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/eventbook/eventbook-api/internal/interfaces"
	"github.com/eventbook/eventbook-api/internal/types/api/params"
	"github.com/eventbook/eventbook-api/internal/types/business"
	pkgerrors "github.com/pkg/errors"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

var _ interfaces.PaymentProvider = (*RefundProvider)(nil)

const defaultMaxRetries = 3

// RefundProvider issues refunds through the Stripe API
type RefundProvider struct {
	client     *stripe.Client
	logger     *zap.Logger
	newBackOff func() backoff.BackOff
}

// NewRefundProvider creates a Stripe-backed payment provider
func NewRefundProvider(apiKey string, logger *zap.Logger) (*RefundProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("stripe API key not provided")
	}
	return newRefundProvider(stripe.NewClient(apiKey, nil), logger, defaultBackOff), nil
}

func newRefundProvider(client *stripe.Client, logger *zap.Logger, newBackOff func() backoff.BackOff) *RefundProvider {
	return &RefundProvider{client: client, logger: logger, newBackOff: newBackOff}
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 30 * time.Second
	return backoff.WithMaxRetries(b, defaultMaxRetries)
}

// CreateRefund refunds part or all of a payment intent. The idempotency key
// makes retries, including retries across requests, return the original refund.
func (p *RefundProvider) CreateRefund(ctx context.Context, rp params.ProviderRefundParams) (*business.ProviderRefund, error) {
	if rp.PaymentIntentID == "" {
		return nil, fmt.Errorf("payment intent id is required")
	}
	if rp.AmountCents <= 0 {
		return nil, fmt.Errorf("refund amount must be positive, got %d", rp.AmountCents)
	}

	createParams := &stripe.RefundCreateParams{
		PaymentIntent: stripe.String(rp.PaymentIntentID),
		Amount:        stripe.Int64(rp.AmountCents),
		Reason:        stripe.String(string(stripe.RefundReasonRequestedByCustomer)),
	}
	if rp.IdempotencyKey != "" {
		createParams.SetIdempotencyKey(rp.IdempotencyKey)
	}
	for k, v := range rp.Metadata {
		createParams.AddMetadata(k, v)
	}
	if rp.Reason != "" {
		createParams.AddMetadata("customer_reason", rp.Reason)
	}

	var refund *stripe.Refund
	operation := func() error {
		var err error
		refund, err = p.client.V1Refunds.Create(ctx, createParams)
		if err != nil && !isRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		p.logger.Warn("stripe refund failed, retrying",
			zap.String("payment_intent", rp.PaymentIntentID),
			zap.Duration("wait", wait),
			zap.Error(err))
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(p.newBackOff(), ctx), notify); err != nil {
		p.logger.Error("stripe refund failed",
			zap.String("payment_intent", rp.PaymentIntentID),
			zap.Int64("amount_cents", rp.AmountCents),
			zap.Error(err))
		return nil, pkgerrors.Wrapf(err, "stripe refund for %s", rp.PaymentIntentID)
	}

	p.logger.Info("stripe refund created",
		zap.String("refund_id", refund.ID),
		zap.String("status", string(refund.Status)),
		zap.Int64("amount_cents", refund.Amount))

	return &business.ProviderRefund{
		ID:          refund.ID,
		Status:      string(refund.Status),
		AmountCents: refund.Amount,
		Currency:    string(refund.Currency),
	}, nil
}

// isRetryable reports whether a Stripe error is transient. Card and
// invalid request errors never succeed on retry.
func isRetryable(err error) bool {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return true
	}
	if stripeErr.HTTPStatusCode == http.StatusTooManyRequests || stripeErr.HTTPStatusCode >= http.StatusInternalServerError {
		return true
	}
	return stripeErr.Type == stripe.ErrorTypeAPI && stripeErr.HTTPStatusCode == 0
}
