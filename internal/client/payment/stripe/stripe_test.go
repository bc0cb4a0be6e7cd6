package stripe

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/eventbook/eventbook-api/internal/types/api/params"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"network error", errors.New("connection reset"), true},
		{"rate limited", &stripe.Error{HTTPStatusCode: http.StatusTooManyRequests, Type: stripe.ErrorTypeInvalidRequest}, true},
		{"server error", &stripe.Error{HTTPStatusCode: http.StatusBadGateway, Type: stripe.ErrorTypeAPI}, true},
		{"card error", &stripe.Error{HTTPStatusCode: http.StatusPaymentRequired, Type: stripe.ErrorTypeCard}, false},
		{"invalid request", &stripe.Error{HTTPStatusCode: http.StatusBadRequest, Type: stripe.ErrorTypeInvalidRequest}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}

func TestRefundProvider_ValidatesParams(t *testing.T) {
	provider, err := NewRefundProvider("sk_test_123", zap.NewNop())
	assert.NoError(t, err)

	_, err = provider.CreateRefund(context.Background(), params.ProviderRefundParams{AmountCents: 100})
	assert.ErrorContains(t, err, "payment intent id is required")

	_, err = provider.CreateRefund(context.Background(), params.ProviderRefundParams{PaymentIntentID: "pi_1"})
	assert.ErrorContains(t, err, "must be positive")

	_, err = NewRefundProvider("", zap.NewNop())
	assert.Error(t, err)
}
