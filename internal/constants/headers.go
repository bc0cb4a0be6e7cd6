package constants

const (
	CorrelationIDHeader     = "X-Correlation-ID"
	IdempotencyKeyHeader    = "Idempotency-Key"
	IdempotentReplayHeader  = "Idempotent-Replayed"
	StripeSignatureHeader   = "Stripe-Signature"
	AuthorizationHeader     = "Authorization"
	ForwardedForHeader      = "X-Forwarded-For"
	UserIDContextKey        = "userID"
	UserEmailContextKey     = "userEmail"
	CorrelationIDContextKey = "correlation_id"
)
