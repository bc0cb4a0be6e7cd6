package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Service name attached to structured logs
	ServiceName = "eventbook-api"

	// Payment providers
	StripeProvider = "stripe"

	// Currencies
	USDCurrency = "usd"
)

// Booking statuses
const (
	BookingStatusPending         = "pending"
	BookingStatusPaid            = "paid"
	BookingStatusWaitlisted      = "waitlisted"
	BookingStatusRefundRequested = "refund_requested"
	BookingStatusRefunded        = "refunded"
	BookingStatusCancelled       = "cancelled"
)

// Participant statuses
const (
	ParticipantStatusActive     = "active"
	ParticipantStatusWithdrawn  = "withdrawn"
	ParticipantStatusWaitlisted = "waitlisted"
)

// Refund record statuses
const (
	RefundStatusPending   = "pending"
	RefundStatusSucceeded = "succeeded"
	RefundStatusFailed    = "failed"
)

// Refund sources, used as metric labels and email categories
const (
	RefundSourceBooking    = "booking"
	RefundSourceWithdrawal = "withdrawal"
)
