package interfaces

import (
	"context"
	"time"

	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/eventbook/eventbook-api/internal/refund"
	"github.com/eventbook/eventbook-api/internal/types/api/params"
	"github.com/eventbook/eventbook-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefundCalculator resolves refund timelines
type RefundCalculator interface {
	Resolve(timeline refund.Timeline, referenceTime time.Time, originalAmount decimal.Decimal, eventStartTime time.Time) (*refund.Outcome, error)
	ActiveRuleIndex(timeline refund.Timeline, referenceTime, eventStartTime time.Time) (int, bool, error)
}

// BookingRefundService refunds whole bookings
type BookingRefundService interface {
	RequestRefund(ctx context.Context, params params.RequestRefundParams) (*business.RefundResult, error)
}

// WithdrawalService withdraws single participants from a booking
type WithdrawalService interface {
	Withdraw(ctx context.Context, params params.WithdrawParticipantParams) (*business.WithdrawalResult, error)
}

// RefundPolicyService renders refund policies for display
type RefundPolicyService interface {
	Preview(ctx context.Context, params params.RefundPolicyPreviewParams) (*business.RefundPolicyView, error)
}

// WaitlistService promotes waitlisted participants when seats free up
type WaitlistService interface {
	ReleaseSeats(ctx context.Context, sectionID uuid.UUID) ([]db.Participant, error)
}

// RefundSettlementService applies provider refund events to stored refunds
type RefundSettlementService interface {
	HandleProviderEvent(ctx context.Context, event business.ProviderEvent) error
}

// TicketService renders participant tickets
type TicketService interface {
	QRCode(ctx context.Context, params params.TicketQRParams) ([]byte, error)
}

// EmailService handles email sending operations
type EmailService interface {
	SendTransactionalEmail(ctx context.Context, params params.TransactionalEmailParams) error
	SendRefundConfirmation(ctx context.Context, to string, data business.EmailData) error
	SendWithdrawalConfirmation(ctx context.Context, to string, data business.EmailData) error
	SendWaitlistPromotion(ctx context.Context, to string, data business.EmailData) error
}

// TxRunner runs a callback with a Querier bound to one database transaction
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(q db.Querier) error) error
}
