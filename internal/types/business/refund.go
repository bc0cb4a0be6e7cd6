package business

import (
	"time"

	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/eventbook/eventbook-api/internal/refund"
	"github.com/shopspring/decimal"
)

// RefundResult is the outcome of a completed booking refund. Withdrawn holds
// the participants whose seats the refund released.
type RefundResult struct {
	Booking   db.Booking
	Refund    db.Refund
	Outcome   *refund.Outcome
	Withdrawn []db.Participant
	Promoted  []db.Participant
}

// WithdrawalResult is the outcome of a participant withdrawal. Refund is
// nil when the resolved amount was zero.
type WithdrawalResult struct {
	Participant db.Participant
	Refund      *db.Refund
	Outcome     *refund.Outcome
	Promoted    []db.Participant
}

// RefundPolicyView is a display-ready refund timeline for one event
type RefundPolicyView struct {
	Event        db.Event
	Timeline     refund.Timeline
	QuotedAmount decimal.Decimal
	Outcome      *refund.Outcome
	ReferenceAt  time.Time
}

// ProviderRefund is the payment provider's view of an issued refund
type ProviderRefund struct {
	ID          string
	Status      string
	AmountCents int64
	Currency    string
}

// ProviderEvent is a verified payment provider webhook event reduced to the
// fields the settlement flow needs
type ProviderEvent struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	RefundID string `json:"refund_id"`
	Status   string `json:"status"`
}
