package params

import (
	"time"

	"github.com/google/uuid"
)

// RequestRefundParams contains parameters for refunding a whole booking
type RequestRefundParams struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	Reason    string
	// Now is the reference time used to resolve the refund timeline
	Now time.Time
}

// WithdrawParticipantParams contains parameters for withdrawing one participant
type WithdrawParticipantParams struct {
	BookingID     uuid.UUID
	ParticipantID uuid.UUID
	UserID        uuid.UUID
	Reason        string
	Now           time.Time
}

// RefundPolicyPreviewParams contains parameters for rendering an event's refund policy
type RefundPolicyPreviewParams struct {
	EventID uuid.UUID
	// AmountCents is the amount to quote. Nil quotes SectionID's price, or
	// the cheapest section price when SectionID is nil too.
	AmountCents *int64
	SectionID   *uuid.UUID
	Now         time.Time
}

// ProviderRefundParams contains parameters for issuing a refund with the payment provider
type ProviderRefundParams struct {
	PaymentIntentID string
	AmountCents     int64
	Currency        string
	IdempotencyKey  string
	Reason          string
	Metadata        map[string]string
}

// TicketQRParams identifies the participant whose ticket is rendered
type TicketQRParams struct {
	BookingID     uuid.UUID
	ParticipantID uuid.UUID
	UserID        uuid.UUID
	Size          int
}
