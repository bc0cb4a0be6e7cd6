package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eventbook/eventbook-api/internal/constants"
	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/eventbook/eventbook-api/internal/interfaces"
	"github.com/eventbook/eventbook-api/internal/refund"
	"github.com/eventbook/eventbook-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// RefundDependencies groups the collaborators shared by the refund flows
type RefundDependencies struct {
	Queries    db.Querier
	TxRunner   interfaces.TxRunner
	Calculator interfaces.RefundCalculator
	Payments   interfaces.PaymentProvider
	Email      interfaces.EmailService
	Metrics    interfaces.RefundMetrics
	Logger     *zap.Logger
	// Clock overrides time.Now when a request carries no reference time
	Clock func() time.Time
}

func (d RefundDependencies) withDefaults() RefundDependencies {
	if d.Calculator == nil {
		d.Calculator = refund.NewCalculator()
	}
	if d.Metrics == nil {
		d.Metrics = nopMetrics{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	return d
}

func (d RefundDependencies) now(requested time.Time) time.Time {
	if requested.IsZero() {
		return d.Clock()
	}
	return requested
}

type nopMetrics struct{}

func (nopMetrics) RefundRequested(string, string) {}
func (nopMetrics) RefundIssued(string, int64)     {}
func (nopMetrics) WaitlistPromoted(int)           {}

// loadBooking fetches a booking and checks ownership
func loadBooking(ctx context.Context, q db.Querier, bookingID, userID uuid.UUID) (db.Booking, error) {
	booking, err := q.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Booking{}, ErrBookingNotFound
		}
		return db.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking.UserID != userID {
		return db.Booking{}, ErrNotOwner
	}
	return booking, nil
}

// loadEventPolicy fetches an event with its decoded refund timeline. A
// disabled policy is reported as an empty timeline.
func loadEventPolicy(ctx context.Context, q db.Querier, eventID uuid.UUID) (db.Event, refund.Timeline, error) {
	event, err := q.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Event{}, nil, ErrEventNotFound
		}
		return db.Event{}, nil, fmt.Errorf("failed to get event: %w", err)
	}
	if !event.RefundsEnabled {
		return event, refund.Timeline{}, nil
	}
	timeline, err := refund.ParseTimeline(event.RefundPolicy)
	if err != nil {
		return db.Event{}, nil, fmt.Errorf("event %s: %w", event.ID, err)
	}
	return event, timeline, nil
}

// refundStatusFromProvider maps a payment provider refund status to the
// stored refund status
func refundStatusFromProvider(status string) string {
	switch strings.ToLower(status) {
	case "succeeded":
		return constants.RefundStatusSucceeded
	case "failed", "canceled", "cancelled":
		return constants.RefundStatusFailed
	default:
		return constants.RefundStatusPending
	}
}

func emailDataFor(event db.Event, name, email, currency string, outcome *refund.Outcome) business.EmailData {
	data := business.EmailData{
		RecipientName:  name,
		RecipientEmail: email,
		EventTitle:     event.Title,
		EventStartsAt:  event.StartsAt.Time.UTC().Format("Mon, 02 Jan 2006 15:04 MST"),
		Currency:       strings.ToUpper(currency),
		Amount:         "0.00",
	}
	if outcome != nil {
		data.Amount = outcome.RefundAmount.StringFixed(2)
		data.RefundPercentage = outcome.RefundPercentage.String()
	}
	return data
}
