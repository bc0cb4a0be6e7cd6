package testutil

import (
	"time"

	"github.com/eventbook/eventbook-api/internal/constants"
	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// StagedPolicy is a three window policy: full refund until May 1st, half
// until June 1st, nothing after.
const StagedPolicy = `[
	{"to": "2024-05-01T00:00:00Z", "type": "percentage", "amount": 100, "description": "Full refund"},
	{"from": "2024-05-01T00:00:00Z", "to": "2024-06-01T00:00:00Z", "type": "percentage", "amount": 50},
	{"from": "2024-06-01T00:00:00Z", "type": "percentage", "amount": 0}
]`

// EventStart is the start time of fixture events
var EventStart = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

// Timestamptz wraps t as a valid pgtype.Timestamptz
func Timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// NewEvent returns an event starting at EventStart with the given policy
func NewEvent(policy string) db.Event {
	return db.Event{
		ID:             uuid.New(),
		OrganizerID:    uuid.New(),
		Title:          "Summer Gala",
		StartsAt:       Timestamptz(EventStart),
		RefundPolicy:   []byte(policy),
		RefundsEnabled: true,
		CreatedAt:      Timestamptz(EventStart.AddDate(0, -6, 0)),
	}
}

// NewPaidBooking returns a paid booking for event owned by userID
func NewPaidBooking(eventID, userID uuid.UUID, totalCents int64) db.Booking {
	return db.Booking{
		ID:                    uuid.New(),
		EventID:               eventID,
		UserID:                userID,
		Email:                 "booker@example.com",
		Status:                constants.BookingStatusPaid,
		TotalPaidCents:        totalCents,
		Currency:              constants.USDCurrency,
		StripePaymentIntentID: pgtype.Text{String: "pi_test_123", Valid: true},
	}
}

// NewParticipant returns an active participant of booking
func NewParticipant(bookingID, sectionID uuid.UUID, priceCents int64) db.Participant {
	id := uuid.New()
	return db.Participant{
		ID:         id,
		BookingID:  bookingID,
		SectionID:  sectionID,
		Name:       "Ada",
		Email:      pgtype.Text{String: "ada@example.com", Valid: true},
		Status:     constants.ParticipantStatusActive,
		PriceCents: priceCents,
		TicketCode: "TKT-" + id.String()[:8],
	}
}
