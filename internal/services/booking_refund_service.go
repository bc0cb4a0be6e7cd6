package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventbook/eventbook-api/internal/constants"
	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/eventbook/eventbook-api/internal/helpers"
	"github.com/eventbook/eventbook-api/internal/interfaces"
	"github.com/eventbook/eventbook-api/internal/logger"
	"github.com/eventbook/eventbook-api/internal/types/api/params"
	"github.com/eventbook/eventbook-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingRefundService refunds whole bookings against the event's refund timeline
type BookingRefundService struct {
	deps     RefundDependencies
	waitlist interfaces.WaitlistService
}

// NewBookingRefundService creates a new booking refund service. waitlist may be nil.
func NewBookingRefundService(deps RefundDependencies, waitlist interfaces.WaitlistService) *BookingRefundService {
	deps = deps.withDefaults()
	deps.Logger = logger.ForComponent(deps.Logger, logger.ComponentRefund)
	return &BookingRefundService{deps: deps, waitlist: waitlist}
}

// RequestRefund resolves the refund for a paid booking, issues it with the
// payment provider and records it.
//
// The booking moves paid -> refund_requested before the provider call and
// refund_requested -> refunded after it, both as compare-and-set updates, so
// concurrent requests for the same booking cannot both refund.
//
// The refundable base is the amount paid minus what earlier withdrawals
// already returned. Participants still holding a seat are withdrawn in the
// same transaction and their sections are offered to the waitlist.
func (s *BookingRefundService) RequestRefund(ctx context.Context, p params.RequestRefundParams) (*business.RefundResult, error) {
	log := s.deps.Logger.With(
		zap.String("booking_id", p.BookingID.String()),
		zap.String("user_id", p.UserID.String()),
	)

	booking, err := loadBooking(ctx, s.deps.Queries, p.BookingID, p.UserID)
	if err != nil {
		return nil, err
	}
	if booking.Status != constants.BookingStatusPaid {
		return nil, fmt.Errorf("%w: booking is %s", ErrNotRefundable, booking.Status)
	}
	if !booking.StripePaymentIntentID.Valid || booking.StripePaymentIntentID.String == "" {
		return nil, fmt.Errorf("%w: booking has no captured payment", ErrNotRefundable)
	}

	event, timeline, err := loadEventPolicy(ctx, s.deps.Queries, booking.EventID)
	if err != nil {
		return nil, err
	}

	now := s.deps.now(p.Now)
	startsAt := event.StartsAt.Time
	if now.After(startsAt) {
		s.deps.Metrics.RefundRequested(constants.RefundSourceBooking, "event_started")
		return nil, ErrEventStarted
	}

	participants, err := s.deps.Queries.ListParticipantsByBooking(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	baseCents := refundableCents(booking, participants)

	outcome, err := s.deps.Calculator.Resolve(timeline, now, helpers.CentsToDecimal(baseCents), startsAt)
	if err != nil {
		s.deps.Metrics.RefundRequested(constants.RefundSourceBooking, "policy_error")
		return nil, err
	}
	if !outcome.Available() {
		s.deps.Metrics.RefundRequested(constants.RefundSourceBooking, "no_refund")
		return nil, ErrNoRefundAvailable
	}
	amountCents := helpers.DecimalToCents(outcome.RefundAmount)

	if _, err := s.deps.Queries.CompareAndSetBookingStatus(ctx, db.CompareAndSetBookingStatusParams{
		ID:             booking.ID,
		ExpectedStatus: constants.BookingStatusPaid,
		NewStatus:      constants.BookingStatusRefundRequested,
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: refund already in progress", ErrNotRefundable)
		}
		return nil, fmt.Errorf("failed to lock booking for refund: %w", err)
	}

	providerRefund, err := s.deps.Payments.CreateRefund(ctx, params.ProviderRefundParams{
		PaymentIntentID: booking.StripePaymentIntentID.String,
		AmountCents:     amountCents,
		Currency:        booking.Currency,
		IdempotencyKey:  bookingRefundKey(booking.ID, amountCents),
		Reason:          p.Reason,
		Metadata: map[string]string{
			"booking_id": booking.ID.String(),
			"event_id":   booking.EventID.String(),
		},
	})
	if err != nil {
		s.releaseBooking(ctx, log, booking.ID)
		s.deps.Metrics.RefundRequested(constants.RefundSourceBooking, "provider_error")
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	result := &business.RefundResult{Outcome: outcome}
	err = s.deps.TxRunner.RunInTx(ctx, func(q db.Querier) error {
		record, err := q.CreateRefund(ctx, db.CreateRefundParams{
			BookingID:        booking.ID,
			Source:           constants.RefundSourceBooking,
			AmountCents:      amountCents,
			Percentage:       helpers.DecimalToNumeric(outcome.RefundPercentage),
			Status:           refundStatusFromProvider(providerRefund.Status),
			ProviderRefundID: helpers.Text(providerRefund.ID),
			Reason:           helpers.Text(p.Reason),
		})
		if err != nil {
			return fmt.Errorf("failed to record refund: %w", err)
		}
		if _, err := q.SetBookingRefund(ctx, db.SetBookingRefundParams{
			ID:                booking.ID,
			RefundAmountCents: helpers.Int8(amountCents),
			RefundReason:      helpers.Text(p.Reason),
		}); err != nil {
			return fmt.Errorf("failed to store booking refund: %w", err)
		}
		updated, err := q.CompareAndSetBookingStatus(ctx, db.CompareAndSetBookingStatusParams{
			ID:             booking.ID,
			ExpectedStatus: constants.BookingStatusRefundRequested,
			NewStatus:      constants.BookingStatusRefunded,
		})
		if err != nil {
			return fmt.Errorf("failed to mark booking refunded: %w", err)
		}
		result.Refund = record
		result.Booking = updated

		for _, participant := range participants {
			if participant.Status != constants.ParticipantStatusActive && participant.Status != constants.ParticipantStatusWaitlisted {
				continue
			}
			withdrawn, err := q.CompareAndSetParticipantStatus(ctx, db.CompareAndSetParticipantStatusParams{
				ID:             participant.ID,
				ExpectedStatus: participant.Status,
				NewStatus:      constants.ParticipantStatusWithdrawn,
			})
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					log.Warn("participant changed during booking refund", zap.String("participant_id", participant.ID.String()))
					continue
				}
				return fmt.Errorf("failed to withdraw participant: %w", err)
			}
			if participant.Status == constants.ParticipantStatusWaitlisted {
				// Zero marks a participant this refund took off the waitlist.
				if _, err := q.SetParticipantRefund(ctx, db.SetParticipantRefundParams{
					ID:                participant.ID,
					RefundAmountCents: helpers.Int8(0),
				}); err != nil {
					return fmt.Errorf("failed to store participant refund: %w", err)
				}
				continue
			}
			result.Withdrawn = append(result.Withdrawn, withdrawn)
		}
		return nil
	})
	if err != nil {
		// The provider refund went through; the provider webhook and the
		// idempotency key let a retry reconcile it.
		log.Error("provider refund issued but not recorded",
			zap.String("provider_refund_id", providerRefund.ID),
			zap.Int64("amount_cents", amountCents),
			zap.Error(err))
		return nil, err
	}

	s.deps.Metrics.RefundRequested(constants.RefundSourceBooking, "refunded")
	s.deps.Metrics.RefundIssued(constants.RefundSourceBooking, amountCents)
	logger.LogRefundEvent(log, constants.RefundSourceBooking, booking.ID.String(), amountCents, outcome.RefundPercentage.String(), outcome.Fallback)

	result.Promoted = s.releaseSeats(ctx, log, result.Withdrawn)

	if s.deps.Email != nil {
		data := emailDataFor(event, booking.Email, booking.Email, booking.Currency, outcome)
		data.Reason = p.Reason
		if err := s.deps.Email.SendRefundConfirmation(ctx, booking.Email, data); err != nil {
			log.Warn("failed to send refund confirmation", zap.Error(err))
		}
	}

	return result, nil
}

// releaseBooking undoes the refund_requested lock after a provider failure
func (s *BookingRefundService) releaseBooking(ctx context.Context, log *zap.Logger, bookingID uuid.UUID) {
	if _, err := s.deps.Queries.CompareAndSetBookingStatus(ctx, db.CompareAndSetBookingStatusParams{
		ID:             bookingID,
		ExpectedStatus: constants.BookingStatusRefundRequested,
		NewStatus:      constants.BookingStatusPaid,
	}); err != nil {
		log.Error("failed to release booking after provider error", zap.Error(err))
	}
}

// releaseSeats offers each freed section to its waitlist once
func (s *BookingRefundService) releaseSeats(ctx context.Context, log *zap.Logger, withdrawn []db.Participant) []db.Participant {
	if s.waitlist == nil {
		return nil
	}
	var promoted []db.Participant
	seen := make(map[uuid.UUID]struct{}, len(withdrawn))
	for _, participant := range withdrawn {
		if _, ok := seen[participant.SectionID]; ok {
			continue
		}
		seen[participant.SectionID] = struct{}{}
		released, err := s.waitlist.ReleaseSeats(ctx, participant.SectionID)
		if err != nil {
			log.Warn("failed to release seats to waitlist",
				zap.String("section_id", participant.SectionID.String()),
				zap.Error(err))
			continue
		}
		promoted = append(promoted, released...)
	}
	return promoted
}

// refundableCents is the paid total less refunds already issued to
// withdrawn participants
func refundableCents(booking db.Booking, participants []db.Participant) int64 {
	remaining := booking.TotalPaidCents
	for _, participant := range participants {
		if participant.RefundAmountCents.Valid {
			remaining -= participant.RefundAmountCents.Int64
		}
	}
	if remaining < 0 {
		return 0
	}
	return remaining
}

// bookingRefundKey changes with the amount so a retry in a later refund
// window is not rejected as a reused key with different parameters
func bookingRefundKey(bookingID uuid.UUID, amountCents int64) string {
	return fmt.Sprintf("booking-refund-%s-%d", bookingID, amountCents)
}
