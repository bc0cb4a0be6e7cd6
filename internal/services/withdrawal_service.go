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

// WithdrawalService removes single participants from a booking and refunds
// their allocated price under the event's refund timeline
type WithdrawalService struct {
	deps     RefundDependencies
	waitlist interfaces.WaitlistService
}

// NewWithdrawalService creates a new withdrawal service. waitlist may be nil.
func NewWithdrawalService(deps RefundDependencies, waitlist interfaces.WaitlistService) *WithdrawalService {
	deps = deps.withDefaults()
	deps.Logger = logger.ForComponent(deps.Logger, logger.ComponentRefund)
	return &WithdrawalService{deps: deps, waitlist: waitlist}
}

// Withdraw releases a participant's seat. Unlike a booking refund, a zero
// refund does not block the withdrawal; the participant is withdrawn and no
// provider refund is issued.
func (s *WithdrawalService) Withdraw(ctx context.Context, p params.WithdrawParticipantParams) (*business.WithdrawalResult, error) {
	log := s.deps.Logger.With(
		zap.String("booking_id", p.BookingID.String()),
		zap.String("participant_id", p.ParticipantID.String()),
	)

	booking, err := loadBooking(ctx, s.deps.Queries, p.BookingID, p.UserID)
	if err != nil {
		return nil, err
	}
	if booking.Status != constants.BookingStatusPaid {
		return nil, fmt.Errorf("%w: booking is %s", ErrNotRefundable, booking.Status)
	}

	participant, err := s.deps.Queries.GetParticipant(ctx, p.ParticipantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	if participant.BookingID != booking.ID {
		return nil, ErrParticipantNotFound
	}
	if participant.Status != constants.ParticipantStatusActive {
		return nil, fmt.Errorf("%w: participant is %s", ErrNotRefundable, participant.Status)
	}

	event, timeline, err := loadEventPolicy(ctx, s.deps.Queries, booking.EventID)
	if err != nil {
		return nil, err
	}

	now := s.deps.now(p.Now)
	startsAt := event.StartsAt.Time
	if now.After(startsAt) {
		s.deps.Metrics.RefundRequested(constants.RefundSourceWithdrawal, "event_started")
		return nil, ErrEventStarted
	}

	outcome, err := s.deps.Calculator.Resolve(timeline, now, helpers.CentsToDecimal(participant.PriceCents), startsAt)
	if err != nil {
		s.deps.Metrics.RefundRequested(constants.RefundSourceWithdrawal, "policy_error")
		return nil, err
	}
	amountCents := helpers.DecimalToCents(outcome.RefundAmount)

	if _, err := s.deps.Queries.CompareAndSetParticipantStatus(ctx, db.CompareAndSetParticipantStatusParams{
		ID:             participant.ID,
		ExpectedStatus: constants.ParticipantStatusActive,
		NewStatus:      constants.ParticipantStatusWithdrawn,
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: participant already withdrawn", ErrNotRefundable)
		}
		return nil, fmt.Errorf("failed to withdraw participant: %w", err)
	}

	var providerRefund *business.ProviderRefund
	if amountCents > 0 {
		if !booking.StripePaymentIntentID.Valid || booking.StripePaymentIntentID.String == "" {
			s.restoreParticipant(ctx, log, participant.ID)
			return nil, fmt.Errorf("%w: booking has no captured payment", ErrNotRefundable)
		}
		providerRefund, err = s.deps.Payments.CreateRefund(ctx, params.ProviderRefundParams{
			PaymentIntentID: booking.StripePaymentIntentID.String,
			AmountCents:     amountCents,
			Currency:        booking.Currency,
			IdempotencyKey:  participantRefundKey(participant.ID, amountCents),
			Reason:          p.Reason,
			Metadata: map[string]string{
				"booking_id":     booking.ID.String(),
				"participant_id": participant.ID.String(),
			},
		})
		if err != nil {
			s.restoreParticipant(ctx, log, participant.ID)
			s.deps.Metrics.RefundRequested(constants.RefundSourceWithdrawal, "provider_error")
			return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
		}
	}

	result := &business.WithdrawalResult{Outcome: outcome}
	err = s.deps.TxRunner.RunInTx(ctx, func(q db.Querier) error {
		if providerRefund != nil {
			record, err := q.CreateRefund(ctx, db.CreateRefundParams{
				BookingID:        booking.ID,
				ParticipantID:    helpers.NullableUUID(&participant.ID),
				Source:           constants.RefundSourceWithdrawal,
				AmountCents:      amountCents,
				Percentage:       helpers.DecimalToNumeric(outcome.RefundPercentage),
				Status:           refundStatusFromProvider(providerRefund.Status),
				ProviderRefundID: helpers.Text(providerRefund.ID),
				Reason:           helpers.Text(p.Reason),
			})
			if err != nil {
				return fmt.Errorf("failed to record refund: %w", err)
			}
			result.Refund = &record
		}
		updated, err := q.SetParticipantRefund(ctx, db.SetParticipantRefundParams{
			ID:                participant.ID,
			RefundAmountCents: helpers.Int8(amountCents),
		})
		if err != nil {
			return fmt.Errorf("failed to store participant refund: %w", err)
		}
		result.Participant = updated
		return nil
	})
	if err != nil {
		log.Error("participant withdrawn but refund not recorded", zap.Int64("amount_cents", amountCents), zap.Error(err))
		return nil, err
	}

	resultLabel := "withdrawn"
	if amountCents > 0 {
		resultLabel = "refunded"
		s.deps.Metrics.RefundIssued(constants.RefundSourceWithdrawal, amountCents)
	}
	s.deps.Metrics.RefundRequested(constants.RefundSourceWithdrawal, resultLabel)
	logger.LogRefundEvent(log, constants.RefundSourceWithdrawal, participant.ID.String(), amountCents, outcome.RefundPercentage.String(), outcome.Fallback)

	if s.waitlist != nil {
		promoted, err := s.waitlist.ReleaseSeats(ctx, participant.SectionID)
		if err != nil {
			log.Warn("failed to release seat to waitlist", zap.Error(err))
		}
		result.Promoted = promoted
	}

	if s.deps.Email != nil {
		to := participant.Email.String
		if to == "" {
			to = booking.Email
		}
		data := emailDataFor(event, participant.Name, to, booking.Currency, outcome)
		data.Reason = p.Reason
		if err := s.deps.Email.SendWithdrawalConfirmation(ctx, to, data); err != nil {
			log.Warn("failed to send withdrawal confirmation", zap.Error(err))
		}
	}

	return result, nil
}

func (s *WithdrawalService) restoreParticipant(ctx context.Context, log *zap.Logger, participantID uuid.UUID) {
	if _, err := s.deps.Queries.CompareAndSetParticipantStatus(ctx, db.CompareAndSetParticipantStatusParams{
		ID:             participantID,
		ExpectedStatus: constants.ParticipantStatusWithdrawn,
		NewStatus:      constants.ParticipantStatusActive,
	}); err != nil {
		log.Error("failed to restore participant after provider error", zap.Error(err))
	}
}

func participantRefundKey(participantID uuid.UUID, amountCents int64) string {
	return fmt.Sprintf("participant-refund-%s-%d", participantID, amountCents)
}
