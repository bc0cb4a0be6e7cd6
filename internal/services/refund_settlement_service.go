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
	"github.com/eventbook/eventbook-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// Provider event types that carry refund state
const (
	EventChargeRefunded      = "charge.refunded"
	EventChargeRefundUpdated = "charge.refund.updated"
	EventRefundCreated       = "refund.created"
	EventRefundUpdated       = "refund.updated"
	EventRefundFailed        = "refund.failed"
)

// RefundSettlementService moves stored refunds to their final state as the
// payment provider reports them
type RefundSettlementService struct {
	queries  db.Querier
	txRunner interfaces.TxRunner
	logger   *zap.Logger
}

// NewRefundSettlementService creates a new settlement service
func NewRefundSettlementService(queries db.Querier, txRunner interfaces.TxRunner, l *zap.Logger) *RefundSettlementService {
	return &RefundSettlementService{
		queries:  queries,
		txRunner: txRunner,
		logger:   logger.ForComponent(l, logger.ComponentWebhook),
	}
}

// HandleProviderEvent applies one provider event. Unknown event types and
// refunds this service did not create are ignored. Terminal refund states
// are never overwritten. A failed refund hands the booking or participant
// back: no money moved, so the seat and the refundable amount are restored.
func (s *RefundSettlementService) HandleProviderEvent(ctx context.Context, event business.ProviderEvent) error {
	log := s.logger.With(
		zap.String("provider_event_id", event.ID),
		zap.String("provider_event_type", event.Type),
		zap.String("provider_refund_id", event.RefundID),
	)

	switch event.Type {
	case EventChargeRefunded, EventChargeRefundUpdated, EventRefundCreated, EventRefundUpdated, EventRefundFailed:
	default:
		log.Debug("ignoring provider event")
		return nil
	}
	if event.RefundID == "" {
		log.Warn("provider event has no refund id")
		return nil
	}

	record, err := s.queries.GetRefundByProviderID(ctx, helpers.Text(event.RefundID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Info("provider refund not tracked")
			return nil
		}
		return fmt.Errorf("failed to get refund: %w", err)
	}

	status := refundStatusFromProvider(event.Status)
	if event.Type == EventRefundFailed {
		status = constants.RefundStatusFailed
	}
	if status == constants.RefundStatusPending || status == record.Status {
		return nil
	}
	if record.Status != constants.RefundStatusPending {
		log.Warn("refund already settled",
			zap.String("stored_status", record.Status),
			zap.String("reported_status", status))
		return nil
	}

	if status != constants.RefundStatusFailed {
		if _, err := s.queries.UpdateRefundStatus(ctx, db.UpdateRefundStatusParams{
			ID:     record.ID,
			Status: status,
		}); err != nil {
			return fmt.Errorf("failed to update refund status: %w", err)
		}
		log.Info("refund settled", zap.String("status", status))
		return nil
	}

	err = s.txRunner.RunInTx(ctx, func(q db.Querier) error {
		if _, err := q.UpdateRefundStatus(ctx, db.UpdateRefundStatusParams{
			ID:     record.ID,
			Status: status,
		}); err != nil {
			return fmt.Errorf("failed to update refund status: %w", err)
		}
		if record.ParticipantID.Valid {
			return s.reinstateParticipant(ctx, q, log, uuid.UUID(record.ParticipantID.Bytes))
		}
		return s.reinstateBooking(ctx, q, log, record.BookingID)
	})
	if err != nil {
		return err
	}

	log.Warn("refund failed at provider, reinstated", zap.String("booking_id", record.BookingID.String()))
	return nil
}

func (s *RefundSettlementService) reinstateParticipant(ctx context.Context, q db.Querier, log *zap.Logger, participantID uuid.UUID) error {
	if _, err := q.CompareAndSetParticipantStatus(ctx, db.CompareAndSetParticipantStatusParams{
		ID:             participantID,
		ExpectedStatus: constants.ParticipantStatusWithdrawn,
		NewStatus:      constants.ParticipantStatusActive,
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Warn("participant no longer withdrawn", zap.String("participant_id", participantID.String()))
			return nil
		}
		return fmt.Errorf("failed to reinstate participant: %w", err)
	}
	if _, err := q.SetParticipantRefund(ctx, db.SetParticipantRefundParams{
		ID:                participantID,
		RefundAmountCents: pgtype.Int8{},
	}); err != nil {
		return fmt.Errorf("failed to clear participant refund: %w", err)
	}
	return nil
}

// reinstateBooking moves the booking back to paid. Participants the booking
// refund withdrew carry no refund amount of their own and are made active
// again; participants refunded by their own withdrawal stay withdrawn.
func (s *RefundSettlementService) reinstateBooking(ctx context.Context, q db.Querier, log *zap.Logger, bookingID uuid.UUID) error {
	if _, err := q.CompareAndSetBookingStatus(ctx, db.CompareAndSetBookingStatusParams{
		ID:             bookingID,
		ExpectedStatus: constants.BookingStatusRefunded,
		NewStatus:      constants.BookingStatusPaid,
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Warn("booking no longer refunded", zap.String("booking_id", bookingID.String()))
			return nil
		}
		return fmt.Errorf("failed to reinstate booking: %w", err)
	}
	if _, err := q.SetBookingRefund(ctx, db.SetBookingRefundParams{
		ID:                bookingID,
		RefundAmountCents: pgtype.Int8{},
		RefundReason:      pgtype.Text{},
	}); err != nil {
		return fmt.Errorf("failed to clear booking refund: %w", err)
	}

	participants, err := q.ListParticipantsByBooking(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to list participants: %w", err)
	}
	for _, participant := range participants {
		if participant.Status != constants.ParticipantStatusWithdrawn || participant.RefundAmountCents.Valid {
			continue
		}
		if _, err := q.CompareAndSetParticipantStatus(ctx, db.CompareAndSetParticipantStatusParams{
			ID:             participant.ID,
			ExpectedStatus: constants.ParticipantStatusWithdrawn,
			NewStatus:      constants.ParticipantStatusActive,
		}); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to reinstate participant: %w", err)
		}
	}
	return nil
}
