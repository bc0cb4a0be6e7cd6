package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventbook/eventbook-api/internal/constants"
	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/eventbook/eventbook-api/internal/interfaces"
	"github.com/eventbook/eventbook-api/internal/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// WaitlistService promotes waitlisted participants into freed seats
type WaitlistService struct {
	queries  db.Querier
	txRunner interfaces.TxRunner
	email    interfaces.EmailService
	metrics  interfaces.RefundMetrics
	logger   *zap.Logger
}

// NewWaitlistService creates a new waitlist service. email and metrics may be nil.
func NewWaitlistService(queries db.Querier, txRunner interfaces.TxRunner, email interfaces.EmailService, metrics interfaces.RefundMetrics, l *zap.Logger) *WaitlistService {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &WaitlistService{
		queries:  queries,
		txRunner: txRunner,
		email:    email,
		metrics:  metrics,
		logger:   logger.ForComponent(l, logger.ComponentWaitlist),
	}
}

// ReleaseSeats fills free capacity in a section from its waitlist, oldest
// first. The section row is locked for the duration so concurrent releases
// cannot promote past capacity.
func (s *WaitlistService) ReleaseSeats(ctx context.Context, sectionID uuid.UUID) ([]db.Participant, error) {
	var (
		promoted []db.Participant
		eventID  uuid.UUID
	)

	err := s.txRunner.RunInTx(ctx, func(q db.Querier) error {
		promoted = nil

		section, err := q.GetEventSectionForUpdate(ctx, sectionID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrSectionNotFound
			}
			return fmt.Errorf("failed to lock section: %w", err)
		}
		eventID = section.EventID

		active, err := q.CountActiveParticipantsInSection(ctx, sectionID)
		if err != nil {
			return fmt.Errorf("failed to count active participants: %w", err)
		}
		free := int64(section.Capacity) - active
		if free <= 0 {
			return nil
		}

		candidates, err := q.ListWaitlistedParticipantsForSection(ctx, db.ListWaitlistedParticipantsForSectionParams{
			SectionID: sectionID,
			Limit:     int32(free),
		})
		if err != nil {
			return fmt.Errorf("failed to list waitlist: %w", err)
		}

		for _, candidate := range candidates {
			participant, err := q.CompareAndSetParticipantStatus(ctx, db.CompareAndSetParticipantStatusParams{
				ID:             candidate.ID,
				ExpectedStatus: constants.ParticipantStatusWaitlisted,
				NewStatus:      constants.ParticipantStatusActive,
			})
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					continue
				}
				return fmt.Errorf("failed to promote participant %s: %w", candidate.ID, err)
			}
			promoted = append(promoted, participant)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(promoted) == 0 {
		return promoted, nil
	}

	s.metrics.WaitlistPromoted(len(promoted))
	s.logger.Info("promoted waitlisted participants",
		zap.String("section_id", sectionID.String()),
		zap.Int("count", len(promoted)))
	s.notifyPromoted(ctx, eventID, promoted)

	return promoted, nil
}

func (s *WaitlistService) notifyPromoted(ctx context.Context, eventID uuid.UUID, promoted []db.Participant) {
	if s.email == nil {
		return
	}
	event, err := s.queries.GetEvent(ctx, eventID)
	if err != nil {
		s.logger.Warn("skipping promotion emails", zap.String("event_id", eventID.String()), zap.Error(err))
		return
	}

	for _, participant := range promoted {
		to := participant.Email.String
		if to == "" {
			booking, err := s.queries.GetBooking(ctx, participant.BookingID)
			if err != nil {
				s.logger.Warn("no address for promoted participant", zap.String("participant_id", participant.ID.String()), zap.Error(err))
				continue
			}
			to = booking.Email
		}

		data := emailDataFor(event, participant.Name, to, "", nil)
		data.TicketCode = participant.TicketCode
		if err := s.email.SendWaitlistPromotion(ctx, to, data); err != nil {
			s.logger.Warn("failed to send waitlist promotion", zap.String("participant_id", participant.ID.String()), zap.Error(err))
		}
	}
}
