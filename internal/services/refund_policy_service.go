package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/eventbook/eventbook-api/internal/helpers"
	"github.com/eventbook/eventbook-api/internal/interfaces"
	"github.com/eventbook/eventbook-api/internal/refund"
	"github.com/eventbook/eventbook-api/internal/types/api/params"
	"github.com/eventbook/eventbook-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RefundPolicyService renders an event's refund timeline with a quote for
// the current time. It never writes.
type RefundPolicyService struct {
	queries    db.Querier
	calculator interfaces.RefundCalculator
	logger     *zap.Logger
	clock      func() time.Time
}

// NewRefundPolicyService creates a new refund policy service
func NewRefundPolicyService(queries db.Querier, calculator interfaces.RefundCalculator, logger *zap.Logger) *RefundPolicyService {
	if calculator == nil {
		calculator = refund.NewCalculator()
	}
	return &RefundPolicyService{
		queries:    queries,
		calculator: calculator,
		logger:     logger,
		clock:      time.Now,
	}
}

// Preview loads the event policy and quotes the refund for the requested
// amount, or for a section's price, or for the cheapest section price when
// neither is given. An event without a policy yields a view with no outcome.
func (s *RefundPolicyService) Preview(ctx context.Context, p params.RefundPolicyPreviewParams) (*business.RefundPolicyView, error) {
	event, timeline, err := loadEventPolicy(ctx, s.queries, p.EventID)
	if err != nil {
		return nil, err
	}

	amount, err := s.quotedAmount(ctx, event, p.AmountCents, p.SectionID)
	if err != nil {
		return nil, err
	}

	view := &business.RefundPolicyView{
		Event:        event,
		Timeline:     timeline,
		QuotedAmount: amount,
		ReferenceAt:  p.Now,
	}
	if view.ReferenceAt.IsZero() {
		view.ReferenceAt = s.clock()
	}
	if len(timeline) == 0 {
		return view, nil
	}

	outcome, err := s.calculator.Resolve(timeline, view.ReferenceAt, amount, event.StartsAt.Time)
	if err != nil {
		return nil, err
	}
	view.Outcome = outcome
	return view, nil
}

func (s *RefundPolicyService) quotedAmount(ctx context.Context, event db.Event, requested *int64, sectionID *uuid.UUID) (decimal.Decimal, error) {
	if requested != nil {
		if *requested < 0 {
			return decimal.Zero, fmt.Errorf("%w: amount must not be negative", refund.ErrInvalidInput)
		}
		return helpers.CentsToDecimal(*requested), nil
	}

	if sectionID != nil {
		section, err := s.queries.GetEventSection(ctx, *sectionID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return decimal.Zero, ErrSectionNotFound
			}
			return decimal.Zero, fmt.Errorf("failed to get event section: %w", err)
		}
		if section.EventID != event.ID {
			return decimal.Zero, ErrSectionNotFound
		}
		return helpers.CentsToDecimal(section.PriceCents), nil
	}

	sections, err := s.queries.ListEventSections(ctx, event.ID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list event sections: %w", err)
	}
	if len(sections) == 0 {
		return decimal.Zero, nil
	}
	return helpers.CentsToDecimal(sections[0].PriceCents), nil
}
