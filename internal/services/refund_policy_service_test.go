package services_test

import (
	"context"
	"testing"

	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/eventbook/eventbook-api/internal/refund"
	"github.com/eventbook/eventbook-api/internal/services"
	"github.com/eventbook/eventbook-api/internal/testutil"
	"github.com/eventbook/eventbook-api/internal/types/api/params"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestRefundPolicyService_Preview(t *testing.T) {
	ctx := context.Background()

	t.Run("quotes the requested amount", func(t *testing.T) {
		mockDB := testutil.NewMockDatabase(t)
		event := testutil.NewEvent(testutil.StagedPolicy)
		mockDB.ExpectEvent(event)
		service := services.NewRefundPolicyService(mockDB.Querier, nil, zap.NewNop())

		amount := int64(20000)
		view, err := service.Preview(ctx, params.RefundPolicyPreviewParams{EventID: event.ID, AmountCents: &amount, Now: midMay})
		require.NoError(t, err)
		require.Len(t, view.Timeline, 3)
		require.NotNil(t, view.Outcome)
		assert.Equal(t, "100", view.Outcome.RefundAmount.String())
		assert.Equal(t, 1, view.Outcome.MatchedRuleIndex)
		assert.Equal(t, "200", view.QuotedAmount.String())
	})

	t.Run("defaults to the cheapest section", func(t *testing.T) {
		mockDB := testutil.NewMockDatabase(t)
		event := testutil.NewEvent(testutil.StagedPolicy)
		mockDB.ExpectEvent(event)
		mockDB.Querier.EXPECT().ListEventSections(gomock.Any(), event.ID).Return([]db.EventSection{
			{ID: uuid.New(), EventID: event.ID, PriceCents: 2500},
			{ID: uuid.New(), EventID: event.ID, PriceCents: 9000},
		}, nil)
		service := services.NewRefundPolicyService(mockDB.Querier, refund.NewCalculator(), zap.NewNop())

		view, err := service.Preview(ctx, params.RefundPolicyPreviewParams{EventID: event.ID, Now: midMay})
		require.NoError(t, err)
		assert.Equal(t, "25", view.QuotedAmount.String())
		assert.Equal(t, "12.5", view.Outcome.RefundAmount.String())
	})

	t.Run("quotes a section's price", func(t *testing.T) {
		mockDB := testutil.NewMockDatabase(t)
		event := testutil.NewEvent(testutil.StagedPolicy)
		section := db.EventSection{ID: uuid.New(), EventID: event.ID, PriceCents: 9000}
		mockDB.ExpectEvent(event)
		mockDB.Querier.EXPECT().GetEventSection(gomock.Any(), section.ID).Return(section, nil)
		service := services.NewRefundPolicyService(mockDB.Querier, nil, zap.NewNop())

		view, err := service.Preview(ctx, params.RefundPolicyPreviewParams{EventID: event.ID, SectionID: &section.ID, Now: midMay})
		require.NoError(t, err)
		assert.Equal(t, "90", view.QuotedAmount.String())
		assert.Equal(t, "45", view.Outcome.RefundAmount.String())
	})

	t.Run("section of another event", func(t *testing.T) {
		mockDB := testutil.NewMockDatabase(t)
		event := testutil.NewEvent(testutil.StagedPolicy)
		section := db.EventSection{ID: uuid.New(), EventID: uuid.New(), PriceCents: 9000}
		mockDB.ExpectEvent(event)
		mockDB.Querier.EXPECT().GetEventSection(gomock.Any(), section.ID).Return(section, nil)
		service := services.NewRefundPolicyService(mockDB.Querier, nil, zap.NewNop())

		_, err := service.Preview(ctx, params.RefundPolicyPreviewParams{EventID: event.ID, SectionID: &section.ID, Now: midMay})
		assert.ErrorIs(t, err, services.ErrSectionNotFound)
	})

	t.Run("event without policy has no outcome", func(t *testing.T) {
		mockDB := testutil.NewMockDatabase(t)
		event := testutil.NewEvent(`[]`)
		mockDB.ExpectEvent(event)
		mockDB.Querier.EXPECT().ListEventSections(gomock.Any(), event.ID).Return(nil, nil)
		service := services.NewRefundPolicyService(mockDB.Querier, nil, zap.NewNop())

		view, err := service.Preview(ctx, params.RefundPolicyPreviewParams{EventID: event.ID})
		require.NoError(t, err)
		assert.Nil(t, view.Outcome)
		assert.Empty(t, view.Timeline)
		assert.False(t, view.ReferenceAt.IsZero())
	})

	t.Run("negative amount", func(t *testing.T) {
		mockDB := testutil.NewMockDatabase(t)
		event := testutil.NewEvent(testutil.StagedPolicy)
		mockDB.ExpectEvent(event)
		service := services.NewRefundPolicyService(mockDB.Querier, nil, zap.NewNop())

		amount := int64(-1)
		_, err := service.Preview(ctx, params.RefundPolicyPreviewParams{EventID: event.ID, AmountCents: &amount})
		assert.ErrorIs(t, err, refund.ErrInvalidInput)
	})

	t.Run("unknown event", func(t *testing.T) {
		mockDB := testutil.NewMockDatabase(t)
		id := uuid.New()
		mockDB.Querier.EXPECT().GetEvent(gomock.Any(), id).Return(db.Event{}, pgx.ErrNoRows)
		service := services.NewRefundPolicyService(mockDB.Querier, nil, zap.NewNop())

		_, err := service.Preview(ctx, params.RefundPolicyPreviewParams{EventID: id})
		assert.ErrorIs(t, err, services.ErrEventNotFound)
	})
}
