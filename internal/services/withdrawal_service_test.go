package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eventbook/eventbook-api/internal/constants"
	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/eventbook/eventbook-api/internal/mocks"
	"github.com/eventbook/eventbook-api/internal/services"
	"github.com/eventbook/eventbook-api/internal/testutil"
	"github.com/eventbook/eventbook-api/internal/types/api/params"
	"github.com/eventbook/eventbook-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWithdrawalService_Withdraw(t *testing.T) {
	ctx := context.Background()
	sectionID := uuid.New()

	withdrawLock := func(f *refundFixture, participant db.Participant, err error) {
		f.db.Querier.EXPECT().CompareAndSetParticipantStatus(gomock.Any(), db.CompareAndSetParticipantStatusParams{
			ID:             participant.ID,
			ExpectedStatus: constants.ParticipantStatusActive,
			NewStatus:      constants.ParticipantStatusWithdrawn,
		}).Return(participant, err)
	}

	t.Run("refunds the participant's own price and releases the seat", func(t *testing.T) {
		f := newRefundFixture(t, testutil.StagedPolicy)
		waitlist := mocks.NewMockWaitlistService(f.db.Ctrl)
		service := services.NewWithdrawalService(f.deps(), waitlist)
		participant := testutil.NewParticipant(f.booking.ID, sectionID, 7000)
		promoted := []db.Participant{{ID: uuid.New(), Status: constants.ParticipantStatusActive}}

		f.db.ExpectBooking(f.booking)
		f.db.ExpectParticipant(participant)
		f.db.ExpectEvent(f.event)
		withdrawLock(f, participant, nil)
		f.payments.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p params.ProviderRefundParams) (*business.ProviderRefund, error) {
				assert.Equal(t, int64(3500), p.AmountCents)
				assert.Equal(t, "participant-refund-"+participant.ID.String()+"-3500", p.IdempotencyKey)
				return &business.ProviderRefund{ID: "re_p1", Status: "pending"}, nil
			})
		f.db.Querier.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateRefundParams) (db.Refund, error) {
				assert.True(t, arg.ParticipantID.Valid)
				assert.Equal(t, [16]byte(participant.ID), arg.ParticipantID.Bytes)
				assert.Equal(t, constants.RefundSourceWithdrawal, arg.Source)
				assert.Equal(t, constants.RefundStatusPending, arg.Status)
				return db.Refund{ID: uuid.New(), AmountCents: arg.AmountCents}, nil
			})
		withdrawn := participant
		withdrawn.Status = constants.ParticipantStatusWithdrawn
		f.db.Querier.EXPECT().SetParticipantRefund(gomock.Any(), gomock.Any()).Return(withdrawn, nil)
		f.metrics.EXPECT().RefundIssued(constants.RefundSourceWithdrawal, int64(3500))
		f.metrics.EXPECT().RefundRequested(constants.RefundSourceWithdrawal, "refunded")
		waitlist.EXPECT().ReleaseSeats(gomock.Any(), sectionID).Return(promoted, nil)
		f.email.EXPECT().SendWithdrawalConfirmation(gomock.Any(), "ada@example.com", gomock.Any()).Return(nil)

		result, err := service.Withdraw(ctx, params.WithdrawParticipantParams{
			BookingID:     f.booking.ID,
			ParticipantID: participant.ID,
			UserID:        f.userID,
			Now:           midMay,
		})
		require.NoError(t, err)
		assert.Equal(t, "35", result.Outcome.RefundAmount.String())
		require.NotNil(t, result.Refund)
		assert.Equal(t, int64(3500), result.Refund.AmountCents)
		assert.Equal(t, constants.ParticipantStatusWithdrawn, result.Participant.Status)
		assert.Equal(t, promoted, result.Promoted)
	})

	t.Run("zero refund still withdraws without a provider call", func(t *testing.T) {
		f := newRefundFixture(t, testutil.StagedPolicy)
		service := services.NewWithdrawalService(f.deps(), nil)
		participant := testutil.NewParticipant(f.booking.ID, sectionID, 7000)
		participant.Email.Valid = false
		participant.Email.String = ""

		f.db.ExpectBooking(f.booking)
		f.db.ExpectParticipant(participant)
		f.db.ExpectEvent(f.event)
		withdrawLock(f, participant, nil)
		f.db.Querier.EXPECT().SetParticipantRefund(gomock.Any(), db.SetParticipantRefundParams{
			ID:                participant.ID,
			RefundAmountCents: pgtypeInt8(0),
		}).Return(participant, nil)
		f.metrics.EXPECT().RefundRequested(constants.RefundSourceWithdrawal, "withdrawn")
		f.email.EXPECT().SendWithdrawalConfirmation(gomock.Any(), "booker@example.com", gomock.Any()).Return(nil)

		result, err := service.Withdraw(ctx, params.WithdrawParticipantParams{
			BookingID:     f.booking.ID,
			ParticipantID: participant.ID,
			UserID:        f.userID,
			Now:           time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Nil(t, result.Refund)
		assert.True(t, result.Outcome.RefundAmount.IsZero())
	})

	t.Run("provider failure restores the participant", func(t *testing.T) {
		f := newRefundFixture(t, testutil.StagedPolicy)
		service := services.NewWithdrawalService(f.deps(), nil)
		participant := testutil.NewParticipant(f.booking.ID, sectionID, 7000)

		f.db.ExpectBooking(f.booking)
		f.db.ExpectParticipant(participant)
		f.db.ExpectEvent(f.event)
		withdrawLock(f, participant, nil)
		f.payments.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).Return(nil, errors.New("rate limited"))
		f.db.Querier.EXPECT().CompareAndSetParticipantStatus(gomock.Any(), db.CompareAndSetParticipantStatusParams{
			ID:             participant.ID,
			ExpectedStatus: constants.ParticipantStatusWithdrawn,
			NewStatus:      constants.ParticipantStatusActive,
		}).Return(participant, nil)
		f.metrics.EXPECT().RefundRequested(constants.RefundSourceWithdrawal, "provider_error")

		_, err := service.Withdraw(ctx, params.WithdrawParticipantParams{
			BookingID: f.booking.ID, ParticipantID: participant.ID, UserID: f.userID, Now: midMay,
		})
		assert.ErrorIs(t, err, services.ErrPaymentProvider)
	})

	t.Run("participant from another booking", func(t *testing.T) {
		f := newRefundFixture(t, testutil.StagedPolicy)
		service := services.NewWithdrawalService(f.deps(), nil)
		participant := testutil.NewParticipant(uuid.New(), sectionID, 7000)

		f.db.ExpectBooking(f.booking)
		f.db.ExpectParticipant(participant)

		_, err := service.Withdraw(ctx, params.WithdrawParticipantParams{
			BookingID: f.booking.ID, ParticipantID: participant.ID, UserID: f.userID, Now: midMay,
		})
		assert.ErrorIs(t, err, services.ErrParticipantNotFound)
	})

	t.Run("participant missing", func(t *testing.T) {
		f := newRefundFixture(t, testutil.StagedPolicy)
		service := services.NewWithdrawalService(f.deps(), nil)
		missing := uuid.New()

		f.db.ExpectBooking(f.booking)
		f.db.Querier.EXPECT().GetParticipant(gomock.Any(), missing).Return(db.Participant{}, pgx.ErrNoRows)

		_, err := service.Withdraw(ctx, params.WithdrawParticipantParams{
			BookingID: f.booking.ID, ParticipantID: missing, UserID: f.userID, Now: midMay,
		})
		assert.ErrorIs(t, err, services.ErrParticipantNotFound)
	})

	t.Run("already withdrawn participant", func(t *testing.T) {
		f := newRefundFixture(t, testutil.StagedPolicy)
		service := services.NewWithdrawalService(f.deps(), nil)
		participant := testutil.NewParticipant(f.booking.ID, sectionID, 7000)
		participant.Status = constants.ParticipantStatusWithdrawn

		f.db.ExpectBooking(f.booking)
		f.db.ExpectParticipant(participant)

		_, err := service.Withdraw(ctx, params.WithdrawParticipantParams{
			BookingID: f.booking.ID, ParticipantID: participant.ID, UserID: f.userID, Now: midMay,
		})
		assert.ErrorIs(t, err, services.ErrNotRefundable)
	})

	t.Run("lost race on withdrawal", func(t *testing.T) {
		f := newRefundFixture(t, testutil.StagedPolicy)
		service := services.NewWithdrawalService(f.deps(), nil)
		participant := testutil.NewParticipant(f.booking.ID, sectionID, 7000)

		f.db.ExpectBooking(f.booking)
		f.db.ExpectParticipant(participant)
		f.db.ExpectEvent(f.event)
		withdrawLock(f, participant, pgx.ErrNoRows)

		_, err := service.Withdraw(ctx, params.WithdrawParticipantParams{
			BookingID: f.booking.ID, ParticipantID: participant.ID, UserID: f.userID, Now: midMay,
		})
		assert.ErrorIs(t, err, services.ErrNotRefundable)
	})
}
