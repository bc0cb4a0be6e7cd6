package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eventbook/eventbook-api/internal/constants"
	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/eventbook/eventbook-api/internal/logger"
	"github.com/eventbook/eventbook-api/internal/mocks"
	"github.com/eventbook/eventbook-api/internal/refund"
	"github.com/eventbook/eventbook-api/internal/services"
	"github.com/eventbook/eventbook-api/internal/testutil"
	"github.com/eventbook/eventbook-api/internal/types/api/params"
	"github.com/eventbook/eventbook-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	logger.InitLogger("test")
}

var midMay = time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

type refundFixture struct {
	db       *testutil.MockDatabase
	payments *mocks.MockPaymentProvider
	email    *mocks.MockEmailService
	metrics  *mocks.MockRefundMetrics
	userID   uuid.UUID
	event    db.Event
	booking  db.Booking
}

func newRefundFixture(t *testing.T, policy string) *refundFixture {
	mockDB := testutil.NewMockDatabase(t)
	userID := uuid.New()
	event := testutil.NewEvent(policy)
	return &refundFixture{
		db:       mockDB,
		payments: mocks.NewMockPaymentProvider(mockDB.Ctrl),
		email:    mocks.NewMockEmailService(mockDB.Ctrl),
		metrics:  mocks.NewMockRefundMetrics(mockDB.Ctrl),
		userID:   userID,
		event:    event,
		booking:  testutil.NewPaidBooking(event.ID, userID, 20000),
	}
}

func (f *refundFixture) deps() services.RefundDependencies {
	return services.RefundDependencies{
		Queries:  f.db.Querier,
		TxRunner: f.db.TxRunner,
		Payments: f.payments,
		Email:    f.email,
		Metrics:  f.metrics,
		Logger:   zap.NewNop(),
	}
}

func (f *refundFixture) expectLock(status string, err error) {
	f.db.Querier.EXPECT().CompareAndSetBookingStatus(gomock.Any(), db.CompareAndSetBookingStatusParams{
		ID:             f.booking.ID,
		ExpectedStatus: constants.BookingStatusPaid,
		NewStatus:      constants.BookingStatusRefundRequested,
	}).Return(db.Booking{ID: f.booking.ID, Status: status}, err)
}

func (f *refundFixture) expectParticipants(participants ...db.Participant) {
	f.db.Querier.EXPECT().ListParticipantsByBooking(gomock.Any(), f.booking.ID).Return(participants, nil)
}

func TestBookingRefundService_RequestRefund(t *testing.T) {
	ctx := context.Background()

	t.Run("refunds half during the middle window", func(t *testing.T) {
		f := newRefundFixture(t, testutil.StagedPolicy)
		service := services.NewBookingRefundService(f.deps(), nil)

		f.db.ExpectBooking(f.booking)
		f.db.ExpectEvent(f.event)
		f.expectParticipants()
		f.expectLock(constants.BookingStatusRefundRequested, nil)
		f.payments.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p params.ProviderRefundParams) (*business.ProviderRefund, error) {
				assert.Equal(t, "pi_test_123", p.PaymentIntentID)
				assert.Equal(t, int64(10000), p.AmountCents)
				assert.Equal(t, "booking-refund-"+f.booking.ID.String()+"-10000", p.IdempotencyKey)
				assert.Equal(t, f.booking.ID.String(), p.Metadata["booking_id"])
				return &business.ProviderRefund{ID: "re_123", Status: "succeeded", AmountCents: 10000}, nil
			})
		f.db.Querier.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateRefundParams) (db.Refund, error) {
				assert.Equal(t, int64(10000), arg.AmountCents)
				assert.Equal(t, constants.RefundStatusSucceeded, arg.Status)
				assert.Equal(t, constants.RefundSourceBooking, arg.Source)
				assert.Equal(t, "re_123", arg.ProviderRefundID.String)
				assert.False(t, arg.ParticipantID.Valid)
				return db.Refund{ID: uuid.New(), BookingID: f.booking.ID, AmountCents: arg.AmountCents, Status: arg.Status}, nil
			})
		f.db.Querier.EXPECT().SetBookingRefund(gomock.Any(), gomock.Any()).Return(f.booking, nil)
		f.db.Querier.EXPECT().CompareAndSetBookingStatus(gomock.Any(), db.CompareAndSetBookingStatusParams{
			ID:             f.booking.ID,
			ExpectedStatus: constants.BookingStatusRefundRequested,
			NewStatus:      constants.BookingStatusRefunded,
		}).Return(db.Booking{ID: f.booking.ID, Status: constants.BookingStatusRefunded}, nil)
		f.metrics.EXPECT().RefundRequested(constants.RefundSourceBooking, "refunded")
		f.metrics.EXPECT().RefundIssued(constants.RefundSourceBooking, int64(10000))
		f.email.EXPECT().SendRefundConfirmation(gomock.Any(), "booker@example.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, data business.EmailData) error {
				assert.Equal(t, "100.00", data.Amount)
				assert.Equal(t, "50", data.RefundPercentage)
				assert.Equal(t, "USD", data.Currency)
				return nil
			})

		result, err := service.RequestRefund(ctx, params.RequestRefundParams{
			BookingID: f.booking.ID,
			UserID:    f.userID,
			Reason:    "cannot attend",
			Now:       midMay,
		})
		require.NoError(t, err)
		assert.Equal(t, "100", result.Outcome.RefundAmount.String())
		assert.Equal(t, "50", result.Outcome.RefundPercentage.String())
		assert.Equal(t, 1, result.Outcome.MatchedRuleIndex)
		assert.Equal(t, constants.BookingStatusRefunded, result.Booking.Status)
		assert.Equal(t, int64(10000), result.Refund.AmountCents)
		assert.Equal(t, 1, f.db.TxRunner.Calls)
	})

	t.Run("email failure does not fail the refund", func(t *testing.T) {
		f := newRefundFixture(t, testutil.StagedPolicy)
		service := services.NewBookingRefundService(f.deps(), nil)

		f.db.ExpectBooking(f.booking)
		f.db.ExpectEvent(f.event)
		f.expectParticipants()
		f.expectLock(constants.BookingStatusRefundRequested, nil)
		f.payments.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).
			Return(&business.ProviderRefund{ID: "re_456", Status: "pending"}, nil)
		f.db.Querier.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).Return(db.Refund{ID: uuid.New()}, nil)
		f.db.Querier.EXPECT().SetBookingRefund(gomock.Any(), gomock.Any()).Return(f.booking, nil)
		f.db.Querier.EXPECT().CompareAndSetBookingStatus(gomock.Any(), gomock.Any()).
			Return(db.Booking{ID: f.booking.ID, Status: constants.BookingStatusRefunded}, nil)
		f.metrics.EXPECT().RefundRequested(gomock.Any(), gomock.Any())
		f.metrics.EXPECT().RefundIssued(gomock.Any(), gomock.Any())
		f.email.EXPECT().SendRefundConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		result, err := service.RequestRefund(ctx, params.RequestRefundParams{BookingID: f.booking.ID, UserID: f.userID, Now: midMay})
		require.NoError(t, err)
		assert.NotNil(t, result)
	})

	t.Run("provider failure releases the booking", func(t *testing.T) {
		f := newRefundFixture(t, testutil.StagedPolicy)
		service := services.NewBookingRefundService(f.deps(), nil)

		f.db.ExpectBooking(f.booking)
		f.db.ExpectEvent(f.event)
		f.expectParticipants()
		f.expectLock(constants.BookingStatusRefundRequested, nil)
		f.payments.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).Return(nil, errors.New("card_declined"))
		f.db.Querier.EXPECT().CompareAndSetBookingStatus(gomock.Any(), db.CompareAndSetBookingStatusParams{
			ID:             f.booking.ID,
			ExpectedStatus: constants.BookingStatusRefundRequested,
			NewStatus:      constants.BookingStatusPaid,
		}).Return(f.booking, nil)
		f.metrics.EXPECT().RefundRequested(constants.RefundSourceBooking, "provider_error")

		result, err := service.RequestRefund(ctx, params.RequestRefundParams{BookingID: f.booking.ID, UserID: f.userID, Now: midMay})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, services.ErrPaymentProvider)
		assert.Equal(t, 0, f.db.TxRunner.Calls)
	})

	t.Run("withdrawn participants reduce the refund and seats are released", func(t *testing.T) {
		f := newRefundFixture(t, testutil.StagedPolicy)
		waitlist := mocks.NewMockWaitlistService(f.db.Ctrl)
		service := services.NewBookingRefundService(f.deps(), waitlist)

		sectionID := uuid.New()
		gone := testutil.NewParticipant(f.booking.ID, sectionID, 10000)
		gone.Status = constants.ParticipantStatusWithdrawn
		gone.RefundAmountCents = pgtypeInt8(10000)
		staying := testutil.NewParticipant(f.booking.ID, sectionID, 10000)
		promoted := testutil.NewParticipant(uuid.New(), sectionID, 10000)

		f.db.ExpectBooking(f.booking)
		f.db.ExpectEvent(f.event)
		f.expectParticipants(gone, staying)
		f.expectLock(constants.BookingStatusRefundRequested, nil)
		f.payments.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p params.ProviderRefundParams) (*business.ProviderRefund, error) {
				assert.Equal(t, int64(10000), p.AmountCents)
				assert.Equal(t, "booking-refund-"+f.booking.ID.String()+"-10000", p.IdempotencyKey)
				return &business.ProviderRefund{ID: "re_789", Status: "succeeded", AmountCents: 10000}, nil
			})
		f.db.Querier.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).Return(db.Refund{ID: uuid.New(), AmountCents: 10000}, nil)
		f.db.Querier.EXPECT().SetBookingRefund(gomock.Any(), gomock.Any()).Return(f.booking, nil)
		f.db.Querier.EXPECT().CompareAndSetBookingStatus(gomock.Any(), db.CompareAndSetBookingStatusParams{
			ID:             f.booking.ID,
			ExpectedStatus: constants.BookingStatusRefundRequested,
			NewStatus:      constants.BookingStatusRefunded,
		}).Return(db.Booking{ID: f.booking.ID, Status: constants.BookingStatusRefunded}, nil)
		withdrawn := staying
		withdrawn.Status = constants.ParticipantStatusWithdrawn
		f.db.Querier.EXPECT().CompareAndSetParticipantStatus(gomock.Any(), db.CompareAndSetParticipantStatusParams{
			ID:             staying.ID,
			ExpectedStatus: constants.ParticipantStatusActive,
			NewStatus:      constants.ParticipantStatusWithdrawn,
		}).Return(withdrawn, nil)
		f.metrics.EXPECT().RefundRequested(constants.RefundSourceBooking, "refunded")
		f.metrics.EXPECT().RefundIssued(constants.RefundSourceBooking, int64(10000))
		waitlist.EXPECT().ReleaseSeats(gomock.Any(), sectionID).Return([]db.Participant{promoted}, nil)
		f.email.EXPECT().SendRefundConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := service.RequestRefund(ctx, params.RequestRefundParams{
			BookingID: f.booking.ID,
			UserID:    f.userID,
			Now:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Equal(t, "100", result.Outcome.RefundAmount.String())
		require.Len(t, result.Withdrawn, 1)
		assert.Equal(t, staying.ID, result.Withdrawn[0].ID)
		assert.Equal(t, constants.ParticipantStatusWithdrawn, result.Withdrawn[0].Status)
		require.Len(t, result.Promoted, 1)
		assert.Equal(t, promoted.ID, result.Promoted[0].ID)
	})

	t.Run("fully withdrawn booking has nothing left to refund", func(t *testing.T) {
		f := newRefundFixture(t, testutil.StagedPolicy)
		service := services.NewBookingRefundService(f.deps(), nil)

		first := testutil.NewParticipant(f.booking.ID, uuid.New(), 10000)
		first.Status = constants.ParticipantStatusWithdrawn
		first.RefundAmountCents = pgtypeInt8(10000)
		second := testutil.NewParticipant(f.booking.ID, uuid.New(), 10000)
		second.Status = constants.ParticipantStatusWithdrawn
		second.RefundAmountCents = pgtypeInt8(10000)

		f.db.ExpectBooking(f.booking)
		f.db.ExpectEvent(f.event)
		f.expectParticipants(first, second)
		f.metrics.EXPECT().RefundRequested(constants.RefundSourceBooking, "no_refund")

		result, err := service.RequestRefund(ctx, params.RequestRefundParams{
			BookingID: f.booking.ID,
			UserID:    f.userID,
			Now:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, services.ErrNoRefundAvailable)
	})

	t.Run("retry in a later window uses a new idempotency key", func(t *testing.T) {
		f := newRefundFixture(t, testutil.StagedPolicy)
		service := services.NewBookingRefundService(f.deps(), nil)

		var keys []string
		for i := 0; i < 2; i++ {
			f.db.ExpectBooking(f.booking)
			f.db.ExpectEvent(f.event)
			f.expectParticipants()
			f.expectLock(constants.BookingStatusRefundRequested, nil)
			f.payments.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p params.ProviderRefundParams) (*business.ProviderRefund, error) {
					keys = append(keys, p.IdempotencyKey)
					return nil, errors.New("api_connection_error")
				})
			f.db.Querier.EXPECT().CompareAndSetBookingStatus(gomock.Any(), db.CompareAndSetBookingStatusParams{
				ID:             f.booking.ID,
				ExpectedStatus: constants.BookingStatusRefundRequested,
				NewStatus:      constants.BookingStatusPaid,
			}).Return(f.booking, nil)
			f.metrics.EXPECT().RefundRequested(constants.RefundSourceBooking, "provider_error")
		}

		for _, now := range []time.Time{time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), midMay} {
			_, err := service.RequestRefund(ctx, params.RequestRefundParams{BookingID: f.booking.ID, UserID: f.userID, Now: now})
			require.ErrorIs(t, err, services.ErrPaymentProvider)
		}

		require.Len(t, keys, 2)
		assert.Equal(t, "booking-refund-"+f.booking.ID.String()+"-20000", keys[0])
		assert.Equal(t, "booking-refund-"+f.booking.ID.String()+"-10000", keys[1])
	})

	t.Run("concurrent request loses the compare and set", func(t *testing.T) {
		f := newRefundFixture(t, testutil.StagedPolicy)
		service := services.NewBookingRefundService(f.deps(), nil)

		f.db.ExpectBooking(f.booking)
		f.db.ExpectEvent(f.event)
		f.expectParticipants()
		f.expectLock("", pgx.ErrNoRows)

		_, err := service.RequestRefund(ctx, params.RequestRefundParams{BookingID: f.booking.ID, UserID: f.userID, Now: midMay})
		assert.ErrorIs(t, err, services.ErrNotRefundable)
	})
}

func TestBookingRefundService_RequestRefundRejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		policy     string
		now        time.Time
		setupMocks func(f *refundFixture) params.RequestRefundParams
		wantErr    error
	}{
		{
			name:   "booking not found",
			policy: testutil.StagedPolicy,
			now:    midMay,
			setupMocks: func(f *refundFixture) params.RequestRefundParams {
				f.db.ExpectBookingMissing(f.booking.ID)
				return params.RequestRefundParams{BookingID: f.booking.ID, UserID: f.userID}
			},
			wantErr: services.ErrBookingNotFound,
		},
		{
			name:   "booking owned by someone else",
			policy: testutil.StagedPolicy,
			now:    midMay,
			setupMocks: func(f *refundFixture) params.RequestRefundParams {
				f.db.ExpectBooking(f.booking)
				return params.RequestRefundParams{BookingID: f.booking.ID, UserID: uuid.New()}
			},
			wantErr: services.ErrNotOwner,
		},
		{
			name:   "booking already refunded",
			policy: testutil.StagedPolicy,
			now:    midMay,
			setupMocks: func(f *refundFixture) params.RequestRefundParams {
				f.booking.Status = constants.BookingStatusRefunded
				f.db.ExpectBooking(f.booking)
				return params.RequestRefundParams{BookingID: f.booking.ID, UserID: f.userID}
			},
			wantErr: services.ErrNotRefundable,
		},
		{
			name:   "zero percent window",
			policy: testutil.StagedPolicy,
			now:    time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			setupMocks: func(f *refundFixture) params.RequestRefundParams {
				f.db.ExpectBooking(f.booking)
				f.db.ExpectEvent(f.event)
				f.expectParticipants()
				f.metrics.EXPECT().RefundRequested(constants.RefundSourceBooking, "no_refund")
				return params.RequestRefundParams{BookingID: f.booking.ID, UserID: f.userID}
			},
			wantErr: services.ErrNoRefundAvailable,
		},
		{
			name:   "event already started",
			policy: testutil.StagedPolicy,
			now:    testutil.EventStart.Add(time.Hour),
			setupMocks: func(f *refundFixture) params.RequestRefundParams {
				f.db.ExpectBooking(f.booking)
				f.db.ExpectEvent(f.event)
				f.metrics.EXPECT().RefundRequested(constants.RefundSourceBooking, "event_started")
				return params.RequestRefundParams{BookingID: f.booking.ID, UserID: f.userID}
			},
			wantErr: services.ErrEventStarted,
		},
		{
			name:   "empty policy",
			policy: `[]`,
			now:    midMay,
			setupMocks: func(f *refundFixture) params.RequestRefundParams {
				f.db.ExpectBooking(f.booking)
				f.db.ExpectEvent(f.event)
				f.expectParticipants()
				f.metrics.EXPECT().RefundRequested(constants.RefundSourceBooking, "policy_error")
				return params.RequestRefundParams{BookingID: f.booking.ID, UserID: f.userID}
			},
			wantErr: refund.ErrNoPolicyConfigured,
		},
		{
			name:   "refunds disabled",
			policy: testutil.StagedPolicy,
			now:    midMay,
			setupMocks: func(f *refundFixture) params.RequestRefundParams {
				f.event.RefundsEnabled = false
				f.db.ExpectBooking(f.booking)
				f.db.ExpectEvent(f.event)
				f.expectParticipants()
				f.metrics.EXPECT().RefundRequested(constants.RefundSourceBooking, "policy_error")
				return params.RequestRefundParams{BookingID: f.booking.ID, UserID: f.userID}
			},
			wantErr: refund.ErrNoPolicyConfigured,
		},
		{
			name:   "malformed policy",
			policy: `[{"type":"percentage","amount":150}]`,
			now:    midMay,
			setupMocks: func(f *refundFixture) params.RequestRefundParams {
				f.db.ExpectBooking(f.booking)
				f.db.ExpectEvent(f.event)
				return params.RequestRefundParams{BookingID: f.booking.ID, UserID: f.userID}
			},
			wantErr: refund.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRefundFixture(t, tt.policy)
			p := tt.setupMocks(f)
			p.Now = tt.now
			service := services.NewBookingRefundService(f.deps(), nil)

			result, err := service.RequestRefund(ctx, p)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
