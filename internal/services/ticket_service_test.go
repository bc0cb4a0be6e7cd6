package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/eventbook/eventbook-api/internal/constants"
	"github.com/eventbook/eventbook-api/internal/services"
	"github.com/eventbook/eventbook-api/internal/testutil"
	"github.com/eventbook/eventbook-api/internal/types/api/params"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestTicketService_QRCode(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	event := testutil.NewEvent(testutil.StagedPolicy)

	t.Run("renders a png for an active participant", func(t *testing.T) {
		mockDB := testutil.NewMockDatabase(t)
		booking := testutil.NewPaidBooking(event.ID, userID, 5000)
		participant := testutil.NewParticipant(booking.ID, uuid.New(), 5000)
		mockDB.ExpectBooking(booking)
		mockDB.ExpectParticipant(participant)

		service := services.NewTicketService(mockDB.Querier, zap.NewNop())
		png, err := service.QRCode(ctx, params.TicketQRParams{BookingID: booking.ID, ParticipantID: participant.ID, UserID: userID})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(png, pngMagic))
	})

	t.Run("withdrawn participant has no ticket", func(t *testing.T) {
		mockDB := testutil.NewMockDatabase(t)
		booking := testutil.NewPaidBooking(event.ID, userID, 5000)
		participant := testutil.NewParticipant(booking.ID, uuid.New(), 5000)
		participant.Status = constants.ParticipantStatusWithdrawn
		mockDB.ExpectBooking(booking)
		mockDB.ExpectParticipant(participant)

		service := services.NewTicketService(mockDB.Querier, zap.NewNop())
		_, err := service.QRCode(ctx, params.TicketQRParams{BookingID: booking.ID, ParticipantID: participant.ID, UserID: userID})
		assert.ErrorIs(t, err, services.ErrTicketInactive)
	})

	t.Run("other user's booking", func(t *testing.T) {
		mockDB := testutil.NewMockDatabase(t)
		booking := testutil.NewPaidBooking(event.ID, userID, 5000)
		mockDB.ExpectBooking(booking)

		service := services.NewTicketService(mockDB.Querier, zap.NewNop())
		_, err := service.QRCode(ctx, params.TicketQRParams{BookingID: booking.ID, ParticipantID: uuid.New(), UserID: uuid.New()})
		assert.ErrorIs(t, err, services.ErrNotOwner)
	})
}

func TestTicketPayload(t *testing.T) {
	assert.Equal(t, "eventbook:ticket:TKT-1", services.TicketPayload("TKT-1"))
}
