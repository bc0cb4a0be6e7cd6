package testutil

import (
	"context"
	"testing"

	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/eventbook/eventbook-api/internal/mocks"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"
)

// MockDatabase bundles a mock Querier with a transaction runner that runs
// callbacks against the same mock
type MockDatabase struct {
	Ctrl     *gomock.Controller
	Querier  *mocks.MockQuerier
	TxRunner *InlineTxRunner
}

// NewMockDatabase creates a new mock database for unit testing
func NewMockDatabase(t *testing.T) *MockDatabase {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	querier := mocks.NewMockQuerier(ctrl)
	return &MockDatabase{
		Ctrl:     ctrl,
		Querier:  querier,
		TxRunner: &InlineTxRunner{Querier: querier},
	}
}

// InlineTxRunner runs transaction callbacks directly against Querier
type InlineTxRunner struct {
	Querier db.Querier
	Calls   int
}

// RunInTx implements interfaces.TxRunner
func (r *InlineTxRunner) RunInTx(ctx context.Context, fn func(q db.Querier) error) error {
	r.Calls++
	return fn(r.Querier)
}

// ExpectBooking sets up a GetBooking expectation
func (m *MockDatabase) ExpectBooking(booking db.Booking) {
	m.Querier.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
}

// ExpectBookingMissing sets up a GetBooking expectation that finds nothing
func (m *MockDatabase) ExpectBookingMissing(id uuid.UUID) {
	m.Querier.EXPECT().GetBooking(gomock.Any(), id).Return(db.Booking{}, pgx.ErrNoRows)
}

// ExpectEvent sets up a GetEvent expectation
func (m *MockDatabase) ExpectEvent(event db.Event) {
	m.Querier.EXPECT().GetEvent(gomock.Any(), event.ID).Return(event, nil)
}

// ExpectParticipant sets up a GetParticipant expectation
func (m *MockDatabase) ExpectParticipant(participant db.Participant) {
	m.Querier.EXPECT().GetParticipant(gomock.Any(), participant.ID).Return(participant, nil)
}
