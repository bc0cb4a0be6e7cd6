package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventbook/eventbook-api/internal/constants"
	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/eventbook/eventbook-api/internal/types/api/params"
	"github.com/jackc/pgx/v5"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const (
	DefaultTicketQRSize = 256
	minTicketQRSize     = 128
	maxTicketQRSize     = 1024
	ticketPayloadPrefix = "eventbook:ticket:"
)

// ErrTicketInactive is returned for participants that hold no seat
var ErrTicketInactive = errors.New("ticket is not active")

// TicketService renders scannable tickets for active participants
type TicketService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewTicketService creates a new ticket service
func NewTicketService(queries db.Querier, logger *zap.Logger) *TicketService {
	return &TicketService{queries: queries, logger: logger}
}

// QRCode returns a PNG QR code encoding the participant's ticket code
func (s *TicketService) QRCode(ctx context.Context, p params.TicketQRParams) ([]byte, error) {
	booking, err := loadBooking(ctx, s.queries, p.BookingID, p.UserID)
	if err != nil {
		return nil, err
	}

	participant, err := s.queries.GetParticipant(ctx, p.ParticipantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	if participant.BookingID != booking.ID {
		return nil, ErrParticipantNotFound
	}
	if participant.Status != constants.ParticipantStatusActive || booking.Status != constants.BookingStatusPaid {
		return nil, ErrTicketInactive
	}

	png, err := qrcode.Encode(TicketPayload(participant.TicketCode), qrcode.Medium, clampQRSize(p.Size))
	if err != nil {
		return nil, fmt.Errorf("failed to encode ticket: %w", err)
	}
	return png, nil
}

// TicketPayload is the string scanners read from a ticket
func TicketPayload(ticketCode string) string {
	return ticketPayloadPrefix + ticketCode
}

func clampQRSize(size int) int {
	switch {
	case size <= 0:
		return DefaultTicketQRSize
	case size < minTicketQRSize:
		return minTicketQRSize
	case size > maxTicketQRSize:
		return maxTicketQRSize
	default:
		return size
	}
}
