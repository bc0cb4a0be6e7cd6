package services

import "errors"

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrSectionNotFound     = errors.New("event section not found")
	ErrNotOwner            = errors.New("booking belongs to another user")
	ErrNotRefundable       = errors.New("booking is not refundable")
	ErrNoRefundAvailable   = errors.New("no refund available")
	ErrEventStarted        = errors.New("event has already started")
	ErrPaymentProvider     = errors.New("payment provider refund failed")
)
