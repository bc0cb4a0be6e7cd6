package refund

import "errors"

var (
	// ErrInvalidInput is returned for a negative original amount or a malformed rule.
	ErrInvalidInput = errors.New("invalid refund input")
	// ErrNoPolicyConfigured is returned when the timeline has no rules.
	ErrNoPolicyConfigured = errors.New("no refund policy configured")
)
