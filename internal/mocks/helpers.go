package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockQuerierForTest creates a new mock Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}

// NewMockPaymentProviderForTest creates a new mock PaymentProvider for testing
func NewMockPaymentProviderForTest(t *testing.T) *MockPaymentProvider {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockPaymentProvider(ctrl)
}

// NewMockEmailServiceForTest creates a new mock EmailService for testing
func NewMockEmailServiceForTest(t *testing.T) *MockEmailService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockEmailService(ctrl)
}
