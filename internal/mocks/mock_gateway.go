package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tundeojo/learnly-api/internal/domain"
)

type MockPaymentGateway struct {
	mock.Mock
	domain.PaymentGateway
}

func (m *MockPaymentGateway) VerifyTransaction(ctx context.Context, reference string) (*domain.VerifiedTransaction, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerifiedTransaction), args.Error(1)
}
