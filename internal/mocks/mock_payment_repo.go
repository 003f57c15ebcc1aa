package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tundeojo/learnly-api/internal/domain"
)

type MockPaymentRepo struct {
	mock.Mock
	domain.PaymentRepository
}

func (m *MockPaymentRepo) CreateIfAbsent(ctx context.Context, record *domain.PaymentRecord) (bool, error) {
	args := m.Called(ctx, record)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepo) GetByReference(ctx context.Context, reference string) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}
