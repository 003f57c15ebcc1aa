package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tundeojo/learnly-api/internal/domain"
)

type MockEnrollmentRepo struct {
	mock.Mock
	domain.EnrollmentRepository
}

func (m *MockEnrollmentRepo) EnrollWithPayment(ctx context.Context, record *domain.PaymentRecord) (bool, error) {
	args := m.Called(ctx, record)
	return args.Bool(0), args.Error(1)
}

func (m *MockEnrollmentRepo) Exists(ctx context.Context, userID, courseID int) (bool, error) {
	args := m.Called(ctx, userID, courseID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEnrollmentRepo) GetSummariesByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.EnrollmentSummary, *domain.Metadata, error) {

	args := m.Called(ctx, userID, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.EnrollmentSummary), args.Get(1).(*domain.Metadata), args.Error(2)
}
