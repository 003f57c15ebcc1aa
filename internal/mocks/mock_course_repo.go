package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tundeojo/learnly-api/internal/domain"
)

type MockCourseRepo struct {
	mock.Mock
	domain.CourseRepository
}

func (m *MockCourseRepo) GetAll(ctx context.Context, filters domain.CourseFilters) ([]*domain.Course, *domain.Metadata, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]*domain.Course), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockCourseRepo) GetById(ctx context.Context, id int) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseRepo) GetByIdWithContent(ctx context.Context, id int) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseRepo) GetEnrollable(ctx context.Context) ([]*domain.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Course), args.Error(1)
}
