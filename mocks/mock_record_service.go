package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"commis/internal/domain"
)

// MockRecordService is a mock implementation of service.RecordService.
type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) List(ctx context.Context, filters domain.RecordFilters) ([]domain.CommissionRecord, int, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CommissionRecord), args.Int(1), args.Error(2)
}

func (m *MockRecordService) Export(ctx context.Context, filters domain.RecordFilters) ([]domain.CommissionRecord, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommissionRecord), args.Error(1)
}

func (m *MockRecordService) Agents(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRecordService) Carriers() []domain.Carrier {
	args := m.Called()
	return args.Get(0).([]domain.Carrier)
}
