package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"commis/internal/domain"
)

// MockRecordRepo is a mock implementation of port.CommissionRecordRepository.
type MockRecordRepo struct {
	mock.Mock
}

func (m *MockRecordRepo) CreateBatch(ctx context.Context, records []domain.CommissionRecord) (int, error) {
	args := m.Called(ctx, records)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordRepo) List(ctx context.Context, filters domain.RecordFilters) ([]domain.CommissionRecord, int, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CommissionRecord), args.Int(1), args.Error(2)
}

func (m *MockRecordRepo) DistinctAgents(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
