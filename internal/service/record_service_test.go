package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"commis/internal/domain"
	"commis/internal/schema"
	"commis/internal/service"
	"commis/mocks"
)

func TestRecordService_List_NormalizesPagination(t *testing.T) {
	records := new(mocks.MockRecordRepo)
	records.On("List", mock.Anything, mock.MatchedBy(func(f domain.RecordFilters) bool {
		return f.Offset == 0 && f.Limit == 50
	})).Return([]domain.CommissionRecord{}, 0, nil)

	svc := service.NewRecordService(records, schema.NewRegistry())
	_, _, err := svc.List(context.Background(), domain.RecordFilters{Offset: -3, Limit: 0})
	require.NoError(t, err)
	records.AssertExpectations(t)
}

func TestRecordService_List_CapsLimit(t *testing.T) {
	records := new(mocks.MockRecordRepo)
	records.On("List", mock.Anything, mock.MatchedBy(func(f domain.RecordFilters) bool {
		return f.Limit == 500
	})).Return([]domain.CommissionRecord{}, 0, nil)

	svc := service.NewRecordService(records, schema.NewRegistry())
	_, _, err := svc.List(context.Background(), domain.RecordFilters{Limit: 99999})
	require.NoError(t, err)
	records.AssertExpectations(t)
}

func TestRecordService_Carriers(t *testing.T) {
	svc := service.NewRecordService(new(mocks.MockRecordRepo), schema.NewRegistry())
	assert.Equal(t, domain.Carriers, svc.Carriers())
}
