package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"commis/internal/domain"
	"commis/internal/handler"
	"commis/internal/service"
	"commis/mocks"
)

func recordRouter(svc service.RecordService) *gin.Engine {
	r := gin.New()
	h := handler.NewRecordHandler(svc)
	e := handler.NewExportHandler(svc)
	r.GET("/api/v1/records", h.List)
	r.GET("/api/v1/records/export", e.Export)
	r.GET("/api/v1/agents", h.Agents)
	r.GET("/api/v1/carriers", h.Carriers)
	return r
}

func TestRecordHandler_List_Filters(t *testing.T) {
	svc := new(mocks.MockRecordService)
	svc.On("List", mock.Anything, mock.MatchedBy(func(f domain.RecordFilters) bool {
		return f.Carrier == domain.CarrierMolina &&
			f.Agent == "Jane Doe" &&
			f.PeriodFrom == "2025-01" &&
			f.Offset == 10 && f.Limit == 20
	})).Return([]domain.CommissionRecord{}, 0, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/records?carrier=molina&agent=Jane+Doe&period_from=2025-01&offset=10&limit=20", nil)
	rec := httptest.NewRecorder()

	recordRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestRecordHandler_List_BadCarrier(t *testing.T) {
	svc := new(mocks.MockRecordService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/records?carrier=BLUECROSS", nil)
	rec := httptest.NewRecorder()

	recordRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestRecordHandler_Carriers(t *testing.T) {
	svc := new(mocks.MockRecordService)
	svc.On("Carriers").Return(domain.Carriers)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/carriers", nil)
	rec := httptest.NewRecorder()

	recordRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestExportHandler_CSV(t *testing.T) {
	svc := new(mocks.MockRecordService)
	svc.On("Export", mock.Anything, mock.Anything).Return([]domain.CommissionRecord{
		{Carrier: domain.CarrierAetna, AgentName: "Jane Doe", TransactionType: domain.TransactionCommission, Amount: 10, Period: "2025-01"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/records/export?format=csv", nil)
	rec := httptest.NewRecorder()

	recordRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Body.String(), "Jane Doe")
}

func TestExportHandler_InvalidFormat(t *testing.T) {
	svc := new(mocks.MockRecordService)
	svc.On("Export", mock.Anything, mock.Anything).Return([]domain.CommissionRecord{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/records/export?format=pdf", nil)
	rec := httptest.NewRecorder()

	recordRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
