package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"commis/internal/domain"
	"commis/internal/handler"
	"commis/internal/service"
	"commis/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ingestRouter(svc service.IngestService) *gin.Engine {
	return ingestRouterWithCap(svc, 10*1024*1024)
}

func ingestRouterWithCap(svc service.IngestService, maxUploadBytes int64) *gin.Engine {
	r := gin.New()
	h := handler.NewIngestHandler(svc, maxUploadBytes)
	r.POST("/api/v1/ingestions", h.Ingest)
	r.GET("/api/v1/ingestions/:id", h.Get)
	r.GET("/api/v1/ingestions/:id/errors.csv", h.DownloadErrors)
	return r
}

// multipartUpload builds a multipart body with a carrier field and a file.
func multipartUpload(t *testing.T, carrier, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("carrier", carrier))
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestIngestHandler_Ingest_Success(t *testing.T) {
	svc := new(mocks.MockIngestService)
	svc.On("Ingest", mock.Anything, mock.MatchedBy(func(in service.IngestInput) bool {
		return in.Carrier == "MOLINA" && in.FileName == "molina.csv"
	})).Return(&domain.IngestionResult{
		IngestionID: uuid.New(),
		Carrier:     domain.CarrierMolina,
		FileName:    "molina.csv",
		RowsRead:    2,
		Accepted:    2,
	}, nil)

	body, contentType := multipartUpload(t, "MOLINA", "molina.csv", []byte("Agent,Amount,Mes Pagado\n"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ingestions", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	ingestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	svc.AssertExpectations(t)
}

func TestIngestHandler_Ingest_MissingCarrier(t *testing.T) {
	svc := new(mocks.MockIngestService)

	body, contentType := multipartUpload(t, "", "molina.csv", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ingestions", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	ingestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything)
}

func TestIngestHandler_Ingest_UnknownCarrier(t *testing.T) {
	svc := new(mocks.MockIngestService)
	svc.On("Ingest", mock.Anything, mock.Anything).Return(nil, domain.ErrUnknownCarrier)

	body, contentType := multipartUpload(t, "BLUECROSS", "report.csv", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ingestions", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	ingestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNKNOWN_CARRIER", resp.Error.Code)
}

func TestIngestHandler_Ingest_OversizedUploadRejectedBeforeRead(t *testing.T) {
	svc := new(mocks.MockIngestService)

	body, contentType := multipartUpload(t, "MOLINA", "big.csv", bytes.Repeat([]byte("x"), 2048))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ingestions", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	ingestRouterWithCap(svc, 1024).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	svc.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything)
}

func TestIngestHandler_Get_NotFound(t *testing.T) {
	svc := new(mocks.MockIngestService)
	id := uuid.New()
	svc.On("GetIngestion", mock.Anything, id).Return(nil, domain.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ingestions/"+id.String(), nil)
	rec := httptest.NewRecorder()

	ingestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIngestHandler_DownloadErrors(t *testing.T) {
	svc := new(mocks.MockIngestService)
	id := uuid.New()
	svc.On("GetIngestion", mock.Anything, id).Return(&domain.Ingestion{
		ID:       id,
		Carrier:  domain.CarrierOscar,
		FileName: "oscar_mar.xlsx",
		Rejects: domain.RejectList{
			{Row: 4, Field: "amount", Code: domain.RejectInvalidAmount, Value: "N/A", Message: "not a monetary value"},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ingestions/"+id.String()+"/errors.csv", nil)
	rec := httptest.NewRecorder()

	ingestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Body.String(), "invalid_amount")
}
