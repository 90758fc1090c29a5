package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"commis/internal/csvexport"
	"commis/internal/domain"
	"commis/internal/service"
)

// IngestHandler handles report ingestion endpoints.
type IngestHandler struct {
	ingestService  service.IngestService
	maxUploadBytes int64
}

// NewIngestHandler creates a new IngestHandler. maxUploadBytes caps the
// declared upload size before the body is buffered; zero disables the check.
func NewIngestHandler(ingestService service.IngestService, maxUploadBytes int64) *IngestHandler {
	return &IngestHandler{ingestService: ingestService, maxUploadBytes: maxUploadBytes}
}

// Ingest handles POST /api/v1/ingestions
// Accepts a multipart upload with a "carrier" field and a "file" field
// (xlsx or csv) and returns the per-file ingestion summary.
func (h *IngestHandler) Ingest(c *gin.Context) {
	carrier := c.PostForm("carrier")
	if carrier == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_CARRIER", "carrier field is required")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	// Reject oversized uploads before buffering the whole body.
	if h.maxUploadBytes > 0 && header.Size > h.maxUploadBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	payload, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_UPLOAD", "could not read uploaded file")
		return
	}

	result, err := h.ingestService.Ingest(c.Request.Context(), service.IngestInput{
		Carrier:  carrier,
		FileName: header.Filename,
		Payload:  payload,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, result)
}

// List handles GET /api/v1/ingestions
func (h *IngestHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	ingestions, total, err := h.ingestService.ListIngestions(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, ingestions, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/ingestions/:id
func (h *IngestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid ingestion id")
		return
	}
	ingestion, err := h.ingestService.GetIngestion(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, ingestion)
}

// DownloadErrors handles GET /api/v1/ingestions/:id/errors.csv
// Streams the ingestion's row rejects as a CSV download.
func (h *IngestHandler) DownloadErrors(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid ingestion id")
		return
	}
	ingestion, err := h.ingestService.GetIngestion(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename(csvexport.SanitizeFilename(ingestion.FileName) + "_errors")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewRejectWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteRejects(ingestion.Rejects); err != nil {
		return
	}
	w.Flush()
}
