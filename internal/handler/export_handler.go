package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"commis/internal/csvexport"
	"commis/internal/domain"
	"commis/internal/service"
	"commis/internal/xlsxexport"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles record file exports.
type ExportHandler struct {
	recordService service.RecordService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(recordService service.RecordService) *ExportHandler {
	return &ExportHandler{recordService: recordService}
}

// Export handles GET /api/v1/records/export
// The format query parameter selects csv (default) or xlsx. Filters match
// the records listing.
func (h *ExportHandler) Export(c *gin.Context) {
	filters, err := parseRecordFilters(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	records, err := h.recordService.Export(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		h.writeCSV(c, records)
	case "xlsx":
		h.writeXLSX(c, records)
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "unsupported export format; allowed: csv, xlsx")
	}
}

func (h *ExportHandler) writeCSV(c *gin.Context, records []domain.CommissionRecord) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+csvexport.BuildFilename("commission_records")+`"`)
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteRecords(records); err != nil {
		return
	}
	w.Flush()
}

func (h *ExportHandler) writeXLSX(c *gin.Context, records []domain.CommissionRecord) {
	buf, err := xlsxexport.Build(records)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+xlsxexport.BuildFilename("commission_records")+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
