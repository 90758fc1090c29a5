package handler

import (
	"github.com/gin-gonic/gin"

	"commis/internal/service"
)

// RecordHandler handles stored commission record queries.
type RecordHandler struct {
	recordService service.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// List handles GET /api/v1/records
// Supports carrier, agent, transaction_type, period_from, period_to,
// offset, and limit query parameters.
func (h *RecordHandler) List(c *gin.Context) {
	filters, err := parseRecordFilters(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	records, total, err := h.recordService.List(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, records, PagMeta{Total: total, Offset: filters.Offset, Limit: filters.Limit})
}

// Agents handles GET /api/v1/agents
func (h *RecordHandler) Agents(c *gin.Context) {
	agents, err := h.recordService.Agents(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, agents)
}

// Carriers handles GET /api/v1/carriers
func (h *RecordHandler) Carriers(c *gin.Context) {
	RespondOK(c, h.recordService.Carriers())
}
