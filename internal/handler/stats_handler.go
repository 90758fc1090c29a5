package handler

import (
	"github.com/gin-gonic/gin"

	"commis/internal/service"
)

// StatsHandler handles dashboard aggregate endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Get handles GET /api/v1/stats/summary
// Accepts the same filter query parameters as the records listing.
func (h *StatsHandler) Get(c *gin.Context) {
	filters, err := parseRecordFilters(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	stats, err := h.statsService.GetStats(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}
