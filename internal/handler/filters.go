package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"commis/internal/domain"
)

// parseRecordFilters extracts record query filters from query parameters.
// A bad carrier value is an error; everything else falls back to unset.
func parseRecordFilters(c *gin.Context) (domain.RecordFilters, error) {
	filters := domain.RecordFilters{
		Agent:      c.Query("agent"),
		PeriodFrom: c.Query("period_from"),
		PeriodTo:   c.Query("period_to"),
	}
	if raw := c.Query("carrier"); raw != "" {
		carrier, err := domain.ParseCarrier(raw)
		if err != nil {
			return filters, err
		}
		filters.Carrier = carrier
	}
	if raw := c.Query("transaction_type"); raw != "" {
		filters.TransactionType = domain.TransactionType(raw)
	}
	filters.Offset, filters.Limit = parsePagination(c)
	return filters, nil
}

// parsePagination extracts offset and limit query parameters, defaulting
// missing or malformed values to zero (normalized downstream).
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	return offset, limit
}
