package router

import (
	"github.com/gin-gonic/gin"

	"commis/internal/handler"
	"commis/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	ingestH *handler.IngestHandler,
	recordH *handler.RecordHandler,
	statsH *handler.StatsHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Report ingestion
	ingestions := v1.Group("/ingestions")
	ingestions.POST("", ingestH.Ingest)
	ingestions.GET("", ingestH.List)
	ingestions.GET("/:id", ingestH.Get)
	ingestions.GET("/:id/errors.csv", ingestH.DownloadErrors)

	// Stored records and dashboard
	records := v1.Group("/records")
	records.GET("", recordH.List)
	records.GET("/export", exportH.Export)

	v1.GET("/agents", recordH.Agents)
	v1.GET("/carriers", recordH.Carriers)
	v1.GET("/stats/summary", statsH.Get)

	return r
}
