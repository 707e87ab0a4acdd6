package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/akalomiris/reportly/internal/config"
	"github.com/akalomiris/reportly/internal/server/http/handlers"
	"github.com/akalomiris/reportly/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ReportFacade, logger *slog.Logger, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Maintenance(cfg.MaintenanceMode))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	docsHandler := handlers.NewDocsHandler()
	reportHandler := handlers.NewReportHandler(facade)

	engine.GET("/", docsHandler.Root)
	engine.GET("/docs", docsHandler.Index)

	engine.POST("/queue-report/", reportHandler.Queue)
	engine.GET("/reports", reportHandler.List)
	engine.GET("/get-report/:uid", reportHandler.Get)

	return engine
}
