package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/locatotal/presence-backend-go/internal/config"
	"github.com/locatotal/presence-backend-go/internal/handler"
	"github.com/locatotal/presence-backend-go/internal/middleware"
	"github.com/locatotal/presence-backend-go/internal/presence"
	"github.com/locatotal/presence-backend-go/internal/repository"
	"github.com/locatotal/presence-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers onto the gin
// engine.
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	sampleRepo := repository.NewSampleRepository(db)
	regionRepo := repository.NewRegionRepository(db)
	windowRepo := repository.NewWindowRepository(db)
	runRepo := repository.NewRunRepository(db)

	diag := presence.StdLogger{Debug: cfg.Debug}
	ingestSvc := service.NewIngestService(sampleRepo)
	regionSvc := service.NewRegionService(regionRepo)
	windowSvc := service.NewWindowService(windowRepo)
	analysisSvc := service.NewAnalysisService(sampleRepo, regionRepo, windowRepo, runRepo, diag)

	ingestHandler := handler.NewIngestHandler(ingestSvc)
	regionHandler := handler.NewRegionHandler(regionSvc)
	windowHandler := handler.NewWindowHandler(windowSvc)
	analysisHandler := handler.NewAnalysisHandler(analysisSvc)
	authHandler := handler.NewAuthHandler(cfg.JWTSecret)

	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Presence Backend API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/auth/token", middleware.RateLimit(10, time.Minute), authHandler.IssueToken)

		api.GET("/samples", ingestHandler.GetSamples)
		api.GET("/regions", regionHandler.GetRegions)
		api.GET("/windows", windowHandler.GetWindows)
		api.GET("/runs", analysisHandler.GetRuns)
		api.GET("/runs/:id", analysisHandler.GetRun)
		api.GET("/runs/:id/csv", analysisHandler.GetRunCSV)
		api.GET("/runs/:id/report", analysisHandler.GetRunReport)

		protected := api.Group("", middleware.RequireAuth(cfg.JWTSecret))
		{
			protected.POST("/ingest", ingestHandler.IngestExport)
			protected.POST("/regions", regionHandler.CreateRegion)
			protected.DELETE("/regions/:id", regionHandler.DeleteRegion)
			protected.POST("/windows", windowHandler.CreateWindow)
			protected.DELETE("/windows/:id", windowHandler.DeleteWindow)
			protected.POST("/runs", analysisHandler.RunAnalysis)
		}
	}

	return r
}
