package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/locatotal/presence-backend-go/internal/models"
	"github.com/locatotal/presence-backend-go/internal/presence"
	"github.com/locatotal/presence-backend-go/internal/report"
	"github.com/locatotal/presence-backend-go/internal/service"
	"github.com/locatotal/presence-backend-go/pkg/response"
)

// AnalysisHandler handles HTTP requests for presence analysis runs
type AnalysisHandler struct {
	service *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// RunAnalysis handles POST /api/v1/runs
func (h *AnalysisHandler) RunAnalysis(c *gin.Context) {
	run, err := h.service.RunAnalysis()
	if err != nil {
		if errors.Is(err, presence.ErrNoRegions) {
			response.BadRequest(c, "At least one region of interest is required", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Analysis failed", err)
		return
	}

	response.Success(c, run)
}

// GetRuns handles GET /api/v1/runs
func (h *AnalysisHandler) GetRuns(c *gin.Context) {
	var filter models.RunFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	runs, total, err := h.service.GetRuns(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list runs", err)
		return
	}

	response.Success(c, gin.H{"data": runs, "total": total})
}

// GetRun handles GET /api/v1/runs/:id
func (h *AnalysisHandler) GetRun(c *gin.Context) {
	run, err := h.service.GetRun(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get run", err)
		return
	}
	if run == nil {
		response.NotFound(c, "Run not found")
		return
	}

	response.Success(c, run)
}

// GetRunCSV handles GET /api/v1/runs/:id/csv, streaming the per-date
// totals as a Date,Seconds,Hours table.
func (h *AnalysisHandler) GetRunCSV(c *gin.Context) {
	run, err := h.service.GetRun(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get run", err)
		return
	}
	if run == nil {
		response.NotFound(c, "Run not found")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="date_totals.csv"`)
	if err := report.WriteDateTotals(c.Writer, run.DateTotals); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to write CSV", err)
	}
}

// GetRunReport handles GET /api/v1/runs/:id/report, rendering the
// human-readable per-period lines plus the grand total.
func (h *AnalysisHandler) GetRunReport(c *gin.Context) {
	run, err := h.service.GetRun(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get run", err)
		return
	}
	if run == nil {
		response.NotFound(c, "Run not found")
		return
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	if err := report.WritePeriods(c.Writer, run.Periods); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to write report", err)
	}
}
