package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/locatotal/presence-backend-go/internal/models"
	"github.com/locatotal/presence-backend-go/internal/service"
	"github.com/locatotal/presence-backend-go/pkg/response"
)

// IngestHandler handles HTTP requests for location export ingestion
type IngestHandler struct {
	service *service.IngestService
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(service *service.IngestService) *IngestHandler {
	return &IngestHandler{service: service}
}

// IngestExport handles POST /api/v1/ingest. The request body is a raw
// location-history export; ?replace=1 drops previously stored samples
// first.
func (h *IngestHandler) IngestExport(c *gin.Context) {
	replace := c.Query("replace") == "1"

	count, err := h.service.IngestExport(c.Request.Body, replace)
	if err != nil {
		response.BadRequest(c, "Failed to ingest location export", err)
		return
	}

	response.Success(c, gin.H{"samples": count, "replaced": replace})
}

// GetSamples handles GET /api/v1/samples
func (h *IngestHandler) GetSamples(c *gin.Context) {
	var filter models.SampleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	samples, total, err := h.service.GetSamples(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get samples", err)
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}

	response.Success(c, gin.H{
		"data":     samples,
		"total":    total,
		"page":     filter.Page,
		"pageSize": filter.PageSize,
	})
}
