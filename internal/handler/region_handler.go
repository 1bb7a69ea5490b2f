package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/locatotal/presence-backend-go/internal/models"
	"github.com/locatotal/presence-backend-go/internal/service"
	"github.com/locatotal/presence-backend-go/pkg/response"
)

// RegionHandler handles HTTP requests for regions of interest
type RegionHandler struct {
	service *service.RegionService
}

// NewRegionHandler creates a new region handler
func NewRegionHandler(service *service.RegionService) *RegionHandler {
	return &RegionHandler{service: service}
}

// CreateRegion handles POST /api/v1/regions
func (h *RegionHandler) CreateRegion(c *gin.Context) {
	var region models.Region
	if err := c.ShouldBindJSON(&region); err != nil {
		response.BadRequest(c, "Invalid region body", err)
		return
	}

	created, err := h.service.CreateRegion(region)
	if err != nil {
		response.BadRequest(c, "Failed to create region", err)
		return
	}

	response.Success(c, created)
}

// GetRegions handles GET /api/v1/regions
func (h *RegionHandler) GetRegions(c *gin.Context) {
	regions, err := h.service.GetRegions()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get regions", err)
		return
	}

	response.Success(c, regions)
}

// DeleteRegion handles DELETE /api/v1/regions/:id
func (h *RegionHandler) DeleteRegion(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid region ID", err)
		return
	}

	if err := h.service.DeleteRegion(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			response.NotFound(c, "Region not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete region", err)
		return
	}

	response.Success(c, gin.H{"deleted": id})
}
