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

// WindowHandler handles HTTP requests for allowed detection windows
type WindowHandler struct {
	service *service.WindowService
}

// NewWindowHandler creates a new window handler
func NewWindowHandler(service *service.WindowService) *WindowHandler {
	return &WindowHandler{service: service}
}

// CreateWindow handles POST /api/v1/windows
func (h *WindowHandler) CreateWindow(c *gin.Context) {
	var w models.Window
	if err := c.ShouldBindJSON(&w); err != nil {
		response.BadRequest(c, "Invalid window body", err)
		return
	}

	created, err := h.service.CreateWindow(w)
	if err != nil {
		response.BadRequest(c, "Failed to create window", err)
		return
	}

	response.Success(c, created)
}

// GetWindows handles GET /api/v1/windows
func (h *WindowHandler) GetWindows(c *gin.Context) {
	windows, err := h.service.GetWindows()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get windows", err)
		return
	}

	response.Success(c, windows)
}

// DeleteWindow handles DELETE /api/v1/windows/:id
func (h *WindowHandler) DeleteWindow(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid window ID", err)
		return
	}

	if err := h.service.DeleteWindow(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			response.NotFound(c, "Window not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete window", err)
		return
	}

	response.Success(c, gin.H{"deleted": id})
}
