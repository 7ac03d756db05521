package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mobelio/estimator_api/internal/service"
	"github.com/mobelio/estimator_api/internal/utils"
)

// HealthHandler handles the health check endpoint.
type HealthHandler struct {
	catalogService *service.CatalogService
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(catalogService *service.CatalogService) *HealthHandler {
	return &HealthHandler{catalogService: catalogService}
}

// GetHealth returns service status plus a quick catalog shape summary.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	categories := h.catalogService.Categories()
	utils.Success(c, 200, "OK", gin.H{
		"status":     "healthy",
		"categories": len(categories),
	})
}
