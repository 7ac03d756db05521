package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mobelio/estimator_api/internal/service"
	"github.com/mobelio/estimator_api/internal/utils"
)

// CatalogHandler handles the public read-only catalog endpoints used by the
// estimation flow.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetCatalog handles GET /v1/catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	utils.Success(c, 200, "Catalog retrieved", gin.H{
		"categories": h.catalogService.Categories(),
	})
}

// GetCategory handles GET /v1/catalog/categories/:id
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.catalogService.Category(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, 200, "Category retrieved", category)
}
