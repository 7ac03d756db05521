package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mobelio/estimator_api/internal/metrics"
	"github.com/mobelio/estimator_api/internal/models"
	"github.com/mobelio/estimator_api/internal/service"
	"github.com/mobelio/estimator_api/internal/utils"
)

// CatalogAdminHandler handles admin catalog CRUD HTTP endpoints.
type CatalogAdminHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogAdminHandler constructs a CatalogAdminHandler.
func NewCatalogAdminHandler(catalogService *service.CatalogService) *CatalogAdminHandler {
	return &CatalogAdminHandler{catalogService: catalogService}
}

// CreateCategory handles POST /v1/admin/categories
func (h *CatalogAdminHandler) CreateCategory(c *gin.Context) {
	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	category := h.catalogService.CreateCategory(&req)
	metrics.AdminMutationsTotal.WithLabelValues("category", "create").Inc()
	utils.Success(c, 201, "Category created successfully", category)
}

// UpdateCategory handles PUT /v1/admin/categories/:id
func (h *CatalogAdminHandler) UpdateCategory(c *gin.Context) {
	var body models.Category
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	category, err := h.catalogService.UpdateCategory(c.Param("id"), body)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	metrics.AdminMutationsTotal.WithLabelValues("category", "update").Inc()
	utils.Success(c, 200, "Category updated successfully", category)
}

// DeleteCategory handles DELETE /v1/admin/categories/:id
func (h *CatalogAdminHandler) DeleteCategory(c *gin.Context) {
	deleted := h.catalogService.DeleteCategory(c.Param("id"))
	if deleted {
		metrics.AdminMutationsTotal.WithLabelValues("category", "delete").Inc()
	}
	utils.Success(c, 200, "Category delete processed", gin.H{"deleted": deleted})
}

// CreateFeature handles POST /v1/admin/categories/:id/features
func (h *CatalogAdminHandler) CreateFeature(c *gin.Context) {
	var req service.CreateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	feature, err := h.catalogService.CreateFeature(c.Param("id"), &req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	metrics.AdminMutationsTotal.WithLabelValues("feature", "create").Inc()
	utils.Success(c, 201, "Feature created successfully", feature)
}

// UpdateFeature handles PUT /v1/admin/categories/:id/features/:featureId
func (h *CatalogAdminHandler) UpdateFeature(c *gin.Context) {
	var body models.Feature
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	feature, err := h.catalogService.UpdateFeature(c.Param("id"), c.Param("featureId"), body)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	metrics.AdminMutationsTotal.WithLabelValues("feature", "update").Inc()
	utils.Success(c, 200, "Feature updated successfully", feature)
}

// DeleteFeature handles DELETE /v1/admin/categories/:id/features/:featureId
func (h *CatalogAdminHandler) DeleteFeature(c *gin.Context) {
	deleted := h.catalogService.DeleteFeature(c.Param("id"), c.Param("featureId"))
	if deleted {
		metrics.AdminMutationsTotal.WithLabelValues("feature", "delete").Inc()
	}
	utils.Success(c, 200, "Feature delete processed", gin.H{"deleted": deleted})
}

// CreateOption handles POST /v1/admin/categories/:id/features/:featureId/options
func (h *CatalogAdminHandler) CreateOption(c *gin.Context) {
	var req service.CreateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	option, err := h.catalogService.CreateOption(c.Param("id"), c.Param("featureId"), &req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	metrics.AdminMutationsTotal.WithLabelValues("option", "create").Inc()
	utils.Success(c, 201, "Option created successfully", option)
}

// UpdateOption handles PUT /v1/admin/categories/:id/features/:featureId/options/:optionId
func (h *CatalogAdminHandler) UpdateOption(c *gin.Context) {
	var body models.Option
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	option, err := h.catalogService.UpdateOption(c.Param("id"), c.Param("featureId"), c.Param("optionId"), body)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	metrics.AdminMutationsTotal.WithLabelValues("option", "update").Inc()
	utils.Success(c, 200, "Option updated successfully", option)
}

// DeleteOption handles DELETE /v1/admin/categories/:id/features/:featureId/options/:optionId
func (h *CatalogAdminHandler) DeleteOption(c *gin.Context) {
	deleted := h.catalogService.DeleteOption(c.Param("id"), c.Param("featureId"), c.Param("optionId"))
	if deleted {
		metrics.AdminMutationsTotal.WithLabelValues("option", "delete").Inc()
	}
	utils.Success(c, 200, "Option delete processed", gin.H{"deleted": deleted})
}

// CreateSize handles POST /v1/admin/categories/:id/sizes
func (h *CatalogAdminHandler) CreateSize(c *gin.Context) {
	var req service.CreateSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	size, err := h.catalogService.CreateSize(c.Param("id"), &req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	metrics.AdminMutationsTotal.WithLabelValues("size", "create").Inc()
	utils.Success(c, 201, "Size created successfully", size)
}

// UpdateSize handles PUT /v1/admin/categories/:id/sizes/:sizeId
func (h *CatalogAdminHandler) UpdateSize(c *gin.Context) {
	var body models.Size
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	size, err := h.catalogService.UpdateSize(c.Param("id"), c.Param("sizeId"), body)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	metrics.AdminMutationsTotal.WithLabelValues("size", "update").Inc()
	utils.Success(c, 200, "Size updated successfully", size)
}

// DeleteSize handles DELETE /v1/admin/categories/:id/sizes/:sizeId
func (h *CatalogAdminHandler) DeleteSize(c *gin.Context) {
	deleted := h.catalogService.DeleteSize(c.Param("id"), c.Param("sizeId"))
	if deleted {
		metrics.AdminMutationsTotal.WithLabelValues("size", "delete").Inc()
	}
	utils.Success(c, 200, "Size delete processed", gin.H{"deleted": deleted})
}
