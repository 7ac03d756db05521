package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mobelio/estimator_api/internal/models"
	"github.com/mobelio/estimator_api/internal/service"
	"github.com/mobelio/estimator_api/internal/utils"
)

// CombinationHandler serves the admin bulk price-editing grid.
type CombinationHandler struct {
	combinationService *service.CombinationService
}

// NewCombinationHandler constructs a CombinationHandler.
func NewCombinationHandler(combinationService *service.CombinationService) *CombinationHandler {
	return &CombinationHandler{combinationService: combinationService}
}

// GetCombinations handles GET /v1/admin/combinations?categoryId=&page=&limit=
func (h *CombinationHandler) GetCombinations(c *gin.Context) {
	var grid []models.Combination
	if categoryID := c.Query("categoryId"); categoryID != "" {
		grid = h.combinationService.CategoryGrid(categoryID)
	} else {
		grid = h.combinationService.Grid(c.Request.Context())
	}

	// pagination
	page := 1
	limit := 50
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	total := len(grid)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	utils.SuccessWithPagination(c, 200, "Combinations retrieved", gin.H{
		"combinations": grid[start:end],
	}, page, limit, total)
}
