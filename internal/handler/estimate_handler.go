package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mobelio/estimator_api/internal/models"
	"github.com/mobelio/estimator_api/internal/service"
	"github.com/mobelio/estimator_api/internal/utils"
)

// EstimateHandler handles the live estimation endpoint.
type EstimateHandler struct {
	estimateService *service.EstimateService
}

// NewEstimateHandler constructs an EstimateHandler.
func NewEstimateHandler(estimateService *service.EstimateService) *EstimateHandler {
	return &EstimateHandler{estimateService: estimateService}
}

// CreateEstimate handles POST /v1/estimate. The selection may be partial; the
// response degrades to sentinel descriptions instead of erroring, mirroring
// how the frontend walks a user through the flow step by step.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var sel models.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	record := h.estimateService.Estimate(sel)
	utils.Success(c, 200, "Estimate generated", record)
}
