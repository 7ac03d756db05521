package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mobelio/estimator_api/internal/catalog"
	"github.com/mobelio/estimator_api/internal/metrics"
	"github.com/mobelio/estimator_api/internal/models"
	"github.com/mobelio/estimator_api/internal/utils"
)

// PriceHandler handles admin price table endpoints.
type PriceHandler struct {
	store *catalog.Store
}

// NewPriceHandler constructs a PriceHandler.
func NewPriceHandler(store *catalog.Store) *PriceHandler {
	return &PriceHandler{store: store}
}

// ListPrices handles GET /v1/admin/prices?categoryId=
func (h *PriceHandler) ListPrices(c *gin.Context) {
	entries := h.store.PriceEntries(c.Query("categoryId"))
	utils.Success(c, 200, "Price entries retrieved", gin.H{
		"entries": entries,
	})
}

// UpsertPrice handles PUT /v1/admin/prices
func (h *PriceHandler) UpsertPrice(c *gin.Context) {
	var body models.PriceEntry
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	entry, err := h.store.UpsertPrice(body)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	metrics.AdminMutationsTotal.WithLabelValues("price", "upsert").Inc()
	utils.Success(c, 200, "Price saved successfully", entry)
}
