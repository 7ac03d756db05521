package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mobelio/estimator_api/internal/catalog"
	"github.com/mobelio/estimator_api/internal/utils"
)

// respondStoreError maps catalog store errors to the response envelope.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrCategoryNotFound):
		utils.Error(c, 404, "CATEGORY_NOT_FOUND", err.Error())
	case errors.Is(err, catalog.ErrFeatureNotFound):
		utils.Error(c, 404, "FEATURE_NOT_FOUND", err.Error())
	case errors.Is(err, catalog.ErrOptionNotFound):
		utils.Error(c, 404, "OPTION_NOT_FOUND", err.Error())
	case errors.Is(err, catalog.ErrSizeNotFound):
		utils.Error(c, 404, "SIZE_NOT_FOUND", err.Error())
	case errors.Is(err, catalog.ErrInvalidPriceRange):
		utils.Error(c, 400, "INVALID_PRICE_RANGE", err.Error())
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", "Unexpected error")
	}
}
