package service

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mobelio/estimator_api/internal/catalog"
	"github.com/mobelio/estimator_api/internal/metrics"
	"github.com/mobelio/estimator_api/internal/models"
	"github.com/mobelio/estimator_api/internal/pricing"
)

// EstimateService answers live user estimation queries. It never mutates the
// store; the resulting snapshot is the frontend's to persist.
type EstimateService struct {
	store *catalog.Store
}

// NewEstimateService constructs an EstimateService.
func NewEstimateService(store *catalog.Store) *EstimateService {
	return &EstimateService{store: store}
}

// Estimate builds an immutable estimation snapshot for a selection: rendered
// description, resolved image and the exact price match when one exists.
// Unresolvable selections degrade to sentinel descriptions and a nil image
// rather than failing.
func (s *EstimateService) Estimate(sel models.Selection) models.EstimationRecord {
	rec := models.EstimationRecord{
		ID:          uuid.NewString(),
		Selection:   sel,
		Description: pricing.Describe(sel, s.store),
		Timestamp:   time.Now().UTC(),
	}
	if img, ok := pricing.ResolveImage(sel, s.store); ok {
		rec.Image = &img
	}
	if e, ok := s.store.LookupPrice(sel.CategoryID, sel.FeatureSelections, sel.SizeID); ok {
		pr := e.PriceRange
		rec.PriceRange = &pr
	}
	metrics.EstimatesTotal.WithLabelValues(strconv.FormatBool(rec.PriceRange != nil)).Inc()
	return rec
}
