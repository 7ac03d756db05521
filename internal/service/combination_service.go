package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/mobelio/estimator_api/internal/cache"
	"github.com/mobelio/estimator_api/internal/catalog"
	"github.com/mobelio/estimator_api/internal/metrics"
	"github.com/mobelio/estimator_api/internal/models"
	"github.com/mobelio/estimator_api/internal/pricing"
)

// CombinationService builds the admin pricing grid, serving it from the Redis
// cache when the catalog revision still matches. The cache is optional; a nil
// GridCache means every call enumerates fresh.
type CombinationService struct {
	store     *catalog.Store
	gridCache *cache.GridCache
}

// NewCombinationService constructs a CombinationService.
func NewCombinationService(store *catalog.Store, gridCache *cache.GridCache) *CombinationService {
	return &CombinationService{store: store, gridCache: gridCache}
}

// Grid returns every combination across the catalog in deterministic order.
func (s *CombinationService) Grid(ctx context.Context) []models.Combination {
	rev := s.store.Revision()
	if s.gridCache != nil {
		if combos, err := s.gridCache.Get(ctx, rev); err == nil {
			return combos
		}
	}

	combos := pricing.Combinations(s.store)
	metrics.GridBuildsTotal.Inc()
	if s.gridCache != nil {
		if err := s.gridCache.Set(ctx, rev, combos); err != nil {
			log.Warn().Err(err).Msg("Failed to cache combination grid")
		}
	}
	return combos
}

// CategoryGrid returns the combinations of one category. Served without the
// cache: single-category grids are cheap to enumerate.
func (s *CombinationService) CategoryGrid(categoryID string) []models.Combination {
	return pricing.CategoryCombinations(s.store, categoryID)
}
