package catalog

import (
	"github.com/rs/zerolog/log"

	"github.com/mobelio/estimator_api/internal/models"
)

// LookupPrice returns the unique price entry matching the exact combination,
// or false. Matching is exact: same category and size, and for a category with
// features the candidate's selection key set must have the same cardinality as
// the query's with every candidate key mapped to an equal value. A category
// without features matches only entries with empty selections. There is no
// partial or best-effort pricing.
func (s *Store) LookupPrice(categoryID string, selections map[string]string, sizeID string) (models.PriceEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.categoryIndex(categoryID)
	if i < 0 {
		return models.PriceEntry{}, false
	}
	hasFeatures := len(s.categories[i].Features) > 0

	var hit *models.PriceEntry
	for j := range s.entries {
		e := &s.entries[j]
		if e.CategoryID != categoryID || e.SizeID != sizeID {
			continue
		}
		if !selectionsMatch(e.FeatureSelections, selections, hasFeatures) {
			continue
		}
		if hit != nil {
			// Duplicate composite keys violate the uniqueness invariant;
			// first match in insertion order wins.
			log.Warn().
				Str("category_id", categoryID).
				Str("size_id", sizeID).
				Msg("Duplicate price entry key detected, using first match")
			break
		}
		hit = e
	}
	if hit == nil {
		return models.PriceEntry{}, false
	}
	return cloneEntry(*hit), true
}

// UpsertPrice validates and stores a price entry. An invalid range is rejected
// before any mutation. If an entry with the same composite key exists only its
// price range is replaced (key fields are immutable); otherwise the entry is
// inserted with its selections normalized down to the category's currently
// defined feature ids — stale keys are silently dropped, not rejected. Size
// and option references must be live at write time.
func (s *Store) UpsertPrice(entry models.PriceEntry) (models.PriceEntry, error) {
	if entry.PriceRange.Min < 0 || entry.PriceRange.Max < 0 || entry.PriceRange.Min > entry.PriceRange.Max {
		return models.PriceEntry{}, ErrInvalidPriceRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.categoryIndex(entry.CategoryID)
	if i < 0 {
		return models.PriceEntry{}, ErrCategoryNotFound
	}
	cat := s.categories[i]
	if _, ok := cat.FindSize(entry.SizeID); !ok {
		return models.PriceEntry{}, ErrSizeNotFound
	}

	// Keep only keys that are defined features of the category, and require
	// the surviving values to be live options of those features.
	normalized := make(map[string]string)
	for _, f := range cat.Features {
		optionID, ok := entry.FeatureSelections[f.ID]
		if !ok {
			continue
		}
		if _, ok := f.FindOption(optionID); !ok {
			return models.PriceEntry{}, ErrOptionNotFound
		}
		normalized[f.ID] = optionID
	}

	for j := range s.entries {
		e := &s.entries[j]
		if e.CategoryID != entry.CategoryID || e.SizeID != entry.SizeID {
			continue
		}
		if !sameKey(e.FeatureSelections, normalized) {
			continue
		}
		e.PriceRange = entry.PriceRange
		s.revision++
		return cloneEntry(*e), nil
	}

	stored := models.PriceEntry{
		CategoryID:        entry.CategoryID,
		FeatureSelections: normalized,
		SizeID:            entry.SizeID,
		PriceRange:        entry.PriceRange,
	}
	s.entries = append(s.entries, cloneEntry(stored))
	s.revision++
	return stored, nil
}

// PriceEntries returns price entries in insertion order, optionally filtered
// by category. An empty categoryID returns everything.
func (s *Store) PriceEntries(categoryID string) []models.PriceEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PriceEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if categoryID != "" && e.CategoryID != categoryID {
			continue
		}
		out = append(out, cloneEntry(e))
	}
	return out
}

// selectionsMatch applies the exact-match policy between a stored candidate
// and a query selection map.
func selectionsMatch(candidate, query map[string]string, categoryHasFeatures bool) bool {
	if !categoryHasFeatures {
		return len(candidate) == 0
	}
	if len(candidate) != len(query) {
		return false
	}
	for k, v := range candidate {
		if query[k] != v {
			return false
		}
	}
	return true
}

// sameKey reports whether two selection maps are equal as composite key parts.
func sameKey(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
