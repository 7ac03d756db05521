// Package pricing implements the combination enumerator and the resolution
// engine over a catalog snapshot: it enumerates every valid
// (category, feature assignment, size) triple for the admin grid, renders
// selection descriptions and resolves the most specific image for a selection.
package pricing

import (
	"strings"

	"github.com/mobelio/estimator_api/internal/models"
)

// CatalogReader is the subset of the catalog store the pricing engine reads.
type CatalogReader interface {
	Categories() []models.Category
	Category(id string) (models.Category, bool)
	LookupPrice(categoryID string, selections map[string]string, sizeID string) (models.PriceEntry, bool)
}

// Combinations enumerates every valid combination across the catalog and
// annotates each with its price status. Only categories with at least one size
// are priceable. Order is deterministic: categories as stored, then sizes as
// stored, then feature assignments in generation order, so repeated grid
// renders are stable.
func Combinations(cat CatalogReader) []models.Combination {
	var out []models.Combination
	for _, c := range cat.Categories() {
		if len(c.Sizes) == 0 {
			continue
		}
		assignments := featureAssignments(c.Features)
		for _, size := range c.Sizes {
			for _, sel := range assignments {
				out = append(out, buildCombination(cat, c, size, sel))
			}
		}
	}
	return out
}

// CategoryCombinations enumerates combinations for a single category.
func CategoryCombinations(cat CatalogReader, categoryID string) []models.Combination {
	c, ok := cat.Category(categoryID)
	if !ok || len(c.Sizes) == 0 {
		return nil
	}
	var out []models.Combination
	assignments := featureAssignments(c.Features)
	for _, size := range c.Sizes {
		for _, sel := range assignments {
			out = append(out, buildCombination(cat, c, size, sel))
		}
	}
	return out
}

func buildCombination(cat CatalogReader, c models.Category, size models.Size, sel map[string]string) models.Combination {
	combo := models.Combination{
		CategoryID:         c.ID,
		CategoryName:       c.Name,
		FeatureSelections:  sel,
		FeatureDescription: featureDescription(c, sel),
		SizeID:             size.ID,
		SizeLabel:          size.Label,
		Description: Describe(models.Selection{
			CategoryID:        c.ID,
			FeatureSelections: sel,
			SizeID:            size.ID,
		}, cat),
	}
	if e, ok := cat.LookupPrice(c.ID, sel, size.ID); ok {
		combo.PriceRange = e.PriceRange
		combo.IsPriced = true
	}
	// Unpriced rows keep the {0,0} sentinel range.
	return combo
}

// featureAssignments builds the cartesian product of one option per feature,
// features in declaration order and options in declaration order within each.
// A feature with no options contributes no key instead of blocking the whole
// category. No features yields exactly one assignment: the empty map.
func featureAssignments(features []models.Feature) []map[string]string {
	assignments := []map[string]string{{}}
	for _, f := range features {
		if len(f.Options) == 0 {
			continue
		}
		next := make([]map[string]string, 0, len(assignments)*len(f.Options))
		for _, base := range assignments {
			for _, o := range f.Options {
				m := make(map[string]string, len(base)+1)
				for k, v := range base {
					m[k] = v
				}
				m[f.ID] = o.ID
				next = append(next, m)
			}
		}
		assignments = next
	}
	return assignments
}

// featureDescription joins "<FeatureName>: <OptionLabel>" for every selected
// feature, or "N/A" when the assignment is empty.
func featureDescription(c models.Category, sel map[string]string) string {
	var parts []string
	for _, f := range c.Features {
		optionID, ok := sel[f.ID]
		if !ok {
			continue
		}
		if o, ok := f.FindOption(optionID); ok {
			parts = append(parts, f.Name+": "+o.Label)
		}
	}
	if len(parts) == 0 {
		return "N/A"
	}
	return strings.Join(parts, ", ")
}
