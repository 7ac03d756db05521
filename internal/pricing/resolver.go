package pricing

import (
	"strings"

	"github.com/mobelio/estimator_api/internal/models"
)

// Describe renders a human-readable summary of a selection:
// "<Category> (<opt1>, <opt2>), Size: <size>". Unselected features are skipped
// silently. An empty selection yields "No item selected"; a selection whose
// category no longer exists yields "Unknown category".
func Describe(sel models.Selection, cat CatalogReader) string {
	if sel.CategoryID == "" {
		return "No item selected"
	}
	c, ok := cat.Category(sel.CategoryID)
	if !ok {
		return "Unknown category"
	}

	desc := c.Name
	var labels []string
	for _, f := range c.Features {
		optionID, selected := sel.FeatureSelections[f.ID]
		if !selected {
			continue
		}
		if o, ok := f.FindOption(optionID); ok {
			labels = append(labels, o.Label)
		}
	}
	if len(labels) > 0 {
		desc += " (" + strings.Join(labels, ", ") + ")"
	}
	if sel.SizeID != "" {
		if sz, ok := c.FindSize(sel.SizeID); ok {
			desc += ", Size: " + sz.Label
		}
	}
	return desc
}

// ResolveImage picks the most specific image for a selection. Precedence is
// category < size < first selected feature whose chosen option carries an
// image; iteration over features stops at that first hit, later feature
// selections never override it. Returns false only when the category itself
// cannot be resolved.
func ResolveImage(sel models.Selection, cat CatalogReader) (models.Image, bool) {
	c, ok := cat.Category(sel.CategoryID)
	if !ok {
		return models.Image{}, false
	}
	img := models.Image{URL: c.ImageURL, Hint: c.ImageHint}

	if sel.SizeID != "" {
		if sz, ok := c.FindSize(sel.SizeID); ok && sz.ImageURL != "" {
			img = models.Image{URL: sz.ImageURL, Hint: sz.ImageHint}
		}
	}

	for _, f := range c.Features {
		optionID, selected := sel.FeatureSelections[f.ID]
		if !selected {
			continue
		}
		o, ok := f.FindOption(optionID)
		if !ok || o.ImageURL == "" {
			continue
		}
		img = models.Image{URL: o.ImageURL, Hint: o.ImageHint}
		break
	}
	return img, true
}
