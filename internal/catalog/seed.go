package catalog

import "github.com/mobelio/estimator_api/internal/models"

// SeedCategories returns the demo catalog loaded at process start. Ids are
// fixed so a frontend pointed at a fresh process keeps working across restarts.
func SeedCategories() []models.Category {
	return []models.Category{
		{
			ID:        "cat-sofas",
			Name:      "Sofas",
			Icon:      "Sofa",
			ImageURL:  "https://placehold.co/600x400.png",
			ImageHint: "modern sofa",
			Features: []models.Feature{
				{
					ID:   "feat-seats",
					Name: "Number of Seats",
					Options: []models.Option{
						{ID: "opt-2-seater", Label: "2-Seater", Icon: "Armchair"},
						{ID: "opt-3-seater", Label: "3-Seater", Icon: "Sofa"},
					},
				},
				{
					ID:   "feat-upholstery",
					Name: "Upholstery Material",
					Options: []models.Option{
						{ID: "opt-fabric", Label: "Fabric", ImageURL: "https://placehold.co/600x400.png", ImageHint: "fabric texture"},
						{ID: "opt-leather", Label: "Leather", ImageURL: "https://placehold.co/600x400.png", ImageHint: "leather texture"},
					},
				},
			},
			Sizes: []models.Size{
				{ID: "size-sofa-small", Label: "Small (50-69 inches)"},
				{ID: "size-sofa-large", Label: "Large (70-90 inches)"},
			},
		},
		{
			ID:        "cat-beds",
			Name:      "Beds",
			Icon:      "Bed",
			ImageURL:  "https://placehold.co/600x400.png",
			ImageHint: "cozy bed",
			Features: []models.Feature{
				{
					ID:   "feat-frame",
					Name: "Frame Material",
					Options: []models.Option{
						{ID: "opt-wood", Label: "Wood"},
						{ID: "opt-metal", Label: "Metal"},
					},
				},
			},
			Sizes: []models.Size{
				{ID: "size-bed-queen", Label: "Queen", ImageURL: "https://placehold.co/600x400.png", ImageHint: "queen bed"},
				{ID: "size-bed-king", Label: "King", ImageURL: "https://placehold.co/600x400.png", ImageHint: "king bed"},
			},
		},
		{
			// No features: the estimation flow skips straight to size.
			ID:        "cat-dining-tables",
			Name:      "Dining Tables",
			Icon:      "UtensilsCrossed",
			ImageURL:  "https://placehold.co/600x400.png",
			ImageHint: "dining table",
			Features:  []models.Feature{},
			Sizes: []models.Size{
				{ID: "size-table-4", Label: "4-Seater"},
				{ID: "size-table-6", Label: "6-Seater"},
			},
		},
	}
}

// SeedPriceEntries returns partial price coverage so the admin grid shows both
// priced and unpriced rows out of the box.
func SeedPriceEntries() []models.PriceEntry {
	return []models.PriceEntry{
		{
			CategoryID:        "cat-sofas",
			FeatureSelections: map[string]string{"feat-seats": "opt-2-seater", "feat-upholstery": "opt-fabric"},
			SizeID:            "size-sofa-small",
			PriceRange:        models.PriceRange{Min: 450, Max: 700},
		},
		{
			CategoryID:        "cat-sofas",
			FeatureSelections: map[string]string{"feat-seats": "opt-3-seater", "feat-upholstery": "opt-leather"},
			SizeID:            "size-sofa-large",
			PriceRange:        models.PriceRange{Min: 1200, Max: 1800},
		},
		{
			CategoryID:        "cat-beds",
			FeatureSelections: map[string]string{"feat-frame": "opt-wood"},
			SizeID:            "size-bed-queen",
			PriceRange:        models.PriceRange{Min: 800, Max: 1100},
		},
		{
			CategoryID:        "cat-dining-tables",
			FeatureSelections: map[string]string{},
			SizeID:            "size-table-4",
			PriceRange:        models.PriceRange{Min: 350, Max: 500},
		},
	}
}
