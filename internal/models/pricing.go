package models

// PriceRange is an inclusive min/max price band in whole currency units.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// PriceEntry is a priced combination of category + full feature assignment + size.
// Its identity is the composite key (CategoryID, FeatureSelections, SizeID);
// there is no separate entry id.
type PriceEntry struct {
	CategoryID        string            `json:"categoryId"`
	FeatureSelections map[string]string `json:"featureSelections"`
	SizeID            string            `json:"sizeId"`
	PriceRange        PriceRange        `json:"priceRange"`
}

// Selection is a user's in-progress or completed choice of category, feature
// options and size. FeatureSelections maps feature id to the chosen option id.
type Selection struct {
	CategoryID        string            `json:"categoryId"`
	FeatureSelections map[string]string `json:"featureSelections"`
	SizeID            string            `json:"sizeId"`
}

// Combination is one row of the admin pricing grid: a syntactically valid
// (category, feature assignment, size) triple annotated with its price status.
type Combination struct {
	CategoryID         string            `json:"categoryId"`
	CategoryName       string            `json:"categoryName"`
	FeatureSelections  map[string]string `json:"featureSelections"`
	FeatureDescription string            `json:"featureDescription"`
	SizeID             string            `json:"sizeId"`
	SizeLabel          string            `json:"sizeLabel"`
	Description        string            `json:"description"`
	PriceRange         PriceRange        `json:"priceRange"`
	IsPriced           bool              `json:"isPriced"`
}
