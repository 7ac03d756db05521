package models

// Category represents a top-level furniture type (e.g. Sofas) grouping
// customizable features and size choices.
// Fields are tagged for JSON serialization toward the frontend.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	ImageURL  string    `json:"imageUrl"`
	ImageHint string    `json:"imageHint"`
	Features  []Feature `json:"features"`
	Sizes     []Size    `json:"sizes"`
}

// Feature is a customizable attribute of a category (e.g. Upholstery Material),
// owned by exactly one category.
type Feature struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}

// Option is one concrete choice for a feature. Image fields are optional;
// when set they participate in image resolution.
type Option struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Icon      string `json:"icon,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	ImageHint string `json:"imageHint,omitempty"`
}

// Size is a category-scoped size/dimension choice.
type Size struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Icon      string `json:"icon,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	ImageHint string `json:"imageHint,omitempty"`
}

// FindFeature returns the feature with the given id, if any.
func (c Category) FindFeature(id string) (Feature, bool) {
	for _, f := range c.Features {
		if f.ID == id {
			return f, true
		}
	}
	return Feature{}, false
}

// FindSize returns the size with the given id, if any.
func (c Category) FindSize(id string) (Size, bool) {
	for _, s := range c.Sizes {
		if s.ID == id {
			return s, true
		}
	}
	return Size{}, false
}

// FindOption returns the option with the given id, if any.
func (f Feature) FindOption(id string) (Option, bool) {
	for _, o := range f.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}
