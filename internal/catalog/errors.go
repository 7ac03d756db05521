package catalog

import "errors"

// Store errors. Mutators addressing an absent id return the matching NotFound
// error; deletes report a boolean instead and never fail on absent ids.
var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrFeatureNotFound   = errors.New("feature not found")
	ErrOptionNotFound    = errors.New("option not found")
	ErrSizeNotFound      = errors.New("size not found")
	ErrInvalidPriceRange = errors.New("price range must satisfy 0 <= min <= max")
)
