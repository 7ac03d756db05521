package models

import "time"

// Image is an opaque image reference (URL or data URI) plus a search hint.
// The API never fetches or validates image bytes, it only threads them through.
type Image struct {
	URL  string `json:"url"`
	Hint string `json:"hint"`
}

// EstimationRecord is an immutable snapshot of a completed estimation. The
// frontend owns its persistence (history/favorites); the API only produces it.
type EstimationRecord struct {
	ID          string      `json:"id"`
	Selection   Selection   `json:"selection"`
	Description string      `json:"description"`
	PriceRange  *PriceRange `json:"priceRange,omitempty"`
	Image       *Image      `json:"image,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
	Name        string      `json:"name,omitempty"`
}
