package catalog

import (
	"testing"

	"github.com/mobelio/estimator_api/internal/models"
)

func TestLookupExactMatch(t *testing.T) {
	s := newTestStore()

	e, ok := s.LookupPrice("cat-1", map[string]string{"f1": "f1o1", "f2": "f2o1"}, "s1")
	if !ok {
		t.Fatal("expected a match for the fully covered selection")
	}
	if e.PriceRange.Min != 450 || e.PriceRange.Max != 700 {
		t.Errorf("unexpected price %+v", e.PriceRange)
	}

	// Fewer selections than the stored entry never match.
	if _, ok := s.LookupPrice("cat-1", map[string]string{"f1": "f1o1"}, "s1"); ok {
		t.Error("partial selection must not match")
	}
	// Mismatched value never matches.
	if _, ok := s.LookupPrice("cat-1", map[string]string{"f1": "f1o2", "f2": "f2o1"}, "s1"); ok {
		t.Error("mismatched option must not match")
	}
	// Wrong size never matches.
	if _, ok := s.LookupPrice("cat-1", map[string]string{"f1": "f1o1", "f2": "f2o1"}, "s2"); ok {
		t.Error("wrong size must not match")
	}
	// Unknown category never matches.
	if _, ok := s.LookupPrice("cat-nope", nil, "s1"); ok {
		t.Error("unknown category must not match")
	}
}

func TestLookupZeroFeatureCategory(t *testing.T) {
	s := newTestStore()

	e, ok := s.LookupPrice("cat-2", map[string]string{}, "t1")
	if !ok {
		t.Fatal("expected match for zero-feature category")
	}
	if e.PriceRange.Min != 350 {
		t.Errorf("unexpected price %+v", e.PriceRange)
	}
	// A nil selection map behaves like an empty one.
	if _, ok := s.LookupPrice("cat-2", nil, "t1"); !ok {
		t.Error("nil selections should match empty-selection entry")
	}
}

func TestUpsertInsertsAndReplacesPriceOnly(t *testing.T) {
	s := newTestStore()
	sel := map[string]string{"f1": "f1o1", "f2": "f2o2"}

	if _, err := s.UpsertPrice(models.PriceEntry{
		CategoryID:        "cat-1",
		FeatureSelections: sel,
		SizeID:            "s1",
		PriceRange:        models.PriceRange{Min: 500, Max: 900},
	}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	before := len(s.PriceEntries("cat-1"))

	// Same key, new price: replaces, does not duplicate.
	if _, err := s.UpsertPrice(models.PriceEntry{
		CategoryID:        "cat-1",
		FeatureSelections: sel,
		SizeID:            "s1",
		PriceRange:        models.PriceRange{Min: 550, Max: 950},
	}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if after := len(s.PriceEntries("cat-1")); after != before {
		t.Errorf("expected %d entries, got %d", before, after)
	}
	e, ok := s.LookupPrice("cat-1", sel, "s1")
	if !ok || e.PriceRange.Min != 550 || e.PriceRange.Max != 950 {
		t.Errorf("expected second call's price, got %+v (ok=%v)", e.PriceRange, ok)
	}
}

func TestUpsertInvalidRange(t *testing.T) {
	s := newTestStore()
	before := len(s.PriceEntries(""))

	_, err := s.UpsertPrice(models.PriceEntry{
		CategoryID:        "cat-2",
		FeatureSelections: map[string]string{},
		SizeID:            "t1",
		PriceRange:        models.PriceRange{Min: 6, Max: 5},
	})
	if err != ErrInvalidPriceRange {
		t.Fatalf("expected ErrInvalidPriceRange, got %v", err)
	}
	_, err = s.UpsertPrice(models.PriceEntry{
		CategoryID:        "cat-2",
		FeatureSelections: map[string]string{},
		SizeID:            "t1",
		PriceRange:        models.PriceRange{Min: -1, Max: 5},
	})
	if err != ErrInvalidPriceRange {
		t.Fatalf("expected ErrInvalidPriceRange for negative bound, got %v", err)
	}
	if after := len(s.PriceEntries("")); after != before {
		t.Errorf("table mutated on rejected upsert: %d -> %d", before, after)
	}
	// The original price survives untouched.
	e, _ := s.LookupPrice("cat-2", nil, "t1")
	if e.PriceRange.Min != 350 || e.PriceRange.Max != 500 {
		t.Errorf("existing entry changed: %+v", e.PriceRange)
	}
}

func TestUpsertEqualBoundsAllowed(t *testing.T) {
	s := newTestStore()
	e, err := s.UpsertPrice(models.PriceEntry{
		CategoryID:        "cat-2",
		FeatureSelections: map[string]string{},
		SizeID:            "t1",
		PriceRange:        models.PriceRange{Min: 5, Max: 5},
	})
	if err != nil {
		t.Fatalf("equal bounds must be allowed: %v", err)
	}
	if e.PriceRange.Min != 5 || e.PriceRange.Max != 5 {
		t.Errorf("unexpected stored price %+v", e.PriceRange)
	}
}

func TestUpsertDropsStaleKeys(t *testing.T) {
	s := newTestStore()
	e, err := s.UpsertPrice(models.PriceEntry{
		CategoryID: "cat-1",
		FeatureSelections: map[string]string{
			"f1":      "f1o2",
			"f2":      "f2o3",
			"f-ghost": "opt-ghost", // not a feature of cat-1
		},
		SizeID:     "s2",
		PriceRange: models.PriceRange{Min: 100, Max: 200},
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if _, ok := e.FeatureSelections["f-ghost"]; ok {
		t.Error("stale key survived normalization")
	}
	if len(e.FeatureSelections) != 2 {
		t.Errorf("expected 2 keys after normalization, got %d", len(e.FeatureSelections))
	}
}

func TestUpsertValidatesReferences(t *testing.T) {
	s := newTestStore()
	if _, err := s.UpsertPrice(models.PriceEntry{
		CategoryID: "cat-1",
		SizeID:     "s-nope",
		PriceRange: models.PriceRange{Min: 1, Max: 2},
	}); err != ErrSizeNotFound {
		t.Errorf("expected ErrSizeNotFound, got %v", err)
	}
	if _, err := s.UpsertPrice(models.PriceEntry{
		CategoryID:        "cat-1",
		FeatureSelections: map[string]string{"f1": "opt-nope", "f2": "f2o1"},
		SizeID:            "s1",
		PriceRange:        models.PriceRange{Min: 1, Max: 2},
	}); err != ErrOptionNotFound {
		t.Errorf("expected ErrOptionNotFound, got %v", err)
	}
	if _, err := s.UpsertPrice(models.PriceEntry{
		CategoryID: "cat-nope",
		SizeID:     "s1",
		PriceRange: models.PriceRange{Min: 1, Max: 2},
	}); err != ErrCategoryNotFound {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestLookupDuplicateKeysFirstMatchWins(t *testing.T) {
	// Duplicate composite keys are a data-integrity bug; seed them directly.
	entries := []models.PriceEntry{
		{CategoryID: "cat-2", FeatureSelections: map[string]string{}, SizeID: "t1", PriceRange: models.PriceRange{Min: 10, Max: 20}},
		{CategoryID: "cat-2", FeatureSelections: map[string]string{}, SizeID: "t1", PriceRange: models.PriceRange{Min: 99, Max: 100}},
	}
	s := NewStore(testCategories(), entries, nil)
	e, ok := s.LookupPrice("cat-2", nil, "t1")
	if !ok {
		t.Fatal("expected a match")
	}
	if e.PriceRange.Min != 10 {
		t.Errorf("expected first entry in insertion order, got %+v", e.PriceRange)
	}
}
