package service

import (
	"testing"

	"github.com/mobelio/estimator_api/internal/catalog"
	"github.com/mobelio/estimator_api/internal/models"
)

func newTestCatalogService() (*CatalogService, *catalog.Store) {
	store := catalog.NewStore(catalog.SeedCategories(), catalog.SeedPriceEntries(), nil)
	return NewCatalogService(store), store
}

func TestCreateCategoryDefaults(t *testing.T) {
	svc, _ := newTestCatalogService()

	c := svc.CreateCategory(&CreateCategoryRequest{Name: "Office Chairs"})
	if c.ImageURL != placeholderImage {
		t.Errorf("expected placeholder image, got %q", c.ImageURL)
	}
	if c.ImageHint != "office chairs" {
		t.Errorf("expected derived hint, got %q", c.ImageHint)
	}

	// Provided fields win over defaults.
	c = svc.CreateCategory(&CreateCategoryRequest{
		Name:      "Bookshelves",
		ImageURL:  "shelf.png",
		ImageHint: "tall shelf",
	})
	if c.ImageURL != "shelf.png" || c.ImageHint != "tall shelf" {
		t.Errorf("request fields overridden: %+v", c)
	}
}

func TestDeriveImageHintFirstTwoWords(t *testing.T) {
	if got := deriveImageHint("Solid Oak Dining Table"); got != "solid oak" {
		t.Errorf("expected %q, got %q", "solid oak", got)
	}
	if got := deriveImageHint("Sofa"); got != "sofa" {
		t.Errorf("expected %q, got %q", "sofa", got)
	}
}

func TestCreateOptionHintOnlyWithImage(t *testing.T) {
	svc, _ := newTestCatalogService()

	// No image: hint stays empty so image resolution falls through.
	o, err := svc.CreateOption("cat-sofas", "feat-seats", &CreateOptionRequest{Label: "4-Seater"})
	if err != nil {
		t.Fatalf("CreateOption failed: %v", err)
	}
	if o.ImageURL != "" || o.ImageHint != "" {
		t.Errorf("expected no image defaults on option, got %+v", o)
	}

	// Image without hint: hint derived from the label.
	o, err = svc.CreateOption("cat-sofas", "feat-seats", &CreateOptionRequest{
		Label:    "Corner Sectional Sofa",
		ImageURL: "sectional.png",
	})
	if err != nil {
		t.Fatalf("CreateOption failed: %v", err)
	}
	if o.ImageHint != "corner sectional" {
		t.Errorf("expected derived hint, got %q", o.ImageHint)
	}
}

func TestUpdateCategoryPathIDWins(t *testing.T) {
	svc, store := newTestCatalogService()

	body := models.Category{ID: "cat-other", Name: "Renamed Sofas"}
	got, err := svc.UpdateCategory("cat-sofas", body)
	if err != nil {
		t.Fatalf("UpdateCategory failed: %v", err)
	}
	if got.ID != "cat-sofas" {
		t.Errorf("body id leaked through, got %q", got.ID)
	}
	stored, _ := store.Category("cat-sofas")
	if stored.Name != "Renamed Sofas" {
		t.Errorf("update not applied, got %q", stored.Name)
	}
}

func TestCreateFeatureOnMissingCategory(t *testing.T) {
	svc, _ := newTestCatalogService()
	if _, err := svc.CreateFeature("cat-gone", &CreateFeatureRequest{Name: "Finish"}); err != catalog.ErrCategoryNotFound {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}
