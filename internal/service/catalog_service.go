package service

import (
	"strings"

	"github.com/mobelio/estimator_api/internal/catalog"
	"github.com/mobelio/estimator_api/internal/models"
)

// placeholderImage is the default image applied to categories created without one.
const placeholderImage = "https://placehold.co/600x400.png"

// CatalogService handles admin catalog CRUD on top of the store, applying
// create-time defaults. Required-field validation (non-empty name/label) is
// handled by request binding; the service does not re-validate it.
type CatalogService struct {
	store *catalog.Store
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(store *catalog.Store) *CatalogService {
	return &CatalogService{store: store}
}

// CreateCategoryRequest represents the request to create a category.
type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	Icon      string `json:"icon"`
	ImageURL  string `json:"imageUrl"`
	ImageHint string `json:"imageHint"`
}

// CreateFeatureRequest represents the request to add a feature to a category.
type CreateFeatureRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateOptionRequest represents the request to add an option to a feature.
type CreateOptionRequest struct {
	Label     string `json:"label" binding:"required"`
	Icon      string `json:"icon"`
	ImageURL  string `json:"imageUrl"`
	ImageHint string `json:"imageHint"`
}

// CreateSizeRequest represents the request to add a size to a category.
type CreateSizeRequest struct {
	Label     string `json:"label" binding:"required"`
	Icon      string `json:"icon"`
	ImageURL  string `json:"imageUrl"`
	ImageHint string `json:"imageHint"`
}

// Categories returns the full catalog.
func (s *CatalogService) Categories() []models.Category {
	return s.store.Categories()
}

// Category returns one category by id.
func (s *CatalogService) Category(id string) (models.Category, error) {
	c, ok := s.store.Category(id)
	if !ok {
		return models.Category{}, catalog.ErrCategoryNotFound
	}
	return c, nil
}

// CreateCategory creates a category, filling in a placeholder image and a
// derived image hint when the request leaves them blank.
func (s *CatalogService) CreateCategory(req *CreateCategoryRequest) models.Category {
	data := models.Category{
		Name:      req.Name,
		Icon:      req.Icon,
		ImageURL:  req.ImageURL,
		ImageHint: req.ImageHint,
	}
	if data.ImageURL == "" {
		data.ImageURL = placeholderImage
	}
	if data.ImageHint == "" {
		data.ImageHint = deriveImageHint(req.Name)
	}
	return s.store.AddCategory(data)
}

// UpdateCategory replaces a category wholesale. The path id wins over any id
// in the body.
func (s *CatalogService) UpdateCategory(id string, c models.Category) (models.Category, error) {
	c.ID = id
	return s.store.UpdateCategory(c)
}

// DeleteCategory removes a category and all of its price entries.
func (s *CatalogService) DeleteCategory(id string) bool {
	return s.store.DeleteCategory(id)
}

// CreateFeature appends a feature to a category.
func (s *CatalogService) CreateFeature(categoryID string, req *CreateFeatureRequest) (models.Feature, error) {
	return s.store.AddFeature(categoryID, models.Feature{Name: req.Name})
}

// UpdateFeature replaces a feature within a category.
func (s *CatalogService) UpdateFeature(categoryID, featureID string, f models.Feature) (models.Feature, error) {
	f.ID = featureID
	return s.store.UpdateFeature(categoryID, f)
}

// DeleteFeature removes a feature, cascading into the price table.
func (s *CatalogService) DeleteFeature(categoryID, featureID string) bool {
	return s.store.DeleteFeature(categoryID, featureID)
}

// CreateOption appends an option to a feature. Option images stay empty when
// not provided — a blank option image is what keeps image resolution falling
// through to the size or category image — but a provided image with no hint
// gets a derived one.
func (s *CatalogService) CreateOption(categoryID, featureID string, req *CreateOptionRequest) (models.Option, error) {
	data := models.Option{
		Label:     req.Label,
		Icon:      req.Icon,
		ImageURL:  req.ImageURL,
		ImageHint: req.ImageHint,
	}
	if data.ImageURL != "" && data.ImageHint == "" {
		data.ImageHint = deriveImageHint(req.Label)
	}
	return s.store.AddOption(categoryID, featureID, data)
}

// UpdateOption replaces an option within a feature.
func (s *CatalogService) UpdateOption(categoryID, featureID, optionID string, o models.Option) (models.Option, error) {
	o.ID = optionID
	return s.store.UpdateOption(categoryID, featureID, o)
}

// DeleteOption removes an option, cascading into the price table.
func (s *CatalogService) DeleteOption(categoryID, featureID, optionID string) bool {
	return s.store.DeleteOption(categoryID, featureID, optionID)
}

// CreateSize appends a size to a category. Same image-hint rule as options.
func (s *CatalogService) CreateSize(categoryID string, req *CreateSizeRequest) (models.Size, error) {
	data := models.Size{
		Label:     req.Label,
		Icon:      req.Icon,
		ImageURL:  req.ImageURL,
		ImageHint: req.ImageHint,
	}
	if data.ImageURL != "" && data.ImageHint == "" {
		data.ImageHint = deriveImageHint(req.Label)
	}
	return s.store.AddSize(categoryID, data)
}

// UpdateSize replaces a size within a category.
func (s *CatalogService) UpdateSize(categoryID, sizeID string, sz models.Size) (models.Size, error) {
	sz.ID = sizeID
	return s.store.UpdateSize(categoryID, sz)
}

// DeleteSize removes a size, cascading into the price table.
func (s *CatalogService) DeleteSize(categoryID, sizeID string) bool {
	return s.store.DeleteSize(categoryID, sizeID)
}

// deriveImageHint builds a short search hint from a label: lower-cased, first
// two words.
func deriveImageHint(label string) string {
	words := strings.Fields(strings.ToLower(label))
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, " ")
}
