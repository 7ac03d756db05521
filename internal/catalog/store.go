package catalog

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mobelio/estimator_api/internal/models"
)

// IDFunc mints a unique identifier for a new entity. The prefix names the
// entity kind (cat, feat, opt, size). Ids must be unique within the store and
// are never reused after deletion.
type IDFunc func(prefix string) string

// DefaultID returns "<prefix>-<uuid>".
func DefaultID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Store holds the catalog (categories with nested features, options and sizes)
// and the price table in memory, guarded by a single lock so every CRUD call
// and its cascade into the price table runs atomically even with concurrent
// admin requests. One Store instance lives per process; it is seeded at
// construction and has no persistence of its own.
type Store struct {
	mu         sync.RWMutex
	categories []models.Category
	entries    []models.PriceEntry
	revision   uint64
	newID      IDFunc
}

// NewStore builds a store from seed data. The input is deep-copied so callers
// cannot alias internal state. A nil IDFunc falls back to uuid-based ids.
func NewStore(categories []models.Category, entries []models.PriceEntry, newID IDFunc) *Store {
	if newID == nil {
		newID = DefaultID
	}
	s := &Store{newID: newID}
	for _, c := range categories {
		s.categories = append(s.categories, cloneCategory(c))
	}
	for _, e := range entries {
		s.entries = append(s.entries, cloneEntry(e))
	}
	return s
}

// Revision returns a counter that increases on every mutation. Callers use it
// to key caches of derived data (the combination grid).
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Categories returns a deep copy of all categories in stored order.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, cloneCategory(c))
	}
	return out
}

// Category returns a deep copy of the category with the given id.
func (s *Store) Category(id string) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.categoryIndex(id); i >= 0 {
		return cloneCategory(s.categories[i]), true
	}
	return models.Category{}, false
}

// AddCategory creates a new category with a fresh id and empty feature/size
// lists. Name and image fields are taken from data as-is; create-time defaults
// are the service layer's concern.
func (s *Store) AddCategory(data models.Category) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.Category{
		ID:        s.newID("cat"),
		Name:      data.Name,
		Icon:      data.Icon,
		ImageURL:  data.ImageURL,
		ImageHint: data.ImageHint,
		Features:  []models.Feature{},
		Sizes:     []models.Size{},
	}
	s.categories = append(s.categories, cloneCategory(c))
	s.revision++
	return c
}

// UpdateCategory replaces the category with matching id wholesale.
func (s *Store) UpdateCategory(c models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.categoryIndex(c.ID)
	if i < 0 {
		return models.Category{}, ErrCategoryNotFound
	}
	s.categories[i] = cloneCategory(c)
	s.revision++
	return cloneCategory(s.categories[i]), nil
}

// DeleteCategory removes the category and every price entry for it. Deleting
// an absent id is a no-op that reports false.
func (s *Store) DeleteCategory(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.categoryIndex(id)
	if i < 0 {
		return false
	}
	s.categories = append(s.categories[:i], s.categories[i+1:]...)
	s.dropEntries(func(e models.PriceEntry) bool { return e.CategoryID == id })
	s.revision++
	return true
}

// AddFeature appends a new feature (with no options yet) to a category.
func (s *Store) AddFeature(categoryID string, data models.Feature) (models.Feature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.categoryIndex(categoryID)
	if i < 0 {
		return models.Feature{}, ErrCategoryNotFound
	}
	f := models.Feature{ID: s.newID("feat"), Name: data.Name, Options: []models.Option{}}
	s.categories[i].Features = append(s.categories[i].Features, cloneFeature(f))
	s.revision++
	return f, nil
}

// UpdateFeature replaces the feature with matching id within the category.
func (s *Store) UpdateFeature(categoryID string, f models.Feature) (models.Feature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.categoryIndex(categoryID)
	if i < 0 {
		return models.Feature{}, ErrCategoryNotFound
	}
	for j := range s.categories[i].Features {
		if s.categories[i].Features[j].ID == f.ID {
			s.categories[i].Features[j] = cloneFeature(f)
			s.revision++
			return cloneFeature(s.categories[i].Features[j]), nil
		}
	}
	return models.Feature{}, ErrFeatureNotFound
}

// DeleteFeature removes a feature from its category. Cascade rule: every price
// entry for the category whose selections contain the deleted feature's key is
// dropped. By the exact-coverage invariant every entry for the category
// referenced the feature, so this is the whole cleanup.
func (s *Store) DeleteFeature(categoryID, featureID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.categoryIndex(categoryID)
	if i < 0 {
		return false
	}
	feats := s.categories[i].Features
	for j := range feats {
		if feats[j].ID == featureID {
			s.categories[i].Features = append(feats[:j], feats[j+1:]...)
			s.dropEntries(func(e models.PriceEntry) bool {
				if e.CategoryID != categoryID {
					return false
				}
				_, referenced := e.FeatureSelections[featureID]
				return referenced
			})
			s.revision++
			return true
		}
	}
	return false
}

// AddOption appends a new option to a feature.
func (s *Store) AddOption(categoryID, featureID string, data models.Option) (models.Option, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.featureRef(categoryID, featureID)
	if err != nil {
		return models.Option{}, err
	}
	o := models.Option{
		ID:        s.newID("opt"),
		Label:     data.Label,
		Icon:      data.Icon,
		ImageURL:  data.ImageURL,
		ImageHint: data.ImageHint,
	}
	f.Options = append(f.Options, o)
	s.revision++
	return o, nil
}

// UpdateOption replaces the option with matching id within the feature.
func (s *Store) UpdateOption(categoryID, featureID string, o models.Option) (models.Option, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.featureRef(categoryID, featureID)
	if err != nil {
		return models.Option{}, err
	}
	for j := range f.Options {
		if f.Options[j].ID == o.ID {
			f.Options[j] = o
			s.revision++
			return o, nil
		}
	}
	return models.Option{}, ErrOptionNotFound
}

// DeleteOption removes an option. Cascade rule: every price entry where that
// feature slot equals the deleted option id is dropped (exact-value match).
func (s *Store) DeleteOption(categoryID, featureID, optionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.featureRef(categoryID, featureID)
	if err != nil {
		return false
	}
	for j := range f.Options {
		if f.Options[j].ID == optionID {
			f.Options = append(f.Options[:j], f.Options[j+1:]...)
			s.dropEntries(func(e models.PriceEntry) bool {
				return e.CategoryID == categoryID && e.FeatureSelections[featureID] == optionID
			})
			s.revision++
			return true
		}
	}
	return false
}

// AddSize appends a new size to a category.
func (s *Store) AddSize(categoryID string, data models.Size) (models.Size, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.categoryIndex(categoryID)
	if i < 0 {
		return models.Size{}, ErrCategoryNotFound
	}
	sz := models.Size{
		ID:        s.newID("size"),
		Label:     data.Label,
		Icon:      data.Icon,
		ImageURL:  data.ImageURL,
		ImageHint: data.ImageHint,
	}
	s.categories[i].Sizes = append(s.categories[i].Sizes, sz)
	s.revision++
	return sz, nil
}

// UpdateSize replaces the size with matching id within the category.
func (s *Store) UpdateSize(categoryID string, sz models.Size) (models.Size, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.categoryIndex(categoryID)
	if i < 0 {
		return models.Size{}, ErrCategoryNotFound
	}
	for j := range s.categories[i].Sizes {
		if s.categories[i].Sizes[j].ID == sz.ID {
			s.categories[i].Sizes[j] = sz
			s.revision++
			return sz, nil
		}
	}
	return models.Size{}, ErrSizeNotFound
}

// DeleteSize removes a size. Cascade rule: every price entry for that size is
// dropped.
func (s *Store) DeleteSize(categoryID, sizeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.categoryIndex(categoryID)
	if i < 0 {
		return false
	}
	sizes := s.categories[i].Sizes
	for j := range sizes {
		if sizes[j].ID == sizeID {
			s.categories[i].Sizes = append(sizes[:j], sizes[j+1:]...)
			s.dropEntries(func(e models.PriceEntry) bool {
				return e.CategoryID == categoryID && e.SizeID == sizeID
			})
			s.revision++
			return true
		}
	}
	return false
}

// categoryIndex returns the index of a category or -1. Caller must hold the lock.
func (s *Store) categoryIndex(id string) int {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return i
		}
	}
	return -1
}

// featureRef returns a pointer into the stored feature list. Caller must hold
// the write lock and must not retain the pointer past it.
func (s *Store) featureRef(categoryID, featureID string) (*models.Feature, error) {
	i := s.categoryIndex(categoryID)
	if i < 0 {
		return nil, ErrCategoryNotFound
	}
	for j := range s.categories[i].Features {
		if s.categories[i].Features[j].ID == featureID {
			return &s.categories[i].Features[j], nil
		}
	}
	return nil, ErrFeatureNotFound
}

// dropEntries removes every price entry matching the predicate. Caller must
// hold the write lock.
func (s *Store) dropEntries(match func(models.PriceEntry) bool) {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if !match(e) {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}

func cloneCategory(c models.Category) models.Category {
	out := c
	out.Features = make([]models.Feature, 0, len(c.Features))
	for _, f := range c.Features {
		out.Features = append(out.Features, cloneFeature(f))
	}
	out.Sizes = append([]models.Size{}, c.Sizes...)
	return out
}

func cloneFeature(f models.Feature) models.Feature {
	out := f
	out.Options = append([]models.Option{}, f.Options...)
	return out
}

func cloneEntry(e models.PriceEntry) models.PriceEntry {
	out := e
	out.FeatureSelections = cloneSelections(e.FeatureSelections)
	return out
}

func cloneSelections(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
