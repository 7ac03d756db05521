package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mobelio/estimator_api/internal/catalog"
	"github.com/mobelio/estimator_api/internal/service"
)

func newTestRouter() (*gin.Engine, *catalog.Store) {
	gin.SetMode(gin.TestMode)
	store := catalog.NewStore(catalog.SeedCategories(), catalog.SeedPriceEntries(), nil)
	catalogSvc := service.NewCatalogService(store)
	estimateSvc := service.NewEstimateService(store)
	combinationSvc := service.NewCombinationService(store, nil)

	catalogH := NewCatalogHandler(catalogSvc)
	adminH := NewCatalogAdminHandler(catalogSvc)
	priceH := NewPriceHandler(store)
	comboH := NewCombinationHandler(combinationSvc)
	estimateH := NewEstimateHandler(estimateSvc)

	r := gin.New()
	r.GET("/v1/catalog", catalogH.GetCatalog)
	r.GET("/v1/catalog/categories/:id", catalogH.GetCategory)
	r.POST("/v1/estimate", estimateH.CreateEstimate)
	r.POST("/v1/admin/categories", adminH.CreateCategory)
	r.DELETE("/v1/admin/categories/:id", adminH.DeleteCategory)
	r.PUT("/v1/admin/prices", priceH.UpsertPrice)
	r.GET("/v1/admin/prices", priceH.ListPrices)
	r.GET("/v1/admin/combinations", comboH.GetCombinations)
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, envelope
}

func TestGetCatalog(t *testing.T) {
	r, _ := newTestRouter()
	w, envelope := doJSON(t, r, http.MethodGet, "/v1/catalog", nil)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := envelope["data"].(map[string]interface{})
	categories := data["categories"].([]interface{})
	if len(categories) != 3 {
		t.Errorf("expected 3 seeded categories, got %d", len(categories))
	}
}

func TestGetCategoryNotFoundEnvelope(t *testing.T) {
	r, _ := newTestRouter()
	w, envelope := doJSON(t, r, http.MethodGet, "/v1/catalog/categories/cat-gone", nil)
	if w.Code != 404 {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if envelope["success"] != false {
		t.Error("expected success=false")
	}
	errInfo := envelope["error"].(map[string]interface{})
	if errInfo["code"] != "CATEGORY_NOT_FOUND" {
		t.Errorf("expected CATEGORY_NOT_FOUND, got %v", errInfo["code"])
	}
}

func TestCreateEstimate(t *testing.T) {
	r, _ := newTestRouter()
	w, envelope := doJSON(t, r, http.MethodPost, "/v1/estimate", map[string]interface{}{
		"categoryId": "cat-sofas",
		"featureSelections": map[string]string{
			"feat-seats":      "opt-2-seater",
			"feat-upholstery": "opt-fabric",
		},
		"sizeId": "size-sofa-small",
	})
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := envelope["data"].(map[string]interface{})
	want := "Sofas (2-Seater, Fabric), Size: Small (50-69 inches)"
	if data["description"] != want {
		t.Errorf("expected %q, got %v", want, data["description"])
	}
	pr := data["priceRange"].(map[string]interface{})
	if pr["min"].(float64) != 450 || pr["max"].(float64) != 700 {
		t.Errorf("unexpected price range %v", pr)
	}
}

func TestAdminCategoryLifecycle(t *testing.T) {
	r, store := newTestRouter()

	w, envelope := doJSON(t, r, http.MethodPost, "/v1/admin/categories", map[string]string{"name": "Wardrobes"})
	if w.Code != 201 {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := envelope["data"].(map[string]interface{})
	id := created["id"].(string)
	if _, ok := store.Category(id); !ok {
		t.Fatal("created category not in store")
	}

	w, envelope = doJSON(t, r, http.MethodDelete, "/v1/admin/categories/"+id, nil)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if envelope["data"].(map[string]interface{})["deleted"] != true {
		t.Error("expected deleted=true")
	}

	// Deleting again is a no-op reported as deleted=false.
	_, envelope = doJSON(t, r, http.MethodDelete, "/v1/admin/categories/"+id, nil)
	if envelope["data"].(map[string]interface{})["deleted"] != false {
		t.Error("expected deleted=false on second delete")
	}
}

func TestUpsertPriceValidation(t *testing.T) {
	r, store := newTestRouter()
	before := len(store.PriceEntries(""))

	w, envelope := doJSON(t, r, http.MethodPut, "/v1/admin/prices", map[string]interface{}{
		"categoryId":        "cat-dining-tables",
		"featureSelections": map[string]string{},
		"sizeId":            "size-table-4",
		"priceRange":        map[string]int{"min": 6, "max": 5},
	})
	if w.Code != 400 {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	errInfo := envelope["error"].(map[string]interface{})
	if errInfo["code"] != "INVALID_PRICE_RANGE" {
		t.Errorf("expected INVALID_PRICE_RANGE, got %v", errInfo["code"])
	}
	if len(store.PriceEntries("")) != before {
		t.Error("rejected upsert mutated the table")
	}
}

func TestGetCombinationsPagination(t *testing.T) {
	r, _ := newTestRouter()
	w, envelope := doJSON(t, r, http.MethodGet, "/v1/admin/combinations?page=1&limit=5", nil)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := envelope["data"].(map[string]interface{})
	rows := data["combinations"].([]interface{})
	if len(rows) != 5 {
		t.Errorf("expected 5 rows, got %d", len(rows))
	}
	meta := envelope["meta"].(map[string]interface{})
	pagination := meta["pagination"].(map[string]interface{})
	// Seed grid: sofas 2x2x2=8, beds 2x2=4, tables 1x2=2.
	if pagination["totalItems"].(float64) != 14 {
		t.Errorf("expected 14 total combinations, got %v", pagination["totalItems"])
	}
}
