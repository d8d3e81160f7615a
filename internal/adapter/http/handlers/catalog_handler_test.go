package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	response "webquote/internal/adapter/http/dto/response"
	"webquote/internal/domain/catalog"
	"webquote/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func setupCatalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	c, err := catalog.New(
		[]entities.Package{
			{ID: "site", Name: "Website", BasePrice: 1000, Category: entities.PackageCategoryWebsite},
			{ID: "shop", Name: "Webshop", BasePrice: 2500, Category: entities.PackageCategoryWebshop},
		},
		[]entities.Option{
			{ID: "seo", Name: "SEO", Price: 300, Category: entities.OptionCategoryGrowth},
			{ID: "shop-import", Name: "Product import", Price: 400, Category: entities.OptionCategoryScope,
				AppliesTo: []entities.PackageCategory{entities.PackageCategoryWebshop}},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler(c)
	r := gin.New()
	r.GET("/v1/catalog", h.GetCatalog)
	r.GET("/v1/catalog/packages/:package_id/options", h.GetEligibleOptions)
	return r
}

func TestGetCatalog(t *testing.T) {
	r := setupCatalogRouter(t)

	t.Run("full catalog", func(t *testing.T) {
		w := do(r, http.MethodGet, "/v1/catalog", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.CatalogResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(body.Packages) != 2 {
			t.Fatalf("expected 2 packages, got %d", len(body.Packages))
		}
		if len(body.Options[entities.OptionCategoryGrowth]) != 1 {
			t.Fatalf("expected 1 growth option, got %+v", body.Options)
		}
	})

	t.Run("filtered by category", func(t *testing.T) {
		w := do(r, http.MethodGet, "/v1/catalog?category=webshop", "")
		var body response.CatalogResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(body.Packages) != 1 || body.Packages[0].ID != "shop" {
			t.Fatalf("unexpected packages: %+v", body.Packages)
		}
	})
}

func TestGetEligibleOptions(t *testing.T) {
	r := setupCatalogRouter(t)

	t.Run("website excludes webshop-only options", func(t *testing.T) {
		w := do(r, http.MethodGet, "/v1/catalog/packages/site/options", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.EligibleOptionsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(body.Options) != 1 || body.Options[0].ID != "seo" {
			t.Fatalf("unexpected options: %+v", body.Options)
		}
	})

	t.Run("unknown package", func(t *testing.T) {
		w := do(r, http.MethodGet, "/v1/catalog/packages/missing/options", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
