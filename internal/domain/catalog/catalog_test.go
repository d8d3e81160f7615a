package catalog

import (
	"testing"

	"webquote/internal/domain/entities"
)

func fixtureCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(
		[]entities.Package{
			{ID: "site", Name: "Website", BasePrice: 700, Category: entities.PackageCategoryWebsite},
			{ID: "shop", Name: "Webshop", BasePrice: 2400, Category: entities.PackageCategoryWebshop},
		},
		[]entities.Option{
			{ID: "seo", Name: "SEO", Price: 300, Category: entities.OptionCategoryGrowth},
			{ID: "import", Name: "Import", Price: 350, Category: entities.OptionCategoryComplexity,
				AppliesTo: []entities.PackageCategory{entities.PackageCategoryWebshop}},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, err := New([]entities.Package{{ID: "p"}, {ID: "p"}}, nil)
	if err == nil {
		t.Fatalf("expected duplicate package id error")
	}

	_, err = New(nil, []entities.Option{{ID: "o"}, {ID: "o"}})
	if err == nil {
		t.Fatalf("expected duplicate option id error")
	}
}

func TestCatalog_Lookups(t *testing.T) {
	c := fixtureCatalog(t)

	if _, ok := c.GetPackage("site"); !ok {
		t.Fatalf("expected package found")
	}
	if _, ok := c.GetPackage("nope"); ok {
		t.Fatalf("expected package missing")
	}
	if _, ok := c.GetOption("seo"); !ok {
		t.Fatalf("expected option found")
	}
	if _, ok := c.GetOption("nope"); ok {
		t.Fatalf("expected option missing")
	}
}

func TestCatalog_ListPackages(t *testing.T) {
	c := fixtureCatalog(t)
	if got := len(c.ListPackages("")); got != 2 {
		t.Fatalf("expected 2 packages, got %d", got)
	}
	shops := c.ListPackages(entities.PackageCategoryWebshop)
	if len(shops) != 1 || shops[0].ID != "shop" {
		t.Fatalf("unexpected category filter result: %+v", shops)
	}
}

func TestCatalog_EligibleOptions(t *testing.T) {
	c := fixtureCatalog(t)

	site, _ := c.GetPackage("site")
	opts := c.EligibleOptions(&site)
	if len(opts) != 1 || opts[0].ID != "seo" {
		t.Fatalf("expected only seo eligible for website, got %+v", opts)
	}

	shop, _ := c.GetPackage("shop")
	if got := len(c.EligibleOptions(&shop)); got != 2 {
		t.Fatalf("expected both options eligible for webshop, got %d", got)
	}

	if c.EligibleOptions(nil) != nil {
		t.Fatalf("expected nil for nil package")
	}
}

func TestDefault(t *testing.T) {
	c := Default()

	if _, ok := c.GetOption(entities.OptionIDExtraPages); !ok {
		t.Fatalf("expected extra pages option in the default catalog")
	}
	opt, _ := c.GetOption(entities.OptionIDExtraPages)
	if opt.Price != ExtraPageUnitPrice {
		t.Fatalf("expected unit price %d, got %v", ExtraPageUnitPrice, opt.Price)
	}

	byCat := c.OptionsByCategory()
	if len(byCat[entities.OptionCategoryMaintenance]) != 3 {
		t.Fatalf("expected 3 maintenance tiers, got %d", len(byCat[entities.OptionCategoryMaintenance]))
	}
	for _, m := range byCat[entities.OptionCategoryMaintenance] {
		if !m.IsRecurring {
			t.Fatalf("expected maintenance option %s to be recurring", m.ID)
		}
	}
}
