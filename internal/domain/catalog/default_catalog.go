package catalog

import (
	"log"

	"webquote/internal/domain/entities"
)

// Unit prices for the two quantity-linked options.
const (
	ExtraPageUnitPrice   = 125
	ContentPageUnitPrice = 95
)

var defaultPackages = []entities.Package{
	{ID: "website-start", Name: "Website Start", BasePrice: 700, Category: entities.PackageCategoryWebsite},
	{ID: "website-plus", Name: "Website Plus", BasePrice: 1450, Category: entities.PackageCategoryWebsite},
	{ID: "webshop-essential", Name: "Webshop Essential", BasePrice: 2400, Category: entities.PackageCategoryWebshop},
	{ID: "webshop-pro", Name: "Webshop Pro", BasePrice: 3900, Category: entities.PackageCategoryWebshop},
	{ID: "webapp-mvp", Name: "Web App MVP", BasePrice: 4800, Category: entities.PackageCategoryWebapp},
	{ID: "webapp-custom", Name: "Web App Custom", BasePrice: 8500, Category: entities.PackageCategoryWebapp},
}

var anyPackage = []entities.PackageCategory(nil)

var defaultOptions = []entities.Option{
	// Scope
	{ID: entities.OptionIDExtraPages, Name: "Extra page", Price: ExtraPageUnitPrice, Category: entities.OptionCategoryScope,
		AppliesTo: []entities.PackageCategory{entities.PackageCategoryWebsite, entities.PackageCategoryWebshop}},
	{ID: entities.OptionIDContentPages, Name: "Content page (copywriting)", Price: ContentPageUnitPrice, Category: entities.OptionCategoryScope,
		AppliesTo: []entities.PackageCategory{entities.PackageCategoryWebsite, entities.PackageCategoryWebshop}},
	{ID: "logo-design", Name: "Logo & brand kit", Price: 400, Category: entities.OptionCategoryScope, AppliesTo: anyPackage},
	{ID: "copywriting-home", Name: "Homepage copywriting", Price: 275, Category: entities.OptionCategoryScope, AppliesTo: anyPackage},
	{ID: "photo-shoot", Name: "On-site photo shoot", Price: 0, Negotiable: true, Category: entities.OptionCategoryScope, AppliesTo: anyPackage},

	// Complexity
	{ID: "multilingual", Name: "Multilingual setup", Price: 550, Category: entities.OptionCategoryComplexity, AppliesTo: anyPackage},
	{ID: "payment-integration", Name: "Payment provider integration", Price: 450, Category: entities.OptionCategoryComplexity,
		AppliesTo: []entities.PackageCategory{entities.PackageCategoryWebshop, entities.PackageCategoryWebapp}},
	{ID: "product-import", Name: "Bulk product import", Price: 350, Category: entities.OptionCategoryComplexity,
		AppliesTo: []entities.PackageCategory{entities.PackageCategoryWebshop}},
	{ID: "custom-integration", Name: "Custom API integration", Price: 0, Negotiable: true, Category: entities.OptionCategoryComplexity,
		AppliesTo: []entities.PackageCategory{entities.PackageCategoryWebshop, entities.PackageCategoryWebapp}},
	{ID: "user-accounts", Name: "User accounts & roles", Price: 900, Category: entities.OptionCategoryComplexity,
		AppliesTo: []entities.PackageCategory{entities.PackageCategoryWebapp}},

	// Growth
	{ID: "seo-starter", Name: "SEO starter", Price: 300, Category: entities.OptionCategoryGrowth, AppliesTo: anyPackage},
	{ID: "analytics-setup", Name: "Analytics & conversion setup", Price: 225, Category: entities.OptionCategoryGrowth, AppliesTo: anyPackage},
	{ID: "newsletter", Name: "Newsletter integration", Price: 175, Category: entities.OptionCategoryGrowth, AppliesTo: anyPackage},
	{ID: "ad-campaign", Name: "Launch ad campaign", Price: 0, Negotiable: true, Category: entities.OptionCategoryGrowth, AppliesTo: anyPackage},

	// Maintenance (recurring, monthly)
	{ID: "maintenance-basic", Name: "Maintenance Basic", Price: 45, IsRecurring: true, Category: entities.OptionCategoryMaintenance, AppliesTo: anyPackage},
	{ID: "maintenance-standard", Name: "Maintenance Standard", Price: 95, IsRecurring: true, Category: entities.OptionCategoryMaintenance, AppliesTo: anyPackage},
	{ID: "maintenance-premium", Name: "Maintenance Premium", Price: 175, IsRecurring: true, Category: entities.OptionCategoryMaintenance, AppliesTo: anyPackage},
}

// Default returns the built-in business catalog.
func Default() *Catalog {
	c, err := New(defaultPackages, defaultOptions)
	if err != nil {
		// The built-in data is fixed; a duplicate id is a programming error.
		log.Panicf("[catalog] invalid built-in catalog: %v", err)
	}
	return c
}
