package entities

// PackageCategory classifies the base offerings sold by the studio.
type PackageCategory string

const (
	PackageCategoryWebsite PackageCategory = "website"
	PackageCategoryWebshop PackageCategory = "webshop"
	PackageCategoryWebapp  PackageCategory = "webapp"
)

// Package is a fixed-price base offering from the catalog.
//
// Packages are immutable once defined; an offer references at most one of them
// and the selection gates which options are eligible.
type Package struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	BasePrice float64         `json:"base_price"`
	Category  PackageCategory `json:"category"`
}
