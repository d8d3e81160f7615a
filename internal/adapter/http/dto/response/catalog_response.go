package response

import (
	"webquote/internal/domain/catalog"
	"webquote/internal/domain/entities"
)

type CatalogResponse struct {
	Packages []entities.Package                            `json:"packages"`
	Options  map[entities.OptionCategory][]entities.Option `json:"options"`
}

func FromCatalog(c *catalog.Catalog, category entities.PackageCategory) CatalogResponse {
	return CatalogResponse{
		Packages: c.ListPackages(category),
		Options:  c.OptionsByCategory(),
	}
}

type EligibleOptionsResponse struct {
	PackageID string            `json:"package_id"`
	Options   []entities.Option `json:"options"`
}
