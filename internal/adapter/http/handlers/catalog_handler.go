package handlers

import (
	"net/http"

	response "webquote/internal/adapter/http/dto/response"
	"webquote/internal/domain/catalog"
	"webquote/internal/domain/entities"
	"webquote/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only pricing catalog.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// GetCatalog lists packages (optionally filtered by ?category=) and all
// options grouped by category.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	category := entities.PackageCategory(c.Query("category"))
	c.JSON(http.StatusOK, response.FromCatalog(h.catalog, category))
}

// GetEligibleOptions lists the options selectable under one package.
func (h *CatalogHandler) GetEligibleOptions(c *gin.Context) {
	p, ok := h.catalog.GetPackage(c.Param("package_id"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.EligibleOptionsResponse{
		PackageID: p.ID,
		Options:   h.catalog.EligibleOptions(&p),
	})
}
