package routes

import (
	"webquote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOffers  = "/offers"
	PathCatalog = "/catalog"
)

func addOfferRoutes(rg *gin.RouterGroup, offerHandler *handlers.OfferHandler, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", catalogHandler.GetCatalog)
		catalog.GET("/packages/:package_id/options", catalogHandler.GetEligibleOptions)
	}

	offers := rg.Group(PathOffers)
	{
		offers.POST("", offerHandler.StartSession)
		offers.GET("/:session_id", offerHandler.GetSummary)
		offers.DELETE("/:session_id", offerHandler.EndSession)

		offers.PATCH("/:session_id/package", offerHandler.SetPackage)
		offers.PATCH("/:session_id/options", offerHandler.ToggleOption)
		offers.PATCH("/:session_id/options/price", offerHandler.SetCustomPrice)
		offers.PATCH("/:session_id/options/note", offerHandler.SetOptionNote)
		offers.PATCH("/:session_id/quantities", offerHandler.SetQuantities)
		offers.PATCH("/:session_id/maintenance", offerHandler.SetMaintenance)
		offers.PATCH("/:session_id/discount", offerHandler.SetDiscount)
		offers.PATCH("/:session_id/schedule", offerHandler.SetPaymentSchedule)
		offers.PATCH("/:session_id/details", offerHandler.SetDetails)

		offers.POST("/:session_id/line-items", offerHandler.AddLineItem)
		offers.DELETE("/:session_id/line-items/:item_id", offerHandler.RemoveLineItem)

		offers.POST("/:session_id/accept", offerHandler.AcceptOffer)
	}
}
