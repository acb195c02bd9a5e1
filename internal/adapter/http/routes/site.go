package routes

import (
	"lovedktech/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices = "/services"
	PathContent  = "/content"
	PathContact  = "/contact"
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
	PathAdmin    = "/admin"
)

// addSiteRoutes mounts everything a visitor can reach without signing in.
func addSiteRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, contentHandler *handlers.ContentHandler, checkoutHandler *handlers.CheckoutHandler) {
	rg.GET(PathServices, catalogHandler.ListServices)
	rg.GET(PathContent, contentHandler.GetContent)
	rg.POST(PathContact, contentHandler.Contact)

	// The gateway redirects back here; the visitor may no longer carry a
	// session at that point, so the return leg stays public.
	rg.GET(PathCheckout+"/return", checkoutHandler.Return)
}
