package routes

import (
	"lovedktech/internal/adapter/http/handlers"
	"lovedktech/internal/adapter/http/middleware"
	"lovedktech/internal/config"

	"github.com/gin-gonic/gin"
)

// addAccountRoutes mounts the signed-in client surface: checkout and the
// order dashboard.
func addAccountRoutes(rg *gin.RouterGroup, cfg *config.Config, checkoutHandler *handlers.CheckoutHandler, ordersHandler *handlers.OrdersHandler) {
	authed := rg.Group("", middleware.RequireAuth(cfg.JWTSecret, cfg.SignInURL))
	{
		authed.POST(PathCheckout, checkoutHandler.Checkout)
		authed.GET(PathOrders, ordersHandler.List)
		authed.GET(PathOrders+"/:id", ordersHandler.Get)
	}
}
