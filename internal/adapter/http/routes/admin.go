package routes

import (
	"lovedktech/internal/adapter/http/handlers"
	"lovedktech/internal/adapter/http/middleware"
	"lovedktech/internal/config"

	"github.com/gin-gonic/gin"
)

// addAdminRoutes mounts the price console and fulfillment controls behind
// the auth + admin-email gate.
func addAdminRoutes(rg *gin.RouterGroup, cfg *config.Config, adminHandler *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin,
		middleware.RequireAuth(cfg.JWTSecret, cfg.SignInURL),
		middleware.RequireAdmin(cfg.AdminEmail),
	)
	{
		admin.GET("/prices", adminHandler.ListPrices)
		admin.PUT("/prices", adminHandler.SaveAll)
		admin.PUT("/prices/:id", adminHandler.SavePrice)
		admin.PATCH("/orders/:id/status", adminHandler.AdvanceOrderStatus)
	}
}
