package handlers

import (
	"errors"
	"log"
	"net/http"

	"lovedktech/internal/adapter/http/dto/request"
	"lovedktech/internal/adapter/http/dto/response"
	"lovedktech/internal/adapter/http/middleware"
	"lovedktech/internal/domain/entities"
	"lovedktech/internal/usecase"
	"lovedktech/pkg"

	"github.com/gin-gonic/gin"
)

// AdminHandler is the price console plus order fulfillment controls. Every
// route behind it is gated by RequireAuth + RequireAdmin.

type AdminHandler struct {
	admin  usecase.IAdminUseCase
	orders usecase.IOrderUseCase
}

func NewAdminHandler(admin usecase.IAdminUseCase, orders usecase.IOrderUseCase) *AdminHandler {
	return &AdminHandler{admin: admin, orders: orders}
}

// ListPrices returns every service with live USD/XOF previews and the rate
// table the previews came from.
func (h *AdminHandler) ListPrices(c *gin.Context) {
	log.Printf("[admin][handler] list prices start")

	board, err := h.admin.ListPrices(c.Request.Context())
	if err != nil {
		log.Printf("[admin][handler] list prices failed err=%v", err)
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceBoard(board))
}

// SavePrice updates one service's base price.
func (h *AdminHandler) SavePrice(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[admin][handler] save price start service_id=%s", id)

	var req request.PriceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin][handler] save price invalid payload service_id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	svc, err := h.admin.SavePrice(c.Request.Context(), id, req.Price)
	if err != nil {
		log.Printf("[admin][handler] save price failed service_id=%s err=%v", id, err)
		middleware.RecordCheckoutOperation("price_save", false)
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	middleware.RecordCheckoutOperation("price_save", true)
	log.Printf("[admin][handler] save price success service_id=%s price=%v", id, svc.BasePrice)
	c.JSON(http.StatusOK, svc)
}

// SaveAll applies a batch of price edits. Each valid field commits
// independently; invalid fields are skipped and only the updated count is
// reported.
func (h *AdminHandler) SaveAll(c *gin.Context) {
	log.Printf("[admin][handler] bulk save start")

	var req request.BulkPriceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin][handler] bulk save invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.admin.SaveAll(c.Request.Context(), req.Prices)
	if err != nil {
		log.Printf("[admin][handler] bulk save failed err=%v", err)
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[admin][handler] bulk save success updated=%d", updated)
	c.JSON(http.StatusOK, response.BulkSaveResponse{Updated: updated})
}

// AdvanceOrderStatus moves an order one step forward on the tracker.
func (h *AdminHandler) AdvanceOrderStatus(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[admin][handler] advance status start order_id=%s", id)

	var req request.StatusAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin][handler] advance status invalid payload order_id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.orders.AdvanceStatus(c.Request.Context(), id, entities.OrderStatus(req.Status))
	if err != nil {
		log.Printf("[admin][handler] advance status failed order_id=%s next=%s err=%v", id, req.Status, err)
		middleware.RecordCheckoutOperation("status_advance", false)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	middleware.RecordCheckoutOperation("status_advance", true)
	log.Printf("[admin][handler] advance status success order_id=%s status=%s", id, order.Status)
	c.JSON(http.StatusOK, gin.H{"id": order.ID, "status": string(order.Status)})
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidPrice), errors.Is(err, usecase.ErrInvalidPriceInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
