package handlers

import (
	"errors"
	"log"
	"net/http"

	"lovedktech/internal/adapter/http/dto/request"
	"lovedktech/internal/adapter/http/dto/response"
	"lovedktech/internal/adapter/http/middleware"
	"lovedktech/internal/domain/currency"
	"lovedktech/internal/usecase"
	"lovedktech/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler runs the checkout flow and the hosted-payment return leg.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	rates   *currency.Table
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, rates *currency.Table) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, rates: rates}
}

// Checkout places an order for the selected service and returns the
// hosted-payment redirect URL plus the WhatsApp fallback link.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	caller := middleware.CallerIdentity(c)
	log.Printf("[checkout][handler] start owner=%s", caller.Email)

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[checkout][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Checkout(c.Request.Context(), usecase.CheckoutInput{
		ServiceID: req.ResolveServiceID(),
		Phone:     req.ResolvePhone(),
		Notes:     req.Notes,
		Email:     caller.Email,
		FullName:  caller.FullName,
	})
	if err != nil {
		log.Printf("[checkout][handler] failed owner=%s service_id=%s err=%v", caller.Email, req.ResolveServiceID(), err)
		middleware.RecordCheckoutOperation("checkout", false)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	middleware.RecordCheckoutOperation("checkout", true)
	log.Printf("[checkout][handler] success order_id=%s owner=%s", result.Order.ID, caller.Email)

	settled := h.rates.Convert(result.Order.BasePrice, currency.XOF)
	c.JSON(http.StatusOK, response.FromCheckout(result, settled))
}

// Return handles the gateway's cancel/return redirect. The order is never
// touched here: a cancelled marker just renders a cancellation notice, and
// success acknowledges receipt pending reconciliation.
func (h *CheckoutHandler) Return(c *gin.Context) {
	orderID := c.Query("order_id")
	marker := c.Query("status")
	log.Printf("[checkout][handler] return leg order_id=%s status=%s", orderID, marker)

	switch marker {
	case "cancelled":
		c.JSON(http.StatusOK, gin.H{
			"order_id":  orderID,
			"cancelled": true,
			"message":   "Payment cancelled. Your order was not charged; you can retry checkout at any time.",
		})
	case "success":
		c.JSON(http.StatusOK, gin.H{
			"order_id":  orderID,
			"cancelled": false,
			"message":   "Payment received. Your order will be confirmed shortly.",
		})
	default:
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCheckoutUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sign in required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNoServiceSelected):
		return pkg.NewDomainErrorSimple("NO_SERVICE_SELECTED", "Select a service from the catalog first", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPhoneRequired):
		return pkg.NewDomainErrorSimple("PHONE_REQUIRED", "Phone number is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_FAILED", "Payment provider is unavailable, please try again", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
