package handlers

import (
	"errors"
	"log"
	"net/http"

	"lovedktech/internal/adapter/http/dto/response"
	"lovedktech/internal/adapter/http/middleware"
	"lovedktech/internal/domain/currency"
	"lovedktech/internal/usecase"
	"lovedktech/pkg"

	"github.com/gin-gonic/gin"
)

// OrdersHandler serves the client dashboard: the caller's orders with their
// fulfillment trackers.

type OrdersHandler struct {
	usecase usecase.IOrderUseCase
	rates   *currency.Table
}

func NewOrdersHandler(uc usecase.IOrderUseCase, rates *currency.Table) *OrdersHandler {
	return &OrdersHandler{usecase: uc, rates: rates}
}

// List returns the caller's orders, newest first.
func (h *OrdersHandler) List(c *gin.Context) {
	caller := middleware.CallerIdentity(c)
	code := displayCurrency(c)
	log.Printf("[orders][handler] list start owner=%s currency=%s", caller.Email, code)

	orders, err := h.usecase.ListForUser(c.Request.Context(), caller.Email)
	if err != nil {
		log.Printf("[orders][handler] list failed owner=%s err=%v", caller.Email, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[orders][handler] list success owner=%s count=%d", caller.Email, len(orders))
	c.JSON(http.StatusOK, gin.H{
		"currency": code,
		"orders":   response.FromOrders(orders, h.rates, code),
	})
}

// Get returns one order. Orders belonging to someone else read as not found
// so ids don't leak ownership.
func (h *OrdersHandler) Get(c *gin.Context) {
	caller := middleware.CallerIdentity(c)
	id := c.Param("id")
	code := displayCurrency(c)
	log.Printf("[orders][handler] get start order_id=%s owner=%s", id, caller.Email)

	order, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[orders][handler] get failed order_id=%s err=%v", id, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if order.OwnerEmail != caller.Email {
		log.Printf("[orders][handler] get denied order_id=%s owner=%s", id, caller.Email)
		appErr := pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order, h.rates, code))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOwnerEmailRequired):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sign in required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status can only move forward one stage at a time", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
