package handlers

import (
	"log"
	"net/http"
	"strings"

	"lovedktech/internal/adapter/http/dto/response"
	"lovedktech/internal/domain/currency"
	"lovedktech/internal/usecase"
	"lovedktech/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public services grid.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
	rates   *currency.Table
}

func NewCatalogHandler(uc usecase.ICatalogUseCase, rates *currency.Table) *CatalogHandler {
	return &CatalogHandler{usecase: uc, rates: rates}
}

// ListServices returns the catalog with prices rendered in the requested
// display currency (?currency=USD|EUR|XOF, default EUR).
func (h *CatalogHandler) ListServices(c *gin.Context) {
	code := displayCurrency(c)
	log.Printf("[catalog][handler] list start currency=%s", code)

	services, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		log.Printf("[catalog][handler] list failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[catalog][handler] list success count=%d", len(services))
	c.JSON(http.StatusOK, gin.H{
		"currency": code,
		"services": response.FromServices(services, h.rates, code),
	})
}

// displayCurrency normalizes the ?currency= query param. Unknown or missing
// values fall back to EUR; conversion itself is fail-soft anyway.
func displayCurrency(c *gin.Context) string {
	code := strings.ToUpper(strings.TrimSpace(c.Query("currency")))
	switch code {
	case currency.USD, currency.EUR, currency.XOF:
		return code
	default:
		return currency.EUR
	}
}
