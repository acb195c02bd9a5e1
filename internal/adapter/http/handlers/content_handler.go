package handlers

import (
	"fmt"
	"log"
	"net/http"

	"lovedktech/internal/adapter/http/dto/request"
	"lovedktech/internal/adapter/http/dto/response"
	"lovedktech/internal/domain/currency"
	"lovedktech/internal/domain/entities"
	"lovedktech/internal/usecase"
	"lovedktech/pkg"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the marketing site payload and the contact form.

type ContentHandler struct {
	catalog       usecase.ICatalogUseCase
	rates         *currency.Table
	contactEmail  string
	whatsAppPhone string
}

func NewContentHandler(catalog usecase.ICatalogUseCase, rates *currency.Table, contactEmail, whatsAppPhone string) *ContentHandler {
	return &ContentHandler{
		catalog:       catalog,
		rates:         rates,
		contactEmail:  contactEmail,
		whatsAppPhone: whatsAppPhone,
	}
}

// GetContent returns the full site shell: hero/about copy, portfolio,
// contact channels, and the services grid in the requested currency.
func (h *ContentHandler) GetContent(c *gin.Context) {
	code := displayCurrency(c)
	log.Printf("[content][handler] get start currency=%s", code)

	services, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		log.Printf("[content][handler] catalog load failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	contact := response.ContactInfoResponse{
		Email:         h.contactEmail,
		WhatsAppPhone: h.whatsAppPhone,
		WhatsAppURL:   fmt.Sprintf("https://wa.me/%s", h.whatsAppPhone),
	}
	c.JSON(http.StatusOK, response.FromContent(entities.DefaultContent(), services, h.rates, code, contact))
}

// Contact validates the contact form and returns the mailto link the client
// opens; there is no server-side mailer.
func (h *ContentHandler) Contact(c *gin.Context) {
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[content][handler] contact invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	link := usecase.MailtoLink(h.contactEmail, req.Name, req.Email, req.Message)
	log.Printf("[content][handler] contact link built from=%s", req.Email)
	c.JSON(http.StatusOK, response.ContactLinkResponse{MailtoLink: link})
}
