package interfaces

import (
	"context"

	"lovedktech/internal/domain/entities"
)

// IPaymentGateway abstracts hosted-payment providers (PayDunya,
// Mercado Pago). CreateInvoice registers an invoice with the provider and
// returns the hosted-payment page URL the client must be redirected to.
// Any malformed or error response surfaces as a non-nil error.
type IPaymentGateway interface {
	CreateInvoice(ctx context.Context, inv entities.Invoice) (redirectURL string, err error)
}
