package payments

import (
	"context"
	"errors"
	"log"

	"lovedktech/internal/domain/entities"
	"lovedktech/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrMercadoPagoNoRedirectURL        = errors.New("mercado pago preference has no init point")
)

// MercadoPagoGateway is the alternate hosted-payment provider, built on
// Checkout Pro preferences: the invoice becomes a one-item preference and
// the preference's init_point is the hosted-payment redirect URL.
type MercadoPagoGateway struct {
	client preference.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][mercadopago] client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateInvoice(ctx context.Context, inv entities.Invoice) (string, error) {
	if g == nil || g.client == nil {
		log.Printf("[payment][mercadopago] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][mercadopago] create start amount=%d", inv.TotalAmount)

	resp, err := g.client.Create(ctx, buildPreferenceRequest(inv))
	if err != nil {
		log.Printf("[payment][mercadopago] sdk create failed err=%v", err)
		return "", err
	}
	if resp.InitPoint == "" {
		log.Printf("[payment][mercadopago] preference created without init point id=%s", resp.ID)
		return "", ErrMercadoPagoNoRedirectURL
	}

	log.Printf("[payment][mercadopago] create success preference_id=%s", resp.ID)
	return resp.InitPoint, nil
}

// buildPreferenceRequest maps an invoice onto a one-item Checkout Pro
// preference. The settlement amount is whole XOF; the gateway's return URL
// doubles as the pending back URL since reconciliation is out-of-band.
func buildPreferenceRequest(inv entities.Invoice) preference.Request {
	metadata := make(map[string]any, len(inv.CustomData))
	for k, v := range inv.CustomData {
		metadata[k] = v
	}

	return preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       inv.Description,
				Description: inv.Description,
				Quantity:    1,
				UnitPrice:   float64(inv.TotalAmount),
				CurrencyID:  "XOF",
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: inv.ReturnURL,
			Pending: inv.ReturnURL,
			Failure: inv.CancelURL,
		},
		ExternalReference: inv.CustomData["order_id"],
		Metadata:          metadata,
	}
}
