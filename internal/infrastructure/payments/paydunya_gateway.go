package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"lovedktech/internal/domain/entities"
	"lovedktech/internal/usecase/interfaces"
)

var (
	ErrMissingPayDunyaKeys = errors.New("missing paydunya api keys")
	ErrPayDunyaRejected    = errors.New("paydunya rejected the invoice")
)

// PayDunyaConfig carries the checkout-invoice endpoint and the three static
// API keys PayDunya authenticates with.
type PayDunyaConfig struct {
	Endpoint   string
	MasterKey  string
	PrivateKey string
	Token      string
}

// PayDunyaGateway creates hosted checkout invoices against the PayDunya
// checkout-invoice API. Amounts are whole XOF; a success response is
// response_code "00" with the hosted-payment URL in response_text, and any
// other shape is a failure.
type PayDunyaGateway struct {
	cfg        PayDunyaConfig
	httpClient *http.Client
}

var _ interfaces.IPaymentGateway = (*PayDunyaGateway)(nil)

func NewPayDunyaGateway(cfg PayDunyaConfig) (*PayDunyaGateway, error) {
	if cfg.MasterKey == "" || cfg.PrivateKey == "" || cfg.Token == "" {
		log.Printf("[payment][paydunya] missing api keys")
		return nil, ErrMissingPayDunyaKeys
	}
	return &PayDunyaGateway{cfg: cfg, httpClient: http.DefaultClient}, nil
}

type paydunyaInvoiceBody struct {
	Invoice struct {
		TotalAmount int64  `json:"total_amount"`
		Description string `json:"description"`
	} `json:"invoice"`
	Store      entities.StoreInfo `json:"store"`
	CustomData map[string]string  `json:"custom_data,omitempty"`
	Actions    struct {
		CancelURL string `json:"cancel_url"`
		ReturnURL string `json:"return_url"`
	} `json:"actions"`
}

type paydunyaInvoiceResponse struct {
	ResponseCode string `json:"response_code"`
	ResponseText string `json:"response_text"`
}

func (g *PayDunyaGateway) CreateInvoice(ctx context.Context, inv entities.Invoice) (string, error) {
	var body paydunyaInvoiceBody
	body.Invoice.TotalAmount = inv.TotalAmount
	body.Invoice.Description = inv.Description
	body.Store = inv.Store
	body.CustomData = inv.CustomData
	body.Actions.CancelURL = inv.CancelURL
	body.Actions.ReturnURL = inv.ReturnURL

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	log.Printf("[payment][paydunya] create start amount=%d payload_len=%d", inv.TotalAmount, len(payload))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("PAYDUNYA-MASTER-KEY", g.cfg.MasterKey)
	req.Header.Set("PAYDUNYA-PRIVATE-KEY", g.cfg.PrivateKey)
	req.Header.Set("PAYDUNYA-TOKEN", g.cfg.Token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[payment][paydunya] request failed err=%v", err)
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[payment][paydunya] api error status=%d body_len=%d", resp.StatusCode, len(raw))
		return "", fmt.Errorf("%w: status %d", ErrPayDunyaRejected, resp.StatusCode)
	}

	var parsed paydunyaInvoiceResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Printf("[payment][paydunya] response unmarshal failed err=%v", err)
		return "", fmt.Errorf("%w: malformed response", ErrPayDunyaRejected)
	}
	if parsed.ResponseCode != "00" || parsed.ResponseText == "" {
		log.Printf("[payment][paydunya] invoice rejected response_code=%s", parsed.ResponseCode)
		return "", fmt.Errorf("%w: response_code %s", ErrPayDunyaRejected, parsed.ResponseCode)
	}

	log.Printf("[payment][paydunya] create success amount=%d", inv.TotalAmount)
	return parsed.ResponseText, nil
}
