package response

import "lovedktech/internal/usecase"

type CheckoutResponse struct {
	OrderID      string `json:"order_id"`
	Status       string `json:"status"`
	RedirectURL  string `json:"redirect_url"`
	WhatsAppURL  string `json:"whatsapp_url"`
	SettledPrice string `json:"settled_price"`
}

func FromCheckout(res usecase.CheckoutResult, settledPrice string) CheckoutResponse {
	return CheckoutResponse{
		OrderID:      res.Order.ID,
		Status:       string(res.Order.Status),
		RedirectURL:  res.RedirectURL,
		WhatsAppURL:  res.WhatsAppURL,
		SettledPrice: settledPrice,
	}
}
