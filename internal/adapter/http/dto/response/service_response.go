package response

import (
	"lovedktech/internal/domain/currency"
	"lovedktech/internal/domain/entities"
)

type ServiceResponse struct {
	ID           string  `json:"id"`
	IconKey      string  `json:"icon_key"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	BasePrice    float64 `json:"base_price"`
	Currency     string  `json:"currency"`
	PriceDisplay string  `json:"price_display"`
}

// FromService renders a catalog service in the requested display currency.
func FromService(s entities.Service, rates *currency.Table, code string) ServiceResponse {
	return ServiceResponse{
		ID:           s.ID,
		IconKey:      string(entities.ResolveIcon(s.IconKey)),
		Title:        s.Title,
		Description:  s.Description,
		BasePrice:    s.BasePrice,
		Currency:     code,
		PriceDisplay: rates.Convert(s.BasePrice, code),
	}
}

func FromServices(services []entities.Service, rates *currency.Table, code string) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s, rates, code))
	}
	return out
}
