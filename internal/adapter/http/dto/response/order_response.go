package response

import (
	"time"

	"lovedktech/internal/domain/currency"
	"lovedktech/internal/domain/entities"
)

type StageResponse struct {
	Status    string `json:"status"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

type OrderResponse struct {
	ID           string    `json:"id"`
	ServiceID    string    `json:"service_id"`
	ServiceTitle string    `json:"service_title"`
	IconKey      string    `json:"icon_key"`
	BasePrice    float64   `json:"base_price"`
	PriceDisplay string    `json:"price_display"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"created_at"`
	Status       string    `json:"status"`
	Phone        string    `json:"phone,omitempty"`
	Notes        string    `json:"notes,omitempty"`

	StageIndex int             `json:"stage_index"`
	Progress   float64         `json:"progress"`
	Stages     []StageResponse `json:"stages"`
}

// FromOrder renders one order with its fulfillment tracker. A status outside
// the tracker (pending_payment included) yields stage_index -1 and zero
// completed stages.
func FromOrder(o entities.Order, rates *currency.Table, code string) OrderResponse {
	idx := entities.StageIndex(o.Status)

	stages := make([]StageResponse, 0, len(entities.Stages))
	for i, s := range entities.Stages {
		stages = append(stages, StageResponse{
			Status:    string(s.Status),
			Label:     s.Label,
			Completed: idx >= 0 && i <= idx,
			Current:   i == idx,
		})
	}

	return OrderResponse{
		ID:           o.ID,
		ServiceID:    o.ServiceID,
		ServiceTitle: o.ServiceTitle,
		IconKey:      string(entities.ResolveIcon(o.IconKey)),
		BasePrice:    o.BasePrice,
		PriceDisplay: rates.Convert(o.BasePrice, code),
		Currency:     code,
		CreatedAt:    o.CreatedAt,
		Status:       string(o.Status),
		Phone:        o.Phone,
		Notes:        o.Notes,
		StageIndex:   idx,
		Progress:     entities.Progress(o.Status),
		Stages:       stages,
	}
}

func FromOrders(orders []entities.Order, rates *currency.Table, code string) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o, rates, code))
	}
	return out
}
