package response

import "lovedktech/internal/usecase"

type PriceRowResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	BasePrice   float64 `json:"base_price"`
	USDPreview  string  `json:"usd_preview"`
	XOFPreview  string  `json:"xof_preview"`
	Description string  `json:"description"`
}

type PriceBoardResponse struct {
	Rows  []PriceRowResponse `json:"rows"`
	Rates map[string]float64 `json:"rates"`
}

func FromPriceBoard(b usecase.PriceBoard) PriceBoardResponse {
	rows := make([]PriceRowResponse, 0, len(b.Rows))
	for _, r := range b.Rows {
		rows = append(rows, PriceRowResponse{
			ID:          r.Service.ID,
			Title:       r.Service.Title,
			BasePrice:   r.Service.BasePrice,
			USDPreview:  r.USDPreview,
			XOFPreview:  r.XOFPreview,
			Description: r.Service.Description,
		})
	}
	return PriceBoardResponse{Rows: rows, Rates: b.Rates}
}

type BulkSaveResponse struct {
	Updated int `json:"updated"`
}
