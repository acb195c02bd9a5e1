package request

// PriceUpdateRequest sets one service's base price. The value travels as a
// string so the usecase owns numeric validation (NaN, negatives, garbage);
// the console submits raw field text.
type PriceUpdateRequest struct {
	Price string `json:"price" binding:"required"`
}

// BulkPriceUpdateRequest maps service id to raw price text. Invalid fields
// are skipped per-entry, not rejected wholesale.
type BulkPriceUpdateRequest struct {
	Prices map[string]string `json:"prices" binding:"required"`
}

// StatusAdvanceRequest moves an order to its next fulfillment status.
type StatusAdvanceRequest struct {
	Status string `json:"status" binding:"required"`
}
