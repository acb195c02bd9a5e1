package entities

// StoreInfo is the merchant identity attached to every hosted invoice.
type StoreInfo struct {
	Name       string `json:"name"`
	Tagline    string `json:"tagline"`
	WebsiteURL string `json:"website_url"`
}

// Invoice is the provider-neutral payment request built by checkout.
//
// TotalAmount is in whole settlement-currency units (XOF, zero-decimal).
// CustomData carries the local order id and contact details so a later
// gateway callback can be reconciled against the locally persisted order.
type Invoice struct {
	TotalAmount int64             `json:"total_amount"`
	Description string            `json:"description"`
	Store       StoreInfo         `json:"store"`
	CancelURL   string            `json:"cancel_url"`
	ReturnURL   string            `json:"return_url"`
	CustomData  map[string]string `json:"custom_data"`
}
