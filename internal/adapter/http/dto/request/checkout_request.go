package request

import "strings"

// CheckoutRequest is the checkout form payload. Name and email are not
// accepted here; they come from the authenticated session so the order owner
// can never be spoofed by the form.
type CheckoutRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Notes     string `json:"notes"`
}

func (r CheckoutRequest) ResolveServiceID() string {
	return strings.TrimSpace(r.ServiceID)
}

func (r CheckoutRequest) ResolvePhone() string {
	return strings.TrimSpace(r.Phone)
}
