package entities

import "time"

// OrderStatus represents the fulfillment state of an order.
//
// pending_payment is a transient pre-state set by checkout before the
// hosted-payment redirect; it sits before the four tracked stages and is
// advanced out-of-band once payment is reconciled.

type OrderStatus string

const (
	StatusPendingPayment OrderStatus = "pending_payment"
	StatusPending        OrderStatus = "pending"
	StatusInProgress     OrderStatus = "in_progress"
	StatusReview         OrderStatus = "review"
	StatusCompleted      OrderStatus = "completed"
)

// Stage is one step of the fixed fulfillment tracker shown to clients.
type Stage struct {
	Status OrderStatus `json:"status"`
	Label  string      `json:"label"`
}

// Stages is the fixed 4-step tracker sequence, in order.
var Stages = []Stage{
	{Status: StatusPending, Label: "Order Placed"},
	{Status: StatusInProgress, Label: "Development"},
	{Status: StatusReview, Label: "Review"},
	{Status: StatusCompleted, Label: "Deployed"},
}

// StageIndex returns the position of a status in the tracker, or -1 when the
// status is unknown or not yet tracked (pending_payment included). Callers
// must treat -1 as "no stages completed", never as an error.
func StageIndex(status OrderStatus) int {
	for i, s := range Stages {
		if s.Status == status {
			return i
		}
	}
	return -1
}

// Progress maps a status to a completion fraction in [0, 1]:
// stageIndex / (stageCount - 1), floored at 0 for untracked statuses.
func Progress(status OrderStatus) float64 {
	idx := StageIndex(status)
	if idx < 0 {
		return 0
	}
	return float64(idx) / float64(len(Stages)-1)
}

// NextStatus returns the forward transition for a status and whether one
// exists. Transitions are forward-only; there is no writer for backward
// moves anywhere in the system.
func NextStatus(status OrderStatus) (OrderStatus, bool) {
	switch status {
	case StatusPendingPayment:
		return StatusPending, true
	case StatusPending:
		return StatusInProgress, true
	case StatusInProgress:
		return StatusReview, true
	case StatusReview:
		return StatusCompleted, true
	default:
		return "", false
	}
}

// Order is the snapshot persisted at checkout time.
//
// ServiceID, ServiceTitle, IconKey and BasePrice are frozen copies of the
// selected service; later catalog edits never touch existing orders.
// OwnerEmail is the sole access-control key for "my orders" filtering.
// Only Status changes after creation.

type Order struct {
	ID           string      `json:"id"`
	ServiceID    string      `json:"service_id"`
	ServiceTitle string      `json:"service_title"`
	IconKey      string      `json:"icon_key"`
	BasePrice    float64     `json:"base_price"`
	Currency     string      `json:"currency"`
	CreatedAt    time.Time   `json:"created_at"`
	Status       OrderStatus `json:"status"`
	OwnerEmail   string      `json:"owner_email"`
	Phone        string      `json:"phone"`
	Notes        string      `json:"notes"`
}
