package interfaces

import (
	"context"

	"lovedktech/internal/domain/entities"
)

// IOrderRepository abstracts persistence for orders.
//
// Orders are append-only aside from status updates. The backing store holds
// the full collection under one key; malformed stored state loads as empty.
// Zero-value Order with nil error means "id not found".

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByOwner(ctx context.Context, email string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
