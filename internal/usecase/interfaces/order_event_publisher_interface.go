package interfaces

import (
	"context"

	"lovedktech/internal/domain/entities"
)

// IOrderEventPublisher notifies downstream consumers that an order was
// placed. Publishing is best-effort: checkout logs failures and continues.
type IOrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, o entities.Order) error
}
