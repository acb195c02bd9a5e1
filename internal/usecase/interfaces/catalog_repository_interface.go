package interfaces

import (
	"context"

	"lovedktech/internal/domain/entities"
)

// ICatalogRepository abstracts persistence for the service catalog.
//
// The catalog is stored as a whole collection (read-modify-write); List is
// seeded with the default catalog on first load or unparsable state, and
// UpdatePrice persists the full catalog on success. A zero-value Service
// with nil error means "id not found".

type ICatalogRepository interface {
	List(ctx context.Context) ([]entities.Service, error)
	UpdatePrice(ctx context.Context, id string, newPrice float64) (entities.Service, error)
}
