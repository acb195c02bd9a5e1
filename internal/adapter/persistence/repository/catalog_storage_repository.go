package repository

import (
	"context"
	"errors"
	"log"

	"lovedktech/internal/domain/entities"
	"lovedktech/internal/infrastructure/storage"
	"lovedktech/internal/usecase/interfaces"
)

const defaultCatalogKey = "catalog"

// CatalogStorageRepository persists the service catalog as one JSON document
// under a single storage key.
//
// Persistence model:
//   - load whole catalog, mutate in memory, store whole catalog
//   - first run (or unparsable state) seeds the built-in default catalog
//   - insertion order is preserved, so listings are stable across sessions

type CatalogStorageRepository struct {
	store storage.Store
	key   string
}

var _ interfaces.ICatalogRepository = (*CatalogStorageRepository)(nil)

func NewCatalogStorageRepository(store storage.Store) *CatalogStorageRepository {
	return &CatalogStorageRepository{
		store: store,
		key:   getenvDefault("CATALOG_KEY", defaultCatalogKey),
	}
}

func (r *CatalogStorageRepository) List(ctx context.Context) ([]entities.Service, error) {
	return r.load(ctx)
}

func (r *CatalogStorageRepository) UpdatePrice(ctx context.Context, id string, newPrice float64) (entities.Service, error) {
	services, err := r.load(ctx)
	if err != nil {
		return entities.Service{}, err
	}

	var updated entities.Service
	for i := range services {
		if services[i].ID == id {
			services[i].BasePrice = newPrice
			updated = services[i]
			break
		}
	}
	if updated.ID == "" {
		return entities.Service{}, nil
	}

	if err := r.save(ctx, services); err != nil {
		return entities.Service{}, err
	}
	return updated, nil
}

func (r *CatalogStorageRepository) load(ctx context.Context) ([]entities.Service, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return r.seed(ctx)
		}
		return nil, err
	}

	var services []entities.Service
	if !unwrap(raw, &services) {
		log.Printf("[catalog][repository] stored catalog unparsable, reseeding defaults key=%s", r.key)
		return r.seed(ctx)
	}
	return services, nil
}

func (r *CatalogStorageRepository) seed(ctx context.Context) ([]entities.Service, error) {
	services := entities.DefaultCatalog()
	if err := r.save(ctx, services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *CatalogStorageRepository) save(ctx context.Context, services []entities.Service) error {
	raw, err := wrap(services)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, r.key, raw)
}
