package repository

import (
	"context"
	"errors"
	"log"
	"sort"

	"lovedktech/internal/domain/entities"
	"lovedktech/internal/infrastructure/storage"
	"lovedktech/internal/usecase/interfaces"
)

const defaultOrdersKey = "orders"

// OrderStorageRepository persists the full order collection as one JSON
// document under a single storage key.
//
// Writes are read-modify-write over the whole collection with no cross-
// process locking: concurrent writers race and the last write wins. That is
// the accepted durability model here (see the storage port docs).
// Malformed stored state loads as an empty collection.

type OrderStorageRepository struct {
	store storage.Store
	key   string
}

var _ interfaces.IOrderRepository = (*OrderStorageRepository)(nil)

func NewOrderStorageRepository(store storage.Store) *OrderStorageRepository {
	return &OrderStorageRepository{
		store: store,
		key:   getenvDefault("ORDERS_KEY", defaultOrdersKey),
	}
}

func (r *OrderStorageRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	orders, err := r.load(ctx)
	if err != nil {
		return entities.Order{}, err
	}

	orders = append(orders, o)
	if err := r.save(ctx, orders); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderStorageRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	orders, err := r.load(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return entities.Order{}, nil
}

func (r *OrderStorageRepository) ListByOwner(ctx context.Context, email string) ([]entities.Order, error) {
	orders, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if o.OwnerEmail == email {
			mine = append(mine, o)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})
	return mine, nil
}

func (r *OrderStorageRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	orders, err := r.load(ctx)
	if err != nil {
		return entities.Order{}, err
	}

	var updated entities.Order
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			updated = orders[i]
			break
		}
	}
	if updated.ID == "" {
		return entities.Order{}, nil
	}

	if err := r.save(ctx, orders); err != nil {
		return entities.Order{}, err
	}
	return updated, nil
}

func (r *OrderStorageRepository) load(ctx context.Context) ([]entities.Order, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []entities.Order{}, nil
		}
		return nil, err
	}

	var orders []entities.Order
	if !unwrap(raw, &orders) {
		log.Printf("[orders][repository] stored orders unparsable, treating as empty key=%s", r.key)
		return []entities.Order{}, nil
	}
	return orders, nil
}

func (r *OrderStorageRepository) save(ctx context.Context, orders []entities.Order) error {
	raw, err := wrap(orders)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, r.key, raw)
}
