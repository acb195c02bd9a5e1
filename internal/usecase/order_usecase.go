package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"lovedktech/internal/domain/entities"
	"lovedktech/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrOwnerEmailRequired = errors.New("owner email required")
)

// IOrderUseCase exposes order reads and the administrative status advance.
//
// There is no client-facing write path besides checkout: orders are never
// deleted, and status only moves forward via AdvanceStatus (an operator
// action; fulfillment progress is tracked manually).

type IOrderUseCase interface {
	ListForUser(ctx context.Context, email string) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	AdvanceStatus(ctx context.Context, id string, next entities.OrderStatus) (entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) ListForUser(ctx context.Context, email string) ([]entities.Order, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrOwnerEmailRequired
	}
	return u.repo.ListByOwner(ctx, email)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// AdvanceStatus moves an order one step forward. The requested next status
// must be exactly the forward transition for the order's current status;
// anything else (unknown status, skip, backward move) is rejected.
func (u *OrderUseCase) AdvanceStatus(ctx context.Context, id string, next entities.OrderStatus) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	expected, ok := entities.NextStatus(o.Status)
	if !ok || expected != next {
		return entities.Order{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[orders][usecase] status advanced order_id=%s from=%s to=%s", id, o.Status, next)
	return updated, nil
}
