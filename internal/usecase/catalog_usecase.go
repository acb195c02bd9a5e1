package usecase

import (
	"context"
	"errors"
	"math"
	"strings"

	"lovedktech/internal/domain/entities"
	"lovedktech/internal/usecase/interfaces"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidServiceID = errors.New("invalid service id")
	ErrInvalidPrice     = errors.New("invalid price")
)

// ICatalogUseCase exposes the service catalog.
//
// Price updates validate here (non-negative, finite); the repository never
// checks the sign itself, mirroring the split the admin console relies on.

type ICatalogUseCase interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	GetService(ctx context.Context, id string) (entities.Service, error)
	UpdateServicePrice(ctx context.Context, id string, newPrice float64) (entities.Service, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	return u.repo.List(ctx)
}

func (u *CatalogUseCase) GetService(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	services, err := u.repo.List(ctx)
	if err != nil {
		return entities.Service{}, err
	}
	for _, s := range services {
		if s.ID == id {
			return s, nil
		}
	}
	return entities.Service{}, ErrServiceNotFound
}

func (u *CatalogUseCase) UpdateServicePrice(ctx context.Context, id string, newPrice float64) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	if math.IsNaN(newPrice) || math.IsInf(newPrice, 0) || newPrice < 0 {
		return entities.Service{}, ErrInvalidPrice
	}

	updated, err := u.repo.UpdatePrice(ctx, id, newPrice)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}
