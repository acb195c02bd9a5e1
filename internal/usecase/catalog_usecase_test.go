package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"lovedktech/internal/domain/entities"
	mock_interfaces "lovedktech/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_GetService(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.GetService(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(entities.DefaultCatalog(), nil)

		svc, err := uc.GetService(context.Background(), "erp")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if svc.Title != "ERP Application" {
			t.Fatalf("unexpected service: %+v", svc)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(entities.DefaultCatalog(), nil)

		_, err := uc.GetService(context.Background(), "nope")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}

func TestCatalogUseCase_UpdateServicePrice(t *testing.T) {
	t.Run("rejects negative and NaN before touching the repo", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)

		if _, err := uc.UpdateServicePrice(context.Background(), "erp", -1); !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
		if _, err := uc.UpdateServicePrice(context.Background(), "erp", math.NaN()); !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
		if _, err := uc.UpdateServicePrice(context.Background(), "erp", math.Inf(1)); !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().UpdatePrice(gomock.Any(), "erp", 0.0).Return(entities.Service{ID: "erp", BasePrice: 0}, nil)

		svc, err := uc.UpdateServicePrice(context.Background(), "erp", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if svc.BasePrice != 0 {
			t.Fatalf("unexpected price: %v", svc.BasePrice)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().UpdatePrice(gomock.Any(), "nope", 10.0).Return(entities.Service{}, nil)

		_, err := uc.UpdateServicePrice(context.Background(), "nope", 10)
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}

func TestResolveIcon_NeverFails(t *testing.T) {
	if got := entities.ResolveIcon("globe"); got != entities.IconGlobe {
		t.Fatalf("expected globe, got %s", got)
	}
	// Unknown keys fall back to the layout icon instead of erroring.
	if got := entities.ResolveIcon("definitely-not-an-icon"); got != entities.IconLayout {
		t.Fatalf("expected layout fallback, got %s", got)
	}
	if got := entities.ResolveIcon(""); got != entities.IconLayout {
		t.Fatalf("expected layout fallback for empty key, got %s", got)
	}
}
