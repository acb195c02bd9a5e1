package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lovedktech/internal/adapter/http/handlers/mocks"
	"lovedktech/internal/domain/entities"
	"lovedktech/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAdminRouter(t *testing.T) (*gin.Engine, *mocks.MockIAdminUseCase, *mocks.MockIOrderUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	admin := mocks.NewMockIAdminUseCase(ctrl)
	orders := mocks.NewMockIOrderUseCase(ctrl)
	h := NewAdminHandler(admin, orders)

	r := gin.New()
	r.GET("/v1/admin/prices", h.ListPrices)
	r.PUT("/v1/admin/prices", h.SaveAll)
	r.PUT("/v1/admin/prices/:id", h.SavePrice)
	r.PATCH("/v1/admin/orders/:id/status", h.AdvanceOrderStatus)
	return r, admin, orders
}

func TestAdminHandler_ListPrices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, admin, _ := newAdminRouter(t)
	admin.EXPECT().ListPrices(gomock.Any()).Return(usecase.PriceBoard{
		Rows: []usecase.PriceRow{
			{
				Service:    entities.Service{ID: "single-page", Title: "Single Page Site", BasePrice: 400},
				USDPreview: "$436.00",
				XOFPreview: "262,383 FCFA",
			},
		},
		Rates: map[string]float64{"EUR": 1, "USD": 1.09, "XOF": 655.957},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/prices", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Rows []struct {
			ID         string `json:"id"`
			USDPreview string `json:"usd_preview"`
			XOFPreview string `json:"xof_preview"`
		} `json:"rows"`
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Rows) != 1 || body.Rows[0].XOFPreview != "262,383 FCFA" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if body.Rates["XOF"] != 655.957 {
		t.Fatalf("expected rate table in response, got %v", body.Rates)
	}
}

func TestAdminHandler_SavePrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		r, admin, _ := newAdminRouter(t)
		admin.EXPECT().SavePrice(gomock.Any(), "single-page", "450").Return(entities.Service{ID: "single-page", BasePrice: 450}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/prices/single-page", bytes.NewBufferString(`{"price":"450"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid price maps to 400", func(t *testing.T) {
		r, admin, _ := newAdminRouter(t)
		admin.EXPECT().SavePrice(gomock.Any(), "single-page", "abc").Return(entities.Service{}, usecase.ErrInvalidPriceInput)

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/prices/single-page", bytes.NewBufferString(`{"price":"abc"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown service maps to 404", func(t *testing.T) {
		r, admin, _ := newAdminRouter(t)
		admin.EXPECT().SavePrice(gomock.Any(), "missing", "450").Return(entities.Service{}, usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/prices/missing", bytes.NewBufferString(`{"price":"450"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestAdminHandler_SaveAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, admin, _ := newAdminRouter(t)
	admin.EXPECT().SaveAll(gomock.Any(), map[string]string{"single-page": "450", "multi-page": "abc"}).Return(1, nil)

	req := httptest.NewRequest(http.MethodPut, "/v1/admin/prices", bytes.NewBufferString(`{"prices":{"single-page":"450","multi-page":"abc"}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Updated int `json:"updated"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Updated != 1 {
		t.Fatalf("expected updated=1, got %d", body.Updated)
	}
}

func TestAdminHandler_AdvanceOrderStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		r, _, orders := newAdminRouter(t)
		orders.EXPECT().AdvanceStatus(gomock.Any(), "o-1", entities.StatusInProgress).Return(entities.Order{ID: "o-1", Status: entities.StatusInProgress}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/orders/o-1/status", bytes.NewBufferString(`{"status":"in_progress"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "in_progress" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("backward transition maps to 409", func(t *testing.T) {
		r, _, orders := newAdminRouter(t)
		orders.EXPECT().AdvanceStatus(gomock.Any(), "o-1", entities.StatusPending).Return(entities.Order{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/orders/o-1/status", bytes.NewBufferString(`{"status":"pending"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown order maps to 404", func(t *testing.T) {
		r, _, orders := newAdminRouter(t)
		orders.EXPECT().AdvanceStatus(gomock.Any(), "missing", entities.StatusInProgress).Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/orders/missing/status", bytes.NewBufferString(`{"status":"in_progress"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
