package payments

import (
	"context"
	"errors"
	"testing"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("should fail without access token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway("")
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("should succeed with access token", func(t *testing.T) {
		gw, err := NewMercadoPagoGateway("TEST-access-token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gw == nil || gw.client == nil {
			t.Fatal("expected configured gateway")
		}
	})
}

func TestMercadoPagoGatewayCreateInvoice_NotConfigured(t *testing.T) {
	t.Run("nil gateway", func(t *testing.T) {
		var gw *MercadoPagoGateway
		_, err := gw.CreateInvoice(context.Background(), testInvoice())
		if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("missing client", func(t *testing.T) {
		gw := &MercadoPagoGateway{}
		_, err := gw.CreateInvoice(context.Background(), testInvoice())
		if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})
}

func TestBuildPreferenceRequest(t *testing.T) {
	inv := testInvoice()
	req := buildPreferenceRequest(inv)

	if len(req.Items) != 1 {
		t.Fatalf("expected one preference item, got %d", len(req.Items))
	}
	item := req.Items[0]
	if item.Title != inv.Description || item.Description != inv.Description {
		t.Errorf("expected invoice description on the item, got %+v", item)
	}
	if item.Quantity != 1 || item.UnitPrice != 262383 {
		t.Errorf("expected quantity 1 at the settlement amount, got %+v", item)
	}
	if item.CurrencyID != "XOF" {
		t.Errorf("expected XOF currency, got %q", item.CurrencyID)
	}

	if req.BackURLs == nil {
		t.Fatal("expected back urls")
	}
	if req.BackURLs.Success != inv.ReturnURL || req.BackURLs.Pending != inv.ReturnURL {
		t.Errorf("expected return url as success and pending, got %+v", req.BackURLs)
	}
	if req.BackURLs.Failure != inv.CancelURL {
		t.Errorf("expected cancel url as failure, got %q", req.BackURLs.Failure)
	}

	if req.ExternalReference != "o-1" {
		t.Errorf("expected order id as external reference, got %q", req.ExternalReference)
	}
	if req.Metadata["service_id"] != "single-page" {
		t.Errorf("expected custom data carried as metadata, got %v", req.Metadata)
	}
}
