package usecase

import (
	"context"
	"strings"
	"testing"

	"lovedktech/internal/adapter/persistence/repository"
	"lovedktech/internal/domain/currency"
	"lovedktech/internal/domain/entities"
	"lovedktech/internal/infrastructure/storage"
)

func TestMailtoLink(t *testing.T) {
	link := MailtoLink("hello@example.com", "Ada Example", "ada@example.com", "I need a site.\nSoon.")

	if !strings.HasPrefix(link, "mailto:hello@example.com?subject=") {
		t.Fatalf("unexpected link: %s", link)
	}
	if !strings.Contains(link, "New+Contact+from+Ada+Example") {
		t.Fatalf("subject not encoded: %s", link)
	}
	if !strings.Contains(link, "body=") {
		t.Fatalf("missing body: %s", link)
	}
}

func TestWhatsAppPaymentLink(t *testing.T) {
	o := entities.Order{
		ServiceTitle: "SaaS Platform",
		OwnerEmail:   "ada@example.com",
		Phone:        "+221 77 000 0000",
		Notes:        "launch in june",
	}
	link := WhatsAppPaymentLink("18652829928", o, "655,957 FCFA", "Ada Example")

	if !strings.HasPrefix(link, "https://wa.me/18652829928?text=") {
		t.Fatalf("unexpected link: %s", link)
	}
	for _, frag := range []string{"SaaS+Platform", "ada%40example.com", "655%2C957+FCFA"} {
		if !strings.Contains(link, frag) {
			t.Fatalf("missing %q in %s", frag, link)
		}
	}
}

// Price snapshot isolation: editing the catalog after checkout must not
// change what an existing order charges.
func TestOrderPriceFrozenAgainstCatalogEdits(t *testing.T) {
	store := storage.NewMemoryStore()
	catalogRepo := repository.NewCatalogStorageRepository(store)
	orderRepo := repository.NewOrderStorageRepository(store)
	catalog := NewCatalogUseCase(catalogRepo)
	checkout := fixedCheckout(NewCheckoutUseCase(catalogRepo, orderRepo, staticGateway{}, nil, currency.NewTable(), checkoutConfig()))
	ctx := context.Background()

	res, err := checkout.Checkout(ctx, validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Order.BasePrice != 400 {
		t.Fatalf("expected 400, got %v", res.Order.BasePrice)
	}

	if _, err := catalog.UpdateServicePrice(ctx, "single-page", 999); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders, err := NewOrderUseCase(orderRepo).ListForUser(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 || orders[0].BasePrice != 400 {
		t.Fatalf("order price not frozen: %+v", orders)
	}

	svc, _ := catalog.GetService(ctx, "single-page")
	if svc.BasePrice != 999 {
		t.Fatalf("catalog edit lost: %v", svc.BasePrice)
	}
}

type staticGateway struct{}

func (staticGateway) CreateInvoice(context.Context, entities.Invoice) (string, error) {
	return "https://paydunya.test/invoice/static", nil
}
