package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"lovedktech/internal/domain/currency"
	"lovedktech/internal/domain/entities"
	"lovedktech/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNoServiceSelected    = errors.New("no service selected")
	ErrPhoneRequired        = errors.New("phone number required")
	ErrCheckoutUnauthorized = errors.New("checkout requires an authenticated user")
	ErrPaymentGatewayFailed = errors.New("payment gateway failed")
)

// CheckoutInput is everything checkout needs from the caller: the selected
// service, contact details from the form, and the authenticated identity
// (name/email are read-only on the form, sourced from the session).
type CheckoutInput struct {
	ServiceID string
	Phone     string
	Notes     string
	Email     string
	FullName  string
}

// CheckoutResult carries the persisted order, the hosted-payment redirect
// URL, and the WhatsApp fallback link for the manual payment channel.
type CheckoutResult struct {
	Order       entities.Order
	RedirectURL string
	WhatsAppURL string
}

// ICheckoutUseCase runs one checkout session: AwaitingInput -> Processing ->
// Redirected or Failed.
type ICheckoutUseCase interface {
	Checkout(ctx context.Context, in CheckoutInput) (CheckoutResult, error)
}

// CheckoutConfig is the merchant/site configuration baked into invoices and
// return links.
type CheckoutConfig struct {
	StoreName     string
	StoreTagline  string
	BaseURL       string
	WhatsAppPhone string
}

type CheckoutUseCase struct {
	catalogRepo interfaces.ICatalogRepository
	orderRepo   interfaces.IOrderRepository
	gateway     interfaces.IPaymentGateway
	publisher   interfaces.IOrderEventPublisher
	rates       *currency.Table
	cfg         CheckoutConfig

	nowFunc func() time.Time
	idFunc  func() string
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	catalogRepo interfaces.ICatalogRepository,
	orderRepo interfaces.IOrderRepository,
	gateway interfaces.IPaymentGateway,
	publisher interfaces.IOrderEventPublisher,
	rates *currency.Table,
	cfg CheckoutConfig,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		catalogRepo: catalogRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
		publisher:   publisher,
		rates:       rates,
		cfg:         cfg,
		nowFunc:     time.Now,
		idFunc:      uuid.NewString,
	}
}

// Checkout snapshots the selected service into a pending_payment order,
// persists it, then asks the gateway for a hosted-payment URL.
//
// The persisted order is a local audit trail independent of the gateway
// outcome: a gateway failure surfaces an error but never rolls the order
// back, and reconciliation of abandoned pending_payment orders is manual.
func (u *CheckoutUseCase) Checkout(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return CheckoutResult{}, ErrCheckoutUnauthorized
	}
	if strings.TrimSpace(in.ServiceID) == "" {
		return CheckoutResult{}, ErrNoServiceSelected
	}
	if strings.TrimSpace(in.Phone) == "" {
		return CheckoutResult{}, ErrPhoneRequired
	}
	if u.gateway == nil {
		return CheckoutResult{}, errors.New("payment gateway not configured")
	}

	svc, err := u.findService(ctx, strings.TrimSpace(in.ServiceID))
	if err != nil {
		return CheckoutResult{}, err
	}

	order := entities.Order{
		ID:           u.idFunc(),
		ServiceID:    svc.ID,
		ServiceTitle: svc.Title,
		IconKey:      svc.IconKey,
		BasePrice:    svc.BasePrice,
		Currency:     currency.EUR,
		CreatedAt:    u.nowFunc().UTC(),
		Status:       entities.StatusPendingPayment,
		OwnerEmail:   email,
		Phone:        strings.TrimSpace(in.Phone),
		Notes:        strings.TrimSpace(in.Notes),
	}

	if _, err := u.orderRepo.Create(ctx, order); err != nil {
		log.Printf("[checkout][usecase] order persist failed service_id=%s err=%v", svc.ID, err)
		return CheckoutResult{}, err
	}
	log.Printf("[checkout][usecase] order persisted order_id=%s service_id=%s owner=%s", order.ID, svc.ID, email)

	settlement := u.rates.Settlement(svc.BasePrice)
	inv := entities.Invoice{
		TotalAmount: settlement,
		Description: fmt.Sprintf("%s (order %s)", svc.Title, shortID(order.ID)),
		Store: entities.StoreInfo{
			Name:       u.cfg.StoreName,
			Tagline:    u.cfg.StoreTagline,
			WebsiteURL: u.cfg.BaseURL,
		},
		CancelURL: u.returnURL(order.ID, "cancelled"),
		ReturnURL: u.returnURL(order.ID, "success"),
		CustomData: map[string]string{
			"order_id": order.ID,
			"email":    email,
			"phone":    order.Phone,
			"notes":    order.Notes,
		},
	}

	redirectURL, err := u.gateway.CreateInvoice(ctx, inv)
	if err != nil {
		// The pending_payment order stays as-is; no rollback, no retry.
		log.Printf("[checkout][usecase] gateway invoice failed order_id=%s amount=%d err=%v", order.ID, settlement, err)
		return CheckoutResult{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}
	log.Printf("[checkout][usecase] gateway invoice created order_id=%s amount=%d", order.ID, settlement)

	if u.publisher != nil {
		if err := u.publisher.PublishOrderCreated(ctx, order); err != nil {
			log.Printf("[checkout][usecase] order event publish failed order_id=%s err=%v", order.ID, err)
		}
	}

	return CheckoutResult{
		Order:       order,
		RedirectURL: redirectURL,
		WhatsAppURL: WhatsAppPaymentLink(u.cfg.WhatsAppPhone, order, u.rates.Convert(order.BasePrice, currency.XOF), in.FullName),
	}, nil
}

func (u *CheckoutUseCase) findService(ctx context.Context, id string) (entities.Service, error) {
	services, err := u.catalogRepo.List(ctx)
	if err != nil {
		return entities.Service{}, err
	}
	for _, s := range services {
		if s.ID == id {
			return s, nil
		}
	}
	// An unknown selection behaves like no selection: the client is sent
	// back to the catalog rather than shown a partial checkout.
	return entities.Service{}, ErrNoServiceSelected
}

func (u *CheckoutUseCase) returnURL(orderID, marker string) string {
	q := url.Values{}
	q.Set("order_id", orderID)
	q.Set("status", marker)
	return fmt.Sprintf("%s/v1/checkout/return?%s", strings.TrimRight(u.cfg.BaseURL, "/"), q.Encode())
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
