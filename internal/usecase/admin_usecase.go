package usecase

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"lovedktech/internal/domain/currency"
	"lovedktech/internal/domain/entities"
)

var ErrInvalidPriceInput = errors.New("invalid price input")

// PriceRow is one service in the admin console: the current base price plus
// live USD/XOF previews derived from the current rate table.
type PriceRow struct {
	Service    entities.Service
	USDPreview string
	XOFPreview string
}

// PriceBoard is the full console view: every service row plus the rate
// table the previews were computed from.
type PriceBoard struct {
	Rows  []PriceRow
	Rates map[string]float64
}

// IAdminUseCase is the price-editing console. Per-row saves validate loudly;
// the bulk path applies each valid field independently and skips invalid
// ones, reporting only the updated count.

type IAdminUseCase interface {
	ListPrices(ctx context.Context) (PriceBoard, error)
	SavePrice(ctx context.Context, id, rawPrice string) (entities.Service, error)
	SaveAll(ctx context.Context, edits map[string]string) (updated int, err error)
	Preview(rawPrice string) (usd, xof string, err error)
}

type AdminUseCase struct {
	catalog ICatalogUseCase
	rates   *currency.Table
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(catalog ICatalogUseCase, rates *currency.Table) *AdminUseCase {
	return &AdminUseCase{catalog: catalog, rates: rates}
}

func (u *AdminUseCase) ListPrices(ctx context.Context) (PriceBoard, error) {
	services, err := u.catalog.ListServices(ctx)
	if err != nil {
		return PriceBoard{}, err
	}

	rows := make([]PriceRow, 0, len(services))
	for _, s := range services {
		rows = append(rows, PriceRow{
			Service:    s,
			USDPreview: u.rates.Convert(s.BasePrice, currency.USD),
			XOFPreview: u.rates.Convert(s.BasePrice, currency.XOF),
		})
	}
	return PriceBoard{Rows: rows, Rates: u.rates.Snapshot()}, nil
}

func (u *AdminUseCase) SavePrice(ctx context.Context, id, rawPrice string) (entities.Service, error) {
	price, err := parsePrice(rawPrice)
	if err != nil {
		return entities.Service{}, err
	}
	return u.catalog.UpdateServicePrice(ctx, id, price)
}

// SaveAll commits every parsable, non-negative edit. Partial success is by
// design: a bad field never blocks the rest, and the bulk path does not
// report which fields were skipped.
func (u *AdminUseCase) SaveAll(ctx context.Context, edits map[string]string) (int, error) {
	updated := 0
	for id, raw := range edits {
		price, err := parsePrice(raw)
		if err != nil {
			continue
		}
		if _, err := u.catalog.UpdateServicePrice(ctx, id, price); err != nil {
			continue
		}
		updated++
	}
	return updated, nil
}

// Preview converts a not-yet-saved edit for the live USD/XOF columns.
func (u *AdminUseCase) Preview(rawPrice string) (string, string, error) {
	price, err := parsePrice(rawPrice)
	if err != nil {
		return "", "", err
	}
	return u.rates.Convert(price, currency.USD), u.rates.Convert(price, currency.XOF), nil
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, ErrInvalidPriceInput
	}
	return price, nil
}
