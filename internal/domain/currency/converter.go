// Package currency holds the exchange-rate table and the price formatting
// rules used everywhere an amount is shown or settled.
package currency

import (
	"fmt"
	"math"
	"strconv"
	"sync"
)

// Supported currency codes. EUR is the base currency: all catalog prices are
// stored in EUR and every other amount is derived from the rate table.
const (
	EUR = "EUR"
	USD = "USD"
	XOF = "XOF"
)

// FallbackRates is the static table used until (and unless) the live refresh
// succeeds. XOF is pegged to EUR, so its fallback is exact.
func FallbackRates() map[string]float64 {
	return map[string]float64{
		EUR: 1,
		USD: 1.09,
		XOF: 655.957,
	}
}

// Table maps currency code to units-of-that-currency per one EUR.
// It is refreshed at most once per process; reads vastly outnumber writes.
//
// Invariant: the base currency always maps to 1.

type Table struct {
	mu    sync.RWMutex
	rates map[string]float64
}

func NewTable() *Table {
	return &Table{rates: FallbackRates()}
}

// Rate returns the rate for a code, defaulting to 1 for unknown codes.
// Fail-soft: conversion never errors, it just renders the base amount.
func (t *Table) Rate(code string) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if r, ok := t.rates[code]; ok && r > 0 {
		return r
	}
	return 1
}

// Replace swaps in a freshly fetched table. EUR is forced back to 1 and a
// missing XOF keeps the pegged fallback, matching the upstream API's gaps.
func (t *Table) Replace(rates map[string]float64) {
	next := FallbackRates()
	for code, r := range rates {
		if r > 0 {
			next[code] = r
		}
	}
	next[EUR] = 1
	t.mu.Lock()
	t.rates = next
	t.mu.Unlock()
}

// Snapshot returns a copy of the current table for display (admin console).
func (t *Table) Snapshot() map[string]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]float64, len(t.rates))
	for k, v := range t.rates {
		out[k] = v
	}
	return out
}

// Symbol returns the display symbol for a code, defaulting to the base
// currency symbol.
func Symbol(code string) string {
	switch code {
	case USD:
		return "$"
	case XOF:
		return "FCFA"
	default:
		return "€"
	}
}

// Convert formats a base-currency amount in the requested display currency.
//
// XOF is zero-decimal: the converted amount is rounded UP to the nearest
// whole franc and rendered with thousands separators and a trailing label.
// Every other currency renders with a leading symbol and two decimals.
func (t *Table) Convert(amount float64, code string) string {
	converted := amount * t.Rate(code)
	if code == XOF {
		return fmt.Sprintf("%s %s", groupThousands(int64(math.Ceil(converted))), Symbol(code))
	}
	return fmt.Sprintf("%s%.2f", Symbol(code), converted)
}

// Settlement converts a base-currency amount to whole XOF for the payment
// gateway. Always ceiling, never floor: the gateway settles in a
// zero-decimal currency and the charge must cover the quoted price.
func (t *Table) Settlement(amount float64) int64 {
	return int64(math.Ceil(amount * t.Rate(XOF)))
}

func groupThousands(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		var b []byte
		for i, d := range []byte(s) {
			if i > 0 && (len(s)-i)%3 == 0 {
				b = append(b, ',')
			}
			b = append(b, d)
		}
		s = string(b)
	}
	if neg {
		return "-" + s
	}
	return s
}
