package currency

import "testing"

func TestConvert_XOFAlwaysCeils(t *testing.T) {
	tbl := NewTable()

	// 400 * 655.957 = 262382.8 -> ceil 262383, grouped, trailing label.
	if got := tbl.Convert(400, XOF); got != "262,383 FCFA" {
		t.Fatalf("expected 262,383 FCFA, got %q", got)
	}

	// Exact integers must not be bumped up.
	tbl.Replace(map[string]float64{XOF: 655})
	if got := tbl.Convert(2, XOF); got != "1,310 FCFA" {
		t.Fatalf("expected 1,310 FCFA, got %q", got)
	}

	// Any fractional remainder rounds up, never down.
	tbl.Replace(map[string]float64{XOF: 655.001})
	if got := tbl.Convert(1, XOF); got != "656 FCFA" {
		t.Fatalf("expected 656 FCFA, got %q", got)
	}
}

func TestConvert_TwoDecimalCurrencies(t *testing.T) {
	tbl := NewTable()

	if got := tbl.Convert(400, USD); got != "$436.00" {
		t.Fatalf("expected $436.00, got %q", got)
	}
	if got := tbl.Convert(99.5, EUR); got != "€99.50" {
		t.Fatalf("expected €99.50, got %q", got)
	}
}

func TestConvert_UnknownCurrencyFailsSoft(t *testing.T) {
	tbl := NewTable()

	// Unknown code converts at rate 1 with the base symbol; no panic.
	if got := tbl.Convert(400, "GBP"); got != "€400.00" {
		t.Fatalf("expected €400.00, got %q", got)
	}
}

func TestReplace_KeepsBaseAndPeggedFallbacks(t *testing.T) {
	tbl := NewTable()
	tbl.Replace(map[string]float64{USD: 1.2, EUR: 42})

	if r := tbl.Rate(EUR); r != 1 {
		t.Fatalf("base currency must stay 1, got %v", r)
	}
	if r := tbl.Rate(USD); r != 1.2 {
		t.Fatalf("expected 1.2, got %v", r)
	}
	// XOF missing from the refresh keeps the pegged fallback.
	if r := tbl.Rate(XOF); r != 655.957 {
		t.Fatalf("expected fallback 655.957, got %v", r)
	}
}

func TestSettlement_AlwaysWholeXOF(t *testing.T) {
	tbl := NewTable()

	if got := tbl.Settlement(400); got != 262383 {
		t.Fatalf("expected 262383, got %d", got)
	}
	if got := tbl.Settlement(0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestGroupThousands(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		262383:   "262,383",
		10000000: "10,000,000",
	}
	for in, want := range cases {
		if got := groupThousands(in); got != want {
			t.Fatalf("groupThousands(%d) = %q, want %q", in, got, want)
		}
	}
}
