package response

import (
	"testing"
	"time"

	"lovedktech/internal/domain/currency"
	"lovedktech/internal/domain/entities"
)

func sampleOrder(status entities.OrderStatus) entities.Order {
	return entities.Order{
		ID:           "o-1",
		ServiceID:    "single-page",
		ServiceTitle: "Single Page Site",
		IconKey:      "layout",
		BasePrice:    400,
		Currency:     "EUR",
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Status:       status,
	}
}

func TestFromOrder_Tracker(t *testing.T) {
	rates := currency.NewTable()

	t.Run("in_progress marks first two stages", func(t *testing.T) {
		r := FromOrder(sampleOrder(entities.StatusInProgress), rates, currency.EUR)
		if r.StageIndex != 1 {
			t.Fatalf("expected stage index 1, got %d", r.StageIndex)
		}
		if len(r.Stages) != 4 {
			t.Fatalf("expected 4 stages, got %d", len(r.Stages))
		}
		if !r.Stages[0].Completed || !r.Stages[1].Completed {
			t.Errorf("expected first two stages completed: %+v", r.Stages)
		}
		if r.Stages[2].Completed || r.Stages[3].Completed {
			t.Errorf("expected later stages incomplete: %+v", r.Stages)
		}
		if !r.Stages[1].Current {
			t.Errorf("expected stage 1 current: %+v", r.Stages[1])
		}
	})

	t.Run("pending_payment yields stage index -1 and nothing completed", func(t *testing.T) {
		r := FromOrder(sampleOrder(entities.StatusPendingPayment), rates, currency.EUR)
		if r.StageIndex != -1 {
			t.Fatalf("expected stage index -1, got %d", r.StageIndex)
		}
		if r.Progress != 0 {
			t.Fatalf("expected progress 0, got %v", r.Progress)
		}
		for _, s := range r.Stages {
			if s.Completed || s.Current {
				t.Errorf("expected no stage completed or current: %+v", s)
			}
		}
	})

	t.Run("price rendered in requested currency", func(t *testing.T) {
		r := FromOrder(sampleOrder(entities.StatusPending), rates, currency.XOF)
		if r.PriceDisplay != "262,383 FCFA" {
			t.Fatalf("expected 262,383 FCFA, got %q", r.PriceDisplay)
		}
	})

	t.Run("unknown icon key falls back to layout", func(t *testing.T) {
		o := sampleOrder(entities.StatusPending)
		o.IconKey = "sparkles"
		r := FromOrder(o, rates, currency.EUR)
		if r.IconKey != "layout" {
			t.Fatalf("expected layout fallback, got %q", r.IconKey)
		}
	})
}
