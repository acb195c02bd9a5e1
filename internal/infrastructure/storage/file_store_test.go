package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestFileStore_RoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	if _, err := s.Get(ctx, "catalog"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Put(ctx, "catalog", json.RawMessage(`{"schema_version":1}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Get(ctx, "catalog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"schema_version":1}` {
		t.Fatalf("unexpected value: %s", got)
	}

	// Whole-value overwrite, last write wins.
	if err := s.Put(ctx, "catalog", json.RawMessage(`{"schema_version":2}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err = s.Get(ctx, "catalog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"schema_version":2}` {
		t.Fatalf("unexpected value: %s", got)
	}
}
