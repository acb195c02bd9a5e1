// Package storage defines the key-value persistence port the repositories
// sit on. Values are opaque JSON documents; repositories own the schema.
// The port keeps the business logic independent of the backing store, so the
// same logic runs against DynamoDB, a local file, or a test fake.
package storage

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for a key.
var ErrNotFound = errors.New("storage: key not found")

// Store is the pluggable storage port: get/set by key, JSON in/out.
// There is no cross-process locking; writes are last-write-wins at the
// granularity of a whole value.
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Put(ctx context.Context, key string, value json.RawMessage) error
}
