package repository

import (
	"encoding/json"
	"os"
)

// schemaVersion tags every persisted collection so future shape changes can
// be migrated instead of silently misparsed.
const schemaVersion = 1

type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	Data          json.RawMessage `json:"data"`
}

func wrap(data any) (json.RawMessage, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{SchemaVersion: schemaVersion, Data: raw})
}

// unwrap decodes a versioned payload into out. A malformed envelope or body
// returns false; callers fall back to their default collection, which is the
// only corruption recovery this store offers.
func unwrap(raw json.RawMessage, out any) bool {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return false
	}
	if env.SchemaVersion != schemaVersion || len(env.Data) == 0 {
		return false
	}
	return json.Unmarshal(env.Data, out) == nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
