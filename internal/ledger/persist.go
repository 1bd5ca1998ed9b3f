package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/theirongolddev/pfin/internal/store"
)

// StorageKey is the key the ledger is persisted under.
const StorageKey = "pf_fixed_costs"

// Decode parses the persisted JSON form of a ledger.
func Decode(raw string) (Ledger, error) {
	var l Ledger
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		return nil, fmt.Errorf("decoding ledger: %w", err)
	}
	if l == nil {
		l = Ledger{}
	}
	return l, nil
}

// Encode renders l in its persisted JSON form.
func Encode(l Ledger) (string, error) {
	if l == nil {
		l = Ledger{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("encoding ledger: %w", err)
	}
	return string(data), nil
}

// Load reads the persisted ledger. Missing, unreadable or malformed data all
// yield an empty ledger; the error, if any, is returned for logging only.
func Load(kv store.KV) (Ledger, error) {
	raw, ok, err := kv.Get(StorageKey)
	if err != nil {
		return Ledger{}, err
	}
	if !ok || raw == "" {
		return Ledger{}, nil
	}
	l, err := Decode(raw)
	if err != nil {
		return Ledger{}, err
	}
	return l, nil
}

// Save persists l.
func Save(kv store.KV, l Ledger) error {
	raw, err := Encode(l)
	if err != nil {
		return err
	}
	return kv.Set(StorageKey, raw)
}

// ResetAll drops the persisted ledger and stores a fresh one seeded from
// catalog. The fresh ledger is returned even when a storage call fails.
func ResetAll(kv store.KV, catalog []string) (Ledger, error) {
	fresh := Fresh(catalog)
	if err := kv.Remove(StorageKey); err != nil {
		return fresh, err
	}
	return fresh, Save(kv, fresh)
}
