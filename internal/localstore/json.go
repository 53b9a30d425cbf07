package localstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// LoadJSON decodes the JSON array stored under key. A missing key yields an
// empty slice and no error; malformed data yields an empty slice and the
// decode error, which callers only log.
func LoadJSON[T any](ctx context.Context, s Store, key string) ([]T, error) {
	raw, ok := s.Read(ctx, key)
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []T{}, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SaveJSON stores items as a JSON array under key, replacing the previous
// collection.
func SaveJSON[T any](ctx context.Context, s Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	s.Write(ctx, key, string(b))
	return nil
}
