// Package metadata is the local key/value table behind the persisted
// session: a single `metadata` table with TEXT keys and values.
package metadata

import (
	"context"
)

// Repository stores string values by key.
//
// Get reports ok=false for a key that was never set or has been deleted;
// Set overwrites in place.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
