package repositories

import (
	"context"
	"time"
)

// StateStore keeps serialized ephemeral view state with an expiration
type StateStore interface {
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Get returns false when the key is missing or expired
	Get(ctx context.Context, key string) (string, bool, error)

	Delete(ctx context.Context, key string) error
}
