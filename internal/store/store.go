// Package store keeps the latest rendered snapshot per location for the
// pull endpoints.
package store

import (
	"context"
	"errors"

	"github.com/couchcryptid/trmnl-weather/internal/domain"
)

// ErrNotFound is returned by Latest when no snapshot has been saved for a key.
var ErrNotFound = errors.New("snapshot not found")

// Store persists the most recent snapshot per location key.
type Store interface {
	Save(ctx context.Context, snap domain.Snapshot) error
	Latest(ctx context.Context, key string) (domain.Snapshot, error)
}
