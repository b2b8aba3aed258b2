package repository

import (
	"context"

	"marketplace/internal/errors"
)

// ErrDuplicate is returned for a uniqueness violation whose constraint is not recognised.
var ErrDuplicate = errors.New("duplicate record")

// Pinger checks that the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
