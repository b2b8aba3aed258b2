// Package delivery groups the process entry points (HTTP API, scheduler) started by cmd/marketplace.
package delivery

import "context"

// Delivery is a long-running server started after the fx graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
