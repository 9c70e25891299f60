// Package delivery defines the contract every transport entrypoint
// satisfies so the application core can start and stop them uniformly.
package delivery

import "context"

// Delivery is implemented by every transport server (HTTP today).
type Delivery interface {
	// Serve starts the transport and blocks until the context is cancelled
	// or the transport fails.
	Serve(ctx context.Context) error
}
