// Package delivery defines the contract every inbound adapter fulfills.
package delivery

import "context"

// Delivery is a long-running entry point of the application, such as the
// HTTP server or the sweep scheduler. Serve blocks until the delivery
// stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
