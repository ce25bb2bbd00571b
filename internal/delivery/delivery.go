// Package delivery defines the contract shared by the transport servers.
package delivery

import "context"

// Delivery is a serving surface of the application. Implementations register
// their own shutdown hooks on the fx lifecycle.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
