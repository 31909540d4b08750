// Package delivery defines the contract all transport servers implement.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, scheduler worker)
// started by the fx application and stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
