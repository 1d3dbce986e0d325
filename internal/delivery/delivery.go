// Package delivery holds the inbound adapters of the gateway.
package delivery

import "context"

// Delivery is a long-running inbound server started by the application runner.
type Delivery interface {
	Serve(ctx context.Context) error
}
