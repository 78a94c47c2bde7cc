// Package delivery holds the entry points that drive the use cases: the HTTP API and the in-process scheduler.
package delivery

import "context"

// Delivery is a long-running entry point started by the application.
type Delivery interface {
	// Serve blocks until the delivery stops. A graceful stop returns nil.
	Serve(ctx context.Context) error
}
