// Package delivery holds the entry points that drive the use cases.
package delivery

import "context"

// Delivery is a long-running entry point started by the application.
// Serve blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
