// Package delivery holds the entry points that drive the application: the HTTP API and the reminder scheduler.
package delivery

import "context"

// Delivery is a long-running entry point started by the composition root.
type Delivery interface {
	Serve(ctx context.Context) error
}
