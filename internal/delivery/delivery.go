// Package delivery defines the long-running entry points started by the binaries.
package delivery

import "context"

// Delivery is a server or consumer started in its own goroutine by fx.Invoke.
type Delivery interface {
	Serve(ctx context.Context) error
}
