// Package delivery defines the contract every inbound adapter implements.
package delivery

import "context"

// Delivery is a long-running inbound adapter (HTTP server, cron worker).
// Implementations block in Serve until shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
