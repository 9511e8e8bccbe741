// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is a long-running serving surface started by main and stopped
// through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
