// Package repository declares the persistence interfaces implemented by the
// infra layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartStore persists guest carts, keyed by browser session id. Signed-in
// carts are owned by the backend; this store only covers the local-only
// cart an anonymous visitor builds up before checkout forces a login.
type CartStore interface {
	// Load returns the stored cart, or an empty cart if none exists.
	Load(ctx context.Context, sessionID string) (*entity.Cart, error)

	// Save stores the cart and refreshes its TTL.
	Save(ctx context.Context, sessionID string, cart *entity.Cart) error

	// Delete drops the stored cart.
	Delete(ctx context.Context, sessionID string) error
}
