package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase manages the session's cart. Guest carts live in the local
// store; signed-in carts are owned by the backend and every mutation is an
// optimistic local change reconciled against the server's authoritative
// response (last server response wins).
type CartUsecase interface {
	// Cart returns the current cart for the session.
	Cart(ctx context.Context, sess *Session) (*entity.Cart, error)

	// AddToCart merges quantity into the existing line item for the product
	// or creates a new one. A merge clamps the resulting quantity to the
	// product's stock; a fresh add beyond stock fails.
	AddToCart(ctx context.Context, sess *Session, productID string, quantity int) (*entity.Cart, error)

	// UpdateQuantity sets a line item's quantity, clamped to [1, stock].
	// Quantities below 1 are a no-op; callers remove instead.
	UpdateQuantity(ctx context.Context, sess *Session, productID string, quantity int) (*entity.Cart, error)

	// RemoveFromCart drops a single line item.
	RemoveFromCart(ctx context.Context, sess *Session, productID string) (*entity.Cart, error)

	// RemoveMultiple drops several line items in one batched backend call.
	RemoveMultiple(ctx context.Context, sess *Session, productIDs []string) (*entity.Cart, error)

	// ClearCart empties the cart wholesale.
	ClearCart(ctx context.Context, sess *Session) (*entity.Cart, error)

	// AdoptGuestCart pushes a guest cart into the freshly signed-in
	// identity's backend cart and drops the local copy.
	AdoptGuestCart(ctx context.Context, sess *Session) error
}
