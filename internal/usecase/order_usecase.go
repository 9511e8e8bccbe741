package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutInput is the checkout form payload.
type CheckoutInput struct {
	RecipientName   string `json:"recipientName" form:"recipientName" validate:"required"`
	Phone           string `json:"phone" form:"phone" validate:"required"`
	ShippingAddress string `json:"shippingAddress" form:"shippingAddress" validate:"required"`
	Note            string `json:"note" form:"note"`
}

// OrderUsecase places and reads the signed-in shopper's orders. All order
// lifecycle logic lives backend-side.
type OrderUsecase interface {
	// Checkout places an order from the backend cart and clears the local
	// cart on confirmation. Requires an authenticated session.
	Checkout(ctx context.Context, sess *Session, input *CheckoutInput) (*entity.Order, error)

	// Orders lists the shopper's order history.
	Orders(ctx context.Context) ([]*entity.Order, error)

	// Order fetches a single order; ownership is enforced backend-side.
	Order(ctx context.Context, orderID string) (*entity.Order, error)
}
