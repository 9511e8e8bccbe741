package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type orderService struct {
	api   service.APIClient
	carts usecase.CartUsecase
}

// NewOrderService creates the order use case.
func NewOrderService(api service.APIClient, carts usecase.CartUsecase) usecase.OrderUsecase {
	return &orderService{api: api, carts: carts}
}

func (s *orderService) Checkout(ctx context.Context, sess *usecase.Session, input *usecase.CheckoutInput) (*entity.Order, error) {
	if !sess.IsAuthenticated() {
		return nil, domainerrors.ErrLoginRequired
	}

	cart, err := s.carts.Cart(ctx, sess)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	resp, err := s.api.Post(ctx, "/orders", input)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{}
	if err := resp.Decode(order); err != nil {
		return nil, err
	}

	// The backend empties its cart when the order lands; drop any local
	// remnant so the badge resets right away. The placed order stands even
	// if this cleanup fails.
	_, _ = s.carts.ClearCart(ctx, sess)

	return order, nil
}

func (s *orderService) Orders(ctx context.Context) ([]*entity.Order, error) {
	resp, err := s.api.Get(ctx, "/orders")
	if err != nil {
		return nil, err
	}

	var orders []*entity.Order
	if err := resp.Decode(&orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (s *orderService) Order(ctx context.Context, orderID string) (*entity.Order, error) {
	resp, err := s.api.Get(ctx, "/orders/"+orderID)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{}
	if err := resp.Decode(order); err != nil {
		return nil, err
	}

	return order, nil
}
