package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

func checkoutInput() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		RecipientName:   "Trần Thị Lan",
		Phone:           "0901234567",
		ShippingAddress: "12 Nguyễn Huệ, Quận 1, TP.HCM",
	}
}

func TestOrderServiceCheckoutRequiresLogin(t *testing.T) {
	api := newFakeAPI()
	carts := NewCartService(api, newMemCartStore(), discardLogger())
	svc := NewOrderService(api, carts)

	_, err := svc.Checkout(context.Background(), guestSession("s1"), checkoutInput())
	assert.ErrorIs(t, err, domainerrors.ErrLoginRequired)
	assert.Empty(t, api.callsTo("POST", "/orders"))
}

func TestOrderServiceCheckoutRejectsEmptyCart(t *testing.T) {
	api := newFakeAPI()
	carts := NewCartService(api, newMemCartStore(), discardLogger())
	svc := NewOrderService(api, carts)

	api.stub("GET", "/cart", envelope(t, entity.Cart{}))

	_, err := svc.Checkout(context.Background(), userSession("s1"), checkoutInput())
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	assert.Empty(t, api.callsTo("POST", "/orders"))
}

func TestOrderServiceCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	api := newFakeAPI()
	carts := NewCartService(api, newMemCartStore(), discardLogger())
	svc := NewOrderService(api, carts)
	ctx := context.Background()

	api.stub("GET", "/cart", envelope(t, entity.Cart{Items: []entity.CartItem{
		{ProductID: "p1", Quantity: 2, Price: 120000},
	}}))
	api.stub("POST", "/orders", envelope(t, entity.Order{
		ID:     "o1",
		Status: entity.OrderPending,
		Items:  []entity.OrderItem{{ProductID: "p1", Quantity: 2, Price: 120000}},
	}))
	api.stub("DELETE", "/cart", envelope(t, entity.Cart{}))

	order, err := svc.Checkout(ctx, userSession("s1"), checkoutInput())
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, entity.OrderPending, order.Status)

	require.Len(t, api.callsTo("POST", "/orders"), 1)
	assert.Len(t, api.callsTo("DELETE", "/cart"), 1)
}

func TestOrderServiceOrderHistory(t *testing.T) {
	api := newFakeAPI()
	carts := NewCartService(api, newMemCartStore(), discardLogger())
	svc := NewOrderService(api, carts)
	ctx := context.Background()

	api.stub("GET", "/orders", envelope(t, []*entity.Order{
		{ID: "o1", Status: entity.OrderDelivered},
		{ID: "o2", Status: entity.OrderShipping},
	}))
	api.stub("GET", "/orders/o1", envelope(t, entity.Order{ID: "o1", Status: entity.OrderDelivered}))

	orders, err := svc.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	order, err := svc.Order(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderDelivered, order.Status)
}
