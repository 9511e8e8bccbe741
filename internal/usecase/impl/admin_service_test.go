package impl

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

func TestAdminServiceCreateProductSendsMultipart(t *testing.T) {
	api := newFakeAPI()
	svc := NewAdminService(api)

	api.stub("POST", "/admin/products", envelope(t, entity.Product{ID: "p1", Name: "Áo khoác"}))

	product, err := svc.CreateProduct(context.Background(), &usecase.ProductInput{
		Name:       "Áo khoác",
		Price:      350000,
		Stock:      10,
		CategoryID: "c1",
		IsFeatured: true,
	}, &usecase.ImageUpload{Filename: "jacket.jpg", Content: strings.NewReader("jpegdata")})
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)

	calls := api.callsTo("POST", "/admin/products")
	require.Len(t, calls, 1)
	assert.Equal(t, "Áo khoác", calls[0].Opts.Form["name"])
	assert.Equal(t, "350000", calls[0].Opts.Form["price"])
	assert.Equal(t, "true", calls[0].Opts.Form["isFeatured"])
	require.Len(t, calls[0].Opts.Files, 1)
	assert.Equal(t, "image", calls[0].Opts.Files[0].Field)
	assert.Equal(t, "jacket.jpg", calls[0].Opts.Files[0].Name)
}

func TestAdminServiceUpdateProductImageIsOptional(t *testing.T) {
	api := newFakeAPI()
	svc := NewAdminService(api)

	api.stub("PUT", "/admin/products/p1", envelope(t, entity.Product{ID: "p1"}))

	_, err := svc.UpdateProduct(context.Background(), "p1", &usecase.ProductInput{
		Name: "Áo khoác", Price: 320000, CategoryID: "c1",
	}, nil)
	require.NoError(t, err)

	calls := api.callsTo("PUT", "/admin/products/p1")
	require.Len(t, calls, 1)
	assert.Empty(t, calls[0].Opts.Files)
	assert.Equal(t, "320000", calls[0].Opts.Form["price"])
}

func TestAdminServiceUpdateCategorySendsForm(t *testing.T) {
	api := newFakeAPI()
	svc := NewAdminService(api)

	api.stub("PUT", "/admin/categories/c1", envelope(t, entity.Category{ID: "c1", Name: "Áo khoác"}))

	category, err := svc.UpdateCategory(context.Background(), "c1", &usecase.CategoryInput{
		Name: "Áo khoác", Description: "Đồ mùa đông",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "c1", category.ID)

	calls := api.callsTo("PUT", "/admin/categories/c1")
	require.Len(t, calls, 1)
	assert.Equal(t, "Áo khoác", calls[0].Opts.Form["name"])
	assert.Equal(t, "Đồ mùa đông", calls[0].Opts.Form["description"])
	assert.Empty(t, calls[0].Opts.Files)
}

func TestAdminServiceOrdersStatusFilter(t *testing.T) {
	api := newFakeAPI()
	svc := NewAdminService(api)
	ctx := context.Background()

	api.stub("GET", "/admin/orders", envelope(t, []*entity.Order{
		{ID: "o1", Status: entity.OrderPending},
	}))

	orders, err := svc.Orders(ctx, entity.OrderPending)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	calls := api.callsTo("GET", "/admin/orders")
	require.Len(t, calls, 1)
	assert.Equal(t, "pending", calls[0].Opts.Params["status"])

	// Unknown states never reach the backend.
	_, err = svc.Orders(ctx, entity.OrderStatus("refunded"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Len(t, api.callsTo("GET", "/admin/orders"), 1)
}

func TestAdminServiceUpdateOrderStatusValidatesState(t *testing.T) {
	api := newFakeAPI()
	svc := NewAdminService(api)
	ctx := context.Background()

	api.stub("PATCH", "/admin/orders/o1/status", envelope(t, entity.Order{
		ID: "o1", Status: entity.OrderShipping,
	}))

	order, err := svc.UpdateOrderStatus(ctx, "o1", entity.OrderShipping)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderShipping, order.Status)

	_, err = svc.UpdateOrderStatus(ctx, "o1", entity.OrderStatus("lost"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminServiceAccountLockAndFeedbackReply(t *testing.T) {
	api := newFakeAPI()
	svc := NewAdminService(api)
	ctx := context.Background()

	api.stub("PATCH", "/admin/accounts/a1/lock", envelope(t, map[string]any{"ok": true}))
	api.stub("POST", "/admin/feedbacks/f1/reply", envelope(t, map[string]any{"ok": true}))

	require.NoError(t, svc.SetAccountLocked(ctx, "a1", true))
	locks := api.callsTo("PATCH", "/admin/accounts/a1/lock")
	require.Len(t, locks, 1)
	body, ok := locks[0].Body.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, body["locked"])

	require.NoError(t, svc.ReplyFeedback(ctx, "f1", "Dạ shop còn size M ạ"))
	replies := api.callsTo("POST", "/admin/feedbacks/f1/reply")
	require.Len(t, replies, 1)
}
