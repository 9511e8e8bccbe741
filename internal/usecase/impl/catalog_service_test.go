package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

func TestCatalogServiceProductsSendsQueryAsPublicCall(t *testing.T) {
	api := newFakeAPI()
	svc := NewCatalogService(api)

	api.stub("GET", "/products", envelope(t, usecase.ProductList{
		Products:   []*entity.Product{{ID: "p1", Name: "Áo thun"}},
		Pagination: usecase.Pagination{Page: 2, Limit: 12, Total: 30, Pages: 3},
	}))

	list, err := svc.Products(context.Background(), usecase.ProductQuery{
		Search:     "áo",
		CategoryID: "c1",
		Page:       2,
	})
	require.NoError(t, err)
	require.Len(t, list.Products, 1)
	assert.Equal(t, 3, list.Pagination.Pages)

	calls := api.callsTo("GET", "/products")
	require.Len(t, calls, 1)
	assert.True(t, calls[0].Opts.NoAuth)
	assert.Equal(t, "2", calls[0].Opts.Params["page"])
	assert.Equal(t, "12", calls[0].Opts.Params["limit"])
	assert.Equal(t, "áo", calls[0].Opts.Params["search"])
	assert.Equal(t, "c1", calls[0].Opts.Params["category"])
}

func TestCatalogServiceProductAndComments(t *testing.T) {
	api := newFakeAPI()
	svc := NewCatalogService(api)
	ctx := context.Background()

	api.stub("GET", "/products/p1", envelope(t, entity.Product{ID: "p1", Name: "Áo thun", Stock: 5}))
	api.stub("GET", "/products/p1/comments", envelope(t, []*entity.Comment{
		{ID: "cm1", Content: "Chất vải đẹp", Rating: 5},
	}))

	product, err := svc.Product(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 5, product.Stock)

	comments, err := svc.Comments(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, 5, comments[0].Rating)
}

func TestCatalogServiceAddCommentIsAuthenticated(t *testing.T) {
	api := newFakeAPI()
	svc := NewCatalogService(api)

	api.stub("POST", "/products/p1/comments", envelope(t, entity.Comment{
		ID: "cm1", Content: "Giao nhanh", Rating: 4,
	}))

	comment, err := svc.AddComment(context.Background(), "p1", &usecase.CommentInput{
		Content: "Giao nhanh", Rating: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "cm1", comment.ID)

	calls := api.callsTo("POST", "/products/p1/comments")
	require.Len(t, calls, 1)
	assert.False(t, calls[0].Opts.NoAuth)
}

func TestCatalogServiceSubmitFeedbackIsPublic(t *testing.T) {
	api := newFakeAPI()
	svc := NewCatalogService(api)

	api.stub("POST", "/feedbacks", envelope(t, map[string]any{"ok": true}))

	err := svc.SubmitFeedback(context.Background(), &usecase.FeedbackInput{
		Name: "Lan", Email: "lan@example.com", Subject: "Hỏi size", Message: "Shop còn size M không?",
	})
	require.NoError(t, err)

	calls := api.callsTo("POST", "/feedbacks")
	require.Len(t, calls, 1)
	assert.True(t, calls[0].Opts.NoAuth)
}
