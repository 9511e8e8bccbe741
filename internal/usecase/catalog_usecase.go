package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductQuery narrows a product listing.
type ProductQuery struct {
	Search     string
	CategoryID string
	Page       int
	Limit      int
}

// Pagination mirrors the backend's paging metadata.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ProductList is a page of products.
type ProductList struct {
	Products   []*entity.Product `json:"products"`
	Pagination Pagination        `json:"pagination"`
}

// CommentInput is a new product review.
type CommentInput struct {
	Content string `json:"content" form:"content" validate:"required"`
	Rating  int    `json:"rating" form:"rating" validate:"required,min=1,max=5"`
}

// FeedbackInput is the contact form payload.
type FeedbackInput struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Subject string `json:"subject" form:"subject" validate:"required"`
	Message string `json:"message" form:"message" validate:"required"`
}

// CatalogUsecase reads the public catalog and accepts reviews/feedback.
type CatalogUsecase interface {
	Products(ctx context.Context, query ProductQuery) (*ProductList, error)
	Product(ctx context.Context, productID string) (*entity.Product, error)
	FeaturedProducts(ctx context.Context) ([]*entity.Product, error)
	Categories(ctx context.Context) ([]*entity.Category, error)
	Comments(ctx context.Context, productID string) ([]*entity.Comment, error)
	AddComment(ctx context.Context, productID string, input *CommentInput) (*entity.Comment, error)
	SubmitFeedback(ctx context.Context, input *FeedbackInput) error
}
