package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// DashboardStats is the back-office landing summary.
type DashboardStats struct {
	ProductCount  int     `json:"productCount"`
	OrderCount    int     `json:"orderCount"`
	UserCount     int     `json:"userCount"`
	PendingOrders int     `json:"pendingOrders"`
	Revenue       float64 `json:"revenue"`
}

// ProductInput is the admin product form. Image is optional on update.
type ProductInput struct {
	Name        string  `form:"name" validate:"required"`
	Description string  `form:"description"`
	Price       float64 `form:"price" validate:"required,gt=0"`
	Stock       int     `form:"stock" validate:"gte=0"`
	CategoryID  string  `form:"categoryId" validate:"required"`
	IsFeatured  bool    `form:"isFeatured"`
}

// CategoryInput is the admin category form.
type CategoryInput struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description"`
}

// ImageUpload is an uploaded image forwarded to the backend untouched.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// AdminUsecase is the back-office surface. Every operation proxies to the
// backend with the admin's token; the backend re-checks the role on its
// side as well.
type AdminUsecase interface {
	Stats(ctx context.Context) (*DashboardStats, error)

	Products(ctx context.Context, query ProductQuery) (*ProductList, error)
	CreateProduct(ctx context.Context, input *ProductInput, image *ImageUpload) (*entity.Product, error)
	UpdateProduct(ctx context.Context, productID string, input *ProductInput, image *ImageUpload) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID string) error

	CreateCategory(ctx context.Context, input *CategoryInput, image *ImageUpload) (*entity.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, input *CategoryInput, image *ImageUpload) (*entity.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error

	Orders(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)

	Accounts(ctx context.Context) ([]*entity.Account, error)
	SetAccountLocked(ctx context.Context, accountID string, locked bool) error

	Feedbacks(ctx context.Context) ([]*entity.Feedback, error)
	ReplyFeedback(ctx context.Context, feedbackID, reply string) error

	Comments(ctx context.Context, productID string) ([]*entity.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}
