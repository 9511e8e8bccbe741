package impl

import (
	"context"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type adminService struct {
	api service.APIClient
}

// NewAdminService creates the back-office use case.
func NewAdminService(api service.APIClient) usecase.AdminUsecase {
	return &adminService{api: api}
}

func (s *adminService) Stats(ctx context.Context) (*usecase.DashboardStats, error) {
	resp, err := s.api.Get(ctx, "/admin/stats")
	if err != nil {
		return nil, err
	}

	stats := &usecase.DashboardStats{}
	if err := resp.Decode(stats); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *adminService) Products(ctx context.Context, query usecase.ProductQuery) (*usecase.ProductList, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 20
	}

	params := map[string]string{
		"page":  strconv.Itoa(query.Page),
		"limit": strconv.Itoa(query.Limit),
	}
	if query.Search != "" {
		params["search"] = query.Search
	}
	if query.CategoryID != "" {
		params["category"] = query.CategoryID
	}

	resp, err := s.api.Get(ctx, "/admin/products", service.WithParams(params))
	if err != nil {
		return nil, err
	}

	list := &usecase.ProductList{}
	if err := resp.Decode(list); err != nil {
		return nil, err
	}

	return list, nil
}

// productForm flattens the product input into multipart fields so an image
// can ride along in the same request.
func productForm(input *usecase.ProductInput) map[string]string {
	return map[string]string{
		"name":        input.Name,
		"description": input.Description,
		"price":       strconv.FormatFloat(input.Price, 'f', -1, 64),
		"stock":       strconv.Itoa(input.Stock),
		"categoryId":  input.CategoryID,
		"isFeatured":  strconv.FormatBool(input.IsFeatured),
	}
}

func withImage(opts []service.RequestOption, image *usecase.ImageUpload) []service.RequestOption {
	if image != nil {
		opts = append(opts, service.WithFile("image", image.Filename, image.Content))
	}

	return opts
}

func (s *adminService) CreateProduct(ctx context.Context, input *usecase.ProductInput, image *usecase.ImageUpload) (*entity.Product, error) {
	opts := withImage([]service.RequestOption{service.WithForm(productForm(input))}, image)

	resp, err := s.api.Post(ctx, "/admin/products", nil, opts...)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{}
	if err := resp.Decode(product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *adminService) UpdateProduct(ctx context.Context, productID string, input *usecase.ProductInput, image *usecase.ImageUpload) (*entity.Product, error) {
	opts := withImage([]service.RequestOption{service.WithForm(productForm(input))}, image)

	resp, err := s.api.Put(ctx, "/admin/products/"+productID, nil, opts...)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{}
	if err := resp.Decode(product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *adminService) DeleteProduct(ctx context.Context, productID string) error {
	_, err := s.api.Delete(ctx, "/admin/products/"+productID, nil)

	return err
}

func categoryForm(input *usecase.CategoryInput) map[string]string {
	return map[string]string{
		"name":        input.Name,
		"description": input.Description,
	}
}

func (s *adminService) CreateCategory(ctx context.Context, input *usecase.CategoryInput, image *usecase.ImageUpload) (*entity.Category, error) {
	opts := withImage([]service.RequestOption{service.WithForm(categoryForm(input))}, image)

	resp, err := s.api.Post(ctx, "/admin/categories", nil, opts...)
	if err != nil {
		return nil, err
	}

	category := &entity.Category{}
	if err := resp.Decode(category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *adminService) UpdateCategory(ctx context.Context, categoryID string, input *usecase.CategoryInput, image *usecase.ImageUpload) (*entity.Category, error) {
	opts := withImage([]service.RequestOption{service.WithForm(categoryForm(input))}, image)

	resp, err := s.api.Put(ctx, "/admin/categories/"+categoryID, nil, opts...)
	if err != nil {
		return nil, err
	}

	category := &entity.Category{}
	if err := resp.Decode(category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *adminService) DeleteCategory(ctx context.Context, categoryID string) error {
	_, err := s.api.Delete(ctx, "/admin/categories/"+categoryID, nil)

	return err
}

func (s *adminService) Orders(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	var opts []service.RequestOption
	if status != "" {
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed
		}
		opts = append(opts, service.WithParams(map[string]string{"status": string(status)}))
	}

	resp, err := s.api.Get(ctx, "/admin/orders", opts...)
	if err != nil {
		return nil, err
	}

	var orders []*entity.Order
	if err := resp.Decode(&orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (s *adminService) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed
	}

	resp, err := s.api.Patch(ctx, "/admin/orders/"+orderID+"/status", map[string]any{
		"status": string(status),
	})
	if err != nil {
		return nil, err
	}

	order := &entity.Order{}
	if err := resp.Decode(order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *adminService) Accounts(ctx context.Context) ([]*entity.Account, error) {
	resp, err := s.api.Get(ctx, "/admin/accounts")
	if err != nil {
		return nil, err
	}

	var accounts []*entity.Account
	if err := resp.Decode(&accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (s *adminService) SetAccountLocked(ctx context.Context, accountID string, locked bool) error {
	_, err := s.api.Patch(ctx, "/admin/accounts/"+accountID+"/lock", map[string]any{
		"locked": locked,
	})

	return err
}

func (s *adminService) Feedbacks(ctx context.Context) ([]*entity.Feedback, error) {
	resp, err := s.api.Get(ctx, "/admin/feedbacks")
	if err != nil {
		return nil, err
	}

	var feedbacks []*entity.Feedback
	if err := resp.Decode(&feedbacks); err != nil {
		return nil, err
	}

	return feedbacks, nil
}

func (s *adminService) ReplyFeedback(ctx context.Context, feedbackID, reply string) error {
	_, err := s.api.Post(ctx, "/admin/feedbacks/"+feedbackID+"/reply", map[string]any{
		"reply": reply,
	})

	return err
}

func (s *adminService) Comments(ctx context.Context, productID string) ([]*entity.Comment, error) {
	resp, err := s.api.Get(ctx, "/products/"+productID+"/comments")
	if err != nil {
		return nil, err
	}

	var comments []*entity.Comment
	if err := resp.Decode(&comments); err != nil {
		return nil, err
	}

	return comments, nil
}

func (s *adminService) DeleteComment(ctx context.Context, commentID string) error {
	_, err := s.api.Delete(ctx, "/admin/comments/"+commentID, nil)

	return err
}
