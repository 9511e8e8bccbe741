package impl

import (
	"context"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type catalogService struct {
	api service.APIClient
}

// NewCatalogService creates the catalog use case.
func NewCatalogService(api service.APIClient) usecase.CatalogUsecase {
	return &catalogService{api: api}
}

func (s *catalogService) Products(ctx context.Context, query usecase.ProductQuery) (*usecase.ProductList, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 12
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

	resp, err := s.api.Get(ctx, "/products", service.WithNoAuth(), service.WithParams(params))
	if err != nil {
		return nil, err
	}

	list := &usecase.ProductList{}
	if err := resp.Decode(list); err != nil {
		return nil, err
	}

	return list, nil
}

func (s *catalogService) Product(ctx context.Context, productID string) (*entity.Product, error) {
	resp, err := s.api.Get(ctx, "/products/"+productID, service.WithNoAuth())
	if err != nil {
		return nil, err
	}

	product := &entity.Product{}
	if err := resp.Decode(product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *catalogService) FeaturedProducts(ctx context.Context) ([]*entity.Product, error) {
	resp, err := s.api.Get(ctx, "/products/featured", service.WithNoAuth())
	if err != nil {
		return nil, err
	}

	var products []*entity.Product
	if err := resp.Decode(&products); err != nil {
		return nil, err
	}

	return products, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]*entity.Category, error) {
	resp, err := s.api.Get(ctx, "/categories", service.WithNoAuth())
	if err != nil {
		return nil, err
	}

	var categories []*entity.Category
	if err := resp.Decode(&categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (s *catalogService) Comments(ctx context.Context, productID string) ([]*entity.Comment, error) {
	resp, err := s.api.Get(ctx, "/products/"+productID+"/comments", service.WithNoAuth())
	if err != nil {
		return nil, err
	}

	var comments []*entity.Comment
	if err := resp.Decode(&comments); err != nil {
		return nil, err
	}

	return comments, nil
}

func (s *catalogService) AddComment(ctx context.Context, productID string, input *usecase.CommentInput) (*entity.Comment, error) {
	resp, err := s.api.Post(ctx, "/products/"+productID+"/comments", input)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{}
	if err := resp.Decode(comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *catalogService) SubmitFeedback(ctx context.Context, input *usecase.FeedbackInput) error {
	_, err := s.api.Post(ctx, "/feedbacks", input, service.WithNoAuth())

	return err
}
