package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// ShopHandler serves the public storefront pages.
type ShopHandler struct {
	base    *Base
	catalog usecase.CatalogUsecase
	toasts  usecase.ToastUsecase
	logger  *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler, injected by Fx.
func NewShopHandler(base *Base, catalog usecase.CatalogUsecase, toasts usecase.ToastUsecase, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{base: base, catalog: catalog, toasts: toasts, logger: logger}
}

// Home renders the landing page with categories and featured products.
func (h *ShopHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	featured, err := h.catalog.FeaturedProducts(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "home", h.base.Page(c, map[string]any{
		"Categories": categories,
		"Featured":   featured,
	}))
}

// Products renders the product listing with search, category filter and
// pagination.
func (h *ShopHandler) Products(c echo.Context) error {
	ctx := c.Request().Context()
	page, _ := strconv.Atoi(c.QueryParam("page"))

	query := usecase.ProductQuery{
		Search:     c.QueryParam("search"),
		CategoryID: c.QueryParam("category"),
		Page:       page,
	}

	list, err := h.catalog.Products(ctx, query)
	if err != nil {
		return errors.WithStack(err)
	}
	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "products", h.base.Page(c, map[string]any{
		"List":       list,
		"Categories": categories,
		"Query":      query.Search,
		"CategoryID": query.CategoryID,
	}))
}

// ProductDetail renders a single product with its reviews.
func (h *ShopHandler) ProductDetail(c echo.Context) error {
	ctx := c.Request().Context()
	productID := c.Param("id")

	product, err := h.catalog.Product(ctx, productID)
	if err != nil {
		return errors.WithStack(err)
	}
	comments, err := h.catalog.Comments(ctx, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "product", h.base.Page(c, map[string]any{
		"Product":  product,
		"Comments": comments,
	}))
}

// AddComment posts a review for a product.
func (h *ShopHandler) AddComment(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	productID := c.Param("id")

	input := &usecase.CommentInput{}
	if err := c.Bind(input); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(input); err != nil {
		return h.commentFormError(c, productID, err)
	}

	comment, err := h.catalog.AddComment(c.Request().Context(), productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.toasts.Show(sess.ID, "Cảm ơn bạn đã đánh giá sản phẩm", entity.ToastSuccess)
	if middleware.WantsJSON(c) {
		return response.Success(c, http.StatusCreated, comment, "")
	}

	return c.Redirect(http.StatusSeeOther, "/products/"+productID)
}

func (h *ShopHandler) commentFormError(c echo.Context, productID string, err error) error {
	ctx := c.Request().Context()
	product, productErr := h.catalog.Product(ctx, productID)
	if productErr != nil {
		return errors.WithStack(productErr)
	}
	comments, commentsErr := h.catalog.Comments(ctx, productID)
	if commentsErr != nil {
		return errors.WithStack(commentsErr)
	}

	return renderOrFieldErrors(c, err, "product", h.base.Page(c, map[string]any{
		"Product":  product,
		"Comments": comments,
	}))
}

// FeedbackForm renders the contact form.
func (h *ShopHandler) FeedbackForm(c echo.Context) error {
	return c.Render(http.StatusOK, "feedback", h.base.Page(c, nil))
}

// SubmitFeedback forwards the contact form to the backend.
func (h *ShopHandler) SubmitFeedback(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	input := &usecase.FeedbackInput{}
	if err := c.Bind(input); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(input); err != nil {
		return renderOrFieldErrors(c, err, "feedback", h.base.Page(c, nil))
	}

	if err := h.catalog.SubmitFeedback(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	h.toasts.Show(sess.ID, "Đã gửi liên hệ, chúng tôi sẽ phản hồi sớm", entity.ToastSuccess)
	if middleware.WantsJSON(c) {
		return response.Success(c, http.StatusOK, nil, "Đã gửi liên hệ")
	}

	return c.Redirect(http.StatusSeeOther, "/feedback")
}
