package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

var orderStatuses = []entity.OrderStatus{
	entity.OrderPending,
	entity.OrderConfirmed,
	entity.OrderShipping,
	entity.OrderDelivered,
	entity.OrderCancelled,
}

// AdminHandler serves the back office. Routes are mounted behind
// RequireAuth + RequireAdmin; the backend re-checks the role on every
// proxied call.
type AdminHandler struct {
	base    *Base
	admin   usecase.AdminUsecase
	catalog usecase.CatalogUsecase
	toasts  usecase.ToastUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(base *Base, admin usecase.AdminUsecase, catalog usecase.CatalogUsecase, toasts usecase.ToastUsecase) *AdminHandler {
	return &AdminHandler{base: base, admin: admin, catalog: catalog, toasts: toasts}
}

// Dashboard renders the stats overview.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.admin.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "admin_dashboard", h.base.Page(c, map[string]any{
		"Stats": stats,
	}))
}

// Products renders the product management list.
func (h *AdminHandler) Products(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))

	list, err := h.admin.Products(c.Request().Context(), usecase.ProductQuery{
		Search: c.QueryParam("search"),
		Page:   page,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "admin_products", h.base.Page(c, map[string]any{
		"List": list,
	}))
}

// NewProductForm renders the empty product form.
func (h *AdminHandler) NewProductForm(c echo.Context) error {
	categories, err := h.catalog.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "admin_product_form", h.base.Page(c, map[string]any{
		"Categories": categories,
		"Action":     "/admin/products",
	}))
}

// EditProductForm renders the form pre-filled with an existing product.
func (h *AdminHandler) EditProductForm(c echo.Context) error {
	ctx := c.Request().Context()
	productID := c.Param("id")

	product, err := h.catalog.Product(ctx, productID)
	if err != nil {
		return errors.WithStack(err)
	}
	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "admin_product_form", h.base.Page(c, map[string]any{
		"Product":    product,
		"Categories": categories,
		"Action":     "/admin/products/" + productID,
	}))
}

func (h *AdminHandler) bindProductInput(c echo.Context) (*usecase.ProductInput, *usecase.ImageUpload, error) {
	input := &usecase.ProductInput{}
	if err := c.Bind(input); err != nil {
		return nil, nil, err
	}
	if err := c.Validate(input); err != nil {
		return nil, nil, err
	}

	image, err := formImage(c)
	if err != nil {
		return nil, nil, err
	}

	return input, image, nil
}

// formImage extracts the optional uploaded image, passed through to the
// backend untouched.
func formImage(c echo.Context) (*usecase.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// Missing file part means no new image.
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open uploaded image")
	}

	return &usecase.ImageUpload{Filename: fileHeader.Filename, Content: file}, nil
}

// CreateProduct creates a product from the multipart form.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	input, image, err := h.bindProductInput(c)
	if err != nil {
		return h.productFormError(c, err, "/admin/products")
	}

	if _, err := h.admin.CreateProduct(c.Request().Context(), input, image); err != nil {
		return errors.WithStack(err)
	}

	h.toasts.Show(middleware.SessionFrom(c).ID, "Đã thêm sản phẩm", entity.ToastSuccess)

	return c.Redirect(http.StatusSeeOther, "/admin/products")
}

// UpdateProduct updates a product; the image is optional.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	productID := c.Param("id")

	input, image, err := h.bindProductInput(c)
	if err != nil {
		return h.productFormError(c, err, "/admin/products/"+productID)
	}

	if _, err := h.admin.UpdateProduct(c.Request().Context(), productID, input, image); err != nil {
		return errors.WithStack(err)
	}

	h.toasts.Show(middleware.SessionFrom(c).ID, "Đã cập nhật sản phẩm", entity.ToastSuccess)

	return c.Redirect(http.StatusSeeOther, "/admin/products")
}

func (h *AdminHandler) productFormError(c echo.Context, err error, action string) error {
	categories, catErr := h.catalog.Categories(c.Request().Context())
	if catErr != nil {
		return errors.WithStack(catErr)
	}

	return renderOrFieldErrors(c, err, "admin_product_form", h.base.Page(c, map[string]any{
		"Categories": categories,
		"Action":     action,
	}))
}

// DeleteProduct removes a product.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	if err := h.admin.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	h.toasts.Show(middleware.SessionFrom(c).ID, "Đã xóa sản phẩm", entity.ToastInfo)

	return c.Redirect(http.StatusSeeOther, "/admin/products")
}

// Categories renders category management.
func (h *AdminHandler) Categories(c echo.Context) error {
	categories, err := h.catalog.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "admin_categories", h.base.Page(c, map[string]any{
		"Categories": categories,
	}))
}

// CreateCategory creates a category from the multipart form.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	input := &usecase.CategoryInput{}
	if err := c.Bind(input); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(input); err != nil {
		categories, catErr := h.catalog.Categories(c.Request().Context())
		if catErr != nil {
			return errors.WithStack(catErr)
		}

		return renderOrFieldErrors(c, err, "admin_categories", h.base.Page(c, map[string]any{
			"Categories": categories,
		}))
	}

	image, err := formImage(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.admin.CreateCategory(c.Request().Context(), input, image); err != nil {
		return errors.WithStack(err)
	}

	h.toasts.Show(middleware.SessionFrom(c).ID, "Đã thêm danh mục", entity.ToastSuccess)

	return c.Redirect(http.StatusSeeOther, "/admin/categories")
}

// UpdateCategory updates a category from its inline edit form.
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	categoryID := c.Param("id")

	input := &usecase.CategoryInput{}
	if err := c.Bind(input); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(input); err != nil {
		categories, catErr := h.catalog.Categories(c.Request().Context())
		if catErr != nil {
			return errors.WithStack(catErr)
		}

		return renderOrFieldErrors(c, err, "admin_categories", h.base.Page(c, map[string]any{
			"Categories": categories,
		}))
	}

	image, err := formImage(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.admin.UpdateCategory(c.Request().Context(), categoryID, input, image); err != nil {
		return errors.WithStack(err)
	}

	h.toasts.Show(middleware.SessionFrom(c).ID, "Đã cập nhật danh mục", entity.ToastSuccess)

	return c.Redirect(http.StatusSeeOther, "/admin/categories")
}

// DeleteCategory removes a category.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	if err := h.admin.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	h.toasts.Show(middleware.SessionFrom(c).ID, "Đã xóa danh mục", entity.ToastInfo)

	return c.Redirect(http.StatusSeeOther, "/admin/categories")
}

// Orders renders the order management list, optionally filtered by status.
func (h *AdminHandler) Orders(c echo.Context) error {
	status := entity.OrderStatus(c.QueryParam("status"))

	orders, err := h.admin.Orders(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "admin_orders", h.base.Page(c, map[string]any{
		"Orders":   orders,
		"Statuses": orderStatuses,
	}))
}

// UpdateOrderStatus moves an order through its lifecycle.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	status := entity.OrderStatus(c.FormValue("status"))

	if _, err := h.admin.UpdateOrderStatus(c.Request().Context(), c.Param("id"), status); err != nil {
		return errors.WithStack(err)
	}

	h.toasts.Show(middleware.SessionFrom(c).ID, "Đã cập nhật trạng thái đơn hàng", entity.ToastSuccess)

	return c.Redirect(http.StatusSeeOther, "/admin/orders")
}

// Accounts renders the customer account list.
func (h *AdminHandler) Accounts(c echo.Context) error {
	accounts, err := h.admin.Accounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "admin_accounts", h.base.Page(c, map[string]any{
		"Accounts": accounts,
	}))
}

// SetAccountLocked locks or unlocks a customer account.
func (h *AdminHandler) SetAccountLocked(c echo.Context) error {
	locked := c.FormValue("locked") == "true"

	if err := h.admin.SetAccountLocked(c.Request().Context(), c.Param("id"), locked); err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusSeeOther, "/admin/accounts")
}

// Feedbacks renders the contact messages.
func (h *AdminHandler) Feedbacks(c echo.Context) error {
	feedbacks, err := h.admin.Feedbacks(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "admin_feedbacks", h.base.Page(c, map[string]any{
		"Feedbacks": feedbacks,
	}))
}

// ReplyFeedback answers a contact message; the backend notifies the sender.
func (h *AdminHandler) ReplyFeedback(c echo.Context) error {
	reply := c.FormValue("reply")

	if err := h.admin.ReplyFeedback(c.Request().Context(), c.Param("id"), reply); err != nil {
		return errors.WithStack(err)
	}

	h.toasts.Show(middleware.SessionFrom(c).ID, "Đã gửi phản hồi", entity.ToastSuccess)

	return c.Redirect(http.StatusSeeOther, "/admin/feedbacks")
}

// Comments renders review moderation for one product.
func (h *AdminHandler) Comments(c echo.Context) error {
	productID := c.QueryParam("product")

	var comments []*entity.Comment
	if productID != "" {
		var err error
		comments, err = h.admin.Comments(c.Request().Context(), productID)
		if err != nil {
			return errors.WithStack(err)
		}
	}

	return c.Render(http.StatusOK, "admin_comments", h.base.Page(c, map[string]any{
		"ProductID": productID,
		"Comments":  comments,
	}))
}

// DeleteComment removes a review.
func (h *AdminHandler) DeleteComment(c echo.Context) error {
	if err := h.admin.DeleteComment(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	h.toasts.Show(middleware.SessionFrom(c).ID, "Đã xóa đánh giá", entity.ToastInfo)

	return c.Redirect(http.StatusSeeOther, "/admin/comments")
}
