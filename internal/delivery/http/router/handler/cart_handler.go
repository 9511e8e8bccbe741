package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

// CartHandler serves the cart page and its mutations. Mutations answer
// JSON callers with the reconciled cart and form posts with a redirect
// back to the cart.
type CartHandler struct {
	base   *Base
	carts  usecase.CartUsecase
	toasts usecase.ToastUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(base *Base, carts usecase.CartUsecase, toasts usecase.ToastUsecase) *CartHandler {
	return &CartHandler{base: base, carts: carts, toasts: toasts}
}

// CartPage renders the cart.
func (h *CartHandler) CartPage(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	cart, err := h.carts.Cart(c.Request().Context(), sess)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "cart", h.base.Page(c, map[string]any{
		"Cart": cart,
	}))
}

// AddItem adds a product to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	productID := c.FormValue("productId")
	quantity, _ := strconv.Atoi(c.FormValue("quantity"))

	cart, err := h.carts.AddToCart(c.Request().Context(), sess, productID, quantity)
	if err != nil {
		return h.mutationError(c, err)
	}

	h.toasts.Show(sess.ID, "Đã thêm vào giỏ hàng", entity.ToastSuccess)

	return h.mutationDone(c, cart)
}

// UpdateItem sets a line item's quantity.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	quantity, _ := strconv.Atoi(c.FormValue("quantity"))

	cart, err := h.carts.UpdateQuantity(c.Request().Context(), sess, c.Param("id"), quantity)
	if err != nil {
		return h.mutationError(c, err)
	}

	return h.mutationDone(c, cart)
}

// RemoveItem drops one line item.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	cart, err := h.carts.RemoveFromCart(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return h.mutationError(c, err)
	}

	h.toasts.Show(sess.ID, "Đã xóa sản phẩm khỏi giỏ", entity.ToastInfo)

	return h.mutationDone(c, cart)
}

type batchDeleteInput struct {
	ProductIDs []string `json:"productIds" form:"productIds"`
}

// RemoveBatch drops several line items in one backend call.
func (h *CartHandler) RemoveBatch(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	input := &batchDeleteInput{}
	if err := c.Bind(input); err != nil {
		return response.BindingError(c)
	}

	cart, err := h.carts.RemoveMultiple(c.Request().Context(), sess, input.ProductIDs)
	if err != nil {
		return h.mutationError(c, err)
	}

	return h.mutationDone(c, cart)
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	cart, err := h.carts.ClearCart(c.Request().Context(), sess)
	if err != nil {
		return h.mutationError(c, err)
	}

	return h.mutationDone(c, cart)
}

func (h *CartHandler) mutationDone(c echo.Context, cart any) error {
	if middleware.WantsJSON(c) {
		return response.Success(c, http.StatusOK, cart, "")
	}

	return c.Redirect(http.StatusSeeOther, "/cart")
}

func (h *CartHandler) mutationError(c echo.Context, err error) error {
	sess := middleware.SessionFrom(c)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 &&
		appErr.ErrorCode() != domainerrors.ErrSessionExpired.ErrorCode() {
		h.toasts.Show(sess.ID, appErr.Message(), entity.ToastError)
		if !middleware.WantsJSON(c) {
			return c.Redirect(http.StatusSeeOther, "/cart")
		}
	}

	return errors.WithStack(err)
}
