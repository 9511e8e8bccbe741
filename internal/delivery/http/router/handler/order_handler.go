package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

// OrderHandler serves checkout and order history for the signed-in shopper.
type OrderHandler struct {
	base   *Base
	orders usecase.OrderUsecase
	carts  usecase.CartUsecase
	toasts usecase.ToastUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(base *Base, orders usecase.OrderUsecase, carts usecase.CartUsecase, toasts usecase.ToastUsecase) *OrderHandler {
	return &OrderHandler{base: base, orders: orders, carts: carts, toasts: toasts}
}

// CheckoutForm renders the checkout page with the cart summary.
func (h *OrderHandler) CheckoutForm(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	cart, err := h.carts.Cart(c.Request().Context(), sess)
	if err != nil {
		return errors.WithStack(err)
	}
	if len(cart.Items) == 0 {
		return c.Redirect(http.StatusSeeOther, "/cart")
	}

	return c.Render(http.StatusOK, "checkout", h.base.Page(c, map[string]any{
		"Cart": cart,
	}))
}

// Checkout places the order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	input := &usecase.CheckoutInput{}
	if err := c.Bind(input); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(input); err != nil {
		cart, cartErr := h.carts.Cart(c.Request().Context(), sess)
		if cartErr != nil {
			return errors.WithStack(cartErr)
		}

		return renderOrFieldErrors(c, err, "checkout", h.base.Page(c, map[string]any{
			"Cart": cart,
		}))
	}

	toastID := h.toasts.Show(sess.ID, "Đang đặt hàng...", entity.ToastLoading)

	order, err := h.orders.Checkout(c.Request().Context(), sess, input)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			h.toasts.Update(toastID, appErr.Message(), entity.ToastError)
		} else {
			h.toasts.Hide(toastID)
		}

		return errors.WithStack(err)
	}

	h.toasts.Update(toastID, "Đặt hàng thành công", entity.ToastSuccess)
	if middleware.WantsJSON(c) {
		return response.Success(c, http.StatusCreated, order, "Đặt hàng thành công")
	}

	return c.Redirect(http.StatusSeeOther, "/orders/"+order.ID)
}

// Orders renders the shopper's order history.
func (h *OrderHandler) Orders(c echo.Context) error {
	orders, err := h.orders.Orders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "orders", h.base.Page(c, map[string]any{
		"Orders": orders,
	}))
}

// OrderDetail renders one order.
func (h *OrderHandler) OrderDetail(c echo.Context) error {
	order, err := h.orders.Order(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "order", h.base.Page(c, map[string]any{
		"Order": order,
	}))
}
