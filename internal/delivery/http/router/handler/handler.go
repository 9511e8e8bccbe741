// Package handler contains the HTTP handlers for the storefront and the
// admin back office.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

// Base assembles the view model pieces every rendered page shares: the
// session, the cart badge count, the unread dot and the active toasts.
type Base struct {
	carts         usecase.CartUsecase
	notifications usecase.NotificationUsecase
	toasts        usecase.ToastUsecase
}

// NewBase is the constructor for Base, injected by Fx.
func NewBase(carts usecase.CartUsecase, notifications usecase.NotificationUsecase, toasts usecase.ToastUsecase) *Base {
	return &Base{carts: carts, notifications: notifications, toasts: toasts}
}

// Page merges the shared nav data into the page-specific view model.
func (b *Base) Page(c echo.Context, data map[string]any) map[string]any {
	if data == nil {
		data = map[string]any{}
	}

	sess := middleware.SessionFrom(c)
	data["Session"] = sess
	if _, ok := data["Query"]; !ok {
		data["Query"] = ""
	}

	data["CartCount"] = 0
	if cart, err := b.carts.Cart(c.Request().Context(), sess); err == nil {
		data["CartCount"] = cart.TotalQuantity()
	}

	data["HasUnread"] = false
	if sess.IsAuthenticated() {
		data["HasUnread"] = b.notifications.HasUnread(sess.Identity.ID)
	}

	data["Toasts"] = b.toasts.Active(sess.ID)

	return data
}

// renderOrFieldErrors re-renders a form page with per-field messages when
// the error is a ValidationError, and bubbles everything else up.
func renderOrFieldErrors(c echo.Context, err error, page string, data map[string]any) error {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		if middleware.WantsJSON(c) {
			return response.Error(c, validationErr)
		}
		data["FormErrors"] = validationErr.Fields()

		return c.Render(http.StatusUnprocessableEntity, page, data)
	}

	return err
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
