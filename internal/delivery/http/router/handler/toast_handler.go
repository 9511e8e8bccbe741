package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// ToastHandler exposes the session's toast queue to the browser, which
// polls it to animate show/exit transitions.
type ToastHandler struct {
	toasts usecase.ToastUsecase
}

// NewToastHandler is the constructor for ToastHandler, injected by Fx.
func NewToastHandler(toasts usecase.ToastUsecase) *ToastHandler {
	return &ToastHandler{toasts: toasts}
}

// Active lists the session's toasts in insertion order.
func (h *ToastHandler) Active(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	return response.Success(c, http.StatusOK, h.toasts.Active(sess.ID), "")
}

// Hide dismisses a toast ahead of its auto-dismiss window.
func (h *ToastHandler) Hide(c echo.Context) error {
	h.toasts.Hide(c.Param("id"))

	return response.Success(c, http.StatusOK, nil, "")
}
