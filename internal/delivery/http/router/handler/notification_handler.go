package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// NotificationHandler serves the notification page and its JSON polling
// endpoints.
type NotificationHandler struct {
	base          *Base
	notifications usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler,
// injected by Fx.
func NewNotificationHandler(base *Base, notifications usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{base: base, notifications: notifications}
}

// Page renders the notification list.
func (h *NotificationHandler) Page(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	return c.Render(http.StatusOK, "notifications", h.base.Page(c, map[string]any{
		"Notifications": h.notifications.Notifications(sess.Identity.ID),
	}))
}

// Poll returns the current notification state for the badge; the browser
// hits this between page loads.
func (h *NotificationHandler) Poll(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"notifications": h.notifications.Notifications(sess.Identity.ID),
		"hasUnread":     h.notifications.HasUnread(sess.Identity.ID),
	}, "")
}

// Refresh forces one immediate backend poll.
func (h *NotificationHandler) Refresh(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	notifications, err := h.notifications.Refresh(c.Request().Context(), sess.Identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// MarkRead marks one notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	if err := h.notifications.MarkAsRead(c.Request().Context(), sess.Identity, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	if middleware.WantsJSON(c) {
		return response.Success(c, http.StatusOK, nil, "")
	}

	return c.Redirect(http.StatusSeeOther, "/notifications")
}

// MarkAllRead marks every notification as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	if err := h.notifications.MarkAllAsRead(c.Request().Context(), sess.Identity); err != nil {
		return errors.WithStack(err)
	}

	if middleware.WantsJSON(c) {
		return response.Success(c, http.StatusOK, nil, "")
	}

	return c.Redirect(http.StatusSeeOther, "/notifications")
}
