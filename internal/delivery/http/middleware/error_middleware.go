package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
)

// ErrorMiddleware translates errors bubbling out of handlers into either
// the JSON envelope or, for an expired session on a page request, a
// redirect to the login form.
type ErrorMiddleware struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewErrorMiddleware creates the error handling middleware.
func NewErrorMiddleware(cfg *config.Config, logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{cfg: cfg, logger: logger}
}

// HandleHTTPError is installed as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// An expired session is terminal: the stale token cookie goes and
		// the visitor lands on the login form.
		if appErr.ErrorCode() == domainerrors.ErrSessionExpired.ErrorCode() {
			ClearTokenCookie(c, m.cfg)
			if WantsJSON(c) {
				_ = response.SessionExpired(c)
			} else {
				_ = c.Redirect(http.StatusSeeOther, "/login")
			}

			return
		}

		_ = response.Error(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, _ := httpErr.Message.(string)
		if message == "" {
			message = http.StatusText(httpErr.Code)
		}
		_ = c.JSON(httpErr.Code, response.Envelope{Success: false, Message: message})

		return
	}

	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, domainerrors.ErrInternalError)
}
