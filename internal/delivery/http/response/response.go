// Package response renders the unified JSON envelope shared with the
// backend, so browser-side code sees one shape everywhere.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "storefront/internal/domain/errors"
)

// Envelope is the uniform JSON response structure.
type Envelope struct {
	Success  bool                      `json:"success"`
	Message  string                    `json:"message,omitempty"`
	Data     any                       `json:"data,omitempty"`
	Errors   []domainerrors.FieldError `json:"errors,omitempty"`
	Redirect string                    `json:"redirect,omitempty"`
}

// Success writes a successful envelope.
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a failed envelope from an AppError.
func Error(c echo.Context, appErr domainerrors.AppError) error {
	env := Envelope{
		Success: false,
		Message: appErr.Message(),
	}
	if v, ok := appErr.(*domainerrors.ValidationError); ok {
		env.Errors = v.Fields()
	}

	return c.JSON(appErr.HTTPCode(), env)
}

// SessionExpired writes the terminal 401 envelope with a redirect hint for
// JSON callers; page requests get an HTTP redirect instead.
func SessionExpired(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, Envelope{
		Success:  false,
		Message:  domainerrors.ErrSessionExpired.Message(),
		Redirect: "/login",
	})
}

// BindingError writes a 400 envelope for unparseable input.
func BindingError(c echo.Context) error {
	return Error(c, domainerrors.ErrValidationFailed)
}
