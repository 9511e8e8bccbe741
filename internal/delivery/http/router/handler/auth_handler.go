package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

// AuthHandler serves the login/register/password flows and owns the token
// cookie lifecycle.
type AuthHandler struct {
	base   *Base
	auth   usecase.AuthUsecase
	toasts usecase.ToastUsecase
	cfg    *config.Config
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(base *Base, auth usecase.AuthUsecase, toasts usecase.ToastUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{base: base, auth: auth, toasts: toasts, cfg: cfg}
}

// LoginForm renders the login page. Signed-in visitors go home.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	if middleware.SessionFrom(c).IsAuthenticated() {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	return c.Render(http.StatusOK, "login", h.base.Page(c, nil))
}

// Login exchanges credentials for the access token cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	input := &usecase.LoginInput{}
	if err := c.Bind(input); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(input); err != nil {
		return renderOrFieldErrors(c, err, "login", h.base.Page(c, map[string]any{
			"Username": input.Username,
		}))
	}

	out, err := h.auth.Login(c.Request().Context(), sess, input)
	if err != nil {
		// A failed login stays on the form with the server's message; it
		// never bounces through the session-expired path.
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
			if middleware.WantsJSON(c) {
				return response.Error(c, appErr)
			}

			return c.Render(http.StatusUnauthorized, "login", h.base.Page(c, map[string]any{
				"Username": input.Username,
				"FormErrors": []domainerrors.FieldError{
					{Field: "username", Message: appErr.Message()},
				},
			}))
		}

		return errors.WithStack(err)
	}

	middleware.SetTokenCookie(c, h.cfg, out.Token)
	h.toasts.Show(sess.ID, "Chào mừng "+out.Identity.Name, entity.ToastSuccess)

	if middleware.WantsJSON(c) {
		return response.Success(c, http.StatusOK, out.Identity, "Đăng nhập thành công")
	}
	if out.Identity.IsAdmin() {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// RegisterForm renders the registration page.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	if middleware.SessionFrom(c).IsAuthenticated() {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	return c.Render(http.StatusOK, "register", h.base.Page(c, nil))
}

// Register creates an account and sends the visitor to the login form.
func (h *AuthHandler) Register(c echo.Context) error {
	input := &usecase.RegisterInput{}
	if err := c.Bind(input); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(input); err != nil {
		return renderOrFieldErrors(c, err, "register", h.base.Page(c, nil))
	}

	if err := h.auth.Register(c.Request().Context(), input); err != nil {
		return renderOrFieldErrors(c, err, "register", h.base.Page(c, nil))
	}

	h.toasts.Show(middleware.SessionFrom(c).ID, "Đăng ký thành công, mời bạn đăng nhập", entity.ToastSuccess)
	if middleware.WantsJSON(c) {
		return response.Success(c, http.StatusCreated, nil, "Đăng ký thành công")
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}

// Logout clears the token cookie and invalidates the backend session.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	if err := h.auth.Logout(c.Request().Context(), sess); err != nil {
		return errors.WithStack(err)
	}

	middleware.ClearTokenCookie(c, h.cfg)
	if middleware.WantsJSON(c) {
		return response.Success(c, http.StatusOK, nil, "Đã đăng xuất")
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// Profile renders the signed-in account's profile page.
func (h *AuthHandler) Profile(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	profile, err := h.auth.Profile(c.Request().Context(), sess)
	if err != nil {
		return errors.WithStack(err)
	}

	if middleware.WantsJSON(c) {
		return response.Success(c, http.StatusOK, profile, "")
	}

	return c.Render(http.StatusOK, "profile", h.base.Page(c, map[string]any{
		"Profile": profile,
	}))
}

// ForgotPasswordForm renders the reset-request page.
func (h *AuthHandler) ForgotPasswordForm(c echo.Context) error {
	return c.Render(http.StatusOK, "forgot_password", h.base.Page(c, nil))
}

// ForgotPassword asks the backend to email a reset link.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	email := c.FormValue("email")
	if email == "" {
		return renderOrFieldErrors(c, domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "email", Message: "Trường này là bắt buộc"},
		}), "forgot_password", h.base.Page(c, nil))
	}

	if err := h.auth.ForgotPassword(c.Request().Context(), email); err != nil {
		return errors.WithStack(err)
	}

	h.toasts.Show(middleware.SessionFrom(c).ID, "Đã gửi email đặt lại mật khẩu", entity.ToastInfo)
	if middleware.WantsJSON(c) {
		return response.Success(c, http.StatusOK, nil, "Đã gửi email")
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}

// ResetPasswordForm renders the reset form carrying the emailed token.
func (h *AuthHandler) ResetPasswordForm(c echo.Context) error {
	return c.Render(http.StatusOK, "reset_password", h.base.Page(c, map[string]any{
		"Token": c.QueryParam("token"),
	}))
}

// ResetPassword completes the reset with the emailed token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	token := c.FormValue("token")
	password := c.FormValue("password")
	if token == "" || password == "" {
		return renderOrFieldErrors(c, domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "password", Message: "Trường này là bắt buộc"},
		}), "reset_password", h.base.Page(c, map[string]any{"Token": token}))
	}

	if err := h.auth.ResetPassword(c.Request().Context(), token, password); err != nil {
		return errors.WithStack(err)
	}

	h.toasts.Show(middleware.SessionFrom(c).ID, "Mật khẩu đã được đặt lại", entity.ToastSuccess)

	return c.Redirect(http.StatusSeeOther, "/login")
}
