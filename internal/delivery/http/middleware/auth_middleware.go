package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/infra/backend"
	"storefront/internal/usecase"
)

// SessionCookie names the anonymous browser-session cookie.
const SessionCookie = "sid"

const sessionContextKey = "session"

// AuthMiddleware resolves the browser session on every request: it ensures
// a session id cookie and, when a token cookie is present, verifies it and
// attaches the decoded identity. Identity is trusted only as decoded from
// the verified token.
type AuthMiddleware struct {
	tokenSvc      service.TokenService
	notifications usecase.NotificationUsecase
	cfg           *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, notifications usecase.NotificationUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, notifications: notifications, cfg: cfg}
}

// Resolve builds the session and stores it on the echo context. A token
// that fails verification is dropped on the spot; the request continues
// anonymously.
func (m *AuthMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := &usecase.Session{ID: m.ensureSessionID(c)}

		if cookie, err := c.Cookie(backend.AccessTokenCookie); err == nil && cookie.Value != "" {
			identity, parseErr := m.tokenSvc.ParseIdentity(cookie.Value)
			if parseErr != nil {
				ClearTokenCookie(c, m.cfg)
			} else {
				sess.Identity = identity
				sess.Token = cookie.Value

				ctx := service.WithAccessToken(c.Request().Context(), cookie.Value)
				c.SetRequest(c.Request().WithContext(ctx))

				// A session resumed from a surviving cookie has no poller
				// yet; re-registering is a no-op for live ones.
				m.notifications.EnsurePolling(identity, cookie.Value)
			}
		}

		c.Set(sessionContextKey, sess)

		return next(c)
	}
}

// RequireAuth guards routes that need a signed-in identity. Pages redirect
// to the login form; JSON callers get the terminal 401 envelope.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !SessionFrom(c).IsAuthenticated() {
			if WantsJSON(c) {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success":  false,
					"message":  "Vui lòng đăng nhập để tiếp tục",
					"redirect": "/login",
				})
			}

			return c.Redirect(http.StatusSeeOther, "/login")
		}

		return next(c)
	}
}

// RequireAdmin sends non-admin identities back to the storefront without
// rendering any restricted content. Must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := SessionFrom(c)
		if sess.Identity == nil || !sess.Identity.IsAdmin() {
			return c.Redirect(http.StatusSeeOther, "/")
		}

		return next(c)
	}
}

func (m *AuthMiddleware) ensureSessionID(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.New().String()
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// SessionFrom returns the resolved session, or an empty anonymous one when
// the middleware did not run (tests hitting a handler directly).
func SessionFrom(c echo.Context) *usecase.Session {
	if sess, ok := c.Get(sessionContextKey).(*usecase.Session); ok {
		return sess
	}

	return &usecase.Session{}
}

// SetTokenCookie issues the HTTP-only access token cookie after login.
func SetTokenCookie(c echo.Context, cfg *config.Config, token string) {
	c.SetCookie(&http.Cookie{
		Name:     backend.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearTokenCookie expires the access token cookie.
func ClearTokenCookie(c echo.Context, cfg *config.Config) {
	c.SetCookie(&http.Cookie{
		Name:     backend.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// WantsJSON reports whether the caller expects the JSON envelope rather
// than a rendered page.
func WantsJSON(c echo.Context) bool {
	if c.Request().Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}

	accept := c.Request().Header.Get(echo.HeaderAccept)

	return strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, echo.MIMETextHTML)
}
