package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/backend"
	"storefront/internal/usecase"
)

type stubTokens struct {
	identities map[string]*entity.Identity
}

func (s *stubTokens) ParseIdentity(token string) (*entity.Identity, error) {
	if identity, ok := s.identities[token]; ok {
		return identity, nil
	}

	return nil, domainerrors.ErrSessionExpired
}

type stubNotifications struct {
	ensured map[string]int
}

func (s *stubNotifications) StartPolling(*entity.Identity, string) {}

func (s *stubNotifications) EnsurePolling(identity *entity.Identity, _ string) {
	s.ensured[identity.ID]++
}

func (s *stubNotifications) StopPolling(string) {}

func (s *stubNotifications) Refresh(context.Context, *entity.Identity) ([]*entity.Notification, error) {
	return nil, nil
}

func (s *stubNotifications) Notifications(string) []*entity.Notification { return nil }

func (s *stubNotifications) HasUnread(string) bool { return false }

func (s *stubNotifications) MarkAsRead(context.Context, *entity.Identity, string) error {
	return nil
}

func (s *stubNotifications) MarkAllAsRead(context.Context, *entity.Identity) error { return nil }

func (s *stubNotifications) Shutdown() {}

func newTestAuth() (*AuthMiddleware, *stubNotifications) {
	tokens := &stubTokens{identities: map[string]*entity.Identity{
		"user-token":  {ID: "u1", Name: "Lan", Role: entity.RoleUser},
		"admin-token": {ID: "a1", Name: "Admin", Role: entity.RoleAdmin},
	}}
	notifications := &stubNotifications{ensured: map[string]int{}}

	return NewAuthMiddleware(tokens, notifications, &config.Config{}), notifications
}

func serve(t *testing.T, m *AuthMiddleware, req *http.Request, guards ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, *usecase.Session) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *usecase.Session
	handler := func(c echo.Context) error {
		seen = SessionFrom(c)

		return c.String(http.StatusOK, "page content")
	}

	chain := handler
	for i := len(guards) - 1; i >= 0; i-- {
		chain = guards[i](chain)
	}

	require.NoError(t, m.Resolve(chain)(c))

	return rec, seen
}

func TestResolveVerifiedTokenAttachesIdentity(t *testing.T) {
	m, _ := newTestAuth()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: backend.AccessTokenCookie, Value: "user-token"})
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "s1"})

	_, sess := serve(t, m, req)

	require.NotNil(t, sess)
	assert.Equal(t, "s1", sess.ID)
	require.True(t, sess.IsAuthenticated())
	assert.Equal(t, "u1", sess.Identity.ID)

	// The verified token rides on the request context for backend calls.
	assert.Equal(t, "user-token", sess.Token)
}

func TestResolveRestoresPollerForResumedSession(t *testing.T) {
	m, notifications := newTestAuth()

	// A still-valid token cookie after a restart: no login happened, yet
	// the identity must get its poller back.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: backend.AccessTokenCookie, Value: "user-token"})
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "s1"})

	serve(t, m, req)
	assert.Equal(t, 1, notifications.ensured["u1"])
}

func TestResolveLeavesPollersAloneForAnonymousRequests(t *testing.T) {
	m, notifications := newTestAuth()

	serve(t, m, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, notifications.ensured)
}

func TestResolveUnverifiableTokenStaysAnonymousAndClearsCookie(t *testing.T) {
	m, _ := newTestAuth()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: backend.AccessTokenCookie, Value: "forged"})

	rec, sess := serve(t, m, req)

	require.NotNil(t, sess)
	assert.False(t, sess.IsAuthenticated())

	var cleared bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == backend.AccessTokenCookie && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "expected the token cookie to be expired")
}

func TestResolveIssuesSessionCookieForNewVisitors(t *testing.T) {
	m, _ := newTestAuth()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rec, sess := serve(t, m, req)

	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.ID)

	var issued bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == SessionCookie && cookie.Value == sess.ID {
			issued = true
			assert.True(t, cookie.HttpOnly)
		}
	}
	assert.True(t, issued, "expected a session cookie")
}

func TestRequireAuthRedirectsAnonymousPages(t *testing.T) {
	m, _ := newTestAuth()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)

	rec, _ := serve(t, m, req, m.RequireAuth)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	assert.NotContains(t, rec.Body.String(), "page content")
}

func TestRequireAuthAnswersJSONCallersWithEnvelope(t *testing.T) {
	m, _ := newTestAuth()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)

	rec, _ := serve(t, m, req, m.RequireAuth)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect":"/login"`)
}

func TestRequireAdminRedirectsNonAdminWithoutRendering(t *testing.T) {
	m, _ := newTestAuth()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: backend.AccessTokenCookie, Value: "user-token"})
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "s1"})

	rec, _ := serve(t, m, req, m.RequireAuth, m.RequireAdmin)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	// Nothing admin-shaped leaks into the response body.
	assert.Empty(t, rec.Body.String())
}

func TestRequireAdminAllowsAdminRole(t *testing.T) {
	m, _ := newTestAuth()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: backend.AccessTokenCookie, Value: "admin-token"})
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "s1"})

	rec, sess := serve(t, m, req, m.RequireAuth, m.RequireAdmin)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, sess)
	assert.True(t, sess.Identity.IsAdmin())
}

// guard against accidental interface drift
var _ service.TokenService = (*stubTokens)(nil)
var _ usecase.NotificationUsecase = (*stubNotifications)(nil)
