package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

type fakeTokens struct {
	identities map[string]*entity.Identity
}

func (f *fakeTokens) ParseIdentity(token string) (*entity.Identity, error) {
	if identity, ok := f.identities[token]; ok {
		return identity, nil
	}

	return nil, domainerrors.ErrSessionExpired
}

func newAuthFixture(t *testing.T) (*fakeAPI, *memCartStore, usecase.AuthUsecase, usecase.NotificationUsecase) {
	t.Helper()
	api := newFakeAPI()
	store := newMemCartStore()
	carts := NewCartService(api, store, discardLogger())
	notifications := NewNotificationService(notificationConfig(time.Hour), api, discardLogger())
	t.Cleanup(notifications.Shutdown)

	tokens := &fakeTokens{identities: map[string]*entity.Identity{
		"good-token": {ID: "u1", Name: "Lan", Username: "lan", Role: entity.RoleUser},
	}}
	auth := NewAuthService(api, tokens, carts, notifications, discardLogger())

	return api, store, auth, notifications
}

func TestAuthServiceLoginFailureStaysAnonymous(t *testing.T) {
	api, _, auth, _ := newAuthFixture(t)

	api.fail("POST", "/auth/login", domainerrors.NewBackendError(401, "Sai tên đăng nhập hoặc mật khẩu"))

	out, err := auth.Login(context.Background(), guestSession("s1"), &usecase.LoginInput{
		Username: "lan", Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, out)

	// The server's message survives verbatim, and this is not a session
	// expiry.
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "Sai tên đăng nhập hoặc mật khẩu", appErr.Message())
	assert.NotEqual(t, domainerrors.ErrSessionExpired.ErrorCode(), appErr.ErrorCode())
}

func TestAuthServiceLoginVerifiesTokenAndAdoptsGuestCart(t *testing.T) {
	api, store, auth, _ := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", &entity.Cart{Items: []entity.CartItem{
		{ProductID: "p1", Quantity: 2},
	}}))

	api.stub("POST", "/auth/login", envelope(t, map[string]any{
		"token": "good-token",
		"user":  map[string]any{"id": "spoofed", "role": "admin"},
	}))
	api.stub("POST", "/cart/merge", envelope(t, entity.Cart{}))
	api.stub("GET", "/notifications", envelope(t, []*entity.Notification{}))

	out, err := auth.Login(ctx, guestSession("s1"), &usecase.LoginInput{
		Username: "lan", Password: "secret",
	})
	require.NoError(t, err)

	// Identity comes from the verified token, not the response body.
	assert.Equal(t, "u1", out.Identity.ID)
	assert.Equal(t, entity.RoleUser, out.Identity.Role)
	assert.Equal(t, "good-token", out.Token)

	// Guest cart was pushed to the backend and dropped locally.
	require.Len(t, api.callsTo("POST", "/cart/merge"), 1)
	stored, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, stored.Items)

	// Polling starts with the first poll issued immediately.
	assert.Eventually(t, func() bool {
		return len(api.callsTo("GET", "/notifications")) >= 1
	}, time.Second, 5*time.Millisecond)
}

func TestAuthServiceLoginRejectsUnverifiableToken(t *testing.T) {
	api, _, auth, _ := newAuthFixture(t)

	api.stub("POST", "/auth/login", envelope(t, map[string]any{"token": "forged"}))

	_, err := auth.Login(context.Background(), guestSession("s1"), &usecase.LoginInput{
		Username: "lan", Password: "secret",
	})
	require.Error(t, err)
	assert.Empty(t, api.callsTo("POST", "/cart/merge"))
}

func TestAuthServiceProfileRequiresLogin(t *testing.T) {
	_, _, auth, _ := newAuthFixture(t)

	_, err := auth.Profile(context.Background(), guestSession("s1"))
	assert.ErrorIs(t, err, domainerrors.ErrLoginRequired)
}

func TestAuthServiceProfileKeepsVerifiedRole(t *testing.T) {
	api, _, auth, _ := newAuthFixture(t)

	api.stub("GET", "/users/me", envelope(t, map[string]any{
		"id": "u1", "name": "Lan", "email": "lan@example.com", "role": "admin",
	}))

	sess := &usecase.Session{
		ID:       "s1",
		Identity: &entity.Identity{ID: "u1", Role: entity.RoleUser},
		Token:    "good-token",
	}
	profile, err := auth.Profile(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "lan@example.com", profile.Email)

	// The backend payload cannot escalate the role decoded from the token.
	assert.Equal(t, entity.RoleUser, profile.Role)
}

func TestAuthServiceLogoutStopsPollingAndSwallowsBackendFailure(t *testing.T) {
	api, _, auth, notifications := newAuthFixture(t)
	ctx := context.Background()

	api.stub("GET", "/notifications", envelope(t, []*entity.Notification{
		{ID: "n1", UserID: "u1"},
	}))
	identity := &entity.Identity{ID: "u1", Role: entity.RoleUser}
	notifications.StartPolling(identity, "good-token")
	assert.Eventually(t, func() bool {
		return len(notifications.Notifications("u1")) == 1
	}, time.Second, 5*time.Millisecond)

	api.fail("POST", "/auth/logout", domainerrors.ErrBackendUnreachable)

	sess := &usecase.Session{ID: "s1", Identity: identity, Token: "good-token"}
	require.NoError(t, auth.Logout(ctx, sess))
	assert.Empty(t, notifications.Notifications("u1"))
}
