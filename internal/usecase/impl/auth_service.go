package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type authService struct {
	api           service.APIClient
	tokens        service.TokenService
	carts         usecase.CartUsecase
	notifications usecase.NotificationUsecase
	logger        *slog.Logger
}

// NewAuthService creates the auth use case.
func NewAuthService(
	api service.APIClient,
	tokens service.TokenService,
	carts usecase.CartUsecase,
	notifications usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		api:           api,
		tokens:        tokens,
		carts:         carts,
		notifications: notifications,
		logger:        logger,
	}
}

type loginPayload struct {
	Token string `json:"token"`
}

func (s *authService) Login(ctx context.Context, sess *usecase.Session, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	// NoAuth keeps a 401 here a plain business error (wrong credentials),
	// not a session expiry.
	resp, err := s.api.Post(ctx, "/auth/login", input, service.WithNoAuth())
	if err != nil {
		return nil, err
	}

	payload := loginPayload{}
	if err := resp.Decode(&payload); err != nil {
		return nil, err
	}

	// The identity is taken from the verified token, never from the
	// response body.
	identity, err := s.tokens.ParseIdentity(payload.Token)
	if err != nil {
		return nil, err
	}

	authedCtx := service.WithAccessToken(ctx, payload.Token)
	authed := &usecase.Session{ID: sess.ID, Identity: identity, Token: payload.Token}

	if err := s.carts.AdoptGuestCart(authedCtx, authed); err != nil {
		// Sign-in stands even when the guest cart cannot be merged.
		s.logger.Warn("guest cart adoption failed",
			slog.String("userID", identity.ID),
			slog.Any("error", err))
	}

	s.notifications.StartPolling(identity, payload.Token)

	return &usecase.LoginOutput{Identity: identity, Token: payload.Token}, nil
}

func (s *authService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	_, err := s.api.Post(ctx, "/auth/register", input, service.WithNoAuth())

	return err
}

func (s *authService) Logout(ctx context.Context, sess *usecase.Session) error {
	if sess.Identity != nil {
		s.notifications.StopPolling(sess.Identity.ID)
	}

	if _, err := s.api.Post(ctx, "/auth/logout", nil); err != nil {
		// The cookie is cleared regardless; a failed backend logout only
		// gets logged.
		s.logger.Warn("backend logout failed", slog.Any("error", err))
	}

	return nil
}

func (s *authService) Profile(ctx context.Context, sess *usecase.Session) (*entity.Identity, error) {
	if !sess.IsAuthenticated() {
		return nil, domainerrors.ErrLoginRequired
	}

	resp, err := s.api.Get(ctx, "/users/me")
	if err != nil {
		return nil, err
	}

	profile := entity.Identity{}
	if err := resp.Decode(&profile); err != nil {
		return nil, err
	}

	// The role on a profile payload is display data at best; the verified
	// token stays authoritative.
	profile.Role = sess.Identity.Role

	return &profile, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	_, err := s.api.Post(ctx, "/auth/forgot-password", map[string]any{
		"email": email,
	}, service.WithNoAuth())

	return err
}

func (s *authService) ResetPassword(ctx context.Context, token, password string) error {
	_, err := s.api.Post(ctx, "/auth/reset-password", map[string]any{
		"token":    token,
		"password": password,
	}, service.WithNoAuth())

	return err
}
