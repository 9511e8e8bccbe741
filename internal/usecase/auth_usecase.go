package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// LoginInput is the login form payload.
type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginOutput carries the verified identity and the raw access token the
// delivery layer re-issues as an HTTP-only cookie.
type LoginOutput struct {
	Identity *entity.Identity
	Token    string
}

// RegisterInput is the registration form payload.
type RegisterInput struct {
	Name            string `json:"name" form:"name" validate:"required"`
	Username        string `json:"username" form:"username" validate:"required,min=3"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,eqfield=Password"`
}

// AuthUsecase handles the anonymous/authenticated transitions. All
// credential checks happen backend-side; the identity returned here is
// trusted only because it was decoded from the verified access token.
type AuthUsecase interface {
	// Login exchanges credentials for an access token, verifies the token,
	// starts notification polling and adopts the session's guest cart.
	Login(ctx context.Context, sess *Session, input *LoginInput) (*LoginOutput, error)

	// Register creates an account; the visitor still logs in afterwards.
	Register(ctx context.Context, input *RegisterInput) error

	// Logout invalidates the backend session and stops background polling.
	// The local identity is cleared by the delivery layer via the cookie.
	Logout(ctx context.Context, sess *Session) error

	// ForgotPassword asks the backend to send a reset email.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword completes a reset with the emailed token.
	ResetPassword(ctx context.Context, token, password string) error

	// Profile fetches the signed-in account's profile from the backend.
	Profile(ctx context.Context, sess *Session) (*entity.Identity, error)
}
