// Package service declares the domain service interfaces implemented by the
// infra layer.
package service

import (
	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/domain/entity"
)

// IdentityClaims are the custom claims the backend embeds in the access
// token it issues at login. The web tier shares the signing secret and
// verifies them before trusting anything, the role in particular.
type IdentityClaims struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
	jwt.RegisteredClaims
}

// TokenService verifies backend-issued access tokens.
type TokenService interface {
	// ParseIdentity validates the token's signature and expiry and returns
	// the identity carried in its claims. Any failure means the request is
	// treated as anonymous.
	ParseIdentity(tokenString string) (*entity.Identity, error)
}
