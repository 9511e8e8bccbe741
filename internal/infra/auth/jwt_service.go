// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// jwtService verifies access tokens issued by the backend using the shared
// HMAC signing secret. The web tier never issues tokens itself.
type jwtService struct {
	secret string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{secret: cfg.SecretKey.Access}, nil
}

// ParseIdentity validates signature and expiry and maps the claims onto an
// Identity. The role is accepted only when it is a known value; anything
// else fails closed.
func (s *jwtService) ParseIdentity(tokenString string) (*entity.Identity, error) {
	claims := &service.IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	role := entity.Role(claims.Role)
	if !role.IsValid() {
		return nil, errors.New("token carries an unknown role")
	}

	return &entity.Identity{
		ID:       claims.Subject,
		Name:     claims.Name,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     role,
		Avatar:   claims.Avatar,
	}, nil
}
