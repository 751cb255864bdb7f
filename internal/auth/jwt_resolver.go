package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"boardhub/internal/domain"
	"boardhub/internal/domain/models"
)

// JWKSIdentityResolver implements IdentityResolver by verifying provider JWTs
// against the provider's published JWKS.
type JWKSIdentityResolver struct {
	jwks   keyfunc.Keyfunc
	logger *slog.Logger
}

// NewIdentityResolver creates a resolver that fetches public keys from the
// identity provider's JWKS endpoint. Keys are cached and refreshed by keyfunc
// based on HTTP cache headers.
func NewIdentityResolver(jwksURL string, logger *slog.Logger) (IdentityResolver, error) {
	if jwksURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}

	jwks, err := keyfunc.NewDefaultCtx(context.Background(), []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("create JWKS client: %w", err)
	}

	logger.Info("identity resolver initialized", "jwks_url", jwksURL)

	return &JWKSIdentityResolver{
		jwks:   jwks,
		logger: logger,
	}, nil
}

// Resolve validates a JWT and extracts the subject and display name.
func (r *JWKSIdentityResolver) Resolve(tokenString string) (*models.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.ProviderClaims{}, r.jwks.Keyfunc)
	if err != nil {
		r.logger.Debug("token parse failed", "error", err)
		return nil, domain.ErrUnauthorized
	}

	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	// Prevent algorithm confusion attacks - allow only RS256 or ES256
	switch token.Method.Alg() {
	case "RS256", "ES256":
		// allowed
	default:
		r.logger.Warn("token uses unexpected algorithm", "algorithm", token.Method.Alg())
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.ProviderClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// The subject claim is the user ID everything else keys on
	if claims.Subject == "" {
		r.logger.Debug("token missing subject claim")
		return nil, domain.ErrUnauthorized
	}

	return claims.Identity(), nil
}

// Close releases resolver resources. keyfunc v3 manages its own refresh
// lifecycle, so this is a no-op kept for graceful shutdown symmetry.
func (r *JWKSIdentityResolver) Close() error {
	r.logger.Info("identity resolver closed")
	return nil
}
