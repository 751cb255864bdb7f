package auth

import "boardhub/internal/domain/models"

// IdentityResolver verifies a bearer token from the hosted identity provider
// and resolves it into the identity handed to services. This abstraction
// keeps the middleware agnostic to how tokens are actually verified.
type IdentityResolver interface {
	// Resolve validates a token string and returns the identity it carries.
	// Returns an error if the token is invalid, expired, or has an invalid
	// signature.
	Resolve(tokenString string) (*models.Identity, error)

	// Close releases any resources held by the resolver (e.g. HTTP
	// connections for JWKS refresh).
	Close() error
}
