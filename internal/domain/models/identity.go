package models

import "github.com/golang-jwt/jwt/v5"

// Identity is the verified subject performing an operation, resolved by the
// external identity provider. Services receive it as an explicit parameter;
// a nil *Identity means the call is unauthenticated.
type Identity struct {
	SubjectID   string
	DisplayName string
}

// ProviderClaims is the JWT claims structure issued by the hosted identity
// provider. The display name arrives in the "name" claim.
type ProviderClaims struct {
	jwt.RegisteredClaims        // sub, iss, aud, exp, iat, ...
	Name                 string `json:"name"`
	SessionID            string `json:"sid"`
}

// Identity converts verified claims into the identity handed to services.
func (c *ProviderClaims) Identity() *Identity {
	return &Identity{
		SubjectID:   c.Subject,
		DisplayName: c.Name,
	}
}
