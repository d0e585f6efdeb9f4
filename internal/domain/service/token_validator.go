package service

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// OperatorRole grants access to the write routes.
const OperatorRole = "operator"

// Claims defines the custom claims of an operator bearer token.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasRole reports whether the token carries role.
func (c *Claims) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

// TokenValidator checks bearer tokens issued outside this service.
type TokenValidator interface {
	// ValidateToken parses tokenString and verifies its signature, expiry and issuer.
	ValidateToken(tokenString string) (*Claims, error)
}
