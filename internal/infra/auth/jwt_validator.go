// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"locinsight/config"
	"locinsight/internal/domain/service"
	"locinsight/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtValidator is a concrete implementation of the TokenValidator interface using HMAC-signed JWTs.
type jwtValidator struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTValidator is the constructor for jwtValidator. A disabled auth section yields nil,
// which leaves the operator routes open.
func NewJWTValidator(cfg *config.Config) (service.TokenValidator, error) {
	if !cfg.Auth.Enabled {
		return nil, nil
	}
	if cfg.Auth.Secret == "" {
		return nil, errors.New("auth secret must be provided when auth is enabled")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Auth.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Auth.Issuer))
	}

	return &jwtValidator{
		secret: []byte(cfg.Auth.Secret),
		parser: jwt.NewParser(opts...),
	}, nil
}

// ValidateToken checks the signature and registered claims of tokenString.
func (v *jwtValidator) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
