package middleware

import (
	"log/slog"
	"strings"

	"locinsight/internal/delivery/api/response"
	deliverycontext "locinsight/internal/delivery/context"
	domainerrors "locinsight/internal/domain/errors"
	"locinsight/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	bearerPrefix = "Bearer "
	claimsKey    = "claims"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Validator service.TokenValidator `optional:"true"`
	Logger    *slog.Logger
}

// AuthMiddleware guards operator routes with bearer tokens.
type AuthMiddleware struct {
	validator service.TokenValidator
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware. A nil validator disables the checks.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// Enabled reports whether tokens are checked.
func (m *AuthMiddleware) Enabled() bool {
	return m.validator != nil
}

// Authenticate validates the bearer token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.Enabled() {
			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.validator.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rejected bearer token", slog.Any("error", err))

			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid or expired token")
		}

		c.Set(claimsKey, claims)

		return next(c)
	}
}

// RequireRole checks the role of the authenticated caller. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.Enabled() {
				return next(c)
			}

			claims, ok := GetClaims(c)
			if !ok {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: role information missing")
			}
			if !claims.HasRole(role) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: require '"+role+"' role")
			}

			return next(c)
		}
	}
}

// GetClaims returns the claims stored by Authenticate.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*service.Claims)

	return claims, ok && claims != nil
}
