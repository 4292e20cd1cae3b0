package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"moment/internal/domain/policy"
	"moment/pkg/errors"
	"moment/pkg/response"
)

const principalKey = "principal"

// TokenVerifier is the slice of the identity provider the gateway needs:
// a bearer token in, an authenticated principal out.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (*policy.Principal, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate rejects requests without a valid bearer token and stores the
// verified principal on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, err := m.principalFromRequest(c)
		if err != nil {
			return response.Error(c, err)
		}

		c.Set(principalKey, principal)
		return next(c)
	}
}

func (m *AuthMiddleware) principalFromRequest(c echo.Context) (*policy.Principal, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, errors.Unauthorized("Authorization header is required", nil)
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.Unauthorized("Invalid authorization format", nil)
	}

	principal, err := m.verifier.VerifyToken(c.Request().Context(), parts[1])
	if err != nil {
		return nil, errors.Unauthorized("Invalid or expired token", err)
	}

	return principal, nil
}

// Principal returns the authenticated principal set by Authenticate, or nil
// on public routes.
func Principal(c echo.Context) *policy.Principal {
	principal, _ := c.Get(principalKey).(*policy.Principal)
	return principal
}
