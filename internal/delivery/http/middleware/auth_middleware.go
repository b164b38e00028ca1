package middleware

import (
	"errors"
	"strings"

	"pcd-jobs/internal/domain/principal"
	"pcd-jobs/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const ctxPrincipalKey = "principal"

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware verifies the bearer token and stores the principal for the
// handlers. The store is never consulted.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.Verify(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(ctxPrincipalKey, claims.Principal())
		return c.Next()
	}
}

// RequireKind rejects principals of any other kind with 403. It must run
// after Middleware.
func RequireKind(kinds ...principal.Kind) fiber.Handler {
	return func(c fiber.Ctx) error {
		p, ok := PrincipalFrom(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		if err := p.Require(kinds...); err != nil {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
		}
		return c.Next()
	}
}

func PrincipalFrom(c fiber.Ctx) (principal.Principal, bool) {
	p, ok := c.Locals(ctxPrincipalKey).(principal.Principal)
	if !ok || !p.Kind.Valid() {
		return principal.Principal{}, false
	}
	return p, true
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
