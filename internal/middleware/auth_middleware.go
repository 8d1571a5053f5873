package middleware

import (
	"strings"

	"github.com/arzan03/ThreadHive/internal/services"
	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

// AuthMiddleware validates the bearer token and stores the caller's identity
// for the next handlers. Every failure is a 401.
func AuthMiddleware(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return services.Errorf(services.ErrUnauthenticated, "unauthorized access")
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			return services.Errorf(services.ErrUnauthenticated, "unauthorized access")
		}

		claims, err := auth.ParseJWT(strings.TrimSpace(tokenString))
		if err != nil {
			return services.Errorf(services.ErrUnauthenticated, "unauthorized access")
		}

		c.Locals(identityKey, claims.Identity)
		return c.Next()
	}
}

// IdentityFrom returns the identity stored by AuthMiddleware.
func IdentityFrom(c *fiber.Ctx) (services.Identity, bool) {
	identity, ok := c.Locals(identityKey).(services.Identity)
	return identity, ok
}

// Email is the caller's email, empty on routes without AuthMiddleware.
func Email(c *fiber.Ctx) string {
	identity, _ := IdentityFrom(c)
	return identity.Email
}
