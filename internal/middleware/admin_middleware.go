package middleware

import (
	"context"

	"github.com/arzan03/ThreadHive/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AdminChecker decides whether an email belongs to an admin.
type AdminChecker interface {
	RequireAdmin(ctx context.Context, email string) error
}

// AdminMiddleware ensures that only admins reach the route. It must run after
// AuthMiddleware and looks the user up on every request.
func AdminMiddleware(checker AdminChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFrom(c)
		if !ok {
			return services.Errorf(services.ErrUnauthenticated, "unauthorized access")
		}
		if err := checker.RequireAdmin(c.UserContext(), identity.Email); err != nil {
			return err
		}
		return c.Next()
	}
}
