package handlers

import (
	"errors"

	"github.com/arzan03/ThreadHive/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var errorStatus = []struct {
	kind   error
	status int
}{
	{services.ErrUnauthenticated, fiber.StatusUnauthorized},
	{services.ErrForbidden, fiber.StatusForbidden},
	{services.ErrQuotaExceeded, fiber.StatusBadRequest},
	{services.ErrInvalidInput, fiber.StatusBadRequest},
	{services.ErrNotFound, fiber.StatusNotFound},
}

// ErrorHandler turns every error returned by a handler or middleware into a
// {"message": ...} response. Errors outside the service taxonomy are logged
// and reported as a generic 500.
func ErrorHandler(logger *zap.SugaredLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, message := fiber.StatusInternalServerError, "internal server error"

		var fe *fiber.Error
		var se *services.Error
		switch {
		case errors.As(err, &fe):
			status, message = fe.Code, fe.Message
		default:
			for _, e := range errorStatus {
				if errors.Is(err, e.kind) {
					status, message = e.status, e.kind.Error()
					if errors.As(err, &se) {
						message = se.Message
					}
					break
				}
			}
		}

		if status >= fiber.StatusInternalServerError {
			logger.Errorw("request failed",
				"method", c.Method(),
				"path", c.Path(),
				"error", err,
			)
		}
		return c.Status(status).JSON(fiber.Map{"message": message})
	}
}
