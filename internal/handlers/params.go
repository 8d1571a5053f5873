package handlers

import (
	"net/url"
	"strings"

	"github.com/arzan03/ThreadHive/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func objectIDParam(c *fiber.Ctx, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, services.Errorf(services.ErrInvalidInput, "invalid %s", name)
	}
	return id, nil
}

func emailParam(c *fiber.Ctx, name string) (string, error) {
	email, err := url.PathUnescape(c.Params(name))
	if err != nil || strings.TrimSpace(email) == "" {
		return "", services.Errorf(services.ErrInvalidInput, "invalid %s", name)
	}
	return email, nil
}

func parseBody(c *fiber.Ctx, v interface{}) error {
	if err := c.BodyParser(v); err != nil {
		return services.Errorf(services.ErrInvalidInput, "invalid request body")
	}
	return nil
}
