package handlers

import (
	"github.com/arzan03/ThreadHive/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// IssueToken exchanges the identity confirmed by the client's sign-in
// provider for an access token.
// The email is trusted from the upstream sign-in provider; this endpoint does
// not authenticate the caller.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var identity services.Identity
	if err := parseBody(c, &identity); err != nil {
		return err
	}

	token, err := h.auth.GenerateJWT(identity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}
