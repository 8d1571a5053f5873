package handlers

import (
	"github.com/arzan03/ThreadHive/internal/middleware"
	"github.com/arzan03/ThreadHive/internal/models"
	"github.com/arzan03/ThreadHive/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input models.User
	if err := parseBody(c, &input); err != nil {
		return err
	}

	res, existed, err := h.users.RegisterUser(c.UserContext(), input)
	if err != nil {
		return err
	}
	if existed {
		return c.JSON(fiber.Map{"message": "user already exists", "insertedId": nil})
	}
	return c.JSON(res)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	email, err := emailParam(c, "email")
	if err != nil {
		return err
	}
	user, err := h.users.GetUser(c.UserContext(), email)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *UserHandler) IsAdmin(c *fiber.Ctx) error {
	email, err := emailParam(c, "email")
	if err != nil {
		return err
	}
	admin, err := h.users.IsAdmin(c.UserContext(), middleware.Email(c), email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"admin": admin})
}
