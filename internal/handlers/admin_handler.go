package handlers

import (
	"github.com/arzan03/ThreadHive/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the routes behind AdminMiddleware that are not plain
// document creation.
type AdminHandler struct {
	users *services.UserService
	stats *services.StatsService
}

func NewAdminHandler(users *services.UserService, stats *services.StatsService) *AdminHandler {
	return &AdminHandler{users: users, stats: stats}
}

// List all users
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

func (h *AdminHandler) PromoteToAdmin(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	res, err := h.users.PromoteToAdmin(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.stats.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
