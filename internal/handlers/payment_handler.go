package handlers

import (
	"github.com/arzan03/ThreadHive/internal/middleware"
	"github.com/arzan03/ThreadHive/internal/models"
	"github.com/arzan03/ThreadHive/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreateIntent ignores any client-supplied price; membership has one fixed
// price.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	secret, err := h.payments.CreateIntent(c.UserContext(), middleware.Email(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"clientSecret": secret})
}

func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	payment := models.Document{}
	if err := parseBody(c, &payment); err != nil {
		return err
	}
	res, err := h.payments.RecordPayment(c.UserContext(), middleware.Email(c), payment)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *PaymentHandler) GrantMembership(c *fiber.Ctx) error {
	email, err := emailParam(c, "email")
	if err != nil {
		return err
	}
	res, err := h.payments.GrantMembership(c.UserContext(), middleware.Email(c), email)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
