package handlers

import (
	"github.com/arzan03/ThreadHive/internal/models"
	"github.com/arzan03/ThreadHive/internal/services"
	"github.com/gofiber/fiber/v2"
)

// DocumentHandler serves one free-form collection.
type DocumentHandler struct {
	docs *services.DocumentService
}

func NewDocumentHandler(docs *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{docs: docs}
}

func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	doc := models.Document{}
	if err := parseBody(c, &doc); err != nil {
		return err
	}
	res, err := h.docs.Create(c.UserContext(), doc)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *DocumentHandler) List(c *fiber.Ctx) error {
	docs, err := h.docs.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(docs)
}
