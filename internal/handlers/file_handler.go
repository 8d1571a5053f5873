package handlers

import (
	"io"

	"github.com/arzan03/ThreadHive/internal/middleware"
	"github.com/arzan03/ThreadHive/internal/services"
	"github.com/gofiber/fiber/v2"
)

// maxUploadSize caps a single image upload.
const maxUploadSize = 8 << 20

type MediaHandler struct {
	media *services.MediaService
}

func NewMediaHandler(media *services.MediaService) *MediaHandler {
	return &MediaHandler{media: media}
}

// Upload handles multipart image uploads in the "file" field.
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return services.Errorf(services.ErrInvalidInput, "file is required")
	}
	if fileHeader.Size > maxUploadSize {
		return services.Errorf(services.ErrInvalidInput, "file is larger than 8MB")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		return err
	}

	media, err := h.media.UploadImage(c.UserContext(), middleware.Email(c), fileHeader.Filename, data)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(media)
}
