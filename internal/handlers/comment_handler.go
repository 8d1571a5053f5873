package handlers

import (
	"github.com/arzan03/ThreadHive/internal/middleware"
	"github.com/arzan03/ThreadHive/internal/models"
	"github.com/arzan03/ThreadHive/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var comment models.Comment
	if err := parseBody(c, &comment); err != nil {
		return err
	}
	res, err := h.comments.AddComment(c.UserContext(), middleware.Email(c), comment)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *CommentHandler) ListByPost(c *fiber.Ctx) error {
	postID, err := objectIDParam(c, "postId")
	if err != nil {
		return err
	}
	comments, err := h.comments.ListComments(c.UserContext(), postID)
	if err != nil {
		return err
	}
	return c.JSON(comments)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	res, err := h.comments.DeleteComment(c.UserContext(), middleware.Email(c), id)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *CommentHandler) Report(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	var body struct {
		Feedback string `json:"feedback"`
	}
	if err := parseBody(c, &body); err != nil {
		return err
	}
	res, err := h.comments.ReportComment(c.UserContext(), id, body.Feedback)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
