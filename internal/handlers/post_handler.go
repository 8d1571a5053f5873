package handlers

import (
	"github.com/arzan03/ThreadHive/internal/middleware"
	"github.com/arzan03/ThreadHive/internal/models"
	"github.com/arzan03/ThreadHive/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PostHandler struct {
	posts *services.PostService
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	var post models.Post
	if err := parseBody(c, &post); err != nil {
		return err
	}

	res, err := h.posts.CreatePost(c.UserContext(), middleware.Email(c), post)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post added successfully!",
		"result":  res,
	})
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	posts, err := h.posts.ListPosts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

func (h *PostHandler) Get(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	post, err := h.posts.GetPost(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(post)
}

func (h *PostHandler) ListByUser(c *fiber.Ctx) error {
	email, err := emailParam(c, "email")
	if err != nil {
		return err
	}
	posts, err := h.posts.ListUserPosts(c.UserContext(), email)
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

func (h *PostHandler) RecentByUser(c *fiber.Ctx) error {
	email, err := emailParam(c, "email")
	if err != nil {
		return err
	}
	posts, err := h.posts.RecentUserPosts(c.UserContext(), email)
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

func (h *PostHandler) Usage(c *fiber.Ctx) error {
	usage, err := h.posts.PostUsage(c.UserContext(), c.Query("userEmail"))
	if err != nil {
		return err
	}
	return c.JSON(usage)
}

func (h *PostHandler) Search(c *fiber.Ctx) error {
	posts, err := h.posts.SearchByTag(c.UserContext(), c.Query("tag"))
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	res, err := h.posts.DeletePost(c.UserContext(), middleware.Email(c), id)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// Vote returns a handler that increments one vote counter.
func (h *PostHandler) Vote(vote models.Vote) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := objectIDParam(c, "id")
		if err != nil {
			return err
		}
		res, err := h.posts.Vote(c.UserContext(), id, vote)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func (h *PostHandler) RecountComments(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "postId")
	if err != nil {
		return err
	}
	res, err := h.posts.RecountComments(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
