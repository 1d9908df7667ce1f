package server

import (
	"errors"

	"atelier/internal/models"
	"atelier/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts?category=
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.Context()

	category := models.PostCategory(c.Query("category"))
	if category != "" && !category.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unknown post category"))
	}

	return c.JSON(s.posts.GetByCategory(ctx, category))
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Content  string   `json:"content"`
		ImageURL string   `json:"image_url"`
		Category string   `json:"category"`
		Tags     []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	category := models.PostCategory(req.Category)
	if category == "" {
		category = models.CategoryFeed
	}
	if !category.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unknown post category"))
	}

	post, err := s.posts.Create(c.Context(), repository.NewPost{
		UserID:   currentUserID(c),
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Category: category,
		Tags:     req.Tags,
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// ToggleLike handles POST /api/posts/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	s.posts.ToggleLike(c.Context(), c.Params("id"), currentUserID(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// AddComment handles POST /api/posts/:id/comments
func (s *Server) AddComment(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Comment content is required"))
	}

	s.posts.AddComment(c.Context(), c.Params("id"), currentUserID(c), req.Content)
	return c.SendStatus(fiber.StatusNoContent)
}
