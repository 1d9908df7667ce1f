package server

import (
	"atelier/internal/models"
	"atelier/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// GetCommunities handles GET /api/communities
func (s *Server) GetCommunities(c *fiber.Ctx) error {
	return c.JSON(s.communities.GetAll(c.Context()))
}

// CreateCommunity handles POST /api/communities
func (s *Server) CreateCommunity(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		Category    string `json:"category"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" || req.Description == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name and description are required"))
	}

	community := s.communities.Create(c.Context(), repository.NewCommunity{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		CreatedBy:   currentUserID(c),
	})

	return c.Status(fiber.StatusCreated).JSON(community)
}

// JoinCommunity handles POST /api/communities/:id/join
func (s *Server) JoinCommunity(c *fiber.Ctx) error {
	s.communities.Join(c.Context(), c.Params("id"), currentUserID(c))
	return c.SendStatus(fiber.StatusNoContent)
}
