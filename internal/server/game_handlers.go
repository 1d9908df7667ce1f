package server

import (
	"atelier/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetGames handles GET /api/games
func (s *Server) GetGames(c *fiber.Ctx) error {
	return c.JSON(s.games.GetAll(c.Context()))
}

// PlayGame handles POST /api/games/:id/play
func (s *Server) PlayGame(c *fiber.Ctx) error {
	s.games.IncrementPlays(c.Context(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// SubmitScore handles POST /api/games/:id/scores
func (s *Server) SubmitScore(c *fiber.Ctx) error {
	var req struct {
		Score int `json:"score"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Score < 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Score must not be negative"))
	}

	s.games.AddScore(c.Context(), c.Params("id"), currentUserID(c), req.Score)
	return c.SendStatus(fiber.StatusNoContent)
}
