package server

import (
	"atelier/internal/models"
	"atelier/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// Signup handles POST /api/auth/signup
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Username        string `json:"username"`
		FullName        string `json:"full_name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		AvatarURL       string `json:"avatar_url"`
		Bio             string `json:"bio"`
		Profession      string `json:"profession"`
		ExperienceYears int    `json:"experience_years"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Username == "" || req.Email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username and email are required"))
	}

	ctx := c.Context()
	user := s.users.Create(ctx, repository.NewUser{
		Username:        req.Username,
		FullName:        req.FullName,
		Email:           req.Email,
		AvatarURL:       req.AvatarURL,
		Bio:             req.Bio,
		Profession:      req.Profession,
		ExperienceYears: req.ExperienceYears,
	})
	s.users.SetCurrent(ctx, &user)

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Signin handles POST /api/auth/signin
func (s *Server) Signin(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email is required"))
	}

	user := s.users.SignIn(c.Context(), req.Email, req.Password)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Signout handles POST /api/auth/signout
func (s *Server) Signout(c *fiber.Ctx) error {
	s.users.SignOut(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}

// Me handles GET /api/auth/me
func (s *Server) Me(c *fiber.Ctx) error {
	user := s.users.Current(c.Context())
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("No active session"))
	}
	return c.JSON(user)
}

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	return c.JSON(s.users.GetAll(c.Context()))
}

// UpdateProfile handles PUT /api/users/me
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		FullName        string `json:"full_name"`
		AvatarURL       string `json:"avatar_url"`
		Bio             string `json:"bio"`
		Profession      string `json:"profession"`
		ExperienceYears int    `json:"experience_years"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx := c.Context()
	userID := currentUserID(c)

	var user *models.User
	for _, u := range s.users.GetAll(ctx) {
		if u.ID == userID {
			user = &u
			break
		}
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("User", userID))
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Profession != "" {
		user.Profession = req.Profession
	}
	if req.ExperienceYears > 0 {
		user.ExperienceYears = req.ExperienceYears
	}

	s.users.Upsert(ctx, *user)

	// Keep the session slot in sync when the signed-in user edits their
	// own profile.
	if current := s.users.Current(ctx); current != nil && current.ID == user.ID {
		s.users.SetCurrent(ctx, user)
	}

	return c.JSON(user)
}
