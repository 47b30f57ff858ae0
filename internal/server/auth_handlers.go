package server

import (
	"repairhub/internal/models"
	"repairhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	session, err := s.authService.Register(c.Context(), service.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	session, err := s.authService.Login(c.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(session)
}

// Logout handles POST /api/auth/logout. There is no server-side session
// state to revoke; the acknowledgment exists so clients have a uniform
// sign-out call.
func (s *Server) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// Me handles GET /api/auth/me. It returns the user AuthRequired already
// resolved instead of fetching again, so a concurrent deletion cannot turn
// an authenticated request into a 404.
func (s *Server) Me(c *fiber.Ctx) error {
	user, ok := c.Locals("authUser").(*models.User)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewInvalidTokenError())
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/auth/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req service.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	user, err := s.authService.UpdateProfile(c.Context(), actorID(c), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}
