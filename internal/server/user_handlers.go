package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users, returning id/username/email summaries.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userService.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.userService.GetProfile(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// GetUserBadges handles GET /api/users/:id/badges
func (s *Server) GetUserBadges(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	badges, err := s.badgeService.ListForUser(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(badges)
}

// GetBadges handles GET /api/badges
func (s *Server) GetBadges(c *fiber.Ctx) error {
	badges, err := s.badgeService.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(badges)
}
