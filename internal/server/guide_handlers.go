package server

import (
	"repairhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetGuides handles GET /api/guides (newest first).
func (s *Server) GetGuides(c *fiber.Ctx) error {
	guides, err := s.guideService.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(guides)
}

// GetGuide handles GET /api/guides/:id
func (s *Server) GetGuide(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	guide, err := s.guideService.Get(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(guide)
}

// CreateGuide handles POST /api/guides
func (s *Server) CreateGuide(c *fiber.Ctx) error {
	var req service.CreateGuideInput
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	guide, err := s.guideService.Create(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(guide)
}

// UpdateGuide handles PUT /api/guides/:id
func (s *Server) UpdateGuide(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.UpdateGuideInput
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	guide, err := s.guideService.Update(c.Context(), id, actorID(c), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(guide)
}

// DeleteGuide handles DELETE /api/guides/:id
func (s *Server) DeleteGuide(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.guideService.Delete(c.Context(), id, actorID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Guide deleted successfully"})
}
