package server

import (
	"repairhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetRepairPosts handles GET /api/repair-posts (newest first).
func (s *Server) GetRepairPosts(c *fiber.Ctx) error {
	posts, err := s.postService.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// GetRepairPost handles GET /api/repair-posts/:id
func (s *Server) GetRepairPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.Get(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// CreateRepairPost handles POST /api/repair-posts. The author comes from the
// request body per the API contract; the token only gates the mutation.
func (s *Server) CreateRepairPost(c *fiber.Ctx) error {
	var req service.CreatePostInput
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	post, err := s.postService.Create(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdateRepairPost handles PUT /api/repair-posts/:id with partial-update
// semantics: absent fields keep their stored values.
func (s *Server) UpdateRepairPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.UpdatePostInput
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	post, err := s.postService.Update(c.Context(), id, actorID(c), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// DeleteRepairPost handles DELETE /api/repair-posts/:id
func (s *Server) DeleteRepairPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(c.Context(), id, actorID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Repair post deleted successfully"})
}
