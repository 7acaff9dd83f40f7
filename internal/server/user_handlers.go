package server

import (
	"context"

	"github.com/shermanburwell3/social-media-api/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return readError(c, err)
	}
	return c.JSON(users)
}

// GetUser handles GET /api/users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseObjectID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return readError(c, err)
	}
	return c.JSON(user)
}

// CreateUser handles POST /api/users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	user, err := s.userRepo.Create(ctx, req.Username, req.Email)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser handles PUT /api/users/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseObjectID(c, "id")
	if err != nil {
		return nil
	}

	var patch models.UserUpdate
	if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	user, err := s.userRepo.Update(ctx, id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

// DeleteUser handles DELETE /api/users/:id
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseObjectID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return readError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
