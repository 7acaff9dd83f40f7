package server

import (
	"context"

	"github.com/shermanburwell3/social-media-api/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetThoughts handles GET /api/thoughts
func (s *Server) GetThoughts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	thoughts, err := s.thoughtRepo.GetAll(ctx)
	if err != nil {
		return readError(c, err)
	}
	return c.JSON(thoughts)
}

// GetThought handles GET /api/thoughts/:id
func (s *Server) GetThought(c *fiber.Ctx) error {
	id, err := s.parseObjectID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	thought, err := s.thoughtRepo.GetByID(ctx, id)
	if err != nil {
		return readError(c, err)
	}
	return c.JSON(thought)
}

// CreateThought handles POST /api/thoughts
//
// Creation is two sequential store writes: the thought insert and the append
// onto the owner's thought list. The response reports the outcome of the last
// write attempted.
func (s *Server) CreateThought(c *fiber.Ctx) error {
	var req struct {
		ThoughtText string `json:"thoughtText"`
		Username    string `json:"username"`
		UserID      string `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	thought, err := s.thoughtRepo.Create(ctx, req.ThoughtText, req.Username, userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(thought)
}

// UpdateThought handles PUT /api/thoughts/:id
func (s *Server) UpdateThought(c *fiber.Ctx) error {
	id, err := s.parseObjectID(c, "id")
	if err != nil {
		return nil
	}

	var patch models.ThoughtUpdate
	if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	thought, err := s.thoughtRepo.Update(ctx, id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(thought)
}

// DeleteThought handles DELETE /api/thoughts/:id
//
// The owning user's thought list is left untouched; the dangling reference is
// dropped on expansion.
func (s *Server) DeleteThought(c *fiber.Ctx) error {
	id, err := s.parseObjectID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	if err := s.thoughtRepo.Delete(ctx, id); err != nil {
		return readError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddReaction handles POST /api/thoughts/:thoughtId/reactions
func (s *Server) AddReaction(c *fiber.Ctx) error {
	thoughtID, err := s.parseObjectID(c, "thoughtId")
	if err != nil {
		return nil
	}

	var req struct {
		ReactionBody string `json:"reactionBody"`
		Username     string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	thought, err := s.thoughtRepo.AddReaction(ctx, thoughtID, req.ReactionBody, req.Username)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(thought)
}

// RemoveReaction handles DELETE /api/thoughts/:thoughtId/reactions/:reactionId
//
// An unknown reaction id is not an error: the thought is returned unchanged.
func (s *Server) RemoveReaction(c *fiber.Ctx) error {
	thoughtID, err := s.parseObjectID(c, "thoughtId")
	if err != nil {
		return nil
	}
	reactionID, err := s.parseObjectID(c, "reactionId")
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	thought, err := s.thoughtRepo.RemoveReaction(ctx, thoughtID, reactionID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(thought)
}
