package server

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// AddFriend handles POST /api/users/:userId/friends/:friendId
//
// The add is idempotent and one-directional: only the addressed user's friend
// list changes, and the friend id is not checked against the user collection.
func (s *Server) AddFriend(c *fiber.Ctx) error {
	userID, err := s.parseObjectID(c, "userId")
	if err != nil {
		return nil
	}
	friendID, err := s.parseObjectID(c, "friendId")
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	user, err := s.userRepo.AddFriend(ctx, userID, friendID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

// RemoveFriend handles DELETE /api/users/:userId/friends/:friendId
//
// Removing an absent friend is a no-op that still returns the user.
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	userID, err := s.parseObjectID(c, "userId")
	if err != nil {
		return nil
	}
	friendID, err := s.parseObjectID(c, "friendId")
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	user, err := s.userRepo.RemoveFriend(ctx, userID, friendID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}
