package server

import (
	"errors"
	"strings"
	"unicode"

	"github.com/shermanburwell3/social-media-api/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseObjectID extracts a route parameter by name as an ObjectID.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseObjectID(c *fiber.Ctx, param string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(param))
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return primitive.NilObjectID, errResponseWritten
	}
	return id, nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "userId" -> "user ID", "reactionId" -> "reaction ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		prefix := param[:len(param)-2]
		words := splitCamel(prefix)
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// readError maps store failures on read paths: a missing record is a 404,
// anything else is a 500.
func readError(c *fiber.Ctx, err error) error {
	if models.IsNotFound(err) {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}

// writeError maps store failures on write paths: a missing record is a 404,
// everything else is reported as a 400 regardless of origin.
func writeError(c *fiber.Ctx, err error) error {
	if models.IsNotFound(err) {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}
	return models.RespondWithError(c, fiber.StatusBadRequest, err)
}
