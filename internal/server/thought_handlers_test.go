package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shermanburwell3/social-media-api/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetThought(t *testing.T) {
	knownID := primitive.NewObjectID()
	missingID := primitive.NewObjectID()

	tests := []struct {
		name           string
		idParam        string
		mockSetup      func(*MockThoughtRepository)
		expectedStatus int
	}{
		{
			name:    "Success",
			idParam: knownID.Hex(),
			mockSetup: func(m *MockThoughtRepository) {
				m.On("GetByID", mock.Anything, knownID).
					Return(&models.Thought{ID: knownID, ThoughtText: "hi"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "Not Found",
			idParam: missingID.Hex(),
			mockSetup: func(m *MockThoughtRepository) {
				m.On("GetByID", mock.Anything, missingID).
					Return(nil, models.NewNotFoundError("Thought"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid ID",
			idParam:        "nope",
			mockSetup:      func(m *MockThoughtRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockRepo := new(MockThoughtRepository)
			s := &Server{thoughtRepo: mockRepo}
			app.Get("/thoughts/:id", s.GetThought)

			tt.mockSetup(mockRepo)
			req := httptest.NewRequest(http.MethodGet, "/thoughts/"+tt.idParam, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestCreateThought(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           string
		mockSetup      func(*MockThoughtRepository)
		expectedStatus int
	}{
		{
			name: "Created",
			body: `{"thoughtText":"hi","username":"al","userId":"` + userID.Hex() + `"}`,
			mockSetup: func(m *MockThoughtRepository) {
				m.On("Create", mock.Anything, "hi", "al", userID).
					Return(&models.Thought{ID: primitive.NewObjectID(), ThoughtText: "hi", Username: "al", UserID: userID}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Empty text",
			body: `{"thoughtText":"","username":"al","userId":"` + userID.Hex() + `"}`,
			mockSetup: func(m *MockThoughtRepository) {
				m.On("Create", mock.Anything, "", "al", userID).
					Return(nil, models.NewValidationError("thoughtText is required"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Owner missing",
			body: `{"thoughtText":"hi","username":"al","userId":"` + userID.Hex() + `"}`,
			mockSetup: func(m *MockThoughtRepository) {
				m.On("Create", mock.Anything, "hi", "al", userID).
					Return(nil, models.NewNotFoundError("User"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid user ID",
			body:           `{"thoughtText":"hi","username":"al","userId":"bogus"}`,
			mockSetup:      func(m *MockThoughtRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockRepo := new(MockThoughtRepository)
			s := &Server{thoughtRepo: mockRepo}
			app.Post("/thoughts", s.CreateThought)

			tt.mockSetup(mockRepo)
			req := httptest.NewRequest(http.MethodPost, "/thoughts", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestDeleteThought(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("No Content", func(t *testing.T) {
		app := fiber.New()
		mockRepo := new(MockThoughtRepository)
		s := &Server{thoughtRepo: mockRepo}
		app.Delete("/thoughts/:id", s.DeleteThought)

		mockRepo.On("Delete", mock.Anything, id).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/thoughts/"+id.Hex(), nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("Not Found", func(t *testing.T) {
		app := fiber.New()
		mockRepo := new(MockThoughtRepository)
		s := &Server{thoughtRepo: mockRepo}
		app.Delete("/thoughts/:id", s.DeleteThought)

		mockRepo.On("Delete", mock.Anything, id).Return(models.NewNotFoundError("Thought"))

		req := httptest.NewRequest(http.MethodDelete, "/thoughts/"+id.Hex(), nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestAddReaction(t *testing.T) {
	thoughtID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           string
		mockSetup      func(*MockThoughtRepository)
		expectedStatus int
	}{
		{
			name: "Created",
			body: `{"reactionBody":"lol","username":"bo"}`,
			mockSetup: func(m *MockThoughtRepository) {
				m.On("AddReaction", mock.Anything, thoughtID, "lol", "bo").
					Return(&models.Thought{ID: thoughtID, Reactions: []models.Reaction{{ReactionID: primitive.NewObjectID(), ReactionBody: "lol", Username: "bo"}}}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Missing body",
			body: `{"username":"bo"}`,
			mockSetup: func(m *MockThoughtRepository) {
				m.On("AddReaction", mock.Anything, thoughtID, "", "bo").
					Return(nil, models.NewValidationError("reactionBody is required"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Thought not found",
			body: `{"reactionBody":"lol","username":"bo"}`,
			mockSetup: func(m *MockThoughtRepository) {
				m.On("AddReaction", mock.Anything, thoughtID, "lol", "bo").
					Return(nil, models.NewNotFoundError("Thought"))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockRepo := new(MockThoughtRepository)
			s := &Server{thoughtRepo: mockRepo}
			app.Post("/thoughts/:thoughtId/reactions", s.AddReaction)

			tt.mockSetup(mockRepo)
			req := httptest.NewRequest(http.MethodPost, "/thoughts/"+thoughtID.Hex()+"/reactions", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestRemoveReaction(t *testing.T) {
	thoughtID := primitive.NewObjectID()
	reactionID := primitive.NewObjectID()

	t.Run("Unknown reaction id still returns the thought", func(t *testing.T) {
		app := fiber.New()
		mockRepo := new(MockThoughtRepository)
		s := &Server{thoughtRepo: mockRepo}
		app.Delete("/thoughts/:thoughtId/reactions/:reactionId", s.RemoveReaction)

		mockRepo.On("RemoveReaction", mock.Anything, thoughtID, reactionID).
			Return(&models.Thought{ID: thoughtID, Reactions: []models.Reaction{}}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/thoughts/"+thoughtID.Hex()+"/reactions/"+reactionID.Hex(), nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.EqualValues(t, 0, body["reactionCount"])
	})

	t.Run("Thought not found", func(t *testing.T) {
		app := fiber.New()
		mockRepo := new(MockThoughtRepository)
		s := &Server{thoughtRepo: mockRepo}
		app.Delete("/thoughts/:thoughtId/reactions/:reactionId", s.RemoveReaction)

		mockRepo.On("RemoveReaction", mock.Anything, thoughtID, reactionID).
			Return(nil, models.NewNotFoundError("Thought"))

		req := httptest.NewRequest(http.MethodDelete, "/thoughts/"+thoughtID.Hex()+"/reactions/"+reactionID.Hex(), nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
