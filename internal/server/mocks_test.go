package server

import (
	"context"

	"github.com/shermanburwell3/social-media-api/internal/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is a testify mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.UserProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserProfile), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, username, email string) (*models.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.UserUpdate) (*models.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, userID, friendID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) RemoveFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, userID, friendID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockThoughtRepository is a testify mock of repository.ThoughtRepository.
type MockThoughtRepository struct {
	mock.Mock
}

func (m *MockThoughtRepository) GetAll(ctx context.Context) ([]models.Thought, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Thought), args.Error(1)
}

func (m *MockThoughtRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Thought, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Thought), args.Error(1)
}

func (m *MockThoughtRepository) Create(ctx context.Context, text, username string, userID primitive.ObjectID) (*models.Thought, error) {
	args := m.Called(ctx, text, username, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Thought), args.Error(1)
}

func (m *MockThoughtRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.ThoughtUpdate) (*models.Thought, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Thought), args.Error(1)
}

func (m *MockThoughtRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockThoughtRepository) AddReaction(ctx context.Context, thoughtID primitive.ObjectID, body, username string) (*models.Thought, error) {
	args := m.Called(ctx, thoughtID, body, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Thought), args.Error(1)
}

func (m *MockThoughtRepository) RemoveReaction(ctx context.Context, thoughtID, reactionID primitive.ObjectID) (*models.Thought, error) {
	args := m.Called(ctx, thoughtID, reactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Thought), args.Error(1)
}
