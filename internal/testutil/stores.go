// Package testutil provides shared test doubles and fixtures for backend tests.
package testutil

import (
	"context"
	"sync"

	"github.com/shermanburwell3/social-media-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoreStub is an in-memory implementation of both repository interfaces. It
// mirrors the document-store semantics the real repositories rely on:
// duplicate-suppressing friend adds, no-op removals, the two-step thought
// create, and dangling references dropped on expansion.
type StoreStub struct {
	mu           sync.Mutex
	users        map[primitive.ObjectID]*models.User
	userOrder    []primitive.ObjectID
	thoughts     map[primitive.ObjectID]*models.Thought
	thoughtOrder []primitive.ObjectID
}

// NewStoreStub creates an empty in-memory store.
func NewStoreStub() *StoreStub {
	return &StoreStub{
		users:    make(map[primitive.ObjectID]*models.User),
		thoughts: make(map[primitive.ObjectID]*models.Thought),
	}
}

// GetAll returns every user with references expanded.
func (s *StoreStub) GetAll(_ context.Context) ([]models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles := make([]models.UserProfile, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		profiles = append(profiles, s.expand(s.users[id]))
	}
	return profiles, nil
}

// GetByID returns one user with references expanded.
func (s *StoreStub) GetByID(_ context.Context, id primitive.ObjectID) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, models.NewNotFoundError("User")
	}
	profile := s.expand(user)
	return &profile, nil
}

// Create validates and stores a new user, enforcing uniqueness.
func (s *StoreStub) Create(_ context.Context, username, email string) (*models.User, error) {
	user, verr := models.NewUser(username, email)
	if verr != nil {
		return nil, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, models.NewValidationError("username and email must be unique")
		}
	}

	user.ID = primitive.NewObjectID()
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	copied := *user
	return &copied, nil
}

// Update applies a partial field set.
func (s *StoreStub) Update(_ context.Context, id primitive.ObjectID, patch models.UserUpdate) (*models.User, error) {
	if verr := patch.Validate(); verr != nil {
		return nil, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, models.NewNotFoundError("User")
	}
	for other, existing := range s.users {
		if other == id {
			continue
		}
		if patch.Username != nil && existing.Username == *patch.Username {
			return nil, models.NewValidationError("username and email must be unique")
		}
		if patch.Email != nil && existing.Email == *patch.Email {
			return nil, models.NewValidationError("username and email must be unique")
		}
	}
	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	copied := *user
	return &copied, nil
}

// Delete removes the user without cascading.
func (s *StoreStub) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return models.NewNotFoundError("User")
	}
	delete(s.users, id)
	for i, uid := range s.userOrder {
		if uid == id {
			s.userOrder = append(s.userOrder[:i], s.userOrder[i+1:]...)
			break
		}
	}
	return nil
}

// AddFriend appends friendID once, regardless of how often it is called.
func (s *StoreStub) AddFriend(_ context.Context, userID, friendID primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, models.NewNotFoundError("User")
	}
	present := false
	for _, f := range user.Friends {
		if f == friendID {
			present = true
			break
		}
	}
	if !present {
		user.Friends = append(user.Friends, friendID)
	}
	copied := *user
	return &copied, nil
}

// RemoveFriend removes friendID; removing an absent friend is a no-op.
func (s *StoreStub) RemoveFriend(_ context.Context, userID, friendID primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, models.NewNotFoundError("User")
	}
	for i, f := range user.Friends {
		if f == friendID {
			user.Friends = append(user.Friends[:i], user.Friends[i+1:]...)
			break
		}
	}
	copied := *user
	return &copied, nil
}

// Thought operations are unexported here to avoid clashing with the user
// method set; the ThoughtRepository view is exposed through Thoughts().
func (s *StoreStub) getAllThoughts(_ context.Context) ([]models.Thought, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Thought, 0, len(s.thoughtOrder))
	for _, id := range s.thoughtOrder {
		out = append(out, *s.thoughts[id])
	}
	return out, nil
}

func (s *StoreStub) getThoughtByID(_ context.Context, id primitive.ObjectID) (*models.Thought, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	thought, ok := s.thoughts[id]
	if !ok {
		return nil, models.NewNotFoundError("Thought")
	}
	copied := *thought
	return &copied, nil
}

func (s *StoreStub) createThought(_ context.Context, text, username string, userID primitive.ObjectID) (*models.Thought, error) {
	thought, verr := models.NewThought(text, username, userID)
	if verr != nil {
		return nil, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	thought.ID = primitive.NewObjectID()
	s.thoughts[thought.ID] = thought
	s.thoughtOrder = append(s.thoughtOrder, thought.ID)

	// Second, independent write: the thought above stays behind when the
	// owner is missing, matching the real store.
	owner, ok := s.users[userID]
	if !ok {
		return nil, models.NewNotFoundError("User")
	}
	owner.Thoughts = append(owner.Thoughts, thought.ID)

	copied := *thought
	return &copied, nil
}

func (s *StoreStub) updateThought(_ context.Context, id primitive.ObjectID, patch models.ThoughtUpdate) (*models.Thought, error) {
	if verr := patch.Validate(); verr != nil {
		return nil, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	thought, ok := s.thoughts[id]
	if !ok {
		return nil, models.NewNotFoundError("Thought")
	}
	if patch.ThoughtText != nil {
		thought.ThoughtText = *patch.ThoughtText
	}
	if patch.Username != nil {
		thought.Username = *patch.Username
	}
	copied := *thought
	return &copied, nil
}

func (s *StoreStub) deleteThought(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.thoughts[id]; !ok {
		return models.NewNotFoundError("Thought")
	}
	delete(s.thoughts, id)
	for i, tid := range s.thoughtOrder {
		if tid == id {
			s.thoughtOrder = append(s.thoughtOrder[:i], s.thoughtOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *StoreStub) addReaction(_ context.Context, thoughtID primitive.ObjectID, body, username string) (*models.Thought, error) {
	reaction, verr := models.NewReaction(body, username)
	if verr != nil {
		return nil, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	thought, ok := s.thoughts[thoughtID]
	if !ok {
		return nil, models.NewNotFoundError("Thought")
	}
	thought.Reactions = append(thought.Reactions, *reaction)
	copied := *thought
	return &copied, nil
}

func (s *StoreStub) removeReaction(_ context.Context, thoughtID, reactionID primitive.ObjectID) (*models.Thought, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	thought, ok := s.thoughts[thoughtID]
	if !ok {
		return nil, models.NewNotFoundError("Thought")
	}
	for i, r := range thought.Reactions {
		if r.ReactionID == reactionID {
			thought.Reactions = append(thought.Reactions[:i], thought.Reactions[i+1:]...)
			break
		}
	}
	copied := *thought
	return &copied, nil
}

// expand resolves references, dropping dangling ids. Callers hold the lock.
func (s *StoreStub) expand(u *models.User) models.UserProfile {
	profile := models.UserProfile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Thoughts: []models.Thought{},
		Friends:  []models.User{},
	}
	for _, id := range u.Thoughts {
		if t, ok := s.thoughts[id]; ok {
			profile.Thoughts = append(profile.Thoughts, *t)
		}
	}
	for _, id := range u.Friends {
		if f, ok := s.users[id]; ok {
			profile.Friends = append(profile.Friends, *f)
		}
	}
	return profile
}

// Thoughts exposes the stub through the ThoughtRepository interface.
func (s *StoreStub) Thoughts() *ThoughtStoreStub {
	return &ThoughtStoreStub{stub: s}
}

// ThoughtStoreStub adapts StoreStub to the ThoughtRepository method set.
type ThoughtStoreStub struct {
	stub *StoreStub
}

func (t *ThoughtStoreStub) GetAll(ctx context.Context) ([]models.Thought, error) {
	return t.stub.getAllThoughts(ctx)
}

func (t *ThoughtStoreStub) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Thought, error) {
	return t.stub.getThoughtByID(ctx, id)
}

func (t *ThoughtStoreStub) Create(ctx context.Context, text, username string, userID primitive.ObjectID) (*models.Thought, error) {
	return t.stub.createThought(ctx, text, username, userID)
}

func (t *ThoughtStoreStub) Update(ctx context.Context, id primitive.ObjectID, patch models.ThoughtUpdate) (*models.Thought, error) {
	return t.stub.updateThought(ctx, id, patch)
}

func (t *ThoughtStoreStub) Delete(ctx context.Context, id primitive.ObjectID) error {
	return t.stub.deleteThought(ctx, id)
}

func (t *ThoughtStoreStub) AddReaction(ctx context.Context, thoughtID primitive.ObjectID, body, username string) (*models.Thought, error) {
	return t.stub.addReaction(ctx, thoughtID, body, username)
}

func (t *ThoughtStoreStub) RemoveReaction(ctx context.Context, thoughtID, reactionID primitive.ObjectID) (*models.Thought, error) {
	return t.stub.removeReaction(ctx, thoughtID, reactionID)
}
