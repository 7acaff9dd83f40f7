// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"github.com/shermanburwell3/social-media-api/internal/database"
	"github.com/shermanburwell3/social-media-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.UserProfile, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.UserProfile, error)
	Create(ctx context.Context, username, email string) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*models.User, error)
	RemoveFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*models.User, error)
}

// userRepository implements UserRepository over a MongoDB database handle.
type userRepository struct {
	db *mongo.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) users() *mongo.Collection {
	return r.db.Collection(database.UsersCollection)
}

func (r *userRepository) thoughts() *mongo.Collection {
	return r.db.Collection(database.ThoughtsCollection)
}

// GetAll returns every user with thought and friend references expanded.
func (r *userRepository) GetAll(ctx context.Context) ([]models.UserProfile, error) {
	defer observe("get_all", database.UsersCollection)()

	cur, err := r.users().Find(ctx, bson.M{})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, models.NewInternalError(err)
	}

	var thoughtIDs []primitive.ObjectID
	for _, u := range users {
		thoughtIDs = append(thoughtIDs, u.Thoughts...)
	}
	thoughtsByID, err := r.loadThoughts(ctx, thoughtIDs)
	if err != nil {
		return nil, err
	}

	// Friend references point back into the same collection, which was just
	// read in full.
	usersByID := make(map[primitive.ObjectID]models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	profiles := make([]models.UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, expand(u, thoughtsByID, usersByID))
	}
	return profiles, nil
}

// GetByID returns one user with thought and friend references expanded.
func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.UserProfile, error) {
	defer observe("get_by_id", database.UsersCollection)()

	var user models.User
	if err := r.users().FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("User")
		}
		return nil, models.NewInternalError(err)
	}

	thoughtsByID, err := r.loadThoughts(ctx, user.Thoughts)
	if err != nil {
		return nil, err
	}
	usersByID, err := r.loadUsers(ctx, user.Friends)
	if err != nil {
		return nil, err
	}

	profile := expand(user, thoughtsByID, usersByID)
	return &profile, nil
}

// Create validates and inserts a new user with empty thought and friend lists.
func (r *userRepository) Create(ctx context.Context, username, email string) (*models.User, error) {
	defer observe("create", database.UsersCollection)()

	user, verr := models.NewUser(username, email)
	if verr != nil {
		return nil, verr
	}
	user.ID = primitive.NewObjectID()

	if _, err := r.users().InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.NewValidationError("username and email must be unique")
		}
		return nil, models.NewInternalError(err)
	}
	return user, nil
}

// Update applies a partial field set and returns the post-update document.
func (r *userRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.UserUpdate) (*models.User, error) {
	defer observe("update", database.UsersCollection)()

	if verr := patch.Validate(); verr != nil {
		return nil, verr
	}

	set := bson.M{}
	if patch.Username != nil {
		set["username"] = *patch.Username
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}

	var updated models.User
	err := r.users().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("User")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.NewValidationError("username and email must be unique")
		}
		return nil, models.NewInternalError(err)
	}
	return &updated, nil
}

// Delete removes the user document. Thoughts it authored and references to it
// in other users' friend lists are intentionally left behind.
func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	defer observe("delete", database.UsersCollection)()

	res, err := r.users().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.NewInternalError(err)
	}
	if res.DeletedCount == 0 {
		return models.NewNotFoundError("User")
	}
	return nil
}

// AddFriend appends friendID to the user's friend set. The add is
// duplicate-suppressing; the friend id is not checked for existence and the
// reverse edge is not created.
func (r *userRepository) AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*models.User, error) {
	defer observe("add_friend", database.UsersCollection)()
	return r.mutateFriends(ctx, userID, bson.M{"$addToSet": bson.M{"friends": friendID}})
}

// RemoveFriend removes friendID from the user's friend set; removing an
// absent friend is a no-op.
func (r *userRepository) RemoveFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*models.User, error) {
	defer observe("remove_friend", database.UsersCollection)()
	return r.mutateFriends(ctx, userID, bson.M{"$pull": bson.M{"friends": friendID}})
}

func (r *userRepository) mutateFriends(ctx context.Context, userID primitive.ObjectID, update bson.M) (*models.User, error) {
	var updated models.User
	err := r.users().FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("User")
		}
		return nil, models.NewInternalError(err)
	}
	return &updated, nil
}

// loadThoughts fetches the referenced thoughts and maps them by id.
func (r *userRepository) loadThoughts(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Thought, error) {
	byID := make(map[primitive.ObjectID]models.Thought, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	cur, err := r.thoughts().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	var thoughts []models.Thought
	if err := cur.All(ctx, &thoughts); err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, t := range thoughts {
		byID[t.ID] = t
	}
	return byID, nil
}

// loadUsers fetches the referenced users and maps them by id.
func (r *userRepository) loadUsers(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	byID := make(map[primitive.ObjectID]models.User, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	cur, err := r.users().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

// expand resolves a user's references in stored order, silently dropping
// dangling ids the same way a document-store populate does.
func expand(u models.User, thoughtsByID map[primitive.ObjectID]models.Thought, usersByID map[primitive.ObjectID]models.User) models.UserProfile {
	profile := models.UserProfile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Thoughts: []models.Thought{},
		Friends:  []models.User{},
	}
	for _, id := range u.Thoughts {
		if t, ok := thoughtsByID[id]; ok {
			profile.Thoughts = append(profile.Thoughts, t)
		}
	}
	for _, id := range u.Friends {
		if f, ok := usersByID[id]; ok {
			profile.Friends = append(profile.Friends, f)
		}
	}
	return profile
}
