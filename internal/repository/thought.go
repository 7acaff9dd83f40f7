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

// ThoughtRepository defines the interface for thought data operations.
type ThoughtRepository interface {
	GetAll(ctx context.Context) ([]models.Thought, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Thought, error)
	Create(ctx context.Context, text, username string, userID primitive.ObjectID) (*models.Thought, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.ThoughtUpdate) (*models.Thought, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddReaction(ctx context.Context, thoughtID primitive.ObjectID, body, username string) (*models.Thought, error)
	RemoveReaction(ctx context.Context, thoughtID, reactionID primitive.ObjectID) (*models.Thought, error)
}

// thoughtRepository implements ThoughtRepository over a MongoDB database handle.
type thoughtRepository struct {
	db *mongo.Database
}

// NewThoughtRepository creates a new thought repository
func NewThoughtRepository(db *mongo.Database) ThoughtRepository {
	return &thoughtRepository{db: db}
}

func (r *thoughtRepository) thoughts() *mongo.Collection {
	return r.db.Collection(database.ThoughtsCollection)
}

func (r *thoughtRepository) users() *mongo.Collection {
	return r.db.Collection(database.UsersCollection)
}

// GetAll returns every thought.
func (r *thoughtRepository) GetAll(ctx context.Context) ([]models.Thought, error) {
	defer observe("get_all", database.ThoughtsCollection)()

	cur, err := r.thoughts().Find(ctx, bson.M{})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	thoughts := []models.Thought{}
	if err := cur.All(ctx, &thoughts); err != nil {
		return nil, models.NewInternalError(err)
	}
	return thoughts, nil
}

// GetByID returns one thought with its embedded reactions.
func (r *thoughtRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Thought, error) {
	defer observe("get_by_id", database.ThoughtsCollection)()

	var thought models.Thought
	if err := r.thoughts().FindOne(ctx, bson.M{"_id": id}).Decode(&thought); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("Thought")
		}
		return nil, models.NewInternalError(err)
	}
	return &thought, nil
}

// Create inserts the thought, then appends its id to the owning user's
// thought list. The two writes are independent: when the second one fails the
// thought stays behind unreferenced and the caller sees the outcome of the
// append. A missing owner therefore surfaces as NotFound even though the
// insert succeeded.
func (r *thoughtRepository) Create(ctx context.Context, text, username string, userID primitive.ObjectID) (*models.Thought, error) {
	defer observe("create", database.ThoughtsCollection)()

	thought, verr := models.NewThought(text, username, userID)
	if verr != nil {
		return nil, verr
	}
	thought.ID = primitive.NewObjectID()

	if _, err := r.thoughts().InsertOne(ctx, thought); err != nil {
		return nil, models.NewInternalError(err)
	}

	res, err := r.users().UpdateByID(ctx, userID, bson.M{"$push": bson.M{"thoughts": thought.ID}})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if res.MatchedCount == 0 {
		return nil, models.NewNotFoundError("User")
	}
	return thought, nil
}

// Update applies a partial field set and returns the post-update document.
func (r *thoughtRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.ThoughtUpdate) (*models.Thought, error) {
	defer observe("update", database.ThoughtsCollection)()

	if verr := patch.Validate(); verr != nil {
		return nil, verr
	}

	set := bson.M{}
	if patch.ThoughtText != nil {
		set["thoughtText"] = *patch.ThoughtText
	}
	if patch.Username != nil {
		set["username"] = *patch.Username
	}

	var updated models.Thought
	err := r.thoughts().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("Thought")
		}
		return nil, models.NewInternalError(err)
	}
	return &updated, nil
}

// Delete removes the thought document. The owning user's thought list is
// intentionally not cleaned up.
func (r *thoughtRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	defer observe("delete", database.ThoughtsCollection)()

	res, err := r.thoughts().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.NewInternalError(err)
	}
	if res.DeletedCount == 0 {
		return models.NewNotFoundError("Thought")
	}
	return nil
}

// AddReaction appends a freshly-identified reaction to the thought and
// returns the updated document.
func (r *thoughtRepository) AddReaction(ctx context.Context, thoughtID primitive.ObjectID, body, username string) (*models.Thought, error) {
	defer observe("add_reaction", database.ThoughtsCollection)()

	reaction, verr := models.NewReaction(body, username)
	if verr != nil {
		return nil, verr
	}
	return r.mutateReactions(ctx, thoughtID, bson.M{"$push": bson.M{"reactions": reaction}})
}

// RemoveReaction removes the reaction with the given id. Removing an unknown
// reaction id leaves the thought unchanged and still succeeds.
func (r *thoughtRepository) RemoveReaction(ctx context.Context, thoughtID, reactionID primitive.ObjectID) (*models.Thought, error) {
	defer observe("remove_reaction", database.ThoughtsCollection)()
	return r.mutateReactions(ctx, thoughtID, bson.M{"$pull": bson.M{"reactions": bson.M{"reactionId": reactionID}}})
}

func (r *thoughtRepository) mutateReactions(ctx context.Context, thoughtID primitive.ObjectID, update bson.M) (*models.Thought, error) {
	var updated models.Thought
	err := r.thoughts().FindOneAndUpdate(ctx,
		bson.M{"_id": thoughtID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("Thought")
		}
		return nil, models.NewInternalError(err)
	}
	return &updated, nil
}
