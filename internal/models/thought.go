package models

import (
	"encoding/json"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxThoughtLength bounds both thought text and reaction bodies.
const MaxThoughtLength = 280

// timestampLayout mirrors a locale-formatted date string on read responses.
const timestampLayout = "1/2/2006, 3:04:05 PM"

// Reaction is a short comment embedded in a thought. It has no independent
// lifecycle: it is created and removed only through its parent thought.
type Reaction struct {
	ReactionID   primitive.ObjectID `bson:"reactionId"`
	ReactionBody string             `bson:"reactionBody"`
	Username     string             `bson:"username"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// NewReaction builds a reaction with a fresh id and a server-assigned
// creation time.
func NewReaction(body, username string) (*Reaction, *AppError) {
	if body == "" {
		return nil, NewValidationError("reactionBody is required")
	}
	if utf8.RuneCountInString(body) > MaxThoughtLength {
		return nil, NewValidationError("reactionBody must be at most 280 characters")
	}
	if username == "" {
		return nil, NewValidationError("username is required")
	}
	return &Reaction{
		ReactionID:   primitive.NewObjectID(),
		ReactionBody: body,
		Username:     username,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func (r Reaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ReactionID   primitive.ObjectID `json:"reactionId"`
		ReactionBody string             `json:"reactionBody"`
		Username     string             `json:"username"`
		CreatedAt    string             `json:"createdAt"`
	}{r.ReactionID, r.ReactionBody, r.Username, r.CreatedAt.Local().Format(timestampLayout)})
}

// Thought is a short text post owned by exactly one user. Username is a
// denormalized copy of the author's name at creation time and is not kept in
// sync with later renames. UserID is immutable after creation.
type Thought struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ThoughtText string             `bson:"thoughtText"`
	CreatedAt   time.Time          `bson:"createdAt"`
	Username    string             `bson:"username"`
	UserID      primitive.ObjectID `bson:"userId"`
	Reactions   []Reaction         `bson:"reactions"`
}

// NewThought builds a thought with a server-assigned creation time.
func NewThought(text, username string, userID primitive.ObjectID) (*Thought, *AppError) {
	if err := validateThoughtText(text); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, NewValidationError("username is required")
	}
	if userID.IsZero() {
		return nil, NewValidationError("userId is required")
	}
	return &Thought{
		ThoughtText: text,
		CreatedAt:   time.Now().UTC(),
		Username:    username,
		UserID:      userID,
		Reactions:   []Reaction{},
	}, nil
}

func validateThoughtText(text string) *AppError {
	if text == "" {
		return NewValidationError("thoughtText is required")
	}
	if utf8.RuneCountInString(text) > MaxThoughtLength {
		return NewValidationError("thoughtText must be between 1 and 280 characters")
	}
	return nil
}

// MarshalJSON renders the stored shape plus the derived reactionCount and a
// locale-formatted creation timestamp.
func (t Thought) MarshalJSON() ([]byte, error) {
	reactions := t.Reactions
	if reactions == nil {
		reactions = []Reaction{}
	}
	return json.Marshal(struct {
		ID            primitive.ObjectID `json:"_id"`
		ThoughtText   string             `json:"thoughtText"`
		CreatedAt     string             `json:"createdAt"`
		Username      string             `json:"username"`
		UserID        primitive.ObjectID `json:"userId"`
		Reactions     []Reaction         `json:"reactions"`
		ReactionCount int                `json:"reactionCount"`
	}{t.ID, t.ThoughtText, t.CreatedAt.Local().Format(timestampLayout), t.Username, t.UserID, reactions, len(reactions)})
}

// ThoughtUpdate is the partial field set accepted by PUT /api/thoughts/:id.
// The owning user reference is immutable and intentionally absent here.
type ThoughtUpdate struct {
	ThoughtText *string `json:"thoughtText"`
	Username    *string `json:"username"`
}

// Validate rejects empty updates and out-of-range values.
func (p *ThoughtUpdate) Validate() *AppError {
	if p.ThoughtText == nil && p.Username == nil {
		return NewValidationError("no updatable fields provided")
	}
	if p.ThoughtText != nil {
		if err := validateThoughtText(*p.ThoughtText); err != nil {
			return err
		}
	}
	if p.Username != nil && *p.Username == "" {
		return NewValidationError("username is required")
	}
	return nil
}
