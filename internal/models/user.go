// Package models contains data structures for the application's domain models.
package models

import (
	"encoding/json"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// emailPattern accepts basic local@domain.tld shapes. Stricter checking would
// belong to an email verification flow, which this API does not have.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User is an account document. Thoughts and Friends hold references to other
// documents, never embedded copies. Username and email are unique across the
// collection, enforced by indexes at the store level.
type User struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty"`
	Username string               `bson:"username"`
	Email    string               `bson:"email"`
	Thoughts []primitive.ObjectID `bson:"thoughts"`
	Friends  []primitive.ObjectID `bson:"friends"`
}

// NewUser builds a user from raw input, trimming surrounding whitespace from
// the username and rejecting missing or malformed fields.
func NewUser(username, email string) (*User, *AppError) {
	u := &User{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Thoughts: []primitive.ObjectID{},
		Friends:  []primitive.ObjectID{},
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks required fields and the email format.
func (u *User) Validate() *AppError {
	if u.Username == "" {
		return NewValidationError("username is required")
	}
	if u.Email == "" {
		return NewValidationError("email is required")
	}
	if !emailPattern.MatchString(u.Email) {
		return NewValidationError("email must be a valid address")
	}
	return nil
}

// MarshalJSON renders the stored shape plus the derived friendCount.
func (u User) MarshalJSON() ([]byte, error) {
	thoughts := u.Thoughts
	if thoughts == nil {
		thoughts = []primitive.ObjectID{}
	}
	friends := u.Friends
	if friends == nil {
		friends = []primitive.ObjectID{}
	}
	return json.Marshal(struct {
		ID          primitive.ObjectID   `json:"_id"`
		Username    string               `json:"username"`
		Email       string               `json:"email"`
		Thoughts    []primitive.ObjectID `json:"thoughts"`
		Friends     []primitive.ObjectID `json:"friends"`
		FriendCount int                  `json:"friendCount"`
	}{u.ID, u.Username, u.Email, thoughts, friends, len(friends)})
}

// UserUpdate is the partial field set accepted by PUT /api/users/:id.
// Nil fields are left untouched.
type UserUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// Validate normalizes the provided fields and rejects empty or malformed
// values. At least one field must be present.
func (p *UserUpdate) Validate() *AppError {
	if p.Username == nil && p.Email == nil {
		return NewValidationError("no updatable fields provided")
	}
	if p.Username != nil {
		trimmed := strings.TrimSpace(*p.Username)
		if trimmed == "" {
			return NewValidationError("username is required")
		}
		*p.Username = trimmed
	}
	if p.Email != nil {
		trimmed := strings.TrimSpace(*p.Email)
		if !emailPattern.MatchString(trimmed) {
			return NewValidationError("email must be a valid address")
		}
		*p.Email = trimmed
	}
	return nil
}

// UserProfile is the read shape of a user with thought and friend references
// expanded into their full documents. Dangling references are dropped, the
// same way a document-store populate would.
type UserProfile struct {
	ID       primitive.ObjectID
	Username string
	Email    string
	Thoughts []Thought
	Friends  []User
}

// MarshalJSON renders the expanded shape plus the derived friendCount.
func (p UserProfile) MarshalJSON() ([]byte, error) {
	thoughts := p.Thoughts
	if thoughts == nil {
		thoughts = []Thought{}
	}
	friends := p.Friends
	if friends == nil {
		friends = []User{}
	}
	return json.Marshal(struct {
		ID          primitive.ObjectID `json:"_id"`
		Username    string             `json:"username"`
		Email       string             `json:"email"`
		Thoughts    []Thought          `json:"thoughts"`
		Friends     []User             `json:"friends"`
		FriendCount int                `json:"friendCount"`
	}{p.ID, p.Username, p.Email, thoughts, friends, len(friends)})
}
