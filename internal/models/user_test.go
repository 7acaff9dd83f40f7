package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		email     string
		expectErr bool
	}{
		{"Valid", "al", "al@x.com", false},
		{"Trims username", "  al  ", "al@x.com", false},
		{"Missing username", "", "al@x.com", true},
		{"Whitespace-only username", "   ", "al@x.com", true},
		{"Missing email", "al", "", true},
		{"No at sign", "al", "alx.com", true},
		{"No domain dot", "al", "al@xcom", true},
		{"Double at sign", "al", "al@@x.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.username, tt.email)
			if tt.expectErr {
				require.NotNil(t, err)
				assert.Equal(t, CodeValidation, err.Code)
				return
			}
			require.Nil(t, err)
			assert.NotContains(t, user.Username, " ")
			assert.Empty(t, user.Thoughts)
			assert.Empty(t, user.Friends)
		})
	}
}

func TestUserMarshalJSON(t *testing.T) {
	friend := primitive.NewObjectID()
	user := User{
		ID:       primitive.NewObjectID(),
		Username: "al",
		Email:    "al@x.com",
		Friends:  []primitive.ObjectID{friend},
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.EqualValues(t, 1, decoded["friendCount"])
	// Nil thought slice renders as an empty array, not null.
	assert.Equal(t, []any{}, decoded["thoughts"])
}

func TestUserUpdateValidate(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("Empty patch rejected", func(t *testing.T) {
		patch := UserUpdate{}
		require.NotNil(t, patch.Validate())
	})

	t.Run("Trims username", func(t *testing.T) {
		patch := UserUpdate{Username: str("  al ")}
		require.Nil(t, patch.Validate())
		assert.Equal(t, "al", *patch.Username)
	})

	t.Run("Rejects blank username", func(t *testing.T) {
		patch := UserUpdate{Username: str("   ")}
		require.NotNil(t, patch.Validate())
	})

	t.Run("Rejects malformed email", func(t *testing.T) {
		patch := UserUpdate{Email: str("nope")}
		require.NotNil(t, patch.Validate())
	})

	t.Run("Accepts single field", func(t *testing.T) {
		patch := UserUpdate{Email: str("al@x.com")}
		require.Nil(t, patch.Validate())
	})
}

func TestUserProfileMarshalJSON(t *testing.T) {
	profile := UserProfile{
		ID:       primitive.NewObjectID(),
		Username: "al",
		Email:    "al@x.com",
		Friends:  []User{{ID: primitive.NewObjectID(), Username: "bo"}},
	}

	raw, err := json.Marshal(profile)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.EqualValues(t, 1, decoded["friendCount"])

	friends := decoded["friends"].([]any)
	require.Len(t, friends, 1)
	assert.Equal(t, "bo", friends[0].(map[string]any)["username"])
}
