package seed

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shermanburwell3/social-media-api/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// Factory generates realistic demo content. A numeric suffix keeps generated
// usernames and emails clear of the unique indexes.
type Factory struct{}

// NewFactory seeds the underlying generator for richer content.
func NewFactory() *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{}
}

// Identity returns a unique username/email pair for the i-th seeded user.
func (f *Factory) Identity(i int) (username, email string) {
	username = fmt.Sprintf("%s%d", gofakeit.Username(), i)
	email = fmt.Sprintf("%s@%s", username, gofakeit.DomainName())
	return username, email
}

// ThoughtText returns post text within the allowed length.
func (f *Factory) ThoughtText() string {
	return clamp(gofakeit.Sentence(12), models.MaxThoughtLength)
}

// ReactionBody returns reaction text within the allowed length.
func (f *Factory) ReactionBody() string {
	return clamp(gofakeit.HipsterSentence(6), models.MaxThoughtLength)
}

func clamp(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
