// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/shermanburwell3/social-media-api/internal/models"
	"github.com/shermanburwell3/social-media-api/internal/repository"
)

// Options controls how much data the seeder creates.
type Options struct {
	Users           int
	ThoughtsPerUser int
	MaxReactions    int
	FriendsPerUser  int
}

// DefaultOptions returns a small data set suitable for local development.
func DefaultOptions() Options {
	return Options{
		Users:           10,
		ThoughtsPerUser: 3,
		MaxReactions:    4,
		FriendsPerUser:  3,
	}
}

// Run populates the database through the store layer so every record passes
// the same validation as API traffic.
func Run(ctx context.Context, users repository.UserRepository, thoughts repository.ThoughtRepository, opts Options) error {
	factory := NewFactory()

	created := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		username, email := factory.Identity(i)
		user, err := users.Create(ctx, username, email)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", username, err)
		}
		created = append(created, user)
	}
	log.Printf("Seeded %d users", len(created))

	thoughtCount := 0
	reactionCount := 0
	for _, user := range created {
		for i := 0; i < opts.ThoughtsPerUser; i++ {
			thought, err := thoughts.Create(ctx, factory.ThoughtText(), user.Username, user.ID)
			if err != nil {
				return fmt.Errorf("seed thought for %q: %w", user.Username, err)
			}
			thoughtCount++

			for j := rand.Intn(opts.MaxReactions + 1); j > 0; j-- {
				reactor := created[rand.Intn(len(created))]
				if _, err := thoughts.AddReaction(ctx, thought.ID, factory.ReactionBody(), reactor.Username); err != nil {
					return fmt.Errorf("seed reaction: %w", err)
				}
				reactionCount++
			}
		}
	}
	log.Printf("Seeded %d thoughts with %d reactions", thoughtCount, reactionCount)

	friendCount := 0
	for _, user := range created {
		for i := 0; i < opts.FriendsPerUser; i++ {
			friend := created[rand.Intn(len(created))]
			if friend.ID == user.ID {
				continue
			}
			if _, err := users.AddFriend(ctx, user.ID, friend.ID); err != nil {
				return fmt.Errorf("seed friendship: %w", err)
			}
			friendCount++
		}
	}
	log.Printf("Seeded %d friendships", friendCount)

	return nil
}
