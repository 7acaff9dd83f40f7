// Command main runs the database seeder.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/shermanburwell3/social-media-api/internal/config"
	"github.com/shermanburwell3/social-media-api/internal/database"
	"github.com/shermanburwell3/social-media-api/internal/repository"
	"github.com/shermanburwell3/social-media-api/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	thoughtsPerUser := flag.Int("thoughts", 3, "Thoughts per user")
	maxReactions := flag.Int("reactions", 4, "Maximum reactions per thought")
	friendsPerUser := flag.Int("friends", 3, "Friendships attempted per user")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d thoughts each\n", *numUsers, *thoughtsPerUser)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Disconnect(context.Background(), db); err != nil {
			log.Printf("Disconnect error: %v", err)
		}
	}()

	opts := seed.Options{
		Users:           *numUsers,
		ThoughtsPerUser: *thoughtsPerUser,
		MaxReactions:    *maxReactions,
		FriendsPerUser:  *friendsPerUser,
	}
	if err := seed.Run(ctx, repository.NewUserRepository(db), repository.NewThoughtRepository(db), opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
