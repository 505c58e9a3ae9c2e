// Seed tool: populates the database with sample users and posts.
// Connection coordinates come from the same environment variables the
// server uses; the schema must already be migrated.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/bryanwweber/backend-posts-api-redcell/internal/config"
	"github.com/bryanwweber/backend-posts-api-redcell/internal/database"
)

func main() {
	var numUsers int
	var numPosts int
	var seed int64
	flag.IntVar(&numUsers, "users", database.DefaultSeedUsers, "number of users to create")
	flag.IntVar(&numPosts, "posts", database.DefaultSeedPosts, "number of posts to create")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	r := rand.New(rand.NewSource(seed))

	start := time.Now()
	if err := database.Seed(ctx, pool, r, numUsers, numPosts); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Printf("done in %s", time.Since(start).Truncate(time.Millisecond))
}
