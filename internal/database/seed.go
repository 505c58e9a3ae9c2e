package database

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Defaults match the original sample dataset: a handful of authors and a
// page of posts.
const (
	DefaultSeedUsers = 5
	DefaultSeedPosts = 50
)

var (
	firstNames = []string{"Ada", "Grace", "Alan", "Edsger", "Barbara", "Donald", "Margaret", "Dennis", "Ken", "Radia"}
	lastNames  = []string{"Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov", "Knuth", "Hamilton", "Ritchie", "Thompson", "Perlman"}
	loremWords = []string{
		"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
		"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
		"magna", "aliqua", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	}
)

// Seed inserts numUsers sample users and numPosts sample posts attributed to
// random users. It is additive: existing rows are left alone.
func Seed(ctx context.Context, pool *pgxpool.Pool, r *rand.Rand, numUsers, numPosts int) error {
	userIDs := make([]int64, 0, numUsers)

	batch := &pgx.Batch{}
	for range numUsers {
		first := firstNames[r.Intn(len(firstNames))]
		last := lastNames[r.Intn(len(lastNames))]
		name := first + " " + last
		email := strings.ToLower(first) + "." + strings.ToLower(last) + fmt.Sprintf("%d", r.Intn(1000)) + "@example.com"

		batch.Queue(`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`, name, email)
	}

	results := pool.SendBatch(ctx, batch)
	for range numUsers {
		var id int64
		if err := results.QueryRow().Scan(&id); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to seed user: %w", err)
		}
		userIDs = append(userIDs, id)
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close user batch: %w", err)
	}

	if len(userIDs) == 0 && numPosts > 0 {
		return fmt.Errorf("cannot seed posts without users")
	}

	postBatch := &pgx.Batch{}
	for range numPosts {
		title := sentence(r, 4)
		content := sentence(r, 40)
		userID := userIDs[r.Intn(len(userIDs))]

		postBatch.Queue(`INSERT INTO posts (title, content, user_id) VALUES ($1, $2, $3)`, title, content, userID)
	}

	postResults := pool.SendBatch(ctx, postBatch)
	if err := postResults.Close(); err != nil {
		return fmt.Errorf("failed to seed posts: %w", err)
	}

	slog.Info("Seeded sample data", "users", numUsers, "posts", numPosts)
	return nil
}

func sentence(r *rand.Rand, words int) string {
	var b strings.Builder
	for i := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(loremWords[r.Intn(len(loremWords))])
	}
	return b.String()
}
