package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/bryanwweber/backend-posts-api-redcell/internal/domain"
)

// CreateTestUser is a helper that creates a user with default values for testing.
// Returns the created user.
func CreateTestUser(t *testing.T, pool *pgxpool.Pool, name, email string) *domain.User {
	t.Helper()

	repo := NewUserRepo(pool)
	user, err := repo.Create(context.Background(), name, email)
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	return user
}

// CreateTestPost is a helper that creates a post for the given user.
func CreateTestPost(t *testing.T, pool *pgxpool.Pool, title, content string, userID int64) *domain.Post {
	t.Helper()

	repo := NewPostRepo(pool)
	post, err := repo.Create(context.Background(), title, content, userID)
	require.NoError(t, err)
	require.NotZero(t, post.ID)

	return post
}

// TruncateTables clears users and posts between tests.
func TruncateTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(), `TRUNCATE posts, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}
