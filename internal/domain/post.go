package domain

import (
	"context"
	"time"
)

type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostUpdate carries a partial update; nil fields are left unchanged.
type PostUpdate struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type PostRepository interface {
	List(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	// Create returns ErrUserNotFound when the author does not exist.
	Create(ctx context.Context, title, content string, userID int64) (*Post, error)
	Update(ctx context.Context, id int64, update PostUpdate) (*Post, error)
	Delete(ctx context.Context, id int64) error
}
