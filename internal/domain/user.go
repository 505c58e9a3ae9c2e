package domain

import (
	"context"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserUpdate carries a partial update; nil fields are left unchanged.
type UserUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, name, email string) (*User, error)
	Update(ctx context.Context, id int64, update UserUpdate) (*User, error)
	Delete(ctx context.Context, id int64) error
}
