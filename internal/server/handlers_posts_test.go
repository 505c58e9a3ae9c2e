package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bryanwweber/backend-posts-api-redcell/internal/domain"
)

func TestHandleListPosts(t *testing.T) {
	posts := &mockPostRepo{
		listFn: func(ctx context.Context) ([]domain.Post, error) {
			return []domain.Post{
				{ID: 1, Title: "First", Content: "Hello.", UserID: 1},
			}, nil
		},
	}
	srv := newTestServer(t, &mockUserRepo{}, posts)

	rec := doRequest(t, srv, http.MethodGet, "/posts", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"First"`)
}

func TestHandleGetPost(t *testing.T) {
	posts := &mockPostRepo{
		getFn: func(ctx context.Context, id int64) (*domain.Post, error) {
			return &domain.Post{ID: id, Title: "First", Content: "Hello.", UserID: 3}, nil
		},
	}
	srv := newTestServer(t, &mockUserRepo{}, posts)

	rec := doRequest(t, srv, http.MethodGet, "/posts/5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":5`)
	assert.Contains(t, rec.Body.String(), `"user_id":3`)
}

func TestHandleGetPost_NotFound(t *testing.T) {
	srv := newTestServer(t, &mockUserRepo{}, &mockPostRepo{})

	rec := doRequest(t, srv, http.MethodGet, "/posts/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `Could not find post with id: '42'`)
}

func TestHandleCreatePost(t *testing.T) {
	var gotUserID int64
	posts := &mockPostRepo{
		createFn: func(ctx context.Context, title, content string, userID int64) (*domain.Post, error) {
			gotUserID = userID
			return &domain.Post{ID: 1, Title: title, Content: content, UserID: userID}, nil
		},
	}
	srv := newTestServer(t, &mockUserRepo{}, posts)

	rec := doRequest(t, srv, http.MethodPost, "/posts", `{"title":"First","content":"Hello.","user_id":3}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), gotUserID)
}

func TestHandleCreatePost_UnknownUser(t *testing.T) {
	posts := &mockPostRepo{
		createFn: func(ctx context.Context, title, content string, userID int64) (*domain.Post, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	srv := newTestServer(t, &mockUserRepo{}, posts)

	rec := doRequest(t, srv, http.MethodPost, "/posts", `{"title":"Orphan","content":"No author.","user_id":99}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `Could not find user with id: '99'`)
}

func TestHandleCreatePost_MissingFields(t *testing.T) {
	srv := newTestServer(t, &mockUserRepo{}, &mockPostRepo{})

	rec := doRequest(t, srv, http.MethodPost, "/posts", `{"content":"Hello.","user_id":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title is required")

	rec = doRequest(t, srv, http.MethodPost, "/posts", `{"title":"First","user_id":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "content is required")
}

func TestHandleUpdatePost_Partial(t *testing.T) {
	var gotUpdate domain.PostUpdate
	posts := &mockPostRepo{
		updateFn: func(ctx context.Context, id int64, update domain.PostUpdate) (*domain.Post, error) {
			gotUpdate = update
			return &domain.Post{ID: id, Title: "Published", Content: "Hello.", UserID: 1}, nil
		},
	}
	srv := newTestServer(t, &mockUserRepo{}, posts)

	rec := doRequest(t, srv, http.MethodPut, "/posts/1", `{"title":"Published"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	if assert.NotNil(t, gotUpdate.Title) {
		assert.Equal(t, "Published", *gotUpdate.Title)
	}
	assert.Nil(t, gotUpdate.Content)
}

func TestHandleUpdatePost_NotFound(t *testing.T) {
	srv := newTestServer(t, &mockUserRepo{}, &mockPostRepo{})

	rec := doRequest(t, srv, http.MethodPut, "/posts/42", `{"title":"Ghost"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `Could not find post with id: '42'`)
}

func TestHandleDeletePost(t *testing.T) {
	posts := &mockPostRepo{
		deleteFn: func(ctx context.Context, id int64) error { return nil },
	}
	srv := newTestServer(t, &mockUserRepo{}, posts)

	rec := doRequest(t, srv, http.MethodDelete, "/posts/1", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandleDeletePost_NotFound(t *testing.T) {
	srv := newTestServer(t, &mockUserRepo{}, &mockPostRepo{})

	rec := doRequest(t, srv, http.MethodDelete, "/posts/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `Could not find post with id: '42'`)
}
