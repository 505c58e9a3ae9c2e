package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bryanwweber/backend-posts-api-redcell/internal/config"
	"github.com/bryanwweber/backend-posts-api-redcell/internal/domain"
)

// mockUserRepo implements domain.UserRepository with overridable functions.
type mockUserRepo struct {
	listFn   func(ctx context.Context) ([]domain.User, error)
	getFn    func(ctx context.Context, id int64) (*domain.User, error)
	createFn func(ctx context.Context, name, email string) (*domain.User, error)
	updateFn func(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []domain.User{}, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) Create(ctx context.Context, name, email string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name, email)
	}
	return &domain.User{ID: 1, Name: name, Email: email}, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return domain.ErrUserNotFound
}

// mockPostRepo implements domain.PostRepository with overridable functions.
type mockPostRepo struct {
	listFn   func(ctx context.Context) ([]domain.Post, error)
	getFn    func(ctx context.Context, id int64) (*domain.Post, error)
	createFn func(ctx context.Context, title, content string, userID int64) (*domain.Post, error)
	updateFn func(ctx context.Context, id int64, update domain.PostUpdate) (*domain.Post, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockPostRepo) List(ctx context.Context) ([]domain.Post, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []domain.Post{}, nil
}

func (m *mockPostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, domain.ErrPostNotFound
}

func (m *mockPostRepo) Create(ctx context.Context, title, content string, userID int64) (*domain.Post, error) {
	if m.createFn != nil {
		return m.createFn(ctx, title, content, userID)
	}
	return &domain.Post{ID: 1, Title: title, Content: content, UserID: userID}, nil
}

func (m *mockPostRepo) Update(ctx context.Context, id int64, update domain.PostUpdate) (*domain.Post, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return nil, domain.ErrPostNotFound
}

func (m *mockPostRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return domain.ErrPostNotFound
}

// mockDB provides a minimal mock for PostgreSQL health checks
type mockDB struct {
	pingErr error
}

func (m *mockDB) Ping(ctx context.Context) error {
	return m.pingErr
}

type serverOption func(*Server)

func withPostgresHealthCheck(checker postgresHealthChecker) serverOption {
	return func(s *Server) {
		s.postgresHealthCheck = checker
	}
}

func newTestServer(t *testing.T, users domain.UserRepository, posts domain.PostRepository, opts ...serverOption) *Server {
	t.Helper()

	cfg := &config.Config{
		AppEnv:               "test",
		Port:                 "0",
		MaxRequestsPerSecond: 1000,
	}

	srv := NewServer(cfg, users, posts, &mockDB{})
	for _, opt := range opts {
		opt(srv)
	}
	return srv
}

// doRequest runs a request through the full middleware chain.
func doRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}
