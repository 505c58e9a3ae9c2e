package server

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/bryanwweber/backend-posts-api-redcell/internal/config"
	"github.com/bryanwweber/backend-posts-api-redcell/internal/domain"
	"github.com/bryanwweber/backend-posts-api-redcell/internal/metrics"
	"github.com/bryanwweber/backend-posts-api-redcell/internal/platform/correlation"

	apperrors "github.com/bryanwweber/backend-posts-api-redcell/internal/errors"
)

// postgresHealthChecker is a minimal interface for database health checks
type postgresHealthChecker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	users     domain.UserRepository
	posts     domain.PostRepository
	db        postgresHealthChecker
	startTime time.Time

	// test override
	postgresHealthCheck postgresHealthChecker
}

func NewServer(cfg *config.Config, users domain.UserRepository, posts domain.PostRepository, db postgresHealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// The collection routes are registered without trailing slashes; accept both.
	e.Pre(middleware.RemoveTrailingSlash())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: correlation.NewID,
		RequestIDHandler: func(c echo.Context, id string) {
			ctx := correlation.WithID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.MaxRequestsPerSecond))))
	e.Use(requestMetrics)
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		users:     users,
		posts:     posts,
		db:        db,
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

// requestMetrics records per-route request latency.
func requestMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request().Method, c.Path()).
			Observe(time.Since(start).Seconds())
		return err
	}
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) getPostgresHealthChecker() postgresHealthChecker {
	if s.postgresHealthCheck != nil {
		return s.postgresHealthCheck
	}
	return s.db
}
