package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	s.echo.GET("/", s.handleRoot)

	// Users
	s.echo.GET("/users", s.handleListUsers)
	s.echo.POST("/users", s.handleCreateUser)
	s.echo.GET("/users/:id", s.handleGetUser)
	s.echo.PUT("/users/:id", s.handleUpdateUser)
	s.echo.DELETE("/users/:id", s.handleDeleteUser)

	// Posts
	s.echo.GET("/posts", s.handleListPosts)
	s.echo.POST("/posts", s.handleCreatePost)
	s.echo.GET("/posts/:id", s.handleGetPost)
	s.echo.PUT("/posts/:id", s.handleUpdatePost)
	s.echo.DELETE("/posts/:id", s.handleDeletePost)
}

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(200, map[string]string{"HELLO": "WORLD"})
}
