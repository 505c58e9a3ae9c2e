package server

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/bryanwweber/backend-posts-api-redcell/internal/domain"

	apperrors "github.com/bryanwweber/backend-posts-api-redcell/internal/errors"
)

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  int64  `json:"user_id"`
}

func postNotFound(id int64) *apperrors.Error {
	return apperrors.NotFoundError(fmt.Sprintf("Could not find post with id: '%d'", id))
}

func (s *Server) handleListPosts(c echo.Context) error {
	posts, err := s.posts.List(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to list posts", err)
	}
	return c.JSON(200, posts)
}

func (s *Server) handleGetPost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	post, err := s.posts.GetByID(c.Request().Context(), id)
	if errors.Is(err, domain.ErrPostNotFound) {
		return postNotFound(id)
	}
	if err != nil {
		return apperrors.InternalError("failed to load post", err).WithField("post_id", id)
	}
	return c.JSON(200, post)
}

func (s *Server) handleCreatePost(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.Title == "" {
		return apperrors.ValidationError("title is required")
	}
	if req.Content == "" {
		return apperrors.ValidationError("content is required")
	}

	post, err := s.posts.Create(c.Request().Context(), req.Title, req.Content, req.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return userNotFound(req.UserID)
	}
	if err != nil {
		return apperrors.InternalError("failed to create post", err).WithField("user_id", req.UserID)
	}
	return c.JSON(200, post)
}

func (s *Server) handleUpdatePost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var update domain.PostUpdate
	if err := c.Bind(&update); err != nil {
		return err
	}

	post, err := s.posts.Update(c.Request().Context(), id, update)
	if errors.Is(err, domain.ErrPostNotFound) {
		return postNotFound(id)
	}
	if err != nil {
		return apperrors.InternalError("failed to update post", err).WithField("post_id", id)
	}
	return c.JSON(200, post)
}

func (s *Server) handleDeletePost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	err = s.posts.Delete(c.Request().Context(), id)
	if errors.Is(err, domain.ErrPostNotFound) {
		return postNotFound(id)
	}
	if err != nil {
		return apperrors.InternalError("failed to delete post", err).WithField("post_id", id)
	}
	return c.NoContent(204)
}
