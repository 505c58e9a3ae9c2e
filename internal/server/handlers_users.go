package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bryanwweber/backend-posts-api-redcell/internal/domain"

	apperrors "github.com/bryanwweber/backend-posts-api-redcell/internal/errors"
)

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func userNotFound(id int64) *apperrors.Error {
	return apperrors.NotFoundError(fmt.Sprintf("Could not find user with id: '%d'", id))
}

func parseID(c echo.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.ValidationError("invalid id").WithField("id", raw)
	}
	return id, nil
}

func (s *Server) handleListUsers(c echo.Context) error {
	users, err := s.users.List(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to list users", err)
	}
	return c.JSON(200, users)
}

func (s *Server) handleGetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(c.Request().Context(), id)
	if errors.Is(err, domain.ErrUserNotFound) {
		return userNotFound(id)
	}
	if err != nil {
		return apperrors.InternalError("failed to load user", err).WithField("user_id", id)
	}
	return c.JSON(200, user)
}

func (s *Server) handleCreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.Name == "" {
		return apperrors.ValidationError("name is required")
	}
	if req.Email == "" {
		return apperrors.ValidationError("email is required")
	}

	user, err := s.users.Create(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return apperrors.InternalError("failed to create user", err)
	}
	return c.JSON(200, user)
}

func (s *Server) handleUpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var update domain.UserUpdate
	if err := c.Bind(&update); err != nil {
		return err
	}

	user, err := s.users.Update(c.Request().Context(), id, update)
	if errors.Is(err, domain.ErrUserNotFound) {
		return userNotFound(id)
	}
	if err != nil {
		return apperrors.InternalError("failed to update user", err).WithField("user_id", id)
	}
	return c.JSON(200, user)
}

func (s *Server) handleDeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	err = s.users.Delete(c.Request().Context(), id)
	if errors.Is(err, domain.ErrUserNotFound) {
		return userNotFound(id)
	}
	if err != nil {
		return apperrors.InternalError("failed to delete user", err).WithField("user_id", id)
	}
	return c.NoContent(204)
}
