package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jivehq/jive-api/internal/repository"
	"github.com/jivehq/jive-api/internal/service"
)

// UserHandler exposes public and self-service user endpoints.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler constructs a handler instance.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// CheckRole returns the caller's own role. Ownership of the email parameter is
// enforced by middleware before this runs.
func (h *UserHandler) CheckRole(c echo.Context) error {
	email := c.QueryParam("email")
	role, err := h.users.GetRole(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Error(c, http.StatusNotFound, "user not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to look up role")
	}
	return Success(c, http.StatusOK, "role retrieved", role)
}

// ListInstructors returns all instructor accounts.
func (h *UserHandler) ListInstructors(c echo.Context) error {
	records, err := h.users.ListInstructors(c.Request().Context(), false)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list instructors")
	}
	return Success(c, http.StatusOK, "instructors retrieved", records)
}

// ListPopularInstructors returns instructors ordered by student count.
func (h *UserHandler) ListPopularInstructors(c echo.Context) error {
	records, err := h.users.ListInstructors(c.Request().Context(), true)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list instructors")
	}
	return Success(c, http.StatusOK, "instructors retrieved", records)
}
