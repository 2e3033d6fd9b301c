package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jivehq/jive-api/internal/dto"
	"github.com/jivehq/jive-api/internal/middleware"
	"github.com/jivehq/jive-api/internal/repository"
	"github.com/jivehq/jive-api/internal/service"
)

// ClassHandler exposes the public catalog and instructor class endpoints.
type ClassHandler struct {
	classes *service.ClassService
}

// NewClassHandler constructs a handler instance.
func NewClassHandler(classes *service.ClassService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// ListApproved returns the public catalog of approved classes.
func (h *ClassHandler) ListApproved(c echo.Context) error {
	records, err := h.classes.ListApproved(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list classes")
	}
	return Success(c, http.StatusOK, "classes retrieved", records)
}

// ListPopular returns all classes ordered by enrollment count.
func (h *ClassHandler) ListPopular(c echo.Context) error {
	records, err := h.classes.ListPopular(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list classes")
	}
	return Success(c, http.StatusOK, "classes retrieved", records)
}

// Get returns a single class.
func (h *ClassHandler) Get(c echo.Context) error {
	class, err := h.classes.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			return Error(c, http.StatusNotFound, "class not found")
		}
		if err.Error() == "invalid class id" {
			return Error(c, http.StatusBadRequest, err.Error())
		}
		return Error(c, http.StatusInternalServerError, "failed to load class")
	}
	return Success(c, http.StatusOK, "class retrieved", class)
}

// ListMine returns the authenticated instructor's classes. The email query
// parameter has already passed the ownership check.
func (h *ClassHandler) ListMine(c echo.Context) error {
	email := c.QueryParam("email")
	records, err := h.classes.ListByInstructor(c.Request().Context(), email)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list classes")
	}
	return Success(c, http.StatusOK, "classes retrieved", records)
}

// Create submits a new class for review on behalf of the authenticated
// instructor.
func (h *ClassHandler) Create(c echo.Context) error {
	var req dto.CreateClassRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	email, _ := c.Get(middleware.ContextKeyUserEmail).(string)
	class, err := h.classes.Create(c.Request().Context(), email, req)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	return Success(c, http.StatusCreated, "class submitted for review", class)
}

// Update applies instructor edits; any edit resubmits the class for review.
func (h *ClassHandler) Update(c echo.Context) error {
	var req dto.UpdateClassRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	email, _ := c.Get(middleware.ContextKeyUserEmail).(string)
	class, err := h.classes.Update(c.Request().Context(), c.Param("id"), email, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrClassNotFound):
			return Error(c, http.StatusNotFound, "class not found")
		default:
			return Error(c, http.StatusBadRequest, err.Error())
		}
	}

	return Success(c, http.StatusOK, "class updated", class)
}

// Delete removes a class; admins may delete any, instructors only their own.
func (h *ClassHandler) Delete(c echo.Context) error {
	email, _ := c.Get(middleware.ContextKeyUserEmail).(string)
	role, _ := c.Get(middleware.ContextKeyUserRole).(string)

	if err := h.classes.Delete(c.Request().Context(), c.Param("id"), email, role); err != nil {
		switch {
		case errors.Is(err, service.ErrNotClassOwner):
			return Error(c, http.StatusForbidden, "forbidden access")
		case errors.Is(err, repository.ErrClassNotFound):
			return Error(c, http.StatusNotFound, "class not found")
		default:
			return Error(c, http.StatusBadRequest, err.Error())
		}
	}

	return Success(c, http.StatusOK, "class deleted", nil)
}
