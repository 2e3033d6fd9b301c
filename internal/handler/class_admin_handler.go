package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jivehq/jive-api/internal/dto"
	"github.com/jivehq/jive-api/internal/repository"
	"github.com/jivehq/jive-api/internal/service"
)

// ClassAdminHandler exposes the admin review queue for classes.
type ClassAdminHandler struct {
	classes *service.ClassService
}

// NewClassAdminHandler constructs a handler instance.
func NewClassAdminHandler(classes *service.ClassService) *ClassAdminHandler {
	return &ClassAdminHandler{classes: classes}
}

// List returns every class regardless of status.
func (h *ClassAdminHandler) List(c echo.Context) error {
	records, err := h.classes.ListAll(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list classes")
	}
	return Success(c, http.StatusOK, "classes retrieved", records)
}

// SetStatus approves or denies a pending class. Approval bumps the owning
// instructor's class counter exactly once.
func (h *ClassAdminHandler) SetStatus(c echo.Context) error {
	var req dto.ChangeClassStatusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	class, err := h.classes.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrClassNotFound):
			return Error(c, http.StatusNotFound, "class not found")
		default:
			return Error(c, http.StatusBadRequest, err.Error())
		}
	}

	return Success(c, http.StatusOK, "class status updated", class)
}
