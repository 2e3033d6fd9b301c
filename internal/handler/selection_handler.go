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

// SelectionHandler exposes the cart endpoints.
type SelectionHandler struct {
	selections *service.SelectionService
}

// NewSelectionHandler constructs a handler instance.
func NewSelectionHandler(selections *service.SelectionService) *SelectionHandler {
	return &SelectionHandler{selections: selections}
}

// Add puts a class into the authenticated student's cart.
func (h *SelectionHandler) Add(c echo.Context) error {
	var req dto.AddSelectionRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	email, _ := c.Get(middleware.ContextKeyUserEmail).(string)
	selection, err := h.selections.Add(c.Request().Context(), email, req)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	return Success(c, http.StatusCreated, "class selected", selection)
}

// List returns the caller's cart entries.
func (h *SelectionHandler) List(c echo.Context) error {
	email := c.QueryParam("email")
	records, err := h.selections.List(c.Request().Context(), email)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list selections")
	}
	return Success(c, http.StatusOK, "selections retrieved", records)
}

// Remove deletes one cart entry owned by the caller.
func (h *SelectionHandler) Remove(c echo.Context) error {
	email, _ := c.Get(middleware.ContextKeyUserEmail).(string)
	if err := h.selections.Remove(c.Request().Context(), c.Param("id"), email); err != nil {
		switch {
		case errors.Is(err, repository.ErrSelectionNotFound):
			return Error(c, http.StatusNotFound, "selection not found")
		default:
			return Error(c, http.StatusBadRequest, err.Error())
		}
	}
	return Success(c, http.StatusOK, "selection removed", nil)
}
