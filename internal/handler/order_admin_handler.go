package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jivehq/jive-api/internal/dto"
	"github.com/jivehq/jive-api/internal/repository"
	"github.com/jivehq/jive-api/internal/service"
)

// OrderAdminHandler exposes the admin order audit and fulfillment endpoints.
type OrderAdminHandler struct {
	enrollment *service.EnrollmentService
}

// NewOrderAdminHandler constructs a handler instance.
func NewOrderAdminHandler(enrollment *service.EnrollmentService) *OrderAdminHandler {
	return &OrderAdminHandler{enrollment: enrollment}
}

// List returns every payment/order.
func (h *OrderAdminHandler) List(c echo.Context) error {
	records, err := h.enrollment.ListOrders(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list orders")
	}
	return Success(c, http.StatusOK, "orders retrieved", records)
}

// Update drives the enrollment transaction for one order: seats, enrollment
// counts, instructor totals and the order status move together or not at all.
func (h *OrderAdminHandler) Update(c echo.Context) error {
	var req dto.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	order, err := h.enrollment.Fulfill(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			return Error(c, http.StatusNotFound, "order not found")
		case errors.Is(err, repository.ErrNoSeatsAvailable):
			return Error(c, http.StatusConflict, "no seats available for one of the classes")
		case err.Error() == "invalid order id", strings.HasPrefix(err.Error(), "unknown order status"):
			return Error(c, http.StatusBadRequest, err.Error())
		default:
			return Error(c, http.StatusInternalServerError, "failed to fulfill order")
		}
	}

	return Success(c, http.StatusOK, "order fulfilled", order)
}
