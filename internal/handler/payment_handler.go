package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jivehq/jive-api/internal/dto"
	"github.com/jivehq/jive-api/internal/middleware"
	"github.com/jivehq/jive-api/internal/service"
)

// PaymentHandler exposes the student-side payment endpoints.
type PaymentHandler struct {
	enrollment *service.EnrollmentService
}

// NewPaymentHandler constructs a handler instance.
func NewPaymentHandler(enrollment *service.EnrollmentService) *PaymentHandler {
	return &PaymentHandler{enrollment: enrollment}
}

// CreateIntent asks the gateway for a client secret covering the cart total.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req dto.PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	secret, err := h.enrollment.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		if err.Error() == "price must be positive" {
			return Error(c, http.StatusBadRequest, err.Error())
		}
		return Error(c, http.StatusBadGateway, "payment gateway unavailable")
	}

	return Success(c, http.StatusOK, "payment intent created", dto.PaymentIntentResponse{ClientSecret: secret})
}

// Record stores a confirmed charge and clears the matching cart entries.
func (h *PaymentHandler) Record(c echo.Context) error {
	var req dto.RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	email, _ := c.Get(middleware.ContextKeyUserEmail).(string)
	order, err := h.enrollment.RecordPayment(c.Request().Context(), email, req)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	return Success(c, http.StatusCreated, "payment recorded", order)
}

// ListMine returns the caller's order history.
func (h *PaymentHandler) ListMine(c echo.Context) error {
	email := c.QueryParam("email")
	records, err := h.enrollment.ListForStudent(c.Request().Context(), email)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list payments")
	}
	return Success(c, http.StatusOK, "payments retrieved", records)
}

// ListEnrolled returns the classes the caller is enrolled in.
func (h *PaymentHandler) ListEnrolled(c echo.Context) error {
	email := c.QueryParam("email")
	records, err := h.enrollment.ListEnrolled(c.Request().Context(), email)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list enrollments")
	}
	return Success(c, http.StatusOK, "enrollments retrieved", records)
}
