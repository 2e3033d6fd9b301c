package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jivehq/jive-api/internal/dto"
	"github.com/jivehq/jive-api/internal/entity"
	"github.com/jivehq/jive-api/internal/payment"
	"github.com/jivehq/jive-api/internal/repository"
)

// EnrollmentService drives the two-phase purchase flow. Phase one records the
// confirmed payment and clears the cart; phase two (admin fulfillment)
// allocates seats and updates the instructor counters.
type EnrollmentService struct {
	payments repository.PaymentsRepository
	intents  payment.IntentCreator
}

// NewEnrollmentService builds a new EnrollmentService instance.
func NewEnrollmentService(payments repository.PaymentsRepository, intents payment.IntentCreator) *EnrollmentService {
	return &EnrollmentService{payments: payments, intents: intents}
}

// CreateIntent asks the gateway for a client secret covering the given price.
func (s *EnrollmentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", errors.New("price must be positive")
	}
	return s.intents.CreateIntent(ctx, price)
}

// RecordPayment stores a confirmed charge as a pending order and consumes the
// matching cart entries. The student identity comes from the token.
func (s *EnrollmentService) RecordPayment(ctx context.Context, studentEmail string, req dto.RecordPaymentRequest) (*entity.Payment, error) {
	if req.TransactionID == "" {
		return nil, errors.New("transaction id is required")
	}
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	if len(req.ClassIDs) == 0 {
		return nil, errors.New("order must reference at least one class")
	}

	classIDs := make([]uuid.UUID, 0, len(req.ClassIDs))
	for _, raw := range req.ClassIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid class id: %s", raw)
		}
		classIDs = append(classIDs, id)
	}

	return s.payments.Record(ctx, &entity.Payment{
		StudentEmail:     studentEmail,
		TransactionID:    req.TransactionID,
		Amount:           req.Amount,
		ClassIDs:         classIDs,
		InstructorEmails: req.InstructorEmails,
	})
}

// Fulfill runs the enrollment transaction for one order.
func (s *EnrollmentService) Fulfill(ctx context.Context, id, status string) (*entity.Payment, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("invalid order id")
	}
	if status == "" {
		status = entity.OrderStatusFulfilled
	}
	if status != entity.OrderStatusFulfilled {
		return nil, fmt.Errorf("unknown order status: %s", status)
	}

	return s.payments.Fulfill(ctx, orderID, status)
}

// ListOrders returns every order for the admin audit view.
func (s *EnrollmentService) ListOrders(ctx context.Context) ([]entity.Payment, error) {
	return s.payments.ListAll(ctx)
}

// ListForStudent returns the caller's order history.
func (s *EnrollmentService) ListForStudent(ctx context.Context, email string) ([]entity.Payment, error) {
	return s.payments.ListForStudent(ctx, email)
}

// ListEnrolled returns the classes the caller is enrolled in.
func (s *EnrollmentService) ListEnrolled(ctx context.Context, email string) ([]entity.Class, error) {
	return s.payments.ListEnrolledClasses(ctx, email)
}
