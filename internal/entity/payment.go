package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment/order states. Recording a confirmed charge creates a pending order;
// admin fulfillment allocates seats and marks it fulfilled.
const (
	OrderStatusPending   = "pending"
	OrderStatusFulfilled = "fulfilled"
)

// Payment is an order created when a student confirms a charge. ClassIDs and
// InstructorEmails drive the later fulfillment fan-out.
type Payment struct {
	ID               uuid.UUID   `json:"id"`
	StudentEmail     string      `json:"student_email"`
	TransactionID    string      `json:"transaction_id"`
	Amount           float64     `json:"amount"`
	ClassIDs         []uuid.UUID `json:"class_ids"`
	InstructorEmails []string    `json:"instructor_emails"`
	Status           string      `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
}
