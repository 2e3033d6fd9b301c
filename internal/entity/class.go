package entity

import (
	"time"

	"github.com/google/uuid"
)

// Class review states. Editing an approved or denied class resubmits it as pending.
const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusDenied   = "denied"
)

// Class is a course offered by an instructor.
type Class struct {
	ID              uuid.UUID `json:"id"`
	InstructorEmail string    `json:"instructor_email"`
	ClassName       string    `json:"class_name"`
	Image           *string   `json:"image,omitempty"`
	Price           float64   `json:"price"`
	AvailableSeats  int       `json:"available_seats"`
	TotalEnroll     int       `json:"total_enroll"`
	ClassStatus     string    `json:"class_status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
