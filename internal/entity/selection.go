package entity

import (
	"time"

	"github.com/google/uuid"
)

// Selection is a cart entry: a student's intent to purchase a class. The class
// fields are snapshotted at selection time so the cart survives later edits.
type Selection struct {
	ID              uuid.UUID `json:"id"`
	StudentEmail    string    `json:"student_email"`
	ClassID         uuid.UUID `json:"class_id"`
	ClassName       string    `json:"class_name"`
	Image           *string   `json:"image,omitempty"`
	Price           float64   `json:"price"`
	InstructorEmail string    `json:"instructor_email"`
	CreatedAt       time.Time `json:"created_at"`
}
